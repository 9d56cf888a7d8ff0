package queries

import (
	"context"
	"time"

	"castle-rentals/internal/infra"
	"castle-rentals/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

var ErrItemNotFound = errs.New("catalog item not found")

// ItemView is the storefront read model for one catalog entry.
type ItemView struct {
	ID                uuid.UUID
	Name              string
	PriceOneDayCents  int64
	PriceTwoDaysCents *int64
	HasCustomPricing  bool
	OrderIndex        int
	CreatedAt         time.Time
	Photos            []PhotoView
}

type PhotoView struct {
	ID         uuid.UUID
	URL        string
	OrderIndex int
}

type CatalogReadStore interface {
	ListActive(ctx context.Context) ([]*ItemView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
}

type CatalogQueries interface {
	ListActive(ctx context.Context) ([]*ItemView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) ListActive(ctx context.Context) ([]*ItemView, error) {
	return q.readStore.ListActive(ctx)
}

func (q *catalogQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrItemNotFound)
		}
		return nil, err
	}
	return view, nil
}
