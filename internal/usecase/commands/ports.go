package commands

import (
	"context"

	"castle-rentals/internal/domain/catalog"
	"castle-rentals/internal/domain/quote"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/ports/ports.go -package=portsmock

// CatalogRepository is the write-side view of the external catalog store.
type CatalogRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error)
	ListAll(ctx context.Context) ([]catalog.Item, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, newOrder int) error
}

// PhotoRepository serves the gallery reorder surface.
type PhotoRepository interface {
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]catalog.Photo, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, newOrder int) error
}

// NotificationRelay carries a submitted quote to the outside world. The wire
// format and delivery channel are not this core's concern.
type NotificationRelay interface {
	Submit(ctx context.Context, summary quote.Summary) error
}
