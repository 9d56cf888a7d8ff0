package commands

import (
	"context"
	"log/slog"

	"castle-rentals/internal/domain/catalog"
	"castle-rentals/internal/domain/ordering"
	"castle-rentals/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPartialReorder = errs.New("some order updates failed to persist")

// ReorderResult reports exactly which order writes landed. There is no
// transaction around the individual writes, so a partial failure is a normal
// outcome the caller re-renders from, not something to paper over.
type ReorderResult struct {
	Applied []ordering.Change
	Failed  []FailedChange
}

type FailedChange struct {
	ID     uuid.UUID
	Order  int
	Reason string
}

type ReorderCommands interface {
	MoveItem(ctx context.Context, sourceID, targetID uuid.UUID) (*ReorderResult, error)
	MovePhoto(ctx context.Context, itemID, sourceID, targetID uuid.UUID) (*ReorderResult, error)
}

type reorderCommandsImpl struct {
	catalogRepo CatalogRepository
	photoRepo   PhotoRepository
}

func NewReorderCommands(catalogRepo CatalogRepository, photoRepo PhotoRepository) ReorderCommands {
	return &reorderCommandsImpl{
		catalogRepo: catalogRepo,
		photoRepo:   photoRepo,
	}
}

func (r *reorderCommandsImpl) MoveItem(ctx context.Context, sourceID, targetID uuid.UUID) (*ReorderResult, error) {
	items, err := r.catalogRepo.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}

	members := ordering.FromSlice(items, func(i catalog.Item) ordering.Member {
		return ordering.Member{ID: i.ID, Order: i.OrderIndex, CreatedAt: i.CreatedAt}
	})

	return r.apply(ctx, ordering.Plan(members, sourceID, targetID), r.catalogRepo.UpdateOrder)
}

func (r *reorderCommandsImpl) MovePhoto(ctx context.Context, itemID, sourceID, targetID uuid.UUID) (*ReorderResult, error) {
	photos, err := r.photoRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}

	members := ordering.FromSlice(photos, func(p catalog.Photo) ordering.Member {
		return ordering.Member{ID: p.ID, Order: p.OrderIndex, CreatedAt: p.CreatedAt}
	})

	return r.apply(ctx, ordering.Plan(members, sourceID, targetID), r.photoRepo.UpdateOrder)
}

func (r *reorderCommandsImpl) apply(
	ctx context.Context,
	changes []ordering.Change,
	write func(ctx context.Context, id uuid.UUID, newOrder int) error,
) (*ReorderResult, error) {
	result := &ReorderResult{}
	for _, ch := range changes {
		if err := write(ctx, ch.ID, ch.To); err != nil {
			slog.Warn("order update failed", "entity_id", ch.ID, "order", ch.To, "error", err)
			result.Failed = append(result.Failed, FailedChange{
				ID:     ch.ID,
				Order:  ch.To,
				Reason: err.Error(),
			})
			continue
		}
		result.Applied = append(result.Applied, ch)
	}

	if len(result.Failed) > 0 {
		return result, ErrPartialReorder
	}
	return result, nil
}
