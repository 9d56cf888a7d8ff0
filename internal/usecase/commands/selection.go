package commands

import (
	"context"
	"errors"

	"castle-rentals/internal/domain/pricing"
	"castle-rentals/internal/domain/selection"
	"castle-rentals/internal/infra"
	"castle-rentals/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound       = errs.New("catalog item not found")
	ErrItemNotRentable    = errs.New("catalog item is not rentable")
	ErrLineNotFound       = errs.New("selection line item not found")
	ErrInvalidDuration    = errs.New("invalid duration for this item")
	ErrCatalogUnavailable = errs.New("catalog store unavailable")
)

// CartView is the read model the presentation layer renders.
type CartView struct {
	Lines            []CartLineView
	ItemCount        int
	TotalCents       int64
	HasQuoteRequired bool
}

type CartLineView struct {
	ItemID        uuid.UUID
	ItemName      string
	Duration      pricing.DurationKind
	CustomDays    int
	Quantity      int
	UnitCents     int64
	LineCents     int64
	QuoteRequired bool
}

type SelectionCommands interface {
	Add(ctx context.Context, store *selection.Store, itemID uuid.UUID, d pricing.Duration) error
	Remove(store *selection.Store, itemID uuid.UUID) error
	SetQuantity(store *selection.Store, itemID uuid.UUID, qty int) error
	SetDuration(store *selection.Store, itemID uuid.UUID, d pricing.Duration) error
	Clear(store *selection.Store)
	View(store *selection.Store) (*CartView, error)
}

type selectionCommandsImpl struct {
	catalogRepo CatalogRepository
	policy      pricing.Policy
}

func NewSelectionCommands(catalogRepo CatalogRepository, policy pricing.Policy) SelectionCommands {
	return &selectionCommandsImpl{
		catalogRepo: catalogRepo,
		policy:      policy,
	}
}

func (c *selectionCommandsImpl) Add(ctx context.Context, store *selection.Store, itemID uuid.UUID, d pricing.Duration) error {
	item, err := c.catalogRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrItemNotFound)
		}
		return errs.Mark(err, ErrCatalogUnavailable)
	}
	if !item.Active {
		return ErrItemNotRentable
	}
	if err := pricing.ValidateDuration(*item, d); err != nil {
		return errs.Mark(err, ErrInvalidDuration)
	}

	store.Add(*item, d)
	return nil
}

func (c *selectionCommandsImpl) Remove(store *selection.Store, itemID uuid.UUID) error {
	if !store.Remove(itemID) {
		return ErrLineNotFound
	}
	return nil
}

func (c *selectionCommandsImpl) SetQuantity(store *selection.Store, itemID uuid.UUID, qty int) error {
	if err := store.SetQuantity(itemID, qty); err != nil {
		return errs.Mark(err, ErrLineNotFound)
	}
	return nil
}

func (c *selectionCommandsImpl) SetDuration(store *selection.Store, itemID uuid.UUID, d pricing.Duration) error {
	err := store.SetDuration(itemID, d)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, selection.ErrLineNotFound):
		return errs.Mark(err, ErrLineNotFound)
	default:
		return errs.Mark(err, ErrInvalidDuration)
	}
}

func (c *selectionCommandsImpl) Clear(store *selection.Store) {
	store.Clear()
}

func (c *selectionCommandsImpl) View(store *selection.Store) (*CartView, error) {
	total, err := store.Total(c.policy)
	if err != nil {
		return nil, err
	}

	view := &CartView{
		ItemCount:        store.ItemCount(),
		TotalCents:       total.Cents,
		HasQuoteRequired: total.HasQuoteRequired,
	}
	for _, l := range store.Lines() {
		price, err := c.policy.PriceFor(l.Item(), l.Duration())
		if err != nil {
			return nil, err
		}
		view.Lines = append(view.Lines, CartLineView{
			ItemID:        l.Item().ID,
			ItemName:      l.Item().Name,
			Duration:      l.Duration().Kind(),
			CustomDays:    l.Duration().CustomDays(),
			Quantity:      l.Quantity(),
			UnitCents:     price.Cents(),
			LineCents:     price.Mul(l.Quantity()).Cents(),
			QuoteRequired: price.IsQuoteRequired(),
		})
	}
	return view, nil
}
