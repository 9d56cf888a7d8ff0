package commands

import (
	"context"
	"errors"
	"log/slog"

	"castle-rentals/internal/domain/pricing"
	"castle-rentals/internal/domain/quote"
	"castle-rentals/internal/infra"
	"castle-rentals/internal/pkg/clock"
	"castle-rentals/internal/pkg/errs"
	"castle-rentals/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSubmissionFailed = errs.New("quote submission failed")

// QuoteView is the wizard read model.
type QuoteView struct {
	Step           quote.Step
	Event          quote.EventDetails
	Contact        quote.ContactDetails
	GlobalDuration pricing.DurationKind
	GlobalDays     int
	Entries        []QuoteEntryView
	EstimateCents  int64
	QuoteRequired  bool
}

type QuoteEntryView struct {
	ItemID     uuid.UUID
	ItemName   string
	Duration   pricing.DurationKind
	CustomDays int
	FromStore  bool
	Overridden bool
}

type QuoteCommands interface {
	View(sess *shared.Session) (*QuoteView, error)
	Next(sess *shared.Session) error
	Back(sess *shared.Session) error
	SetEvent(sess *shared.Session, ev quote.EventDetails, globalDuration *pricing.Duration) error
	SetContact(sess *shared.Session, c quote.ContactDetails)
	Select(ctx context.Context, sess *shared.Session, itemID uuid.UUID) error
	Deselect(sess *shared.Session, itemID uuid.UUID) error
	SetEntryDuration(sess *shared.Session, itemID uuid.UUID, d pricing.Duration) error
	Submit(ctx context.Context, sess *shared.Session) (*quote.Summary, error)
}

type quoteCommandsImpl struct {
	catalogRepo CatalogRepository
	relay       NotificationRelay
	policy      pricing.Policy
	clock       clock.Clock
}

func NewQuoteCommands(
	catalogRepo CatalogRepository,
	relay NotificationRelay,
	policy pricing.Policy,
	clock clock.Clock,
) QuoteCommands {
	return &quoteCommandsImpl{
		catalogRepo: catalogRepo,
		relay:       relay,
		policy:      policy,
		clock:       clock,
	}
}

func (q *quoteCommandsImpl) View(sess *shared.Session) (*QuoteView, error) {
	draft := sess.EnsureDraft()

	estimate, err := draft.Estimate(q.policy)
	if err != nil {
		return nil, err
	}

	global := draft.GlobalDuration()
	view := &QuoteView{
		Step:           draft.Step(),
		Event:          draft.Event(),
		Contact:        draft.Contact(),
		GlobalDuration: global.Kind(),
		GlobalDays:     global.CustomDays(),
		EstimateCents:  estimate.Cents(),
		QuoteRequired:  estimate.IsQuoteRequired(),
	}
	for _, e := range draft.Entries() {
		view.Entries = append(view.Entries, QuoteEntryView{
			ItemID:     e.Item().ID,
			ItemName:   e.Item().Name,
			Duration:   e.Duration().Kind(),
			CustomDays: e.Duration().CustomDays(),
			FromStore:  e.FromStore(),
			Overridden: e.Overridden(),
		})
	}
	return view, nil
}

func (q *quoteCommandsImpl) Next(sess *shared.Session) error {
	return sess.EnsureDraft().Next()
}

func (q *quoteCommandsImpl) Back(sess *shared.Session) error {
	return sess.EnsureDraft().Back()
}

func (q *quoteCommandsImpl) SetEvent(sess *shared.Session, ev quote.EventDetails, globalDuration *pricing.Duration) error {
	draft := sess.EnsureDraft()
	draft.SetEvent(ev)
	if globalDuration != nil {
		if err := draft.SetGlobalDuration(*globalDuration); err != nil {
			return errs.Mark(err, ErrInvalidDuration)
		}
	}
	return nil
}

func (q *quoteCommandsImpl) SetContact(sess *shared.Session, c quote.ContactDetails) {
	sess.EnsureDraft().SetContact(c)
}

func (q *quoteCommandsImpl) Select(ctx context.Context, sess *shared.Session, itemID uuid.UUID) error {
	item, err := q.catalogRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrItemNotFound)
		}
		return errs.Mark(err, ErrCatalogUnavailable)
	}
	if !item.Active {
		return ErrItemNotRentable
	}

	sess.EnsureDraft().Select(*item)
	return nil
}

func (q *quoteCommandsImpl) Deselect(sess *shared.Session, itemID uuid.UUID) error {
	return sess.EnsureDraft().Deselect(itemID)
}

func (q *quoteCommandsImpl) SetEntryDuration(sess *shared.Session, itemID uuid.UUID, d pricing.Duration) error {
	err := sess.EnsureDraft().SetEntryDuration(itemID, d)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, quote.ErrEntryNotFound):
		return err
	default:
		return errs.Mark(err, ErrInvalidDuration)
	}
}

// Submit resolves the draft into an immutable summary and hands it to the
// relay. Only a successful hand-off clears the cart and resets the wizard;
// on failure both keep their state so the visitor can retry without
// re-entering anything.
func (q *quoteCommandsImpl) Submit(ctx context.Context, sess *shared.Session) (*quote.Summary, error) {
	draft := sess.EnsureDraft()

	summary, err := draft.BuildSummary(q.policy, q.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := q.relay.Submit(ctx, summary); err != nil {
		slog.Warn("quote relay submission failed", "summary_id", summary.ID, "error", err)
		return nil, errs.Mark(err, ErrSubmissionFailed)
	}

	sess.Store.Clear()
	sess.ResetDraft()
	return &summary, nil
}
