package quote

import (
	"time"

	"castle-rentals/internal/domain/pricing"

	"github.com/google/uuid"
)

// Summary is the immutable record handed to the notification relay when the
// wizard is submitted. All values are resolved copies; nothing points back
// into the draft or the cart.
type Summary struct {
	ID            uuid.UUID
	Event         EventDetails
	Contact       ContactDetails
	Entries       []SummaryEntry
	EstimateCents int64
	QuoteRequired bool
	SubmittedAt   time.Time
}

type SummaryEntry struct {
	ItemID        uuid.UUID
	ItemName      string
	Duration      pricing.DurationKind
	CustomDays    int
	PriceCents    int64
	QuoteRequired bool
}

// BuildSummary resolves the draft into a Summary. It is only valid on the
// contact step; the draft itself is not mutated, so a failed downstream
// submission leaves the visitor free to retry.
func (d *Draft) BuildSummary(policy pricing.Policy, now time.Time) (Summary, error) {
	if d.step != StepContact {
		return Summary{}, ErrNotOnContactStep
	}

	estimate, err := d.Estimate(policy)
	if err != nil {
		return Summary{}, err
	}

	entries := make([]SummaryEntry, 0, len(d.entries))
	for _, e := range d.entries {
		price, err := policy.PriceFor(e.item, e.duration)
		if err != nil {
			return Summary{}, err
		}
		entries = append(entries, SummaryEntry{
			ItemID:        e.item.ID,
			ItemName:      e.item.Name,
			Duration:      e.duration.Kind(),
			CustomDays:    e.duration.CustomDays(),
			PriceCents:    price.Cents(),
			QuoteRequired: price.IsQuoteRequired(),
		})
	}

	return Summary{
		ID:            uuid.New(),
		Event:         d.event,
		Contact:       d.contact,
		Entries:       entries,
		EstimateCents: estimate.Cents(),
		QuoteRequired: estimate.IsQuoteRequired(),
		SubmittedAt:   now,
	}, nil
}
