package selection

import (
	"castle-rentals/internal/domain/catalog"
	"castle-rentals/internal/domain/pricing"
	"castle-rentals/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrLineNotFound = errs.New("selection line item not found")

// LineItem is one cart entry, keyed by (item ID, duration). The item snapshot
// is taken at add time so totals never need a catalog round-trip.
type LineItem struct {
	item     catalog.Item
	duration pricing.Duration
	quantity int
}

func (l *LineItem) Item() catalog.Item         { return l.item }
func (l *LineItem) Duration() pricing.Duration { return l.duration }
func (l *LineItem) Quantity() int              { return l.quantity }

// Total is the aggregate over all line items. HasQuoteRequired signals that
// quote-required lines were excluded from Cents, so presentation can render
// "custom pricing" instead of a misleading partial number.
type Total struct {
	Cents            int64
	HasQuoteRequired bool
}

// Store holds the current visitor's selection in insertion order. It is a
// per-session object handed by reference to whichever surface needs it; it is
// not safe for concurrent use on its own.
type Store struct {
	lines []*LineItem
}

func NewStore() *Store {
	return &Store{}
}

// Add increments the quantity of the (item, duration) line if it exists and
// appends a fresh line with quantity 1 otherwise.
func (s *Store) Add(item catalog.Item, d pricing.Duration) {
	for _, l := range s.lines {
		if l.item.ID == item.ID && l.duration.Equal(d) {
			l.quantity++
			return
		}
	}
	s.lines = append(s.lines, &LineItem{item: item, duration: d, quantity: 1})
}

// Remove drops every line matching the item ID, regardless of duration.
func (s *Store) Remove(itemID uuid.UUID) bool {
	kept := s.lines[:0]
	removed := false
	for _, l := range s.lines {
		if l.item.ID == itemID {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	s.lines = kept
	return removed
}

// SetQuantity addresses lines by item ID alone while lines are keyed by
// (item ID, duration). When two durations of the same item coexist, the first
// matching line in insertion order is the one updated; that resolution is an
// invariant, not an accident. A quantity of zero or less removes the item.
func (s *Store) SetQuantity(itemID uuid.UUID, qty int) error {
	if qty <= 0 {
		if !s.Remove(itemID) {
			return ErrLineNotFound
		}
		return nil
	}
	for _, l := range s.lines {
		if l.item.ID == itemID {
			l.quantity = qty
			return nil
		}
	}
	return ErrLineNotFound
}

// SetDuration updates every line matching the item ID. When the change lands
// two lines on the same (item ID, duration) key their quantities are merged
// into the earlier line, keeping the key unique.
func (s *Store) SetDuration(itemID uuid.UUID, d pricing.Duration) error {
	found := false
	for _, l := range s.lines {
		if l.item.ID != itemID {
			continue
		}
		if err := pricing.ValidateDuration(l.item, d); err != nil {
			return err
		}
		found = true
	}
	if !found {
		return ErrLineNotFound
	}

	for _, l := range s.lines {
		if l.item.ID == itemID {
			l.duration = d
		}
	}
	s.mergeDuplicates()
	return nil
}

func (s *Store) mergeDuplicates() {
	kept := s.lines[:0]
	for _, l := range s.lines {
		merged := false
		for _, k := range kept {
			if k.item.ID == l.item.ID && k.duration.Equal(l.duration) {
				k.quantity += l.quantity
				merged = true
				break
			}
		}
		if !merged {
			kept = append(kept, l)
		}
	}
	s.lines = kept
}

func (s *Store) Clear() {
	s.lines = nil
}

func (s *Store) IsEmpty() bool {
	return len(s.lines) == 0
}

func (s *Store) Contains(itemID uuid.UUID) bool {
	for _, l := range s.lines {
		if l.item.ID == itemID {
			return true
		}
	}
	return false
}

// Lines returns the line items in insertion order. The slice is a copy; the
// line items themselves are not.
func (s *Store) Lines() []*LineItem {
	out := make([]*LineItem, len(s.lines))
	copy(out, s.lines)
	return out
}

// ItemCount is the sum of quantities, used for the cart badge.
func (s *Store) ItemCount() int {
	count := 0
	for _, l := range s.lines {
		count += l.quantity
	}
	return count
}

// Total sums price x quantity over all numerically priced lines and flags
// whether any quote-required lines were excluded.
func (s *Store) Total(policy pricing.Policy) (Total, error) {
	var t Total
	for _, l := range s.lines {
		price, err := policy.PriceFor(l.item, l.duration)
		if err != nil {
			return Total{}, errs.Wrapf(err, "pricing line item %s", l.item.ID)
		}
		if price.IsQuoteRequired() {
			t.HasQuoteRequired = true
			continue
		}
		t.Cents += price.Mul(l.quantity).Cents()
	}
	return t, nil
}
