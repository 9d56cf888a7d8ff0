package quote

import (
	"time"

	"castle-rentals/internal/domain/catalog"
	"castle-rentals/internal/domain/pricing"
	"castle-rentals/internal/domain/selection"
	"castle-rentals/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyFirstStep = errs.New("already on the first step")
	ErrAlreadyLastStep  = errs.New("already on the last step")
	ErrEntryNotFound    = errs.New("item is not part of the quote draft")
	ErrEntryInSelection = errs.New("item is tracked by the cart and cannot be deselected from the wizard")
	ErrNotOnContactStep = errs.New("quote can only be submitted from the contact step")
)

type Step string

const (
	StepEvent   Step = "event"
	StepItems   Step = "items"
	StepContact Step = "contact"
)

var stepOrder = []Step{StepEvent, StepItems, StepContact}

func (s Step) index() int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return 0
}

type EventDetails struct {
	EventType string
	EventDate time.Time
	Address   string
	City      string
	Notes     string
}

type ContactDetails struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Entry is one selected item in the wizard. fromStore marks entries the cart
// currently tracks; those propagate duration changes back to it, follow
// cart-side duration edits, and cannot be deselected here. overridden marks
// entries whose duration was set individually in step 2, so a later global
// default does not apply.
type Entry struct {
	item       catalog.Item
	duration   pricing.Duration
	fromStore  bool
	overridden bool
}

func (e *Entry) Item() catalog.Item         { return e.item }
func (e *Entry) Duration() pricing.Duration { return e.duration }
func (e *Entry) FromStore() bool            { return e.fromStore }
func (e *Entry) Overridden() bool           { return e.overridden }

// Draft drives the three-step quote wizard. It keeps a reference to the
// visitor's selection store so durations of shared items never silently
// disagree between the cart and the wizard.
type Draft struct {
	step           Step
	event          EventDetails
	contact        ContactDetails
	globalDuration pricing.Duration
	entries        []*Entry
	store          *selection.Store
}

// NewDraft seeds the wizard from the store's current contents. The global
// duration is only taken from the cart when every line agrees on one;
// otherwise it stays at the one-day default rather than guessing.
func NewDraft(store *selection.Store) *Draft {
	d := &Draft{
		step:           StepEvent,
		globalDuration: pricing.OneDay(),
		store:          store,
	}

	lines := store.Lines()
	if len(lines) > 0 {
		shared := lines[0].Duration()
		allShared := true
		for _, l := range lines[1:] {
			if !l.Duration().Equal(shared) {
				allShared = false
				break
			}
		}
		if allShared {
			d.globalDuration = shared
		}
	}

	for _, l := range lines {
		d.entries = append(d.entries, &Entry{
			item:       l.Item(),
			duration:   l.Duration(),
			fromStore:  true,
			overridden: !l.Duration().Equal(d.globalDuration),
		})
	}
	return d
}

func (d *Draft) Step() Step                       { return d.step }
func (d *Draft) Event() EventDetails              { return d.event }
func (d *Draft) Contact() ContactDetails          { return d.contact }
func (d *Draft) GlobalDuration() pricing.Duration { return d.globalDuration }

// syncFromStore reconciles entries with the cart before the draft is read or
// mutated. The cart wins for items it tracks: an entry follows its cart
// line's duration, and an entry whose item left the cart becomes draft-only.
// Items with several cart lines follow the first-inserted one, matching the
// cart's own item-only addressing.
func (d *Draft) syncFromStore() {
	for _, e := range d.entries {
		line := d.firstLine(e.item.ID)
		if line == nil {
			e.fromStore = false
			continue
		}
		e.fromStore = true
		if !e.duration.Equal(line.Duration()) {
			e.duration = line.Duration()
			e.overridden = false
		}
	}
}

func (d *Draft) firstLine(itemID uuid.UUID) *selection.LineItem {
	for _, l := range d.store.Lines() {
		if l.Item().ID == itemID {
			return l
		}
	}
	return nil
}

// Entries returns the draft entries in selection order as a copied slice.
func (d *Draft) Entries() []*Entry {
	d.syncFromStore()
	out := make([]*Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d *Draft) Next() error {
	i := d.step.index()
	if i == len(stepOrder)-1 {
		return ErrAlreadyLastStep
	}
	d.step = stepOrder[i+1]
	return nil
}

func (d *Draft) Back() error {
	i := d.step.index()
	if i == 0 {
		return ErrAlreadyFirstStep
	}
	d.step = stepOrder[i-1]
	return nil
}

func (d *Draft) SetEvent(ev EventDetails) {
	d.event = ev
}

func (d *Draft) SetContact(c ContactDetails) {
	d.contact = c
}

// SetGlobalDuration applies the step-1 duration selector. Every entry is
// reset to the new duration; entries that the cart also tracks push the
// change into the cart so the two surfaces stay in agreement.
func (d *Draft) SetGlobalDuration(dur pricing.Duration) error {
	d.syncFromStore()
	for _, e := range d.entries {
		if err := pricing.ValidateDuration(e.item, dur); err != nil {
			return errs.Wrapf(err, "item %s", e.item.Name)
		}
	}

	d.globalDuration = dur
	for _, e := range d.entries {
		e.duration = dur
		e.overridden = false
		if d.store.Contains(e.item.ID) {
			if err := d.store.SetDuration(e.item.ID, dur); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetEntryDuration applies a per-item duration override in step 2, with the
// same cart propagation as the global selector but for this item only.
func (d *Draft) SetEntryDuration(itemID uuid.UUID, dur pricing.Duration) error {
	d.syncFromStore()
	e := d.findEntry(itemID)
	if e == nil {
		return ErrEntryNotFound
	}
	if err := pricing.ValidateDuration(e.item, dur); err != nil {
		return err
	}

	e.duration = dur
	e.overridden = true
	if d.store.Contains(itemID) {
		if err := d.store.SetDuration(itemID, dur); err != nil {
			return err
		}
	}
	return nil
}

// Select records an item as chosen in step 2. Items the cart already tracks
// are recorded against the cart line without touching it; anything else
// becomes a draft-only entry. New entries start from the global duration,
// falling back to one day when the item cannot carry it (no two-day price).
func (d *Draft) Select(item catalog.Item) {
	if d.findEntry(item.ID) != nil {
		return
	}
	dur := d.globalDuration
	if pricing.ValidateDuration(item, dur) != nil {
		dur = pricing.OneDay()
	}
	d.entries = append(d.entries, &Entry{
		item:      item,
		duration:  dur,
		fromStore: d.store.Contains(item.ID),
	})
}

// Deselect removes a draft-only entry. Entries the cart currently tracks are
// read-only here; the cart is the only surface that removes them. Whether an
// entry is cart-tracked is checked against the live cart, so an item removed
// from the cart becomes deselectable again.
func (d *Draft) Deselect(itemID uuid.UUID) error {
	d.syncFromStore()
	for i, e := range d.entries {
		if e.item.ID != itemID {
			continue
		}
		if e.fromStore {
			return ErrEntryInSelection
		}
		d.entries = append(d.entries[:i], d.entries[i+1:]...)
		return nil
	}
	return ErrEntryNotFound
}

// Estimate prices one unit per entry (the wizard does not track quantities)
// using each entry's own duration. The global duration only ever acts as the
// default entries start from, never as a second multiplier on top of a
// per-item price. A single quote-required entry makes the whole estimate
// quote-required.
func (d *Draft) Estimate(policy pricing.Policy) (pricing.Price, error) {
	d.syncFromStore()
	var cents int64
	for _, e := range d.entries {
		price, err := policy.PriceFor(e.item, e.duration)
		if err != nil {
			return pricing.Price{}, errs.Wrapf(err, "pricing entry %s", e.item.ID)
		}
		if price.IsQuoteRequired() {
			return pricing.QuoteRequired(), nil
		}
		cents += price.Cents()
	}
	return pricing.NewPrice(cents), nil
}

func (d *Draft) findEntry(itemID uuid.UUID) *Entry {
	for _, e := range d.entries {
		if e.item.ID == itemID {
			return e
		}
	}
	return nil
}
