//go:build unit

package quote_test

import (
	"testing"
	"time"

	"castle-rentals/internal/domain/catalog"
	"castle-rentals/internal/domain/pricing"
	"castle-rentals/internal/domain/quote"
	"castle-rentals/internal/domain/selection"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(name string, oneDayCents int64) catalog.Item {
	return catalog.Item{
		ID:               uuid.New(),
		Name:             name,
		PriceOneDayCents: oneDayCents,
	}
}

func withTwoDayPrice(item catalog.Item, cents int64) catalog.Item {
	item.PriceTwoDaysCents = &cents
	return item
}

func mustCustom(t *testing.T, days int) pricing.Duration {
	t.Helper()
	d, err := pricing.Custom(days)
	require.NoError(t, err)
	return d
}

func TestNewDraft_Seeding(t *testing.T) {
	t.Run("empty cart seeds an empty draft with one-day default", func(t *testing.T) {
		draft := quote.NewDraft(selection.NewStore())

		assert.Equal(t, quote.StepEvent, draft.Step())
		assert.Empty(t, draft.Entries())
		assert.Equal(t, pricing.KindOneDay, draft.GlobalDuration().Kind())
	})

	t.Run("cart lines sharing one duration set the global duration", func(t *testing.T) {
		store := selection.NewStore()
		a := withTwoDayPrice(newItem("Pirate Ship", 15000), 25000)
		b := withTwoDayPrice(newItem("Jungle Run", 18000), 30000)
		store.Add(a, pricing.TwoDays())
		store.Add(b, pricing.TwoDays())

		draft := quote.NewDraft(store)

		assert.Equal(t, pricing.KindTwoDays, draft.GlobalDuration().Kind())
		require.Len(t, draft.Entries(), 2)
		for _, e := range draft.Entries() {
			assert.True(t, e.FromStore())
			assert.Equal(t, pricing.KindTwoDays, e.Duration().Kind())
		}
	})

	t.Run("mixed durations keep the one-day default instead of guessing", func(t *testing.T) {
		store := selection.NewStore()
		a := withTwoDayPrice(newItem("Pirate Ship", 15000), 25000)
		b := newItem("Jungle Run", 18000)
		store.Add(a, pricing.TwoDays())
		store.Add(b, mustCustom(t, 5))

		draft := quote.NewDraft(store)

		assert.Equal(t, pricing.KindOneDay, draft.GlobalDuration().Kind())
		entries := draft.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, pricing.KindTwoDays, entries[0].Duration().Kind())
		assert.Equal(t, pricing.KindCustom, entries[1].Duration().Kind())
	})
}

func TestDraft_Navigation(t *testing.T) {
	draft := quote.NewDraft(selection.NewStore())

	require.ErrorIs(t, draft.Back(), quote.ErrAlreadyFirstStep)

	require.NoError(t, draft.Next())
	assert.Equal(t, quote.StepItems, draft.Step())
	require.NoError(t, draft.Next())
	assert.Equal(t, quote.StepContact, draft.Step())
	require.ErrorIs(t, draft.Next(), quote.ErrAlreadyLastStep)

	t.Run("returning to a prior step preserves entered data", func(t *testing.T) {
		event := quote.EventDetails{EventType: "birthday", City: "Lyon"}
		draft.SetEvent(event)

		require.NoError(t, draft.Back())
		require.NoError(t, draft.Back())
		assert.Equal(t, quote.StepEvent, draft.Step())
		assert.Equal(t, event, draft.Event())
	})
}

func TestDraft_GlobalDurationPropagation(t *testing.T) {
	t.Run("updates cart lines for shared items and local entries otherwise", func(t *testing.T) {
		store := selection.NewStore()
		shared := withTwoDayPrice(newItem("Pirate Ship", 15000), 25000)
		store.Add(shared, pricing.OneDay())

		draft := quote.NewDraft(store)
		draftOnly := withTwoDayPrice(newItem("Cotton Candy Stand", 5000), 8000)
		draft.Select(draftOnly)

		require.NoError(t, draft.SetGlobalDuration(pricing.TwoDays()))

		assert.Equal(t, pricing.KindTwoDays, store.Lines()[0].Duration().Kind())
		for _, e := range draft.Entries() {
			assert.Equal(t, pricing.KindTwoDays, e.Duration().Kind())
		}
	})

	t.Run("rejected when any entry cannot carry the duration, nothing changes", func(t *testing.T) {
		store := selection.NewStore()
		noTwoDay := newItem("Jungle Run", 18000)
		store.Add(noTwoDay, pricing.OneDay())

		draft := quote.NewDraft(store)

		err := draft.SetGlobalDuration(pricing.TwoDays())
		require.ErrorIs(t, err, pricing.ErrNoTwoDayPrice)
		assert.Equal(t, pricing.KindOneDay, draft.GlobalDuration().Kind())
		assert.Equal(t, pricing.KindOneDay, store.Lines()[0].Duration().Kind())
	})
}

func TestDraft_EntryDurationPropagation(t *testing.T) {
	store := selection.NewStore()
	shared := newItem("Pirate Ship", 15000)
	other := newItem("Jungle Run", 18000)
	store.Add(shared, pricing.OneDay())
	store.Add(other, pricing.OneDay())

	draft := quote.NewDraft(store)

	require.NoError(t, draft.SetEntryDuration(shared.ID, mustCustom(t, 4)))

	lines := store.Lines()
	assert.Equal(t, pricing.KindCustom, lines[0].Duration().Kind())
	assert.Equal(t, pricing.KindOneDay, lines[1].Duration().Kind(), "only the edited item propagates")

	require.ErrorIs(t, draft.SetEntryDuration(uuid.New(), pricing.OneDay()), quote.ErrEntryNotFound)
}

func TestDraft_Toggle(t *testing.T) {
	store := selection.NewStore()
	inCart := newItem("Pirate Ship", 15000)
	store.Add(inCart, pricing.OneDay())

	draft := quote.NewDraft(store)

	t.Run("selecting a cart-tracked item never touches the cart", func(t *testing.T) {
		draft.Select(inCart)
		assert.Equal(t, 1, store.ItemCount())
		assert.Len(t, draft.Entries(), 1)
	})

	t.Run("selecting a new item creates a draft-only entry", func(t *testing.T) {
		extra := newItem("Popcorn Machine", 4000)
		draft.Select(extra)

		assert.Len(t, draft.Entries(), 2)
		assert.False(t, store.Contains(extra.ID))

		require.NoError(t, draft.Deselect(extra.ID))
		assert.Len(t, draft.Entries(), 1)
	})

	t.Run("cart-backed entries cannot be deselected from the wizard", func(t *testing.T) {
		err := draft.Deselect(inCart.ID)
		require.ErrorIs(t, err, quote.ErrEntryInSelection)
		assert.Equal(t, 1, store.ItemCount())
	})
}

func TestDraft_CartReconciliation(t *testing.T) {
	t.Run("cart duration edits show through an existing draft", func(t *testing.T) {
		store := selection.NewStore()
		item := withTwoDayPrice(newItem("Pirate Ship", 15000), 25000)
		store.Add(item, pricing.OneDay())

		draft := quote.NewDraft(store)
		require.NoError(t, store.SetDuration(item.ID, pricing.TwoDays()))

		entries := draft.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, pricing.KindTwoDays, entries[0].Duration().Kind())

		estimate, err := draft.Estimate(pricing.NewDegressivePolicy())
		require.NoError(t, err)
		assert.Equal(t, int64(25000), estimate.Cents())
	})

	t.Run("cart edit overrides a wizard-set entry duration", func(t *testing.T) {
		store := selection.NewStore()
		item := withTwoDayPrice(newItem("Pirate Ship", 15000), 25000)
		store.Add(item, pricing.OneDay())

		draft := quote.NewDraft(store)
		require.NoError(t, draft.SetEntryDuration(item.ID, mustCustom(t, 4)))
		require.NoError(t, store.SetDuration(item.ID, pricing.TwoDays()))

		entries := draft.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, pricing.KindTwoDays, entries[0].Duration().Kind())
	})

	t.Run("item removed from the cart becomes deselectable", func(t *testing.T) {
		store := selection.NewStore()
		item := newItem("Pirate Ship", 15000)
		store.Add(item, pricing.OneDay())

		draft := quote.NewDraft(store)
		require.True(t, store.Remove(item.ID))

		entries := draft.Entries()
		require.Len(t, entries, 1)
		assert.False(t, entries[0].FromStore())

		require.NoError(t, draft.Deselect(item.ID))
		assert.Empty(t, draft.Entries())
	})
}

func TestDraft_Estimate(t *testing.T) {
	policy := pricing.NewDegressivePolicy()

	t.Run("one unit per entry at the entry's own duration", func(t *testing.T) {
		store := selection.NewStore()
		a := withTwoDayPrice(newItem("Pirate Ship", 15000), 25000)
		store.Add(a, pricing.TwoDays())

		draft := quote.NewDraft(store)
		popcorn := newItem("Popcorn Machine", 4000)
		draft.Select(popcorn)
		require.NoError(t, draft.SetEntryDuration(popcorn.ID, pricing.OneDay()))

		estimate, err := draft.Estimate(policy)
		require.NoError(t, err)
		assert.False(t, estimate.IsQuoteRequired())
		assert.Equal(t, int64(25000+4000), estimate.Cents())
	})

	t.Run("one quote-required entry makes the whole estimate quote-required", func(t *testing.T) {
		store := selection.NewStore()
		store.Add(newItem("Pirate Ship", 18000), pricing.OneDay())

		draft := quote.NewDraft(store)
		draft.Select(catalog.Item{ID: uuid.New(), Name: "Giant Obstacle Course", HasCustomPricing: true})

		estimate, err := draft.Estimate(policy)
		require.NoError(t, err)
		assert.True(t, estimate.IsQuoteRequired())
	})
}

func TestDraft_BuildSummary(t *testing.T) {
	policy := pricing.NewDegressivePolicy()
	now := time.Date(2026, 5, 12, 10, 0, 0, 0, time.UTC)

	t.Run("only valid on the contact step", func(t *testing.T) {
		draft := quote.NewDraft(selection.NewStore())
		_, err := draft.BuildSummary(policy, now)
		require.ErrorIs(t, err, quote.ErrNotOnContactStep)
	})

	t.Run("resolves entries, estimate and metadata into an immutable record", func(t *testing.T) {
		store := selection.NewStore()
		item := newItem("Pirate Ship", 15000)
		store.Add(item, pricing.OneDay())

		draft := quote.NewDraft(store)
		draft.SetEvent(quote.EventDetails{EventType: "wedding", City: "Nantes"})
		draft.SetContact(quote.ContactDetails{Name: "Ana", Email: "ana@example.com"})
		require.NoError(t, draft.Next())
		require.NoError(t, draft.Next())

		summary, err := draft.BuildSummary(policy, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, summary.ID)
		assert.Equal(t, "wedding", summary.Event.EventType)
		assert.Equal(t, "Ana", summary.Contact.Name)
		require.Len(t, summary.Entries, 1)
		assert.Equal(t, item.ID, summary.Entries[0].ItemID)
		assert.Equal(t, int64(15000), summary.EstimateCents)
		assert.False(t, summary.QuoteRequired)
		assert.Equal(t, now, summary.SubmittedAt)
	})
}
