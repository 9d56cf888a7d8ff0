//go:build unit

package selection_test

import (
	"testing"

	"castle-rentals/internal/domain/catalog"
	"castle-rentals/internal/domain/pricing"
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

func TestStore_Add(t *testing.T) {
	t.Run("same item and duration collapses into one line with quantity 2", func(t *testing.T) {
		store := selection.NewStore()
		item := newItem("Pirate Ship", 15000)

		store.Add(item, pricing.OneDay())
		store.Add(item, pricing.OneDay())

		lines := store.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity())
		assert.Equal(t, 2, store.ItemCount())
	})

	t.Run("same item with two durations stays two distinct lines", func(t *testing.T) {
		store := selection.NewStore()
		item := withTwoDayPrice(newItem("Pirate Ship", 15000), 25000)

		store.Add(item, pricing.OneDay())
		store.Add(item, pricing.TwoDays())
		store.Add(item, pricing.TwoDays())

		require.Len(t, store.Lines(), 2)
		assert.Equal(t, 3, store.ItemCount())
	})
}

func TestStore_Remove(t *testing.T) {
	t.Run("removes every duration of the item", func(t *testing.T) {
		store := selection.NewStore()
		item := withTwoDayPrice(newItem("Pirate Ship", 15000), 25000)
		other := newItem("Popcorn Machine", 4000)

		store.Add(item, pricing.OneDay())
		store.Add(item, pricing.TwoDays())
		store.Add(other, pricing.OneDay())

		assert.True(t, store.Remove(item.ID))

		lines := store.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, other.ID, lines[0].Item().ID)
	})

	t.Run("unknown item reports false", func(t *testing.T) {
		store := selection.NewStore()
		assert.False(t, store.Remove(uuid.New()))
	})
}

func TestStore_SetQuantity(t *testing.T) {
	t.Run("zero or negative removes the item", func(t *testing.T) {
		store := selection.NewStore()
		item := newItem("Pirate Ship", 15000)
		store.Add(item, pricing.OneDay())

		require.NoError(t, store.SetQuantity(item.ID, 0))
		assert.True(t, store.IsEmpty())
	})

	t.Run("updates the first matching line in insertion order when two durations coexist", func(t *testing.T) {
		store := selection.NewStore()
		item := withTwoDayPrice(newItem("Pirate Ship", 15000), 25000)
		store.Add(item, pricing.TwoDays())
		store.Add(item, pricing.OneDay())

		require.NoError(t, store.SetQuantity(item.ID, 5))

		lines := store.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, pricing.KindTwoDays, lines[0].Duration().Kind())
		assert.Equal(t, 5, lines[0].Quantity())
		assert.Equal(t, 1, lines[1].Quantity())
	})

	t.Run("unknown item is an error and leaves the store unchanged", func(t *testing.T) {
		store := selection.NewStore()
		store.Add(newItem("Pirate Ship", 15000), pricing.OneDay())

		err := store.SetQuantity(uuid.New(), 3)
		require.ErrorIs(t, err, selection.ErrLineNotFound)
		assert.Equal(t, 1, store.ItemCount())
	})
}

func TestStore_SetDuration(t *testing.T) {
	t.Run("updates all lines for the item", func(t *testing.T) {
		store := selection.NewStore()
		item := withTwoDayPrice(newItem("Pirate Ship", 15000), 25000)
		store.Add(item, pricing.OneDay())

		require.NoError(t, store.SetDuration(item.ID, pricing.TwoDays()))
		assert.Equal(t, pricing.KindTwoDays, store.Lines()[0].Duration().Kind())
	})

	t.Run("merging two durations onto one key combines quantities", func(t *testing.T) {
		store := selection.NewStore()
		item := withTwoDayPrice(newItem("Pirate Ship", 15000), 25000)
		store.Add(item, pricing.OneDay())
		store.Add(item, pricing.OneDay())
		store.Add(item, pricing.TwoDays())

		require.NoError(t, store.SetDuration(item.ID, mustCustom(t, 4)))

		lines := store.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity())
		assert.Equal(t, 3, store.ItemCount())
	})

	t.Run("rejects two days when the item has no two-day price, state unchanged", func(t *testing.T) {
		store := selection.NewStore()
		item := newItem("Pirate Ship", 15000)
		store.Add(item, pricing.OneDay())

		err := store.SetDuration(item.ID, pricing.TwoDays())
		require.ErrorIs(t, err, pricing.ErrNoTwoDayPrice)
		assert.Equal(t, pricing.KindOneDay, store.Lines()[0].Duration().Kind())
	})
}

func TestStore_Total(t *testing.T) {
	policy := pricing.NewDegressivePolicy()

	t.Run("duration change replaces the line price, still quantity-scaled", func(t *testing.T) {
		store := selection.NewStore()
		item := withTwoDayPrice(newItem("Structure X", 15000), 25000)

		store.Add(item, pricing.OneDay())
		store.Add(item, pricing.OneDay())

		total, err := store.Total(policy)
		require.NoError(t, err)
		assert.Equal(t, int64(30000), total.Cents)

		require.NoError(t, store.SetDuration(item.ID, pricing.TwoDays()))

		total, err = store.Total(policy)
		require.NoError(t, err)
		assert.Equal(t, int64(50000), total.Cents)
	})

	t.Run("quote-required lines are excluded from the sum and flagged", func(t *testing.T) {
		store := selection.NewStore()
		quoted := catalog.Item{ID: uuid.New(), Name: "Giant Obstacle Course", HasCustomPricing: true}

		store.Add(newItem("Pirate Ship", 18000), pricing.OneDay())
		store.Add(quoted, pricing.OneDay())

		total, err := store.Total(policy)
		require.NoError(t, err)
		assert.Equal(t, int64(18000), total.Cents)
		assert.True(t, total.HasQuoteRequired)
	})

	t.Run("empty store totals to zero without the flag", func(t *testing.T) {
		total, err := selection.NewStore().Total(policy)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total.Cents)
		assert.False(t, total.HasQuoteRequired)
	})
}
