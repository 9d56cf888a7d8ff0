//go:build unit

package ordering_test

import (
	"testing"
	"time"

	"castle-rentals/internal/domain/ordering"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func members(n int) []ordering.Member {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]ordering.Member, n)
	for i := range out {
		out[i] = ordering.Member{
			ID:        uuid.New(),
			Order:     i + 1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return out
}

func TestPlan_MoveForward(t *testing.T) {
	// [A,B,C,D], move A to B's position: only A and B change.
	ms := members(4)
	a, b := ms[0], ms[1]

	changes := ordering.Plan(ms, a.ID, b.ID)

	expected := []ordering.Change{
		{ID: b.ID, From: 2, To: 1},
		{ID: a.ID, From: 1, To: 2},
	}
	if diff := cmp.Diff(expected, changes); diff != "" {
		t.Errorf("unexpected change set (-want +got):\n%s", diff)
	}
}

func TestPlan_MoveBackward(t *testing.T) {
	// [A,B,C,D], move D to B's position: B, C and D shift.
	ms := members(4)
	b, c, d := ms[1], ms[2], ms[3]

	changes := ordering.Plan(ms, d.ID, b.ID)

	expected := []ordering.Change{
		{ID: d.ID, From: 4, To: 2},
		{ID: b.ID, From: 2, To: 3},
		{ID: c.ID, From: 3, To: 4},
	}
	if diff := cmp.Diff(expected, changes); diff != "" {
		t.Errorf("unexpected change set (-want +got):\n%s", diff)
	}
}

func TestPlan_RestoresDenseIndices(t *testing.T) {
	// Orders with gaps and a duplicate, as a partially failed past write
	// could leave behind. A completed reorder must restore a dense 1..N.
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ms := []ordering.Member{
		{ID: uuid.New(), Order: 2, CreatedAt: base},
		{ID: uuid.New(), Order: 2, CreatedAt: base.Add(time.Minute)},
		{ID: uuid.New(), Order: 7, CreatedAt: base.Add(2 * time.Minute)},
	}

	changes := ordering.Plan(ms, ms[2].ID, ms[0].ID)

	final := map[uuid.UUID]int{}
	for _, m := range ms {
		final[m.ID] = m.Order
	}
	for _, ch := range changes {
		final[ch.ID] = ch.To
	}

	seen := map[int]bool{}
	for _, order := range final {
		assert.False(t, seen[order], "duplicate order %d", order)
		seen[order] = true
	}
	for want := 1; want <= len(ms); want++ {
		assert.True(t, seen[want], "missing order %d", want)
	}
}

func TestPlan_NoOps(t *testing.T) {
	ms := members(4)

	t.Run("source equals target", func(t *testing.T) {
		require.Nil(t, ordering.Plan(ms, ms[0].ID, ms[0].ID))
	})

	t.Run("source missing from the collection", func(t *testing.T) {
		require.Nil(t, ordering.Plan(ms, uuid.New(), ms[1].ID))
	})

	t.Run("target missing from the collection", func(t *testing.T) {
		require.Nil(t, ordering.Plan(ms, ms[0].ID, uuid.New()))
	})
}

func TestPlan_TiesBrokenByCreationTime(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	older := ordering.Member{ID: uuid.New(), Order: 1, CreatedAt: base}
	newer := ordering.Member{ID: uuid.New(), Order: 1, CreatedAt: base.Add(time.Hour)}
	last := ordering.Member{ID: uuid.New(), Order: 3, CreatedAt: base}

	// Input deliberately not in sorted order.
	changes := ordering.Plan([]ordering.Member{newer, last, older}, last.ID, newer.ID)

	// older keeps position 1; last lands where newer sat; newer shifts down.
	final := map[uuid.UUID]int{older.ID: 1, newer.ID: 1, last.ID: 3}
	for _, ch := range changes {
		final[ch.ID] = ch.To
	}
	assert.Equal(t, 1, final[older.ID])
	assert.Equal(t, 2, final[last.ID])
	assert.Equal(t, 3, final[newer.ID])
}
