// Package ordering implements dense 1..N display-order maintenance for
// collections of persisted entities. The same algorithm serves catalog items
// and gallery photos; callers project their entities into Members and apply
// the resulting change set through their own persistence.
package ordering

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Member is the projection of an ordered entity that the algorithm needs.
type Member struct {
	ID        uuid.UUID
	Order     int
	CreatedAt time.Time
}

// Change is one order-field update. From is the order the entity held before
// the move, To the dense index it must be written with.
type Change struct {
	ID   uuid.UUID
	From int
	To   int
}

// FromSlice projects an entity slice into Members.
func FromSlice[T any](xs []T, project func(T) Member) []Member {
	members := make([]Member, len(xs))
	for i, x := range xs {
		members[i] = project(x)
	}
	return members
}

// Plan computes the minimal change set for moving source to target's
// position: sort by order (creation time as the stable tiebreaker), pull the
// source out, reinsert it where the target sat, then assign index+1 to every
// member whose resulting order differs from its stored one. A move onto
// itself or with an unknown ID is a no-op and plans zero writes.
func Plan(members []Member, sourceID, targetID uuid.UUID) []Change {
	if sourceID == targetID {
		return nil
	}

	sorted := make([]Member, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	sourceIdx, targetIdx := -1, -1
	for i, m := range sorted {
		switch m.ID {
		case sourceID:
			sourceIdx = i
		case targetID:
			targetIdx = i
		}
	}
	if sourceIdx < 0 || targetIdx < 0 {
		return nil
	}

	moved := sorted[sourceIdx]
	rest := append(sorted[:sourceIdx:sourceIdx], sorted[sourceIdx+1:]...)
	if targetIdx > len(rest) {
		targetIdx = len(rest)
	}
	reordered := make([]Member, 0, len(sorted))
	reordered = append(reordered, rest[:targetIdx]...)
	reordered = append(reordered, moved)
	reordered = append(reordered, rest[targetIdx:]...)

	var changes []Change
	for i, m := range reordered {
		if want := i + 1; m.Order != want {
			changes = append(changes, Change{ID: m.ID, From: m.Order, To: want})
		}
	}
	return changes
}
