// Package linkorder maintains the total order of a user's links.
package linkorder

import (
	"slices"
	"sort"

	"biolink/internal/domain/entity"
	"biolink/internal/errors"

	"github.com/google/uuid"
)

// ErrIndexOutOfRange is returned when a reorder index does not address a link in the list.
var ErrIndexOutOfRange = errors.New("reorder index out of range")

// PositionUpdate is a single (link, new position) pair to persist.
type PositionUpdate struct {
	LinkID   uuid.UUID `json:"link_id"`
	Position int       `json:"position"`
}

// Sort orders links by position ascending, breaking ties by creation time and then id
// so a list with gaps or duplicates still has one total order.
func Sort(links []*entity.Link) {
	sort.SliceStable(links, func(i, j int) bool {
		a, b := links[i], links[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}

		return a.ID.String() < b.ID.String()
	})
}

// Reorder moves the link at src to dst with list-splice semantics and rewrites every
// position to its index. When src equals dst the input slice is returned unchanged.
// The input is never mutated; the result holds clones.
func Reorder(links []*entity.Link, src, dst int) ([]*entity.Link, error) {
	n := len(links)
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "source %d, destination %d, length %d", src, dst, n)
	}

	if src == dst {
		return links, nil
	}

	reordered := make([]*entity.Link, 0, n)
	for _, l := range links {
		reordered = append(reordered, l.Clone())
	}

	moved := reordered[src]
	reordered = slices.Delete(reordered, src, src+1)
	reordered = slices.Insert(reordered, dst, moved)

	for i, l := range reordered {
		l.Position = i
	}

	return reordered, nil
}

// PositionUpdates returns the links of after whose position differs from before,
// in the order they appear in after.
func PositionUpdates(before, after []*entity.Link) []PositionUpdate {
	previous := make(map[uuid.UUID]int, len(before))
	for _, l := range before {
		previous[l.ID] = l.Position
	}

	var updates []PositionUpdate
	for _, l := range after {
		if pos, ok := previous[l.ID]; ok && pos == l.Position {
			continue
		}
		updates = append(updates, PositionUpdate{LinkID: l.ID, Position: l.Position})
	}

	return updates
}

// NextPosition returns the position for a newly appended link: max(position)+1, or 0 when empty.
func NextPosition(links []*entity.Link) int {
	if len(links) == 0 {
		return 0
	}

	highest := links[0].Position
	for _, l := range links[1:] {
		if l.Position > highest {
			highest = l.Position
		}
	}

	return highest + 1
}

// IsContiguous reports whether the positions of links, in slice order, are exactly 0..N-1.
func IsContiguous(links []*entity.Link) bool {
	for i, l := range links {
		if l.Position != i {
			return false
		}
	}

	return true
}
