package linkorder

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"biolink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLink(title string, position int) *entity.Link {
	return &entity.Link{ID: uuid.New(), Title: title, Position: position, Details: entity.GeneralDetails{}}
}

func titles(links []*entity.Link) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Title)
	}

	return out
}

func positions(links []*entity.Link) []int {
	out := make([]int, 0, len(links))
	for _, l := range links {
		out = append(out, l.Position)
	}

	return out
}

func TestReorder_MoveFirstToLast(t *testing.T) {
	links := []*entity.Link{newLink("A", 5), newLink("B", 9), newLink("C", 1)}

	got, err := Reorder(links, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "C", "A"}, titles(got))
	assert.Equal(t, []int{0, 1, 2}, positions(got))
	assert.Equal(t, []int{5, 9, 1}, positions(links), "input must not be mutated")
}

func TestReorder_SameIndexIsNoop(t *testing.T) {
	links := []*entity.Link{newLink("A", 5), newLink("B", 9)}

	got, err := Reorder(links, 1, 1)
	require.NoError(t, err)

	assert.Same(t, links[0], got[0])
	assert.Equal(t, []int{5, 9}, positions(got))
}

func TestReorder_Contiguous(t *testing.T) {
	tests := []struct {
		name     string
		src, dst int
		want     []string
	}{
		{name: "down", src: 1, dst: 3, want: []string{"A", "C", "D", "B", "E"}},
		{name: "up", src: 4, dst: 0, want: []string{"E", "A", "B", "C", "D"}},
		{name: "adjacent", src: 2, dst: 3, want: []string{"A", "B", "D", "C", "E"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := []*entity.Link{newLink("A", 0), newLink("B", 2), newLink("C", 2), newLink("D", 10), newLink("E", 11)}

			got, err := Reorder(links, tt.src, tt.dst)
			require.NoError(t, err)

			assert.Equal(t, tt.want, titles(got))
			assert.True(t, IsContiguous(got))
		})
	}
}

func TestReorder_IndexOutOfRange(t *testing.T) {
	links := []*entity.Link{newLink("A", 0), newLink("B", 1)}

	for _, idx := range [][2]int{{-1, 0}, {0, 2}, {2, 0}, {0, -3}} {
		_, err := Reorder(links, idx[0], idx[1])
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}

	_, err := Reorder(nil, 0, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestPositionUpdates_OnlyChanged(t *testing.T) {
	links := []*entity.Link{newLink("A", 0), newLink("B", 1), newLink("C", 2), newLink("D", 3)}

	after, err := Reorder(links, 1, 2)
	require.NoError(t, err)

	updates := PositionUpdates(links, after)
	require.Len(t, updates, 2)
	assert.Equal(t, PositionUpdate{LinkID: links[2].ID, Position: 1}, updates[0])
	assert.Equal(t, PositionUpdate{LinkID: links[1].ID, Position: 2}, updates[1])
}

func TestPositionUpdates_SkipsPositionThatHappensToMatch(t *testing.T) {
	links := []*entity.Link{newLink("A", 5), newLink("B", 9), newLink("C", 1)}

	after, err := Reorder(links, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, titles(after))
	assert.Equal(t, []int{0, 1, 2}, positions(after))

	// C already sat at 1, so only B and A are written
	updates := PositionUpdates(links, after)
	require.Len(t, updates, 2)
	assert.Equal(t, PositionUpdate{LinkID: links[1].ID, Position: 0}, updates[0])
	assert.Equal(t, PositionUpdate{LinkID: links[0].ID, Position: 2}, updates[1])
}

func TestPositionUpdates_RewritesGaps(t *testing.T) {
	links := []*entity.Link{newLink("A", 5), newLink("B", 9), newLink("C", 7)}

	after, err := Reorder(links, 0, 2)
	require.NoError(t, err)

	updates := PositionUpdates(links, after)
	require.Len(t, updates, 3)
	assert.Equal(t, []PositionUpdate{
		{LinkID: links[1].ID, Position: 0},
		{LinkID: links[2].ID, Position: 1},
		{LinkID: links[0].ID, Position: 2},
	}, updates)
}

func TestNextPosition(t *testing.T) {
	assert.Equal(t, 8, NextPosition([]*entity.Link{newLink("A", 0), newLink("B", 3), newLink("C", 7)}))
	assert.Equal(t, 0, NextPosition(nil))
	assert.Equal(t, 8, NextPosition([]*entity.Link{newLink("C", 7), newLink("A", 0)}))
}

func TestDeleteLeavesGap(t *testing.T) {
	links := []*entity.Link{newLink("A", 0), newLink("B", 1), newLink("C", 2)}

	remaining := []*entity.Link{links[0], links[2]}
	assert.Equal(t, []int{0, 2}, positions(remaining))
	assert.False(t, IsContiguous(remaining))
	assert.Equal(t, 3, NextPosition(remaining))

	after, err := Reorder(remaining, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, titles(after))
	assert.True(t, IsContiguous(after))
}

func TestSort_TieBreaksByCreation(t *testing.T) {
	now := time.Now()
	a := newLink("A", 1)
	a.CreatedAt = now.Add(time.Minute)
	b := newLink("B", 1)
	b.CreatedAt = now
	c := newLink("C", 0)

	links := []*entity.Link{a, b, c}
	Sort(links)

	assert.Equal(t, []string{"C", "B", "A"}, titles(links))
}

func TestPlan_CommitAndFail(t *testing.T) {
	links := []*entity.Link{newLink("A", 0), newLink("B", 1), newLink("C", 2)}

	plan := NewPlan(links)
	assert.Equal(t, StateStable, plan.State())

	changed, err := plan.Begin(0, 2)
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, StateReordering, plan.State())
	assert.Equal(t, []string{"B", "C", "A"}, titles(plan.Links()))
	assert.Len(t, plan.Updates(), 3)

	_, err = plan.Begin(0, 1)
	assert.ErrorIs(t, err, ErrReorderInFlight)

	plan.Fail()
	assert.Equal(t, StateStable, plan.State())
	assert.True(t, plan.Reverted())
	assert.True(t, plan.NeedsRefetch())
	assert.Equal(t, []string{"A", "B", "C"}, titles(plan.Links()))

	plan.Resync(links)
	assert.False(t, plan.NeedsRefetch())

	changed, err = plan.Begin(2, 0)
	require.NoError(t, err)
	require.True(t, changed)
	plan.Commit()
	assert.Equal(t, StateStable, plan.State())
	assert.False(t, plan.Reverted())
	assert.Equal(t, []string{"C", "A", "B"}, titles(plan.Links()))
}

func TestPlan_NoopStaysStable(t *testing.T) {
	plan := NewPlan([]*entity.Link{newLink("A", 0), newLink("B", 1)})

	changed, err := plan.Begin(1, 1)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, StateStable, plan.State())
	assert.Empty(t, plan.Updates())
}

func TestGate_SerializesSameUser(t *testing.T) {
	gate := NewGate()
	userID := uuid.New()

	var inFlight, maxInFlight int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := gate.Do(context.Background(), userID, func() error {
				cur := atomic.AddInt32(&inFlight, 1)
				for {
					prev := atomic.LoadInt32(&maxInFlight)
					if cur <= prev || atomic.CompareAndSwapInt32(&maxInFlight, prev, cur) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inFlight, -1)

				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInFlight)
	assert.Empty(t, gate.slots)
}

func TestGate_ContextCancelled(t *testing.T) {
	gate := NewGate()
	userID := uuid.New()

	release, err := gate.Acquire(context.Background(), userID)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = gate.Acquire(ctx, userID)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()
	release()

	other, err := gate.Acquire(context.Background(), uuid.New())
	require.NoError(t, err)
	other()
	assert.Empty(t, gate.slots)
}
