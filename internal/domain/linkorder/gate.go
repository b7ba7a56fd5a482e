package linkorder

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Gate serializes mutations of one user's link list. Callers for the same user queue
// behind the holder; different users never block each other.
type Gate struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*slot
}

type slot struct {
	sem     chan struct{}
	waiters int
}

// NewGate returns an empty gate.
func NewGate() *Gate {
	return &Gate{slots: make(map[uuid.UUID]*slot)}
}

// Acquire blocks until the caller holds the user's slot or ctx is done.
// The returned release func must be called exactly once.
func (g *Gate) Acquire(ctx context.Context, userID uuid.UUID) (func(), error) {
	g.mu.Lock()
	s, ok := g.slots[userID]
	if !ok {
		s = &slot{sem: make(chan struct{}, 1)}
		g.slots[userID] = s
	}
	s.waiters++
	g.mu.Unlock()

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		g.leave(userID, s)
		return nil, ctx.Err()
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			<-s.sem
			g.leave(userID, s)
		})
	}

	return release, nil
}

// Do runs fn while holding the user's slot.
func (g *Gate) Do(ctx context.Context, userID uuid.UUID, fn func() error) error {
	release, err := g.Acquire(ctx, userID)
	if err != nil {
		return err
	}
	defer release()

	return fn()
}

func (g *Gate) leave(userID uuid.UUID, s *slot) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s.waiters--
	if s.waiters == 0 {
		delete(g.slots, userID)
	}
}
