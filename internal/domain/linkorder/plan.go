package linkorder

import (
	"biolink/internal/domain/entity"
	"biolink/internal/errors"
)

// State is the lifecycle state of a reorder.
type State string

const (
	// StateStable means no reorder is in flight and the visible order matches the store.
	StateStable State = "stable"
	// StateReordering means the optimistic order is visible and persistence is in flight.
	StateReordering State = "reordering"
)

// ErrReorderInFlight is returned when Begin is called on a plan that is already reordering.
var ErrReorderInFlight = errors.New("reorder already in flight")

// Plan tracks one reorder from the optimistic order to commit or revert.
type Plan struct {
	state        State
	before       []*entity.Link
	after        []*entity.Link
	updates      []PositionUpdate
	reverted     bool
	needsRefetch bool
}

// NewPlan returns a stable plan over the current authoritative order.
func NewPlan(current []*entity.Link) *Plan {
	return &Plan{state: StateStable, before: current, after: current}
}

// Begin computes the optimistic order for moving src to dst.
// It returns false when the move is a no-op, in which case the plan stays stable
// and nothing needs to be persisted.
func (p *Plan) Begin(src, dst int) (bool, error) {
	if p.state == StateReordering {
		return false, ErrReorderInFlight
	}

	after, err := Reorder(p.before, src, dst)
	if err != nil {
		return false, err
	}

	updates := PositionUpdates(p.before, after)
	if len(updates) == 0 {
		return false, nil
	}

	p.state = StateReordering
	p.after = after
	p.updates = updates
	p.reverted = false
	p.needsRefetch = false

	return true, nil
}

// Commit marks the optimistic order as persisted.
func (p *Plan) Commit() {
	p.state = StateStable
	p.before = p.after
}

// Fail reverts the visible order to the pre-reorder list and flags that the
// authoritative list must be re-fetched.
func (p *Plan) Fail() {
	p.state = StateStable
	p.after = p.before
	p.reverted = true
	p.needsRefetch = true
}

// Resync replaces the visible order with the authoritative list from the store.
func (p *Plan) Resync(authoritative []*entity.Link) {
	p.before = authoritative
	p.after = authoritative
	p.needsRefetch = false
}

// State returns the current lifecycle state.
func (p *Plan) State() State { return p.state }

// Links returns the visible order: optimistic while reordering, authoritative otherwise.
func (p *Plan) Links() []*entity.Link { return p.after }

// Updates returns the position writes the reorder needs.
func (p *Plan) Updates() []PositionUpdate { return p.updates }

// Reverted reports whether the last reorder failed and was rolled back.
func (p *Plan) Reverted() bool { return p.reverted }

// NeedsRefetch reports whether the visible order must be replaced from the store.
func (p *Plan) NeedsRefetch() bool { return p.needsRefetch }
