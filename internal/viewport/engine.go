// Package viewport keeps a fixed-size window of visible indices over a list
// of N items and moves it as the focused index changes, the window is
// resized, or the list length changes underneath it.
//
// Every operation returns a Transition. Requests that fall outside the list
// are silent no-ops. A transition that would break a window rule is repaired,
// logged and returned together with an *InvariantError.
package viewport

import (
	"github.com/charmbracelet/log"
)

// Engine owns the viewport state of one list.
type Engine struct {
	state  State
	policy Policy
	pref   ResizePreference
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy sets the scroll policy. The default is EdgeFollow.
func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		if p != nil {
			e.policy = p
		}
	}
}

// WithResizePreference sets which end of the window moves first on resize.
func WithResizePreference(p ResizePreference) Option {
	return func(e *Engine) {
		e.pref = p
	}
}

// WithLogger sets the logger used for invariant reports.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine for a list of count items with a target window size.
// Focus starts at 0 and the window at the top of the list.
func New(count, size int, opts ...Option) *Engine {
	if count < 0 {
		count = 0
	}
	e := &Engine{
		state:  trueUp(State{Size: max(size, 1), Count: count}),
		policy: EdgeFollow{},
		pref:   PreferEnd,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Policy returns the active scroll policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// SetPolicy swaps the scroll policy. The current window is kept as is and
// the new policy applies from the next move.
func (e *Engine) SetPolicy(p Policy) {
	if p != nil {
		e.policy = p
	}
}

// ResizePreference returns the active resize preference.
func (e *Engine) ResizePreference() ResizePreference {
	return e.pref
}

// MoveFocus moves focus by delta. Moves that leave the list are ignored.
func (e *Engine) MoveFocus(delta int) (Transition, error) {
	if e.state.Count == 0 || delta == 0 {
		return e.noop(), nil
	}
	target := e.state.Focus + delta
	if target < 0 || target >= e.state.Count {
		return e.noop(), nil
	}
	return e.commit("move", e.policy.Apply(e.state, target), nil)
}

// JumpFocus moves focus directly to target. Targets outside the list are ignored.
func (e *Engine) JumpFocus(target int) (Transition, error) {
	if e.state.Count == 0 || target < 0 || target >= e.state.Count {
		return e.noop(), nil
	}
	return e.commit("jump", e.policy.Apply(e.state, target), nil)
}

// ResizeWindow sets the target window size to n. The visible width is
// min(n, Count); the target is kept so the window grows back when the list does.
// Non-positive sizes and empty lists are ignored.
func (e *Engine) ResizeWindow(n int) (Transition, error) {
	if e.state.Count == 0 || n < 1 {
		return e.noop(), nil
	}
	next, clamped := resize(e.state, n, e.pref)
	var cause error
	if clamped {
		cause = &InvariantError{State: next, Rule: "resize left focus outside the window"}
	}
	return e.commit("resize", next, cause)
}

// Reconcile fits the window to a list that now has newCount items.
func (e *Engine) Reconcile(newCount int) (Transition, error) {
	if newCount < 0 {
		newCount = 0
	}
	return e.commit("reconcile", reconcile(e.state, newCount), nil)
}

func (e *Engine) noop() Transition {
	return Transition{Prev: e.state, Next: e.state}
}

// commit validates next, repairs it when needed and makes it current.
func (e *Engine) commit(op string, next State, cause error) (Transition, error) {
	prev := e.state
	err := cause
	if verr := next.Validate(); verr != nil {
		if err == nil {
			err = verr
		}
		next = repair(next)
	}
	if err != nil {
		e.logger.Error("viewport invariant repaired", "op", op, "state", next.String(), "err", err)
	}

	e.state = next
	t := Transition{Prev: prev, Next: next}
	if t.Changed() {
		e.logger.Debug("viewport transition", "op", op, "from", prev.String(), "to", next.String())
	}
	return t, err
}
