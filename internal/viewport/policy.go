package viewport

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("unknown scroll policy")

// Policy decides where the window goes when focus moves to target.
// Implementations must be pure. A target outside [0, Count) yields the
// trued-up current state.
type Policy interface {
	Name() string
	Apply(cur State, target int) State
}

// Policy names accepted by ParsePolicy.
const (
	PolicyEdgeFollow = "edge"
	PolicyCentered   = "centered"
)

// EdgeFollow scrolls only when the focus would leave the window, by the
// smallest shift that brings it back in.
type EdgeFollow struct{}

// Name returns the policy name
func (EdgeFollow) Name() string { return PolicyEdgeFollow }

// Apply moves the window one unit at a time until target is inside it.
func (EdgeFollow) Apply(cur State, target int) State {
	next := trueUp(cur)
	if next.Count == 0 || target < 0 || target >= next.Count {
		return next
	}
	for target >= next.End {
		next.Start++
		next.End++
	}
	for target < next.Start {
		next.Start--
		next.End--
	}
	next.Focus = target
	return next
}

// Centered keeps the focus on the window midpoint unless a list end is reached.
type Centered struct{}

// Name returns the policy name
func (Centered) Name() string { return PolicyCentered }

// Apply shifts the window towards target until floor((Start+End)/2) equals
// target or the window hits an end of the list.
func (Centered) Apply(cur State, target int) State {
	next := trueUp(cur)
	if next.Count == 0 || target < 0 || target >= next.Count {
		return next
	}
	if target == next.Focus && next.Contains(target) {
		return next
	}
	next.Focus = target
	for {
		mid := (next.Start + next.End) / 2
		switch {
		case target > mid && next.End < next.Count:
			next.Start++
			next.End++
		case target < mid && next.Start > 0:
			next.Start--
			next.End--
		default:
			return next
		}
	}
}

// ParsePolicy maps a configured name to a policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyEdgeFollow, "edge-follow", "follow":
		return EdgeFollow{}, nil
	case PolicyCentered, "center", "middle":
		return Centered{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Toggle returns the other built-in policy.
func Toggle(p Policy) Policy {
	if _, ok := p.(Centered); ok {
		return EdgeFollow{}
	}
	return Centered{}
}
