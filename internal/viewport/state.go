package viewport

import (
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by every InvariantError.
var ErrInvariant = errors.New("viewport invariant violated")

// State is an immutable snapshot of a window over a list of Count items.
// End is exclusive. Size is the requested width and may exceed Count.
type State struct {
	Focus int
	Start int
	End   int
	Size  int
	Count int
}

// Empty returns the canonical state of an empty list.
func Empty(size int) State {
	if size < 1 {
		size = 1
	}
	return State{Size: size}
}

// Width returns the number of visible items.
func (s State) Width() int {
	return s.End - s.Start
}

// EffectiveSize returns min(Size, Count).
func (s State) EffectiveSize() int {
	if s.Count < s.Size {
		return s.Count
	}
	return s.Size
}

// Contains reports whether index lies inside the window.
func (s State) Contains(index int) bool {
	return index >= s.Start && index < s.End
}

// IsEmpty reports whether the list has no items.
func (s State) IsEmpty() bool {
	return s.Count <= 0
}

func (s State) String() string {
	return fmt.Sprintf("focus=%d window=[%d,%d) size=%d count=%d", s.Focus, s.Start, s.End, s.Size, s.Count)
}

// Validate returns an *InvariantError for the first broken rule, or nil.
func (s State) Validate() error {
	if s.Size < 1 {
		return &InvariantError{State: s, Rule: "size must be positive"}
	}
	if s.Count <= 0 {
		if s.Start != 0 || s.End != 0 || s.Focus != 0 {
			return &InvariantError{State: s, Rule: "empty list must have an empty window at 0"}
		}
		return nil
	}
	if s.Start < 0 || s.End > s.Count {
		return &InvariantError{State: s, Rule: "window must lie inside [0, count]"}
	}
	if s.Focus < s.Start || s.Focus >= s.End {
		return &InvariantError{State: s, Rule: "focus must lie inside the window"}
	}
	if s.Width() != s.EffectiveSize() {
		return &InvariantError{State: s, Rule: "window width must equal min(size, count)"}
	}
	return nil
}

// InvariantError reports a state that broke one of the window rules.
type InvariantError struct {
	State State
	Rule  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrInvariant, e.Rule, e.State)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// Transition pairs the state before and after an operation.
type Transition struct {
	Prev State
	Next State
}

// Changed reports whether the operation produced a different state.
func (t Transition) Changed() bool {
	return t.Prev != t.Next
}

// FocusChanged reports whether the focused index moved.
func (t Transition) FocusChanged() bool {
	return t.Prev.Focus != t.Next.Focus
}

// WindowChanged reports whether the visible range or its target size moved.
func (t Transition) WindowChanged() bool {
	return t.Prev.Start != t.Next.Start || t.Prev.End != t.Next.End || t.Prev.Size != t.Next.Size
}

// trueUp brings the window back to min(Size, Count) items inside [0, Count],
// growing or shrinking alternately at both ends. Focus is left alone.
func trueUp(s State) State {
	if s.Count <= 0 {
		return Empty(s.Size)
	}
	if s.Size < 1 {
		s.Size = 1
	}
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > s.Count {
		s.End = s.Count
	}
	if s.Start > s.End {
		s.Start = s.End
	}

	want := s.EffectiveSize()
	atEnd := true
	for s.Width() < want {
		if (atEnd && s.End < s.Count) || s.Start == 0 {
			s.End++
		} else {
			s.Start--
		}
		atEnd = !atEnd
	}
	for s.Width() > want {
		if (atEnd && s.End-1 > s.Focus) || s.Start >= s.Focus {
			s.End--
		} else {
			s.Start++
		}
		atEnd = !atEnd
	}
	return s
}

// repair returns the nearest valid state: window trued up and focus clamped into it.
func repair(s State) State {
	s = trueUp(s)
	if s.Count <= 0 {
		return s
	}
	if s.Focus < s.Start {
		s.Focus = s.Start
	}
	if s.Focus >= s.End {
		s.Focus = s.End - 1
	}
	return s
}
