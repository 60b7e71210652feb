package viewport

import (
	"fmt"
	"strings"
)

// ResizePreference picks which end of the window moves first on resize.
type ResizePreference int

const (
	// PreferEnd grows and shrinks at End, falling back to Start.
	PreferEnd ResizePreference = iota
	// PreferStart grows and shrinks at Start, falling back to End.
	PreferStart
)

func (p ResizePreference) String() string {
	if p == PreferStart {
		return "start"
	}
	return "end"
}

// ParseResizePreference maps "end" or "start" to a preference.
func ParseResizePreference(name string) (ResizePreference, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "end":
		return PreferEnd, nil
	case "start":
		return PreferStart, nil
	}
	return PreferEnd, fmt.Errorf("unknown resize preference %q", name)
}

// resize sets the target size to n and adjusts the window one unit at a time
// towards min(n, Count) items. clamped reports that focus had to be pulled
// back into the window afterwards.
func resize(cur State, n int, pref ResizePreference) (next State, clamped bool) {
	next = cur
	next.Size = n
	want := next.EffectiveSize()

	for next.Width() < want {
		switch {
		case pref == PreferEnd && next.End < next.Count, pref == PreferStart && next.Start == 0:
			next.End++
		default:
			next.Start--
		}
	}
	for next.Width() > want {
		switch {
		case pref == PreferEnd && next.Focus < next.End-1, pref == PreferStart && next.Focus == next.Start:
			next.End--
		default:
			next.Start++
		}
	}

	if next.Focus >= next.End {
		next.Focus = next.End - 1
		clamped = true
	}
	if next.Focus < next.Start {
		next.Focus = next.Start
		clamped = true
	}
	return next, clamped
}
