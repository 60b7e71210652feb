package navigation

import (
	"vlist/internal/ui/services/events"
	"vlist/internal/viewport"
)

// Service drives the viewport engine from UI intents and publishes the
// resulting cursor and viewport changes
type Service struct {
	engine *viewport.Engine
	bus    events.EventBus
}

// NewService creates a new navigation service
func NewService(bus events.EventBus, engine *viewport.Engine) *Service {
	return &Service{
		engine: engine,
		bus:    bus,
	}
}

// State returns the current viewport state
func (s *Service) State() viewport.State {
	return s.engine.State()
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.engine.State().Focus
}

// PageSize is the distance page up and page down travel
func (s *Service) PageSize() int {
	return max(s.engine.State().Width(), 1)
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) error {
	st := s.engine.State()

	var (
		t   viewport.Transition
		err error
	)
	switch direction {
	case DirectionUp:
		t, err = s.engine.MoveFocus(-1)
	case DirectionDown:
		t, err = s.engine.MoveFocus(1)
	case DirectionPageUp:
		t, err = s.engine.JumpFocus(max(st.Focus-s.PageSize(), 0))
	case DirectionPageDown:
		t, err = s.engine.JumpFocus(min(st.Focus+s.PageSize(), st.Count-1))
	case DirectionHome:
		t, err = s.engine.JumpFocus(0)
	case DirectionEnd:
		t, err = s.engine.JumpFocus(st.Count - 1)
	default:
		return nil
	}
	s.publish(t)
	return err
}

// MoveToIndex moves cursor to specific index. Out of range indices are ignored.
func (s *Service) MoveToIndex(index int) error {
	t, err := s.engine.JumpFocus(index)
	s.publish(t)
	return err
}

// Resize sets the window to n items
func (s *Service) Resize(n int) error {
	t, err := s.engine.ResizeWindow(n)
	s.publish(t)
	return err
}

// ResizeBy grows or shrinks the window by delta items
func (s *Service) ResizeBy(delta int) error {
	return s.Resize(s.engine.State().Width() + delta)
}

// SetItemCount reconciles the viewport with a list of n items
func (s *Service) SetItemCount(n int) error {
	t, err := s.engine.Reconcile(n)
	s.publish(t)
	return err
}

// Policy returns the active scroll policy
func (s *Service) Policy() viewport.Policy {
	return s.engine.Policy()
}

// SetPolicy swaps the scroll policy
func (s *Service) SetPolicy(p viewport.Policy) {
	if p == nil || p.Name() == s.engine.Policy().Name() {
		return
	}
	s.engine.SetPolicy(p)
	s.bus.Publish(PolicyChangedEvent{Policy: p.Name()})
}

// TogglePolicy switches between edge-follow and centered scrolling
func (s *Service) TogglePolicy() viewport.Policy {
	s.SetPolicy(viewport.Toggle(s.engine.Policy()))
	return s.engine.Policy()
}

func (s *Service) publish(t viewport.Transition) {
	if !t.Changed() {
		return
	}
	if t.FocusChanged() {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: t.Prev.Focus,
			NewIndex: t.Next.Focus,
		})
	}
	if t.WindowChanged() || t.Prev.Count != t.Next.Count {
		s.bus.Publish(ViewportChangedEvent{
			Start: t.Next.Start,
			End:   t.Next.End,
			Size:  t.Next.Size,
			Count: t.Next.Count,
		})
	}
}
