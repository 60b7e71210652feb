package selection

import (
	"slices"

	"vlist/internal/ui/services/events"
)

// Service tracks which items are marked, keyed by item ID
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new selection service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{Marked: make(map[string]bool)},
		bus:   bus,
	}
}

// Toggle flips the mark of id and reports whether it is now marked
func (s *Service) Toggle(id string) bool {
	var added, removed []string
	if s.state.Marked[id] {
		delete(s.state.Marked, id)
		removed = append(removed, id)
	} else {
		s.state.Marked[id] = true
		added = append(added, id)
	}

	s.bus.Publish(SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(s.state.Marked),
	})
	return s.state.Marked[id]
}

// DeselectAll clears all marks
func (s *Service) DeselectAll() {
	s.state.Marked = make(map[string]bool)
	s.bus.Publish(SelectionClearedEvent{})
}

// IsSelected checks if an item is marked
func (s *Service) IsSelected(id string) bool {
	return s.state.Marked[id]
}

// GetSelected returns the marked IDs in sorted order
func (s *Service) GetSelected() []string {
	ids := make([]string, 0, len(s.state.Marked))
	for id := range s.state.Marked {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// GetCount returns the number of marked items
func (s *Service) GetCount() int {
	return len(s.state.Marked)
}

// RemoveFromSelection forgets marks of items that are gone
func (s *Service) RemoveFromSelection(ids []string) {
	var removed []string
	for _, id := range ids {
		if s.state.Marked[id] {
			delete(s.state.Marked, id)
			removed = append(removed, id)
		}
	}

	if len(removed) > 0 {
		s.bus.Publish(SelectionChangedEvent{
			Removed: removed,
			Total:   len(s.state.Marked),
		})
	}
}

// Retain drops marks whose IDs are not in live, used after a reload
func (s *Service) Retain(live []string) {
	keep := make(map[string]bool, len(live))
	for _, id := range live {
		keep[id] = true
	}
	var gone []string
	for id := range s.state.Marked {
		if !keep[id] {
			gone = append(gone, id)
		}
	}
	s.RemoveFromSelection(gone)
}
