package search

import (
	"github.com/charmbracelet/log"

	"vlist/internal/ui/services/events"
)

// Service handles search functionality
type Service struct {
	state      *State
	bus        events.EventBus
	matcherFn  func(string) []MatchResult
	navigateFn func(int) error
}

// NewService creates a new search service
func NewService(bus events.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// SetMatcherFunction sets the function to find matches, best match first
func (s *Service) SetMatcherFunction(fn func(string) []MatchResult) {
	s.matcherFn = fn
}

// SetNavigateFunction sets the function that focuses an item index
func (s *Service) SetNavigateFunction(fn func(int) error) {
	s.navigateFn = fn
}

// StartSearch runs query and focuses the best match
func (s *Service) StartSearch(query string) error {
	s.state.Query = query
	s.bus.Publish(SearchStartedEvent{Query: query})

	if query == "" {
		s.ClearSearch()
		return nil
	}
	return s.performSearch()
}

// Refresh re-runs the current query against changed items without moving focus
func (s *Service) Refresh() {
	if s.state.Query == "" || s.matcherFn == nil {
		return
	}
	s.state.Matches = s.matcherFn(s.state.Query)
	if s.state.CurrentMatch >= len(s.state.Matches) {
		s.state.CurrentMatch = 0
	}
}

// ClearSearch clears the current search
func (s *Service) ClearSearch() {
	s.state.Query = ""
	s.state.Matches = nil
	s.state.CurrentMatch = 0
	s.bus.Publish(SearchClearedEvent{})
}

// NavigateNext moves to the next search result
func (s *Service) NavigateNext() error {
	return s.step(1)
}

// NavigatePrevious moves to the previous search result
func (s *Service) NavigatePrevious() error {
	return s.step(-1)
}

func (s *Service) step(delta int) error {
	n := len(s.state.Matches)
	if n == 0 {
		return nil
	}
	old := s.state.Matches[s.state.CurrentMatch].Index
	s.state.CurrentMatch = ((s.state.CurrentMatch+delta)%n + n) % n

	err := s.navigateToCurrentMatch()
	s.bus.Publish(SearchNavigatedEvent{
		OldIndex: old,
		NewIndex: s.state.Matches[s.state.CurrentMatch].Index,
	})
	return err
}

// GetQuery returns the current search query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// GetMatchCount returns the number of matches
func (s *Service) GetMatchCount() int {
	return len(s.state.Matches)
}

// GetCurrentMatchIndex returns the item index of the current match, or -1
func (s *Service) GetCurrentMatchIndex() int {
	if len(s.state.Matches) == 0 {
		return -1
	}
	return s.state.Matches[s.state.CurrentMatch].Index
}

// GetCurrentMatchPosition returns the 1-based position of the current match
func (s *Service) GetCurrentMatchPosition() int {
	if len(s.state.Matches) == 0 {
		return 0
	}
	return s.state.CurrentMatch + 1
}

// MatchFor returns the match for an item index, if any
func (s *Service) MatchFor(index int) (MatchResult, bool) {
	for _, m := range s.state.Matches {
		if m.Index == index {
			return m, true
		}
	}
	return MatchResult{}, false
}

func (s *Service) performSearch() error {
	if s.matcherFn == nil {
		return nil
	}

	s.state.Matches = s.matcherFn(s.state.Query)
	s.state.CurrentMatch = 0
	log.Debug("search completed", "query", s.state.Query, "matches", len(s.state.Matches))

	first := -1
	if len(s.state.Matches) > 0 {
		first = s.state.Matches[0].Index
	}
	s.bus.Publish(SearchCompletedEvent{
		Query:      s.state.Query,
		MatchCount: len(s.state.Matches),
		FirstMatch: first,
	})
	return s.navigateToCurrentMatch()
}

func (s *Service) navigateToCurrentMatch() error {
	if s.navigateFn == nil || len(s.state.Matches) == 0 {
		return nil
	}
	return s.navigateFn(s.state.Matches[s.state.CurrentMatch].Index)
}
