package state

import "fmt"

// AppState contains the UI state that is not owned by a service
type AppState struct {
	// Source data
	SourceName string
	Watching   bool
	Loaded     bool // first ItemsLoaded received

	// Window sizing
	FixedSize   bool // false follows the terminal height
	DesiredSize int  // window size asked for while FixedSize is set

	// UI state
	ShowHelp         bool
	HelpScrollOffset int
	StatusMessage    string // status bar message
	StatusIsError    bool
	statusSeq        int
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetStatus shows an informational message and returns its sequence number
func (s *AppState) SetStatus(format string, args ...any) int {
	s.StatusMessage = fmt.Sprintf(format, args...)
	s.StatusIsError = false
	s.statusSeq++
	return s.statusSeq
}

// SetError shows an error message and returns its sequence number
func (s *AppState) SetError(format string, args ...any) int {
	seq := s.SetStatus(format, args...)
	s.StatusIsError = true
	return seq
}

// ClearStatus clears the message if it is still the one identified by seq
func (s *AppState) ClearStatus(seq int) bool {
	if seq != s.statusSeq {
		return false
	}
	s.StatusMessage = ""
	s.StatusIsError = false
	return true
}

// ToggleHelp shows or hides the help overlay
func (s *AppState) ToggleHelp() {
	s.ShowHelp = !s.ShowHelp
	s.HelpScrollOffset = 0
}

// ScrollHelp moves the help overlay by delta lines, never above the top
func (s *AppState) ScrollHelp(delta int) {
	s.HelpScrollOffset = max(s.HelpScrollOffset+delta, 0)
}
