package selection

// State holds selection state
type State struct {
	Marked map[string]bool // item ID -> marked
}

// Event types
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

type SelectionClearedEvent struct{}
