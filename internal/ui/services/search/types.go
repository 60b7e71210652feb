package search

// State holds search state
type State struct {
	Query        string
	Matches      []MatchResult
	CurrentMatch int // position in Matches
}

// MatchResult represents a search match
type MatchResult struct {
	Index          int   // item index in the list
	Text           string
	MatchedIndexes []int // byte offsets of matched characters in Text
	Score          int
}

// Event types
type SearchStartedEvent struct {
	Query string
}

type SearchCompletedEvent struct {
	Query      string
	MatchCount int
	FirstMatch int // Index of first match (-1 if none)
}

type SearchClearedEvent struct{}

type SearchNavigatedEvent struct {
	OldIndex int
	NewIndex int
}
