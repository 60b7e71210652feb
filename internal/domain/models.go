package domain

// Item is a single entry of the browsed list
type Item struct {
	ID   string // stable across reloads of the same source
	Text string
	Line int // 1-based line in the source, 0 for generated items
}

// Snapshot is a read-only view of the list at one point in time
type Snapshot []Item

// At returns the item at index, or false when index is out of range
func (s Snapshot) At(index int) (Item, bool) {
	if index < 0 || index >= len(s) {
		return Item{}, false
	}
	return s[index], true
}

// Len returns the number of items
func (s Snapshot) Len() int {
	return len(s)
}

// Texts returns the item texts in order
func (s Snapshot) Texts() []string {
	texts := make([]string, len(s))
	for i, it := range s {
		texts[i] = it.Text
	}
	return texts
}

// SourceInfo describes where the list came from
type SourceInfo struct {
	Name     string // file path, or "generated"
	Watching bool
}
