package input

import (
	"vlist/internal/domain"
	"vlist/internal/ui/services/navigation"
	"vlist/internal/ui/services/search"
	"vlist/internal/ui/services/selection"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Navigation *navigation.Service
	Search     *search.Service
	Selection  *selection.Service
	Items      func() domain.Snapshot
	Bound      func(id string) bool
}

// CurrentIndex returns the focused index
func (c *ModelContext) CurrentIndex() int {
	return c.Navigation.GetCursor()
}

// TotalItems returns the list length
func (c *ModelContext) TotalItems() int {
	return c.Navigation.State().Count
}

// WindowSize returns the number of visible items
func (c *ModelContext) WindowSize() int {
	return c.Navigation.State().Width()
}

// PageSize returns the page up/down distance
func (c *ModelContext) PageSize() int {
	return c.Navigation.PageSize()
}

// SearchQuery returns the current search query
func (c *ModelContext) SearchQuery() string {
	return c.Search.GetQuery()
}

// CurrentItemText returns the text of the focused item
func (c *ModelContext) CurrentItemText() string {
	if c.Items == nil {
		return ""
	}
	it, ok := c.Items().At(c.CurrentIndex())
	if !ok {
		return ""
	}
	return it.Text
}

// HasSelection returns true if any items are marked
func (c *ModelContext) HasSelection() bool {
	return c.Selection.GetCount() > 0
}

// HasCommand reports whether the focused item currently handles id
func (c *ModelContext) HasCommand(id string) bool {
	return c.Bound != nil && c.Bound(id)
}
