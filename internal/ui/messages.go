package ui

import (
	"vlist/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerClosedMsg is sent when the pager returns control to the list
type pagerClosedMsg struct {
	title string
	err   error
}

// clearStatusMsg clears the status message identified by seq
type clearStatusMsg struct {
	seq int
}
