package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventItemsLoaded     EventType = "ItemsLoaded"
	EventItemActivated   EventType = "ItemActivated"
	EventItemRemoved     EventType = "ItemRemoved"
	EventError           EventType = "Error"
	EventWatchStarted    EventType = "WatchStarted"
	EventReloadRequested EventType = "ReloadRequested"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventConfigChanged   EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ItemsLoadedEvent is emitted when the source produced a full list
type ItemsLoadedEvent struct {
	Source string
	Items  []Item
	Reload bool // true when triggered by a change on disk
}

func (e ItemsLoadedEvent) Type() EventType { return EventItemsLoaded }

// ItemActivatedEvent is emitted when the focused item receives the activate command
type ItemActivatedEvent struct {
	Index int
	Item  Item
}

func (e ItemActivatedEvent) Type() EventType { return EventItemActivated }

// ItemRemovedEvent is emitted after an item was deleted from the list
type ItemRemovedEvent struct {
	Index int
	Item  Item
}

func (e ItemRemovedEvent) Type() EventType { return EventItemRemoved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// WatchStartedEvent is emitted once the source starts watching for changes
type WatchStartedEvent struct {
	Path string
}

func (e WatchStartedEvent) Type() EventType { return EventWatchStarted }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when a runtime preference changed and may be persisted
type ConfigChangedEvent struct {
	Policy     string
	WindowSize int
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ReloadRequestedEvent asks the item source to read its input again
type ReloadRequestedEvent struct{}

func (e ReloadRequestedEvent) Type() EventType { return EventReloadRequested }
