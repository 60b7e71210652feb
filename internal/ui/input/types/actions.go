package types

// CommandAction carries a command identifier. Arg is the target index for
// goToIndex and the window size for resizeWindow.
type CommandAction struct {
	ID  string
	Arg int
}

func (a CommandAction) Type() string { return "command" }

// Selection actions
type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// View actions
type TogglePolicyAction struct{}

func (a TogglePolicyAction) Type() string { return "toggle_policy" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type SearchNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a SearchNavigateAction) Type() string { return "search_navigate" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
