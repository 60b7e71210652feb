package types

// Command identifiers. The first group moves the viewport, everything else
// is delivered to the focused item.
const (
	CmdIncrement    = "increment"
	CmdDecrement    = "decrement"
	CmdGoToIndex    = "goToIndex"
	CmdResizeWindow = "resizeWindow"

	CmdToggle   = "toggle"
	CmdActivate = "activate"
	CmdYank     = "yank"
	CmdOpen     = "open"
	CmdDelete   = "delete"
)

// IsViewportCommand reports whether id is handled by the viewport rather than an item
func IsViewportCommand(id string) bool {
	switch id {
	case CmdIncrement, CmdDecrement, CmdGoToIndex, CmdResizeWindow:
		return true
	}
	return false
}
