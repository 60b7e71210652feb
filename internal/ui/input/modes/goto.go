package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"vlist/internal/ui/input/types"
)

// GotoMode reads a 1-based line number
type GotoMode struct {
	TextInputMode
}

func NewGotoMode(ti *textinput.Model) *GotoMode {
	return &GotoMode{
		TextInputMode: NewTextInputMode(types.ModeGoto, "goto", ":", ti),
	}
}

// ResizeMode reads a new window size
type ResizeMode struct {
	TextInputMode
}

func NewResizeMode(ti *textinput.Model) *ResizeMode {
	return &ResizeMode{
		TextInputMode: NewTextInputMode(types.ModeResize, "resize", "window size: ", ti),
	}
}
