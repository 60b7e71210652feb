package views

import (
	"strings"

	"vlist/internal/viewport"
)

const (
	trackGlyph = "│"
	thumbGlyph = "┃"
)

// Scrollbar is the row split of the scroll indicator for one frame
type Scrollbar struct {
	Height  int
	Before  int
	Thumb   int
	After   int
	Visible bool
}

// MeasureScrollbar derives the indicator for height rows from the window.
// The thumb is proportional to the window width and rounded up so it never
// disappears; the tracks are rounded down. Nothing is shown when the whole
// list fits.
func MeasureScrollbar(height int, st viewport.State) Scrollbar {
	if height <= 0 || st.Count == 0 || st.Size >= st.Count {
		return Scrollbar{Height: height}
	}

	width := st.Width()
	thumb := ceilDiv(height*width, st.Count)
	before := height * st.Start / st.Count
	after := height * (st.Count - st.End) / st.Count

	thumb = min(max(thumb, 1), height)
	if before+thumb > height {
		before = height - thumb
	}
	if before+thumb+after > height {
		after = height - before - thumb
	}
	return Scrollbar{Height: height, Before: before, Thumb: thumb, After: after, Visible: true}
}

// Rows returns one glyph per row, empty when hidden
func (sb Scrollbar) Rows(styles *Styles) []string {
	if !sb.Visible {
		return nil
	}
	rows := make([]string, sb.Height)
	for i := range rows {
		if i >= sb.Before && i < sb.Before+sb.Thumb {
			rows[i] = styles.ScrollThumb.Render(thumbGlyph)
		} else {
			rows[i] = styles.ScrollTrack.Render(trackGlyph)
		}
	}
	return rows
}

// String renders the bar unstyled, top to bottom
func (sb Scrollbar) String() string {
	if !sb.Visible {
		return ""
	}
	var b strings.Builder
	for i := 0; i < sb.Height; i++ {
		if i >= sb.Before && i < sb.Before+sb.Thumb {
			b.WriteString(thumbGlyph)
		} else {
			b.WriteString(trackGlyph)
		}
	}
	return b.String()
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
