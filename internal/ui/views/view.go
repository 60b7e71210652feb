package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"vlist/internal/domain"
	"vlist/internal/viewport"
)

// ChromeLines is the number of terminal rows used by everything except the
// window rows: padding, title, input line, status and help.
const ChromeLines = 8

// FitWindow returns the window size that fills a terminal of height rows
func FitWindow(height int) int {
	return max(height-ChromeLines, 1)
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Source        string
	Watching      bool
	Items         domain.Snapshot
	Viewport      viewport.State
	Policy        string
	IsMarked      func(id string) bool
	MarkCount     int
	MatchedBytes  func(index int) []int
	SearchQuery   string
	MatchPosition int
	MatchCount    int
	StatusMessage string
	StatusIsError bool
	InputMode     string
	TextInput     string
	DeleteTarget  string
	ShowScrollbar bool
	ShowHelp      bool
	HelpScroll    int
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		return r.popupRender.RenderPopup(r.renderHelpContent(state), state.Height, state.Width, r.styles.InfoBox)
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	contentWidth := max(termWidth-4, 10) // main container padding

	lines := make([]string, 0, state.Viewport.Width()+ChromeLines)
	lines = append(lines, r.renderTitle(state, contentWidth), "")

	switch {
	case state.DeleteTarget != "":
		lines = append(lines, r.styles.Confirm.Render(
			ansi.Truncate(fmt.Sprintf("Delete '%s'? (y/n): ", state.DeleteTarget), contentWidth, "…")))
	case state.InputMode != "":
		lines = append(lines, state.TextInput)
	default:
		lines = append(lines, "")
	}

	if state.Viewport.IsEmpty() {
		lines = append(lines, r.styles.Dim.Render("No items."))
	} else {
		lines = append(lines, r.renderWindow(state, contentWidth)...)
	}

	lines = append(lines, "", r.renderStatus(state, contentWidth))
	if state.Keys != nil {
		lines = append(lines, r.styles.Help.Render(state.HelpModel.View(state.Keys)))
	}

	return r.styles.Main.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("vlist")
	if state.Source == "" {
		return logo
	}

	source := state.Source
	if state.Watching {
		source += " [watching]"
	}
	avail := width - lipgloss.Width(logo) - 2
	if avail <= 0 {
		return logo
	}
	if over := ansi.StringWidth(source) - avail; over > 0 {
		source = ansi.TruncateLeft(source, over+1, "…")
	}
	right := r.styles.Source.Render(source)
	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	return logo + strings.Repeat(" ", max(padding, 2)) + right
}

// renderWindow renders the rows inside [Start, End)
func (r *Renderer) renderWindow(state ViewState, width int) []string {
	st := state.Viewport
	rowsCount := st.End - st.Start

	var bar []string
	if state.ShowScrollbar {
		bar = MeasureScrollbar(rowsCount, st).Rows(r.styles)
	}
	textWidth := width
	if bar != nil {
		textWidth -= 2
	}

	numWidth := len(fmt.Sprint(st.Count))
	rows := make([]string, 0, rowsCount)
	for i := st.Start; i < st.End; i++ {
		it, ok := state.Items.At(i)
		if !ok {
			break
		}
		row := r.renderRow(state, i, it, numWidth, textWidth)
		if bar != nil {
			row = padRight(row, textWidth) + " " + bar[i-st.Start]
		}
		rows = append(rows, row)
	}
	return rows
}

func (r *Renderer) renderRow(state ViewState, index int, it domain.Item, numWidth, width int) string {
	focused := index == state.Viewport.Focus

	cursor := "  "
	if focused {
		cursor = r.styles.Cursor.Render("› ")
	}
	mark := "  "
	if state.IsMarked != nil && state.IsMarked(it.ID) {
		mark = r.styles.Mark.Render("● ")
	}
	num := r.styles.LineNumber.Render(fmt.Sprintf("%*d ", numWidth, index+1))

	prefix := cursor + mark + num
	avail := width - lipgloss.Width(prefix)
	if avail <= 0 {
		return ansi.Truncate(prefix, width, "")
	}

	var matched []int
	if state.MatchedBytes != nil {
		matched = state.MatchedBytes(index)
	}
	text := ansi.Truncate(r.highlight(it.Text, matched), avail, "…")
	if focused {
		text = r.styles.Focus.Render(text)
	}
	return prefix + text
}

// highlight styles the characters starting at the given byte offsets
func (r *Renderer) highlight(text string, matched []int) string {
	if len(matched) == 0 {
		return text
	}
	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}

	var b strings.Builder
	for i, ch := range text {
		if set[i] {
			b.WriteString(r.styles.Highlight.Render(string(ch)))
		} else {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func (r *Renderer) renderStatus(state ViewState, width int) string {
	st := state.Viewport

	parts := []string{}
	if st.IsEmpty() {
		parts = append(parts, "0/0")
	} else {
		parts = append(parts,
			fmt.Sprintf("%d/%d", st.Focus+1, st.Count),
			fmt.Sprintf("[%d-%d]", st.Start+1, st.End))
	}
	parts = append(parts, fmt.Sprintf("size %d", st.Size), r.styles.Policy.Render(state.Policy))
	if state.MarkCount > 0 {
		parts = append(parts, r.styles.Mark.Render(fmt.Sprintf("%d marked", state.MarkCount)))
	}
	if state.SearchQuery != "" {
		if state.MatchCount == 0 {
			parts = append(parts, fmt.Sprintf("/%s: no matches", state.SearchQuery))
		} else {
			parts = append(parts, fmt.Sprintf("/%s: %d/%d", state.SearchQuery, state.MatchPosition, state.MatchCount))
		}
	}
	line := r.styles.Status.Render(strings.Join(parts, " · "))

	if state.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		line += "  " + style.Render(state.StatusMessage)
	}
	return ansi.Truncate(line, width, "…")
}

// renderHelpContent renders the help information, scrolled by HelpScroll
func (r *Renderer) renderHelpContent(state ViewState) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var groups [][]key.Binding
	if state.Keys != nil {
		groups = state.Keys.FullHelp()
	}
	sections := []string{"Navigation", "Window & Search", "Item Commands", "Other"}

	var lines []string
	lines = append(lines, titleStyle.Render("vlist help"), "")
	for gi, group := range groups {
		name := "More"
		if gi < len(sections) {
			name = sections[gi]
		}
		lines = append(lines, sectionStyle.Render(name))
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %s  %s", keyStyle.Render(fmt.Sprintf("%-8s", h.Key)), descStyle.Render(h.Desc)))
		}
		lines = append(lines, "")
	}
	lines = append(lines, r.styles.Dim.Render("Searches starting with = match exactly."))

	return scrollLines(lines, state.Height-4, state.HelpScroll)
}

// scrollLines keeps the visible slice of lines, replacing the edges with
// indicators when content is cut off
func scrollLines(lines []string, visibleHeight, offset int) string {
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	total := len(lines)
	if total <= visibleHeight {
		return strings.Join(lines, "\n")
	}

	offset = min(max(offset, 0), total-visibleHeight)
	end := offset + visibleHeight
	visible := append([]string(nil), lines[offset:end]...)

	indicator := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if offset > 0 {
		visible[0] = indicator.Render("↑ (more above)")
	}
	if end < total {
		visible[len(visible)-1] = indicator.Render("↓ (more below)")
	}
	return strings.Join(visible, "\n")
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
