package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/noborus/ov/oviewer"
)

// pagerCommand shows a text body in ov. It implements tea.ExecCommand so
// Bubble Tea releases the terminal while the pager runs.
type pagerCommand struct {
	title  string
	body   string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (p *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.body))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

func (p *pagerCommand) SetStdin(r io.Reader)  { p.stdin = r }
func (p *pagerCommand) SetStdout(w io.Writer) { p.stdout = w }
func (p *pagerCommand) SetStderr(w io.Writer) { p.stderr = w }

// openPager returns a command that shows body in the pager
func openPager(title, body string) tea.Cmd {
	log.Debug("opening pager", "title", title)
	return tea.Exec(&pagerCommand{title: title, body: body}, func(err error) tea.Msg {
		return pagerClosedMsg{title: title, err: err}
	})
}
