package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"mamushi/internal/driver"
)

// Run drives a progress program until events is closed. Output goes to out
// (normally stderr, so formatted content on stdout stays clean).
func Run(out io.Writer, title string, files []string, events <-chan driver.Event) error {
	p := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out), tea.WithInput(nil))
	_, err := p.Run()
	return err
}
