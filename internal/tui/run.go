package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"alex/internal/client"
)

func Run(c *client.Client, think time.Duration) error {
	p := tea.NewProgram(NewModel(c, think), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
