package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"alex/internal/alex"
	"alex/internal/client"
)

const requestTimeout = 10 * time.Second

// boardMsg ends every round trip: the re-fetched board, or why it failed.
type boardMsg struct {
	pos  *alex.Position
	note string // what the round trip did, for the log
	err  error
}

type bestMsg struct {
	bm  client.BestMove
	err error
}

type newGameMsg struct {
	id  string
	pos *alex.Position
	err error
}

func fetchBoard(c *client.Client, note string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		pos, err := c.Board(ctx)
		return boardMsg{pos: pos, note: note, err: err}
	}
}

// submitMove sends m, then re-fetches the board so the server stays the only
// source of positions.
func submitMove(c *client.Client, m alex.Move) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := c.Move(ctx, m); err != nil {
			return boardMsg{note: "move " + m.String(), err: err}
		}
		pos, err := c.Board(ctx)
		return boardMsg{pos: pos, note: "move " + m.String(), err: err}
	}
}

func resetBoard(c *client.Client, pos *alex.Position) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := c.Reset(ctx, pos); err != nil {
			return boardMsg{note: "load", err: err}
		}
		got, err := c.Board(ctx)
		return boardMsg{pos: got, note: "load", err: err}
	}
}

func askBestMove(c *client.Client, pos *alex.Position, think time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout+think)
		defer cancel()
		bm, err := c.BestMove(ctx, pos, think)
		return bestMsg{bm: bm, err: err}
	}
}

func startNewGame(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		id, pos, err := c.NewGame(ctx)
		return newGameMsg{id: id, pos: pos, err: err}
	}
}
