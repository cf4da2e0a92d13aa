package tui

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"alex/internal/alex"
	"alex/internal/client"
	"alex/internal/server/game"
	httpserver "alex/internal/server/http"
)

func newModel(t *testing.T) (Model, *game.Manager) {
	t.Helper()
	games := game.NewManager(nil)
	ts := httptest.NewServer(httpserver.NewServer(games))
	t.Cleanup(ts.Close)

	m := NewModel(client.New(ts.URL), 200*time.Millisecond)
	m = run(t, m, m.Init())
	if m.sess.Busy() {
		t.Fatalf("initial fetch should end the round trip")
	}
	return m, games
}

// run executes cmd synchronously and feeds its message back into m.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	next, _ := m.Update(cmd())
	return next.(Model)
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, c := m.Update(msg)
		m, cmd = next.(Model), c
	}
	return m, cmd
}

func typeCommand(m Model, line string) (Model, tea.Cmd) {
	m, _ = press(m, "i")
	m, _ = press(m, line)
	return press(m, "enter")
}

func lastLog(m Model) string {
	return m.logLines[len(m.logLines)-1]
}

func TestMoveByKeys(t *testing.T) {
	m, games := newModel(t)

	m, cmd := press(m, "right", "right", "up", "enter")
	if cmd != nil || m.sess.Selection() == nil {
		t.Fatalf("C2 should be selected")
	}
	m, cmd = press(m, "up", "up", "enter")
	if !m.sess.Busy() {
		t.Fatalf("submit should wait for the server")
	}
	// keys other than the cursor are refused meanwhile
	if _, c := press(m, "enter"); c != nil {
		t.Fatalf("busy model issued a command")
	}
	m = run(t, m, cmd)

	if m.sess.Busy() || m.sess.Position().SideToMove != alex.White {
		t.Fatalf("move not loaded: %s", m.sess.Position().Encode())
	}
	st, _ := games.Get("")
	if !st.Pos.Equal(m.sess.Position()) {
		t.Fatalf("client and server disagree")
	}
}

func TestLoadBadMFENKeepsPosition(t *testing.T) {
	m, _ := newModel(t)
	before := m.sess.Position()
	m, cmd := typeCommand(m, "load not/a/position")
	if cmd != nil {
		t.Fatalf("bad mfen should not reach the server")
	}
	if m.sess.Position() != before || m.sess.Busy() {
		t.Fatalf("position changed on a bad load")
	}
	if !strings.HasPrefix(lastLog(m), "load:") {
		t.Fatalf("log: %q", lastLog(m))
	}
}

func TestLoadAndReset(t *testing.T) {
	m, _ := newModel(t)
	m, cmd := typeCommand(m, "load 8/8/8/8/8/8/8/K7 w -")
	m = run(t, m, cmd)
	if got := m.sess.Position().Encode(); got != "8/8/8/8/8/8/8/K7 w -" {
		t.Fatalf("load: got %q", got)
	}
	m, cmd = typeCommand(m, "reset")
	m = run(t, m, cmd)
	if !m.sess.Position().Equal(alex.NewInitialPosition()) {
		t.Fatalf("reset: got %q", m.sess.Position().Encode())
	}
}

func TestBestThenPlay(t *testing.T) {
	m, _ := newModel(t)
	m, cmd := typeCommand(m, "play")
	if cmd != nil {
		t.Fatalf("play without an engine move")
	}
	m, cmd = typeCommand(m, "best 0.2")
	m = run(t, m, cmd)
	if m.best == nil || m.best.Resign {
		t.Fatalf("no engine move: %q", lastLog(m))
	}
	m, cmd = typeCommand(m, "play")
	m = run(t, m, cmd)
	if m.sess.Position().SideToMove != alex.White {
		t.Fatalf("engine move not played: %q", lastLog(m))
	}
}

func TestNewGameCommand(t *testing.T) {
	m, games := newModel(t)
	m, cmd := typeCommand(m, "new")
	m = run(t, m, cmd)
	if m.c.Game() == "" || games.Len() != 2 {
		t.Fatalf("new game not selected: %q", m.c.Game())
	}
}

func TestUnknownCommand(t *testing.T) {
	m, _ := newModel(t)
	m, cmd := typeCommand(m, "fly")
	if cmd != nil || lastLog(m) != "unknown command: fly" {
		t.Fatalf("log: %q", lastLog(m))
	}
}

func TestRenderBoard(t *testing.T) {
	pos := alex.NewInitialPosition()
	out := RenderBoard(pos, nil, alex.MakeSquare(0, 0))
	lines := strings.Split(out, "\n")
	if len(lines) != alex.Ranks+2 {
		t.Fatalf("lines: got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], " 8 ") || !strings.HasPrefix(lines[8], " 1 ") {
		t.Fatalf("rank order: %q / %q", lines[1], lines[8])
	}
	if !strings.Contains(lines[8], "[") {
		t.Fatalf("cursor missing on rank 1")
	}
}
