package game

import (
	"errors"
	"sync"
	"testing"

	"alex/internal/alex"
)

func TestDefaultGame(t *testing.T) {
	m := NewManager(nil)
	if m.Len() != 1 {
		t.Fatalf("games: got %d want 1", m.Len())
	}
	g, err := m.Get("")
	if err != nil {
		t.Fatalf("default game: %v", err)
	}
	if g.ID != m.DefaultID() {
		t.Fatalf("empty id should select the default game")
	}
	if got := g.Pos.Encode(); got != alex.StartMFEN {
		t.Fatalf("start position: got %q", got)
	}
}

func TestGetUnknownGame(t *testing.T) {
	m := NewManager(nil)
	if _, err := m.Get("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("got %v want ErrGameNotFound", err)
	}
	if err := m.Update("nope", alex.NewPosition()); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("update: got %v want ErrGameNotFound", err)
	}
}

func TestApplyAndHistory(t *testing.T) {
	m := NewManager(nil)
	mv, err := alex.ParseMove("C2C4")
	if err != nil {
		t.Fatal(err)
	}
	g, err := m.Apply("", mv)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if g.Pos.SideToMove != alex.White {
		t.Fatalf("turn should pass to white")
	}
	if len(g.History) != 1 || g.History[0] != "C2C4" {
		t.Fatalf("history: %v", g.History)
	}

	// the same move is now illegal: the heavy is gone from C2
	before, _ := m.Get("")
	if _, err := m.Apply("", mv); !errors.Is(err, alex.ErrIllegalMove) {
		t.Fatalf("replay: got %v want ErrIllegalMove", err)
	}
	after, _ := m.Get("")
	if !after.Pos.Equal(before.Pos) || len(after.History) != 1 {
		t.Fatalf("failed apply changed the game")
	}
}

func TestUpdateResetsHistory(t *testing.T) {
	m := NewManager(nil)
	mv, _ := alex.ParseMove("B2B3")
	if _, err := m.Apply("", mv); err != nil {
		t.Fatal(err)
	}
	pos, err := alex.DecodePosition("K7/8/8/8/8/8/8/7k w -")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Update("", pos); err != nil {
		t.Fatalf("update: %v", err)
	}
	g, _ := m.Get("")
	if g.Pos.Encode() != "K7/8/8/8/8/8/8/7k w -" || len(g.History) != 0 {
		t.Fatalf("after update: %q %v", g.Pos.Encode(), g.History)
	}
}

func TestGamesAreIndependent(t *testing.T) {
	start, _ := alex.DecodePosition(alex.StartPrinceMFEN)
	m := NewManager(start)
	other := m.NewGame()
	if other.ID == m.DefaultID() {
		t.Fatalf("new game reused the default id")
	}
	mv, _ := alex.ParseMove("B2B3")
	if _, err := m.Apply(other.ID, mv); err != nil {
		t.Fatal(err)
	}
	def, _ := m.Get("")
	if def.Pos.Encode() != alex.StartPrinceMFEN {
		t.Fatalf("default game moved: %q", def.Pos.Encode())
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	m := NewManager(nil)
	mv, _ := alex.ParseMove("B2B3")
	g, _ := m.Apply("", mv)
	g.History[0] = "XXXX"
	again, _ := m.Get("")
	if again.History[0] != "B2B3" {
		t.Fatalf("snapshot shares history with the store")
	}
}

func TestConcurrentApply(t *testing.T) {
	m := NewManager(nil)
	moves := []string{"A2A3", "G2G3", "H2H3", "B2B3"}
	var wg sync.WaitGroup
	for _, s := range moves {
		s := s
		wg.Add(1)
		go func() {
			defer wg.Done()
			mv, _ := alex.ParseMove(s)
			_, _ = m.Apply("", mv)
		}()
	}
	wg.Wait()
	g, _ := m.Get("")
	// only black moves were sent, so exactly one of them can have been played
	if len(g.History) != 1 {
		t.Fatalf("history: %v", g.History)
	}
}
