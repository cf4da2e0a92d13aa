package engine

import (
	"testing"
	"time"

	"alex/internal/alex"
)

func mustDecode(t *testing.T, mfen string) *alex.Position {
	t.Helper()
	pos, err := alex.DecodePosition(mfen)
	if err != nil {
		t.Fatalf("decode %q: %v", mfen, err)
	}
	return pos
}

func TestEvaluateSymmetricOpenings(t *testing.T) {
	for _, mfen := range []string{alex.StartMFEN, alex.StartPrinceMFEN} {
		if got := Evaluate(mustDecode(t, mfen)); got != 0 {
			t.Fatalf("%s: got %d want 0", mfen, got)
		}
	}
}

func TestEvaluateLostCrown(t *testing.T) {
	if got := Evaluate(mustDecode(t, "8/8/8/8/8/8/8/K7 b -")); got != mateScore {
		t.Fatalf("white without a king: got %d want %d", got, mateScore)
	}
	if got := Evaluate(mustDecode(t, "k7/8/8/8/8/8/8/8 b -")); got != -mateScore {
		t.Fatalf("black without a king: got %d want %d", got, -mateScore)
	}
	// after one demise the prince is crowned, losing the king no longer matters
	if got := Evaluate(mustDecode(t, "k7/8/8/8/8/8/8/P7 b - 1 0")); got <= -mateScore/2 {
		t.Fatalf("crowned prince on board: got %d", got)
	}
}

func TestSearchTakesCrown(t *testing.T) {
	pos := mustDecode(t, "8/8/8/8/8/8/k7/K7 b -")
	res := NewEngine().Search(pos, SearchConfig{MaxDepth: 3})
	if !res.Found {
		t.Fatalf("no move found")
	}
	if got := res.BestMove.String(); got != "A1A2" {
		t.Fatalf("best move: got %s want A1A2", got)
	}
	if res.Value != mateScore {
		t.Fatalf("value: got %d want %d", res.Value, mateScore)
	}
}

func TestSearchWinsHangingPiece(t *testing.T) {
	pos := mustDecode(t, "8/8/8/8/3n4/3L4/8/K6k b -")
	res := NewEngine().Search(pos, SearchConfig{MaxDepth: 2})
	if got := res.BestMove.String(); got != "D3D4" {
		t.Fatalf("best move: got %s want D3D4 (root %v)", got, res.RootMoves)
	}
	if res.Value <= 200 {
		t.Fatalf("value: got %d, want a clear advantage", res.Value)
	}
	if res.Depth != 2 {
		t.Fatalf("depth: got %d want 2", res.Depth)
	}
	if len(res.PV) == 0 || res.PV[0] != res.BestMove {
		t.Fatalf("pv should start with the best move: %v", res.PV)
	}
}

func TestSearchNoMoves(t *testing.T) {
	res := NewEngine().Search(alex.NewPosition(), SearchConfig{MaxDepth: 2})
	if res.Found {
		t.Fatalf("empty board should have no move, got %s", res.BestMove)
	}
}

func TestRootMovesRanked(t *testing.T) {
	pos := alex.NewInitialPosition()
	res := NewEngine().Search(pos, SearchConfig{MaxDepth: 1})
	want := len(searchMoves(pos))
	if len(res.RootMoves) != want {
		t.Fatalf("root moves: got %d want %d", len(res.RootMoves), want)
	}
	if res.RootMoves[0].Move != res.BestMove {
		t.Fatalf("best move %s is not ranked first", res.BestMove)
	}
	for i := 1; i < len(res.RootMoves); i++ {
		if res.RootMoves[i].Score > res.RootMoves[i-1].Score {
			t.Fatalf("root moves not sorted at %d: %v", i, res.RootMoves)
		}
	}
	for _, rm := range res.RootMoves {
		if rm.Move.Type == alex.MoveDemise {
			t.Fatalf("bare demise must not be searched")
		}
	}
	if pos.Encode() != alex.StartMFEN {
		t.Fatalf("search modified the root position")
	}
}

func TestSearchRespectsTimeLimit(t *testing.T) {
	pos := alex.NewInitialPosition()
	start := time.Now()
	res := NewEngine().Search(pos, SearchConfig{MaxDepth: 12, TimeLimit: 50 * time.Millisecond})
	if !res.Found || res.Depth < 1 {
		t.Fatalf("expected at least one completed iteration, got depth %d", res.Depth)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("search ran for %s", elapsed)
	}
}
