package alex

import "testing"

func TestPerftLoneKing(t *testing.T) {
	pos := mustDecode(t, "8/8/8/8/8/8/8/K7 b -")
	if n := Perft(pos, 0); n != 1 {
		t.Fatalf("depth 0: got %d", n)
	}
	if n := Perft(pos, 1); n != 3 {
		t.Fatalf("depth 1: got %d want 3", n)
	}
	// White has nothing to move
	if n := Perft(pos, 2); n != 0 {
		t.Fatalf("depth 2: got %d want 0", n)
	}
}

func TestPerftMatchesGeneration(t *testing.T) {
	pos := NewInitialPosition()
	if got, want := Perft(pos, 1), int64(len(pos.GenerateMoves())); got != want {
		t.Fatalf("depth 1: got %d want %d", got, want)
	}

	var sum int64
	for _, d := range Divide(pos, 2) {
		sum += d.Nodes
	}
	if got := Perft(pos, 2); got != sum {
		t.Fatalf("divide: sum %d, perft %d", sum, got)
	}
	for _, d := range Divide(pos, 2) {
		if d.Nodes == 0 {
			t.Fatalf("%s has no replies", d.Move)
		}
	}
}
