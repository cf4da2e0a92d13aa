package alex

import (
	"sort"
	"testing"
)

func sq(t *testing.T, label string) Square {
	t.Helper()
	s, err := ParseSquare(label)
	if err != nil {
		t.Fatalf("bad square %q: %v", label, err)
	}
	return s
}

func boardWith(pieces map[Square]Piece) *Board {
	var b Board
	for s, pc := range pieces {
		b.Squares[s] = pc
	}
	return &b
}

func labels(squares []Square) []string {
	out := make([]string, len(squares))
	for i, s := range squares {
		out[i] = s.String()
	}
	sort.Strings(out)
	return out
}

func assertDests(t *testing.T, b *Board, from Square, want ...string) DestSet {
	t.Helper()
	d := Destinations(from, b)
	got := labels(d.Squares())
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("from %s: got %v want %v", from, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("from %s: got %v want %v", from, got, want)
		}
	}
	return d
}

func TestKingInCorner(t *testing.T) {
	pos, err := DecodePosition("K7/8/8/8/8/8/8/8 b -")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	a8 := MakeSquare(0, 7)
	if a8.String() != "A8" {
		t.Fatalf("label: got %s", a8)
	}
	assertDests(t, &pos.Board, a8, "B8", "A7", "B7")
}

func TestKingSkipsOwnPieces(t *testing.T) {
	b := boardWith(map[Square]Piece{
		sq(t, "D4"): MakePiece(Black, PieceKing),
		sq(t, "D5"): MakePiece(Black, PieceLight),
		sq(t, "E5"): MakePiece(White, PieceLight),
	})
	assertDests(t, b, sq(t, "D4"), "C3", "C4", "C5", "D3", "E3", "E4", "E5")
}

func TestLightForwardAndZone(t *testing.T) {
	b := boardWith(map[Square]Piece{
		sq(t, "B5"): MakePiece(Black, PieceLight), // rank index 4
		sq(t, "E6"): MakePiece(Black, PieceLight), // rank index 5
		sq(t, "B4"): MakePiece(White, PieceLight), // rank index 3
		sq(t, "G3"): MakePiece(White, PieceLight), // rank index 2
	})
	assertDests(t, b, sq(t, "B5"), "B6")
	assertDests(t, b, sq(t, "E6"), "E7", "D6", "F6")
	assertDests(t, b, sq(t, "B4"), "B3")
	assertDests(t, b, sq(t, "G3"), "G2", "F3", "H3")
}

func TestLightOnLastRankHasNoForwardStep(t *testing.T) {
	b := boardWith(map[Square]Piece{sq(t, "C8"): MakePiece(Black, PieceLight)})
	assertDests(t, b, sq(t, "C8"), "B8", "D8")
}

func TestHeavyDoubleStep(t *testing.T) {
	b := boardWith(map[Square]Piece{sq(t, "C2"): MakePiece(Black, PieceHeavy)})
	assertDests(t, b, sq(t, "C2"), "C3", "C4")

	for _, blocker := range []Piece{MakePiece(Black, PieceLight), MakePiece(White, PieceLight)} {
		b := boardWith(map[Square]Piece{
			sq(t, "C2"): MakePiece(Black, PieceHeavy),
			sq(t, "C3"): blocker,
		})
		d := Destinations(sq(t, "C2"), b)
		if d.Contains(sq(t, "C4")) {
			t.Fatalf("double step over %v must be blocked", blocker)
		}
	}

	// capture on the second square is allowed, own piece is not
	b = boardWith(map[Square]Piece{
		sq(t, "F7"): MakePiece(White, PieceHeavy),
		sq(t, "F5"): MakePiece(Black, PieceKnight),
	})
	assertDests(t, b, sq(t, "F7"), "F6", "F5")
	b = boardWith(map[Square]Piece{
		sq(t, "F7"): MakePiece(White, PieceHeavy),
		sq(t, "F5"): MakePiece(White, PieceKnight),
	})
	assertDests(t, b, sq(t, "F7"), "F6")
}

func TestPrinceAndGeneral(t *testing.T) {
	b := boardWith(map[Square]Piece{
		sq(t, "D4"): MakePiece(Black, PiecePrince),
		sq(t, "D6"): MakePiece(White, PieceGeneral),
	})
	assertDests(t, b, sq(t, "D4"), "C3", "E3", "C5", "E5", "D5")
	// white general: forward is down
	assertDests(t, b, sq(t, "D6"), "C5", "E5", "C6", "E6", "D5", "D7")
}

func TestKnightJumps(t *testing.T) {
	b := boardWith(map[Square]Piece{
		sq(t, "B1"): MakePiece(Black, PieceKnight),
		sq(t, "B2"): MakePiece(Black, PieceLight),
		sq(t, "C2"): MakePiece(Black, PieceLight),
		sq(t, "A3"): MakePiece(White, PieceLight),
		sq(t, "C3"): MakePiece(Black, PieceLight),
	})
	assertDests(t, b, sq(t, "B1"), "A3", "D2")
}

func TestArcherZeroSteps(t *testing.T) {
	b := boardWith(map[Square]Piece{
		sq(t, "D4"): MakePiece(Black, PieceArcher0),
		sq(t, "D5"): MakePiece(White, PieceLight),
	})
	d := assertDests(t, b, sq(t, "D4"), "D5", "D3", "C4", "E4")
	for _, s := range d.Squares() {
		if d.Count(s) != 1 || d.Ranged(s) {
			t.Fatalf("unarmed archer: %s count=%d ranged=%v", s, d.Count(s), d.Ranged(s))
		}
	}
}

func TestArmedArcherRangedAndAmbiguous(t *testing.T) {
	b := boardWith(map[Square]Piece{
		sq(t, "A1"): MakePiece(Black, PieceArcher1),
		sq(t, "A4"): MakePiece(White, PieceLight),
		sq(t, "C1"): MakePiece(Black, PieceLight),
		sq(t, "B2"): MakePiece(White, PieceKnight),
	})
	d := assertDests(t, b, sq(t, "A1"), "A2", "A3", "A4", "B1", "B2")

	// orthogonal neighbours are both a step and a shot
	for _, l := range []string{"A2", "B1"} {
		s := sq(t, l)
		if d.Count(s) != 2 || !d.Ambiguous(s) || !d.Stepped(s) || !d.Ranged(s) {
			t.Fatalf("%s: count=%d stepped=%v ranged=%v", l, d.Count(s), d.Stepped(s), d.Ranged(s))
		}
	}
	// everything else is shot-only
	for _, l := range []string{"A3", "A4", "B2"} {
		s := sq(t, l)
		if d.Count(s) != 1 || d.Stepped(s) || !d.Ranged(s) {
			t.Fatalf("%s: count=%d stepped=%v ranged=%v", l, d.Count(s), d.Stepped(s), d.Ranged(s))
		}
	}
}

func TestArcherTwoSlidesLikeArcherOne(t *testing.T) {
	b1 := boardWith(map[Square]Piece{sq(t, "E5"): MakePiece(White, PieceArcher1)})
	b2 := boardWith(map[Square]Piece{sq(t, "E5"): MakePiece(White, PieceArcher2)})
	d1 := Destinations(sq(t, "E5"), b1)
	d2 := Destinations(sq(t, "E5"), b2)
	if d1.Len() != d2.Len() || d1.Len() != 27 {
		t.Fatalf("archer1=%d archer2=%d, want 27 each", d1.Len(), d2.Len())
	}
}

func TestArrowTargetsFriendlyArcher(t *testing.T) {
	b := boardWith(map[Square]Piece{
		sq(t, "B2"): MakePiece(Black, PieceArrow),
		sq(t, "E5"): MakePiece(Black, PieceArcher0),
	})
	d := assertDests(t, b, sq(t, "B2"), "E5")
	if !d.Returning(sq(t, "E5")) {
		t.Fatalf("E5 should be an arrow return")
	}

	for _, blocker := range []string{"C3", "D4"} {
		b.Squares[sq(t, blocker)] = MakePiece(White, PieceLight)
		assertDests(t, b, sq(t, "B2"))
		b.Squares[sq(t, blocker)] = 0
	}
}

func TestArrowIgnoresFullAndEnemyArchers(t *testing.T) {
	b := boardWith(map[Square]Piece{
		sq(t, "D4"): MakePiece(White, PieceArrow),
		sq(t, "D7"): MakePiece(White, PieceArcher1),
		sq(t, "D1"): MakePiece(White, PieceArcher2),
		sq(t, "A4"): MakePiece(Black, PieceArcher0),
		sq(t, "G4"): MakePiece(White, PieceArcher0),
		sq(t, "F6"): MakePiece(White, PieceKnight),
		sq(t, "G7"): MakePiece(White, PieceArcher0),
	})
	assertDests(t, b, sq(t, "D4"), "D7", "G4")
}

func TestMirrorSymmetry(t *testing.T) {
	kinds := []PieceType{
		PieceLight, PieceHeavy, PieceKing, PiecePrince, PieceGeneral,
		PieceKnight, PieceArrow, PieceArcher0, PieceArcher1, PieceArcher2,
	}
	for _, pt := range kinds {
		for s := Square(0); s < NumSquares; s++ {
			black := boardWith(map[Square]Piece{s: MakePiece(Black, pt)})
			white := boardWith(map[Square]Piece{s.Mirror(): MakePiece(White, pt)})
			db := Destinations(s, black)
			dw := Destinations(s.Mirror(), white)
			if db.Len() != dw.Len() {
				t.Fatalf("%s on %s: black %d destinations, white %d", pt, s, db.Len(), dw.Len())
			}
			for _, to := range db.Squares() {
				if !dw.Contains(to.Mirror()) || dw.Count(to.Mirror()) != db.Count(to) {
					t.Fatalf("%s on %s: %s has no mirror in white set %v", pt, s, to, labels(dw.Squares()))
				}
			}
		}
	}
}

func TestDestinationsDoNotMutateBoard(t *testing.T) {
	pos := NewInitialPosition()
	before := pos.Board
	for s := Square(0); s < NumSquares; s++ {
		_ = pos.Board.Destinations(s)
	}
	if pos.Board != before {
		t.Fatalf("board changed during generation")
	}
}

func TestInvalidOrigin(t *testing.T) {
	pos := NewInitialPosition()
	d := Destinations(NoSquare, &pos.Board)
	if !d.Empty() {
		t.Fatalf("NoSquare should yield nothing")
	}
	d = Destinations(0, nil)
	if !d.Empty() {
		t.Fatalf("nil board should yield nothing")
	}
}
