package alex

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"B2B3", Move{Type: MoveNormal, From: MakeSquare(1, 1), To: MakeSquare(1, 2)}},
		{"A1A4S", Move{Type: MoveShoot, From: MakeSquare(0, 0), To: MakeSquare(0, 3)}},
		{"D5N", Move{Type: MoveDrop, From: NoSquare, To: MakeSquare(3, 4), Piece: MakePiece(Black, PieceKnight)}},
		{"E6r", Move{Type: MoveDrop, From: NoSquare, To: MakeSquare(4, 5), Piece: MakePiece(White, PieceArrow)}},
		{"C3B", Move{Type: MoveDrop, From: NoSquare, To: MakeSquare(2, 2), Piece: MakePiece(Black, PieceArcher1)}},
		{"D", DemiseMove},
		{"B2B3D", Move{Type: MoveNormal, From: MakeSquare(1, 1), To: MakeSquare(1, 2), Demise: true}},
		{"A1A4SD", Move{Type: MoveShoot, From: MakeSquare(0, 0), To: MakeSquare(0, 3), Demise: true}},
		{"D5ND", Move{Type: MoveDrop, From: NoSquare, To: MakeSquare(3, 4), Piece: MakePiece(Black, PieceKnight), Demise: true}},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: got %+v want %+v", tc.in, got, tc.want)
		}
		if s := got.String(); s != tc.in {
			t.Fatalf("string of %q: got %q", tc.in, s)
		}
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, in := range []string{"", "A1", "a1a2", "A9A1", "I1A1", "A1A2X", "A1Z", "A1A2A3", "DD"} {
		if m, err := ParseMove(in); err == nil {
			t.Fatalf("parse %q: expected error, got %+v", in, m)
		} else if !errors.Is(err, ErrInvalidMove) {
			t.Fatalf("parse %q: error %v does not wrap ErrInvalidMove", in, err)
		}
	}
}

func TestSquareLabels(t *testing.T) {
	for s := Square(0); s < NumSquares; s++ {
		back, err := ParseSquare(s.String())
		if err != nil || back != s {
			t.Fatalf("square %d: label %q parsed to %d (%v)", s, s.String(), back, err)
		}
	}
	if NoSquare.String() != "-" {
		t.Fatalf("NoSquare label: %q", NoSquare.String())
	}
	if got := MakeSquare(7, 7).String(); got != "H8" {
		t.Fatalf("H8: got %q", got)
	}
	if MakeSquare(8, 0) != NoSquare || MakeSquare(0, -1) != NoSquare {
		t.Fatalf("off-board coordinates must give NoSquare")
	}
}
