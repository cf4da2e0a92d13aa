package alex

import (
	"unicode"
	"unicode/utf8"
)

const (
	Files      = 8
	Ranks      = 8
	NumSquares = Files * Ranks
)

// Opening positions. Both royal orders are in use.
const (
	StartMFEN       = "bngkpgnb/llhhhhll/8/8/8/8/LLHHHHLL/BNGPKGNB b -"
	StartPrinceMFEN = "bngpkgnb/llhhhhll/8/8/8/8/LLHHHHLL/BNGPKGNB b -"
)

type Board struct {
	Squares [NumSquares]Piece
}

// PieceAt returns (PieceNone, NoSide) for empty or out-of-range squares.
func (b *Board) PieceAt(sq Square) (PieceType, Side) {
	if !sq.Valid() {
		return PieceNone, NoSide
	}
	pc := b.Squares[sq]
	return pc.Type(), pc.Side()
}

func (b *Board) Set(sq Square, pc Piece) {
	if sq.Valid() {
		b.Squares[sq] = pc
	}
}

func (b *Board) Count(side Side, pt PieceType) int {
	n := 0
	for _, pc := range b.Squares {
		if pc != 0 && pc.Side() == side && pc.Type() == pt {
			n++
		}
	}
	return n
}

func indexOf(file, rank int) int { return rank*Files + file }

func onBoard(file, rank int) bool {
	return file >= 0 && file < Files && rank >= 0 && rank < Ranks
}

func opposite(side Side) Side {
	if side == Black {
		return White
	}
	if side == White {
		return Black
	}
	return NoSide
}

// forward rank direction
func forwardDir(side Side) int {
	if side == Black {
		return +1
	}
	if side == White {
		return -1
	}
	return 0
}

// Light and Heavy gain sideways steps past this line.
func crossedZone(side Side, rank int) bool {
	if side == Black {
		return rank >= 5
	}
	if side == White {
		return rank <= 2
	}
	return false
}

// Reserve pieces may land on empty squares inside this band.
func inDropZone(side Side, rank int) bool {
	if side == Black {
		return rank <= 4
	}
	if side == White {
		return rank >= 3
	}
	return false
}

// {file, rank} deltas
var (
	orthoDirs = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagDirs  = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDirs   = append(append([][2]int{}, orthoDirs...), diagDirs...)

	knightJumps = [][2]int{
		{2, 1}, {2, -1}, {1, 2}, {1, -2},
		{-1, 2}, {-1, -2}, {-2, 1}, {-2, -1},
	}
)

var letterToPieceType = map[rune]PieceType{
	'l': PieceLight,
	'h': PieceHeavy,
	'k': PieceKing,
	'p': PiecePrince,
	'g': PieceGeneral,
	'n': PieceKnight,
	'r': PieceArrow,
	'a': PieceArcher0,
	'b': PieceArcher1,
	'c': PieceArcher2,
}

var pieceTypeToLetter = func() [NumPieceTypes]rune {
	var out [NumPieceTypes]rune
	for k, v := range letterToPieceType {
		out[v] = k
	}
	return out
}()

// pieceFromChar maps an MFEN letter to a piece; case selects the side.
func pieceFromChar(ch rune) (Piece, bool) {
	// only ASCII letters; unicode folding maps e.g. the Kelvin sign onto 'k'
	if ch >= utf8.RuneSelf {
		return 0, false
	}
	pt, ok := letterToPieceType[unicode.ToLower(ch)]
	if !ok {
		return 0, false
	}
	side := White
	if unicode.IsUpper(ch) {
		side = Black
	}
	return MakePiece(side, pt), true
}

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	pt := p.Type()
	if pt <= PieceNone || int(pt) >= NumPieceTypes {
		return '?'
	}
	base := pieceTypeToLetter[pt]
	if p.Side() == Black {
		return unicode.ToUpper(base)
	}
	return base
}

// Letter returns the MFEN letter for pt on side.
func Letter(side Side, pt PieceType) rune {
	return pieceToChar(MakePiece(side, pt))
}
