package alex

type Side int8

const (
	NoSide Side = -1
	Black  Side = 0 // moves toward higher ranks, moves first
	White  Side = 1
)

func (s Side) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

type PieceType int8

const (
	PieceNone PieceType = iota
	PieceLight
	PieceHeavy
	PieceKing
	PiecePrince
	PieceGeneral
	PieceKnight
	PieceArrow
	PieceArcher0 // unarmed
	PieceArcher1 // one arrow loaded
	PieceArcher2 // two arrows loaded
)

const NumPieceTypes = 11

var pieceTypeNames = [NumPieceTypes]string{
	"none", "light", "heavy", "king", "prince", "general", "knight", "arrow", "archer0", "archer1", "archer2",
}

func (pt PieceType) String() string {
	if pt < 0 || int(pt) >= NumPieceTypes {
		return "invalid"
	}
	return pieceTypeNames[pt]
}

// IsArcher reports whether pt is one of the three archer ammo states.
func (pt PieceType) IsArcher() bool {
	return pt == PieceArcher0 || pt == PieceArcher1 || pt == PieceArcher2
}

// Loadable reports whether an arrow can still be added to an archer of this kind.
func (pt PieceType) Loadable() bool {
	return pt == PieceArcher0 || pt == PieceArcher1
}

// Loaded returns the archer kind holding one more arrow.
func (pt PieceType) Loaded() PieceType {
	switch pt {
	case PieceArcher0:
		return PieceArcher1
	case PieceArcher1:
		return PieceArcher2
	}
	return pt
}

// Unloaded returns the archer kind holding one less arrow.
func (pt PieceType) Unloaded() PieceType {
	switch pt {
	case PieceArcher1:
		return PieceArcher0
	case PieceArcher2:
		return PieceArcher1
	}
	return pt
}

// Ammo is the number of loaded arrows for archer kinds, 0 otherwise.
func (pt PieceType) Ammo() int {
	switch pt {
	case PieceArcher1:
		return 1
	case PieceArcher2:
		return 2
	}
	return 0
}

// InReserve reports whether pt may be held in a reserve.
func (pt PieceType) InReserve() bool {
	switch pt {
	case PieceLight, PieceHeavy, PieceGeneral, PieceKnight, PieceArrow:
		return true
	}
	return false
}

// Piece packs kind and side: 0 is empty, >0 black, <0 white, abs is the PieceType.
// An empty kind can never carry a side and vice versa.
type Piece int8

func MakePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone || side == NoSide {
		return 0
	}
	if side == Black {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Black
	}
	return White
}

func (p Piece) String() string {
	if p == 0 {
		return "."
	}
	return string(pieceToChar(p))
}
