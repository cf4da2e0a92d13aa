package alex

// Position = board + side to move + both reserves + demise counters.
type Position struct {
	Board      Board
	SideToMove Side
	Hands      [2]Hand
	Demise     [2]int
	Hash       uint64
}

// NewPosition returns an empty board with Black to move.
func NewPosition() *Position {
	pos := &Position{SideToMove: Black}
	pos.Hash = pos.CalculateHash()
	return pos
}

func NewInitialPosition() *Position {
	pos, err := DecodePosition(StartMFEN)
	if err != nil {
		panic("bad StartMFEN: " + err.Error())
	}
	return pos
}

func (p *Position) Hand(side Side) Hand {
	if side != Black && side != White {
		return nil
	}
	return p.Hands[side]
}

func (p *Position) PieceAt(sq Square) (PieceType, Side) {
	return p.Board.PieceAt(sq)
}

// Clone deep-copies the reserves so the result can be changed independently.
func (p *Position) Clone() *Position {
	np := *p
	np.Hands[Black] = p.Hands[Black].Clone()
	np.Hands[White] = p.Hands[White].Clone()
	return &np
}

// Equal compares the structured form; the cached hash is ignored.
func (p *Position) Equal(o *Position) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Board == o.Board &&
		p.SideToMove == o.SideToMove &&
		p.Demise == o.Demise &&
		p.Hands[Black].Equal(o.Hands[Black]) &&
		p.Hands[White].Equal(o.Hands[White])
}

func (p *Position) findPiece(side Side, pt PieceType) Square {
	pc := MakePiece(side, pt)
	for sq, q := range p.Board.Squares {
		if q == pc {
			return Square(sq)
		}
	}
	return NoSquare
}
