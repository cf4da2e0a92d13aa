package alex

// Crowned returns the royal kind that currently counts as the side's sovereign:
// King while the demise counter is even, Prince while it is odd.
func (p *Position) Crowned(side Side) PieceType {
	if side != Black && side != White {
		return PieceNone
	}
	if p.Demise[side]%2 == 0 {
		return PieceKing
	}
	return PiecePrince
}

// Heir is the royal kind that would take the crown on the next demise.
func (p *Position) Heir(side Side) PieceType {
	switch p.Crowned(side) {
	case PieceKing:
		return PiecePrince
	case PiecePrince:
		return PieceKing
	}
	return PieceNone
}

// CrownSquare locates the crowned piece, NoSquare if it has been captured.
func (p *Position) CrownSquare(side Side) Square {
	pt := p.Crowned(side)
	if pt == PieceNone {
		return NoSquare
	}
	return p.findPiece(side, pt)
}

// CanDemise: succession is only offered while the heir stands on the board.
func (p *Position) CanDemise(side Side) bool {
	heir := p.Heir(side)
	if heir == PieceNone {
		return false
	}
	return p.findPiece(side, heir) != NoSquare
}
