package alex

// CanDrop reports whether side may place a reserve piece of kind pt on to.
//
// Empty squares inside the side's zone (Black ranks 1-5, White ranks 4-8) take
// any held kind. An arrow may also go onto a friendly archer with room for it,
// wherever that archer stands; the archer then holds one more arrow.
func (p *Position) CanDrop(side Side, pt PieceType, to Square) bool {
	if side != Black && side != White || !to.Valid() {
		return false
	}
	if p.Hands[side].Count(pt) <= 0 {
		return false
	}
	dst := p.Board.Squares[to]
	if dst == 0 {
		return inDropZone(side, to.Rank())
	}
	return pt == PieceArrow && dst.Side() == side && dst.Type().Loadable()
}

// DropTargets lists the squares CanDrop accepts, in index order.
func (p *Position) DropTargets(side Side, pt PieceType) []Square {
	var out []Square
	for sq := Square(0); sq < NumSquares; sq++ {
		if p.CanDrop(side, pt, sq) {
			out = append(out, sq)
		}
	}
	return out
}

// DropMove builds the notation for dropping pt on to. Loading an archer is
// written with the archer letter one ammo step up, e.g. "C3B" for Archer0→Archer1.
func (p *Position) DropMove(side Side, pt PieceType, to Square) Move {
	letter := MakePiece(side, pt)
	if pt == PieceArrow && to.Valid() {
		if dst := p.Board.Squares[to]; dst != 0 && dst.Side() == side && dst.Type().Loadable() {
			letter = MakePiece(side, dst.Type().Loaded())
		}
	}
	return Move{Type: MoveDrop, From: NoSquare, To: to, Piece: letter}
}
