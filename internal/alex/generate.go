package alex

// GenerateMovesForSide lists every move whose geometry is legal for side:
// board moves, shots, arrow returns, drops and archer loading. Demise is listed
// last when the side may demise.
func (p *Position) GenerateMovesForSide(side Side) []Move {
	var moves []Move
	for sq := Square(0); sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		d := Destinations(sq, &p.Board)
		for _, to := range d.order {
			if d.Stepped(to) || d.Returning(to) {
				moves = append(moves, Move{Type: MoveNormal, From: sq, To: to})
			}
			if d.Ranged(to) {
				moves = append(moves, Move{Type: MoveShoot, From: sq, To: to})
			}
		}
	}

	for _, e := range p.Hand(side) {
		for _, to := range p.DropTargets(side, e.Kind) {
			moves = append(moves, p.DropMove(side, e.Kind, to))
		}
	}

	if p.CanDemise(side) {
		moves = append(moves, DemiseMove)
	}
	return moves
}

func (p *Position) GenerateMoves() []Move {
	return p.GenerateMovesForSide(p.SideToMove)
}

// IsCapture reports whether m removes an enemy piece.
func (p *Position) IsCapture(m Move) bool {
	if m.Type != MoveNormal && m.Type != MoveShoot || !m.To.Valid() {
		return false
	}
	dst := p.Board.Squares[m.To]
	return dst != 0 && dst.Side() != p.SideToMove
}
