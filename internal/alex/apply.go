package alex

import (
	"errors"
	"fmt"
)

var ErrIllegalMove = errors.New("illegal move")

func illegal(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalMove, fmt.Sprintf(format, args...))
}

// ApplyMove is what the authoritative side runs: it checks the move against the
// movement geometry and returns the resulting position. p is left untouched.
//
// A bare demise keeps the same side to move; every other move passes the turn.
func (p *Position) ApplyMove(m Move) (*Position, error) {
	side := p.SideToMove
	if side != Black && side != White {
		return nil, illegal("no side to move")
	}
	np := p.Clone()

	if m.Demise || m.Type == MoveDemise {
		if !p.CanDemise(side) {
			return nil, illegal("%s cannot demise without a %s on the board", side, p.Heir(side))
		}
		np.Demise[side]++
		if m.Type == MoveDemise {
			np.Hash = np.CalculateHash()
			return np, nil
		}
	}

	var err error
	switch m.Type {
	case MoveNormal:
		err = np.applyNormal(side, m.From, m.To)
	case MoveShoot:
		err = np.applyShoot(side, m.From, m.To)
	case MoveDrop:
		err = np.applyDrop(side, m.Piece, m.To)
	default:
		err = illegal("unknown move type %d", m.Type)
	}
	if err != nil {
		return nil, err
	}

	np.SideToMove = opposite(side)
	np.Hash = np.CalculateHash()
	return np, nil
}

func (p *Position) ownPiece(side Side, from Square) (Piece, error) {
	if !from.Valid() {
		return 0, illegal("bad origin")
	}
	pc := p.Board.Squares[from]
	if pc == 0 || pc.Side() != side {
		return 0, illegal("no %s piece on %s", side, from)
	}
	return pc, nil
}

func (p *Position) applyNormal(side Side, from, to Square) error {
	pc, err := p.ownPiece(side, from)
	if err != nil {
		return err
	}
	d := Destinations(from, &p.Board)
	if !d.Contains(to) {
		return illegal("%s cannot reach %s from %s", pc.Type(), to, from)
	}

	// arrow returning to its archer
	if d.Returning(to) {
		archer := p.Board.Squares[to]
		p.Board.Squares[from] = 0
		p.Board.Squares[to] = MakePiece(side, archer.Type().Loaded())
		return nil
	}

	if pc.Type().IsArcher() && !d.Stepped(to) {
		return illegal("%s to %s is only reachable by a shot", from, to)
	}
	p.capture(side, to)
	p.Board.Squares[to] = pc
	p.Board.Squares[from] = 0
	return nil
}

func (p *Position) applyShoot(side Side, from, to Square) error {
	pc, err := p.ownPiece(side, from)
	if err != nil {
		return err
	}
	if pc.Type() != PieceArcher1 && pc.Type() != PieceArcher2 {
		return illegal("%s on %s cannot shoot", pc.Type(), from)
	}
	d := Destinations(from, &p.Board)
	if !d.Ranged(to) {
		return illegal("%s is out of range from %s", to, from)
	}
	p.capture(side, to)
	p.Board.Squares[to] = MakePiece(side, PieceArrow)
	p.Board.Squares[from] = MakePiece(side, pc.Type().Unloaded())
	return nil
}

func (p *Position) applyDrop(side Side, letter Piece, to Square) error {
	if letter == 0 || letter.Side() != side {
		return illegal("drop letter %s does not belong to %s", letter, side)
	}
	if !to.Valid() {
		return illegal("bad drop square")
	}
	pt := letter.Type()
	dst := p.Board.Squares[to]

	// loading: "R" or the next archer letter onto a friendly archer
	if dst != 0 && dst.Side() == side && dst.Type().Loadable() &&
		(pt == PieceArrow || pt == dst.Type().Loaded()) {
		if !p.CanDrop(side, PieceArrow, to) {
			return illegal("no arrow in reserve")
		}
		p.Hands[side], _ = p.Hands[side].Remove(PieceArrow)
		p.Board.Squares[to] = MakePiece(side, dst.Type().Loaded())
		return nil
	}

	if !pt.InReserve() {
		return illegal("%s cannot be dropped", pt)
	}
	if dst != 0 || !p.CanDrop(side, pt, to) {
		return illegal("cannot drop %s on %s", pt, to)
	}
	p.Hands[side], _ = p.Hands[side].Remove(pt)
	p.Board.Squares[to] = MakePiece(side, pt)
	return nil
}

// capture moves whatever stands on sq into side's reserve. Archers and royals
// never enter a reserve; a captured archer gives up the arrows it carried.
func (p *Position) capture(side Side, sq Square) {
	victim := p.Board.Squares[sq]
	if victim == 0 {
		return
	}
	pt := victim.Type()
	switch {
	case pt.IsArcher():
		p.Hands[side] = p.Hands[side].Add(PieceArrow, pt.Ammo())
	case pt.InReserve():
		p.Hands[side] = p.Hands[side].Add(pt, 1)
	}
	p.Board.Squares[sq] = 0
}
