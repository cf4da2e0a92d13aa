package alex

// How a destination was reached.
const (
	viaStep uint8 = 1 << iota
	viaRay
	viaReturn
)

// DestSet is the answer to "where can the piece on this square go".
//
// The generator does not deduplicate. An armed archer reaches an orthogonal
// neighbour both by stepping and by shooting, so that square is counted twice;
// Count exposes that multiplicity (the ambiguous-shot count) and Ambiguous is
// true whenever the caller has to ask whether the move is a shot.
type DestSet struct {
	order []Square
	count [NumSquares]uint8
	via   [NumSquares]uint8
}

func (d *DestSet) add(sq Square, how uint8) {
	if d.count[sq] == 0 {
		d.order = append(d.order, sq)
	}
	d.count[sq]++
	d.via[sq] |= how
}

// Squares lists each destination once, in generation order.
func (d *DestSet) Squares() []Square {
	out := make([]Square, len(d.order))
	copy(out, d.order)
	return out
}

func (d *DestSet) Len() int { return len(d.order) }

func (d *DestSet) Empty() bool { return len(d.order) == 0 }

func (d *DestSet) Contains(sq Square) bool {
	return sq.Valid() && d.count[sq] > 0
}

// Count is the ambiguous-shot count of sq: how many generation paths reach it.
func (d *DestSet) Count(sq Square) int {
	if !sq.Valid() {
		return 0
	}
	return int(d.count[sq])
}

func (d *DestSet) Ambiguous(sq Square) bool { return d.Count(sq) >= 2 }

// Stepped reports whether sq is reachable by an ordinary (non-ranged) move.
func (d *DestSet) Stepped(sq Square) bool {
	return sq.Valid() && d.via[sq]&viaStep != 0
}

// Ranged reports whether sq is reachable by an armed archer's shot.
func (d *DestSet) Ranged(sq Square) bool {
	return sq.Valid() && d.via[sq]&viaRay != 0
}

// Returning reports whether sq is a friendly archer an arrow can fly back to.
func (d *DestSet) Returning(sq Square) bool {
	return sq.Valid() && d.via[sq]&viaReturn != 0
}

// Destinations computes the destination set of the piece on origin. It only
// looks at board contents: turn and reserves play no part.
func Destinations(origin Square, b *Board) DestSet {
	var d DestSet
	if b == nil || !origin.Valid() {
		return d
	}
	pc := b.Squares[origin]
	if pc == 0 {
		return d
	}
	switch pc.Type() {
	case PieceLight:
		genLightMoves(b, origin, &d)
	case PieceHeavy:
		genHeavyMoves(b, origin, &d)
	case PieceKing:
		genKingMoves(b, origin, &d)
	case PiecePrince:
		genPrinceMoves(b, origin, &d)
	case PieceGeneral:
		genGeneralMoves(b, origin, &d)
	case PieceKnight:
		genKnightMoves(b, origin, &d)
	case PieceArrow:
		genArrowMoves(b, origin, &d)
	case PieceArcher0:
		genArcherMoves(b, origin, false, &d)
	case PieceArcher1, PieceArcher2:
		genArcherMoves(b, origin, true, &d)
	}
	return d
}

func (b *Board) Destinations(origin Square) DestSet { return Destinations(origin, b) }

// step adds from+(df,dr) when it is on the board and not held by the mover's side.
func step(b *Board, from Square, df, dr int, d *DestSet) {
	f, r := from.File()+df, from.Rank()+dr
	if !onBoard(f, r) {
		return
	}
	side := b.Squares[from].Side()
	to := indexOf(f, r)
	if b.Squares[to].Side() != side {
		d.add(Square(to), viaStep)
	}
}

// ray slides from from along (df,dr): empty squares are taken and the scan goes on,
// the first occupied square is taken only when it belongs to the opponent.
func ray(b *Board, from Square, df, dr int, d *DestSet) {
	side := b.Squares[from].Side()
	f, r := from.File()+df, from.Rank()+dr
	for onBoard(f, r) {
		to := indexOf(f, r)
		pc := b.Squares[to]
		if pc == 0 {
			d.add(Square(to), viaRay)
		} else {
			if pc.Side() != side {
				d.add(Square(to), viaRay)
			}
			break
		}
		f += df
		r += dr
	}
}

func isEmpty(b *Board, file, rank int) bool {
	return onBoard(file, rank) && b.Squares[indexOf(file, rank)] == 0
}
