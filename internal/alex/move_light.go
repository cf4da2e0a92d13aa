package alex

func genLightMoves(b *Board, from Square, d *DestSet) {
	side := b.Squares[from].Side()
	step(b, from, 0, forwardDir(side), d)
	if crossedZone(side, from.Rank()) {
		step(b, from, +1, 0, d)
		step(b, from, -1, 0, d)
	}
}

// Heavy: like Light, plus a double step when the square in front is empty.
func genHeavyMoves(b *Board, from Square, d *DestSet) {
	side := b.Squares[from].Side()
	dir := forwardDir(side)
	step(b, from, 0, dir, d)
	if isEmpty(b, from.File(), from.Rank()+dir) {
		step(b, from, 0, 2*dir, d)
	}
	if crossedZone(side, from.Rank()) {
		step(b, from, +1, 0, d)
		step(b, from, -1, 0, d)
	}
}
