package alex

// Archers always step orthogonally. Armed ones (Archer1/Archer2) also shoot along
// all eight lines; an orthogonal neighbour is then reachable twice.
func genArcherMoves(b *Board, from Square, armed bool, d *DestSet) {
	for _, dir := range orthoDirs {
		step(b, from, dir[0], dir[1], d)
	}
	if !armed {
		return
	}
	for _, dir := range allDirs {
		ray(b, from, dir[0], dir[1], d)
	}
}

// An arrow lying on the board does not move by itself. Along each line the
// first piece it meets is a destination only when it is a friendly archer that
// still has room for an arrow; this is the only friendly-occupied destination.
func genArrowMoves(b *Board, from Square, d *DestSet) {
	side := b.Squares[from].Side()
	for _, dir := range allDirs {
		for j := 1; ; j++ {
			f := from.File() + dir[0]*j
			r := from.Rank() + dir[1]*j
			if !onBoard(f, r) {
				break
			}
			to := indexOf(f, r)
			pc := b.Squares[to]
			if pc == 0 {
				continue
			}
			if pc.Side() == side && pc.Type().Loadable() {
				d.add(Square(to), viaReturn)
			}
			break
		}
	}
}
