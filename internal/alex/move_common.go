package alex

// King: one square in any direction.
func genKingMoves(b *Board, from Square, d *DestSet) {
	for _, dir := range allDirs {
		step(b, from, dir[0], dir[1], d)
	}
}

// Prince: the four diagonals and straight ahead, never sideways or straight back.
func genPrinceMoves(b *Board, from Square, d *DestSet) {
	for _, dir := range diagDirs {
		step(b, from, dir[0], dir[1], d)
	}
	step(b, from, 0, forwardDir(b.Squares[from].Side()), d)
}

// General: forward diagonals, sideways, straight forward and back. No backward diagonals.
func genGeneralMoves(b *Board, from Square, d *DestSet) {
	fwd := forwardDir(b.Squares[from].Side())
	step(b, from, +1, fwd, d)
	step(b, from, -1, fwd, d)
	step(b, from, +1, 0, d)
	step(b, from, -1, 0, d)
	step(b, from, 0, +1, d)
	step(b, from, 0, -1, d)
}

// Knight leaps, nothing blocks it.
func genKnightMoves(b *Board, from Square, d *DestSet) {
	for _, j := range knightJumps {
		step(b, from, j[0], j[1], d)
	}
}
