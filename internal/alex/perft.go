package alex

// Perft counts the leaf nodes of the move tree depth plies deep. Every
// generated move is followed, bare demise included.
func Perft(pos *Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	var nodes int64
	for _, m := range pos.GenerateMoves() {
		next, err := pos.ApplyMove(m)
		if err != nil {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// PerftDivide splits Perft by root move, in generation order.
type PerftDivide struct {
	Move  Move
	Nodes int64
}

func Divide(pos *Position, depth int) []PerftDivide {
	if depth <= 0 {
		return nil
	}
	moves := pos.GenerateMoves()
	out := make([]PerftDivide, 0, len(moves))
	for _, m := range moves {
		next, err := pos.ApplyMove(m)
		if err != nil {
			continue
		}
		out = append(out, PerftDivide{Move: m, Nodes: Perft(next, depth-1)})
	}
	return out
}
