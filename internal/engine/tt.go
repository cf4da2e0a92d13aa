package engine

import "alex/internal/alex"

const ttMaxEntries = 1_000_000

type ttBound uint8

const (
	ttExact ttBound = iota
	ttLower         // score is at least Score
	ttUpper         // score is at most Score
)

type ttEntry struct {
	Depth int
	Score int
	Bound ttBound
	Move  alex.Move
	// HasMove is false for nodes where no move was searched.
	HasMove bool
}

func (e *Engine) storeTT(key uint64, depth, score int, bound ttBound, mv alex.Move, hasMove bool) {
	if len(e.tt) > ttMaxEntries {
		e.tt = make(map[uint64]ttEntry, 1<<16)
	}
	old, ok := e.tt[key]
	if !ok || depth >= old.Depth {
		e.tt[key] = ttEntry{
			Depth:   depth,
			Score:   score,
			Bound:   bound,
			Move:    mv,
			HasMove: hasMove,
		}
	}
}

// probeTT returns a usable score when the entry is deep enough and its bound
// decides the current window.
func (e *Engine) probeTT(key uint64, depth, alpha, beta int) (int, bool) {
	entry, ok := e.tt[key]
	if !ok || entry.Depth < depth {
		return 0, false
	}
	switch entry.Bound {
	case ttExact:
		return entry.Score, true
	case ttLower:
		if entry.Score >= beta {
			return entry.Score, true
		}
	case ttUpper:
		if entry.Score <= alpha {
			return entry.Score, true
		}
	}
	return 0, false
}

// principalVariation follows stored best moves from pos, at most n plies.
func (e *Engine) principalVariation(pos *alex.Position, n int) []alex.Move {
	var pv []alex.Move
	seen := map[uint64]bool{}
	for len(pv) < n {
		key := pos.EnsureHash()
		if seen[key] {
			break
		}
		seen[key] = true
		entry, ok := e.tt[key]
		if !ok || !entry.HasMove {
			break
		}
		next, err := pos.ApplyMove(entry.Move)
		if err != nil {
			break
		}
		pv = append(pv, entry.Move)
		pos = next
	}
	return pv
}
