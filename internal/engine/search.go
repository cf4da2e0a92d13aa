package engine

import (
	"sort"
	"sync/atomic"
	"time"

	"alex/internal/alex"
)

const scoreInf = 1_000_000_000

type SearchConfig struct {
	MaxDepth  int           // plies; 0 means 3
	TimeLimit time.Duration // 0 means no limit
}

// RootMove is one candidate at the root with its score for the side to move.
type RootMove struct {
	Move  alex.Move
	Score int
}

type SearchResult struct {
	BestMove alex.Move
	Found    bool  // false when the side to move has nothing to play
	Score    int   // Black-positive
	Value    int   // from the side to move's point of view
	Depth    int   // deepest completed iteration
	Nodes    int64 // positions visited
	TimeUsed time.Duration
	PV       []alex.Move
	// RootMoves is ordered best first for the side to move.
	RootMoves []RootMove
}

// searchMoves is every generated move except a bare demise, which changes
// nothing on the board and would let the search pass forever.
func searchMoves(pos *alex.Position) []alex.Move {
	moves := pos.GenerateMoves()
	out := moves[:0]
	for _, mv := range moves {
		if mv.Type != alex.MoveDemise {
			out = append(out, mv)
		}
	}
	return out
}

// capturesCrown reports whether mv takes the opponent's crowned royal.
func capturesCrown(pos *alex.Position, mv alex.Move) bool {
	if !pos.IsCapture(mv) {
		return false
	}
	enemy := alex.White
	if pos.SideToMove == alex.White {
		enemy = alex.Black
	}
	return mv.To == pos.CrownSquare(enemy)
}

// Search runs iterative deepening with the root children searched in parallel.
func (e *Engine) Search(pos *alex.Position, cfg SearchConfig) SearchResult {
	start := time.Now()
	atomic.StoreInt64(&e.nodes, 0)
	side := pos.SideToMove

	moves := searchMoves(pos)
	if len(moves) == 0 {
		return SearchResult{Score: Evaluate(pos), TimeUsed: time.Since(start)}
	}

	// taking the crown ends the game, no need to look further
	for _, mv := range moves {
		if capturesCrown(pos, mv) {
			res := SearchResult{
				BestMove:  mv,
				Found:     true,
				Score:     signed(side, mateScore),
				Value:     mateScore,
				Depth:     1,
				Nodes:     1,
				PV:        []alex.Move{mv},
				RootMoves: []RootMove{{Move: mv, Score: mateScore}},
			}
			res.TimeUsed = time.Since(start)
			return res
		}
	}

	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 3
	}
	var deadline time.Time
	if cfg.TimeLimit > 0 {
		deadline = start.Add(cfg.TimeLimit)
	}

	var best []rootResult
	bestDepth := 0
	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		if depth > 1 && !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		results := e.searchRoot(pos, moves, depth, deadline)
		if len(results) == 0 {
			break
		}
		// an iteration cut by the deadline is incomplete; depth 1 never is
		if depth > 1 && !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		best = results
		bestDepth = depth

		// search the previous best first next time
		reordered := make([]alex.Move, len(results))
		for i, r := range results {
			reordered[i] = r.move
		}
		moves = reordered
	}

	top := best[0]
	res := SearchResult{
		BestMove: top.move,
		Found:    true,
		Score:    signed(side, top.value),
		Value:    top.value,
		Depth:    bestDepth,
		Nodes:    atomic.LoadInt64(&e.nodes),
		PV:       append([]alex.Move{top.move}, top.pv...),
	}
	for _, r := range best {
		res.RootMoves = append(res.RootMoves, RootMove{Move: r.move, Score: r.value})
	}
	res.TimeUsed = time.Since(start)
	return res
}

type rootResult struct {
	order int
	move  alex.Move
	value int // for the side to move at the root
	pv    []alex.Move
}

// searchRoot scores every root move with a full window so the ranking is exact.
// Each child gets its own goroutine and local Engine.
func (e *Engine) searchRoot(pos *alex.Position, moves []alex.Move, depth int, deadline time.Time) []rootResult {
	side := pos.SideToMove

	// children are generated up front, pos is never touched concurrently
	type childNode struct {
		order int
		move  alex.Move
		child *alex.Position
	}
	children := make([]childNode, 0, len(moves))
	for i, mv := range moves {
		child, err := pos.ApplyMove(mv)
		if err != nil {
			continue
		}
		children = append(children, childNode{order: i, move: mv, child: child})
	}
	if len(children) == 0 {
		return nil
	}

	results := make(chan rootResult, len(children))
	for _, ch := range children {
		ch := ch
		go func() {
			local := newLocal()
			score := local.alphaBeta(ch.child, depth-1, -scoreInf, scoreInf, deadline)
			atomic.AddInt64(&e.nodes, local.nodes)
			results <- rootResult{
				order: ch.order,
				move:  ch.move,
				value: signed(side, score),
				pv:    local.principalVariation(ch.child, depth-1),
			}
		}()
	}

	out := make([]rootResult, 0, len(children))
	for range children {
		out = append(out, <-results)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].value != out[j].value {
			return out[i].value > out[j].value
		}
		return out[i].order < out[j].order
	})

	key := pos.EnsureHash()
	e.storeTT(key, depth, signed(side, out[0].value), ttExact, out[0].move, true)
	return out
}

// alphaBeta is a plain Black-maximising minimax with alpha-beta pruning.
func (e *Engine) alphaBeta(pos *alex.Position, depth int, alpha, beta int, deadline time.Time) int {
	e.nodes++

	if s, over := terminalScore(pos); over {
		// prefer the quicker win and the slower loss
		if s > 0 {
			return s + depth
		}
		if s < 0 {
			return s - depth
		}
		return s
	}
	if depth <= 0 {
		return Evaluate(pos)
	}
	if !deadline.IsZero() && time.Now().After(deadline) {
		return Evaluate(pos)
	}

	key := pos.EnsureHash()
	if s, ok := e.probeTT(key, depth, alpha, beta); ok {
		return s
	}

	moves := searchMoves(pos)
	if len(moves) == 0 {
		return Evaluate(pos)
	}
	e.orderMoves(pos, key, moves)

	origAlpha, origBeta := alpha, beta
	maximizing := pos.SideToMove == alex.Black
	bestScore := scoreInf
	if maximizing {
		bestScore = -scoreInf
	}
	var bestMove alex.Move
	found := false

	for _, mv := range moves {
		child, err := pos.ApplyMove(mv)
		if err != nil {
			continue
		}
		score := e.alphaBeta(child, depth-1, alpha, beta, deadline)
		if maximizing {
			if !found || score > bestScore {
				bestScore, bestMove, found = score, mv, true
			}
			alpha = max(alpha, score)
		} else {
			if !found || score < bestScore {
				bestScore, bestMove, found = score, mv, true
			}
			beta = min(beta, score)
		}
		if alpha >= beta {
			break
		}
	}
	if !found {
		return Evaluate(pos)
	}

	bound := ttExact
	switch {
	case bestScore <= origAlpha:
		bound = ttUpper
	case bestScore >= origBeta:
		bound = ttLower
	}
	e.storeTT(key, depth, bestScore, bound, bestMove, true)
	return bestScore
}

// orderMoves puts the stored best move first, then captures.
func (e *Engine) orderMoves(pos *alex.Position, key uint64, moves []alex.Move) {
	n := 0
	for i := range moves {
		if pos.IsCapture(moves[i]) {
			moves[n], moves[i] = moves[i], moves[n]
			n++
		}
	}
	if entry, ok := e.tt[key]; ok && entry.HasMove {
		for i := range moves {
			if moves[i] == entry.Move {
				copy(moves[1:i+1], moves[:i])
				moves[0] = entry.Move
				break
			}
		}
	}
}
