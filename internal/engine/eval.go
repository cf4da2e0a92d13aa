package engine

import "alex/internal/alex"

// mateScore is returned when a side's crowned royal is gone.
const mateScore = 1_000_000

var pieceValue = [alex.NumPieceTypes]int{
	alex.PieceLight:   100,
	alex.PieceHeavy:   140,
	alex.PieceKing:    0, // value lives in mateScore while crowned
	alex.PiecePrince:  0,
	alex.PieceGeneral: 300,
	alex.PieceKnight:  320,
	alex.PieceArrow:   60,
	alex.PieceArcher0: 260,
	alex.PieceArcher1: 330,
	alex.PieceArcher2: 400,
}

// the uncrowned royal is worth keeping: it is the only way to demise
const heirValue = 350

// reserve pieces can be dropped anywhere in the zone, worth a bit more than on board
const reserveBonusPct = 10

const (
	mobilityWeight     = 2
	royalExposedWeight = 40
)

// Evaluate scores pos from Black's point of view: positive favours Black.
func Evaluate(pos *alex.Position) int {
	if s, over := terminalScore(pos); over {
		return s
	}
	return evaluateMaterialPositional(pos) + evaluateReserves(pos) +
		evaluateRoyalSafety(pos) + evaluateMobility(pos)
}

// terminalScore reports a decided game: the side without its crowned royal lost.
func terminalScore(pos *alex.Position) (int, bool) {
	blackAlive := pos.CrownSquare(alex.Black) != alex.NoSquare
	whiteAlive := pos.CrownSquare(alex.White) != alex.NoSquare
	switch {
	case !blackAlive && !whiteAlive:
		return 0, true
	case !blackAlive:
		return -mateScore, true
	case !whiteAlive:
		return mateScore, true
	}
	return 0, false
}

func evaluateMaterialPositional(pos *alex.Position) int {
	score := 0
	for sq := alex.Square(0); sq < alex.NumSquares; sq++ {
		pc := pos.Board.Squares[sq]
		if pc == 0 {
			continue
		}
		side := pc.Side()
		pt := pc.Type()
		val := pieceValue[pt] + piecePositionalBonus(pt, side, sq)
		if pt == pos.Heir(side) {
			val += heirValue
		}
		score += signed(side, val)
	}
	return score
}

func evaluateReserves(pos *alex.Position) int {
	score := 0
	for _, side := range []alex.Side{alex.Black, alex.White} {
		for _, e := range pos.Hand(side) {
			v := pieceValue[e.Kind] * (100 + reserveBonusPct) / 100
			score += signed(side, v*e.Count)
		}
	}
	return score
}

// piecePositionalBonus is the bonus for side's piece of kind pt on sq.
func piecePositionalBonus(pt alex.PieceType, side alex.Side, sq alex.Square) int {
	advance := rankFromSide(side, sq.Rank())
	centerBonus := 3 - min(abs(2*sq.File()-7), 7)/2 // 3 on D/E files, 0 on A/H

	switch pt {
	case alex.PieceLight, alex.PieceHeavy:
		// pushing past the zone line unlocks sideways steps
		b := advance * 4
		if advance >= 5 {
			b += 10
		}
		return b
	case alex.PieceKnight:
		return centerBonus * 6
	case alex.PieceGeneral:
		return centerBonus*3 + advance*2
	case alex.PieceArcher1, alex.PieceArcher2:
		return centerBonus * 4
	case alex.PieceKing, alex.PiecePrince:
		// royals belong at home
		return -advance * 6
	}
	return 0
}

// evaluateRoyalSafety penalises a crowned royal standing on an enemy shot line.
func evaluateRoyalSafety(pos *alex.Position) int {
	score := 0
	for _, side := range []alex.Side{alex.Black, alex.White} {
		crown := pos.CrownSquare(side)
		if crown == alex.NoSquare {
			continue
		}
		penalty := 0
		for sq := alex.Square(0); sq < alex.NumSquares; sq++ {
			pc := pos.Board.Squares[sq]
			if pc == 0 || pc.Side() == side || pc.Type().Ammo() == 0 {
				continue
			}
			d := pos.Board.Destinations(sq)
			if d.Ranged(crown) {
				penalty += royalExposedWeight
			}
		}
		score -= signed(side, penalty)
	}
	return score
}

// evaluateMobility counts board destinations for both sides.
func evaluateMobility(pos *alex.Position) int {
	score := 0
	for sq := alex.Square(0); sq < alex.NumSquares; sq++ {
		pc := pos.Board.Squares[sq]
		if pc == 0 {
			continue
		}
		d := pos.Board.Destinations(sq)
		score += signed(pc.Side(), d.Len()*mobilityWeight)
	}
	return score
}

func signed(side alex.Side, v int) int {
	if side == alex.White {
		return -v
	}
	return v
}

// forward distance from the side's home rank
func rankFromSide(side alex.Side, rank int) int {
	if side == alex.White {
		return alex.Ranks - 1 - rank
	}
	return rank
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
