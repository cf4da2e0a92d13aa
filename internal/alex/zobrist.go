package alex

import "sync"

// reserve counts up to this have their own key; larger counts multiply the
// odd key in slot 0, which is injective modulo 2^64
const zobristMaxHand = 16

var (
	zobristOnce sync.Once

	zobristPieces [2][NumPieceTypes][NumSquares]uint64
	zobristHands  [2][NumPieceTypes][zobristMaxHand + 1]uint64
	zobristDemise [2]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := 1; pt < NumPieceTypes; pt++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][pt][sq] = next()
				}
				zobristHands[side][pt][0] = next() | 1
				for n := 1; n <= zobristMaxHand; n++ {
					zobristHands[side][pt][n] = next()
				}
			}
			zobristDemise[side] = next()
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece, sq int) uint64 {
	if pc == 0 || sq < 0 || sq >= NumSquares {
		return 0
	}
	side := pc.Side()
	if side != Black && side != White {
		return 0
	}
	pt := int(pc.Type())
	if pt <= 0 || pt >= NumPieceTypes {
		return 0
	}
	return zobristPieces[side][pt][sq]
}

// CalculateHash hashes pieces, side to move, reserve counts and demise counters.
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for sq := 0; sq < NumSquares; sq++ {
		if pc := p.Board.Squares[sq]; pc != 0 {
			h ^= pieceHashKey(pc, sq)
		}
	}
	for _, side := range []Side{Black, White} {
		for _, e := range p.Hands[side] {
			pt := int(e.Kind)
			if pt <= 0 || pt >= NumPieceTypes || e.Count <= 0 {
				continue
			}
			if e.Count <= zobristMaxHand {
				h ^= zobristHands[side][pt][e.Count]
			} else {
				h ^= zobristHands[side][pt][0] * uint64(e.Count)
			}
		}
		if n := p.Demise[side]; n > 0 {
			h ^= zobristDemise[side] * uint64(n)
		}
	}
	if p.SideToMove == White {
		h ^= zobristSide
	}
	return h
}

// EnsureHash fills Hash if it was never computed.
func (p *Position) EnsureHash() uint64 {
	if p.Hash == 0 {
		p.Hash = p.CalculateHash()
	}
	return p.Hash
}
