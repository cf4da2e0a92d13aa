package main

import (
	"fmt"
	"log"
	"time"

	"alex/internal/alex"
	"alex/internal/engine"
)

type PlayerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

// playGame returns the winning side, NoSide for a draw.
func playGame(start *alex.Position, black, white PlayerConfig, maxMoves int) alex.Side {
	pos := start
	e := engine.NewEngine()

	for i := 0; i < maxMoves; i++ {
		cfg := black.Cfg
		if pos.SideToMove == alex.White {
			cfg = white.Cfg
		}

		t0 := time.Now()
		res := e.Search(pos, cfg)
		dur := time.Since(t0)
		if !res.Found {
			// nothing to play: the side to move loses
			return opponent(pos.SideToMove)
		}

		nps := int64(0)
		if dur > 0 {
			nps = int64(float64(res.Nodes) / dur.Seconds())
		}
		fmt.Printf("%3d %-5s %-8s score=%d depth=%d nodes=%d time=%v nps=%d\n",
			i+1, pos.SideToMove, res.BestMove, res.Score, res.Depth, res.Nodes, dur.Round(time.Millisecond), nps)

		next, err := pos.ApplyMove(res.BestMove)
		if err != nil {
			log.Printf("engine played an illegal move %s: %v", res.BestMove, err)
			return opponent(pos.SideToMove)
		}
		pos = next

		for _, side := range []alex.Side{alex.Black, alex.White} {
			if pos.CrownSquare(side) == alex.NoSquare {
				fmt.Printf("%s crown taken\n", side)
				return opponent(side)
			}
		}
	}
	return alex.NoSide
}

func opponent(s alex.Side) alex.Side {
	if s == alex.Black {
		return alex.White
	}
	return alex.Black
}
