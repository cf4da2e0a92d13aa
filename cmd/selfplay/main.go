package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"alex/internal/alex"
	"alex/internal/engine"
)

func main() {
	depthA := flag.Int("depth-a", 3, "search depth for player A")
	depthB := flag.Int("depth-b", 2, "search depth for player B")
	think := flag.Duration("think", 2*time.Second, "time limit per move")
	totalGames := flag.Int("games", 1, "number of games to play")
	maxMoves := flag.Int("maxmoves", 200, "max moves per game before a draw")
	start := flag.String("start", alex.StartMFEN, "MFEN of the starting position")
	pprof := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprof != "" {
		go func() {
			log.Printf("pprof listening on %s", *pprof)
			if err := http.ListenAndServe(*pprof, nil); err != nil {
				log.Printf("pprof failed: %v", err)
			}
		}()
	}

	pos, err := alex.DecodePosition(*start)
	if err != nil {
		log.Fatalf("start position: %v", err)
	}

	playerA := PlayerConfig{
		Name: fmt.Sprintf("A (depth %d)", *depthA),
		Cfg:  engine.SearchConfig{MaxDepth: *depthA, TimeLimit: *think},
	}
	playerB := PlayerConfig{
		Name: fmt.Sprintf("B (depth %d)", *depthB),
		Cfg:  engine.SearchConfig{MaxDepth: *depthB, TimeLimit: *think},
	}

	// A opens as Black; colours swap every game
	wins := map[string]int{}
	draws := 0
	for g := 0; g < *totalGames; g++ {
		b, w := playerA, playerB
		if g%2 == 1 {
			b, w = playerB, playerA
		}

		fmt.Printf("\n=== Game %d: Black [%s] vs White [%s] ===\n", g+1, b.Name, w.Name)
		winner := playGame(pos, b, w, *maxMoves)
		switch winner {
		case alex.Black:
			wins[b.Name]++
			fmt.Printf("Result: %s wins\n", b.Name)
		case alex.White:
			wins[w.Name]++
			fmt.Printf("Result: %s wins\n", w.Name)
		default:
			draws++
			fmt.Println("Result: draw")
		}
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", playerA.Name, wins[playerA.Name])
	fmt.Printf("%s: %d\n", playerB.Name, wins[playerB.Name])
	fmt.Printf("Draws: %d\n", draws)
}
