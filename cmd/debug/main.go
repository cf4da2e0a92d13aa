package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"alex/internal/alex"
	"alex/internal/engine"
)

func main() {
	mfen := flag.String("mfen", alex.StartMFEN, "position to inspect")
	perft := flag.Int("perft", 0, "run perft to this depth and print the divide")
	eval := flag.Bool("eval", false, "print the static evaluation")
	flag.Parse()

	pos, err := alex.DecodePosition(*mfen)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}
	fmt.Println("MFEN:", pos.Encode())
	fmt.Printf("Hash: %016x\n", pos.Hash)

	for sq := alex.Square(0); sq < alex.NumSquares; sq++ {
		pt, side := pos.PieceAt(sq)
		if pt == alex.PieceNone || side != pos.SideToMove {
			continue
		}
		d := alex.Destinations(sq, &pos.Board)
		if d.Empty() {
			continue
		}
		fmt.Printf("%s %c:", sq, alex.Letter(side, pt))
		for _, to := range d.Squares() {
			fmt.Printf(" %s", to)
			if d.Ambiguous(to) {
				fmt.Print("?")
			} else if d.Ranged(to) {
				fmt.Print("*")
			}
		}
		fmt.Println()
	}
	moves := pos.GenerateMoves()
	fmt.Println("Moves:", len(moves))

	if *eval {
		fmt.Println("Eval:", engine.Evaluate(pos))
	}

	if *perft > 0 {
		start := time.Now()
		var total int64
		for _, d := range alex.Divide(pos, *perft) {
			fmt.Printf("%s: %d\n", d.Move, d.Nodes)
			total += d.Nodes
		}
		fmt.Printf("Nodes: %d (%v)\n", total, time.Since(start).Round(time.Millisecond))
	}
}
