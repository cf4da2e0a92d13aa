package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alex/internal/alex"
	"alex/internal/server/game"
	httpserver "alex/internal/server/http"
)

func main() {
	// Flags (env fallbacks).
	addr := flag.String("addr", getenv("ALEX_ADDR", ":3001"), "listen address")
	start := flag.String("start", getenv("ALEX_START", ""), "MFEN of the starting position (default: standard opening)")
	flag.Parse()

	var pos *alex.Position
	if *start != "" {
		p, err := alex.DecodePosition(*start)
		if err != nil {
			log.Fatalf("start position: %v", err)
		}
		pos = p
	}

	games := game.NewManager(pos)
	srv := httpserver.NewServer(games)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Close(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	st, _ := games.Get("")
	log.Printf("default game %s at %s", st.ID, st.Pos.Encode())
	if err := srv.Listen(*addr); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
