package main

import (
	"flag"
	"log"
	"os"
	"time"

	"alex/internal/client"
	"alex/internal/tui"
)

func main() {
	server := flag.String("server", getenv("ALEX_SERVER", client.DefaultServer), "server base URL")
	gameID := flag.String("game", getenv("ALEX_GAME", ""), "game id (default: the server's default game)")
	think := flag.Duration("think", time.Second, "engine think time for best-move requests")
	flag.Parse()

	c := client.New(*server, client.WithGame(*gameID))
	if err := tui.Run(c, *think); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
