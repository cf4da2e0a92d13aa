package mobile

import (
	"context"
	"log"
	"time"

	"alex/internal/alex"
	"alex/internal/server/game"
	httpserver "alex/internal/server/http"
)

var srv *httpserver.Server

// StartServer starts the local HTTP server on 127.0.0.1:port.
// start: MFEN of the default game, empty for the standard opening.
func StartServer(port string, start string) {
	var pos *alex.Position
	if start != "" {
		p, err := alex.DecodePosition(start)
		if err != nil {
			log.Printf("bad start position, using the opening: %v", err)
		} else {
			pos = p
		}
	}
	srv = httpserver.NewServer(game.NewManager(pos))

	// Run in background so it doesn't block the UI thread
	go func(s *httpserver.Server) {
		if err := s.Listen("127.0.0.1:" + port); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}(srv)
}

// StopServer shuts the server started by StartServer down.
func StopServer() {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Close(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	srv = nil
}
