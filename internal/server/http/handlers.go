package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"alex/internal/alex"
	"alex/internal/engine"
	"alex/internal/server/game"
)

const (
	maxJSONBodyBytes int64 = 1 << 16

	defaultThinkTime = time.Second
	// upper bound for the "time" field of a bestmove request
	MaxThinkTime = 30 * time.Second
	// iterative deepening stops at this depth even with time left
	maxSearchDepth = 32
)

// Handler implements http.Handler for the /api/* routes.
type Handler struct {
	games *game.Manager
}

func NewHandler(games *game.Manager) *Handler {
	return &Handler{games: games}
}

func (h *Handler) Games() *game.Manager {
	return h.games
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/board":
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			h.handleGetBoard(w, r)
		case http.MethodPost:
			h.handlePostBoard(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}

	case "/api/move":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleMove(w, r)

	case "/api/bestmove":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleBestMove(w, r)

	case "/api/new_game":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleNewGame(w, r)

	default:
		http.NotFound(w, r)
	}
}

// gameID is the optional ?game= selector; empty means the default game.
func gameID(r *http.Request) string {
	return r.URL.Query().Get("game")
}

func etagFor(pos *alex.Position) string {
	return fmt.Sprintf(`W/"%016x"`, pos.Hash)
}

func (h *Handler) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	log.Printf("GET: /api/board")
	g, err := h.games.Get(gameID(r))
	if err != nil {
		writeGameError(w, err)
		return
	}
	etag := etagFor(g.Pos)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(g.Pos.Encode()))
}

func (h *Handler) handlePostBoard(w http.ResponseWriter, r *http.Request) {
	var req BoardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	log.Printf("POST: /api/board; %s", req.MFEN)

	pos, err := alex.DecodePosition(req.MFEN)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.games.Update(gameID(r), pos); err != nil {
		writeGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	log.Printf("POST: /api/move; %s", req.MFEN)

	mv, err := alex.ParseMove(req.MFEN)
	if err != nil {
		log.Printf("unknown move: %s", req.MFEN)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := h.games.Apply(gameID(r), mv); err != nil {
		if errors.Is(err, alex.ErrIllegalMove) {
			log.Printf("illegal move: %s: %v", req.MFEN, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleBestMove only thinks: the position comes from the request and no game
// is changed.
func (h *Handler) handleBestMove(w http.ResponseWriter, r *http.Request) {
	var req BestMoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	log.Printf("POST: /api/bestmove; %s, %gs", req.MFEN, req.Time)

	pos, err := alex.DecodePosition(req.MFEN)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit, ok := thinkLimit(req.Time)
	if !ok {
		http.Error(w, fmt.Sprintf("bad time %g", req.Time), http.StatusBadRequest)
		return
	}

	res := engine.NewEngine().Search(pos, engine.SearchConfig{
		MaxDepth:  maxSearchDepth,
		TimeLimit: limit,
	})

	resp := BestMoveResponse{
		MFEN:   pos.Encode(),
		Move:   resignMove,
		Value:  res.Value,
		Depth:  res.Depth,
		Nodes:  res.Nodes,
		TimeMs: res.TimeUsed.Milliseconds(),
	}
	if res.Found {
		next, err := pos.ApplyMove(res.BestMove)
		if err != nil {
			http.Error(w, "search returned an unplayable move", http.StatusInternalServerError)
			return
		}
		resp.MFEN = next.Encode()
		resp.Move = res.BestMove.String()
		resp.PV = movesToDTO(res.PV)
		resp.RootMoves = rootMovesToDTO(res.RootMoves)
	}
	writeJSON(w, resp)
}

// thinkLimit turns the requested seconds into a search limit capped at
// MaxThinkTime. The cap is applied before the conversion so huge values
// cannot overflow into a negative Duration.
func thinkLimit(sec float64) (time.Duration, bool) {
	switch {
	case math.IsNaN(sec) || sec < 0:
		return 0, false
	case sec == 0:
		return defaultThinkTime, true
	case sec >= MaxThinkTime.Seconds():
		return MaxThinkTime, true
	}
	return max(time.Duration(sec*float64(time.Second)), time.Millisecond), true
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	log.Printf("POST: /api/new_game")
	g := h.games.NewGame()
	writeJSON(w, NewGameResponse{
		GameID: g.ID,
		MFEN:   g.Pos.Encode(),
	})
}

// decodeJSON reads a size-limited JSON body, answering the request itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeGameError(w http.ResponseWriter, err error) {
	if errors.Is(err, game.ErrGameNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
