package httpserver

import (
	"encoding/json"
	"fmt"

	"alex/internal/alex"
	"alex/internal/engine"
)

// BoardRequest resets a game to the given position.
type BoardRequest struct {
	MFEN string `json:"mfen"`
}

// MoveRequest carries one move in notation. The field keeps its historical
// name "mfen" on the wire.
type MoveRequest struct {
	MFEN string `json:"mfen"`
}

// BestMoveRequest asks for a move in a position; Time is in seconds.
type BestMoveRequest struct {
	MFEN string  `json:"mfen"`
	Time float64 `json:"time"`
}

// RootMoveDTO is written as a [move, score] pair.
type RootMoveDTO struct {
	Move  string
	Score int
}

func (r RootMoveDTO) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.Move, r.Score})
}

func (r *RootMoveDTO) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("root move: want [move, score], got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &r.Move); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &r.Score)
}

// BestMoveResponse: MFEN is the position after Move. Move is "resign" when the
// side to move has nothing to play, and MFEN is then the position itself.
type BestMoveResponse struct {
	MFEN      string        `json:"mfen"`
	Move      string        `json:"move"`
	Value     int           `json:"value"` // for the side that was to move
	Depth     int           `json:"depth"`
	Nodes     int64         `json:"nodes"`
	PV        []string      `json:"pv"`
	RootMoves []RootMoveDTO `json:"root_moves"`
	TimeMs    int64         `json:"time_ms"`
}

type NewGameResponse struct {
	GameID string `json:"game_id"`
	MFEN   string `json:"mfen"`
}

const resignMove = "resign"

func movesToDTO(ms []alex.Move) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}
	return out
}

func rootMovesToDTO(rs []engine.RootMove) []RootMoveDTO {
	out := make([]RootMoveDTO, len(rs))
	for i, r := range rs {
		out[i] = RootMoveDTO{Move: r.Move.String(), Score: r.Score}
	}
	return out
}
