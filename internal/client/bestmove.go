package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"alex/internal/alex"
)

const resign = "resign"

type RootMove struct {
	Move  alex.Move
	Score int
}

// BestMove is the server's suggestion. Resign is set when it found no move.
type BestMove struct {
	Move   alex.Move
	Resign bool
	// MFEN is the position after Move; empty when the server did not send it.
	MFEN      string
	Value     int
	Depth     int
	PV        []alex.Move
	RootMoves []RootMove
}

// UnmarshalJSON accepts the move from "move", from a bare move in "mfen" (older
// servers), from the head of "pv", or from the best of "root_moves". Root moves
// may be [move, score] pairs or {"move", "score"} objects.
func (b *BestMove) UnmarshalJSON(data []byte) error {
	var w struct {
		MFEN      string            `json:"mfen"`
		Move      string            `json:"move"`
		Value     int               `json:"value"`
		Depth     int               `json:"depth"`
		PV        []string          `json:"pv"`
		RootMoves []json.RawMessage `json:"root_moves"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	out := BestMove{Value: w.Value, Depth: w.Depth, MFEN: w.MFEN}
	for _, s := range w.PV {
		m, err := alex.ParseMove(s)
		if err != nil {
			return fmt.Errorf("bestmove pv: %w", err)
		}
		out.PV = append(out.PV, m)
	}
	for _, raw := range w.RootMoves {
		rm, err := decodeRootMove(raw)
		if err != nil {
			return err
		}
		out.RootMoves = append(out.RootMoves, rm)
	}

	label := w.Move
	if label == "" && (w.MFEN == resign || isMove(w.MFEN)) {
		label = w.MFEN
		out.MFEN = ""
	}
	switch {
	case label == resign:
		out.Resign = true
	case label != "":
		m, err := alex.ParseMove(label)
		if err != nil {
			return fmt.Errorf("bestmove: %w", err)
		}
		out.Move = m
	case len(out.PV) > 0:
		out.Move = out.PV[0]
	case len(out.RootMoves) > 0:
		out.Move = out.RootMoves[0].Move
	default:
		return errors.New("bestmove: response carries no move")
	}
	*b = out
	return nil
}

func isMove(s string) bool {
	_, err := alex.ParseMove(s)
	return err == nil
}

func decodeRootMove(raw json.RawMessage) (RootMove, error) {
	var label string
	var score int

	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err == nil {
		if len(pair) != 2 {
			return RootMove{}, fmt.Errorf("root move: want [move, score], got %d elements", len(pair))
		}
		if err := json.Unmarshal(pair[0], &label); err != nil {
			return RootMove{}, fmt.Errorf("root move: %w", err)
		}
		if err := json.Unmarshal(pair[1], &score); err != nil {
			return RootMove{}, fmt.Errorf("root move: %w", err)
		}
	} else {
		var obj struct {
			Move  string `json:"move"`
			Score *int   `json:"score"`
			Value *int   `json:"value"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return RootMove{}, fmt.Errorf("root move: %w", err)
		}
		label = obj.Move
		switch {
		case obj.Score != nil:
			score = *obj.Score
		case obj.Value != nil:
			score = *obj.Value
		}
	}

	m, err := alex.ParseMove(label)
	if err != nil {
		return RootMove{}, fmt.Errorf("root move: %w", err)
	}
	return RootMove{Move: m, Score: score}, nil
}
