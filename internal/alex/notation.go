package alex

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMove = errors.New("invalid move notation")

type MoveType uint8

const (
	MoveNormal MoveType = iota // <from><to>; also an arrow flying back to its archer
	MoveShoot                  // <from><to>S
	MoveDrop                   // <to><letter>; also loading an arrow onto an archer
	MoveDemise                 // D
)

// Move is a move in the coordinate notation sent to the authoritative server.
type Move struct {
	Type  MoveType
	From  Square // NoSquare for drops and demise
	To    Square // NoSquare for demise
	Piece Piece  // drop letter, case gives the side
	// Demise asks for succession together with the move ("...D").
	Demise bool
}

// DemiseMove is the bare succession move.
var DemiseMove = Move{Type: MoveDemise, From: NoSquare, To: NoSquare}

func (m Move) String() string {
	var sb strings.Builder
	switch m.Type {
	case MoveDemise:
		return "D"
	case MoveNormal:
		sb.WriteString(m.From.String())
		sb.WriteString(m.To.String())
	case MoveShoot:
		sb.WriteString(m.From.String())
		sb.WriteString(m.To.String())
		sb.WriteByte('S')
	case MoveDrop:
		sb.WriteString(m.To.String())
		sb.WriteRune(pieceToChar(m.Piece))
	}
	if m.Demise {
		sb.WriteByte('D')
	}
	return sb.String()
}

// ParseMove reads move notation. Whether a drop loads an archer or a normal move
// returns an arrow depends on the board and is settled by ApplyMove.
func ParseMove(s string) (Move, error) {
	if s == "D" {
		return DemiseMove, nil
	}
	m := Move{From: NoSquare, To: NoSquare}
	if len(s) > 1 && strings.HasSuffix(s, "D") {
		m.Demise = true
		s = s[:len(s)-1]
	}
	switch len(s) {
	case 3:
		to, err := ParseSquare(s[:2])
		if err != nil {
			return Move{}, err
		}
		pc, ok := pieceFromChar(rune(s[2]))
		if !ok {
			return Move{}, fmt.Errorf("%w: unknown piece %q", ErrInvalidMove, s[2])
		}
		m.Type = MoveDrop
		m.To = to
		m.Piece = pc
	case 4, 5:
		from, err := ParseSquare(s[:2])
		if err != nil {
			return Move{}, err
		}
		to, err := ParseSquare(s[2:4])
		if err != nil {
			return Move{}, err
		}
		m.Type = MoveNormal
		m.From, m.To = from, to
		if len(s) == 5 {
			if s[4] != 'S' {
				return Move{}, fmt.Errorf("%w: bad suffix %q", ErrInvalidMove, s[4])
			}
			m.Type = MoveShoot
		}
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	return m, nil
}
