package alex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidMFEN = errors.New("invalid MFEN")

// FormatError describes which MFEN field was rejected and why.
type FormatError struct {
	Field  string // "mfen", "rows", "turn", "reserves", "demise"
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid MFEN %s %q: %s", e.Field, e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrInvalidMFEN }

func formatErr(field, input, format string, args ...any) error {
	return &FormatError{Field: field, Input: input, Reason: fmt.Sprintf(format, args...)}
}

// Encode writes "rows turn reserves". Two demise counters are appended only
// when either of them is non-zero.
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := Ranks - 1; r >= 0; r-- {
		if r < Ranks-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < Files; f++ {
			pc := p.Board.Squares[indexOf(f, r)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if len(p.Hands[Black]) == 0 && len(p.Hands[White]) == 0 {
		sb.WriteByte('-')
	} else {
		for _, side := range []Side{Black, White} {
			for _, e := range p.Hands[side] {
				if e.Count <= 0 {
					continue
				}
				sb.WriteRune(Letter(side, e.Kind))
				if e.Count > 1 {
					sb.WriteString(strconv.Itoa(e.Count))
				}
			}
		}
	}

	if p.Demise != [2]int{} {
		fmt.Fprintf(&sb, " %d %d", p.Demise[Black], p.Demise[White])
	}
	return sb.String()
}

func (p *Position) String() string { return p.Encode() }

// DecodePosition parses an MFEN string. Nothing is returned on failure, so a
// caller holding an older Position keeps it intact.
func DecodePosition(mfen string) (*Position, error) {
	parts := strings.Split(mfen, " ")
	if len(parts) != 3 && len(parts) != 5 {
		return nil, formatErr("mfen", mfen, "expected 3 or 5 fields, got %d", len(parts))
	}

	b, err := decodeRows(parts[0])
	if err != nil {
		return nil, err
	}

	var stm Side
	switch parts[1] {
	case "b":
		stm = Black
	case "w":
		stm = White
	default:
		return nil, formatErr("turn", parts[1], "want b or w")
	}

	hands, err := decodeHands(parts[2])
	if err != nil {
		return nil, err
	}

	var demise [2]int
	if len(parts) == 5 {
		for i, s := range parts[3:] {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return nil, formatErr("demise", s, "want a non-negative integer")
			}
			demise[i] = n
		}
	}

	pos := &Position{
		Board:      b,
		SideToMove: stm,
		Hands:      hands,
		Demise:     demise,
	}
	pos.Hash = pos.CalculateHash()
	return pos, nil
}

func decodeRows(field string) (Board, error) {
	var b Board
	rows := strings.Split(field, "/")
	if len(rows) != Ranks {
		return b, formatErr("rows", field, "expected %d ranks, got %d", Ranks, len(rows))
	}
	for i, row := range rows {
		r := Ranks - 1 - i
		f := 0
		for _, ch := range row {
			if ch >= '0' && ch <= '9' {
				n := int(ch - '0')
				if n < 1 || n > Files {
					return b, formatErr("rows", row, "empty run %c out of range 1-8", ch)
				}
				f += n
				if f > Files {
					return b, formatErr("rows", row, "rank overflows %d files", Files)
				}
				continue
			}
			pc, ok := pieceFromChar(ch)
			if !ok {
				return b, formatErr("rows", row, "unknown piece %q", ch)
			}
			if f >= Files {
				return b, formatErr("rows", row, "rank overflows %d files", Files)
			}
			b.Squares[indexOf(f, r)] = pc
			f++
		}
		if f != Files {
			return b, formatErr("rows", row, "rank covers %d files, want %d", f, Files)
		}
	}
	return b, nil
}

func decodeHands(field string) ([2]Hand, error) {
	var hands [2]Hand
	if field == "-" {
		return hands, nil
	}
	if field == "" {
		return hands, formatErr("reserves", field, "empty field, use -")
	}
	rs := []rune(field)
	for i := 0; i < len(rs); {
		pc, ok := pieceFromChar(rs[i])
		if !ok {
			return hands, formatErr("reserves", field, "unknown piece %q", rs[i])
		}
		if !pc.Type().InReserve() {
			return hands, formatErr("reserves", field, "%s cannot be held in reserve", pc.Type())
		}
		i++
		j := i
		for j < len(rs) && rs[j] >= '0' && rs[j] <= '9' {
			j++
		}
		count := 1
		if j > i {
			n, err := strconv.Atoi(string(rs[i:j]))
			if err != nil || n < 1 {
				return hands, formatErr("reserves", field, "bad count %q", string(rs[i:j]))
			}
			count = n
		}
		i = j
		side := pc.Side()
		hands[side] = hands[side].Add(pc.Type(), count)
	}
	return hands, nil
}
