package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"alex/internal/alex"
	"alex/internal/session"
)

var (
	blackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	whiteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	crownStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	selStyle    = lipgloss.NewStyle().Reverse(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// RenderBoard draws rank 8 at the top, files A..H left to right.
// Uppercase letters are Black, lowercase White.
func RenderBoard(pos *alex.Position, sel *session.Selection, cursor alex.Square) string {
	crowns := [2]alex.Square{pos.CrownSquare(alex.Black), pos.CrownSquare(alex.White)}

	var b strings.Builder
	b.WriteString("   ")
	for f := 0; f < alex.Files; f++ {
		fmt.Fprintf(&b, " %c ", 'A'+f)
	}
	b.WriteString("\n")

	for r := alex.Ranks - 1; r >= 0; r-- {
		fmt.Fprintf(&b, " %d ", r+1)
		for f := 0; f < alex.Files; f++ {
			sq := alex.MakeSquare(f, r)
			b.WriteString(cell(pos, sq, sel, cursor, crowns))
		}
		fmt.Fprintf(&b, " %d\n", r+1)
	}

	b.WriteString("   ")
	for f := 0; f < alex.Files; f++ {
		fmt.Fprintf(&b, " %c ", 'A'+f)
	}
	return b.String()
}

// cell is three columns wide: brackets for the cursor, otherwise spaces.
func cell(pos *alex.Position, sq alex.Square, sel *session.Selection, cursor alex.Square, crowns [2]alex.Square) string {
	pt, side := pos.PieceAt(sq)
	target := sel != nil && sel.IsTarget(sq)

	var glyph string
	switch {
	case pt == alex.PieceNone && target:
		glyph = targetStyle.Render("*")
	case pt == alex.PieceNone:
		glyph = dimStyle.Render(".")
	default:
		st := blackStyle
		if side == alex.White {
			st = whiteStyle
		}
		if sq == crowns[side] {
			st = st.Inherit(crownStyle)
		}
		if target {
			st = targetStyle
		}
		if sel != nil && sel.Reserve == alex.PieceNone && sel.From == sq {
			st = st.Inherit(selStyle)
		}
		glyph = st.Render(string(alex.Letter(side, pt)))
	}

	if sq == cursor {
		return "[" + glyph + "]"
	}
	return " " + glyph + " "
}

// RenderReserves lists both reserves, White first to match the board's top.
func RenderReserves(pos *alex.Position, sel *session.Selection) string {
	line := func(side alex.Side) string {
		hand := pos.Hand(side)
		if len(hand) == 0 {
			return fmt.Sprintf("%s: -", side)
		}
		parts := make([]string, 0, len(hand))
		for _, e := range hand {
			s := string(alex.Letter(side, e.Kind))
			if e.Count > 1 {
				s += fmt.Sprint(e.Count)
			}
			if side == pos.SideToMove && sel != nil && sel.Reserve == e.Kind {
				s = selStyle.Render(s)
			}
			parts = append(parts, s)
		}
		return fmt.Sprintf("%s: %s", side, strings.Join(parts, " "))
	}
	return line(alex.White) + "\n" + line(alex.Black)
}
