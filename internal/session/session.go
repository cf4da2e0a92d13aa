// Package session holds the ephemeral interaction state of a player: what is
// selected, which shot is awaiting confirmation and whether a round trip to the
// server is in flight. None of it is part of the game position.
package session

import (
	"errors"

	"alex/internal/alex"
)

var ErrBusy = errors.New("waiting for the server")

type Outcome int

const (
	Ignored     Outcome = iota
	Selected            // a piece or reserve kind is now selected
	Deselected          // the selection was dropped
	NeedConfirm         // the move could be a step or a shot, call Confirm
	Submit              // Result.Move must be sent to the server
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case NeedConfirm:
		return "confirm"
	case Submit:
		return "submit"
	}
	return "ignored"
}

type Result struct {
	Outcome Outcome
	Move    alex.Move
}

// Selection is either a board piece (From set) or a reserve kind (Reserve set).
type Selection struct {
	From    alex.Square
	Reserve alex.PieceType
	dests   alex.DestSet
	drops   []alex.Square
}

// Targets lists the squares the selection may go to.
func (s *Selection) Targets() []alex.Square {
	if s.Reserve != alex.PieceNone {
		return append([]alex.Square(nil), s.drops...)
	}
	return s.dests.Squares()
}

func (s *Selection) IsTarget(sq alex.Square) bool {
	if s.Reserve != alex.PieceNone {
		for _, d := range s.drops {
			if d == sq {
				return true
			}
		}
		return false
	}
	return s.dests.Contains(sq)
}

type Session struct {
	pos        *alex.Position
	sel        *Selection
	pending    *alex.Move
	withDemise bool
	busy       bool
}

func New(pos *alex.Position) *Session {
	if pos == nil {
		pos = alex.NewInitialPosition()
	}
	return &Session{pos: pos}
}

func (s *Session) Position() *alex.Position { return s.pos }

func (s *Session) Busy() bool { return s.busy }

// Selection returns the current selection, nil when nothing is selected.
func (s *Session) Selection() *Selection { return s.sel }

// Pending returns the move awaiting shot confirmation.
func (s *Session) Pending() (alex.Move, bool) {
	if s.pending == nil {
		return alex.Move{}, false
	}
	return *s.pending, true
}

// DemiseArmed reports whether the next submitted move carries a demise.
func (s *Session) DemiseArmed() bool { return s.withDemise }

// Load installs a freshly fetched position, drops all ephemeral state and ends
// the round trip.
func (s *Session) Load(pos *alex.Position) {
	s.pos = pos
	s.clear()
	s.withDemise = false
	s.busy = false
}

// Fail ends a round trip that did not produce a new position.
func (s *Session) Fail() {
	s.clear()
	s.busy = false
}

// Begin marks a round trip started outside of a move submission (reset, load).
func (s *Session) Begin() error {
	if s.busy {
		return ErrBusy
	}
	s.clear()
	s.busy = true
	return nil
}

func (s *Session) clear() {
	s.sel = nil
	s.pending = nil
}

// Click handles a click on sq.
func (s *Session) Click(sq alex.Square) (Result, error) {
	if s.busy {
		return Result{}, ErrBusy
	}
	if s.pending != nil || !sq.Valid() {
		return Result{}, nil
	}
	if s.sel != nil && s.sel.IsTarget(sq) {
		return s.play(sq), nil
	}
	if s.sel != nil && s.sel.Reserve == alex.PieceNone && s.sel.From == sq {
		s.sel = nil
		return Result{Outcome: Deselected}, nil
	}
	if s.selectSquare(sq) {
		return Result{Outcome: Selected}, nil
	}
	if s.sel != nil {
		s.sel = nil
		return Result{Outcome: Deselected}, nil
	}
	return Result{}, nil
}

// selectSquare selects the piece on sq when it belongs to the side to move and
// can go somewhere.
func (s *Session) selectSquare(sq alex.Square) bool {
	pt, side := s.pos.PieceAt(sq)
	if pt == alex.PieceNone || side != s.pos.SideToMove {
		return false
	}
	d := alex.Destinations(sq, &s.pos.Board)
	if d.Empty() {
		return false
	}
	s.sel = &Selection{From: sq, Reserve: alex.PieceNone, dests: d}
	return true
}

// PickReserve selects a held kind for dropping. Picking it again deselects.
func (s *Session) PickReserve(pt alex.PieceType) (Result, error) {
	if s.busy {
		return Result{}, ErrBusy
	}
	if s.pending != nil {
		return Result{}, nil
	}
	if s.sel != nil && s.sel.Reserve == pt {
		s.sel = nil
		return Result{Outcome: Deselected}, nil
	}
	side := s.pos.SideToMove
	targets := s.pos.DropTargets(side, pt)
	if len(targets) == 0 {
		return Result{}, nil
	}
	s.sel = &Selection{From: alex.NoSquare, Reserve: pt, drops: targets}
	return Result{Outcome: Selected}, nil
}

func (s *Session) play(to alex.Square) Result {
	sel := s.sel
	side := s.pos.SideToMove

	if sel.Reserve != alex.PieceNone {
		return s.submit(s.pos.DropMove(side, sel.Reserve, to))
	}

	d := &sel.dests
	m := alex.Move{Type: alex.MoveNormal, From: sel.From, To: to}
	switch {
	case d.Ambiguous(to):
		s.pending = &m
		return Result{Outcome: NeedConfirm, Move: m}
	case d.Ranged(to) && !d.Stepped(to):
		m.Type = alex.MoveShoot
	}
	return s.submit(m)
}

// Confirm resolves a pending ambiguous move: shoot or step.
func (s *Session) Confirm(shoot bool) (Result, error) {
	if s.busy {
		return Result{}, ErrBusy
	}
	if s.pending == nil {
		return Result{}, nil
	}
	m := *s.pending
	if shoot {
		m.Type = alex.MoveShoot
	}
	return s.submit(m), nil
}

// Cancel drops the selection and any pending confirmation.
func (s *Session) Cancel() Result {
	if s.busy || (s.sel == nil && s.pending == nil) {
		return Result{}
	}
	s.clear()
	return Result{Outcome: Deselected}
}

// Demise submits a bare demise when nothing is selected. With a selection it
// toggles whether the coming move carries the demise instead.
func (s *Session) Demise() (Result, error) {
	if s.busy {
		return Result{}, ErrBusy
	}
	if !s.pos.CanDemise(s.pos.SideToMove) {
		s.withDemise = false
		return Result{}, nil
	}
	if s.sel != nil || s.pending != nil {
		s.withDemise = !s.withDemise
		return Result{}, nil
	}
	return s.submit(alex.DemiseMove), nil
}

func (s *Session) submit(m alex.Move) Result {
	if s.withDemise && m.Type != alex.MoveDemise {
		m.Demise = true
	}
	s.clear()
	s.withDemise = false
	s.busy = true
	return Result{Outcome: Submit, Move: m}
}
