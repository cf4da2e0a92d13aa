package alex

import "fmt"

// Square is the linear index rank*8+file; NoSquare marks "nothing selected".
type Square int8

const NoSquare Square = -1

func MakeSquare(file, rank int) Square {
	if !onBoard(file, rank) {
		return NoSquare
	}
	return Square(indexOf(file, rank))
}

func (sq Square) Valid() bool { return sq >= 0 && int(sq) < NumSquares }

func (sq Square) File() int { return int(sq) % Files }
func (sq Square) Rank() int { return int(sq) / Files }

// Mirror reflects the square across the middle of the board along the rank axis.
func (sq Square) Mirror() Square {
	if !sq.Valid() {
		return NoSquare
	}
	return MakeSquare(sq.File(), Ranks-1-sq.Rank())
}

// String renders the algebraic label, e.g. "A1".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('A' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare reads an uppercase file letter followed by a rank digit.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: bad square %q", ErrInvalidMove, s)
	}
	f, err := readFile(s[0])
	if err != nil {
		return NoSquare, err
	}
	r, err := readRank(s[1])
	if err != nil {
		return NoSquare, err
	}
	return MakeSquare(f, r), nil
}

func readFile(c byte) (int, error) {
	if c < 'A' || c >= 'A'+Files {
		return 0, fmt.Errorf("%w: bad file %q", ErrInvalidMove, c)
	}
	return int(c - 'A'), nil
}

func readRank(c byte) (int, error) {
	if c < '1' || c >= '1'+Ranks {
		return 0, fmt.Errorf("%w: bad rank %q", ErrInvalidMove, c)
	}
	return int(c - '1'), nil
}
