package pgn

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates a PGN syntax violation. The parser fails fast on
	// the first one.
	ErrParse = errors.New("PGN syntax error")

	// ErrIncompletePGN indicates input that ended inside a tag, comment or
	// variation.
	ErrIncompletePGN = errors.New("incomplete PGN")
)

// ParseError pinpoints a syntax violation: the byte offset it occurred at
// and what the grammar expected there.
type ParseError struct {
	Offset   int
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("PGN syntax error at offset %d: expected %s, got %s", e.Offset, e.Expected, e.Got)
	}
	return fmt.Sprintf("PGN syntax error at offset %d: expected %s", e.Offset, e.Expected)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}
