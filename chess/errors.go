package chess

import (
	"errors"
	"fmt"
)

// Sentinel errors for rule violations. Use errors.Is to test for them
// through the structured wrappers below.
var (
	// ErrNoMoveFound indicates a notation that matches no legal move.
	ErrNoMoveFound = errors.New("no matching legal move")

	// ErrAmbiguousMove indicates a notation that matches more than one
	// legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrIllegalDrop indicates a drop rejected by the variant rules.
	ErrIllegalDrop = errors.New("illegal drop")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrWrongPromotion indicates a promotion suffix on a non-promoting
	// move, or a promoting move without one.
	ErrWrongPromotion = errors.New("wrong promotion")

	// ErrIllegalMove indicates a move that is not legal in the position it
	// was applied to.
	ErrIllegalMove = errors.New("illegal move")
)

// MoveResolveError reports a failure to turn a SAN or UCI string into a
// unique legal move. Err is one of the sentinels above.
type MoveResolveError struct {
	Err      error
	Notation string
	Reason   string
}

func (e *MoveResolveError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%v: %q (%s)", e.Err, e.Notation, e.Reason)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Notation)
}

func (e *MoveResolveError) Unwrap() error {
	return e.Err
}

// FenError reports which FEN field was malformed and why. It unwraps to
// ErrInvalidFEN.
type FenError struct {
	Field  string
	Detail string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("invalid FEN: %s field: %s", e.Field, e.Detail)
}

func (e *FenError) Unwrap() error {
	return ErrInvalidFEN
}

// DropError reports a rejected Crazyhouse drop. It unwraps to
// ErrIllegalDrop.
type DropError struct {
	Role   Role
	To     Square
	Reason string
}

func (e *DropError) Error() string {
	return fmt.Sprintf("illegal drop %c@%s: %s", e.Role.Letter(), e.To, e.Reason)
}

func (e *DropError) Unwrap() error {
	return ErrIllegalDrop
}
