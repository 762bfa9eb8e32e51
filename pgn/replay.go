package pgn

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/chess"
)

// Step is one applied ply: the move and the position it produced.
type Step struct {
	Move chess.Move
	Pos  chess.Position
}

// Replay is the result of folding a game's mainline over the move engine.
// When a ply fails to resolve or apply, the steps before it are preserved,
// Err records the cause and FailedAt the zero-based ply index; a nil Err
// means the whole mainline applied.
type Replay struct {
	Start    chess.Position
	Steps    []Step
	Err      error
	FailedAt int
}

// Complete reports whether every mainline move applied.
func (r *Replay) Complete() bool {
	return r.Err == nil
}

// Final returns the last reached position.
func (r *Replay) Final() chess.Position {
	if len(r.Steps) == 0 {
		return r.Start
	}
	return r.Steps[len(r.Steps)-1].Pos
}

// StartingPosition derives the initial position from a game's tags: the
// Variant tag selects the rule set and a FEN tag overrides the default
// setup.
func StartingPosition(g *Game) (chess.Position, error) {
	variant := LookupVariant(g.Tag("Variant"))
	if variant == nil {
		return chess.Position{}, fmt.Errorf("unknown variant %q", g.Tag("Variant"))
	}
	if fen := g.Tag("FEN"); fen != "" {
		return chess.PositionFromFEN(fen, variant)
	}
	return chess.NewPosition(variant), nil
}

// LookupVariant maps PGN Variant tag spellings onto rule sets. The empty
// string means Standard; nil is returned for names that match nothing.
func LookupVariant(name string) *chess.Variant {
	key := strings.ToLower(strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, name))
	switch key {
	case "", "standard", "chess":
		return chess.Standard
	case "chess960", "fischerandom", "fischerrandom":
		return chess.Chess960
	case "kingofthehill":
		return chess.KingOfTheHill
	case "threecheck", "3check":
		return chess.ThreeCheck
	case "antichess", "giveaway", "suicide":
		return chess.Antichess
	case "atomic":
		return chess.Atomic
	case "horde":
		return chess.Horde
	case "racingkings":
		return chess.RacingKings
	case "crazyhouse":
		return chess.Crazyhouse
	}
	if v, ok := chess.VariantByKey(name); ok {
		return v
	}
	return nil
}

// ReplayGame resolves and applies the game's mainline left to right. The
// returned Replay always carries whatever prefix applied; err mirrors
// Replay.Err for callers that prefer the error return.
func ReplayGame(g *Game) (*Replay, error) {
	start, err := StartingPosition(g)
	if err != nil {
		return &Replay{Err: err}, err
	}
	return ReplayMoves(start, g.Moves)
}

// ReplayMoves folds a move sequence over an arbitrary starting position.
func ReplayMoves(start chess.Position, nodes []Node) (*Replay, error) {
	r := &Replay{Start: start}
	pos := start
	for i, node := range nodes {
		if node.Null {
			r.Err = fmt.Errorf("ply %d: null move %q cannot be applied", i+1, node.Text)
			r.FailedAt = i
			return r, r.Err
		}
		m, err := pos.Resolve(node.San)
		if err != nil {
			r.Err = fmt.Errorf("ply %d (%s): %w", i+1, node.Text, err)
			r.FailedAt = i
			return r, r.Err
		}
		pos = pos.Apply(m)
		r.Steps = append(r.Steps, Step{Move: m, Pos: pos})
	}
	return r, nil
}
