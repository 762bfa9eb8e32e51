package chess

// Game tracks an evolving position along with the history needed for the
// repetition rule: every position hash seen since the start, and the moves
// played. Positions themselves stay immutable; the game is a fold over them.
type Game struct {
	Start     Position
	Positions []Position // Positions[0] == Start, one entry per ply after
	Moves     []Move

	hashCounts map[uint64]int
}

// NewGame starts a game from the variant's initial position (nil means
// Standard).
func NewGame(v *Variant) *Game {
	return GameFromPosition(NewPosition(v))
}

// GameFromPosition starts a game from an arbitrary position.
func GameFromPosition(p Position) *Game {
	g := &Game{
		Start:      p,
		Positions:  []Position{p},
		hashCounts: map[uint64]int{p.Hash(): 1},
	}
	return g
}

// Position returns the current position.
func (g *Game) Position() Position {
	return g.Positions[len(g.Positions)-1]
}

// Apply validates the move against the current position's legal moves and
// plays it. The position stack and repetition counts advance together.
func (g *Game) Apply(m Move) error {
	legal := false
	for _, lm := range g.Position().LegalMoves() {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return &MoveResolveError{Err: ErrIllegalMove, Notation: m.String()}
	}
	g.push(g.Position().Apply(m), m)
	return nil
}

// ApplySAN resolves a SAN string against the current position and plays it.
func (g *Game) ApplySAN(san string) (Move, error) {
	m, err := g.Position().ResolveSAN(san)
	if err != nil {
		return Move{}, err
	}
	g.push(g.Position().Apply(m), m)
	return m, nil
}

func (g *Game) push(p Position, m Move) {
	g.Positions = append(g.Positions, p)
	g.Moves = append(g.Moves, m)
	g.hashCounts[p.Hash()]++
}

// ThreefoldRepetition reports whether the current position has occurred at
// least three times.
func (g *Game) ThreefoldRepetition() bool {
	return g.hashCounts[g.Position().Hash()] >= 3
}

// Outcome evaluates the current position, adding the history-dependent
// threefold repetition rule to Position.Outcome.
func (g *Game) Outcome() Outcome {
	out := g.Position().Outcome()
	if out.Status == Ongoing && g.ThreefoldRepetition() {
		return Outcome{Status: ThreefoldRepetition}
	}
	return out
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// It is the standard correctness probe for a move generator.
func Perft(p Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(p.Apply(m), depth-1)
	}
	return nodes
}
