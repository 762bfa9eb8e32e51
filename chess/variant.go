package chess

import (
	"strings"

	"golang.org/x/exp/maps"
	"slices"
)

// Status classifies how a game stands or ended.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
	VariantEnd
	VariantDraw
)

var statusNames = [...]string{
	"ongoing", "checkmate", "stalemate", "insufficient material",
	"fifty-move rule", "threefold repetition", "variant end", "variant draw",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Outcome is a game result: a status and, when decisive, a winner.
type Outcome struct {
	Status    Status
	Winner    Color
	HasWinner bool
}

// Variant is a rule set. Variants share the orthodox move engine and differ
// by the override functions and flags collected here; dispatch is
// table-driven through the registry rather than through embedding.
type Variant struct {
	Key     string
	Name    string
	Initial string // starting position FEN

	royalKing   bool // kings can be checked and must not be left en prise
	pocketed    bool // captures accumulate in the capturer's pocket
	countChecks bool // ThreeCheck scoring
	noCastle    bool
	hordePawns  bool // pawns on the back rank may double-push
	fiftyMove   bool // the 50-move rule applies
	promotions  []Role

	validMoves func(Position) []Move
	drop       func(Position, Role, Square) (Move, error)
	inCheck    func(Position) bool // overrides the orthodox check test

	checkmate    func(Position) bool
	stalemate    func(Position) bool
	insufficient func(Position) bool
	specialEnd   func(Position) (Outcome, bool)

	finalize   func(b Board, m Move, captured Piece, hasCapture bool) Board
	validBoard func(b Board, strict bool) bool
}

// ValidMoves returns the legal moves of the position under this variant.
func (v *Variant) ValidMoves(p Position) []Move {
	return v.validMoves(p)
}

// Drop validates a piece drop, returning the resulting Move or a DropError.
func (v *Variant) Drop(p Position, role Role, to Square) (Move, error) {
	if v.drop == nil {
		return Move{}, &DropError{Role: role, To: to, Reason: "variant has no drops"}
	}
	return v.drop(p, role, to)
}

// Checkmate reports whether the side to move is checkmated.
func (v *Variant) Checkmate(p Position) bool { return v.checkmate(p) }

// Stalemate reports whether the side to move is stalemated.
func (v *Variant) Stalemate(p Position) bool { return v.stalemate(p) }

// InsufficientMaterial reports a dead draw by material.
func (v *Variant) InsufficientMaterial(p Position) bool { return v.insufficient(p) }

// SpecialEnd reports a variant-specific game end: hill reached, third
// check delivered, king exploded, horde wiped out, race decided. Draws
// surface as an Outcome with VariantDraw status.
func (v *Variant) SpecialEnd(p Position) (Outcome, bool) {
	if v.specialEnd == nil {
		return Outcome{}, false
	}
	return v.specialEnd(p)
}

// FinalizeBoard applies post-move board effects (Atomic explosions).
func (v *Variant) FinalizeBoard(b Board, m Move, captured Piece, hasCapture bool) Board {
	if v.finalize == nil {
		return b
	}
	return v.finalize(b, m, captured, hasCapture)
}

// ValidBoard checks board invariants under this variant's setup rules.
func (v *Variant) ValidBoard(b Board, strict bool) bool {
	if v.validBoard != nil {
		return v.validBoard(b, strict)
	}
	return b.Valid(strict)
}

// Outcome evaluates the position: variant-specific ends first, then
// checkmate/stalemate, then material draws and the 50-move rule. Threefold
// repetition needs history and is tracked by Game.
func (p Position) Outcome() Outcome {
	v := p.Variant
	if v.specialEnd != nil {
		if out, ok := v.specialEnd(p); ok {
			return out
		}
	}
	if len(p.LegalMoves()) == 0 {
		return v.noMovesOutcome(p)
	}
	if v.insufficient(p) {
		return Outcome{Status: InsufficientMaterial}
	}
	if v.fiftyMove && p.HalfMove >= 100 {
		return Outcome{Status: FiftyMoveRule}
	}
	return Outcome{Status: Ongoing}
}

// noMovesOutcome decides the game when the side to move has no legal moves.
func (v *Variant) noMovesOutcome(p Position) Outcome {
	if v == Antichess {
		// Being stalemated (or stripped of pieces) wins.
		return Outcome{Status: VariantEnd, Winner: p.Turn, HasWinner: true}
	}
	if p.InCheck() {
		return Outcome{Status: Checkmate, Winner: p.Turn.Opposite(), HasWinner: true}
	}
	return Outcome{Status: Stalemate}
}

func defaultCheckmate(p Position) bool {
	return p.InCheck() && len(p.LegalMoves()) == 0
}

func defaultStalemate(p Position) bool {
	return !p.InCheck() && len(p.LegalMoves()) == 0
}

func never(Position) bool { return false }

// standardInsufficient implements the usual dead-position test: lone kings,
// king and one minor, or same-coloured bishops only.
func standardInsufficient(p Position) bool {
	b := p.Board
	if b.ByRole(Pawn)|b.ByRole(Rook)|b.ByRole(Queen) != 0 {
		return false
	}
	knights := b.ByRole(Knight)
	bishops := b.ByRole(Bishop)
	if (knights | bishops).Count() <= 1 {
		return true
	}
	if knights == 0 {
		if bishops&lightSquaresBB == 0 || bishops&darkSquaresBB == 0 {
			return true
		}
	}
	return false
}

const standardInitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var standardPromotions = []Role{Knight, Bishop, Rook, Queen}

func standardValidMoves(p Position) []Move {
	return p.generate(genOpts{
		legality:     true,
		castle:       !p.Variant.noCastle,
		kingCaptures: true,
		promotions:   p.Variant.promotions,
	})
}

// Standard is orthodox chess.
var Standard = &Variant{
	Key:          "standard",
	Name:         "Standard",
	Initial:      standardInitialFEN,
	royalKing:    true,
	fiftyMove:    true,
	promotions:   standardPromotions,
	validMoves:   standardValidMoves,
	checkmate:    defaultCheckmate,
	stalemate:    defaultStalemate,
	insufficient: standardInsufficient,
}

// Chess960 plays by Standard's rules; the castling engine already handles
// arbitrary king and rook files. Initial holds the standard arrangement
// (Scharnagl number 518); Chess960Start builds the other arrangements.
var Chess960 = &Variant{
	Key:          "chess960",
	Name:         "Chess960",
	Initial:      standardInitialFEN,
	royalKing:    true,
	fiftyMove:    true,
	promotions:   standardPromotions,
	validMoves:   standardValidMoves,
	checkmate:    defaultCheckmate,
	stalemate:    defaultStalemate,
	insufficient: standardInsufficient,
}

// KingOfTheHill adds a win by walking the king to one of the four centre
// squares.
var KingOfTheHill = &Variant{
	Key:          "kingOfTheHill",
	Name:         "King of the Hill",
	Initial:      standardInitialFEN,
	royalKing:    true,
	fiftyMove:    true,
	promotions:   standardPromotions,
	validMoves:   standardValidMoves,
	checkmate:    defaultCheckmate,
	stalemate:    defaultStalemate,
	// A bare king can still walk to the hill, so material never runs out.
	insufficient: never,
	specialEnd: func(p Position) (Outcome, bool) {
		for _, c := range []Color{White, Black} {
			king := p.Board.KingOf(c)
			if king != NoSquare && hillBB.Has(king) {
				return Outcome{Status: VariantEnd, Winner: c, HasWinner: true}, true
			}
		}
		return Outcome{}, false
	},
}

// ThreeCheck: delivering a third check wins.
var ThreeCheck = &Variant{
	Key:          "threeCheck",
	Name:         "Three-check",
	Initial:      standardInitialFEN,
	royalKing:    true,
	countChecks:  true,
	fiftyMove:    true,
	promotions:   standardPromotions,
	validMoves:   standardValidMoves,
	checkmate:    defaultCheckmate,
	stalemate:    defaultStalemate,
	insufficient: standardInsufficient,
	specialEnd: func(p Position) (Outcome, bool) {
		for _, c := range []Color{White, Black} {
			if p.Checks[c] >= 3 {
				return Outcome{Status: VariantEnd, Winner: c, HasWinner: true}, true
			}
		}
		return Outcome{}, false
	},
}

// Antichess: captures are mandatory, the king has no royal status, losing
// all pieces or being stalemated wins, and pawns may promote to king.
var Antichess = &Variant{
	Key:        "antichess",
	Name:       "Antichess",
	Initial:    "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
	noCastle:   true,
	fiftyMove:  true,
	promotions: []Role{Knight, Bishop, Rook, Queen, King},
	validMoves: func(p Position) []Move {
		moves := p.generate(genOpts{
			kingCaptures: true,
			promotions:   p.Variant.promotions,
		})
		captures := moves[:0:0]
		for _, m := range moves {
			if m.IsCapture() {
				captures = append(captures, m)
			}
		}
		if len(captures) > 0 {
			return captures
		}
		return moves
	},
	checkmate:    never,
	stalemate:    defaultStalemate,
	insufficient: never,
	specialEnd: func(p Position) (Outcome, bool) {
		if p.Us() == 0 {
			return Outcome{Status: VariantEnd, Winner: p.Turn, HasWinner: true}, true
		}
		return Outcome{}, false
	},
	validBoard: func(b Board, strict bool) bool {
		// Kings are ordinary pieces: any number, including none.
		return b.Valid(false) && (!strict || b.ByRole(Pawn)&(Rank1BB|Rank8BB) == 0)
	},
}

// Horde: White fields a pawn army without a king and loses when it is wiped
// out; Black plays orthodox chess.
var Horde = &Variant{
	Key:        "horde",
	Name:       "Horde",
	Initial:    "rnbqkbnr/pppppppp/8/1PP2PP1/PPPPPPPP/PPPPPPPP/PPPPPPPP/PPPPPPPP w kq - 0 1",
	royalKing:  true,
	hordePawns: true,
	fiftyMove:  true,
	promotions: standardPromotions,
	validMoves: standardValidMoves,
	checkmate:  defaultCheckmate,
	stalemate:  defaultStalemate,
	// Material can always shrink to nothing; the win condition handles it.
	insufficient: never,
	specialEnd: func(p Position) (Outcome, bool) {
		if p.Board.ByColor(White) == 0 {
			return Outcome{Status: VariantEnd, Winner: Black, HasWinner: true}, true
		}
		return Outcome{}, false
	},
	validBoard: func(b Board, strict bool) bool {
		if !b.Valid(false) {
			return false
		}
		if strict && (b.ByRole(King)&b.ByColor(Black)).Count() != 1 {
			return false
		}
		// White pawns legitimately occupy the first rank.
		return !strict || b.ByRole(Pawn)&b.ByColor(Black)&(Rank1BB|Rank8BB) == 0
	},
}

// RacingKings: no checks are ever allowed; the first king to reach the
// eighth rank wins, with Black given one move to equalize for a draw.
var RacingKings = &Variant{
	Key:        "racingKings",
	Name:       "Racing Kings",
	Initial:    "8/8/8/8/8/8/krbnNBRK/qrbnNBRQ w - - 0 1",
	royalKing:  true,
	noCastle:   true,
	fiftyMove:  true,
	promotions: standardPromotions,
	validMoves: func(p Position) []Move {
		moves := standardValidMoves(p)
		quiet := moves[:0:0]
		for _, m := range moves {
			if after := p.Apply(m); !after.InCheck() {
				quiet = append(quiet, m)
			}
		}
		return quiet
	},
	checkmate:    never,
	stalemate:    defaultStalemate,
	insufficient: never,
	specialEnd:   racingKingsEnd,
	validBoard: func(b Board, strict bool) bool {
		return b.Valid(strict) && (!strict || b.ByRole(Pawn) == 0)
	},
}

func racingKingsEnd(p Position) (Outcome, bool) {
	whiteIn := p.Board.KingOf(White) != NoSquare && p.Board.KingOf(White).Rank() == Rank8
	blackIn := p.Board.KingOf(Black) != NoSquare && p.Board.KingOf(Black).Rank() == Rank8
	switch {
	case whiteIn && blackIn:
		return Outcome{Status: VariantDraw}, true
	case blackIn:
		return Outcome{Status: VariantEnd, Winner: Black, HasWinner: true}, true
	case whiteIn:
		// Black moves second and gets one chance to equalize.
		if p.Turn == Black && blackCanReachRank8(p) {
			return Outcome{}, false
		}
		return Outcome{Status: VariantEnd, Winner: White, HasWinner: true}, true
	}
	return Outcome{}, false
}

func blackCanReachRank8(p Position) bool {
	for _, m := range p.LegalMoves() {
		if m.Role == King && m.To.Rank() == Rank8 {
			return true
		}
	}
	return false
}

// variants is the registry backing lookup by key.
var variants = map[string]*Variant{}

func register(vs ...*Variant) {
	for _, v := range vs {
		variants[v.Key] = v
	}
}

func init() {
	register(Standard, Chess960, KingOfTheHill, ThreeCheck, Antichess,
		Atomic, Horde, RacingKings, Crazyhouse)
}

// VariantByKey looks a variant up by its registry key ("standard",
// "crazyhouse", ...).
func VariantByKey(key string) (*Variant, bool) {
	v, ok := variants[key]
	return v, ok
}

// Variants returns the registered rule sets sorted by key.
func Variants() []*Variant {
	vs := maps.Values(variants)
	slices.SortFunc(vs, func(a, b *Variant) int { return strings.Compare(a.Key, b.Key) })
	return vs
}
