package chess

import "strings"

// MoveKind tags the variants of a Move.
type MoveKind uint8

const (
	NormalMove MoveKind = iota
	EnPassantMove
	CastleMove
	DropMove
)

// Move is a tagged move record. Normal moves (including promotions) use
// From, To, Role, Capture and Promotion. En-passant captures use From and
// To, with the captured pawn implied. Castling records the king and rook
// start and end squares, so arbitrary Chess960 arrangements round-trip.
// Drops (Crazyhouse) use Role and To only.
type Move struct {
	Kind      MoveKind
	From      Square
	To        Square
	Role      Role
	Capture   Role // NoRole when nothing is captured
	Promotion Role // NoRole unless a promotion
	Side      CastleSide
	RookFrom  Square
	RookTo    Square
}

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool {
	return m.Capture != NoRole || m.Kind == EnPassantMove
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoRole
}

// KingTo returns the king destination of a castling move: G-file for king
// side, C-file for queen side, on the king's back rank.
func (m Move) KingTo() Square {
	if m.Side == KingSide {
		return MakeSquare(FileG, m.From.Rank())
	}
	return MakeSquare(FileC, m.From.Rank())
}

// rookCastleTo returns the rook destination: F-file or D-file.
func (m Move) rookCastleTo() Square {
	if m.Side == KingSide {
		return MakeSquare(FileF, m.From.Rank())
	}
	return MakeSquare(FileD, m.From.Rank())
}

// UCI renders the move in UCI notation. Castling is written king-to-rook in
// Chess960 mode and king-to-destination otherwise; drops use the '@' form.
func (m Move) UCI(chess960 bool) string {
	switch m.Kind {
	case DropMove:
		return string([]byte{m.Role.Letter(), '@'}) + m.To.String()
	case CastleMove:
		if chess960 {
			return m.From.String() + m.RookFrom.String()
		}
		return m.From.String() + m.KingTo().String()
	default:
		s := m.From.String() + m.To.String()
		if m.Promotion != NoRole {
			s += strings.ToLower(string(m.Promotion.Letter()))
		}
		return s
	}
}

// String renders the move in standard UCI notation.
func (m Move) String() string {
	return m.UCI(false)
}

// ParseUCI finds the legal move matching a UCI move string in the position.
// Castling is recognised both as king-to-rook (Chess960 style, detectable
// because the destination holds a friendly rook) and as king-to-final-square.
func (p Position) ParseUCI(s string) (Move, error) {
	if len(s) == 4 && s[1] == '@' {
		role := RoleFromLetter(s[0])
		to, ok := SquareFromString(s[2:4])
		if role == NoRole || !ok {
			return Move{}, &MoveResolveError{Err: ErrNoMoveFound, Notation: s}
		}
		return p.Drop(role, to)
	}
	if len(s) < 4 || len(s) > 5 {
		return Move{}, &MoveResolveError{Err: ErrNoMoveFound, Notation: s}
	}
	from, ok1 := SquareFromString(s[0:2])
	to, ok2 := SquareFromString(s[2:4])
	if !ok1 || !ok2 {
		return Move{}, &MoveResolveError{Err: ErrNoMoveFound, Notation: s}
	}
	promotion := NoRole
	if len(s) == 5 {
		promotion = RoleFromLetter(s[4])
		if promotion == NoRole {
			return Move{}, &MoveResolveError{Err: ErrWrongPromotion, Notation: s}
		}
	}
	for _, m := range p.LegalMoves() {
		switch m.Kind {
		case CastleMove:
			if m.From == from && (m.RookFrom == to || m.KingTo() == to) && promotion == NoRole {
				return m, nil
			}
		case DropMove:
		default:
			if m.From == from && m.To == to && m.Promotion == promotion {
				return m, nil
			}
		}
	}
	return Move{}, &MoveResolveError{Err: ErrNoMoveFound, Notation: s}
}
