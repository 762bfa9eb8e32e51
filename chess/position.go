package chess

// Position is an immutable snapshot of a game: piece placement plus the
// side to move, castling rights, en-passant target and move clocks. Applying
// a move returns a new Position and never mutates the receiver.
type Position struct {
	Board    Board
	Turn     Color
	Castles  UnmovedRooks
	EpSquare Square // NoSquare unless the last move was a double pawn push
	HalfMove int    // half-moves since the last capture or pawn move
	FullMove int    // starts at 1, incremented after Black's move
	Variant  *Variant

	// Crazyhouse state: pieces in hand, and the squares holding promoted
	// pieces (which revert to pawns when captured).
	Pockets  Pockets
	Promoted Bitboard

	// ThreeCheck: checks delivered so far, by colour.
	Checks [2]int
}

// NewPosition returns the variant's starting position. A nil variant means
// Standard.
func NewPosition(v *Variant) Position {
	if v == nil {
		v = Standard
	}
	pos, err := PositionFromFEN(v.Initial, v)
	if err != nil {
		panic("chess: bad built-in starting position: " + err.Error())
	}
	return pos
}

// Us returns the squares occupied by the side to move.
func (p Position) Us() Bitboard {
	return p.Board.ByColor(p.Turn)
}

// Them returns the squares occupied by the opponent.
func (p Position) Them() Bitboard {
	return p.Board.ByColor(p.Turn.Opposite())
}

// OurKing returns the side to move's king square, or NoSquare.
func (p Position) OurKing() Square {
	return p.Board.KingOf(p.Turn)
}

// Checkers returns the enemy pieces attacking the side to move's king.
func (p Position) Checkers() Bitboard {
	king := p.OurKing()
	if king == NoSquare || !p.Variant.royalKing {
		return 0
	}
	return p.Board.Attackers(king, p.Turn.Opposite(), p.Board.Occupied())
}

// InCheck reports whether the side to move is in check. Variants without a
// royal king (Antichess) are never in check; Atomic applies its own rule.
func (p Position) InCheck() bool {
	if p.Variant.inCheck != nil {
		return p.Variant.inCheck(p)
	}
	return p.Checkers() != 0
}

// LegalMoves returns all legal moves for the side to move under the
// position's variant rules, ordered by (from, to, promotion).
func (p Position) LegalMoves() []Move {
	return p.Variant.ValidMoves(p)
}

// Drop resolves a Crazyhouse-style drop against the variant rules.
func (p Position) Drop(role Role, to Square) (Move, error) {
	return p.Variant.Drop(p, role, to)
}

// Apply plays a move and returns the resulting position. The move must come
// from LegalMoves, Drop, or one of the notation resolvers; Apply performs
// the state transition without re-checking legality.
func (p Position) Apply(m Move) Position {
	next := p
	next.EpSquare = NoSquare

	var captured Piece
	var capturedAt Square
	hasCapture := false

	switch m.Kind {
	case DropMove:
		next.Board, _ = next.Board.Place(Piece{Color: p.Turn, Role: m.Role}, m.To)
		next.Pockets[p.Turn][m.Role]--
	case CastleMove:
		// Remove both pieces first: in Chess960 the king's destination may
		// be the rook's source and vice versa.
		_, b, _ := next.Board.Take(m.From)
		_, b, _ = b.Take(m.RookFrom)
		b, _ = b.Place(Piece{Color: p.Turn, Role: King}, m.KingTo())
		b, _ = b.Place(Piece{Color: p.Turn, Role: Rook}, m.rookCastleTo())
		next.Board = b
		next.Castles = next.Castles.WithoutColor(p.Turn)
	case EnPassantMove:
		capturedAt = MakeSquare(m.To.File(), m.From.Rank())
		captured, next.Board, _ = next.Board.Take(capturedAt)
		hasCapture = true
		next.Board, _ = next.Board.MovePiece(m.From, m.To)
	default:
		if m.Capture != NoRole {
			capturedAt = m.To
			captured, next.Board, _ = next.Board.Take(m.To)
			hasCapture = true
		}
		if m.Promotion != NoRole {
			next.Board, _ = next.Board.Promote(m.From, m.To, m.Promotion)
		} else {
			next.Board, _ = next.Board.MovePiece(m.From, m.To)
		}
		if m.Role == King {
			next.Castles = next.Castles.WithoutColor(p.Turn)
		}
		next.Castles = next.Castles.Without(m.From).Without(m.To)
		// Only a push from the second rank leaves a capturable target;
		// Horde's back-rank double pushes do not.
		if m.Role == Pawn && m.Kind == NormalMove &&
			m.From.Rank() == p.Turn.SecondRank() &&
			abs(int(m.To)-int(m.From)) == 16 {
			next.EpSquare = Square((int(m.From) + int(m.To)) / 2)
		}
	}

	// Crazyhouse bookkeeping: captures feed the capturer's pocket (promoted
	// pieces revert to pawns), promotions and moves carry the promoted mark.
	if p.Variant.pocketed {
		if hasCapture {
			role := captured.Role
			if p.Promoted.Has(capturedAt) {
				role = Pawn
			}
			next.Pockets[p.Turn][role]++
			next.Promoted &^= SquareBB(capturedAt)
		}
		next.Promoted &^= SquareBB(m.From)
		switch {
		case m.Promotion != NoRole:
			next.Promoted |= SquareBB(m.To)
		case m.Kind == NormalMove && p.Promoted.Has(m.From):
			next.Promoted |= SquareBB(m.To)
		}
	}

	if p.Variant.finalize != nil {
		next.Board = p.Variant.finalize(next.Board, m, captured, hasCapture)
		// An explosion can remove rooks far from the move squares; rights
		// must never outlive the rook they are attached to.
		next.Castles.Squares &= next.Board.ByRole(Rook)
	}

	if m.Role == Pawn || m.Kind == DropMove || hasCapture {
		next.HalfMove = 0
	} else {
		next.HalfMove = p.HalfMove + 1
	}
	if p.Turn == Black {
		next.FullMove = p.FullMove + 1
	}
	next.Turn = p.Turn.Opposite()

	// ThreeCheck scoring: a move that leaves the new side to move in check
	// counts one check for the mover.
	if p.Variant.countChecks && next.InCheck() {
		next.Checks[p.Turn]++
	}

	return next
}
