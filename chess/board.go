package chess

// Board holds the piece placement as six role bitboards and two colour
// bitboards. It is a value type: mutating operations return a new Board and
// leave the receiver untouched.
type Board struct {
	byRole  [7]Bitboard // indexed by Role; index 0 unused
	byColor [2]Bitboard
}

// Occupied returns the set of all occupied squares.
func (b Board) Occupied() Bitboard {
	return b.byColor[White] | b.byColor[Black]
}

// ByColor returns the squares occupied by the given colour.
func (b Board) ByColor(c Color) Bitboard {
	return b.byColor[c]
}

// ByRole returns the squares occupied by the given role, either colour.
func (b Board) ByRole(r Role) Bitboard {
	return b.byRole[r]
}

// ByPiece returns the squares occupied by the given piece.
func (b Board) ByPiece(p Piece) Bitboard {
	return b.byRole[p.Role] & b.byColor[p.Color]
}

// Sliders returns the colour's bishops, rooks and queens.
func (b Board) Sliders(c Color) Bitboard {
	return (b.byRole[Bishop] | b.byRole[Rook] | b.byRole[Queen]) & b.byColor[c]
}

// KingOf returns the square of the colour's king, or NoSquare if the variant
// has none (Horde White, Antichess after king capture).
func (b Board) KingOf(c Color) Square {
	return (b.byRole[King] & b.byColor[c]).First()
}

// RoleAt returns the role occupying sq, or NoRole.
func (b Board) RoleAt(sq Square) Role {
	bb := SquareBB(sq)
	for r := Pawn; r <= King; r++ {
		if b.byRole[r]&bb != 0 {
			return r
		}
	}
	return NoRole
}

// PieceAt returns the piece on sq, if any.
func (b Board) PieceAt(sq Square) (Piece, bool) {
	role := b.RoleAt(sq)
	if role == NoRole {
		return Piece{}, false
	}
	color := White
	if b.byColor[Black].Has(sq) {
		color = Black
	}
	return Piece{Color: color, Role: role}, true
}

// Place puts a piece on an empty square. It reports false if the square is
// occupied.
func (b Board) Place(p Piece, sq Square) (Board, bool) {
	if b.Occupied().Has(sq) {
		return b, false
	}
	bb := SquareBB(sq)
	b.byRole[p.Role] |= bb
	b.byColor[p.Color] |= bb
	return b, true
}

// Take removes and returns the piece on sq. It reports false if the square
// is empty.
func (b Board) Take(sq Square) (Piece, Board, bool) {
	p, ok := b.PieceAt(sq)
	if !ok {
		return Piece{}, b, false
	}
	bb := SquareBB(sq)
	b.byRole[p.Role] &^= bb
	b.byColor[p.Color] &^= bb
	return p, b, true
}

// MovePiece moves the piece on from to to, capturing whatever is there. It
// reports false if from is empty or to holds a piece of the same colour.
func (b Board) MovePiece(from, to Square) (Board, bool) {
	p, ok := b.PieceAt(from)
	if !ok {
		return b, false
	}
	if b.byColor[p.Color].Has(to) {
		return b, false
	}
	if _, taken, ok2 := b.Take(to); ok2 {
		b = taken
	}
	bb := SquareBB(from) | SquareBB(to)
	b.byRole[p.Role] ^= bb
	b.byColor[p.Color] ^= bb
	return b, true
}

// Promote moves the pawn on from to to and replaces it with the given role.
func (b Board) Promote(from, to Square, role Role) (Board, bool) {
	p, ok := b.PieceAt(from)
	if !ok {
		return b, false
	}
	moved, ok := b.MovePiece(from, to)
	if !ok {
		return b, false
	}
	to2 := SquareBB(to)
	moved.byRole[p.Role] &^= to2
	moved.byRole[role] |= to2
	return moved, true
}

// Attackers returns the pieces of colour by that attack sq under the given
// occupancy. Passing an occupancy different from b.Occupied() lets callers
// probe discovered attacks after hypothetical removals.
func (b Board) Attackers(sq Square, by Color, occ Bitboard) Bitboard {
	them := b.byColor[by]
	// A pawn of colour by attacks sq iff a pawn of the opposite colour on sq
	// would attack the pawn's square.
	att := PawnAttacks(by.Opposite(), sq) & b.byRole[Pawn]
	att |= KnightAttacks(sq) & b.byRole[Knight]
	att |= KingAttacks(sq) & b.byRole[King]
	att |= BishopAttacks(sq, occ) & (b.byRole[Bishop] | b.byRole[Queen])
	att |= RookAttacks(sq, occ) & (b.byRole[Rook] | b.byRole[Queen])
	return att & them
}

// CheckOf reports whether the colour's king is attacked. Colours without a
// king are never in check.
func (b Board) CheckOf(c Color) bool {
	king := b.KingOf(c)
	if king == NoSquare {
		return false
	}
	return b.Attackers(king, c.Opposite(), b.Occupied()) != 0
}

// Valid checks the board invariants: role bitboards pairwise disjoint, the
// colour bitboards partition their union, and in strict mode exactly one
// king per colour and no pawns on the first or last rank.
func (b Board) Valid(strict bool) bool {
	var union Bitboard
	for r := Pawn; r <= King; r++ {
		if union&b.byRole[r] != 0 {
			return false
		}
		union |= b.byRole[r]
	}
	if b.byColor[White]&b.byColor[Black] != 0 {
		return false
	}
	if b.byColor[White]|b.byColor[Black] != union {
		return false
	}
	if strict {
		if (b.byRole[King]&b.byColor[White]).Count() != 1 ||
			(b.byRole[King]&b.byColor[Black]).Count() != 1 {
			return false
		}
		if b.byRole[Pawn]&(Rank1BB|Rank8BB) != 0 {
			return false
		}
	}
	return true
}
