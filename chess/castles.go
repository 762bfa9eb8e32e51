package chess

// UnmovedRooks is the set of rook squares that still carry a castling right.
// It accommodates Chess960: rooks may start on any back-rank file.
type UnmovedRooks struct {
	Squares Bitboard
}

// NoCastles is the empty set of castling rights.
var NoCastles = UnmovedRooks{}

// Without removes the right attached to sq, if any.
func (u UnmovedRooks) Without(sq Square) UnmovedRooks {
	u.Squares &^= SquareBB(sq)
	return u
}

// WithoutColor removes all rights of the given colour.
func (u UnmovedRooks) WithoutColor(c Color) UnmovedRooks {
	u.Squares &^= RankBB(c.BackRank())
	return u
}

// Has reports whether sq still carries a right.
func (u UnmovedRooks) Has(sq Square) bool {
	return u.Squares.Has(sq)
}

// IsEmpty reports whether no rights remain.
func (u UnmovedRooks) IsEmpty() bool {
	return u.Squares == 0
}

// OnRank returns the unmoved rooks on the colour's back rank.
func (u UnmovedRooks) OnRank(c Color) Bitboard {
	return u.Squares & RankBB(c.BackRank())
}

// Side classifies the right attached to sq. The outer bool is false when sq
// holds no right. When it does, the inner bool is false if sq is the only
// unmoved rook on its rank, leaving the side undetermined; otherwise the
// side is inferred from the file of the sibling rook.
func (u UnmovedRooks) Side(sq Square) (CastleSide, bool, bool) {
	if !u.Squares.Has(sq) {
		return 0, false, false
	}
	siblings := u.Squares & RankBB(sq.Rank()) &^ SquareBB(sq)
	if siblings == 0 {
		return 0, false, true
	}
	if sq.File() > siblings.First().File() {
		return KingSide, true, true
	}
	return QueenSide, true, true
}
