package chess

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestBitboardBasics(t *testing.T) {
	var b Bitboard
	testutil.True(t, b.IsEmpty(), "zero bitboard should be empty")
	testutil.Equal(t, b.First(), NoSquare)

	b = SquareBB(SquareE4) | SquareBB(SquareA1) | SquareBB(SquareH8)
	testutil.Equal(t, b.Count(), 3)
	testutil.True(t, b.MoreThanOne(), "three squares should be more than one")
	testutil.Equal(t, b.First(), SquareA1)

	testutil.Equal(t, b.Squares(), []Square{SquareA1, SquareE4, SquareH8})

	one := SquareBB(SquareD5)
	testutil.False(t, one.MoreThanOne(), "single square is not more than one")
}

func TestPopFirst(t *testing.T) {
	b := RankBB(Rank2)
	var got []Square
	for b != 0 {
		got = append(got, b.PopFirst())
	}
	want := []Square{8, 9, 10, 11, 12, 13, 14, 15}
	testutil.Equal(t, got, want)
}

func TestFileRankMasks(t *testing.T) {
	testutil.Equal(t, FileBB(FileA).Count(), 8)
	testutil.Equal(t, RankBB(Rank8).Count(), 8)
	testutil.True(t, FileBB(FileE).Has(SquareE4), "file E should contain e4")
	testutil.True(t, RankBB(Rank4).Has(SquareE4), "rank 4 should contain e4")
	testutil.False(t, FileBB(FileE).Has(SquareD5), "file E should not contain d5")
}

func TestBetween(t *testing.T) {
	a1, _ := SquareFromString("a1")
	h8, _ := SquareFromString("h8")
	between := Between(a1, h8)
	testutil.Equal(t, between.Count(), 6)
	b2, _ := SquareFromString("b2")
	g7, _ := SquareFromString("g7")
	testutil.True(t, between.Has(b2) && between.Has(g7), "a1-h8 ray should pass b2 and g7")
	testutil.False(t, between.Has(a1) || between.Has(h8), "between is exclusive of endpoints")

	// No shared line means an empty result.
	b3, _ := SquareFromString("b3")
	testutil.True(t, Between(a1, b3).IsEmpty(), "a1 and b3 share no line")

	// Adjacent squares have nothing in between.
	a2, _ := SquareFromString("a2")
	testutil.True(t, Between(a1, a2).IsEmpty(), "adjacent squares have an empty between")
}

func TestRayAndAligned(t *testing.T) {
	a1, _ := SquareFromString("a1")
	c3, _ := SquareFromString("c3")
	h8, _ := SquareFromString("h8")
	b2, _ := SquareFromString("b2")
	e5, _ := SquareFromString("e5")
	b3, _ := SquareFromString("b3")

	ray := Ray(a1, c3)
	testutil.Equal(t, ray.Count(), 8) // the whole long diagonal
	testutil.True(t, ray.Has(h8), "ray extends past its defining squares")
	testutil.True(t, Aligned(a1, b2, h8), "long diagonal squares are aligned")
	testutil.True(t, Aligned(a1, h8, e5), "e5 sits on the a1-h8 diagonal")
	testutil.False(t, Aligned(a1, b2, b3), "b3 is off the a1-b2 diagonal")
	testutil.True(t, Ray(a1, b3).IsEmpty(), "no line through a1 and b3")
}

func TestLeaperAttacks(t *testing.T) {
	e4, _ := SquareFromString("e4")
	testutil.Equal(t, KnightAttacks(e4).Count(), 8)
	a1, _ := SquareFromString("a1")
	testutil.Equal(t, KnightAttacks(a1).Count(), 2)
	testutil.Equal(t, KingAttacks(e4).Count(), 8)
	testutil.Equal(t, KingAttacks(a1).Count(), 3)

	e2, _ := SquareFromString("e2")
	d3, _ := SquareFromString("d3")
	f3, _ := SquareFromString("f3")
	testutil.Equal(t, PawnAttacks(White, e2), SquareBB(d3)|SquareBB(f3))
	a4, _ := SquareFromString("a4")
	b3, _ := SquareFromString("b3")
	testutil.Equal(t, PawnAttacks(Black, a4), SquareBB(b3))
}

func TestSliderAttacks(t *testing.T) {
	e4, _ := SquareFromString("e4")

	// Empty board: rook sees its full rank and file.
	testutil.Equal(t, RookAttacks(e4, 0).Count(), 14)
	testutil.Equal(t, BishopAttacks(e4, 0).Count(), 13)
	testutil.Equal(t, QueenAttacks(e4, 0), RookAttacks(e4, 0)|BishopAttacks(e4, 0))

	// A blocker stops the ray but is itself attacked.
	e6, _ := SquareFromString("e6")
	e7, _ := SquareFromString("e7")
	att := RookAttacks(e4, SquareBB(e6))
	testutil.True(t, att.Has(e6), "blocker square should be attacked")
	testutil.False(t, att.Has(e7), "ray should stop at the blocker")
}
