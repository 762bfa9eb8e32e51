package chess

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares packed into a 64-bit integer, bit n holding
// square n (A1=0 .. H8=63).
type Bitboard uint64

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB

	FileABB Bitboard = 0x0101010101010101
	FileHBB Bitboard = FileABB << 7

	Rank1BB Bitboard = 0x00000000000000FF
	Rank8BB Bitboard = Rank1BB << 56

	// The four centre squares, used by the KingOfTheHill win condition.
	hillBB Bitboard = 1<<SquareD4 | 1<<SquareE4 | 1<<SquareD5 | 1<<SquareE5

	lightSquaresBB Bitboard = 0x55AA55AA55AA55AA
	darkSquaresBB  Bitboard = ^lightSquaresBB
)

// SquareBB returns the bitboard holding only sq.
func SquareBB(sq Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// FileBB returns the bitboard of all squares on file f.
func FileBB(f File) Bitboard {
	return FileABB << uint(f)
}

// RankBB returns the bitboard of all squares on rank r.
func RankBB(r Rank) Bitboard {
	return Rank1BB << (8 * uint(r))
}

// Has reports whether sq is a member of the set.
func (b Bitboard) Has(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// Count returns the number of squares in the set.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// IsEmpty reports whether the set has no squares.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// MoreThanOne reports whether the set holds at least two squares.
func (b Bitboard) MoreThanOne() bool {
	return b&(b-1) != 0
}

// First returns the least significant square of the set, or NoSquare if
// empty.
func (b Bitboard) First() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopFirst removes and returns the least significant square. It is the
// iteration primitive:
//
//	for bb != 0 {
//		sq := bb.PopFirst()
//	}
func (b *Bitboard) PopFirst() Square {
	sq := b.First()
	*b &= *b - 1
	return sq
}

// Squares returns the members of the set in ascending order.
func (b Bitboard) Squares() []Square {
	sqs := make([]Square, 0, b.Count())
	for bb := b; bb != 0; {
		sqs = append(sqs, bb.PopFirst())
	}
	return sqs
}

// String renders the set rank 8 first, one rank per line, 'X' for members.
// Intended for debugging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(MakeSquare(f, r)) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
