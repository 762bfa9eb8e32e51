package chess

import (
	"fmt"
	"strings"
)

// knightPlacements enumerates the ten ways two knights fill five free
// squares, in Scharnagl numbering order.
var knightPlacements = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

// Chess960BackRank derives starting back-rank roles for position n in the
// Scharnagl numbering scheme, 0 through 959. Position 518 is the standard
// arrangement.
func Chess960BackRank(n int) ([8]Role, error) {
	if n < 0 || n > 959 {
		return [8]Role{}, fmt.Errorf("chess960 position %d out of range 0..959", n)
	}
	var rank [8]Role

	q, r := n/4, n%4
	rank[2*r+1] = Bishop // light squares: b, d, f, h
	q, r = q/4, q%4
	rank[2*r] = Bishop // dark squares: a, c, e, g

	q, r = q/6, q%6
	place := func(role Role, nth int) {
		for f := 0; f < 8; f++ {
			if rank[f] == NoRole {
				if nth == 0 {
					rank[f] = role
					return
				}
				nth--
			}
		}
	}
	place(Queen, r)

	kn := knightPlacements[q]
	place(Knight, kn[1])
	place(Knight, kn[0])

	place(Rook, 0)
	place(King, 0)
	place(Rook, 0)
	return rank, nil
}

// Chess960Start returns the full starting position for Scharnagl number n,
// with castling rights on both rooks.
func Chess960Start(n int) (Position, error) {
	rank, err := Chess960BackRank(n)
	if err != nil {
		return Position{}, err
	}
	var back, castling strings.Builder
	for f, role := range rank {
		back.WriteByte(role.Letter())
		if role == Rook {
			castling.WriteByte('A' + byte(f))
		}
	}
	fen := fmt.Sprintf("%s/pppppppp/8/8/8/8/PPPPPPPP/%s w %s%s - 0 1",
		strings.ToLower(back.String()), back.String(),
		castling.String(), strings.ToLower(castling.String()))
	return PositionFromFEN(fen, Chess960)
}
