package chess

import "math/rand"

// Zobrist key tables: piece-on-square, castling rook squares, en-passant
// file and side to move, plus pocket counts so Crazyhouse repetitions with
// different hands hash apart. Built once from a fixed seed so hashes are
// reproducible across runs.
var zobristPiece [2][7][64]uint64
var zobristCastle [64]uint64
var zobristEnPassant [8]uint64
var zobristPocket [2][7][17]uint64
var zobristCheck [2][4]uint64
var zobristSide uint64

func init() {
	rnd := rand.New(rand.NewSource(0x5EED))
	for c := 0; c < 2; c++ {
		for role := 0; role < 7; role++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][role][sq] = rnd.Uint64()
			}
			for n := 0; n < 17; n++ {
				zobristPocket[c][role][n] = rnd.Uint64()
			}
		}
		for n := 0; n < 4; n++ {
			zobristCheck[c][n] = rnd.Uint64()
		}
	}
	for sq := 0; sq < 64; sq++ {
		zobristCastle[sq] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Hash returns the Zobrist hash of the position. Two positions hash equal
// exactly when they agree on placement, side to move, castling rights,
// en-passant file, pockets and check counters, which is the identity the
// threefold repetition rule wants.
func (p Position) Hash() uint64 {
	var key uint64
	for c := White; c <= Black; c++ {
		for role := Pawn; role <= King; role++ {
			for bb := p.Board.ByPiece(Piece{Color: c, Role: role}); bb != 0; {
				key ^= zobristPiece[c][role][bb.PopFirst()]
			}
		}
	}
	if p.Turn == Black {
		key ^= zobristSide
	}
	for bb := p.Castles.Squares; bb != 0; {
		key ^= zobristCastle[bb.PopFirst()]
	}
	if p.EpSquare != NoSquare {
		key ^= zobristEnPassant[p.EpSquare.File()]
	}
	if p.Variant != nil && p.Variant.pocketed {
		for c := White; c <= Black; c++ {
			for role := Pawn; role <= Queen; role++ {
				n := p.Pockets[c][role]
				if n > 16 {
					n = 16
				}
				key ^= zobristPocket[c][role][n]
			}
		}
	}
	if p.Variant != nil && p.Variant.countChecks {
		for c := White; c <= Black; c++ {
			n := p.Checks[c]
			if n > 3 {
				n = 3
			}
			key ^= zobristCheck[c][n]
		}
	}
	return key
}
