package chess

import "slices"

// genOpts selects how much of the legality filter applies. Standard play
// uses the full filter; Antichess and Atomic generate by movement rules only
// and let the variant decide.
type genOpts struct {
	// legality applies pin, check-evasion and king-safety filtering.
	legality bool
	// castle generates castling moves.
	castle bool
	// kingCaptures permits the king to capture (false in Atomic, where a
	// capture would detonate the capturer).
	kingCaptures bool
	// promotions lists the roles a pawn may promote to.
	promotions []Role
}

func sortMoves(moves []Move) []Move {
	slices.SortFunc(moves, func(a, b Move) int {
		if a.From != b.From {
			return int(a.From) - int(b.From)
		}
		if a.To != b.To {
			return int(a.To) - int(b.To)
		}
		return int(a.Promotion) - int(b.Promotion)
	})
	return moves
}

// generate produces the side to move's moves under orthodox movement rules.
// With opts.legality it implements the pseudo-legal to legal pipeline:
// checker and pin detection, evasion masks, king-removed safety tests and
// en-passant self-check simulation.
func (p Position) generate(opts genOpts) []Move {
	moves := make([]Move, 0, 48)
	us := p.Us()
	them := p.Them()
	occ := p.Board.Occupied()
	opp := p.Turn.Opposite()
	king := p.OurKing()
	royal := opts.legality && p.Variant.royalKing && king != NoSquare

	var checkers Bitboard
	if royal {
		checkers = p.Board.Attackers(king, opp, occ)
	}

	// A piece is pinned when it is the sole occupant of the ray between the
	// king and an enemy slider; it may then only move along that ray.
	var pinRay [64]Bitboard
	if royal {
		snipers := (RookAttacks(king, 0)&(p.Board.ByRole(Rook)|p.Board.ByRole(Queen)) |
			BishopAttacks(king, 0)&(p.Board.ByRole(Bishop)|p.Board.ByRole(Queen))) & them
		for bb := snipers; bb != 0; {
			sniper := bb.PopFirst()
			blocking := Between(king, sniper) & occ
			if blocking != 0 && !blocking.MoreThanOne() && blocking&us != 0 {
				pinRay[blocking.First()] = Ray(king, sniper)
			}
		}
	}

	// Non-king moves must land inside target: anywhere when not in check,
	// on the checker or its blocking ray in single check, nowhere in double
	// check.
	target := ^us
	if checkers != 0 {
		if checkers.MoreThanOne() {
			target = 0
		} else {
			target = checkers | Between(king, checkers.First())
		}
	}

	allowed := func(from Square) Bitboard {
		t := target
		if pinRay[from] != 0 {
			t &= pinRay[from]
		}
		return t
	}

	// Pawns.
	dir := p.Turn.PawnDir()
	lastRank := p.Turn.LastRank()
	for bb := p.Board.ByPiece(Piece{Color: p.Turn, Role: Pawn}); bb != 0; {
		from := bb.PopFirst()
		mask := allowed(from)

		one := from + Square(dir)
		if !occ.Has(one) {
			if mask.Has(one) {
				moves = p.appendPawnMove(moves, from, one, NoRole, lastRank, opts.promotions)
			}
			doubleFrom := from.Rank() == p.Turn.SecondRank() ||
				(p.Variant.hordePawns && from.Rank() == p.Turn.BackRank())
			if doubleFrom {
				two := one + Square(dir)
				if !occ.Has(two) && mask.Has(two) {
					moves = append(moves, Move{From: from, To: two, Role: Pawn})
				}
			}
		}
		for cb := PawnAttacks(p.Turn, from) & them & mask; cb != 0; {
			to := cb.PopFirst()
			moves = p.appendPawnMove(moves, from, to, p.Board.RoleAt(to), lastRank, opts.promotions)
		}
		if p.EpSquare != NoSquare && PawnAttacks(p.Turn, from).Has(p.EpSquare) {
			if !opts.legality || p.epLegal(from) {
				moves = append(moves, Move{Kind: EnPassantMove, From: from, To: p.EpSquare, Role: Pawn})
			}
		}
	}

	// Knights and sliders.
	for bb := p.Board.ByPiece(Piece{Color: p.Turn, Role: Knight}); bb != 0; {
		from := bb.PopFirst()
		moves = p.appendMoves(moves, Knight, from, KnightAttacks(from)&allowed(from))
	}
	for bb := p.Board.ByPiece(Piece{Color: p.Turn, Role: Bishop}); bb != 0; {
		from := bb.PopFirst()
		moves = p.appendMoves(moves, Bishop, from, BishopAttacks(from, occ)&allowed(from))
	}
	for bb := p.Board.ByPiece(Piece{Color: p.Turn, Role: Rook}); bb != 0; {
		from := bb.PopFirst()
		moves = p.appendMoves(moves, Rook, from, RookAttacks(from, occ)&allowed(from))
	}
	for bb := p.Board.ByPiece(Piece{Color: p.Turn, Role: Queen}); bb != 0; {
		from := bb.PopFirst()
		moves = p.appendMoves(moves, Queen, from, QueenAttacks(from, occ)&allowed(from))
	}

	// Kings. The safety test recomputes attacks with the king removed from
	// the occupancy, so stepping along a checking ray is rejected.
	for bb := p.Board.ByPiece(Piece{Color: p.Turn, Role: King}); bb != 0; {
		from := bb.PopFirst()
		targets := KingAttacks(from) &^ us
		if !opts.kingCaptures {
			targets &^= them
		}
		if royal {
			occNoKing := occ &^ SquareBB(from)
			for tb := targets; tb != 0; {
				to := tb.PopFirst()
				if p.Board.Attackers(to, opp, occNoKing) != 0 {
					continue
				}
				moves = append(moves, Move{From: from, To: to, Role: King, Capture: p.Board.RoleAt(to)})
			}
		} else {
			moves = p.appendMoves(moves, King, from, targets)
		}
	}

	if opts.castle && king != NoSquare && checkers == 0 {
		moves = p.genCastles(moves, king)
	}

	return sortMoves(moves)
}

func (p Position) appendMoves(moves []Move, role Role, from Square, targets Bitboard) []Move {
	for bb := targets; bb != 0; {
		to := bb.PopFirst()
		moves = append(moves, Move{From: from, To: to, Role: role, Capture: p.Board.RoleAt(to)})
	}
	return moves
}

func (p Position) appendPawnMove(moves []Move, from, to Square, capture Role, lastRank Rank, promotions []Role) []Move {
	if to.Rank() == lastRank {
		for _, promo := range promotions {
			moves = append(moves, Move{From: from, To: to, Role: Pawn, Capture: capture, Promotion: promo})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to, Role: Pawn, Capture: capture})
}

// epLegal simulates the en-passant capture, removing both pawns, and checks
// the king is not left attacked. Covers both the classic horizontal
// discovered check and capture while in check.
func (p Position) epLegal(from Square) bool {
	king := p.OurKing()
	if !p.Variant.royalKing || king == NoSquare {
		return true
	}
	capSq := MakeSquare(p.EpSquare.File(), from.Rank())
	b := p.Board
	_, b, _ = b.Take(capSq)
	b, _ = b.MovePiece(from, p.EpSquare)
	return b.Attackers(king, p.Turn.Opposite(), b.Occupied()) == 0
}

// genCastles generates castling for each unmoved rook on the side to move's
// back rank, Chess960-style: the king and rook may start anywhere on the
// rank. The paths of both pieces must be clear and every square the king
// crosses, start and end included, must be safe.
func (p Position) genCastles(moves []Move, king Square) []Move {
	occ := p.Board.Occupied()
	opp := p.Turn.Opposite()
	for bb := p.Castles.OnRank(p.Turn); bb != 0; {
		rook := bb.PopFirst()
		if rook.Rank() != king.Rank() || !p.Board.ByPiece(Piece{Color: p.Turn, Role: Rook}).Has(rook) {
			continue
		}
		side := QueenSide
		if rook.File() > king.File() {
			side = KingSide
		}
		m := Move{Kind: CastleMove, From: king, To: rook, Role: King, Side: side, RookFrom: rook}
		kingTo := m.KingTo()
		rookTo := m.rookCastleTo()
		m.To = kingTo
		m.RookTo = rookTo

		path := Between(king, rook) | Between(king, kingTo) | SquareBB(kingTo) |
			Between(rook, rookTo) | SquareBB(rookTo)
		if path&occ&^(SquareBB(king)|SquareBB(rook)) != 0 {
			continue
		}

		occNoKing := occ &^ SquareBB(king)
		walk := Between(king, kingTo) | SquareBB(king) | SquareBB(kingTo)
		safe := true
		for wb := walk; wb != 0; {
			sq := wb.PopFirst()
			if p.Board.Attackers(sq, opp, occNoKing) != 0 {
				safe = false
				break
			}
		}
		if safe {
			moves = append(moves, m)
		}
	}
	return moves
}
