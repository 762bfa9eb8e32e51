package chess

// Atomic: every capture detonates, removing the capturing piece and all
// non-pawn pieces on the squares adjacent to the capture square. Exploding
// the enemy king wins immediately and overrides check; exploding your own
// king is illegal, which also means kings never capture.
var Atomic = &Variant{
	Key:        "atomic",
	Name:       "Atomic",
	Initial:    standardInitialFEN,
	royalKing:  true,
	fiftyMove:  true,
	promotions: standardPromotions,
	validMoves: atomicValidMoves,
	inCheck: func(p Position) bool {
		return p.Board.KingOf(p.Turn) != NoSquare && !atomicKingSafe(p.Board, p.Turn)
	},
	checkmate: defaultCheckmate,
	stalemate: defaultStalemate,
	insufficient: func(p Position) bool {
		b := p.Board
		if b.ByRole(Pawn)|b.ByRole(Rook)|b.ByRole(Queen) != 0 {
			return false
		}
		// A lone minor has nothing to detonate next to the enemy king.
		return (b.ByRole(Knight) | b.ByRole(Bishop)).Count() <= 1
	},
	specialEnd: func(p Position) (Outcome, bool) {
		for _, c := range []Color{White, Black} {
			if p.Board.KingOf(c) == NoSquare {
				return Outcome{Status: VariantEnd, Winner: c.Opposite(), HasWinner: true}, true
			}
		}
		return Outcome{}, false
	},
	finalize: atomicExplode,
}

// atomicExplode removes the capturing piece and every non-pawn piece on the
// eight squares around the capture square.
func atomicExplode(b Board, m Move, captured Piece, hasCapture bool) Board {
	if !hasCapture {
		return b
	}
	if _, taken, ok := b.Take(m.To); ok {
		b = taken
	}
	blast := KingAttacks(m.To) & b.Occupied() &^ b.ByRole(Pawn)
	for bb := blast; bb != 0; {
		_, b, _ = b.Take(bb.PopFirst())
	}
	return b
}

// atomicKingSafe reports whether the colour's king survives and stands free
// of effective check. Adjacent kings shield each other: neither side can
// capture without detonating its own king, so no check applies.
func atomicKingSafe(b Board, c Color) bool {
	king := b.KingOf(c)
	if king == NoSquare {
		return false
	}
	enemyKing := b.KingOf(c.Opposite())
	if enemyKing != NoSquare && KingAttacks(king).Has(enemyKing) {
		return true
	}
	return b.Attackers(king, c.Opposite(), b.Occupied()) == 0
}

// atomicValidMoves generates by movement rules and legalises by simulation:
// a move stands if the mover's king survives the explosion and is then
// either safe or faces no king at all.
func atomicValidMoves(p Position) []Move {
	candidates := p.generate(genOpts{
		castle:     true,
		promotions: p.Variant.promotions,
	})
	moves := candidates[:0:0]
	for _, m := range candidates {
		after := p.Apply(m)
		if after.Board.KingOf(p.Turn) == NoSquare {
			continue
		}
		if after.Board.KingOf(p.Turn.Opposite()) == NoSquare || atomicKingSafe(after.Board, p.Turn) {
			moves = append(moves, m)
		}
	}
	return moves
}
