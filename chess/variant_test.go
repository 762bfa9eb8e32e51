package chess

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestVariantRegistry(t *testing.T) {
	keys := []string{"standard", "chess960", "kingOfTheHill", "threeCheck",
		"antichess", "atomic", "horde", "racingKings", "crazyhouse"}
	for _, key := range keys {
		v, ok := VariantByKey(key)
		testutil.True(t, ok, "variant %q should be registered", key)
		testutil.Equal(t, v.Key, key)
		pos := NewPosition(v)
		testutil.True(t, v.ValidBoard(pos.Board, true), "%q initial board should be strictly valid", key)
	}
	_, ok := VariantByKey("nonsense")
	testutil.False(t, ok, "unknown keys should not resolve")
}

func TestKingOfTheHillWin(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/3K4/8/8/8 w - - 0 1", KingOfTheHill)
	out := pos.Outcome()
	testutil.Equal(t, out.Status, VariantEnd)
	testutil.True(t, out.HasWinner && out.Winner == White, "white king on d4 wins")

	pos = mustPosition(t, "4k3/8/8/8/8/3K4/8/8 w - - 0 1", KingOfTheHill)
	testutil.Equal(t, pos.Outcome().Status, Ongoing)
}

func TestThreeCheckCounting(t *testing.T) {
	pos := NewPosition(ThreeCheck)
	// 1. e4 e5 2. Qh5 Nc6 3. Qxf7+ gives the first check.
	for _, san := range []string{"e4", "e5", "Qh5", "Nc6", "Qxf7+"} {
		m, err := pos.ResolveSAN(san)
		testutil.NoError(t, err)
		pos = pos.Apply(m)
	}
	testutil.Equal(t, pos.Checks[White], 1)
	testutil.Equal(t, pos.Checks[Black], 0)

	won := pos
	won.Checks[White] = 3
	out := won.Outcome()
	testutil.Equal(t, out.Status, VariantEnd)
	testutil.True(t, out.HasWinner && out.Winner == White, "three checks win")
}

func TestAntichessMandatoryCapture(t *testing.T) {
	pos := mustPosition(t, "8/8/8/8/3p4/2P1P3/8/8 w - - 0 1", Antichess)
	moves := pos.LegalMoves()
	testutil.True(t, len(moves) > 0, "captures should exist")
	for _, m := range moves {
		testutil.True(t, m.IsCapture(), "with a capture available only captures are legal, got %s", m)
	}
}

func TestAntichessStalematedSideWins(t *testing.T) {
	// Black to move has no moves at all (the a2 pawn is blocked and has
	// nothing to capture): black wins.
	pos := mustPosition(t, "8/8/8/8/8/8/p7/R7 b - - 0 1", Antichess)
	m, err := pos.ResolveSAN("axb1=K")
	testutil.Error(t, err) // no b1 target; ensure resolver stays sane
	_ = m
	stuck := pos.Outcome()
	testutil.Equal(t, stuck.Status, VariantEnd)
	testutil.True(t, stuck.HasWinner && stuck.Winner == Black, "the stalemated side wins")

	pos = mustPosition(t, "8/8/8/8/8/8/8/rK6 w - - 0 1", Antichess)
	// Capture is mandatory: Kxa1 is white's only move.
	moves := pos.LegalMoves()
	testutil.Equal(t, len(moves), 1)
	testutil.True(t, moves[0].IsCapture(), "the forced move is a capture")
	after := pos.Apply(moves[0])
	// Black has nothing left and wins on the spot.
	out := after.Outcome()
	testutil.Equal(t, out.Status, VariantEnd)
	testutil.True(t, out.HasWinner && out.Winner == Black, "the bare side wins")
}

func TestAntichessKingBehaviour(t *testing.T) {
	// Kings are ordinary: captures by king are forced like any other.
	pos := mustPosition(t, "8/8/8/8/8/8/2r5/1K6 w - - 0 1", Antichess)
	moves := pos.LegalMoves()
	testutil.Equal(t, len(moves), 1)
	testutil.True(t, moves[0].IsCapture() && moves[0].Role == King,
		"Kxc2 is the only legal move, got %s", moves[0])

	// Promotion to king is permitted.
	pos = mustPosition(t, "8/4P3/8/8/8/8/8/8 w - - 0 1", Antichess)
	kings := 0
	for _, m := range pos.LegalMoves() {
		if m.Promotion == King {
			kings++
		}
	}
	testutil.Equal(t, kings, 1)
}

func TestAtomicExplosion(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/8/4r3/4R2K w - - 0 1", Atomic)
	m, err := pos.ResolveSAN("Rxe2")
	testutil.NoError(t, err)
	after := pos.Apply(m)

	// Both rooks are gone: the captured one, and the capturer detonated.
	testutil.True(t, after.Board.ByRole(Rook).IsEmpty(), "both rooks should be removed")
	testutil.Equal(t, after.Board.Occupied().Count(), 2)
	testutil.Equal(t, after.Outcome().Status, InsufficientMaterial)
}

func TestAtomicPawnsSurviveBlast(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/3p4/4p3/3QK3 w - - 0 1", Atomic)
	m, err := pos.ResolveSAN("Qxe2")
	testutil.Error(t, err) // exploding next to the own king is suicide
	_ = m

	pos = mustPosition(t, "4k3/8/8/3p4/8/8/8/3QK3 w - - 0 1", Atomic)
	m, err = pos.ResolveSAN("Qxd5")
	testutil.NoError(t, err)
	after := pos.Apply(m)
	// The queen detonates with the pawn; nothing else stood in the blast.
	testutil.True(t, after.Board.ByRole(Queen).IsEmpty(), "capturing piece explodes")
	testutil.True(t, after.Board.ByRole(Pawn).IsEmpty(), "captured pawn is removed")

	// A pawn next to the capture square is spared.
	pos = mustPosition(t, "4k3/8/8/3p4/2P5/8/8/3QK3 w - - 0 1", Atomic)
	m, err = pos.ResolveSAN("Qxd5")
	testutil.NoError(t, err)
	after = pos.Apply(m)
	testutil.Equal(t, after.Board.RoleAt(mustSquare(t, "c4")), Pawn)
}

func TestAtomicBlastClearsCastlingRights(t *testing.T) {
	// The blast from Qxg2 takes the h1 rook with it; the attached castling
	// right must go too, and the FEN must still round-trip.
	pos := mustPosition(t, "r3k3/8/8/3Q4/8/8/6n1/R3K2R w KQq - 0 1", Atomic)
	m, err := pos.ResolveSAN("Qxg2")
	testutil.NoError(t, err)
	after := pos.Apply(m)

	testutil.Equal(t, after.Board.RoleAt(mustSquare(t, "h1")), NoRole)
	testutil.False(t, after.Castles.Has(mustSquare(t, "h1")),
		"the exploded rook's right must be cleared")
	testutil.True(t, after.Castles.Has(mustSquare(t, "a1")), "the a1 right survives")
	testutil.True(t, after.Castles.Has(mustSquare(t, "a8")), "black's right survives")

	out := after.FEN()
	back, err := PositionFromFEN(out, Atomic)
	testutil.NoError(t, err)
	testutil.Equal(t, back.FEN(), out)
}

func TestAtomicKingCannotCapture(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", Atomic)
	for _, m := range pos.LegalMoves() {
		testutil.False(t, m.IsCapture(), "atomic kings may not capture, got %s", m)
	}
}

func TestAtomicWinByExplosion(t *testing.T) {
	pos := mustPosition(t, "4kr2/4r3/8/8/8/8/8/4RK2 w - - 0 1", Atomic)
	m, err := pos.ResolveSAN("Rxe7")
	testutil.NoError(t, err)
	after := pos.Apply(m)
	testutil.Equal(t, after.Board.KingOf(Black), NoSquare)
	out := after.Outcome()
	testutil.Equal(t, out.Status, VariantEnd)
	testutil.True(t, out.HasWinner && out.Winner == White, "exploding the king wins")
}

func TestHordeWipeout(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/8/8/8 b - - 0 1", Horde)
	out := pos.Outcome()
	testutil.Equal(t, out.Status, VariantEnd)
	testutil.True(t, out.HasWinner && out.Winner == Black, "black wins when the horde is gone")
}

func TestHordeDoublePushFromFirstRank(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/8/8/P7 w - - 0 1", Horde)
	found := false
	for _, m := range pos.LegalMoves() {
		if m.From == mustSquare(t, "a1") && m.To == mustSquare(t, "a3") {
			found = true
		}
	}
	testutil.True(t, found, "horde pawns double-push from the first rank")
}

func TestRacingKingsNoChecks(t *testing.T) {
	pos := NewPosition(RacingKings)
	for _, m := range pos.LegalMoves() {
		after := pos.Apply(m)
		testutil.False(t, after.InCheck(), "%s gives check, which racing kings forbids", m)
	}
}

func TestRacingKingsFinish(t *testing.T) {
	// Black king on the eighth rank wins outright.
	pos := mustPosition(t, "3k4/8/8/8/8/8/8/K7 w - - 0 1", RacingKings)
	out := pos.Outcome()
	testutil.Equal(t, out.Status, VariantEnd)
	testutil.True(t, out.HasWinner && out.Winner == Black, "black reached rank 8")

	// White on rank 8 with Black to move and able to follow: not over yet.
	pos = mustPosition(t, "K7/6k1/8/8/8/8/8/8 b - - 0 1", RacingKings)
	testutil.Equal(t, pos.Outcome().Status, Ongoing)

	// Black equalizes: draw.
	m, err := pos.ResolveSAN("Kg8")
	testutil.NoError(t, err)
	after := pos.Apply(m)
	testutil.Equal(t, after.Outcome().Status, VariantDraw)

	// Black cannot reach rank 8: White wins immediately.
	pos = mustPosition(t, "K7/8/8/8/8/8/8/7k b - - 0 1", RacingKings)
	out = pos.Outcome()
	testutil.Equal(t, out.Status, VariantEnd)
	testutil.True(t, out.HasWinner && out.Winner == White, "white wins unanswered")
}

func TestCrazyhousePocketAccumulation(t *testing.T) {
	pos := NewPosition(Crazyhouse)
	for _, san := range []string{"e4", "d5", "exd5"} {
		m, err := pos.ResolveSAN(san)
		testutil.NoError(t, err)
		pos = pos.Apply(m)
	}
	testutil.Equal(t, pos.Pockets[White][Pawn], 1)

	m, err := pos.ResolveSAN("Qxd5")
	testutil.NoError(t, err)
	pos = pos.Apply(m)
	testutil.Equal(t, pos.Pockets[Black][Pawn], 1)
}

func TestCrazyhouseDropBlocksCheck(t *testing.T) {
	// Black king on e8 checked by the e1 rook: with a bishop in pocket,
	// every drop must interpose on the checking file.
	pos := mustPosition(t, "4k3/8/8/8/8/8/8/4RK2[b] b - - 0 1", Crazyhouse)
	drops := 0
	for _, m := range pos.LegalMoves() {
		if m.Kind == DropMove {
			drops++
			testutil.True(t, Between(mustSquare(t, "e8"), mustSquare(t, "e1")).Has(m.To),
				"drop %s does not interpose", m)
		}
	}
	testutil.True(t, drops > 0, "interposing drops should exist")
}

func TestCrazyhouseDropRules(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/8/8/4K3[Pn] w - - 0 1", Crazyhouse)

	_, err := pos.Drop(Pawn, mustSquare(t, "e8"))
	testutil.ErrorIs(t, err, ErrIllegalDrop) // occupied

	_, err = pos.Drop(Pawn, mustSquare(t, "a8"))
	testutil.ErrorIs(t, err, ErrIllegalDrop) // pawns not on rank 8

	_, err = pos.Drop(Knight, mustSquare(t, "c3"))
	testutil.ErrorIs(t, err, ErrIllegalDrop) // knight is in black's pocket

	m, err := pos.Drop(Pawn, mustSquare(t, "e4"))
	testutil.NoError(t, err)
	after := pos.Apply(m)
	testutil.Equal(t, after.Board.RoleAt(mustSquare(t, "e4")), Pawn)
	testutil.Equal(t, after.Pockets[White][Pawn], 0)
	testutil.Equal(t, after.HalfMove, 0)
}

func TestCrazyhousePromotedRevertsToPawn(t *testing.T) {
	pos := mustPosition(t, "4k3/P7/8/8/8/8/8/4K3[] w - - 0 1", Crazyhouse)
	m, err := pos.ResolveSAN("a8=Q")
	testutil.NoError(t, err)
	pos = pos.Apply(m)
	testutil.True(t, pos.Promoted.Has(mustSquare(t, "a8")), "promotion square is marked")

	// The mark travels with the piece.
	m, err = pos.ResolveSAN("Kd7")
	testutil.NoError(t, err)
	pos = pos.Apply(m)
	m, err = pos.ResolveSAN("Kd2")
	testutil.NoError(t, err)
	pos = pos.Apply(m)
	pos.Pockets[Black][Rook] = 1
	m, err = pos.Drop(Rook, mustSquare(t, "a1"))
	testutil.NoError(t, err)
	pos = pos.Apply(m)
	m, err = pos.ResolveSAN("Qxa1")
	testutil.NoError(t, err)
	pos = pos.Apply(m)
	testutil.True(t, pos.Promoted.Has(mustSquare(t, "a1")), "the mark follows the queen")
	// The captured rook was never promoted; it pockets as a rook.
	testutil.Equal(t, pos.Pockets[White][Rook], 1)
}

func TestCrazyhouseCapturedPromotedPieceBecomesPawn(t *testing.T) {
	// A promoted queen on a8 marked with ~ goes into the pocket as a pawn.
	pos := mustPosition(t, "Q~3k3/8/8/8/8/8/8/R3K3 b - - 0 1", Crazyhouse)
	testutil.True(t, pos.Promoted.Has(mustSquare(t, "a8")), "~ marks a promoted piece")
	m, err := pos.ResolveSAN("Kd7")
	testutil.NoError(t, err)
	_ = m

	pos2 := mustPosition(t, "Q~2rk3/8/8/8/8/8/8/4K3[] b - - 0 1", Crazyhouse)
	m, err = pos2.ResolveSAN("Rxa8")
	testutil.NoError(t, err)
	after := pos2.Apply(m)
	testutil.Equal(t, after.Pockets[Black][Pawn], 1)
	testutil.Equal(t, after.Pockets[Black][Queen], 0)
}

func TestFiftyMoveRuleDisabled(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/4K3[] w - - 120 80"
	pos := mustPosition(t, fen, Crazyhouse)
	testutil.Equal(t, pos.Outcome().Status, Ongoing)

	std := mustPosition(t, "4k3/8/8/8/8/8/4R3/4K3 w - - 120 80", Standard)
	testutil.Equal(t, std.Outcome().Status, FiftyMoveRule)
}
