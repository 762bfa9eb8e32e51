package pgn

import (
	"testing"

	"github.com/lgbarn/chesscore-go/chess"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

const immortalHeader = `[Event "Casual game"]
[Site "London"]
[White "Anderssen"]
[Black "Kieseritzky"]
[Result "1-0"]

`

func TestParseTagsAndMoves(t *testing.T) {
	g, err := Parse(immortalHeader + "1. e4 e5 2. f4 exf4 1-0\n")
	testutil.NoError(t, err)
	testutil.Equal(t, g.Tag("White"), "Anderssen")
	testutil.Equal(t, g.Tag("Result"), "1-0")
	testutil.Equal(t, g.Tag("Missing"), "")
	testutil.Equal(t, g.Result, "1-0")
	testutil.Equal(t, len(g.Moves), 4)
	testutil.Equal(t, g.Moves[0].Text, "e4")
	testutil.Equal(t, g.Moves[3].San.Capture, true)
}

func TestParseComments(t *testing.T) {
	g, err := Parse("{Opening notes.} 1. e4 {best by test} e5 ; a line comment\n2. Nf3 *")
	testutil.NoError(t, err)
	testutil.Equal(t, g.InitialComments, []string{"Opening notes."})
	testutil.Equal(t, g.Moves[0].Comments, []string{"best by test"})
	testutil.Equal(t, g.Moves[1].Comments, []string{"a line comment"})
	testutil.Equal(t, g.Moves[2].Text, "Nf3")
}

func TestParseNags(t *testing.T) {
	g, err := Parse("1. e4 $1 e5 !? 2. Nf3?? *")
	testutil.NoError(t, err)
	testutil.Equal(t, g.Moves[0].Nags, []int{1})
	testutil.Equal(t, g.Moves[1].Nags, []int{5})
	testutil.Equal(t, g.Moves[2].Nags, []int{4})
}

func TestParseVariations(t *testing.T) {
	g, err := Parse("1. e4 e5 (1... c5 2. Nf3 (2. c3)) 2. Nf3 *")
	testutil.NoError(t, err)
	testutil.Equal(t, len(g.Moves), 3)

	e5 := g.Moves[1]
	testutil.Equal(t, len(e5.Variations), 1)
	sicilian := e5.Variations[0]
	testutil.Equal(t, len(sicilian), 2)
	testutil.Equal(t, sicilian[0].Text, "c5")
	testutil.Equal(t, len(sicilian[1].Variations), 1)
	testutil.Equal(t, sicilian[1].Variations[0][0].Text, "c3")
}

func TestParseCheckSuffixes(t *testing.T) {
	g, err := Parse("1. f3 e5 2. g4 Qh4# 0-1")
	testutil.NoError(t, err)
	last := g.Moves[3]
	testutil.True(t, last.San.Checkmate, "the mate suffix should be recorded")
	testutil.Equal(t, g.Result, "0-1")
}

func TestParseCastlesAndResults(t *testing.T) {
	g, err := Parse("1. O-O O-O-O 1/2-1/2")
	testutil.NoError(t, err)
	testutil.Equal(t, g.Moves[0].San.Kind, chess.SanCastle)
	testutil.Equal(t, g.Moves[0].San.Side, chess.KingSide)
	testutil.Equal(t, g.Moves[1].San.Side, chess.QueenSide)
	testutil.Equal(t, g.Result, "1/2-1/2")

	// Zero-style castles are tolerated.
	g, err = Parse("1. 0-0 0-0-0 *")
	testutil.NoError(t, err)
	testutil.Equal(t, g.Moves[0].San.Kind, chess.SanCastle)
	testutil.Equal(t, g.Moves[1].San.Side, chess.QueenSide)
}

func TestParseDropSan(t *testing.T) {
	g, err := Parse(`[Variant "Crazyhouse"]

1. e4 e5 2. N@f3 *`)
	testutil.NoError(t, err)
	testutil.Equal(t, g.Moves[2].San.Kind, chess.SanDrop)
	testutil.Equal(t, g.Moves[2].San.Role, chess.Knight)
}

func TestParseRobustness(t *testing.T) {
	// BOM, CRLF, stray whitespace and an escape line.
	src := "\xEF\xBB\xBF[Event \"x\"]\r\n%ignore this line\r\n\r\n  1.  e4   e5  *\r\n"
	g, err := Parse(src)
	testutil.NoError(t, err)
	testutil.Equal(t, g.Tag("Event"), "x")
	testutil.Equal(t, len(g.Moves), 2)
}

func TestParseMultipleGames(t *testing.T) {
	src := `[Event "one"]

1. e4 *

[Event "two"]

1. d4 d5 1/2-1/2
`
	games, err := ParseAll(src)
	testutil.NoError(t, err)
	testutil.Equal(t, len(games), 2)
	testutil.Equal(t, games[0].Tag("Event"), "one")
	testutil.Equal(t, len(games[1].Moves), 2)
}

func TestParseIncomplete(t *testing.T) {
	cases := []string{
		"1. e4 {unterminated",
		"1. e4 (1. d4 ",
		"[Event \"unterminated",
	}
	for _, src := range cases {
		_, err := Parse(src)
		testutil.ErrorIs(t, err, ErrIncompletePGN)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("[Event missing-quotes]\n1. e4 *")
	testutil.ErrorIs(t, err, ErrParse)

	_, err = Parse("(1. e4) *")
	testutil.ErrorIs(t, err, ErrParse)

	_, err = Parse("1. e4 e5 2. Xy9 *")
	testutil.ErrorIs(t, err, ErrParse)

	var perr *ParseError
	_, err = Parse("1. e4 e5 2. Xy9 *")
	if !asParseError(err, &perr) {
		t.Fatalf("want *ParseError, got %T", err)
	}
	testutil.True(t, perr.Offset > 0, "offset should point into the input")
}

func asParseError(err error, target **ParseError) bool {
	for err != nil {
		if pe, ok := err.(*ParseError); ok {
			*target = pe
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

func TestNullMoves(t *testing.T) {
	g, err := Parse("1. e4 -- 2. d4 Z0 *")
	testutil.NoError(t, err)
	testutil.True(t, g.Moves[1].Null, "-- is a null move")
	testutil.True(t, g.Moves[3].Null, "Z0 is a null move")
}
