// Package pgn parses Portable Game Notation into a game tree of tags,
// moves, comments, glyphs and variations, and replays parsed games against
// the move engine in package chess.
package pgn

import "github.com/lgbarn/chesscore-go/chess"

// TokenType classifies lexical tokens.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenTagName
	TokenString
	TokenComment
	TokenNag
	TokenMoveNumber
	TokenVariationStart
	TokenVariationEnd
	TokenMove
	TokenResult
)

var tokenTypeNames = [...]string{
	TokenEOF:            "end of input",
	TokenTagName:        "tag name",
	TokenString:         "string",
	TokenComment:        "comment",
	TokenNag:            "NAG",
	TokenMoveNumber:     "move number",
	TokenVariationStart: "'('",
	TokenVariationEnd:   "')'",
	TokenMove:           "move",
	TokenResult:         "result",
}

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "unknown"
}

// Token is a lexical token with its decoded payload.
type Token struct {
	Type TokenType

	// Text holds tag names, strings, comments, results and raw move text.
	Text string

	// San holds the decoded move for TokenMove tokens.
	San chess.San

	// Null marks a null move ("--" or "Z0").
	Null bool

	// Nag holds the glyph number for TokenNag tokens.
	Nag int

	// Offset is the byte offset of the token in the input.
	Offset int
}
