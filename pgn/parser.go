package pgn

import "github.com/lgbarn/chesscore-go/chess"

// Tag is a single PGN tag pair. Tags keep their input order and may repeat,
// so a game holds a list rather than a map.
type Tag struct {
	Name  string
	Value string
}

// Node is one move of the game tree with everything attached to it.
type Node struct {
	San  chess.San
	Text string
	Null bool

	Comments []string
	Nags     []int

	// Variations are alternative continuations starting from the position
	// before this move was played.
	Variations [][]Node
}

// Game is a parsed PGN game: tags, the comments preceding the first move,
// the mainline with nested variations, and the result token if present.
type Game struct {
	Tags            []Tag
	InitialComments []string
	Moves           []Node
	Result          string
}

// Tag returns the first value of the named tag, or "".
func (g *Game) Tag(name string) string {
	for _, t := range g.Tags {
		if t.Name == name {
			return t.Value
		}
	}
	return ""
}

// Parser parses one or more games from a PGN string. It fails fast on the
// first syntax violation.
type Parser struct {
	lex    *Lexer
	tok    Token
	peeked bool
}

// NewParser creates a parser over the given input.
func NewParser(src string) *Parser {
	return &Parser{lex: newLexer(src)}
}

// Parse parses a single game from the input and returns it.
func Parse(src string) (*Game, error) {
	p := NewParser(src)
	g, err := p.ParseGame()
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, &ParseError{Offset: 0, Expected: "a PGN game"}
	}
	return g, nil
}

// ParseAll parses every game in the input.
func ParseAll(src string) ([]*Game, error) {
	p := NewParser(src)
	var games []*Game
	for {
		g, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if g == nil {
			return games, nil
		}
		games = append(games, g)
	}
}

func (p *Parser) next() (Token, error) {
	if p.peeked {
		p.peeked = false
		return p.tok, nil
	}
	return p.lex.Next()
}

func (p *Parser) pushback(tok Token) {
	p.tok = tok
	p.peeked = true
}

// ParseGame parses the next game, or returns (nil, nil) when the input is
// exhausted.
func (p *Parser) ParseGame() (*Game, error) {
	g := &Game{}
	started := false

	// Tag section.
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.Type != TokenTagName {
			p.pushback(tok)
			break
		}
		started = true
		val, err := p.next()
		if err != nil {
			return nil, err
		}
		if val.Type != TokenString {
			return nil, &ParseError{Offset: val.Offset, Expected: "tag value string", Got: val.Type.String()}
		}
		g.Tags = append(g.Tags, Tag{Name: tok.Text, Value: val.Text})
	}

	moves, result, err := p.parseMovetext(g, 0)
	if err != nil {
		return nil, err
	}
	g.Moves = moves
	g.Result = result

	if !started && len(g.Moves) == 0 && len(g.InitialComments) == 0 && g.Result == "" {
		return nil, nil
	}
	return g, nil
}

// parseMovetext parses a move sequence until the end of the game (depth 0)
// or the closing parenthesis of a variation (depth > 0).
func (p *Parser) parseMovetext(g *Game, depth int) ([]Node, string, error) {
	var nodes []Node
	var pending []string // comments preceding the next move inside a variation

	last := func() *Node {
		if len(nodes) == 0 {
			return nil
		}
		return &nodes[len(nodes)-1]
	}

	for {
		tok, err := p.next()
		if err != nil {
			return nodes, "", err
		}
		switch tok.Type {
		case TokenMoveNumber:
			// Move numbers are decorative; the replay engine counts plies.
		case TokenComment:
			switch {
			case last() != nil:
				n := last()
				n.Comments = append(n.Comments, tok.Text)
			case depth == 0:
				g.InitialComments = append(g.InitialComments, tok.Text)
			default:
				pending = append(pending, tok.Text)
			}
		case TokenNag:
			if n := last(); n != nil {
				n.Nags = append(n.Nags, tok.Nag)
			}
		case TokenMove:
			node := Node{San: tok.San, Text: tok.Text, Null: tok.Null, Comments: pending}
			pending = nil
			nodes = append(nodes, node)
		case TokenVariationStart:
			n := last()
			if n == nil {
				return nodes, "", &ParseError{Offset: tok.Offset, Expected: "a move before '('"}
			}
			sub, subResult, err := p.parseMovetext(g, depth+1)
			if err != nil {
				return nodes, "", err
			}
			if subResult != "" {
				return nodes, "", &ParseError{Offset: tok.Offset, Expected: "')'", Got: "game result inside variation"}
			}
			n.Variations = append(n.Variations, sub)
		case TokenVariationEnd:
			if depth == 0 {
				return nodes, "", &ParseError{Offset: tok.Offset, Expected: "move or result", Got: "')'"}
			}
			return nodes, "", nil
		case TokenResult:
			if depth > 0 {
				return nodes, "", &ParseError{Offset: tok.Offset, Expected: "')'", Got: "game result"}
			}
			return nodes, tok.Text, nil
		case TokenTagName:
			if depth > 0 {
				return nodes, "", ErrIncompletePGN
			}
			// Start of the next game.
			p.pushback(tok)
			return nodes, "", nil
		case TokenEOF:
			if depth > 0 {
				return nodes, "", ErrIncompletePGN
			}
			return nodes, "", nil
		}
	}
}
