package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// PositionFromFEN parses a FEN string into a Position under the given
// variant (nil means Standard). The halfmove clock and fullmove number may
// be omitted and default to 0 and 1; the castling and en-passant fields may
// be omitted and default to "-". Crazyhouse pockets are read from a
// bracketed suffix of the placement field and Three-check counters from a
// trailing "+w+b" field.
func PositionFromFEN(fen string, v *Variant) (Position, error) {
	if v == nil {
		v = Standard
	}
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) == 0 {
		return Position{}, &FenError{Field: "placement", Detail: "empty string"}
	}

	p := Position{
		Turn:     White,
		EpSquare: NoSquare,
		FullMove: 1,
		Variant:  v,
	}

	if err := p.parsePlacement(fields[0]); err != nil {
		return Position{}, err
	}
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
			p.Turn = White
		case "b":
			p.Turn = Black
		default:
			return Position{}, &FenError{Field: "color", Detail: fmt.Sprintf("want 'w' or 'b', got %q", fields[1])}
		}
	}
	if len(fields) > 2 {
		if err := p.parseCastling(fields[2]); err != nil {
			return Position{}, err
		}
	}
	if len(fields) > 3 && fields[3] != "-" {
		sq, ok := SquareFromString(fields[3])
		if !ok {
			return Position{}, &FenError{Field: "en-passant", Detail: fmt.Sprintf("bad square %q", fields[3])}
		}
		if sq.Rank() != Rank3 && sq.Rank() != Rank6 {
			return Position{}, &FenError{Field: "en-passant", Detail: "target must be on rank 3 or 6"}
		}
		// The target is only live when the double-pushed pawn is in place.
		pushed := MakeSquare(sq.File(), Rank4)
		if sq.Rank() == Rank6 {
			pushed = MakeSquare(sq.File(), Rank5)
		}
		if p.Board.ByPiece(Piece{Color: p.Turn.Opposite(), Role: Pawn}).Has(pushed) {
			p.EpSquare = sq
		}
	}
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Position{}, &FenError{Field: "halfmove clock", Detail: fields[4]}
		}
		p.HalfMove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return Position{}, &FenError{Field: "fullmove number", Detail: fields[5]}
		}
		p.FullMove = n
	}
	if len(fields) > 6 && v.countChecks {
		if err := p.parseChecks(fields[6]); err != nil {
			return Position{}, err
		}
	}

	if !v.ValidBoard(p.Board, false) {
		return Position{}, &FenError{Field: "placement", Detail: "board violates variant invariants"}
	}
	return p, nil
}

func (p *Position) parsePlacement(field string) error {
	if i := strings.IndexByte(field, '['); i >= 0 {
		if !strings.HasSuffix(field, "]") {
			return &FenError{Field: "placement", Detail: "unterminated pocket"}
		}
		for _, ch := range []byte(field[i+1 : len(field)-1]) {
			pc, ok := PieceFromLetter(ch)
			if !ok {
				return &FenError{Field: "placement", Detail: fmt.Sprintf("bad pocket piece %q", ch)}
			}
			p.Pockets[pc.Color][pc.Role]++
		}
		field = field[:i]
	}

	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return &FenError{Field: "placement", Detail: fmt.Sprintf("want 8 ranks, got %d", len(ranks))}
	}
	for ri, rankStr := range ranks {
		r := Rank(7 - ri)
		f := FileA
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			switch {
			case ch >= '1' && ch <= '8':
				f += File(ch - '0')
			case ch == '~':
				if f == FileA {
					return &FenError{Field: "placement", Detail: "dangling promotion marker"}
				}
				p.Promoted |= SquareBB(MakeSquare(f-1, r))
			default:
				pc, ok := PieceFromLetter(ch)
				if !ok || f > FileH {
					return &FenError{Field: "placement", Detail: fmt.Sprintf("bad rank %q", rankStr)}
				}
				var placed bool
				p.Board, placed = p.Board.Place(pc, MakeSquare(f, r))
				if !placed {
					return &FenError{Field: "placement", Detail: fmt.Sprintf("bad rank %q", rankStr)}
				}
				f++
			}
		}
		if f != FileH+1 {
			return &FenError{Field: "placement", Detail: fmt.Sprintf("rank %q does not cover 8 files", rankStr)}
		}
	}
	return nil
}

func (p *Position) parseCastling(field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		ch := field[i]
		color := White
		if ch >= 'a' && ch <= 'z' {
			color = Black
		}
		rooks := p.Board.ByPiece(Piece{Color: color, Role: Rook}) & RankBB(color.BackRank())
		king := p.Board.KingOf(color)
		var sq Square
		switch {
		case ch == 'K' || ch == 'k':
			// Outermost rook on the king side.
			sq = NoSquare
			for bb := rooks; bb != 0; {
				r := bb.PopFirst()
				if king == NoSquare || r.File() > king.File() {
					sq = r
				}
			}
		case ch == 'Q' || ch == 'q':
			sq = NoSquare
			for bb := rooks; bb != 0; {
				r := bb.PopFirst()
				if (king == NoSquare || r.File() < king.File()) && sq == NoSquare {
					sq = r
				}
			}
		case ch >= 'A' && ch <= 'H':
			sq = MakeSquare(File(ch-'A'), color.BackRank())
		case ch >= 'a' && ch <= 'h':
			sq = MakeSquare(File(ch-'a'), color.BackRank())
		default:
			return &FenError{Field: "castling", Detail: fmt.Sprintf("bad character %q", ch)}
		}
		if sq == NoSquare || !rooks.Has(sq) {
			return &FenError{Field: "castling", Detail: fmt.Sprintf("no rook for right %q", ch)}
		}
		p.Castles.Squares |= SquareBB(sq)
	}
	return nil
}

func (p *Position) parseChecks(field string) error {
	// Lichess style "+1+0": checks delivered by White, then by Black.
	parts := strings.Split(field, "+")
	if len(parts) != 3 || parts[0] != "" {
		return &FenError{Field: "checks", Detail: field}
	}
	w, err1 := strconv.Atoi(parts[1])
	b, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || w < 0 || b < 0 {
		return &FenError{Field: "checks", Detail: field}
	}
	p.Checks[White] = w
	p.Checks[Black] = b
	return nil
}

// FEN renders the position as a FEN string with all six fields, plus the
// pocket and check-count extensions for the variants that use them.
func (p Position) FEN() string {
	var sb strings.Builder

	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			sq := MakeSquare(f, r)
			pc, ok := p.Board.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(pc.Letter())
			if p.Promoted.Has(sq) {
				sb.WriteByte('~')
			}
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if r > Rank1 {
			sb.WriteByte('/')
		}
	}

	if p.Variant != nil && p.Variant.pocketed {
		sb.WriteByte('[')
		for _, c := range []Color{White, Black} {
			for role := Queen; role >= Pawn; role-- {
				for i := 0; i < p.Pockets[c][role]; i++ {
					sb.WriteByte(Piece{Color: c, Role: role}.Letter())
				}
			}
		}
		sb.WriteByte(']')
	}

	sb.WriteByte(' ')
	if p.Turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingString())

	sb.WriteByte(' ')
	sb.WriteString(p.EpSquare.String())

	fmt.Fprintf(&sb, " %d %d", p.HalfMove, p.FullMove)

	if p.Variant != nil && p.Variant.countChecks {
		fmt.Fprintf(&sb, " +%d+%d", p.Checks[White], p.Checks[Black])
	}
	return sb.String()
}

// castlingString renders rights as K/Q letters when the right belongs to
// the outermost rook of its side, and as Chess960 file letters for inner
// rooks (X-FEN).
func (p Position) castlingString() string {
	if p.Castles.IsEmpty() {
		return "-"
	}
	var sb strings.Builder
	for _, c := range []Color{White, Black} {
		king := p.Board.KingOf(c)
		rooks := p.Board.ByPiece(Piece{Color: c, Role: Rook}) & RankBB(c.BackRank())
		// King side first, matching the conventional KQkq ordering. Rights
		// without a rook still on the square are never emitted.
		sqs := (p.Castles.OnRank(c) & rooks).Squares()
		for i, j := 0, len(sqs)-1; i < j; i, j = i+1, j-1 {
			sqs[i], sqs[j] = sqs[j], sqs[i]
		}
		for _, sq := range sqs {
			ch := byte('A' + sq.File())
			if king != NoSquare {
				outer := true
				for ob := rooks; ob != 0; {
					o := ob.PopFirst()
					if sq.File() > king.File() && o.File() > sq.File() ||
						sq.File() < king.File() && o.File() < sq.File() {
						outer = false
					}
				}
				if outer && sq.File() > king.File() {
					ch = 'K'
				} else if outer && sq.File() < king.File() {
					ch = 'Q'
				}
			}
			if c == Black {
				ch += 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}
