package chess

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

const (
	svgSquareSize = 45
	svgBoardSize  = 8 * svgSquareSize
)

var pieceGlyphs = map[Piece]string{
	{White, Pawn}: "♙", {White, Knight}: "♘", {White, Bishop}: "♗",
	{White, Rook}: "♖", {White, Queen}: "♕", {White, King}: "♔",
	{Black, Pawn}: "♟", {Black, Knight}: "♞", {Black, Bishop}: "♝",
	{Black, Rook}: "♜", {Black, Queen}: "♛", {Black, King}: "♚",
}

// WriteSVG renders the board as an SVG diagram, white at the bottom.
func WriteSVG(w io.Writer, b Board) {
	canvas := svg.New(w)
	canvas.Start(svgBoardSize, svgBoardSize)
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			x := int(f) * svgSquareSize
			y := (7 - int(r)) * svgSquareSize
			fill := "fill:#f0d9b5"
			if (int(f)+int(r))%2 == 0 {
				fill = "fill:#b58863"
			}
			canvas.Rect(x, y, svgSquareSize, svgSquareSize, fill)
			if pc, ok := b.PieceAt(MakeSquare(f, r)); ok {
				canvas.Text(x+svgSquareSize/2, y+svgSquareSize*3/4, pieceGlyphs[pc],
					"text-anchor:middle;font-size:34px")
			}
		}
	}
	canvas.End()
}
