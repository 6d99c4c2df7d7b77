package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tactix/internal/board"
	"github.com/abhisek/tactix/internal/ui/theme"
)

// pieceGlyphs maps FEN piece letters to figurine glyphs. Both colors use
// the filled set so the foreground color alone distinguishes them.
var pieceGlyphs = map[byte]string{
	'K': "♚", 'Q': "♛", 'R': "♜", 'B': "♝", 'N': "♞", 'P': "♟",
	'k': "♚", 'q': "♛", 'r': "♜", 'b': "♝", 'n': "♞", 'p': "♟",
}

// Glyph returns the display glyph for a FEN piece letter, or a space for
// an empty square.
func Glyph(piece byte) string {
	if g, ok := pieceGlyphs[piece]; ok {
		return g
	}
	return " "
}

// RenderBoard renders the position from white's perspective. highlight
// names a square ("e4") to mark, or is empty.
func RenderBoard(grid board.Grid, highlight string) string {
	var b strings.Builder

	fileLabels := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("    a  b  c  d  e  f  g  h")

	for row := 0; row < 8; row++ {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(" " + string(rune('8'-row)) + " "))
		for file := 0; file < 8; file++ {
			piece := grid[row][file]

			bg := theme.DarkSquare
			if (row+file)%2 == 0 {
				bg = theme.LightSquare
			}
			if board.SquareName(row, file) == highlight {
				bg = theme.HintSquare
			}

			fg := theme.BlackPiece
			if piece >= 'A' && piece <= 'Z' {
				fg = theme.WhitePiece
			}

			cell := lipgloss.NewStyle().
				Background(bg).
				Foreground(fg).
				Render(" " + Glyph(piece) + " ")
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	b.WriteString(fileLabels)

	return b.String()
}
