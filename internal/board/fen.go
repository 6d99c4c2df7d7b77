// Package board provides minimal FEN parsing: enough to know whose turn it
// is and to draw the position. It is not a rules engine; move legality is
// the host's concern.
package board

import (
	"fmt"
	"strings"
)

// Color is the side to move.
type Color byte

const (
	White Color = 'w'
	Black Color = 'b'
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// StartingFEN is the standard initial position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SideToMove extracts the active color from a FEN string.
func SideToMove(fen string) (Color, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return White, fmt.Errorf("fen %q: missing side-to-move field", fen)
	}
	switch fields[1] {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	}
	return White, fmt.Errorf("fen %q: bad side-to-move %q", fen, fields[1])
}

// Grid is the piece placement, Grid[0] being rank 8 and Grid[7] rank 1.
// Cells hold the FEN piece letter (uppercase white, lowercase black) or 0
// when empty.
type Grid [8][8]byte

// ParseGrid expands a FEN piece-placement field into a Grid.
func ParseGrid(fen string) (Grid, error) {
	var g Grid

	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return g, fmt.Errorf("empty fen")
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return g, fmt.Errorf("fen %q: want 8 ranks, got %d", fen, len(ranks))
	}

	for r, rank := range ranks {
		file := 0
		for _, ch := range []byte(rank) {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			case strings.IndexByte("pnbrqkPNBRQK", ch) >= 0:
				if file > 7 {
					return g, fmt.Errorf("fen %q: rank %d overflows", fen, 8-r)
				}
				g[r][file] = ch
				file++
			default:
				return g, fmt.Errorf("fen %q: bad piece char %q", fen, ch)
			}
		}
		if file != 8 {
			return g, fmt.Errorf("fen %q: rank %d has %d files", fen, 8-r, file)
		}
	}

	return g, nil
}

// SquareName returns algebraic coordinates for a Grid cell.
func SquareName(rank, file int) string {
	return string([]byte{byte('a' + file), byte('8' - rank)})
}
