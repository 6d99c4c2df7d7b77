package puzzle

import (
	"fmt"
	"strings"
)

// MoveResult reports the outcome of submitting one move to a Controller.
type MoveResult struct {
	// Accepted is true when the move continues at least one winning line.
	Accepted bool

	// Complete is true when the puzzle is solved. It stays true on every
	// result after the solving move.
	Complete bool

	// Cursor is the number of moves matched so far.
	Cursor int
}

// Controller decides, for one puzzle, whether submitted moves follow a
// winning line. The canonical solution and each variant form one line; the
// controller keeps the index set of lines still consistent with the moves
// played and narrows it on every accepted move. It performs no chess logic:
// moves are matched as normalized SAN strings, so the caller must submit
// canonical SAN ("e4" and "e2e4" are different moves here).
type Controller struct {
	def *Definition

	// lines holds every winning line in normalized form, canonical first.
	lines [][]string

	// active indexes into lines; only active lines can still win.
	active []int

	cursor   int
	attempts int
	solved   bool
}

// NewController builds a Controller for the given puzzle. It fails when the
// canonical solution is missing or empty, or when any variant is empty.
func NewController(def *Definition) (*Controller, error) {
	if def == nil {
		return nil, fmt.Errorf("puzzle definition is nil")
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	lines := make([][]string, 0, 1+len(def.Variants))
	lines = append(lines, normalizeLine(def.Solution))
	for _, v := range def.Variants {
		lines = append(lines, normalizeLine(v.Moves))
	}

	c := &Controller{def: def, lines: lines}
	c.Reset()
	return c, nil
}

// Definition returns the puzzle this controller was built for.
func (c *Controller) Definition() *Definition { return c.def }

// HandleMove matches one submitted SAN move against the active lines.
// A rejected move costs an attempt but leaves the cursor and active set
// unchanged, so the player retries only the offending move. Once solved,
// every further move is rejected with Complete still true.
func (c *Controller) HandleMove(move string) MoveResult {
	if c.solved {
		return MoveResult{Accepted: false, Complete: true, Cursor: c.cursor}
	}

	san := NormalizeSAN(move)

	var surviving []int
	for _, li := range c.active {
		line := c.lines[li]
		if c.cursor < len(line) && line[c.cursor] == san {
			surviving = append(surviving, li)
		}
	}

	if len(surviving) == 0 {
		c.attempts++
		return MoveResult{Accepted: false, Complete: false, Cursor: c.cursor}
	}

	c.active = surviving
	c.cursor++

	for _, li := range c.active {
		if len(c.lines[li]) == c.cursor {
			c.solved = true
			break
		}
	}

	return MoveResult{Accepted: true, Complete: c.solved, Cursor: c.cursor}
}

// Reset restores the controller to its initial state: cursor and attempts
// zero, unsolved, every line active.
func (c *Controller) Reset() {
	c.cursor = 0
	c.attempts = 0
	c.solved = false
	c.active = make([]int, len(c.lines))
	for i := range c.lines {
		c.active[i] = i
	}
}

// Cursor returns the number of moves matched so far.
func (c *Controller) Cursor() int { return c.cursor }

// Attempts returns the number of rejected moves since the last reset.
func (c *Controller) Attempts() int { return c.attempts }

// Solved reports whether a winning line has been fully played.
func (c *Controller) Solved() bool { return c.solved }

// ActiveLines returns the number of lines still consistent with the moves
// played.
func (c *Controller) ActiveLines() int { return len(c.active) }

// PeekNextMove returns the canonical line's move at the current cursor.
// The second return is false when the puzzle is solved or the canonical
// line is exhausted. Hints read the canonical line even when the player is
// mid-variant; peeking the first still-active line instead would track the
// player's actual path, at the cost of hints shifting between lines.
func (c *Controller) PeekNextMove() (string, bool) {
	if c.solved || c.cursor >= len(c.lines[0]) {
		return "", false
	}
	return c.lines[0][c.cursor], true
}

// NormalizeSAN trims a SAN move and collapses internal whitespace. Check,
// mate, promotion, and castling punctuation is preserved verbatim: it is
// part of the match key.
func NormalizeSAN(move string) string {
	return strings.Join(strings.Fields(move), " ")
}

func normalizeLine(moves []string) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = NormalizeSAN(m)
	}
	return out
}
