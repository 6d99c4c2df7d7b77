// Package hint derives player-facing hints from the next expected move
// without revealing the full solution. Hints are anchored to the canonical
// line: a player mid-variant gets nudged back toward the main line.
package hint

import (
	"regexp"
	"strings"

	"github.com/abhisek/tactix/internal/board"
	"github.com/abhisek/tactix/internal/puzzle"
)

// Kind selects the hint flavor.
type Kind string

const (
	// KindText is a textual nudge.
	KindText Kind = "text"

	// KindOriginHighlight is the destination square of the expected move,
	// for the host to highlight on the board.
	KindOriginHighlight Kind = "origin-highlight"
)

// Hint is one produced hint.
type Hint struct {
	Kind Kind

	// Text is set for KindText.
	Text string

	// Square is the extracted destination for KindOriginHighlight; empty
	// when the notation yields no square.
	Square string

	// Usage is the hint count for the current puzzle after this hint.
	Usage int
}

// Session is the slice of the session manager the hint service reads.
type Session interface {
	HintsAllowed() bool
	CurrentPuzzle() *puzzle.Definition
	PeekNextMove() (string, bool)
	RecordHintUsage() int
	PublishHintEvent(kind, payload string, usage int)
}

// Service produces hints for the session's current puzzle.
type Service struct {
	sess Session
}

// NewService creates a hint service over the given session.
func NewService(sess Session) *Service {
	return &Service{sess: sess}
}

// RequestHint produces a hint of the given kind, or nil when there is no
// current puzzle or hints are disabled. Every produced hint costs a usage
// tick, even when it carries no useful content.
func (s *Service) RequestHint(kind Kind) *Hint {
	puz := s.sess.CurrentPuzzle()
	if puz == nil || !s.sess.HintsAllowed() {
		return nil
	}

	next, haveNext := s.sess.PeekNextMove()
	usage := s.sess.RecordHintUsage()

	h := &Hint{Kind: kind, Usage: usage}
	payload := ""
	switch kind {
	case KindOriginHighlight:
		if haveNext {
			h.Square = TargetSquare(next, puz.FEN)
		}
		payload = h.Square
	default:
		h.Kind = KindText
		h.Text = textHint(puz, next, haveNext)
		payload = h.Text
	}

	s.sess.PublishHintEvent(string(h.Kind), payload, usage)
	return h
}

// textHint prefers the authored hint, then synthesizes from the next
// expected move, then falls back to generic advice. It always returns
// some string.
func textHint(puz *puzzle.Definition, next string, haveNext bool) string {
	if authored := strings.TrimSpace(puz.Hint); authored != "" {
		return authored
	}
	if haveNext {
		return "Consider candidate moves similar to " + next + "."
	}
	return "Look for forcing moves near the king."
}

// squareRe matches file-rank coordinates inside a SAN move.
var squareRe = regexp.MustCompile(`[a-h][1-8]`)

// TargetSquare extracts the destination square from a SAN move. Castling
// resolves the king's destination from the side to move in the puzzle's
// starting position; for every other move the last file-rank pair in the
// notation is the destination ("Nbxd7" yields "d7", "e8=Q" yields "e8").
// Returns "" when the notation yields no square.
func TargetSquare(move, fen string) string {
	clean := strings.TrimRight(puzzle.NormalizeSAN(move), "+#?!")

	if strings.HasPrefix(clean, "O-O-O") || strings.HasPrefix(clean, "O-O") {
		// The starting position's side to move stands in for the live
		// board; exact for the first move, an approximation later in the
		// line. Malformed FENs count as white.
		color, err := board.SideToMove(fen)
		if err != nil {
			color = board.White
		}
		queenside := strings.HasPrefix(clean, "O-O-O")
		switch {
		case queenside && color == board.White:
			return "c1"
		case queenside:
			return "c8"
		case color == board.White:
			return "g1"
		default:
			return "g8"
		}
	}

	squares := squareRe.FindAllString(clean, -1)
	if len(squares) == 0 {
		return ""
	}
	return squares[len(squares)-1]
}
