package session

import (
	"time"

	"github.com/abhisek/tactix/internal/puzzle"
)

// EventType discriminates session events delivered to the host.
type EventType string

const (
	// EventLoad fires when a puzzle becomes current: at construction and
	// after every advance. Carries the puzzle and a state snapshot.
	EventLoad EventType = "puzzle:load"

	// EventMove fires on every submitted move, accepted or not.
	EventMove EventType = "puzzle:move"

	// EventHint fires when the hint service produces a hint.
	EventHint EventType = "puzzle:hint"

	// EventComplete fires once when the current puzzle is solved.
	EventComplete EventType = "puzzle:complete"

	// EventPersistenceWarning fires when a snapshot write fails and the
	// session falls back to in-memory storage.
	EventPersistenceWarning EventType = "puzzle:persistence-warning"
)

// Event is a discrete notification from the session to the host. Only the
// fields relevant to Type are set.
type Event struct {
	Type EventType

	// Load.
	Puzzle *puzzle.Definition
	State  *State

	// Move.
	Move   string
	Result puzzle.MoveResult

	// Hint.
	HintKind    string
	HintPayload string
	HintUsage   int

	// Complete.
	PuzzleID string
	Attempts int
	Duration time.Duration

	// Persistence warning.
	Err      error
	Fallback string
}

// Summary reports collection progress when the final puzzle is solved.
type Summary struct {
	CollectionID string
	Solved       int
	Total        int
}
