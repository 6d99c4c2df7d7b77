package session

import (
	"sort"
	"time"
)

// State is the host-visible projection of a running session. The
// controller's active-line set is deliberately absent: it is rebuilt from
// the puzzle definition, never persisted.
type State struct {
	CollectionID    string
	CurrentPuzzleID string

	// AttemptID identifies the current run at the current puzzle. A new id
	// is minted on load, reset, and advance.
	AttemptID string

	// MoveCursor counts moves accepted on the current puzzle. Not
	// persisted: a restored session replays the puzzle from the start.
	MoveCursor int

	// Attempts counts rejected moves on the current puzzle since the last
	// reset, surviving a restore.
	Attempts int

	// SolvedPuzzles is the collection-wide set of solved puzzle ids.
	SolvedPuzzles map[string]bool

	// HintUsage counts hints taken on the current puzzle.
	HintUsage int

	AutoAdvance bool

	// PersistedAt is the time of the last successful snapshot write; zero
	// until one succeeds.
	PersistedAt time.Time
}

// SolvedIDs returns the solved set as a sorted slice.
func (s *State) SolvedIDs() []string {
	ids := make([]string, 0, len(s.SolvedPuzzles))
	for id := range s.SolvedPuzzles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *State) clone() *State {
	c := *s
	c.SolvedPuzzles = make(map[string]bool, len(s.SolvedPuzzles))
	for id := range s.SolvedPuzzles {
		c.SolvedPuzzles[id] = true
	}
	return &c
}

// Snapshot is the persisted wire form, one JSON object per collection.
// Exported so read-only tooling can decode stored sessions.
type Snapshot struct {
	CurrentPuzzleID string   `json:"currentPuzzleId"`
	SolvedPuzzles   []string `json:"solvedPuzzles"`
	AutoAdvance     bool     `json:"autoAdvance"`
	Attempts        int      `json:"attempts"`
	HintUsage       int      `json:"hintUsage"`
	PersistedAt     string   `json:"persistedAt,omitempty"`
}
