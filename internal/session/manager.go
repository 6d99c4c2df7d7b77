// Package session owns the traversal of one puzzle collection: it wraps a
// puzzle.Controller for the current puzzle, persists a snapshot after every
// mutating call, and reports progress to the host through events. All
// mutations funnel through the Manager; operations are synchronous and
// strictly ordered by call order.
package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/tactix/internal/puzzle"
	"github.com/abhisek/tactix/internal/storage"
)

// KeyPrefix scopes persisted sessions in the backing store.
const KeyPrefix = "puzzle-mode:"

// StorageKey returns the persisted-session key for a collection.
func StorageKey(collectionID string) string {
	return KeyPrefix + collectionID
}

// Config describes a session to construct.
type Config struct {
	CollectionID string
	Puzzles      []puzzle.Definition

	AutoAdvance bool
	AllowHints  bool

	// StartPuzzleID forces the starting puzzle. It overrides any persisted
	// position and resets the per-puzzle counters: an explicit start is a
	// fresh attempt, though collection-wide progress carries over.
	StartPuzzleID string

	// OnEvent receives every session event. Optional.
	OnEvent func(Event)

	// OnComplete fires when the final unsolved puzzle in the collection is
	// solved. Optional.
	OnComplete func(Summary)

	// OnWarn receives persistence errors in addition to the
	// puzzle:persistence-warning event. Optional.
	OnWarn func(error)
}

// DefaultConfig returns a Config with auto-advance and hints enabled.
func DefaultConfig() Config {
	return Config{AutoAdvance: true, AllowHints: true}
}

// Manager drives one collection traversal over a durable backend. It is
// not safe for concurrent use, and two sessions for the same collection in
// different processes will silently overwrite each other's snapshot: there
// is no cross-writer arbitration.
type Manager struct {
	cfg        Config
	collection puzzle.Collection
	backend    storage.Backend
	key        string

	ctrl      *puzzle.Controller
	index     int
	state     State
	startedAt time.Time

	// attemptsBase carries restored attempts; the live count is
	// attemptsBase plus the controller's.
	attemptsBase int
}

// NewManager builds a session for cfg backed by the given store. The
// backend is probed once; an unavailable store degrades to in-memory. The
// persisted session for the collection, when present, is restored.
// Construction fails on an empty puzzle list or an invalid puzzle.
func NewManager(cfg Config, backend storage.Backend) (*Manager, error) {
	if cfg.CollectionID == "" {
		return nil, fmt.Errorf("session: collection id is empty")
	}
	if len(cfg.Puzzles) == 0 {
		return nil, fmt.Errorf("session: collection %q has no puzzles", cfg.CollectionID)
	}

	coll := puzzle.Collection{ID: cfg.CollectionID, Puzzles: cfg.Puzzles}
	if err := coll.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	chosen := storage.Select(backend)
	probeFailed := backend != nil && chosen != backend

	m := &Manager{
		cfg:        cfg,
		collection: coll,
		backend:    chosen,
		key:        StorageKey(cfg.CollectionID),
		state: State{
			CollectionID:  cfg.CollectionID,
			SolvedPuzzles: make(map[string]bool),
			AutoAdvance:   cfg.AutoAdvance,
		},
	}

	snap, restored := m.load()
	if restored {
		for _, id := range snap.SolvedPuzzles {
			if coll.Find(id) != nil {
				m.state.SolvedPuzzles[id] = true
			}
		}
	}

	// Starting puzzle: explicit override, then persisted position, then
	// the first puzzle. Unresolvable ids fall back to index 0.
	m.index = 0
	switch {
	case cfg.StartPuzzleID != "":
		if i := coll.IndexOf(cfg.StartPuzzleID); i >= 0 {
			m.index = i
		}
	case restored && snap.CurrentPuzzleID != "":
		if i := coll.IndexOf(snap.CurrentPuzzleID); i >= 0 {
			m.index = i
		}
	}

	// Per-puzzle counters survive a plain restore but not an explicit
	// start at a different puzzle.
	if restored && (cfg.StartPuzzleID == "" || cfg.StartPuzzleID == snap.CurrentPuzzleID) {
		m.attemptsBase = snap.Attempts
		m.state.HintUsage = snap.HintUsage
	}

	if err := m.bindCurrent(); err != nil {
		return nil, err
	}

	if probeFailed {
		m.warn(fmt.Errorf("session: storage backend %q failed probe", backend.Name()))
	}
	m.persist()
	m.emitLoad()
	return m, nil
}

// bindCurrent builds a fresh controller for the puzzle at m.index.
func (m *Manager) bindCurrent() error {
	def := &m.collection.Puzzles[m.index]
	ctrl, err := puzzle.NewController(def)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	m.ctrl = ctrl
	m.state.CurrentPuzzleID = def.ID
	m.state.MoveCursor = 0
	m.state.AttemptID = uuid.NewString()
	m.startedAt = time.Now()
	return nil
}

// HandleMove submits one validated SAN move for the current puzzle. The
// snapshot is persisted whether or not the move is accepted, so attempts
// are never lost. On completion the puzzle joins the solved set and, when
// auto-advance is on, the next puzzle loads immediately.
func (m *Manager) HandleMove(san string) puzzle.MoveResult {
	alreadySolved := m.ctrl.Solved()

	res := m.ctrl.HandleMove(san)
	m.state.MoveCursor = res.Cursor
	m.state.Attempts = m.attemptsBase + m.ctrl.Attempts()

	newlySolved := res.Complete && !alreadySolved
	if newlySolved {
		m.state.SolvedPuzzles[m.state.CurrentPuzzleID] = true
	}

	m.persist()
	m.emit(Event{
		Type:     EventMove,
		Move:     puzzle.NormalizeSAN(san),
		Result:   res,
		Attempts: m.state.Attempts,
	})

	if newlySolved {
		m.emit(Event{
			Type:     EventComplete,
			PuzzleID: m.state.CurrentPuzzleID,
			Attempts: m.state.Attempts,
			Duration: time.Since(m.startedAt),
		})
		if len(m.state.SolvedPuzzles) == len(m.collection.Puzzles) && m.cfg.OnComplete != nil {
			m.cfg.OnComplete(Summary{
				CollectionID: m.collection.ID,
				Solved:       len(m.state.SolvedPuzzles),
				Total:        len(m.collection.Puzzles),
			})
		}
		m.AutoAdvanceIfNeeded()
	}

	return res
}

// ResetCurrentPuzzle restarts the current puzzle: controller state and
// per-puzzle counters return to zero. Collection-wide progress is kept.
func (m *Manager) ResetCurrentPuzzle() {
	m.ctrl.Reset()
	m.attemptsBase = 0
	m.state.Attempts = 0
	m.state.HintUsage = 0
	m.state.MoveCursor = 0
	m.state.AttemptID = uuid.NewString()
	m.startedAt = time.Now()
	m.persist()
}

// HintsAllowed reports whether the session was configured to serve hints.
func (m *Manager) HintsAllowed() bool { return m.cfg.AllowHints }

// RecordHintUsage increments the hint counter for the current puzzle,
// persists, and returns the new count. Every hint costs a tick, useful or
// not.
func (m *Manager) RecordHintUsage() int {
	m.state.HintUsage++
	m.persist()
	return m.state.HintUsage
}

// PublishHintEvent emits puzzle:hint on behalf of the hint service.
func (m *Manager) PublishHintEvent(kind, payload string, usage int) {
	m.emit(Event{
		Type:        EventHint,
		HintKind:    kind,
		HintPayload: payload,
		HintUsage:   usage,
	})
}

// AutoAdvanceIfNeeded advances to the next puzzle when auto-advance is
// configured and the current puzzle is solved. Otherwise it is a no-op.
func (m *Manager) AutoAdvanceIfNeeded() bool {
	if !m.cfg.AutoAdvance || !m.ctrl.Solved() {
		return false
	}
	return m.AdvanceToNextPuzzle()
}

// AdvanceToNextPuzzle moves to the next puzzle in the collection,
// returning false when already at the last. Per-puzzle counters reset and
// puzzle:load fires for the new puzzle.
func (m *Manager) AdvanceToNextPuzzle() bool {
	if m.index+1 >= len(m.collection.Puzzles) {
		return false
	}
	m.index++
	m.attemptsBase = 0
	m.state.Attempts = 0
	m.state.HintUsage = 0
	if err := m.bindCurrent(); err != nil {
		// Puzzles were validated at construction; a bind failure here
		// means the collection mutated underneath us.
		m.warn(err)
		m.index--
		return false
	}
	m.persist()
	m.emitLoad()
	return true
}

// CurrentPuzzle returns the active puzzle definition.
func (m *Manager) CurrentPuzzle() *puzzle.Definition {
	return &m.collection.Puzzles[m.index]
}

// GetState returns a copy of the session state.
func (m *Manager) GetState() *State {
	m.state.Attempts = m.attemptsBase + m.ctrl.Attempts()
	return m.state.clone()
}

// CollectionSize returns the number of puzzles in the collection.
func (m *Manager) CollectionSize() int {
	return len(m.collection.Puzzles)
}

// SolvedPuzzleIDs returns the solved set as a sorted slice.
func (m *Manager) SolvedPuzzleIDs() []string {
	return m.state.SolvedIDs()
}

// PeekNextMove returns the canonical line's next expected move.
func (m *Manager) PeekNextMove() (string, bool) {
	return m.ctrl.PeekNextMove()
}

// Solved reports whether the current puzzle is solved.
func (m *Manager) Solved() bool { return m.ctrl.Solved() }

// Destroy tears the session down and clears its persisted snapshot.
func (m *Manager) Destroy() {
	m.ctrl.Reset()
	m.attemptsBase = 0
	m.state.Attempts = 0
	m.state.HintUsage = 0
	m.state.MoveCursor = 0
	m.state.SolvedPuzzles = make(map[string]bool)
	m.backend.Remove(m.key)
}

// load reads and decodes the persisted snapshot for this collection.
// A malformed snapshot is treated as absent.
func (m *Manager) load() (Snapshot, bool) {
	raw, ok := m.backend.Get(m.key)
	if !ok {
		return Snapshot{}, false
	}
	snap, err := DecodeSnapshot(raw)
	if err != nil {
		return Snapshot{}, false
	}
	return snap, true
}

// DecodeSnapshot parses a persisted session value.
func DecodeSnapshot(raw string) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// persist writes the current snapshot. On failure the session falls back
// to in-memory storage, warns exactly once for the failing write, and
// leaves PersistedAt untouched.
func (m *Manager) persist() {
	now := time.Now().UTC()
	snap := Snapshot{
		CurrentPuzzleID: m.state.CurrentPuzzleID,
		SolvedPuzzles:   m.state.SolvedIDs(),
		AutoAdvance:     m.state.AutoAdvance,
		Attempts:        m.attemptsBase + m.ctrl.Attempts(),
		HintUsage:       m.state.HintUsage,
		PersistedAt:     now.Format(time.RFC3339),
	}

	data, err := json.Marshal(snap)
	if err != nil {
		m.warn(fmt.Errorf("serialize session: %w", err))
		return
	}

	if err := m.backend.Set(m.key, string(data)); err != nil {
		if m.backend.Name() != "memory" {
			m.backend = storage.NewMemory()
			m.backend.Set(m.key, string(data))
		}
		m.warn(fmt.Errorf("persist session: %w", err))
		return
	}

	m.state.PersistedAt = now
}

func (m *Manager) warn(err error) {
	if m.cfg.OnWarn != nil {
		m.cfg.OnWarn(err)
	}
	m.emit(Event{
		Type:     EventPersistenceWarning,
		Err:      err,
		Fallback: m.backend.Name(),
	})
}

func (m *Manager) emitLoad() {
	m.emit(Event{
		Type:   EventLoad,
		Puzzle: m.CurrentPuzzle(),
		State:  m.GetState(),
	})
}

func (m *Manager) emit(ev Event) {
	if m.cfg.OnEvent != nil {
		m.cfg.OnEvent(ev)
	}
}
