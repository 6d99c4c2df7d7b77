package session

import (
	"errors"
	"testing"

	"github.com/abhisek/tactix/internal/puzzle"
	"github.com/abhisek/tactix/internal/storage"
)

func testPuzzles() []puzzle.Definition {
	return []puzzle.Definition{
		{
			ID:       "p1",
			Title:    "Smothered mate",
			FEN:      "6rk/6pp/8/6N1/8/8/8/6K1 w - - 0 1",
			Solution: []string{"Nf7+", "Kg8", "Nh6#"},
		},
		{
			ID:       "p2",
			Title:    "Back rank",
			FEN:      "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
			Solution: []string{"Ra8#"},
		},
	}
}

func solveFirst(m *Manager) {
	m.HandleMove("Nf7+")
	m.HandleMove("Kg8")
	m.HandleMove("Nh6#")
}

// flakyBackend passes the startup probe, then fails writes after failAfter
// successful sets.
type flakyBackend struct {
	*storage.Memory
	sets      int
	failAfter int
}

func (f *flakyBackend) Set(key, value string) error {
	f.sets++
	if f.sets > f.failAfter {
		return errors.New("quota exceeded")
	}
	return f.Memory.Set(key, value)
}

func (f *flakyBackend) Name() string { return "flaky" }

func TestNewManagerValidation(t *testing.T) {
	_, err := NewManager(Config{CollectionID: "c"}, storage.NewMemory())
	if err == nil {
		t.Fatal("expected error for empty puzzle list")
	}

	bad := []puzzle.Definition{{ID: "p1"}}
	_, err = NewManager(Config{CollectionID: "c", Puzzles: bad}, storage.NewMemory())
	if err == nil {
		t.Fatal("expected error for puzzle with empty solution")
	}
}

func TestHandleMoveUpdatesState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CollectionID = "basics"
	cfg.Puzzles = testPuzzles()
	m, err := NewManager(cfg, storage.NewMemory())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if res := m.HandleMove("Qh5"); res.Accepted {
		t.Fatal("wrong move accepted")
	}
	st := m.GetState()
	if st.Attempts != 1 || st.MoveCursor != 0 {
		t.Fatalf("state after rejection: attempts=%d cursor=%d", st.Attempts, st.MoveCursor)
	}

	if res := m.HandleMove("Nf7+"); !res.Accepted || res.Cursor != 1 {
		t.Fatalf("accepted move: %+v", res)
	}
	if st := m.GetState(); st.MoveCursor != 1 || st.Attempts != 1 {
		t.Fatalf("state after acceptance: %+v", st)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	backend := storage.NewMemory()

	cfg := DefaultConfig()
	cfg.AutoAdvance = false
	cfg.CollectionID = "basics"
	cfg.Puzzles = testPuzzles()

	m, err := NewManager(cfg, backend)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	solveFirst(m)
	m.AdvanceToNextPuzzle()
	m.HandleMove("Rb8")     // wrong: attempts = 1 on p2
	m.RecordHintUsage()

	m2, err := NewManager(cfg, backend)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	st := m2.GetState()
	if st.CurrentPuzzleID != "p2" {
		t.Fatalf("restored puzzle = %q, want p2", st.CurrentPuzzleID)
	}
	if ids := m2.SolvedPuzzleIDs(); len(ids) != 1 || ids[0] != "p1" {
		t.Fatalf("restored solved set = %v", ids)
	}
	if st.Attempts != 1 || st.HintUsage != 1 {
		t.Fatalf("restored counters: attempts=%d hints=%d", st.Attempts, st.HintUsage)
	}
	if st.MoveCursor != 0 {
		t.Fatalf("cursor should not be persisted, got %d", st.MoveCursor)
	}
	if st.PersistedAt.IsZero() {
		t.Fatal("PersistedAt not set after successful writes")
	}
}

func TestExplicitStartIsAFreshAttempt(t *testing.T) {
	backend := storage.NewMemory()

	cfg := DefaultConfig()
	cfg.AutoAdvance = false
	cfg.CollectionID = "basics"
	cfg.Puzzles = testPuzzles()

	m, _ := NewManager(cfg, backend)
	solveFirst(m)
	m.AdvanceToNextPuzzle()
	m.HandleMove("Rb8")
	m.RecordHintUsage()

	cfg.StartPuzzleID = "p1"
	m2, err := NewManager(cfg, backend)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	st := m2.GetState()
	if st.CurrentPuzzleID != "p1" {
		t.Fatalf("start puzzle = %q, want p1", st.CurrentPuzzleID)
	}
	if st.Attempts != 0 || st.HintUsage != 0 {
		t.Fatalf("explicit start kept counters: attempts=%d hints=%d", st.Attempts, st.HintUsage)
	}
	// Collection-wide progress still carries over.
	if ids := m2.SolvedPuzzleIDs(); len(ids) != 1 || ids[0] != "p1" {
		t.Fatalf("solved set lost: %v", ids)
	}
}

func TestUnresolvedStartFallsBackToFirst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CollectionID = "basics"
	cfg.Puzzles = testPuzzles()
	cfg.StartPuzzleID = "nope"

	m, err := NewManager(cfg, storage.NewMemory())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if m.CurrentPuzzle().ID != "p1" {
		t.Fatalf("fallback puzzle = %q", m.CurrentPuzzle().ID)
	}
}

func TestAutoAdvanceEndToEnd(t *testing.T) {
	var events []Event
	var summaries []Summary

	cfg := DefaultConfig()
	cfg.CollectionID = "basics"
	cfg.Puzzles = testPuzzles()
	cfg.OnEvent = func(ev Event) { events = append(events, ev) }
	cfg.OnComplete = func(s Summary) { summaries = append(summaries, s) }

	m, err := NewManager(cfg, storage.NewMemory())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	events = nil // drop the construction-time load
	solveFirst(m)

	var kinds []EventType
	for _, ev := range events {
		kinds = append(kinds, ev.Type)
	}
	want := []EventType{
		EventMove, EventMove, EventMove, EventComplete, EventLoad,
	}
	if len(kinds) != len(want) {
		t.Fatalf("event kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("event[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}

	st := m.GetState()
	if st.CurrentPuzzleID != "p2" || st.Attempts != 0 || st.HintUsage != 0 {
		t.Fatalf("state after auto-advance: %+v", st)
	}
	if ids := m.SolvedPuzzleIDs(); len(ids) != 1 || ids[0] != "p1" {
		t.Fatalf("solved set = %v", ids)
	}
	if len(summaries) != 0 {
		t.Fatal("summary fired before the collection was done")
	}

	m.HandleMove("Ra8#")
	if len(summaries) != 1 || summaries[0].Solved != 2 || summaries[0].Total != 2 {
		t.Fatalf("summaries = %+v", summaries)
	}
	// Last puzzle: no further load event.
	if events[len(events)-1].Type != EventComplete {
		t.Fatalf("last event = %v", events[len(events)-1].Type)
	}
}

func TestAdvancePastEnd(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoAdvance = false
	cfg.CollectionID = "basics"
	cfg.Puzzles = testPuzzles()

	m, _ := NewManager(cfg, storage.NewMemory())
	if !m.AdvanceToNextPuzzle() {
		t.Fatal("advance from first puzzle failed")
	}
	if m.AdvanceToNextPuzzle() {
		t.Fatal("advanced past the last puzzle")
	}
	if m.CurrentPuzzle().ID != "p2" {
		t.Fatalf("current puzzle = %q", m.CurrentPuzzle().ID)
	}
}

func TestSolvedPuzzleRejectsMoves(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoAdvance = false
	cfg.CollectionID = "basics"
	cfg.Puzzles = testPuzzles()

	m, _ := NewManager(cfg, storage.NewMemory())
	solveFirst(m)

	res := m.HandleMove("Nf7+")
	if res.Accepted || !res.Complete {
		t.Fatalf("post-solve move: %+v", res)
	}
	if st := m.GetState(); st.Attempts != 0 {
		t.Fatalf("post-solve move cost an attempt: %d", st.Attempts)
	}
}

func TestResetCurrentPuzzle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CollectionID = "basics"
	cfg.Puzzles = testPuzzles()

	m, _ := NewManager(cfg, storage.NewMemory())
	m.HandleMove("Nf7+")
	m.HandleMove("zzz")
	m.RecordHintUsage()

	first := m.GetState().AttemptID
	m.ResetCurrentPuzzle()

	st := m.GetState()
	if st.Attempts != 0 || st.HintUsage != 0 || st.MoveCursor != 0 {
		t.Fatalf("state after reset: %+v", st)
	}
	if st.AttemptID == first {
		t.Fatal("reset did not mint a new attempt id")
	}
	if res := m.HandleMove("Nf7+"); !res.Accepted || res.Cursor != 1 {
		t.Fatalf("replay after reset: %+v", res)
	}
}

func TestPersistenceDegradation(t *testing.T) {
	var warns []Event
	cfg := DefaultConfig()
	cfg.AutoAdvance = false
	cfg.CollectionID = "basics"
	cfg.Puzzles = testPuzzles()
	cfg.OnEvent = func(ev Event) {
		if ev.Type == EventPersistenceWarning {
			warns = append(warns, ev)
		}
	}

	// Probe takes one set; construction another. Fail from the first move.
	backend := &flakyBackend{Memory: storage.NewMemory(), failAfter: 2}
	m, err := NewManager(cfg, backend)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	persistedAt := m.GetState().PersistedAt

	res := m.HandleMove("Nf7+")
	if !res.Accepted || res.Cursor != 1 {
		t.Fatalf("functional result wrong under write failure: %+v", res)
	}
	if len(warns) != 1 {
		t.Fatalf("warnings = %d, want exactly 1", len(warns))
	}
	if warns[0].Fallback != "memory" {
		t.Fatalf("fallback = %q", warns[0].Fallback)
	}
	if !m.GetState().PersistedAt.Equal(persistedAt) {
		t.Fatal("PersistedAt advanced despite durable write failure")
	}

	// Play continues on the in-memory copy without further warnings.
	m.HandleMove("Kg8")
	m.RecordHintUsage()
	if len(warns) != 1 {
		t.Fatalf("extra warnings after fallback: %d", len(warns))
	}
}

func TestProbeFailureWarnsOnce(t *testing.T) {
	var warns int
	cfg := DefaultConfig()
	cfg.CollectionID = "basics"
	cfg.Puzzles = testPuzzles()
	cfg.OnWarn = func(error) { warns++ }

	backend := &flakyBackend{Memory: storage.NewMemory(), failAfter: 0}
	m, err := NewManager(cfg, backend)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if warns != 1 {
		t.Fatalf("probe warnings = %d", warns)
	}
	if res := m.HandleMove("Nf7+"); !res.Accepted {
		t.Fatalf("move on fallback backend: %+v", res)
	}
}

func TestDestroyClearsPersistedSession(t *testing.T) {
	backend := storage.NewMemory()
	cfg := DefaultConfig()
	cfg.CollectionID = "basics"
	cfg.Puzzles = testPuzzles()

	m, _ := NewManager(cfg, backend)
	m.HandleMove("Nf7+")
	if _, ok := backend.Get(StorageKey("basics")); !ok {
		t.Fatal("session was never persisted")
	}

	m.Destroy()
	if _, ok := backend.Get(StorageKey("basics")); ok {
		t.Fatal("Destroy left the persisted session behind")
	}

	m2, err := NewManager(cfg, backend)
	if err != nil {
		t.Fatalf("NewManager after destroy: %v", err)
	}
	if ids := m2.SolvedPuzzleIDs(); len(ids) != 0 {
		t.Fatalf("destroyed session restored progress: %v", ids)
	}
}
