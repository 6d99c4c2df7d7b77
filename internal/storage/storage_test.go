package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

// failingBackend rejects every write, for probe and fallback tests.
type failingBackend struct {
	Memory
}

func (f *failingBackend) Set(key, value string) error {
	return errors.New("quota exceeded")
}

func (f *failingBackend) Name() string { return "failing" }

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	if _, ok := m.Get("missing"); ok {
		t.Fatal("unexpected hit on empty store")
	}
	if err := m.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok := m.Get("k"); !ok || v != "v" {
		t.Fatalf("Get = %q, %v", v, ok)
	}
	m.Remove("k")
	if _, ok := m.Get("k"); ok {
		t.Fatal("key survived Remove")
	}
}

func TestProbe(t *testing.T) {
	if !Probe(NewMemory()) {
		t.Fatal("memory backend failed probe")
	}
	if Probe(nil) {
		t.Fatal("nil backend passed probe")
	}
	if Probe(&failingBackend{}) {
		t.Fatal("failing backend passed probe")
	}
}

func TestProbeRemovesSentinel(t *testing.T) {
	m := NewMemory()
	Probe(m)
	if _, ok := m.Get(probeKey); ok {
		t.Fatal("probe left its sentinel key behind")
	}
}

func TestSelectFallsBackToMemory(t *testing.T) {
	b := Select(&failingBackend{})
	if b.Name() != "memory" {
		t.Fatalf("Select returned %q, want memory fallback", b.Name())
	}

	m := NewMemory()
	if got := Select(m); got != Backend(m) {
		t.Fatal("Select replaced a healthy backend")
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "kv.db")
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if !Probe(s) {
		t.Fatal("sqlite backend failed probe")
	}

	if err := s.Set("puzzle-mode:alpha", `{"attempts":1}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("puzzle-mode:alpha", `{"attempts":2}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, ok := s.Get("puzzle-mode:alpha"); !ok || v != `{"attempts":2}` {
		t.Fatalf("Get = %q, %v", v, ok)
	}

	s.Set("puzzle-mode:beta", "{}")
	s.Set("other:key", "{}")
	keys, err := s.Keys("puzzle-mode:")
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	want := []string{"puzzle-mode:alpha", "puzzle-mode:beta"}
	if len(keys) != len(want) || keys[0] != want[0] || keys[1] != want[1] {
		t.Fatalf("Keys = %v, want %v", keys, want)
	}

	s.Remove("puzzle-mode:alpha")
	if _, ok := s.Get("puzzle-mode:alpha"); ok {
		t.Fatal("key survived Remove")
	}
}
