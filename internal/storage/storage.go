// Package storage is the durable key/value layer behind session
// persistence. A Backend is chosen once at startup: the sqlite store when a
// probe round-trip succeeds, an in-process map otherwise. Callers never
// branch on which one they got.
package storage

// Backend is the minimal store the session layer needs. Get reports a miss
// as (_, false); read failures in an implementation are treated as misses.
type Backend interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string)

	// Name identifies the backend in persistence warnings.
	Name() string
}

// probeKey is the sentinel used for the startup availability round-trip.
const probeKey = "tactix:probe"

// Probe verifies a backend with a write/read/delete round-trip on a
// sentinel key.
func Probe(b Backend) bool {
	if b == nil {
		return false
	}
	if err := b.Set(probeKey, "ok"); err != nil {
		return false
	}
	v, ok := b.Get(probeKey)
	b.Remove(probeKey)
	return ok && v == "ok"
}

// Select returns durable when it passes the probe, otherwise a fresh
// in-memory backend.
func Select(durable Backend) Backend {
	if Probe(durable) {
		return durable
	}
	return NewMemory()
}
