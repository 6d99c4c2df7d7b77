package solve

import "sync"

// coachMsg delivers the coach's advice (or failure) back to the model.
type coachMsg struct {
	advice string
	err    error
}

// eventLog buffers session events emitted during synchronous manager
// calls so the model can react to them on its next pass.
type eventLog struct {
	mu     sync.Mutex
	events []any
}

func (l *eventLog) push(ev any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) drain() []any {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.events
	l.events = nil
	return out
}
