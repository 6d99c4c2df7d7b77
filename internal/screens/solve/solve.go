// Package solve is the interactive solving screen: board, SAN input,
// hints, and optional coach advice.
package solve

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tactix/internal/board"
	"github.com/abhisek/tactix/internal/hint"
	"github.com/abhisek/tactix/internal/session"
	"github.com/abhisek/tactix/internal/ui/components"
	"github.com/abhisek/tactix/internal/ui/layout"
)

const coachTimeout = 20 * time.Second

// Model is the solving screen. It owns the session manager and reacts to
// the events the manager emits during its synchronous calls.
type Model struct {
	mgr    *session.Manager
	hints  *hint.Service
	coach  *hint.Coach // nil when no provider is configured
	events *eventLog

	input components.TextInput

	grid       board.Grid
	title      string
	hintSquare string
	hintText   string
	coachText  string
	coachBusy  bool
	feedback   string
	feedbackOK bool
	warning    string
	finished   bool
}

// Events returns a fresh event log for wiring into session.Config.OnEvent
// before the manager and screen are constructed.
func Events() *eventLog {
	return &eventLog{}
}

// Sink returns the OnEvent callback feeding this log.
func (l *eventLog) Sink() func(session.Event) {
	return func(ev session.Event) { l.push(ev) }
}

// Done returns the OnComplete callback feeding this log.
func (l *eventLog) Done() func(session.Summary) {
	return func(s session.Summary) { l.push(s) }
}

// New creates the solving screen. events must be the log the session
// manager's callbacks write to; the load event from construction is
// already buffered there and is applied here.
func New(mgr *session.Manager, hints *hint.Service, coach *hint.Coach, events *eventLog) Model {
	m := Model{
		mgr:    mgr,
		hints:  hints,
		coach:  coach,
		events: events,
		input:  components.NewTextInput("Your move (SAN)...", 12),
	}
	m.drainEvents()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.input.Init()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case coachMsg:
		m.coachBusy = false
		if msg.err != nil {
			m.coachText = ""
			m.feedback = "Coach unavailable: " + msg.err.Error()
			m.feedbackOK = false
		} else {
			m.coachText = msg.advice
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submitMove()

	case "ctrl+h":
		if h := m.hints.RequestHint(hint.KindText); h != nil {
			m.hintText = h.Text
		}
		m.drainEvents()
		return m, nil

	case "ctrl+g":
		if h := m.hints.RequestHint(hint.KindOriginHighlight); h != nil {
			m.hintSquare = h.Square
			if h.Square == "" {
				m.hintText = "No square to point at for this move."
			}
		}
		m.drainEvents()
		return m, nil

	case "ctrl+e":
		return m.askCoach()

	case "ctrl+r":
		m.mgr.ResetCurrentPuzzle()
		m.clearPuzzleNotices()
		m.feedback = "Puzzle reset."
		m.feedbackOK = true
		m.input.Reset()
		m.drainEvents()
		return m, nil

	case "ctrl+n":
		if m.mgr.AdvanceToNextPuzzle() {
			m.input.Reset()
		} else {
			m.feedback = "Already at the last puzzle."
			m.feedbackOK = false
		}
		m.drainEvents()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitMove hands the typed SAN to the session manager.
func (m Model) submitMove() (Model, tea.Cmd) {
	san := strings.TrimSpace(m.input.Value())
	if san == "" {
		return m, nil
	}

	m.mgr.HandleMove(san)
	m.input.Reset()
	m.drainEvents()
	return m, nil
}

// askCoach requests a text hint and asks the coach to elaborate on it
// asynchronously.
func (m Model) askCoach() (Model, tea.Cmd) {
	if m.coach == nil {
		m.feedback = "Coach is not configured. Set an LLM API key to enable it."
		m.feedbackOK = false
		return m, nil
	}
	if m.coachBusy {
		return m, nil
	}

	h := m.hints.RequestHint(hint.KindText)
	m.drainEvents()
	if h == nil {
		return m, nil
	}

	m.coachBusy = true
	coach := m.coach
	puz := m.mgr.CurrentPuzzle()
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), coachTimeout)
		defer cancel()
		advice, err := coach.Explain(ctx, puz, h)
		return coachMsg{advice: advice, err: err}
	}
}

// drainEvents applies buffered session events to the view state.
func (m *Model) drainEvents() {
	for _, raw := range m.events.drain() {
		switch ev := raw.(type) {
		case session.Summary:
			m.finished = true

		case session.Event:
			switch ev.Type {
			case session.EventLoad:
				m.clearPuzzleNotices()
				m.feedback = ""
				m.title = ev.Puzzle.Title
				if m.title == "" {
					m.title = ev.Puzzle.ID
				}
				if grid, err := board.ParseGrid(ev.Puzzle.FEN); err == nil {
					m.grid = grid
				}

			case session.EventMove:
				if ev.Result.Accepted {
					m.hintSquare = ""
					if ev.Result.Complete {
						m.feedback = "Solved!"
					} else {
						m.feedback = fmt.Sprintf("%s is correct. Keep going.", ev.Move)
					}
					m.feedbackOK = true
				} else {
					m.feedback = fmt.Sprintf("%s is not it. Try again.", ev.Move)
					m.feedbackOK = false
				}

			case session.EventComplete:
				m.feedback = fmt.Sprintf("Solved in %d attempts.", ev.Attempts)
				m.feedbackOK = true

			case session.EventPersistenceWarning:
				m.warning = fmt.Sprintf("Progress is not being saved (%s fallback).", ev.Fallback)
			}
		}
	}
}

func (m *Model) clearPuzzleNotices() {
	m.hintSquare = ""
	m.hintText = ""
	m.coachText = ""
	m.coachBusy = false
}

// KeyHints lists the footer bindings for this screen.
func (m Model) KeyHints() []layout.KeyHint {
	if m.finished {
		return []layout.KeyHint{
			{Key: "^R", Description: "Replay puzzle"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "^H", Description: "Hint"},
		{Key: "^G", Description: "Square"},
		{Key: "^E", Description: "Coach"},
		{Key: "^R", Description: "Reset"},
		{Key: "^N", Description: "Next"},
		{Key: "Esc", Description: "Quit"},
	}
}
