// Package app wires a puzzle session into the terminal UI and runs it.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tactix/internal/hint"
	"github.com/abhisek/tactix/internal/llm"
	"github.com/abhisek/tactix/internal/puzzle"
	"github.com/abhisek/tactix/internal/screens/solve"
	"github.com/abhisek/tactix/internal/session"
	"github.com/abhisek/tactix/internal/storage"
	"github.com/abhisek/tactix/internal/ui/layout"
)

// Options configures a solving run.
type Options struct {
	Collection    puzzle.Collection
	Backend       storage.Backend
	StartPuzzleID string
	AutoAdvance   bool
	AllowHints    bool

	// Provider enables the coach when non-nil.
	Provider llm.Provider
}

// appModel is the root Bubble Tea model.
type appModel struct {
	solve  solve.Model
	width  int
	height int
}

func newAppModel(opts Options) (appModel, error) {
	events := solve.Events()

	cfg := session.Config{
		CollectionID:  opts.Collection.ID,
		Puzzles:       opts.Collection.Puzzles,
		AutoAdvance:   opts.AutoAdvance,
		AllowHints:    opts.AllowHints,
		StartPuzzleID: opts.StartPuzzleID,
		OnEvent:       events.Sink(),
		OnComplete:    events.Done(),
	}

	mgr, err := session.NewManager(cfg, opts.Backend)
	if err != nil {
		return appModel{}, err
	}

	var coach *hint.Coach
	if opts.Provider != nil {
		coach = hint.NewCoach(opts.Provider)
	}

	screen := solve.New(mgr, hint.NewService(mgr), coach, events)
	return appModel{solve: screen}, nil
}

func (m appModel) Init() tea.Cmd {
	return m.solve.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.solve, cmd = m.solve.Update(msg)
	return m, cmd
}

func (m appModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	solved, total := m.solve.Progress()
	header := layout.RenderHeader(m.solve.Title(), solved, total, m.width)
	footer := layout.RenderFooter(m.solve.KeyHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.solve.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program for the given session options.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
