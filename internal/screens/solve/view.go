package solve

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tactix/internal/ui/components"
	"github.com/abhisek/tactix/internal/ui/theme"
)

// Title returns the header title for the current puzzle.
func (m Model) Title() string {
	return m.title
}

// Progress returns solved and total puzzle counts for the header.
func (m Model) Progress() (solved, total int) {
	state := m.mgr.GetState()
	return len(state.SolvedPuzzles), m.mgr.CollectionSize()
}

// View renders the screen content into the given area.
func (m Model) View(width, height int) string {
	boardPane := components.RenderBoard(m.grid, m.hintSquare)

	var lines []string

	if m.finished {
		lines = append(lines,
			theme.Correct.Render("Collection complete!"),
			theme.Subtitle.Render("Every puzzle is solved. ^R replays the current one."),
			"")
	}

	if m.feedback != "" {
		style := theme.Correct
		if !m.feedbackOK {
			style = theme.Incorrect
		}
		lines = append(lines, style.Render(m.feedback))
	}

	if m.hintText != "" {
		lines = append(lines, theme.Hint.Render("Hint: "+m.hintText))
	}
	if m.hintSquare != "" {
		lines = append(lines, theme.Hint.Render("Look at "+m.hintSquare+"."))
	}
	if m.coachBusy {
		lines = append(lines, theme.Subtitle.Render("Coach is thinking..."))
	}
	if m.coachText != "" {
		lines = append(lines, theme.Body.Render(wrap("Coach: "+m.coachText, 44)))
	}
	if m.warning != "" {
		lines = append(lines, theme.Warning.Render(m.warning))
	}

	state := m.mgr.GetState()
	lines = append(lines, "",
		theme.Subtitle.Render(fmt.Sprintf("attempts %d   hints %d", state.Attempts, state.HintUsage)),
		"",
		m.input.View())

	sidePane := lipgloss.JoinVertical(lipgloss.Left, lines...)

	card := theme.Card.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		boardPane,
		lipgloss.NewStyle().PaddingLeft(3).Width(50).Render(sidePane),
	))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// wrap soft-wraps text to the given width using lipgloss measurement.
func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
