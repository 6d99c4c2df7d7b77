package hint

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/tactix/internal/llm"
	"github.com/abhisek/tactix/internal/puzzle"
)

// coachSchema constrains coach output to a single advice string.
var coachSchema = &llm.Schema{
	Name:        "coach-advice",
	Description: "A short coaching nudge for a chess tactics puzzle",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"advice": map[string]any{
				"type":        "string",
				"description": "2-3 sentences pointing at the tactical idea without naming the exact move",
			},
		},
		"required":             []any{"advice"},
		"additionalProperties": false,
	},
}

const coachSystem = "You are a patient chess coach. Players ask for help on " +
	"tactics puzzles. Point at the idea (the loose piece, the weak square, " +
	"the overloaded defender) rather than the move itself. Never spell out " +
	"the solution in notation."

// Coach elaborates a plain hint into a short explanation via an LLM. The
// deterministic hint path never depends on it: a session without a
// provider simply has no coach.
type Coach struct {
	provider llm.Provider
}

// NewCoach creates a Coach over the given provider.
func NewCoach(provider llm.Provider) *Coach {
	return &Coach{provider: provider}
}

// Explain asks the coach to expand on a hint for the given puzzle.
func (c *Coach) Explain(ctx context.Context, puz *puzzle.Definition, h *Hint) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Position (FEN): %s\n", puz.FEN)
	if puz.Title != "" {
		fmt.Fprintf(&sb, "Puzzle: %s\n", puz.Title)
	}
	if len(puz.Tags) > 0 {
		fmt.Fprintf(&sb, "Themes: %s\n", strings.Join(puz.Tags, ", "))
	}
	switch {
	case h != nil && h.Square != "":
		fmt.Fprintf(&sb, "The player was shown the square %s.\n", h.Square)
	case h != nil && h.Text != "":
		fmt.Fprintf(&sb, "The player was shown the hint: %s\n", h.Text)
	}
	sb.WriteString("Help them find the idea.")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      coachSystem,
		Prompt:      sb.String(),
		Schema:      coachSchema,
		MaxTokens:   300,
		Temperature: 0.4,
	})
	if err != nil {
		return "", fmt.Errorf("coach: %w", err)
	}

	var out struct {
		Advice string `json:"advice"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("coach: decode advice: %w", err)
	}

	advice := strings.TrimSpace(out.Advice)
	if advice == "" {
		return "", fmt.Errorf("coach: empty advice")
	}
	return advice, nil
}
