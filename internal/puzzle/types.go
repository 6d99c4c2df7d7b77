package puzzle

import "fmt"

// Difficulty buckets puzzles for display and filtering.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Variant is an alternate winning move sequence for a puzzle.
type Variant struct {
	ID    string   `json:"id"`
	Label string   `json:"label,omitempty"`
	Moves []string `json:"moves"`
}

// Definition is a single tactical puzzle: a starting position and one or
// more winning move sequences in SAN. Definitions are immutable once loaded.
type Definition struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	FEN        string     `json:"fen"`
	Solution   []string   `json:"solution"`
	Variants   []Variant  `json:"variants,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	Hint       string     `json:"hint,omitempty"`
	Author     string     `json:"author,omitempty"`
}

// Validate checks the definition's structural invariants.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("puzzle has no id")
	}
	if len(d.Solution) == 0 {
		return fmt.Errorf("puzzle %q: solution is empty", d.ID)
	}
	for _, v := range d.Variants {
		if len(v.Moves) == 0 {
			return fmt.Errorf("puzzle %q: variant %q has no moves", d.ID, v.ID)
		}
	}
	return nil
}

// Collection is an ordered set of puzzles solved as a unit.
type Collection struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Puzzles     []Definition `json:"puzzles"`
}

// Validate checks the collection's structural invariants, including
// puzzle id uniqueness.
func (c *Collection) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("collection has no id")
	}
	if len(c.Puzzles) == 0 {
		return fmt.Errorf("collection %q has no puzzles", c.ID)
	}
	seen := make(map[string]bool, len(c.Puzzles))
	for i := range c.Puzzles {
		if err := c.Puzzles[i].Validate(); err != nil {
			return err
		}
		id := c.Puzzles[i].ID
		if seen[id] {
			return fmt.Errorf("collection %q: duplicate puzzle id %q", c.ID, id)
		}
		seen[id] = true
	}
	return nil
}

// Find returns the puzzle with the given id, or nil.
func (c *Collection) Find(id string) *Definition {
	for i := range c.Puzzles {
		if c.Puzzles[i].ID == id {
			return &c.Puzzles[i]
		}
	}
	return nil
}

// IndexOf returns the position of the puzzle with the given id, or -1.
func (c *Collection) IndexOf(id string) int {
	for i := range c.Puzzles {
		if c.Puzzles[i].ID == id {
			return i
		}
	}
	return -1
}
