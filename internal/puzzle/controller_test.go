package puzzle

import "testing"

func twoLinePuzzle() *Definition {
	return &Definition{
		ID:       "fork-01",
		Title:    "Fork the royal family",
		FEN:      "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4",
		Solution: []string{"Bxf7+", "Qxd8+"},
		Variants: []Variant{
			{ID: "knight-line", Moves: []string{"Bxf7+", "Nxe5+"}},
		},
	}
}

func mustController(t *testing.T, def *Definition) *Controller {
	t.Helper()
	c, err := NewController(def)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func TestNewControllerValidation(t *testing.T) {
	if _, err := NewController(nil); err == nil {
		t.Fatal("expected error for nil definition")
	}
	if _, err := NewController(&Definition{ID: "x", Solution: nil}); err == nil {
		t.Fatal("expected error for empty solution")
	}
	def := &Definition{
		ID:       "x",
		Solution: []string{"e4"},
		Variants: []Variant{{ID: "v1"}},
	}
	if _, err := NewController(def); err == nil {
		t.Fatal("expected error for empty variant")
	}
}

func TestCanonicalLineSolve(t *testing.T) {
	c := mustController(t, twoLinePuzzle())

	res := c.HandleMove("Bxf7+")
	if !res.Accepted || res.Complete || res.Cursor != 1 {
		t.Fatalf("first move: %+v", res)
	}
	res = c.HandleMove("Qxd8+")
	if !res.Accepted || !res.Complete || res.Cursor != 2 {
		t.Fatalf("solving move: %+v", res)
	}
	if !c.Solved() {
		t.Fatal("controller not solved")
	}
}

func TestVariantLineSolve(t *testing.T) {
	c := mustController(t, twoLinePuzzle())

	c.HandleMove("Bxf7+")
	res := c.HandleMove("Nxe5+")
	if !res.Accepted || !res.Complete {
		t.Fatalf("variant solving move: %+v", res)
	}
}

func TestRejectionPreservesProgress(t *testing.T) {
	c := mustController(t, twoLinePuzzle())
	c.HandleMove("Bxf7+")

	res := c.HandleMove("Kh1")
	if res.Accepted || res.Complete {
		t.Fatalf("wrong move accepted: %+v", res)
	}
	if res.Cursor != 1 || c.Cursor() != 1 {
		t.Fatalf("cursor moved on rejection: %d", c.Cursor())
	}
	if c.Attempts() != 1 {
		t.Fatalf("attempts = %d, want 1", c.Attempts())
	}

	// The offending move can be retried without replaying the line.
	res = c.HandleMove("Qxd8+")
	if !res.Accepted || !res.Complete {
		t.Fatalf("retry after rejection: %+v", res)
	}
	if c.Attempts() != 1 {
		t.Fatalf("attempts changed on acceptance: %d", c.Attempts())
	}
}

func TestActiveLinesNarrowMonotonically(t *testing.T) {
	c := mustController(t, twoLinePuzzle())
	if c.ActiveLines() != 2 {
		t.Fatalf("initial active lines = %d", c.ActiveLines())
	}

	c.HandleMove("Bxf7+")
	if c.ActiveLines() != 2 {
		t.Fatalf("shared prefix should keep both lines: %d", c.ActiveLines())
	}

	// Rejection must not narrow the set.
	c.HandleMove("a3")
	if c.ActiveLines() != 2 {
		t.Fatalf("rejection narrowed active lines: %d", c.ActiveLines())
	}

	c.HandleMove("Nxe5+")
	if c.ActiveLines() != 1 {
		t.Fatalf("divergence should narrow to one line: %d", c.ActiveLines())
	}
}

func TestAtMostOneSolve(t *testing.T) {
	c := mustController(t, twoLinePuzzle())
	c.HandleMove("Bxf7+")
	c.HandleMove("Qxd8+")

	cursor := c.Cursor()
	attempts := c.Attempts()

	for _, m := range []string{"Qxd8+", "e4", "Bxf7+"} {
		res := c.HandleMove(m)
		if res.Accepted || !res.Complete {
			t.Fatalf("post-solve move %q: %+v", m, res)
		}
	}
	if c.Cursor() != cursor || c.Attempts() != attempts {
		t.Fatal("post-solve moves mutated state")
	}
}

func TestResetReplaysCleanly(t *testing.T) {
	c := mustController(t, twoLinePuzzle())
	c.HandleMove("Bxf7+")
	c.HandleMove("garbage")
	c.HandleMove("Nxe5+")

	c.Reset()
	if c.Cursor() != 0 || c.Attempts() != 0 || c.Solved() {
		t.Fatal("reset did not restore initial counters")
	}
	if c.ActiveLines() != 2 {
		t.Fatalf("reset did not restore active lines: %d", c.ActiveLines())
	}

	if res := c.HandleMove("Bxf7+"); !res.Accepted {
		t.Fatalf("canonical replay rejected: %+v", res)
	}
	if res := c.HandleMove("Qxd8+"); !res.Complete {
		t.Fatalf("canonical replay did not complete: %+v", res)
	}
}

func TestPeekNextMoveAnchorsToCanonical(t *testing.T) {
	c := mustController(t, twoLinePuzzle())

	next, ok := c.PeekNextMove()
	if !ok || next != "Bxf7+" {
		t.Fatalf("peek = %q, %v", next, ok)
	}

	c.HandleMove("Bxf7+")
	next, ok = c.PeekNextMove()
	if !ok || next != "Qxd8+" {
		t.Fatalf("peek after one move = %q, %v", next, ok)
	}

	c.HandleMove("Qxd8+")
	if _, ok := c.PeekNextMove(); ok {
		t.Fatal("peek should fail once solved")
	}
}

func TestLiteralNotationMatching(t *testing.T) {
	def := &Definition{
		ID:       "promo-01",
		FEN:      "8/4P1k1/8/8/8/8/5K2/8 w - - 0 1",
		Solution: []string{"e8=N", "O-O-O", "exd6 e.p."},
	}
	c := mustController(t, def)

	// Whitespace is normalized, punctuation is matched verbatim.
	if res := c.HandleMove("  e8=N "); !res.Accepted {
		t.Fatalf("underpromotion rejected: %+v", res)
	}
	if res := c.HandleMove("e8=Q"); res.Accepted {
		t.Fatal("wrong promotion piece accepted")
	}
	if res := c.HandleMove("O-O-O"); !res.Accepted {
		t.Fatal("castling rejected")
	}
	if res := c.HandleMove("exd6   e.p."); !res.Accepted || !res.Complete {
		t.Fatal("en passant suffix not matched after whitespace collapse")
	}
}

func TestNormalizeSAN(t *testing.T) {
	cases := map[string]string{
		"  Nf3  ":    "Nf3",
		"e8=Q#":      "e8=Q#",
		"exd6  e.p.": "exd6 e.p.",
		"\tO-O-O+\n": "O-O-O+",
		"Qxd8+":      "Qxd8+",
	}
	for in, want := range cases {
		if got := NormalizeSAN(in); got != want {
			t.Errorf("NormalizeSAN(%q) = %q, want %q", in, got, want)
		}
	}
}
