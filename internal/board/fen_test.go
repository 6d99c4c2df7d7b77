package board

import "testing"

func TestSideToMove(t *testing.T) {
	c, err := SideToMove(StartingFEN)
	if err != nil || c != White {
		t.Fatalf("starting position: %v, %v", c, err)
	}

	c, err = SideToMove("8/8/8/8/8/8/8/K6k b - - 0 1")
	if err != nil || c != Black {
		t.Fatalf("black to move: %v, %v", c, err)
	}

	if _, err := SideToMove("nonsense"); err == nil {
		t.Fatal("expected error for truncated fen")
	}
	if _, err := SideToMove("8/8/8/8/8/8/8/8 x - - 0 1"); err == nil {
		t.Fatal("expected error for bad color field")
	}
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(StartingFEN)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if g[0][0] != 'r' || g[0][4] != 'k' {
		t.Fatalf("rank 8 wrong: %q %q", g[0][0], g[0][4])
	}
	if g[7][4] != 'K' || g[6][0] != 'P' {
		t.Fatalf("white side wrong: %q %q", g[7][4], g[6][0])
	}
	if g[3][3] != 0 {
		t.Fatalf("empty square not empty: %q", g[3][3])
	}

	if _, err := ParseGrid("8/8/8 w - - 0 1"); err == nil {
		t.Fatal("expected error for short placement")
	}
	if _, err := ParseGrid("9/8/8/8/8/8/8/8 w - - 0 1"); err == nil {
		t.Fatal("expected error for rank overflow")
	}
}

func TestSquareName(t *testing.T) {
	if s := SquareName(0, 0); s != "a8" {
		t.Fatalf("SquareName(0,0) = %q", s)
	}
	if s := SquareName(7, 7); s != "h1" {
		t.Fatalf("SquareName(7,7) = %q", s)
	}
}
