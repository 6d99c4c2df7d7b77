package puzzle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStarterCollection(t *testing.T) {
	coll := Starter()
	if coll.ID != "starter" {
		t.Fatalf("id = %q", coll.ID)
	}
	if len(coll.Puzzles) < 3 {
		t.Fatalf("puzzles = %d", len(coll.Puzzles))
	}

	// Every shipped puzzle must build a controller.
	for i := range coll.Puzzles {
		if _, err := NewController(&coll.Puzzles[i]); err != nil {
			t.Errorf("puzzle %q: %v", coll.Puzzles[i].ID, err)
		}
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"id": "x",`,
		"missing id":     `{"puzzles": [{"id": "p", "fen": "8/8 w - - 0 1", "solution": ["e4"]}]}`,
		"empty puzzles":  `{"id": "x", "puzzles": []}`,
		"empty solution": `{"id": "x", "puzzles": [{"id": "p", "fen": "8/8 w - - 0 1", "solution": []}]}`,
		"unknown field":  `{"id": "x", "bogus": 1, "puzzles": [{"id": "p", "fen": "8/8 w - - 0 1", "solution": ["e4"]}]}`,
		"bad difficulty": `{"id": "x", "puzzles": [{"id": "p", "fen": "8/8 w - - 0 1", "solution": ["e4"], "difficulty": "insane"}]}`,
		"empty variant":  `{"id": "x", "puzzles": [{"id": "p", "fen": "8/8 w - - 0 1", "solution": ["e4"], "variants": [{"id": "v", "moves": []}]}]}`,
	}
	for name, data := range cases {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("%s: accepted", name)
		}
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	data := `{
		"id": "x",
		"puzzles": [
			{"id": "p", "fen": "8/8/8/8/8/8/8/8 w - - 0 1", "solution": ["e4"]},
			{"id": "p", "fen": "8/8/8/8/8/8/8/8 w - - 0 1", "solution": ["d4"]}
		]
	}`
	_, err := Parse([]byte(data))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini.json")
	data := `{
		"id": "mini",
		"title": "Mini set",
		"puzzles": [
			{"id": "p1", "fen": "6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1", "solution": ["Rd8#"]}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	coll, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if coll.ID != "mini" || len(coll.Puzzles) != 1 {
		t.Fatalf("collection = %+v", coll)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
