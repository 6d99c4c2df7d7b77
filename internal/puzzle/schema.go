package puzzle

// collectionSchema is the JSON Schema for collection files. Structural
// invariants the schema cannot express (unique puzzle ids) are enforced by
// Collection.Validate after decoding.
var collectionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":          map[string]any{"type": "string", "minLength": 1},
		"title":       map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"puzzles": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    puzzleSchema,
		},
	},
	"required":             []any{"id", "puzzles"},
	"additionalProperties": false,
}

var puzzleSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":    map[string]any{"type": "string", "minLength": 1},
		"title": map[string]any{"type": "string"},
		"fen":   map[string]any{"type": "string", "minLength": 1},
		"solution": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"type": "string", "minLength": 1},
		},
		"variants": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"label": map[string]any{"type": "string"},
					"moves": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
				},
				"required":             []any{"id", "moves"},
				"additionalProperties": false,
			},
		},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"beginner", "intermediate", "advanced"},
		},
		"tags": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"hint":   map[string]any{"type": "string"},
		"author": map[string]any{"type": "string"},
	},
	"required":             []any{"id", "fen", "solution"},
	"additionalProperties": false,
}
