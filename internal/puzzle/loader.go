package puzzle

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed collections/starter.json
var starterJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compiledCollectionSchema compiles the collection schema once.
func compiledCollectionSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		def, err := json.Marshal(collectionSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal collection schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(def, &parsed); err != nil {
			schemaErr = fmt.Errorf("parse collection schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://puzzle-collection.json"
		if err := c.AddResource(url, parsed); err != nil {
			schemaErr = fmt.Errorf("add collection schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

// Parse decodes a collection from JSON, validating it against the
// collection schema and the structural invariants.
func Parse(data []byte) (*Collection, error) {
	schema, err := compiledCollectionSchema()
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("collection is not valid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("collection schema: %w", err)
	}

	var coll Collection
	if err := json.Unmarshal(data, &coll); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	if err := coll.Validate(); err != nil {
		return nil, err
	}
	return &coll, nil
}

// LoadFile reads and parses a collection file.
func LoadFile(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}
	coll, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return coll, nil
}

// Starter returns the embedded starter collection shipped with the binary.
func Starter() *Collection {
	coll, err := Parse(starterJSON)
	if err != nil {
		// The embedded collection is validated by tests; failing here
		// means a broken build.
		panic(fmt.Sprintf("embedded starter collection: %v", err))
	}
	return coll
}
