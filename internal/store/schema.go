package store

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/pcdiag/internal/kb"
)

// Document schemas, one per collection.
var documentSchemas = map[kb.Collection]string{
	kb.CollectionQuestions: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["text", "factor"],
			"properties": {
				"text":   {"type": "string"},
				"factor": {"type": "string"}
			}
		}
	}`,
	kb.CollectionSolutions: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["description", "rules"],
			"properties": {
				"description": {"type": "string"},
				"rules": {
					"type": "array",
					"items": {
						"type": "object",
						"required": ["factor", "expected"],
						"properties": {
							"factor":   {"type": "string"},
							"expected": {"type": "boolean"}
						}
					}
				}
			}
		}
	}`,
}

// schemaCache caches compiled schemas by collection.
var schemaCache sync.Map // map[kb.Collection]*jsonschema.Schema

// validateDocument parses data and checks it against the collection schema.
func validateDocument(c kb.Collection, data []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(c)
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(c kb.Collection) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(c); ok {
		return cached.(*jsonschema.Schema), nil
	}

	def, ok := documentSchemas[c]
	if !ok {
		return nil, fmt.Errorf("no schema for collection %q", c)
	}
	defParsed, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(def)))
	if err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", c, err)
	}

	comp := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", c)
	if err := comp.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := comp.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(c, compiled)
	return compiled, nil
}
