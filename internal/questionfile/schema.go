package questionfile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://annotiz/questions.json"

// questionListSchema describes the on-disk shape shared by JSON and YAML files.
var questionListSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":                 "object",
		"required":             []any{"question", "options", "answer"},
		"additionalProperties": false,
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string"},
			},
			"answer":          map[string]any{"type": "string"},
			"is_higher_order": map[string]any{"type": []any{"boolean", "null"}},
			"human_answer":    map[string]any{"type": []any{"string", "null"}},
		},
	},
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a value as produced by encoding/json.
	defBytes, err := json.Marshal(questionListSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	sch, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return sch, nil
})

// validateDocument checks a decoded document against the question list schema.
func validateDocument(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("question schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
