package validation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONFileChecker parses a named file as JSON and runs a Schema against
// the parsed mapping. Parse failures become result errors, never faults.
type JSONFileChecker struct {
	Checkpoint string
	Path       string
	Schema     Schema
}

// Check validates the file against the schema.
func (c *JSONFileChecker) Check() Result {
	result := Result{Checkpoint: c.Checkpoint, Valid: true}

	data, ok := c.load(&result)
	if !ok {
		return result
	}

	errs, warns := c.Schema.ValidateData(data)
	for _, e := range errs {
		result.AddError(e)
	}
	for _, w := range warns {
		result.AddWarning(w)
	}

	return result
}

// load reads and parses the target file, recording any failure on the
// result. Returns the parsed mapping and whether parsing succeeded.
func (c *JSONFileChecker) load(result *Result) (map[string]any, bool) {
	name := filepath.Base(c.Path)

	raw, err := os.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			result.AddError(fmt.Sprintf("file not found: %s", name))
		} else {
			result.AddError(fmt.Sprintf("cannot read %s: %v", name, err))
		}
		return nil, false
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		result.AddError(fmt.Sprintf("malformed JSON in %s: %v", name, err))
		return nil, false
	}

	return data, true
}

// NewContextChecker returns a JSONFileChecker bound to the context file
// in dir, validated against the given schema.
func NewContextChecker(dir string, schema Schema) *JSONFileChecker {
	return &JSONFileChecker{
		Checkpoint: CheckpointContext,
		Path:       filepath.Join(dir, ContextFileName),
		Schema:     schema,
	}
}
