package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PlanChecker validates implementation_plan.json: the flat schema via
// JSONFileChecker, then a structural pass over phases and subtasks. It is
// the one checker with cross-record rules (unique phase IDs).
type PlanChecker struct {
	json JSONFileChecker
}

// NewPlanChecker returns a PlanChecker bound to the plan file in dir,
// validated against the given top-level schema.
func NewPlanChecker(dir string, schema Schema) *PlanChecker {
	return &PlanChecker{
		json: JSONFileChecker{
			Checkpoint: CheckpointPlan,
			Path:       filepath.Join(dir, PlanFileName),
			Schema:     schema,
		},
	}
}

// Check validates the plan file.
func (c *PlanChecker) Check() Result {
	result := Result{Checkpoint: CheckpointPlan, Valid: true}

	data, ok := c.json.load(&result)
	if !ok {
		return result
	}

	errs, warns := c.json.Schema.ValidateData(data)
	for _, e := range errs {
		result.AddError(e)
	}
	for _, w := range warns {
		result.AddWarning(w)
	}

	if phases, ok := data["phases"].([]any); ok {
		c.checkPhases(phases, &result)
	} else if raw, present := data["phases"]; present && raw != nil {
		result.AddError("phases must be an array")
	}

	return result
}

// checkPhases runs the structural pass: every phase needs a non-empty id,
// name, and subtasks list, and phase IDs must be unique within the plan.
func (c *PlanChecker) checkPhases(phases []any, result *Result) {
	seen := make(map[string]bool)

	for i, raw := range phases {
		path := fmt.Sprintf("phases[%d]", i)

		phase, ok := raw.(map[string]any)
		if !ok {
			result.AddError(fmt.Sprintf("%s must be an object", path))
			continue
		}

		id := stringField(phase, "id")
		if id == "" {
			result.AddError(fmt.Sprintf("%s is missing a non-empty id", path))
		} else if seen[id] {
			result.AddError(fmt.Sprintf("duplicate phase id: %s", id))
		} else {
			seen[id] = true
		}

		if stringField(phase, "name") == "" {
			result.AddError(fmt.Sprintf("%s is missing a non-empty name", path))
		}

		subtasks, ok := phase["subtasks"].([]any)
		if !ok || len(subtasks) == 0 {
			result.AddError(fmt.Sprintf("%s must have a non-empty subtasks list", path))
			continue
		}
		for j, rawTask := range subtasks {
			c.checkSubtask(rawTask, fmt.Sprintf("%s.subtasks[%d]", path, j), result)
		}
	}
}

// checkSubtask validates one subtask entry.
func (c *PlanChecker) checkSubtask(raw any, path string, result *Result) {
	task, ok := raw.(map[string]any)
	if !ok {
		result.AddError(fmt.Sprintf("%s must be an object", path))
		return
	}

	if stringField(task, "id") == "" {
		result.AddError(fmt.Sprintf("%s is missing a non-empty id", path))
	}
	if stringField(task, "description") == "" {
		result.AddError(fmt.Sprintf("%s is missing a non-empty description", path))
	}

	status := stringField(task, "status")
	if status == "" {
		result.AddError(fmt.Sprintf("%s is missing a status", path))
	} else if !contains(PlanStatusValues, status) {
		result.AddError(fmt.Sprintf("%s has invalid status %q (allowed: %s)",
			path, status, strings.Join(PlanStatusValues, ", ")))
	}
}

// stringField returns the trimmed string value of a field, or "" if the
// field is absent or not a string.
func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}
