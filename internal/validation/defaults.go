package validation

// Artifact file names expected at the root of a spec bundle directory.
const (
	ContextFileName = "context.json"
	SpecFileName    = "spec.md"
	PlanFileName    = "implementation_plan.json"
)

// Checkpoint names, in the order ValidateAll runs them.
const (
	CheckpointPrereqs = "prereqs"
	CheckpointContext = "context"
	CheckpointSpec    = "spec"
	CheckpointPlan    = "plan"
)

// DefaultMinContentLength is the minimum spec document size in bytes before
// a thin-content warning is emitted.
const DefaultMinContentLength = 100

// PlanStatusValues are the valid subtask status values.
var PlanStatusValues = []string{"pending", "in_progress", "completed", "blocked"}

// DefaultContextSchema validates context.json. The one hard requirement is
// a non-empty task description.
var DefaultContextSchema = Schema{
	RequiredFields: []string{"task_description"},
	OptionalFields: []string{"workflow_type", "repository", "branch", "constraints"},
}

// DefaultPlanSchema validates the top level of implementation_plan.json.
// Phase and subtask structure is checked separately by PlanChecker.
var DefaultPlanSchema = Schema{
	RequiredFields: []string{"feature", "workflow_type", "phases"},
	OptionalFields: []string{"summary", "risks", "open_questions"},
}

// DefaultSpecRequiredSections are the headings every spec document must have.
var DefaultSpecRequiredSections = []string{
	"Overview",
	"Workflow Type",
	"Task Scope",
	"Success Criteria",
}

// DefaultSpecRecommendedSections are headings a spec document should have;
// absence is a warning, never an error.
var DefaultSpecRecommendedSections = []string{
	"Files to Modify",
	"Requirements",
}
