// speccheck - Spec Bundle Validation
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/speccheck

// Package validation checks a spec bundle directory (context.json,
// spec.md, implementation_plan.json) against declarative schemas and
// section sets, producing per-checkpoint results and a directory-level
// summary. Checkers never raise on bad input; every failure mode becomes
// an error entry in a Result.
package validation

// Options overrides the default schemas and section sets. Zero values
// fall back to the defaults.
type Options struct {
	ContextSchema       *Schema
	PlanSchema          *Schema
	RequiredSections    []string
	RecommendedSections []string
	MinContentLength    int
}

// SpecValidator orchestrates all checkpoints for one bundle directory.
// Each Validate call re-reads its target file; there is no cached state
// beyond the directory path and configuration.
type SpecValidator struct {
	dir                 string
	contextSchema       Schema
	planSchema          Schema
	requiredSections    []string
	recommendedSections []string
	minContentLength    int
}

// New returns a SpecValidator for dir using the default schemas.
func New(dir string) *SpecValidator {
	return NewFromOptions(dir, Options{})
}

// NewFromOptions returns a SpecValidator for dir with any configured
// overrides applied over the defaults.
func NewFromOptions(dir string, opts Options) *SpecValidator {
	v := &SpecValidator{
		dir:                 dir,
		contextSchema:       DefaultContextSchema,
		planSchema:          DefaultPlanSchema,
		requiredSections:    DefaultSpecRequiredSections,
		recommendedSections: DefaultSpecRecommendedSections,
		minContentLength:    DefaultMinContentLength,
	}
	if opts.ContextSchema != nil {
		v.contextSchema = *opts.ContextSchema
	}
	if opts.PlanSchema != nil {
		v.planSchema = *opts.PlanSchema
	}
	if opts.RequiredSections != nil {
		v.requiredSections = opts.RequiredSections
	}
	if opts.RecommendedSections != nil {
		v.recommendedSections = opts.RecommendedSections
	}
	if opts.MinContentLength > 0 {
		v.minContentLength = opts.MinContentLength
	}
	return v
}

// Dir returns the bundle directory this validator is bound to.
func (v *SpecValidator) Dir() string {
	return v.dir
}

// ValidatePrereqs checks that all expected artifact files exist.
func (v *SpecValidator) ValidatePrereqs() Result {
	c := PrereqsChecker{Dir: v.dir}
	return c.Check()
}

// ValidateContext validates context.json against the context schema.
func (v *SpecValidator) ValidateContext() Result {
	return NewContextChecker(v.dir, v.contextSchema).Check()
}

// ValidateSpecDocument validates spec.md section presence and length.
func (v *SpecValidator) ValidateSpecDocument() Result {
	return NewSpecDocumentChecker(v.dir, v.requiredSections, v.recommendedSections, v.minContentLength).Check()
}

// ValidateImplementationPlan validates implementation_plan.json, including
// the phase and subtask structural rules.
func (v *SpecValidator) ValidateImplementationPlan() Result {
	return NewPlanChecker(v.dir, v.planSchema).Check()
}

// ValidateAll runs every checkpoint in fixed order: prereqs, context,
// spec, plan. A failing prereqs check does not short-circuit the rest, so
// one call surfaces every independent problem.
func (v *SpecValidator) ValidateAll() []Result {
	return []Result{
		v.ValidatePrereqs(),
		v.ValidateContext(),
		v.ValidateSpecDocument(),
		v.ValidateImplementationPlan(),
	}
}

// IsValid reports whether every checkpoint passes.
func (v *SpecValidator) IsValid() bool {
	for _, r := range v.ValidateAll() {
		if !r.Valid {
			return false
		}
	}
	return true
}

// CheckpointSummary is the per-checkpoint slice of a Summary.
type CheckpointSummary struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Summary is the directory-level verdict. This shape is the stable
// contract CI integrations consume.
type Summary struct {
	AllValid      bool                         `json:"all_valid"`
	TotalErrors   int                          `json:"total_errors"`
	TotalWarnings int                          `json:"total_warnings"`
	Checkpoints   map[string]CheckpointSummary `json:"checkpoints"`
}

// Summarize runs all checkpoints and aggregates their results.
func (v *SpecValidator) Summarize() Summary {
	return SummarizeResults(v.ValidateAll())
}

// SummarizeResults aggregates checkpoint results into a Summary without
// re-interpreting or merging them.
func SummarizeResults(results []Result) Summary {
	summary := Summary{
		AllValid:    true,
		Checkpoints: make(map[string]CheckpointSummary, len(results)),
	}
	for _, r := range results {
		if !r.Valid {
			summary.AllValid = false
		}
		summary.TotalErrors += len(r.Errors)
		summary.TotalWarnings += len(r.Warnings)
		summary.Checkpoints[r.Checkpoint] = CheckpointSummary{
			Valid:    r.Valid,
			Errors:   r.Errors,
			Warnings: r.Warnings,
		}
	}
	return summary
}

// ValidateSpecDirectory validates dir with the default schemas and
// returns the aggregated summary.
func ValidateSpecDirectory(dir string) Summary {
	return New(dir).Summarize()
}
