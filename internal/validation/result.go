package validation

// Result is the outcome of one checkpoint. Errors are blocking; warnings
// are advisory and never flip Valid to false.
type Result struct {
	Checkpoint string   `json:"checkpoint"`
	Valid      bool     `json:"valid"`
	Errors     []string `json:"errors"`
	Warnings   []string `json:"warnings"`
}

// AddError appends a blocking error and marks the result invalid.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Valid = false
}

// AddWarning appends an advisory warning. Validity is unaffected.
func (r *Result) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Checker is the single capability all per-artifact validators implement.
// Check always returns a result; parse and IO failures are carried as
// error entries, never raised.
type Checker interface {
	Check() Result
}
