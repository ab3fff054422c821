// Package quality scores accumulated rule violations and evaluates
// pass/fail gates against a severity threshold. One Analyzer holds one
// analysis session; callers stream violations in (typically from a linter)
// and query the score or gate at any point.
package quality

// MaxScore is the score of a session with no violations.
const MaxScore = 100.0

// Violation is a single scored finding. Immutable once recorded.
type Violation struct {
	RuleID   string
	Message  string
	File     string
	Line     int
	Severity Severity
}

// Claim is a qualitative assertion about a metric. Claims are stored
// alongside violations for reporting but never affect the score.
type Claim struct {
	Metric   string
	Evidence EvidenceQuality
	Risk     RiskLevel
}

// Result is the output of one Analyze call: the clamped overall score,
// the violations in insertion order, and per-severity counts.
type Result struct {
	OverallScore     float64
	Violations       []Violation
	Claims           []Claim
	CountsBySeverity map[Severity]int
}

// Analyzer owns the violation collection for one analysis session.
// Not safe for concurrent use; each caller holds its own instance.
type Analyzer struct {
	violations []Violation
	claims     []Claim
}

// NewAnalyzer returns an empty analysis session.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// AddViolation records a violation. The severity is supplied as a label and
// coerced to the Severity enum; an unrecognized label is rejected as a
// caller error. Duplicate rule IDs on different lines are independent
// violations and both count.
func (a *Analyzer) AddViolation(ruleID, message, file string, line int, severity string) (Violation, error) {
	sev, err := ParseSeverity(severity)
	if err != nil {
		return Violation{}, err
	}
	v := Violation{
		RuleID:   ruleID,
		Message:  message,
		File:     file,
		Line:     line,
		Severity: sev,
	}
	a.violations = append(a.violations, v)
	return v, nil
}

// AddClaim records a qualitative claim. Stored separately from violations;
// never enters the score.
func (a *Analyzer) AddClaim(metric, evidence, risk string) (Claim, error) {
	eq, err := ParseEvidenceQuality(evidence)
	if err != nil {
		return Claim{}, err
	}
	rl, err := ParseRiskLevel(risk)
	if err != nil {
		return Claim{}, err
	}
	c := Claim{Metric: metric, Evidence: eq, Risk: rl}
	a.claims = append(a.claims, c)
	return c, nil
}

// Analyze computes the session result. Deterministic and pure with respect
// to the current violation list: score = max(0, 100 - sum of weights).
// Violations preserve insertion order in the output.
func (a *Analyzer) Analyze() Result {
	score := MaxScore
	counts := make(map[Severity]int)

	for _, v := range a.violations {
		score -= float64(v.Severity.Weight())
		counts[v.Severity]++
	}
	if score < 0 {
		score = 0
	}

	violations := make([]Violation, len(a.violations))
	copy(violations, a.violations)
	claims := make([]Claim, len(a.claims))
	copy(claims, a.claims)

	return Result{
		OverallScore:     score,
		Violations:       violations,
		Claims:           claims,
		CountsBySeverity: counts,
	}
}

// CheckGate reports whether the session passes a severity gate: false if
// any stored violation has severity >= the threshold, true otherwise.
// Comparison uses the Severity ordering, never the penalty weights, so
// re-tuning weights cannot change gate semantics. Works on the live
// collection; Analyze need not have been called.
func (a *Analyzer) CheckGate(failOn string) (bool, error) {
	threshold, err := ParseSeverity(failOn)
	if err != nil {
		return false, err
	}
	for _, v := range a.violations {
		if v.Severity >= threshold {
			return false, nil
		}
	}
	return true, nil
}
