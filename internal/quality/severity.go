package quality

import "fmt"

// Severity classifies how serious a violation is. The ordinal ordering
// (low < medium < high < critical) is what gate checks compare against;
// penalty weights are a separate concern and may be re-tuned without
// changing gate semantics.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// severityLabels maps canonical labels to severities.
var severityLabels = map[string]Severity{
	"low":      SeverityLow,
	"medium":   SeverityMedium,
	"high":     SeverityHigh,
	"critical": SeverityCritical,
}

// ParseSeverity parses a severity label. Unrecognized labels are a caller
// error, not a property of the artifact being analyzed.
func ParseSeverity(s string) (Severity, error) {
	if sev, ok := severityLabels[s]; ok {
		return sev, nil
	}
	return 0, fmt.Errorf("invalid severity: %q (valid: low, medium, high, critical)", s)
}

// String returns the canonical label for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Weight returns the score penalty for one violation at this severity.
func (s Severity) Weight() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 5
	case SeverityCritical:
		return 10
	default:
		return 0
	}
}

// EvidenceQuality describes the confidence behind a quality claim.
// Informational only; it never enters scoring arithmetic.
type EvidenceQuality int

const (
	EvidencePoor EvidenceQuality = iota
	EvidenceFair
	EvidenceGood
	EvidenceExcellent
)

var evidenceLabels = map[string]EvidenceQuality{
	"poor":      EvidencePoor,
	"fair":      EvidenceFair,
	"good":      EvidenceGood,
	"excellent": EvidenceExcellent,
}

// ParseEvidenceQuality parses an evidence quality label.
func ParseEvidenceQuality(s string) (EvidenceQuality, error) {
	if eq, ok := evidenceLabels[s]; ok {
		return eq, nil
	}
	return 0, fmt.Errorf("invalid evidence quality: %q (valid: poor, fair, good, excellent)", s)
}

// String returns the canonical label for the evidence quality.
func (e EvidenceQuality) String() string {
	switch e {
	case EvidencePoor:
		return "poor"
	case EvidenceFair:
		return "fair"
	case EvidenceGood:
		return "good"
	case EvidenceExcellent:
		return "excellent"
	default:
		return "unknown"
	}
}

// RiskLevel classifies the risk behind a quality claim. Its labels overlap
// with Severity but the two are independent namespaces.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskCritical
)

var riskLabels = map[string]RiskLevel{
	"low":      RiskLow,
	"medium":   RiskMedium,
	"high":     RiskHigh,
	"critical": RiskCritical,
}

// ParseRiskLevel parses a risk level label.
func ParseRiskLevel(s string) (RiskLevel, error) {
	if r, ok := riskLabels[s]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("invalid risk level: %q (valid: low, medium, high, critical)", s)
}

// String returns the canonical label for the risk level.
func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	case RiskCritical:
		return "critical"
	default:
		return "unknown"
	}
}
