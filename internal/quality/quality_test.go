package quality

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_NoViolations(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	result := a.Analyze()

	assert.Equal(t, 100.0, result.OverallScore)
	assert.Empty(t, result.Violations)
	assert.Empty(t, result.CountsBySeverity)

	passed, err := a.CheckGate("low")
	require.NoError(t, err)
	assert.True(t, passed, "gate always passes with zero violations")
}

func TestAnalyze_SingleMediumViolation(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	v, err := a.AddViolation("R001", "line too long", "main.go", 42, "medium")
	require.NoError(t, err)
	assert.Equal(t, SeverityMedium, v.Severity)

	result := a.Analyze()
	assert.Equal(t, 98.0, result.OverallScore)
	assert.Equal(t, 1, result.CountsBySeverity[SeverityMedium])

	passed, err := a.CheckGate("high")
	require.NoError(t, err)
	assert.True(t, passed)
}

func TestAnalyze_WeightedSum(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	for _, sev := range []string{"low", "medium", "high", "critical"} {
		_, err := a.AddViolation("R001", "msg", "f.go", 1, sev)
		require.NoError(t, err)
	}

	// 100 - (1 + 2 + 5 + 10)
	result := a.Analyze()
	assert.Equal(t, 82.0, result.OverallScore)
}

func TestAnalyze_ScoreFloorsAtZero(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	for i := 0; i < 15; i++ {
		_, err := a.AddViolation("R002", "msg", "f.go", i, "critical")
		require.NoError(t, err)
	}

	result := a.Analyze()
	assert.Equal(t, 0.0, result.OverallScore)

	// Further additions leave the score at the floor
	_, err := a.AddViolation("R003", "msg", "f.go", 99, "low")
	require.NoError(t, err)
	assert.Equal(t, 0.0, a.Analyze().OverallScore)
}

func TestAnalyze_LowViolationDecrementsByOne(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	_, err := a.AddViolation("R001", "msg", "f.go", 1, "high")
	require.NoError(t, err)
	before := a.Analyze().OverallScore

	_, err = a.AddViolation("R001", "msg", "f.go", 2, "low")
	require.NoError(t, err)
	assert.Equal(t, before-1, a.Analyze().OverallScore)
}

func TestAnalyze_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	for i := 0; i < 5; i++ {
		_, err := a.AddViolation(fmt.Sprintf("R%03d", i), "msg", "f.go", i, "low")
		require.NoError(t, err)
	}

	result := a.Analyze()
	require.Len(t, result.Violations, 5)
	for i, v := range result.Violations {
		assert.Equal(t, fmt.Sprintf("R%03d", i), v.RuleID)
		assert.Equal(t, i, v.Line)
	}
}

func TestAddViolation_DuplicateRuleIDsBothCount(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	_, err := a.AddViolation("R001", "msg", "f.go", 10, "low")
	require.NoError(t, err)
	_, err = a.AddViolation("R001", "msg", "f.go", 20, "low")
	require.NoError(t, err)

	result := a.Analyze()
	assert.Len(t, result.Violations, 2)
	assert.Equal(t, 98.0, result.OverallScore)
}

func TestAddViolation_InvalidSeverity(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	_, err := a.AddViolation("R001", "msg", "f.go", 1, "catastrophic")
	assert.ErrorContains(t, err, "invalid severity")

	// Rejected input is not recorded
	assert.Equal(t, 100.0, a.Analyze().OverallScore)
}

func TestCheckGate_ThresholdSemantics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		severities []string
		failOn     string
		want       bool
	}{
		{name: "high violation fails high gate", severities: []string{"high"}, failOn: "high", want: false},
		{name: "critical violation fails high gate", severities: []string{"critical"}, failOn: "high", want: false},
		{name: "medium violation passes high gate", severities: []string{"medium"}, failOn: "high", want: true},
		{name: "many low violations pass high gate", severities: []string{"low", "low", "low", "low"}, failOn: "high", want: true},
		{name: "low violation fails low gate", severities: []string{"low"}, failOn: "low", want: false},
		{name: "high violation passes critical gate", severities: []string{"high"}, failOn: "critical", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer()
			for i, sev := range tt.severities {
				_, err := a.AddViolation("R001", "msg", "f.go", i, sev)
				require.NoError(t, err)
			}
			passed, err := a.CheckGate(tt.failOn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, passed)
		})
	}
}

func TestCheckGate_InvalidThreshold(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	_, err := a.CheckGate("blocker")
	assert.Error(t, err)
}

func TestCheckGate_BeforeAnalyze(t *testing.T) {
	t.Parallel()

	// Gate evaluation works off the live collection, no Analyze needed
	a := NewAnalyzer()
	_, err := a.AddViolation("R001", "msg", "f.go", 1, "critical")
	require.NoError(t, err)

	passed, err := a.CheckGate("high")
	require.NoError(t, err)
	assert.False(t, passed)
}

func TestAddClaim(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	c, err := a.AddClaim("test_coverage", "good", "low")
	require.NoError(t, err)
	assert.Equal(t, "test_coverage", c.Metric)
	assert.Equal(t, EvidenceGood, c.Evidence)
	assert.Equal(t, RiskLow, c.Risk)

	// Claims never affect the score or the gate
	result := a.Analyze()
	assert.Equal(t, 100.0, result.OverallScore)
	require.Len(t, result.Claims, 1)

	passed, err := a.CheckGate("low")
	require.NoError(t, err)
	assert.True(t, passed)
}

func TestAddClaim_InvalidLabels(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	_, err := a.AddClaim("coverage", "stellar", "low")
	assert.ErrorContains(t, err, "invalid evidence quality")

	_, err = a.AddClaim("coverage", "good", "extreme")
	assert.ErrorContains(t, err, "invalid risk level")
}

func TestAnalyze_ResultIsSnapshot(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer()
	_, err := a.AddViolation("R001", "msg", "f.go", 1, "low")
	require.NoError(t, err)

	first := a.Analyze()
	_, err = a.AddViolation("R002", "msg", "f.go", 2, "low")
	require.NoError(t, err)

	assert.Len(t, first.Violations, 1, "earlier result must not see later additions")
	assert.Len(t, a.Analyze().Violations, 2)
}
