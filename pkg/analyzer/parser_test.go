package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

func TestParseAnalysisSingleObject(t *testing.T) {
	content := `{
		"vuln_type": "use_after_free",
		"severity": "critical",
		"affected_versions": "<2.5.0",
		"summary": "Freed connection reused in cleanup path.",
		"reasoning": "The diff moves the free after the last use.",
		"affected_functions": ["conn_close", "conn_reuse"]
	}`
	got, err := ParseAnalysis(content)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "use_after_free", got[0].VulnType)
	assert.Equal(t, upstreamvuln.SeverityCritical, got[0].Severity)
	assert.Equal(t, "<2.5.0", got[0].AffectedVersions)
	assert.Equal(t, []string{"conn_close", "conn_reuse"}, got[0].AffectedFunctions)
}

func TestParseAnalysisArray(t *testing.T) {
	content := `Here are my findings:
[
  {"vuln_type":"use_after_free","severity":"critical","affected_versions":"<1.1","summary":"UAF in close."},
  {"vuln_type":"dos","severity":"medium","affected_versions":"<1.1","summary":"Unbounded loop on crafted input."}
]`
	got, err := ParseAnalysis(content)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "use_after_free", got[0].VulnType)
	assert.Equal(t, "dos", got[1].VulnType)
	assert.Equal(t, upstreamvuln.SeverityMedium, got[1].Severity)
}

func TestParseAnalysisNormalization(t *testing.T) {
	tests := []struct {
		name         string
		vulnType     string
		severity     string
		wantType     string
		wantSeverity upstreamvuln.Severity
	}{
		{"heap overflow alias", "heap_overflow", "high", "buffer_overflow", upstreamvuln.SeverityHigh},
		{"moderate alias", "dos", "moderate", "dos", upstreamvuln.SeverityMedium},
		{"hyphenated input", "use-after-free", "critical", "use_after_free", upstreamvuln.SeverityCritical},
		{"unknown type to other", "quantum_entanglement", "low", "other", upstreamvuln.SeverityLow},
		{"unknown severity to medium", "injection", "catastrophic", "injection", upstreamvuln.SeverityMedium},
		{"empty both", "", "", "other", upstreamvuln.SeverityMedium},
		{"null pointer alias", "nullptr_dereference", "HIGH", "null_deref", upstreamvuln.SeverityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := `{"vuln_type":"` + tt.vulnType + `","severity":"` + tt.severity + `","summary":"s"}`
			got, err := ParseAnalysis(content)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, got[0].VulnType)
			assert.Equal(t, tt.wantSeverity, got[0].Severity)
		})
	}
}

func TestParseAnalysisRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no json", "I am not sure."},
		{"empty array", "[]"},
		{"missing summary", `{"vuln_type":"dos","severity":"low"}`},
		{"unbalanced", `[{"vuln_type":"dos"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAnalysis(tt.content)
			assert.Error(t, err)
		})
	}
}
