package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncotools/egfr-resist/internal/predict"
	"github.com/oncotools/egfr-resist/internal/therapy"
)

func TestReportWriter(t *testing.T) {
	var sb strings.Builder
	rw := NewReportWriter(&sb)

	rec, res := sampleResult()
	res.Drugs = []therapy.Recommendation{
		{Drug: "Osimertinib", Class: "3rd-generation TKI", Efficacy: therapy.EfficacyMedium, Rationale: "x"},
	}
	require.NoError(t, rw.WriteResult(rec, res))
	require.NoError(t, rw.Flush())

	out := sb.String()
	assert.Contains(t, out, "Exon 20 insertion (structural)")
	assert.Contains(t, out, "gain-of-function")
	assert.Contains(t, out, "high (score 0.75)")
	assert.Contains(t, out, "Osimertinib")
}

func TestReportWriter_TrialEvidence(t *testing.T) {
	var sb strings.Builder
	rw := NewReportWriter(&sb)

	rec, res := sampleResult()
	res.Drugs = []therapy.Recommendation{
		{Drug: "Osimertinib", Class: "3rd-generation TKI", Efficacy: therapy.EfficacyHigh, Rationale: "x"},
		{Drug: "Gefitinib", Class: "1st-generation TKI", Efficacy: therapy.EfficacyLow, Rationale: "y"},
	}
	require.NoError(t, rw.WriteResult(rec, res))
	require.NoError(t, rw.Flush())

	out := sb.String()
	// Trial evidence only backs high-efficacy recommendations
	assert.Contains(t, out, "FLAURA")
	assert.Contains(t, out, "18.9 months vs 10.2 months")
	assert.NotContains(t, out, "LUX-Lung 3")
}

func TestReportWriter_Summary(t *testing.T) {
	var sb strings.Builder
	rw := NewReportWriter(&sb)

	rec, res := sampleResult()
	require.NoError(t, rw.WriteResult(rec, res))

	heuristic := *res
	heuristic.Confidence = predict.ConfidenceHeuristic
	require.NoError(t, rw.WriteResult(rec, &heuristic))
	rw.CountRowError()
	require.NoError(t, rw.Flush())

	var summary strings.Builder
	rw.WriteSummary(&summary)

	assert.Contains(t, summary.String(), "Records:          2")
	assert.Contains(t, summary.String(), "Exact matches:    1")
	assert.Contains(t, summary.String(), "Heuristic calls:  1")
	assert.Contains(t, summary.String(), "Row errors:       1")
}
