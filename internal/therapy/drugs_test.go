package therapy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncotools/egfr-resist/internal/mutation"
)

func findRec(recs []Recommendation, drug string) *Recommendation {
	for i := range recs {
		if recs[i].Drug == drug {
			return &recs[i]
		}
	}
	return nil
}

func TestRecommend_L858R(t *testing.T) {
	// Sensitizing mutation with a low resistance score: 1st-gen TKIs rank medium-high
	recs := Recommend("L858R", mutation.KindPoint, 1, 0.30)
	require.NotEmpty(t, recs)

	gefitinib := findRec(recs, "Gefitinib")
	require.NotNil(t, gefitinib)
	assert.Equal(t, EfficacyMedium, gefitinib.Efficacy)
	assert.Equal(t, "1st-generation TKI", gefitinib.Class)
}

func TestRecommend_T790M(t *testing.T) {
	recs := Recommend("T790M", mutation.KindPoint, 1, 0.80)

	// Resistant to early-generation TKIs
	erlotinib := findRec(recs, "Erlotinib")
	require.NotNil(t, erlotinib)
	assert.Equal(t, EfficacyLow, erlotinib.Efficacy)
	assert.Contains(t, erlotinib.Rationale, "resistance marker")

	// T790M is the mutation osimertinib was developed against; its 0.80
	// score measures resistance to standard therapy, not to this class
	osimertinib := findRec(recs, "Osimertinib")
	require.NotNil(t, osimertinib)
	assert.Equal(t, EfficacyHigh, osimertinib.Efficacy)
	assert.Contains(t, osimertinib.Rationale, "overcome")
}

func TestRecommend_OvercomesBeatsScore(t *testing.T) {
	// The Overcomes grade must hold for any score; the effective-list
	// grade still follows the score for classes without a specific target
	for _, score := range []float64{0.0, 0.5, 0.99} {
		recs := Recommend("T790M", mutation.KindPoint, 1, score)
		osimertinib := findRec(recs, "Osimertinib")
		require.NotNil(t, osimertinib)
		assert.Equal(t, EfficacyHigh, osimertinib.Efficacy, "score %.2f", score)
	}
}

func TestRecommend_Exon19DelHighSensitivity(t *testing.T) {
	recs := Recommend("EXON19 DEL", mutation.KindDeletion, 1, 0.20)

	gefitinib := findRec(recs, "Gefitinib")
	require.NotNil(t, gefitinib)
	assert.Equal(t, EfficacyHigh, gefitinib.Efficacy)
}

func TestRecommend_AmplificationFavorsAntibodies(t *testing.T) {
	tests := []struct {
		copyNumber int
		want       Efficacy
	}{
		{2, EfficacyMedium},
		{4, EfficacyHigh},
		{8, EfficacyHigh},
	}
	for _, tt := range tests {
		recs := Recommend("UNCHARACTERIZED GAIN", mutation.KindAmplification, tt.copyNumber, 0.5)
		cetuximab := findRec(recs, "Cetuximab")
		require.NotNil(t, cetuximab)
		assert.Equal(t, tt.want, cetuximab.Efficacy, "copy number %d", tt.copyNumber)
	}
}

func TestRecommend_DeterministicOrder(t *testing.T) {
	first := Recommend("L858R", mutation.KindPoint, 1, 0.30)
	second := Recommend("L858R", mutation.KindPoint, 1, 0.30)
	assert.Equal(t, first, second)

	// Class order, then drug order within the class
	require.GreaterOrEqual(t, len(first), 4)
	assert.Equal(t, "Gefitinib", first[0].Drug)
	assert.Equal(t, "Erlotinib", first[1].Drug)
	assert.Equal(t, "Afatinib", first[2].Drug)
}

func TestRecommend_UnknownKeyDefaultsMedium(t *testing.T) {
	recs := Recommend("NOVEL VARIANT", mutation.KindUnknown, 0, 0.4)
	for _, r := range recs {
		assert.Equal(t, EfficacyMedium, r.Efficacy, "drug %s", r.Drug)
	}
}
