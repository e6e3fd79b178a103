package therapy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrialsFor(t *testing.T) {
	osimertinib := TrialsFor("Osimertinib")
	require.Len(t, osimertinib, 1)
	assert.Equal(t, "FLAURA", osimertinib[0].Name)
	assert.Equal(t, "PFS", osimertinib[0].Endpoint)

	afatinib := TrialsFor("Afatinib")
	require.Len(t, afatinib, 1)
	assert.Equal(t, "LUX-Lung 3", afatinib[0].Name)

	assert.Empty(t, TrialsFor("Gefitinib"))
}

func TestTrials_DrugsAreInDrugTable(t *testing.T) {
	known := map[string]bool{}
	for _, c := range Classes() {
		for _, d := range c.Drugs {
			known[d] = true
		}
	}
	for _, tr := range Trials() {
		assert.True(t, known[tr.Drug], "trial %s references unknown drug %s", tr.Name, tr.Drug)
	}
}
