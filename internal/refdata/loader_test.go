package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceTSV returns the path of the curated TSV shipped in the repo root.
func referenceTSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join("..", "..", "egfr_reference.tsv")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("egfr_reference.tsv not found: %v", err)
	}
	return path
}

func writeTSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ref.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const tsvHeader = "mutation_key\tmechanism\tpathway\tresistance_level\ttherapy\tresistance_score\tclinical_significance\n"

func TestLoad_ShippedDataset(t *testing.T) {
	d, err := Load(referenceTSV(t))
	require.NoError(t, err)
	require.NotEmpty(t, d)

	tests := []struct {
		key        string
		mechanism  Mechanism
		pathway    Pathway
		resistance ResistanceLevel
	}{
		{"L858R", MechanismGainOfFunction, PathwayRASMAPK, ResistanceLow},
		{"T790M", MechanismOther, PathwayRASMAPK, ResistanceHigh},
		{"EXON19 DEL", MechanismGainOfFunction, PathwayPI3KAKT, ResistanceLow},
		{"EXON20 INS", MechanismGainOfFunction, PathwayPI3KAKT, ResistanceHigh},
		{"AMP", MechanismOverexpression, PathwayPI3KAKT, ResistanceModerate},
		{"WT", MechanismNone, PathwayUnknown, ResistanceLow},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			e, ok := d.Lookup(tt.key)
			require.True(t, ok, "key %s should be in dataset", tt.key)
			assert.Equal(t, tt.mechanism, e.Mechanism)
			assert.Equal(t, tt.pathway, e.Pathway)
			assert.Equal(t, tt.resistance, e.Resistance)
			assert.NotEmpty(t, e.Therapy)
		})
	}
}

func TestLoad_MatchesBuiltin(t *testing.T) {
	d, err := Load(referenceTSV(t))
	require.NoError(t, err)
	assert.Equal(t, Builtin(), d)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load("/nonexistent/path.tsv")
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoad_DuplicateKey(t *testing.T) {
	path := writeTSV(t, tsvHeader+
		"L858R\tgain-of-function\tRAS/MAPK\tlow\tTKI\t0.3\tx\n"+
		"L858R\tgain-of-function\tRAS/MAPK\tlow\tTKI\t0.3\tx\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate mutation key")
}

func TestLoad_MissingColumn(t *testing.T) {
	path := writeTSV(t, "mutation_key\tmechanism\tpathway\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resistance_level")
}

func TestLoad_MalformedRow(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"short row", "L858R\tgain-of-function\n"},
		{"bad mechanism", "L858R\tmagic\tRAS/MAPK\tlow\tTKI\t0.3\tx\n"},
		{"bad pathway", "L858R\tgain-of-function\tWNT\tlow\tTKI\t0.3\tx\n"},
		{"bad resistance", "L858R\tgain-of-function\tRAS/MAPK\tsevere\tTKI\t0.3\tx\n"},
		{"bad score", "L858R\tgain-of-function\tRAS/MAPK\tlow\tTKI\tNaN-ish\tx\n"},
		{"empty key", "\tgain-of-function\tRAS/MAPK\tlow\tTKI\t0.3\tx\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTSV(t, tsvHeader+tt.row))
			require.Error(t, err)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, 2, loadErr.Line)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	_, err := Load(writeTSV(t, ""))
	require.Error(t, err)

	_, err = Load(writeTSV(t, tsvHeader))
	require.Error(t, err)
}

func TestLoad_SkipsCommentsAndBlankLines(t *testing.T) {
	path := writeTSV(t, tsvHeader+
		"# curated rows below\n"+
		"\n"+
		"L858R\tgain-of-function\tRAS/MAPK\tlow\tTKI\t0.3\tx\n")

	d, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, d, 1)
	assert.True(t, d.Has("L858R"))
}
