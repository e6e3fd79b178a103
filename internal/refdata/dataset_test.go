package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	d := Builtin()
	require.NotEmpty(t, d)

	// Keys are unique by construction; check the curated set is complete
	for _, key := range []string{"L858R", "T790M", "G719X", "C797S", "EXON19 DEL", "EXON20 INS", "AMP", "WT"} {
		e, ok := d.Lookup(key)
		require.True(t, ok, "missing %s", key)
		assert.Equal(t, key, e.Key)
		assert.NotEmpty(t, e.Therapy)
		assert.GreaterOrEqual(t, e.ResistanceScore, 0.0)
		assert.LessOrEqual(t, e.ResistanceScore, 1.0)
	}

	assert.False(t, d.Has("UNKNOWN"))
}

func TestResistanceLevel_Ordering(t *testing.T) {
	assert.Less(t, int(ResistanceLow), int(ResistanceModerate))
	assert.Less(t, int(ResistanceModerate), int(ResistanceHigh))

	assert.Equal(t, "low", ResistanceLow.String())
	assert.Equal(t, "moderate", ResistanceModerate.String())
	assert.Equal(t, "high", ResistanceHigh.String())
}

func TestParseLabels(t *testing.T) {
	m, err := ParseMechanism("gain-of-function")
	require.NoError(t, err)
	assert.Equal(t, MechanismGainOfFunction, m)

	_, err = ParseMechanism("loss-of-function")
	assert.Error(t, err)

	p, err := ParsePathway("PI3K/AKT")
	require.NoError(t, err)
	assert.Equal(t, PathwayPI3KAKT, p)

	_, err = ParsePathway("WNT")
	assert.Error(t, err)

	r, err := ParseResistanceLevel("high")
	require.NoError(t, err)
	assert.Equal(t, ResistanceHigh, r)

	_, err = ParseResistanceLevel("extreme")
	assert.Error(t, err)
}
