package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigValue(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  any
	}{
		{"moderate threshold", "thresholds.moderate", "3", 3},
		{"high threshold", "thresholds.high", "6", 6},
		{"dataset path", "dataset.path", "ref.tsv", "ref.tsv"},
		{"dataset db", "dataset.db", "ref.duckdb", "ref.duckdb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseConfigValue(tt.key, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseConfigValue_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "annotations.alphafold", "true"},
		{"non-numeric threshold", "thresholds.high", "many"},
		{"zero threshold", "thresholds.moderate", "0"},
		{"negative threshold", "thresholds.high", "-2"},
		{"empty path", "dataset.path", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfigValue(tt.key, tt.value)
			require.Error(t, err)
		})
	}
}

func TestParseConfigValue_UnknownKeyListsKnown(t *testing.T) {
	_, err := parseConfigValue("bogus", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thresholds.high")
	assert.Contains(t, err.Error(), "dataset.path")
}
