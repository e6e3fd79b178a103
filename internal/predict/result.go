// Package predict implements the EGFR resistance classification engine.
package predict

import (
	"github.com/oncotools/egfr-resist/internal/refdata"
	"github.com/oncotools/egfr-resist/internal/therapy"
)

// Confidence indicates whether a result came from an exact dataset match or
// a category fallback heuristic.
type Confidence string

const (
	ConfidenceExact     Confidence = "exact"
	ConfidenceHeuristic Confidence = "heuristic"
)

// Result is a single prediction. All classification fields are always
// populated; Drugs may be empty only for wild-type results.
type Result struct {
	// Key is the canonical mutation key the prediction was made for.
	Key string
	// Mechanism, Pathway, Resistance and Therapy are the four core outputs.
	Mechanism  refdata.Mechanism
	Pathway    refdata.Pathway
	Resistance refdata.ResistanceLevel
	Therapy    string
	// Confidence marks the provenance of the result.
	Confidence Confidence
	// ResistanceScore is the 0..1 resistance likelihood backing Resistance.
	ResistanceScore float64
	// Significance is a clinical-significance note, when known.
	Significance string
	// Drugs are per-drug recommendations derived from the drug response table.
	Drugs []therapy.Recommendation
}
