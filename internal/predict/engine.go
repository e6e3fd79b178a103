package predict

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/oncotools/egfr-resist/internal/mutation"
	"github.com/oncotools/egfr-resist/internal/refdata"
	"github.com/oncotools/egfr-resist/internal/therapy"
)

// UnclassifiableError reports a record whose category is outside the
// recognized set. Unreachable for records produced by mutation.Normalize;
// kept as a guard for hand-built records.
type UnclassifiableError struct {
	Category mutation.Category
}

func (e *UnclassifiableError) Error() string {
	return fmt.Sprintf("unclassifiable mutation category %q", string(e.Category))
}

// Thresholds holds the copy-number cutoffs for resistance bucketing:
// copyNumber >= High is high resistance, >= Moderate is moderate, below is
// low. Defaults follow the curated knowledge base but are configurable.
type Thresholds struct {
	Moderate int
	High     int
}

// DefaultThresholds is the default copy-number bucketing: <=1 low,
// 2-3 moderate, >=4 high.
var DefaultThresholds = Thresholds{Moderate: 2, High: 4}

// Exons with known resistance-associated structural alterations.
var resistanceExons = map[int]bool{20: true}

// Engine classifies normalized mutation records against a reference
// dataset. The dataset is injected at construction and never mutated, so a
// single Engine is safe for concurrent Classify calls.
type Engine struct {
	dataset    refdata.Dataset
	thresholds Thresholds
	logger     *zap.Logger
}

// NewEngine creates an engine over the given reference dataset.
func NewEngine(dataset refdata.Dataset) *Engine {
	return &Engine{
		dataset:    dataset,
		thresholds: DefaultThresholds,
		logger:     zap.NewNop(),
	}
}

// SetThresholds overrides the copy-number resistance thresholds.
func (e *Engine) SetThresholds(t Thresholds) {
	if t.Moderate < 1 || t.High <= t.Moderate {
		return
	}
	e.thresholds = t
}

// SetLogger sets the logger for rule-trace messages.
func (e *Engine) SetLogger(l *zap.Logger) {
	e.logger = l
}

// Classify maps a validated record to a prediction. It is total over
// validated input: unknown descriptors get a best-effort heuristic result,
// never an error. The only error is the defensive UnclassifiableError for
// a category outside the vocabulary.
func (e *Engine) Classify(rec *mutation.Record) (*Result, error) {
	key := rec.Key

	// Zero copies with a copy-number category means no amplification at
	// all; resolve against the wild-type entry instead of the descriptor.
	if rec.Category == mutation.CategoryCopyNumber && rec.CopyNumber == 0 {
		key = "WT"
	}

	if entry, ok := e.dataset.Lookup(key); ok {
		return e.fromEntry(rec, entry), nil
	}

	switch rec.Category {
	case mutation.CategoryStructural:
		return e.structuralFallback(rec), nil
	case mutation.CategoryCopyNumber:
		return e.copyNumberFallback(rec), nil
	default:
		return nil, &UnclassifiableError{Category: rec.Category}
	}
}

// ClassifyAll classifies records in order. Output index i corresponds to
// input index i.
func (e *Engine) ClassifyAll(recs []*mutation.Record) ([]*Result, error) {
	results := make([]*Result, 0, len(recs))
	for _, rec := range recs {
		r, err := e.Classify(rec)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// fromEntry copies a dataset row into an exact-confidence result.
func (e *Engine) fromEntry(rec *mutation.Record, entry *refdata.Entry) *Result {
	r := &Result{
		Key:             entry.Key,
		Mechanism:       entry.Mechanism,
		Pathway:         entry.Pathway,
		Resistance:      entry.Resistance,
		Therapy:         entry.Therapy,
		Confidence:      ConfidenceExact,
		ResistanceScore: entry.ResistanceScore,
		Significance:    entry.Significance,
	}
	r.Drugs = therapy.Recommend(entry.Key, rec.Kind, rec.CopyNumber, r.ResistanceScore)
	return r
}

// structuralFallback applies the category heuristic for structural
// alterations with no dataset entry.
func (e *Engine) structuralFallback(rec *mutation.Record) *Result {
	r := &Result{
		Key:        rec.Key,
		Mechanism:  refdata.MechanismGainOfFunction,
		Pathway:    refdata.PathwayPI3KAKT,
		Confidence: ConfidenceHeuristic,
	}
	if hintsRASMAPK(rec.Descriptor) {
		r.Pathway = refdata.PathwayRASMAPK
	}
	if resistanceExons[rec.Exon] {
		r.Resistance = refdata.ResistanceHigh
		r.ResistanceScore = 0.75
	} else {
		// Unknown exon stays moderate: no evidence to claim high resistance.
		r.Resistance = refdata.ResistanceModerate
		r.ResistanceScore = 0.40
	}
	r.Therapy = therapyFor(r.Mechanism, r.Resistance)
	r.Significance = "Uncharacterized structural alteration; requires functional study"
	r.Drugs = therapy.Recommend(rec.Key, rec.Kind, rec.CopyNumber, r.ResistanceScore)

	e.logger.Debug("structural fallback",
		zap.String("key", rec.Key),
		zap.Int("exon", rec.Exon),
		zap.String("resistance", r.Resistance.String()))
	return r
}

// copyNumberFallback applies the category heuristic for copy-number
// alterations with no dataset entry.
func (e *Engine) copyNumberFallback(rec *mutation.Record) *Result {
	if rec.CopyNumber == 0 {
		// No amplification; reached only when the dataset lacks a WT row.
		r := &Result{
			Key:          "WT",
			Mechanism:    refdata.MechanismNone,
			Pathway:      refdata.PathwayUnknown,
			Resistance:   refdata.ResistanceLow,
			Therapy:      therapyFor(refdata.MechanismNone, refdata.ResistanceLow),
			Confidence:   ConfidenceHeuristic,
			Significance: "No amplification detected",
		}
		r.Drugs = therapy.Recommend(r.Key, mutation.KindWildType, 0, 0)
		return r
	}
	r := &Result{
		Key:             rec.Key,
		Mechanism:       refdata.MechanismOverexpression,
		Pathway:         refdata.PathwayPI3KAKT, // ligand-hypersensitivity hypothesis
		Resistance:      e.bucketCopyNumber(rec.CopyNumber),
		Confidence:      ConfidenceHeuristic,
		ResistanceScore: amplificationScore(rec.CopyNumber),
	}
	r.Therapy = therapyFor(r.Mechanism, r.Resistance)
	r.Significance = fmt.Sprintf("%dx amplification", rec.CopyNumber)
	r.Drugs = therapy.Recommend(rec.Key, rec.Kind, rec.CopyNumber, r.ResistanceScore)

	e.logger.Debug("copy-number fallback",
		zap.String("key", rec.Key),
		zap.Int("copy_number", rec.CopyNumber),
		zap.String("resistance", r.Resistance.String()))
	return r
}

// bucketCopyNumber maps a copy count to a resistance level. Non-decreasing
// in the copy count for any valid Thresholds.
func (e *Engine) bucketCopyNumber(copyNumber int) refdata.ResistanceLevel {
	switch {
	case copyNumber >= e.thresholds.High:
		return refdata.ResistanceHigh
	case copyNumber >= e.thresholds.Moderate:
		return refdata.ResistanceModerate
	default:
		return refdata.ResistanceLow
	}
}

// amplificationScore estimates resistance likelihood from the copy count,
// clamped to [0, 1].
func amplificationScore(copyNumber int) float64 {
	var score float64
	if copyNumber >= 6 {
		score = 0.3 + float64(copyNumber-2)*0.1
		if score > 0.7 {
			score = 0.7
		}
	} else {
		score = 0.3 + float64(copyNumber-2)*0.05
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// therapyFor is the fixed mechanism x resistance therapy mapping.
func therapyFor(mechanism refdata.Mechanism, resistance refdata.ResistanceLevel) string {
	switch {
	case mechanism == refdata.MechanismNone:
		return "no EGFR-directed therapy indicated"
	case mechanism == refdata.MechanismGainOfFunction && resistance == refdata.ResistanceHigh:
		return "3rd-generation TKI or antibody-TKI combination"
	case mechanism == refdata.MechanismOverexpression && resistance == refdata.ResistanceHigh:
		return "combination therapy with anti-EGFR antibody"
	default:
		return "standard 1st/2nd-generation TKI, monitor"
	}
}

// hintsRASMAPK reports whether free descriptor text carries RAS/MAPK
// pathway markers.
func hintsRASMAPK(descriptor string) bool {
	d := strings.ToUpper(descriptor)
	for _, marker := range []string{"RAS", "MAPK", "ERK", "RAF"} {
		if strings.Contains(d, marker) {
			return true
		}
	}
	return false
}
