// Package therapy provides drug recommendations for classified EGFR alterations.
package therapy

import "github.com/oncotools/egfr-resist/internal/mutation"

// Efficacy is the expected response of an alteration to a drug.
type Efficacy string

const (
	EfficacyHigh   Efficacy = "high"
	EfficacyMedium Efficacy = "medium"
	EfficacyLow    Efficacy = "low"
)

// Class describes a drug class and the alterations it does or does not cover.
type Class struct {
	Name      string
	Drugs     []string
	Mechanism string
	// Effective and Resistant list canonical mutation keys. Overcomes lists
	// the resistance mutations the class was developed against; those grade
	// high regardless of the alteration's resistance score, which measures
	// resistance to standard therapy, not to this class.
	Effective []string
	Resistant []string
	Overcomes []string
}

// Recommendation is a single drug suggestion with its expected efficacy.
type Recommendation struct {
	Drug      string
	Class     string
	Efficacy  Efficacy
	Rationale string
}

// classes is the curated drug response table, in recommendation order.
var classes = []Class{
	{
		Name:      "1st-generation TKI",
		Drugs:     []string{"Gefitinib", "Erlotinib"},
		Mechanism: "Reversible EGFR kinase inhibition",
		Effective: []string{"L858R", "EXON19 DEL", "G719X"},
		Resistant: []string{"T790M", "EXON20 INS"},
	},
	{
		Name:      "2nd-generation TKI",
		Drugs:     []string{"Afatinib", "Dacomitinib"},
		Mechanism: "Irreversible pan-HER inhibition",
		Effective: []string{"L858R", "EXON19 DEL", "G719X"},
		Resistant: []string{"T790M"},
	},
	{
		Name:      "3rd-generation TKI",
		Drugs:     []string{"Osimertinib"},
		Mechanism: "Selective inhibition of T790M-mutant EGFR",
		Effective: []string{"T790M", "L858R", "EXON19 DEL"},
		Resistant: []string{"C797S", "AMP"},
		Overcomes: []string{"T790M"},
	},
	{
		Name:      "Monoclonal antibody",
		Drugs:     []string{"Cetuximab", "Panitumumab"},
		Mechanism: "EGFR extracellular domain blocking",
		Effective: []string{"AMP"},
		Resistant: []string{},
	},
}

// Classes returns the curated drug class table.
func Classes() []Class { return classes }

// Recommend produces per-drug recommendations for an alteration. Output
// order is deterministic: class order, then drug order within the class.
func Recommend(key string, kind mutation.Kind, copyNumber int, resistanceScore float64) []Recommendation {
	var recs []Recommendation
	for _, c := range classes {
		eff := efficacy(c, key, kind, copyNumber, resistanceScore)
		for _, drug := range c.Drugs {
			recs = append(recs, Recommendation{
				Drug:      drug,
				Class:     c.Name,
				Efficacy:  eff,
				Rationale: rationale(c, key, kind),
			})
		}
	}
	return recs
}

func efficacy(c Class, key string, kind mutation.Kind, copyNumber int, score float64) Efficacy {
	if contains(c.Overcomes, key) {
		return EfficacyHigh
	}
	if contains(c.Effective, key) {
		switch {
		case score < 0.3:
			return EfficacyHigh
		case score < 0.6:
			return EfficacyMedium
		default:
			return EfficacyLow
		}
	}
	if contains(c.Resistant, key) {
		return EfficacyLow
	}
	// Amplification favors receptor blocking over kinase inhibition.
	if kind == mutation.KindAmplification && c.Name == "Monoclonal antibody" {
		if copyNumber >= 4 {
			return EfficacyHigh
		}
		return EfficacyMedium
	}
	return EfficacyMedium
}

func rationale(c Class, key string, kind mutation.Kind) string {
	switch {
	case contains(c.Overcomes, key):
		return "alteration is the resistance mutation this class was developed to overcome"
	case contains(c.Resistant, key):
		return "alteration is a known resistance marker for this class"
	case contains(c.Effective, key):
		return "alteration is a known responder to " + c.Mechanism
	case kind == mutation.KindAmplification:
		return "overexpression may benefit from receptor blocking"
	default:
		return "general EGFR targeting; no class-specific evidence"
	}
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
