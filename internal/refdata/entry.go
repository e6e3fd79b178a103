// Package refdata provides the curated EGFR alteration reference dataset.
package refdata

import "fmt"

// Mechanism is the predicted biological mechanism of an alteration.
type Mechanism string

const (
	MechanismGainOfFunction Mechanism = "gain-of-function"
	MechanismOverexpression Mechanism = "overexpression"
	MechanismNone           Mechanism = "none/wild-type"
	MechanismOther          Mechanism = "other"
)

// Pathway is the predicted downstream signaling pathway.
type Pathway string

const (
	PathwayPI3KAKT Pathway = "PI3K/AKT"
	PathwayRASMAPK Pathway = "RAS/MAPK"
	PathwayUnknown Pathway = "other/unknown"
)

// ResistanceLevel is an ordinal estimate of therapy resistance.
// Levels compare with < and >: ResistanceLow < ResistanceModerate < ResistanceHigh.
type ResistanceLevel int

const (
	ResistanceLow ResistanceLevel = iota
	ResistanceModerate
	ResistanceHigh
)

func (r ResistanceLevel) String() string {
	switch r {
	case ResistanceLow:
		return "low"
	case ResistanceModerate:
		return "moderate"
	case ResistanceHigh:
		return "high"
	}
	return fmt.Sprintf("ResistanceLevel(%d)", int(r))
}

// Entry is a single row of the curated reference dataset.
type Entry struct {
	// Key is the canonical mutation key, unique across the dataset.
	Key string
	// Mechanism, Pathway and Resistance are the curated labels.
	Mechanism  Mechanism
	Pathway    Pathway
	Resistance ResistanceLevel
	// Therapy is the recommended treatment strategy.
	Therapy string
	// ResistanceScore is the curated 0..1 resistance likelihood.
	ResistanceScore float64
	// Significance is a free-text clinical-significance note.
	Significance string
}

// ParseMechanism maps a dataset label to a Mechanism.
func ParseMechanism(s string) (Mechanism, error) {
	switch Mechanism(s) {
	case MechanismGainOfFunction, MechanismOverexpression, MechanismNone, MechanismOther:
		return Mechanism(s), nil
	}
	return "", fmt.Errorf("unknown mechanism label %q", s)
}

// ParsePathway maps a dataset label to a Pathway.
func ParsePathway(s string) (Pathway, error) {
	switch Pathway(s) {
	case PathwayPI3KAKT, PathwayRASMAPK, PathwayUnknown:
		return Pathway(s), nil
	}
	return "", fmt.Errorf("unknown pathway label %q", s)
}

// ParseResistanceLevel maps a dataset label to a ResistanceLevel.
func ParseResistanceLevel(s string) (ResistanceLevel, error) {
	switch s {
	case "low":
		return ResistanceLow, nil
	case "moderate":
		return ResistanceModerate, nil
	case "high":
		return ResistanceHigh, nil
	}
	return 0, fmt.Errorf("unknown resistance level %q", s)
}
