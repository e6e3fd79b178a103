// Package mutation provides EGFR mutation records and descriptor normalization.
package mutation

// Category identifies the broad class of an alteration.
type Category string

const (
	// CategoryStructural covers point mutations, insertions, deletions and
	// duplications that alter protein structure.
	CategoryStructural Category = "structural"
	// CategoryCopyNumber covers gene amplification events.
	CategoryCopyNumber Category = "copy-number"
)

// Kind refines the structural class of an alteration, parsed from the
// descriptor text.
type Kind string

const (
	KindPoint         Kind = "point"
	KindInsertion     Kind = "insertion"
	KindDeletion      Kind = "deletion"
	KindDuplication   Kind = "duplication"
	KindAmplification Kind = "amplification"
	KindWildType      Kind = "wild-type"
	KindUnknown       Kind = "unknown"
)

// Record is a validated, normalized mutation ready for classification.
type Record struct {
	// Descriptor is the raw user-supplied text, trimmed.
	Descriptor string
	// Key is the canonical mutation key used for dataset lookup
	// (e.g. "L858R", "EXON20 INS", "AMP", "WT").
	Key string
	// Category is the validated alteration class.
	Category Category
	// CopyNumber is the gene copy count; meaningful for copy-number records.
	CopyNumber int
	// Exon is the exon number referenced by the descriptor, 0 if unknown.
	Exon int
	// Kind is the refined alteration kind parsed from the descriptor.
	Kind Kind
}
