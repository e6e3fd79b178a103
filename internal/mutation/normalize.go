package mutation

import (
	"regexp"
	"strconv"
	"strings"
)

// Category vocabulary. Raw values are matched case-insensitively after
// trimming; underscores and hyphens are interchangeable.
var categoryAliases = map[string]Category{
	"structural":     CategoryStructural,
	"point mutation": CategoryStructural,
	"point":          CategoryStructural,
	"insertion":      CategoryStructural,
	"deletion":       CategoryStructural,
	"duplication":    CategoryStructural,
	"copy-number":    CategoryCopyNumber,
	"copy number":    CategoryCopyNumber,
	"cnv":            CategoryCopyNumber,
	"amplification":  CategoryCopyNumber,
}

// Descriptor vocabulary. Patterns are tried most-specific-first: protein
// change notation wins over exon-scoped events, which win over bare
// keywords. The first match is the canonical key; this is the tie-break
// rule for descriptors that could match more than one pattern.
var (
	// Protein change: L858R, p.T790M, G719X (X = any substitution)
	reProteinChange = regexp.MustCompile(`(?i)^(?:p\.)?([A-Z])(\d+)([A-Z*])$`)
	// Exon-scoped event: "Exon 19 deletion", "exon20 insertion", "ex19del"
	reExonEvent = regexp.MustCompile(`(?i)^(?:exon|ex)\s*(\d+)\s*(del(?:etion)?|ins(?:ertion)?|dup(?:lication)?)$`)
	// Event-first exon form: "Del19", "del 19", "ins20"
	reEventExon = regexp.MustCompile(`(?i)^(del(?:etion)?|ins(?:ertion)?|dup(?:lication)?)\s*(\d+)$`)
	// Bare keywords
	reAmplification = regexp.MustCompile(`(?i)^(?:egfr\s+)?amp(?:lification)?$`)
	reWildType      = regexp.MustCompile(`(?i)^(?:wild[\s-]?type|wt|none)$`)
)

// ParseCategory validates a raw category value against the recognized
// vocabulary. Returns a CategoryError for anything outside it.
func ParseCategory(raw string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	norm = strings.ReplaceAll(norm, "_", " ")
	if c, ok := categoryAliases[norm]; ok {
		return c, nil
	}
	// Hyphen/space variants of multi-word aliases
	if c, ok := categoryAliases[strings.ReplaceAll(norm, "-", " ")]; ok {
		return c, nil
	}
	return "", &CategoryError{Value: raw}
}

// Normalize converts raw user-supplied fields into a canonical Record.
// It is pure: no side effects, deterministic output for a given input.
func Normalize(rawDescriptor, rawCategory string, rawCopyNumber int) (*Record, error) {
	category, err := ParseCategory(rawCategory)
	if err != nil {
		return nil, err
	}
	if rawCopyNumber < 0 {
		return nil, &CopyNumberError{Value: rawCopyNumber}
	}

	rec := &Record{
		Descriptor: strings.TrimSpace(rawDescriptor),
		Category:   category,
		CopyNumber: rawCopyNumber,
	}
	rec.Key, rec.Exon, rec.Kind = canonicalize(rec.Descriptor, category)
	return rec, nil
}

// canonicalize maps a trimmed descriptor to its canonical key, exon number
// (0 if none) and refined kind. Unknown descriptors canonicalize to their
// upper-cased text so repeated calls still agree on a single key.
func canonicalize(descriptor string, category Category) (key string, exon int, kind Kind) {
	if m := reProteinChange.FindStringSubmatch(descriptor); m != nil {
		key = strings.ToUpper(m[1] + m[2] + m[3])
		return key, exonForProteinPosition(m[2]), KindPoint
	}
	if m := reExonEvent.FindStringSubmatch(descriptor); m != nil {
		return exonEventKey(m[1], m[2])
	}
	if m := reEventExon.FindStringSubmatch(descriptor); m != nil {
		return exonEventKey(m[2], m[1])
	}
	if reAmplification.MatchString(descriptor) {
		return "AMP", 0, KindAmplification
	}
	if reWildType.MatchString(descriptor) {
		return "WT", 0, KindWildType
	}
	if category == CategoryCopyNumber {
		// Unrecognized copy-number descriptors stay unknown on purpose: the
		// copy count, not the text, carries the signal, so the engine's
		// copy-number rules decide rather than a fixed dataset row.
		return strings.ToUpper(descriptor), 0, KindAmplification
	}
	return strings.ToUpper(descriptor), 0, KindUnknown
}

func exonEventKey(exonDigits, event string) (string, int, Kind) {
	n, _ := strconv.Atoi(exonDigits)
	switch strings.ToLower(event[:3]) {
	case "del":
		return "EXON" + exonDigits + " DEL", n, KindDeletion
	case "ins":
		return "EXON" + exonDigits + " INS", n, KindInsertion
	default:
		return "EXON" + exonDigits + " DUP", n, KindDuplication
	}
}

// exonForProteinPosition maps a protein position to the EGFR exon containing
// it. Boundaries follow the canonical EGFR transcript (ENST00000275493).
func exonForProteinPosition(digits string) int {
	pos, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	switch {
	case pos >= 688 && pos <= 728:
		return 18
	case pos >= 729 && pos <= 761:
		return 19
	case pos >= 762 && pos <= 823:
		return 20
	case pos >= 824 && pos <= 875:
		return 21
	default:
		return 0
	}
}
