package refdata

// Dataset maps canonical mutation keys to reference entries. It is built
// once at load time and never mutated afterwards, so it is safe to share
// across concurrent readers without locking.
type Dataset map[string]*Entry

// Lookup returns the entry for a canonical key, if present.
func (d Dataset) Lookup(key string) (*Entry, bool) {
	e, ok := d[key]
	return e, ok
}

// Has returns true if the key is a known alteration.
func (d Dataset) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Builtin returns the curated dataset shipped with the binary. The rows
// mirror egfr_reference.tsv in the repository root.
func Builtin() Dataset {
	entries := []*Entry{
		{
			Key:             "L858R",
			Mechanism:       MechanismGainOfFunction,
			Pathway:         PathwayRASMAPK,
			Resistance:      ResistanceLow,
			Therapy:         "standard 1st/2nd-generation TKI, monitor",
			ResistanceScore: 0.30,
			Significance:    "Most common EGFR point mutation in NSCLC (40-45%)",
		},
		{
			Key:             "T790M",
			Mechanism:       MechanismOther,
			Pathway:         PathwayRASMAPK,
			Resistance:      ResistanceHigh,
			Therapy:         "3rd-generation TKI (osimertinib)",
			ResistanceScore: 0.80,
			Significance:    "Gatekeeper mutation; 50-60% of acquired resistance",
		},
		{
			Key:             "G719X",
			Mechanism:       MechanismGainOfFunction,
			Pathway:         PathwayRASMAPK,
			Resistance:      ResistanceModerate,
			Therapy:         "standard 1st/2nd-generation TKI, monitor",
			ResistanceScore: 0.40,
			Significance:    "Uncommon exon 18 mutation (2-3% of EGFR mutations)",
		},
		{
			Key:             "C797S",
			Mechanism:       MechanismOther,
			Pathway:         PathwayRASMAPK,
			Resistance:      ResistanceHigh,
			Therapy:         "3rd-generation TKI or antibody-TKI combination",
			ResistanceScore: 0.85,
			Significance:    "Tertiary resistance to 3rd-generation TKIs",
		},
		{
			Key:             "EXON19 DEL",
			Mechanism:       MechanismGainOfFunction,
			Pathway:         PathwayPI3KAKT,
			Resistance:      ResistanceLow,
			Therapy:         "standard 1st/2nd-generation TKI, monitor",
			ResistanceScore: 0.20,
			Significance:    "Most common EGFR alteration (45-50%); highly TKI sensitive",
		},
		{
			Key:             "EXON20 INS",
			Mechanism:       MechanismGainOfFunction,
			Pathway:         PathwayPI3KAKT,
			Resistance:      ResistanceHigh,
			Therapy:         "3rd-generation TKI or antibody-TKI combination",
			ResistanceScore: 0.75,
			Significance:    "4-10% of EGFR mutations; poor response to standard TKIs",
		},
		{
			Key:             "AMP",
			Mechanism:       MechanismOverexpression,
			Pathway:         PathwayPI3KAKT,
			Resistance:      ResistanceModerate,
			Therapy:         "combination therapy with anti-EGFR antibody",
			ResistanceScore: 0.50,
			Significance:    "Ligand-hypersensitive overexpression via copy-number gain",
		},
		{
			Key:             "WT",
			Mechanism:       MechanismNone,
			Pathway:         PathwayUnknown,
			Resistance:      ResistanceLow,
			Therapy:         "no EGFR-directed therapy indicated",
			ResistanceScore: 0.00,
			Significance:    "No EGFR alteration detected",
		},
	}

	d := make(Dataset, len(entries))
	for _, e := range entries {
		d[e.Key] = e
	}
	return d
}
