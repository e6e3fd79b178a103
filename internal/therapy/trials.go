package therapy

// Trial is a curated clinical trial result supporting a drug recommendation.
type Trial struct {
	Name       string
	Drug       string
	Population string
	Endpoint   string
	Outcome    string
}

// trials is the curated trial evidence table.
var trials = []Trial{
	{
		Name:       "FLAURA",
		Drug:       "Osimertinib",
		Population: "EGFR+ NSCLC",
		Endpoint:   "PFS",
		Outcome:    "18.9 months vs 10.2 months",
	},
	{
		Name:       "LUX-Lung 3",
		Drug:       "Afatinib",
		Population: "EGFR+ NSCLC",
		Endpoint:   "PFS",
		Outcome:    "11.1 months vs 6.9 months",
	},
}

// Trials returns the curated trial evidence table.
func Trials() []Trial { return trials }

// TrialsFor returns the curated trials for a drug, in table order.
func TrialsFor(drug string) []Trial {
	var out []Trial
	for _, t := range trials {
		if t.Drug == drug {
			out = append(out, t)
		}
	}
	return out
}
