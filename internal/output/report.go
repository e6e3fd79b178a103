package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/oncotools/egfr-resist/internal/mutation"
	"github.com/oncotools/egfr-resist/internal/predict"
	"github.com/oncotools/egfr-resist/internal/therapy"
)

// ReportWriter writes a human-readable prediction report and tracks match
// statistics for the end-of-run summary.
type ReportWriter struct {
	w         *tabwriter.Writer
	out       io.Writer
	total     int
	exact     int
	heuristic int
	rowErrors int
}

// NewReportWriter creates a new report writer.
func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{
		w:   tabwriter.NewWriter(w, 0, 0, 2, ' ', 0),
		out: w,
	}
}

// WriteResult writes one prediction block, including drug recommendations.
func (r *ReportWriter) WriteResult(rec *mutation.Record, res *predict.Result) error {
	r.total++
	if res.Confidence == predict.ConfidenceExact {
		r.exact++
	} else {
		r.heuristic++
	}

	fmt.Fprintf(r.w, "%s (%s)\n", rec.Descriptor, rec.Category)
	fmt.Fprintf(r.w, "  Mechanism:\t%s\n", res.Mechanism)
	fmt.Fprintf(r.w, "  Pathway:\t%s\n", res.Pathway)
	fmt.Fprintf(r.w, "  Resistance:\t%s (score %.2f)\n", res.Resistance, res.ResistanceScore)
	fmt.Fprintf(r.w, "  Therapy:\t%s\n", res.Therapy)
	fmt.Fprintf(r.w, "  Confidence:\t%s\n", res.Confidence)
	if res.Significance != "" {
		fmt.Fprintf(r.w, "  Note:\t%s\n", res.Significance)
	}
	for _, d := range res.Drugs {
		fmt.Fprintf(r.w, "  Drug:\t%s\t%s\t%s\t%s\n", d.Drug, d.Class, d.Efficacy, d.Rationale)
		if d.Efficacy != therapy.EfficacyHigh {
			continue
		}
		for _, tr := range therapy.TrialsFor(d.Drug) {
			fmt.Fprintf(r.w, "  Trial:\t%s\t%s\t%s %s\n", tr.Name, tr.Population, tr.Endpoint, tr.Outcome)
		}
	}
	_, err := fmt.Fprintln(r.w)
	return err
}

// CountRowError records a row that failed validation, for the summary.
func (r *ReportWriter) CountRowError() {
	r.rowErrors++
}

// Flush flushes buffered output.
func (r *ReportWriter) Flush() error {
	return r.w.Flush()
}

// WriteSummary writes run statistics to the given writer.
func (r *ReportWriter) WriteSummary(w io.Writer) {
	fmt.Fprintf(w, "\nPrediction Summary:\n")
	fmt.Fprintf(w, "  Records:          %d\n", r.total)
	fmt.Fprintf(w, "  Exact matches:    %d\n", r.exact)
	fmt.Fprintf(w, "  Heuristic calls:  %d\n", r.heuristic)
	fmt.Fprintf(w, "  Row errors:       %d\n", r.rowErrors)
}
