// Package output provides prediction result formatters.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/oncotools/egfr-resist/internal/mutation"
	"github.com/oncotools/egfr-resist/internal/predict"
)

// TabWriter writes predictions in tab-delimited format, one row per record.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Descriptor",
			"Key",
			"Category",
			"Copy_Number",
			"Mechanism",
			"Pathway",
			"Resistance_Level",
			"Resistance_Score",
			"Therapy",
			"Confidence",
			"Significance",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single prediction.
func (tw *TabWriter) Write(rec *mutation.Record, res *predict.Result) error {
	significance := "-"
	if res.Significance != "" {
		significance = res.Significance
	}

	_, err := fmt.Fprintf(tw.w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n",
		rec.Descriptor,
		res.Key,
		rec.Category,
		rec.CopyNumber,
		res.Mechanism,
		res.Pathway,
		res.Resistance,
		res.ResistanceScore,
		res.Therapy,
		res.Confidence,
		significance,
	)
	return err
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
