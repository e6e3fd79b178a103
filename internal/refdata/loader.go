package refdata

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadError reports a dataset that could not be loaded: missing file,
// missing columns, malformed rows or duplicate keys. Any LoadError is fatal
// at startup; the engine must not classify without a valid dataset.
type LoadError struct {
	Path string
	Line int // 0 when the whole file is at fault
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load dataset %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Reference dataset TSV column names.
const (
	colKey          = "mutation_key"
	colMechanism    = "mechanism"
	colPathway      = "pathway"
	colResistance   = "resistance_level"
	colTherapy      = "therapy"
	colScore        = "resistance_score"
	colSignificance = "clinical_significance"
)

// Load reads a reference dataset TSV. The header must name at least the
// mutation_key, mechanism, pathway, resistance_level and therapy columns;
// resistance_score and clinical_significance are optional. Lines starting
// with '#' are skipped.
func Load(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// Read header to find column indices
	if !scanner.Scan() {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("empty file")}
	}
	header := strings.Split(scanner.Text(), "\t")

	idx := map[string]int{}
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	for _, required := range []string{colKey, colMechanism, colPathway, colResistance, colTherapy} {
		if _, ok := idx[required]; !ok {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("missing %q column", required)}
		}
	}
	scoreIdx, hasScore := idx[colScore]
	sigIdx, hasSig := idx[colSignificance]

	d := make(Dataset)
	line := 1
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < len(header) {
			return nil, &LoadError{Path: path, Line: line, Err: fmt.Errorf("expected %d columns, got %d", len(header), len(fields))}
		}

		e := &Entry{
			Key:     strings.TrimSpace(fields[idx[colKey]]),
			Therapy: strings.TrimSpace(fields[idx[colTherapy]]),
		}
		if e.Key == "" {
			return nil, &LoadError{Path: path, Line: line, Err: fmt.Errorf("empty mutation key")}
		}
		if _, dup := d[e.Key]; dup {
			return nil, &LoadError{Path: path, Line: line, Err: fmt.Errorf("duplicate mutation key %q", e.Key)}
		}
		if e.Mechanism, err = ParseMechanism(strings.TrimSpace(fields[idx[colMechanism]])); err != nil {
			return nil, &LoadError{Path: path, Line: line, Err: err}
		}
		if e.Pathway, err = ParsePathway(strings.TrimSpace(fields[idx[colPathway]])); err != nil {
			return nil, &LoadError{Path: path, Line: line, Err: err}
		}
		if e.Resistance, err = ParseResistanceLevel(strings.TrimSpace(fields[idx[colResistance]])); err != nil {
			return nil, &LoadError{Path: path, Line: line, Err: err}
		}
		if hasScore && scoreIdx < len(fields) {
			s := strings.TrimSpace(fields[scoreIdx])
			if s != "" {
				if e.ResistanceScore, err = strconv.ParseFloat(s, 64); err != nil {
					return nil, &LoadError{Path: path, Line: line, Err: fmt.Errorf("bad resistance_score %q", s)}
				}
			}
		}
		if hasSig && sigIdx < len(fields) {
			e.Significance = strings.TrimSpace(fields[sigIdx])
		}

		d[e.Key] = e
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(d) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("no entries")}
	}

	return d, nil
}
