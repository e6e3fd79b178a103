// Package batch provides batch file input of mutation records.
//
// Input is a delimited text file (tab or comma, detected from the header)
// with one mutation per row. Gzipped input is detected from the magic bytes.
package batch

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/oncotools/egfr-resist/internal/mutation"
)

// Recognized header column names. Aliases cover common export formats.
var (
	descriptorCols = []string{"descriptor", "mutation", "detail", "alteration"}
	categoryCols   = []string{"category", "type", "mutation_type"}
	copyNumberCols = []string{"copy_number", "copies", "cn"}
)

// RowError reports a row that failed normalization. Row errors do not abort
// the batch; the parser keeps going.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Parser reads mutation records from a delimited batch file.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	delim      string
	line       int

	descriptorIdx int
	categoryIdx   int
	copyNumberIdx int
}

// NewParser opens a batch file. Use "-" for stdin. Plain and gzipped files
// are both supported.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	if _, err := file.Read(buf); err != nil {
		file.Close()
		return nil, fmt.Errorf("read batch header: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek batch file: %w", err)
	}

	if buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	if err := p.parseHeader(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g. stdin).
func NewParserFromReader(r io.Reader) (*Parser, error) {
	p := &Parser{reader: bufio.NewReader(r)}
	if err := p.parseHeader(); err != nil {
		return nil, err
	}
	return p, nil
}

// Close closes the underlying readers.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

func (p *Parser) parseHeader() error {
	line, err := p.readLine()
	if err != nil {
		return fmt.Errorf("read batch header: %w", err)
	}

	// Detect delimiter: tab wins if present, otherwise comma.
	p.delim = ","
	if strings.Contains(line, "\t") {
		p.delim = "\t"
	}

	p.descriptorIdx, p.categoryIdx, p.copyNumberIdx = -1, -1, -1
	for i, col := range strings.Split(line, p.delim) {
		name := strings.ToLower(strings.TrimSpace(col))
		switch {
		case matchesColumn(name, descriptorCols):
			p.descriptorIdx = i
		case matchesColumn(name, categoryCols):
			p.categoryIdx = i
		case matchesColumn(name, copyNumberCols):
			p.copyNumberIdx = i
		}
	}
	if p.descriptorIdx < 0 {
		return fmt.Errorf("batch header: missing descriptor column (one of %s)", strings.Join(descriptorCols, ", "))
	}
	if p.categoryIdx < 0 {
		return fmt.Errorf("batch header: missing category column (one of %s)", strings.Join(categoryCols, ", "))
	}
	return nil
}

func matchesColumn(name string, aliases []string) bool {
	for _, a := range aliases {
		if name == a {
			return true
		}
	}
	return false
}

// Next returns the next record. A non-nil *RowError reports a row that
// failed validation without aborting the batch. All three return values are
// nil at end of input.
func (p *Parser) Next() (*mutation.Record, *RowError, error) {
	for {
		line, err := p.readLine()
		if err == io.EOF {
			return nil, nil, nil
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read batch line: %w", err)
		}
		p.line++

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, p.delim)
		get := func(idx int) string {
			if idx < 0 || idx >= len(fields) {
				return ""
			}
			return strings.TrimSpace(fields[idx])
		}

		copyNumber := 0
		if raw := get(p.copyNumberIdx); raw != "" {
			copyNumber, err = strconv.Atoi(raw)
			if err != nil {
				return nil, &RowError{Line: p.line + 1, Err: fmt.Errorf("bad copy number %q", raw)}, nil
			}
		}

		rec, err := mutation.Normalize(get(p.descriptorIdx), get(p.categoryIdx), copyNumber)
		if err != nil {
			return nil, &RowError{Line: p.line + 1, Err: err}, nil
		}
		return rec, nil, nil
	}
}

// readLine reads one line, trimming the trailing newline. Returns io.EOF
// only when no data remains.
func (p *Parser) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		return strings.TrimRight(line, "\r\n"), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
