package refdata

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
)

// Store is a DuckDB-backed reference dataset, for curated TSVs too large to
// re-parse on every run. The store is written only by Load; classification
// reads go through the immutable Dataset returned by Dataset().
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates a DuckDB database for reference data at the
// given path. An empty path opens an in-memory database.
func OpenStore(dbPath string) (*Store, error) {
	if dbPath != "" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS reference (
		mutation_key VARCHAR PRIMARY KEY,
		mechanism VARCHAR,
		pathway VARCHAR,
		resistance_level VARCHAR,
		therapy VARCHAR,
		resistance_score DOUBLE,
		clinical_significance VARCHAR
	)`)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Loaded returns true if the reference table has data.
func (s *Store) Loaded() bool {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM reference").Scan(&count)
	return err == nil && count > 0
}

// Count returns the number of reference rows.
func (s *Store) Count() (int64, error) {
	var count int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM reference").Scan(&count); err != nil {
		return 0, fmt.Errorf("count reference rows: %w", err)
	}
	return count, nil
}

// LoadTSV bulk-loads a reference dataset TSV using DuckDB's read_csv.
// Reloading replaces any existing rows. The primary key on mutation_key
// rejects duplicate-key inputs.
func (s *Store) LoadTSV(tsvPath string) error {
	if _, err := s.db.Exec(`DELETE FROM reference`); err != nil {
		return fmt.Errorf("clear reference table: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO reference
		SELECT mutation_key, mechanism, pathway, resistance_level, therapy,
			CAST(resistance_score AS DOUBLE), clinical_significance
		FROM read_csv('%s', delim='\t', header=true)`,
		strings.ReplaceAll(tsvPath, "'", "''"))

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("loading reference data: %w", err)
	}
	return nil
}

// Lookup queries a single reference entry by canonical key.
func (s *Store) Lookup(key string) (*Entry, bool) {
	row := s.db.QueryRow(`SELECT mutation_key, mechanism, pathway, resistance_level,
		therapy, resistance_score, clinical_significance
		FROM reference WHERE mutation_key = ? LIMIT 1`, key)
	e, err := scanEntry(row.Scan)
	if err != nil {
		return nil, false
	}
	return e, true
}

// Dataset materializes the whole store as an immutable in-memory Dataset.
func (s *Store) Dataset() (Dataset, error) {
	rows, err := s.db.Query(`SELECT mutation_key, mechanism, pathway, resistance_level,
		therapy, resistance_score, clinical_significance FROM reference`)
	if err != nil {
		return nil, fmt.Errorf("query reference rows: %w", err)
	}
	defer rows.Close()

	d := make(Dataset)
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		d[e.Key] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reference rows: %w", err)
	}
	return d, nil
}

func scanEntry(scan func(...any) error) (*Entry, error) {
	var mechanism, pathway, resistance string
	var sig sql.NullString
	var score sql.NullFloat64
	e := &Entry{}
	if err := scan(&e.Key, &mechanism, &pathway, &resistance, &e.Therapy, &score, &sig); err != nil {
		return nil, err
	}
	var err error
	if e.Mechanism, err = ParseMechanism(mechanism); err != nil {
		return nil, err
	}
	if e.Pathway, err = ParsePathway(pathway); err != nil {
		return nil, err
	}
	if e.Resistance, err = ParseResistanceLevel(resistance); err != nil {
		return nil, err
	}
	e.ResistanceScore = score.Float64
	e.Significance = sig.String
	return e, nil
}
