package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/oncotools/egfr-resist/internal/refdata"
)

func runDataset(args []string) int {
	if len(args) < 1 {
		printDatasetUsage()
		return ExitUsage
	}

	switch args[0] {
	case "load":
		return runDatasetLoad(args[1:])
	case "info":
		return runDatasetInfo(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown dataset command %q\n\n", args[0])
		printDatasetUsage()
		return ExitUsage
	}
}

func printDatasetUsage() {
	fmt.Fprintf(os.Stderr, `Manage the DuckDB-backed reference dataset.

Usage:
  egfr-resist dataset <command> [options]

Commands:
  load    Import a reference dataset TSV into a DuckDB store
  info    Show row counts for a DuckDB store

Examples:
  egfr-resist dataset load --db ref.duckdb egfr_reference.tsv
  egfr-resist dataset info --db ref.duckdb
`)
}

func runDatasetLoad(args []string) int {
	fs := flag.NewFlagSet("dataset load", flag.ExitOnError)
	var dbPath string
	fs.StringVar(&dbPath, "db", "", "DuckDB store path (required)")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if dbPath == "" || fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: --db and a TSV file argument are required\n")
		return ExitUsage
	}
	tsvPath := fs.Arg(0)

	// Validate the TSV before importing so a malformed file never reaches
	// the store.
	if _, err := refdata.Load(tsvPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	store, err := refdata.OpenStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	defer store.Close()

	if err := store.LoadTSV(tsvPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	count, err := store.Count()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	fmt.Printf("Loaded %d reference entries into %s\n", count, dbPath)
	return ExitSuccess
}

func runDatasetInfo(args []string) int {
	fs := flag.NewFlagSet("dataset info", flag.ExitOnError)
	var dbPath string
	fs.StringVar(&dbPath, "db", "", "DuckDB store path (required)")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if dbPath == "" {
		fmt.Fprintf(os.Stderr, "Error: --db is required\n")
		return ExitUsage
	}

	store, err := refdata.OpenStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	defer store.Close()

	if !store.Loaded() {
		fmt.Printf("%s: empty reference store\n", dbPath)
		return ExitSuccess
	}
	count, err := store.Count()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	fmt.Printf("%s: %d reference entries\n", dbPath, count)
	return ExitSuccess
}
