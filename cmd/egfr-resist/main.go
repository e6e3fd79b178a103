// Package main provides the egfr-resist command-line tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/oncotools/egfr-resist/internal/batch"
	"github.com/oncotools/egfr-resist/internal/mutation"
	"github.com/oncotools/egfr-resist/internal/output"
	"github.com/oncotools/egfr-resist/internal/predict"
	"github.com/oncotools/egfr-resist/internal/refdata"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("egfr-resist version %s (%s) built %s\n", version, commit, date)
		return ExitSuccess
	}

	initConfig()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		return ExitUsage
	}

	switch args[0] {
	case "predict":
		return runPredict(args[1:])
	case "batch":
		return runBatch(args[1:])
	case "dataset":
		return runDataset(args[1:])
	case "config":
		return runConfig(args[1:])
	case "help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printUsage()
		return ExitUsage
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `egfr-resist - EGFR resistance mechanism predictor

Usage:
  egfr-resist [options] <command> [arguments]

Commands:
  predict     Predict mechanism/pathway/resistance/therapy for one alteration
  batch       Predict for every row of a CSV/TSV batch file
  dataset     Manage the DuckDB-backed reference dataset
  config      Show, get, or set configuration values
  help        Show this help message

Global Options:
  --version   Show version information

Examples:
  # Single prediction against the built-in curated dataset
  egfr-resist predict "Exon 20 insertion"

  # Amplification with an explicit copy number
  egfr-resist predict --category amplification --copy-number 5 "EGFR amp"

  # Batch input, tab-delimited results
  egfr-resist batch -f tab mutations.csv

  # Import a curated TSV into a DuckDB store
  egfr-resist dataset load --db ref.duckdb egfr_reference.tsv

For more information on a command, use:
  egfr-resist <command> --help
`)
}

func runPredict(args []string) int {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)

	var (
		category    string
		copyNumber  int
		datasetPath string
		dbPath      string
		format      string
		outputFile  string
		verbose     bool
	)
	fs.StringVar(&category, "category", "structural", "Mutation category: structural or copy-number")
	fs.IntVar(&copyNumber, "copy-number", 1, "Gene copy number (copy-number category)")
	fs.StringVar(&datasetPath, "dataset", "", "Reference dataset TSV (default: built-in curated dataset)")
	fs.StringVar(&dbPath, "db", "", "DuckDB reference store (overrides --dataset)")
	fs.StringVar(&format, "f", "report", "Output format: report, tab")
	fs.StringVar(&format, "format", "report", "Output format: report, tab")
	fs.StringVar(&outputFile, "o", "", "Output file (default: stdout)")
	fs.StringVar(&outputFile, "output", "", "Output file (default: stdout)")
	fs.BoolVar(&verbose, "verbose", false, "Log classification rule traces")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Predict mechanism, pathway, resistance level and therapy for one alteration.

Usage:
  egfr-resist predict [options] <descriptor>

Arguments:
  <descriptor>  Alteration descriptor, e.g. "L858R", "Exon 19 deletion"

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: descriptor argument required\n\n")
		fs.Usage()
		return ExitUsage
	}

	rec, err := mutation.Normalize(fs.Arg(0), category, copyNumber)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	engine, code := buildEngine(datasetPath, dbPath)
	if engine == nil {
		return code
	}
	if verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			defer logger.Sync()
			engine.SetLogger(logger)
		}
	}

	res, err := engine.Classify(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	out, cleanup, code := openOutput(outputFile)
	if out == nil {
		return code
	}
	defer cleanup()

	switch format {
	case "tab":
		tw := output.NewTabWriter(out)
		if err := tw.WriteHeader(); err == nil {
			err = tw.Write(rec, res)
		}
		if err == nil {
			err = tw.Flush()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			return ExitError
		}
	case "report":
		rw := output.NewReportWriter(out)
		if err := rw.WriteResult(rec, res); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			return ExitError
		}
		if err := rw.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			return ExitError
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", format)
		return ExitError
	}

	return ExitSuccess
}

func runBatch(args []string) int {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)

	var (
		datasetPath string
		dbPath      string
		format      string
		outputFile  string
	)
	fs.StringVar(&datasetPath, "dataset", "", "Reference dataset TSV (default: built-in curated dataset)")
	fs.StringVar(&dbPath, "db", "", "DuckDB reference store (overrides --dataset)")
	fs.StringVar(&format, "f", "tab", "Output format: tab, report")
	fs.StringVar(&format, "format", "tab", "Output format: tab, report")
	fs.StringVar(&outputFile, "o", "", "Output file (default: stdout)")
	fs.StringVar(&outputFile, "output", "", "Output file (default: stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Predict for every row of a batch file.

The batch file is tab- or comma-delimited with a header naming descriptor,
category and copy_number columns. Rows that fail validation are reported to
stderr and skipped; the batch keeps going.

Usage:
  egfr-resist batch [options] <input-file>

Arguments:
  <input-file>  Batch CSV/TSV file (use '-' for stdin; .gz supported)

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: input file argument required\n\n")
		fs.Usage()
		return ExitUsage
	}

	parser, err := batch.NewParser(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Hint: Check that the file path is correct\n")
		}
		return ExitError
	}
	defer parser.Close()

	engine, code := buildEngine(datasetPath, dbPath)
	if engine == nil {
		return code
	}

	out, cleanup, code := openOutput(outputFile)
	if out == nil {
		return code
	}
	defer cleanup()

	var tw *output.TabWriter
	rw := output.NewReportWriter(out)
	if format == "tab" {
		tw = output.NewTabWriter(out)
		if err := tw.WriteHeader(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing header: %v\n", err)
			return ExitError
		}
	} else if format != "report" {
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", format)
		return ExitError
	}

	for {
		rec, rowErr, err := parser.Next()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitError
		}
		if rowErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping row: %v\n", rowErr)
			rw.CountRowError()
			continue
		}
		if rec == nil {
			break
		}

		res, err := engine.Classify(rec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitError
		}

		if tw != nil {
			err = tw.Write(rec, res)
		} else {
			err = rw.WriteResult(rec, res)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			return ExitError
		}
	}

	if tw != nil {
		if err := tw.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "Error flushing output: %v\n", err)
			return ExitError
		}
	} else {
		if err := rw.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "Error flushing output: %v\n", err)
			return ExitError
		}
	}
	rw.WriteSummary(os.Stderr)

	return ExitSuccess
}

// buildEngine resolves the reference dataset (DuckDB store, TSV file,
// configured default, or the built-in curated table) and constructs the
// engine with configured thresholds. Returns a nil engine and an exit code
// on failure: a bad dataset is fatal, nothing gets classified.
func buildEngine(datasetPath, dbPath string) (*predict.Engine, int) {
	dataset, err := resolveDataset(datasetPath, dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, ExitError
	}

	engine := predict.NewEngine(dataset)
	engine.SetThresholds(configuredThresholds())
	return engine, ExitSuccess
}

func resolveDataset(datasetPath, dbPath string) (refdata.Dataset, error) {
	if dbPath == "" {
		dbPath = configuredString("dataset.db")
	}
	if dbPath != "" {
		store, err := refdata.OpenStore(dbPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.Dataset()
	}

	if datasetPath == "" {
		datasetPath = configuredString("dataset.path")
	}
	if datasetPath != "" {
		return refdata.Load(datasetPath)
	}

	return refdata.Builtin(), nil
}

// openOutput opens the output destination, defaulting to stdout. The
// cleanup func closes the file when one was opened.
func openOutput(path string) (*os.File, func(), int) {
	if path == "" {
		return os.Stdout, func() {}, ExitSuccess
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		return nil, nil, ExitError
	}
	return f, func() { f.Close() }, ExitSuccess
}
