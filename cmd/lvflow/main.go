// Command lvflow runs one flow aggregation or dispersal job described by a
// YAML file and prints per-edge flows as CSV.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvflow/config"
	"github.com/katalvlaran/lvflow/heaps"
	"github.com/katalvlaran/lvflow/metrics"
)

// Version is the lvflow release.
const Version = "0.3.0"

// errUsage marks missing or conflicting arguments.
var errUsage = errors.New("usage")

// cliFlags holds parsed command-line values; set reports explicitly given flags.
type cliFlags struct {
	configPath  string
	heap        string
	workers     int
	tolerance   float64
	partialsDir string
	output      string
	keepFiles   bool
	metricsFile string
	logLevel    string
	logJSON     bool
	listHeaps   bool
	version     bool

	set func(name string) bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "lvflow: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	fs := pflag.NewFlagSet("lvflow", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: lvflow -c job.yaml [options]\n\n")
		fmt.Fprintf(stderr, "lvflow assigns origin-destination flows, or distance-decayed dispersal,\n")
		fmt.Fprintf(stderr, "onto the edges of a directed network by shortest-path routing.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  lvflow -c job.yaml                    # CSV to stdout\n")
		fmt.Fprintf(stderr, "  lvflow -c job.yaml -o flows.csv -w 8  # eight workers, CSV to file\n")
		fmt.Fprintf(stderr, "  lvflow --list-heaps\n")
	}

	f := &cliFlags{}
	fs.StringVarP(&f.configPath, "config", "c", "", "Job file (YAML)")
	fs.StringVar(&f.heap, "heap", "", "Priority queue: "+fmt.Sprint(heaps.Names()))
	fs.IntVarP(&f.workers, "workers", "w", 0, "Parallel workers (0: physical cores)")
	fs.Float64Var(&f.tolerance, "tol", 0, "Tolerance (overrides the job file)")
	fs.StringVar(&f.partialsDir, "partials-dir", "", "Write per-worker partial files here, then sum them")
	fs.StringVarP(&f.output, "output", "o", "", "Write CSV here instead of stdout")
	fs.BoolVar(&f.keepFiles, "keep-files", false, "Keep partial files after summing")
	fs.StringVar(&f.metricsFile, "metrics-textfile", "", "Write Prometheus metrics in text format to this file")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.BoolVar(&f.logJSON, "log-json", false, "Log JSON lines instead of console output")
	fs.BoolVar(&f.listHeaps, "list-heaps", false, "List priority queue strategies and exit")
	fs.BoolVarP(&f.version, "version", "V", false, "Print version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.set = func(name string) bool { return fs.Changed(name) }

	if !f.version && !f.listHeaps && f.configPath == "" {
		fs.Usage()
		return nil, fmt.Errorf("%w: --config is required", errUsage)
	}

	return f, nil
}

func newLogger(f *cliFlags, stderr io.Writer, runID string) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(f.logLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("--log-level: %w", err)
	}
	var w io.Writer = stderr
	if !f.logJSON {
		w = zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("run_id", runID).Logger(), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if f.version {
		fmt.Fprintf(stdout, "lvflow version %s\n", Version)
		return nil
	}
	if f.listHeaps {
		for _, name := range heaps.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	runID := uuid.NewString()
	logger, err := newLogger(f, stderr, runID)
	if err != nil {
		return err
	}

	job, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	applyOverrides(job, f, logger)
	if err = job.Validate(); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec := metrics.NewPrometheus(reg)

	res, err := execute(ctx, job, runOptions{
		keepFiles: f.keepFiles,
		logger:    logger,
		metrics:   rec,
	})
	if f.metricsFile != "" {
		if werr := prometheus.WriteToTextfile(f.metricsFile, reg); werr != nil {
			logger.Warn().Err(werr).Str("path", f.metricsFile).Msg("metrics textfile not written")
		}
	}
	if err != nil {
		return err
	}

	return writeOutput(f.output, stdout, res)
}

// applyOverrides lets explicit flags win over the job file, and picks the
// worker count from the physical core count when neither sets it.
func applyOverrides(job *config.Job, f *cliFlags, logger zerolog.Logger) {
	if f.set("heap") {
		job.Heap = f.heap
	}
	if f.set("tol") {
		job.Tolerance = f.tolerance
	}
	if f.set("partials-dir") {
		job.OutputDir = f.partialsDir
	}
	if f.set("workers") {
		job.Workers = f.workers
	}
	if job.Workers == 0 {
		if n, err := cpu.Counts(false); err == nil && n > 0 {
			job.Workers = n
		} else {
			logger.Debug().Err(err).Msg("physical core count unavailable; using GOMAXPROCS")
		}
	}
}
