// Package config loads and validates lvflow job files.
//
// A job is YAML:
//
//	mode: aggregation          # or dispersal
//	heap: BHeap                # heaps registry key; BHeap when omitted
//	tolerance: 1e-12
//	workers: 0                 # 0: one per physical core (CLI) / GOMAXPROCS (library)
//	termination: stop-when-settled
//	output_dir: ""             # set to write partial files there
//	seed: 0
//	graph:
//	  edges:
//	    - {from: a, to: b, distance: 1.2, weight: 1.5}
//	  edges_csv: streets.csv   # alternative to edges; relative to the job file
//	aggregation:
//	  origins: [a]
//	  destinations: [b]
//	  flows: [[10]]
//	dispersal:
//	  origins: [a]
//	  flows: [10]
//	  k: [2]
//
// Validation runs before any graph is built.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvflow/dijkstra"
	"github.com/katalvlaran/lvflow/heaps"
)

// Modes.
const (
	ModeAggregation = "aggregation"
	ModeDispersal   = "dispersal"
)

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("config: invalid job")

// Job is one lvflow run.
type Job struct {
	Mode        string  `yaml:"mode"`
	Heap        string  `yaml:"heap"`
	Tolerance   float64 `yaml:"tolerance"`
	Workers     int     `yaml:"workers"`
	Termination string  `yaml:"termination"`
	OutputDir   string  `yaml:"output_dir"`
	Seed        uint64  `yaml:"seed"`

	Graph       GraphSpec        `yaml:"graph"`
	Aggregation *AggregationSpec `yaml:"aggregation"`
	Dispersal   *DispersalSpec   `yaml:"dispersal"`

	dir string // directory of the job file, for relative paths
}

// GraphSpec lists edges inline or points at a CSV file.
type GraphSpec struct {
	Edges    []EdgeSpec `yaml:"edges"`
	EdgesCSV string     `yaml:"edges_csv"`
}

// EdgeSpec is one directed edge between named vertices.
type EdgeSpec struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Distance float64 `yaml:"distance"`
	Weight   float64 `yaml:"weight"`
}

// AggregationSpec is the OD matrix input, rows per origin.
type AggregationSpec struct {
	Origins      []string    `yaml:"origins"`
	Destinations []string    `yaml:"destinations"`
	Flows        [][]float64 `yaml:"flows"`
}

// DispersalSpec is the per-origin flow and decay input.
type DispersalSpec struct {
	Origins []string  `yaml:"origins"`
	Flows   []float64 `yaml:"flows"`
	K       []float64 `yaml:"k"`
}

// Load reads and parses the job at path. Relative edges_csv paths resolve
// against the job file's directory.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	job, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	job.dir = filepath.Dir(path)

	return job, nil
}

// Parse decodes YAML and applies defaults. Unknown keys are rejected.
func Parse(data []byte) (*Job, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	job := &Job{Tolerance: math.NaN()} // NaN marks "not set"
	if err := dec.Decode(job); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	job.applyDefaults()

	return job, nil
}

func (j *Job) applyDefaults() {
	if j.Heap == "" {
		j.Heap = heaps.DefaultName
	}
	if math.IsNaN(j.Tolerance) {
		j.Tolerance = 1e-12
	}
	if j.Termination == "" {
		j.Termination = dijkstra.StopWhenSettled.String()
	}
}

// Validate checks the job without touching the graph data on disk.
func (j *Job) Validate() error {
	if _, err := heaps.Lookup(j.Heap); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := j.TerminationPolicy(); err != nil {
		return err
	}
	if j.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance %g", ErrInvalid, j.Tolerance)
	}
	if j.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, j.Workers)
	}

	hasInline, hasCSV := len(j.Graph.Edges) > 0, j.Graph.EdgesCSV != ""
	if hasInline == hasCSV {
		return fmt.Errorf("%w: graph needs exactly one of edges or edges_csv", ErrInvalid)
	}

	switch j.Mode {
	case ModeAggregation:
		return j.Aggregation.validate()
	case ModeDispersal:
		return j.Dispersal.validate()
	default:
		return fmt.Errorf("%w: mode %q (want %s or %s)", ErrInvalid, j.Mode, ModeAggregation, ModeDispersal)
	}
}

// TerminationPolicy maps the termination key to a dijkstra policy.
func (j *Job) TerminationPolicy() (dijkstra.Termination, error) {
	for _, t := range []dijkstra.Termination{dijkstra.StopWhenSettled, dijkstra.Exhaustive} {
		if j.Termination == t.String() {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: termination %q", ErrInvalid, j.Termination)
}

func (a *AggregationSpec) validate() error {
	if a == nil {
		return fmt.Errorf("%w: mode aggregation needs an aggregation section", ErrInvalid)
	}
	if len(a.Flows) != len(a.Origins) {
		return fmt.Errorf("%w: %d flow rows for %d origins", ErrInvalid, len(a.Flows), len(a.Origins))
	}
	for i, row := range a.Flows {
		if len(row) != len(a.Destinations) {
			return fmt.Errorf("%w: flow row %d has %d values for %d destinations",
				ErrInvalid, i, len(row), len(a.Destinations))
		}
		for _, f := range row {
			if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("%w: flow row %d holds %g", ErrInvalid, i, f)
			}
		}
	}

	return nil
}

func (d *DispersalSpec) validate() error {
	if d == nil {
		return fmt.Errorf("%w: mode dispersal needs a dispersal section", ErrInvalid)
	}
	if len(d.Flows) != len(d.Origins) || len(d.K) != len(d.Origins) {
		return fmt.Errorf("%w: origins %d, flows %d, k %d", ErrInvalid, len(d.Origins), len(d.Flows), len(d.K))
	}

	return nil
}
