package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Columns holds the four parallel edge columns consumed by core.NewNetwork.
type Columns struct {
	From, To         []string
	Distance, Weight []float64
}

// EdgeColumns returns the job's edges, reading edges_csv when set.
func (j *Job) EdgeColumns() (*Columns, error) {
	if j.Graph.EdgesCSV == "" {
		c := &Columns{}
		for _, e := range j.Graph.Edges {
			c.add(e.From, e.To, e.Distance, e.Weight)
		}
		return c, nil
	}

	path := j.Graph.EdgesCSV
	if !filepath.IsAbs(path) && j.dir != "" {
		path = filepath.Join(j.dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: edges_csv: %w", err)
	}
	defer f.Close()

	c, err := ReadEdgesCSV(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return c, nil
}

// ReadEdgesCSV parses "from,to,distance,weight" rows. A header row is
// recognised by its first field being "from" and skipped.
func ReadEdgesCSV(r io.Reader) (*Columns, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	c := &Columns{}
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		if line == 1 && strings.EqualFold(rec[0], "from") {
			continue
		}

		d, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d distance: %v", ErrInvalid, line, err)
		}
		w, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d weight: %v", ErrInvalid, line, err)
		}
		c.add(rec[0], rec[1], d, w)
	}

	return c, nil
}

func (c *Columns) add(from, to string, d, w float64) {
	c.From = append(c.From, from)
	c.To = append(c.To, to)
	c.Distance = append(c.Distance, d)
	c.Weight = append(c.Weight, w)
}
