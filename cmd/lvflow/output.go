package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// writeOutput writes "edge,from,to,flow" rows to path, or to stdout when
// path is empty.
func writeOutput(path string, stdout io.Writer, res *result) (err error) {
	w := stdout
	if path != "" {
		f, cerr := os.Create(path)
		if cerr != nil {
			return fmt.Errorf("output: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("output: %w", cerr)
			}
		}()
		w = f
	}

	return writeCSV(w, res)
}

func writeCSV(w io.Writer, res *result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"edge", "from", "to", "flow"}); err != nil {
		return err
	}

	g := res.network.Graph()
	for i, f := range res.flows {
		e := g.Edge(i)
		rec := []string{
			strconv.Itoa(i),
			res.network.Name(e.From),
			res.network.Name(e.To),
			strconv.FormatFloat(f, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
