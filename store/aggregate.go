package store

import (
	"fmt"
	"os"
)

// AggregateFiles sums the partial files at paths element-wise into a vector
// of length n. Files are folded in the order given, so the result is
// reproducible for a fixed path order.
//
// A header that differs from n yields ErrSizeMismatch naming the file; the
// body of that file is not read. Files are left in place.
func AggregateFiles(paths []string, n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLength, n)
	}

	total := make([]float64, n)
	buf := make([]float64, n)
	for _, p := range paths {
		if err := addFile(p, total, buf); err != nil {
			return nil, err
		}
	}

	return total, nil
}

func addFile(path string, total, buf []float64) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	got, err := readHeader(f, path)
	if err != nil {
		return err
	}
	if got != uint64(len(total)) {
		return fmt.Errorf("%w: %s: header %d, expected %d", ErrSizeMismatch, path, got, len(total))
	}
	if err = readBody(f, path, buf); err != nil {
		return err
	}
	for i, v := range buf {
		total[i] += v
	}

	return nil
}
