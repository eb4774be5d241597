// SPDX-License-Identifier: MIT
// Package: lvflow/store
//
// file.go: encode/decode of one partial file.
//
// Contract:
//   - WriteFile writes exactly EncodedSize(len(flows)) bytes.
//   - ReadFile verifies the body length against the header before decoding.
//
// Complexity: O(N) time, O(N) memory for ReadFile.

package store

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const headerSize = 8

// byteOrder is the host order; files are not portable across endianness.
var byteOrder = binary.NativeEndian

// EncodedSize returns the on-disk size of a partial file holding n values.
func EncodedSize(n int) int64 { return headerSize + 8*int64(n) }

// WriteFile creates (or truncates) path and writes flows in the partial layout.
func WriteFile(path string, flows []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &FileError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FileError{Op: "close", Path: path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	if err = binary.Write(w, byteOrder, uint64(len(flows))); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	if len(flows) > 0 {
		if err = binary.Write(w, byteOrder, flows); err != nil {
			return &FileError{Op: "write", Path: path, Err: err}
		}
	}
	if err = w.Flush(); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}

	return nil
}

// ReadFile decodes a partial file written by WriteFile.
func ReadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	n, err := readHeader(f, path)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	if err = readBody(f, path, out); err != nil {
		return nil, err
	}

	return out, nil
}

// readHeader returns the element count after checking it against the file size.
func readHeader(f *os.File, path string) (uint64, error) {
	var n uint64
	if err := binary.Read(f, byteOrder, &n); err != nil {
		return 0, &FileError{Op: "read", Path: path, Err: err}
	}
	st, err := f.Stat()
	if err != nil {
		return 0, &FileError{Op: "read", Path: path, Err: err}
	}
	if body := st.Size() - headerSize; body < 0 || body%8 != 0 || uint64(body)/8 != n {
		return 0, fmt.Errorf("%w: %s: header says %d values, body holds %d bytes",
			ErrSizeMismatch, path, n, body)
	}

	return n, nil
}

// readBody fills dst from the reader positioned after the header.
func readBody(r io.Reader, path string, dst []float64) error {
	if len(dst) == 0 {
		return nil
	}
	if err := binary.Read(bufio.NewReader(r), byteOrder, dst); err != nil {
		return &FileError{Op: "read", Path: path, Err: err}
	}

	return nil
}
