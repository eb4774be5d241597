package matrix

import (
	"math"
	"strconv"
	"strings"
)

// Dense is a row-major matrix of non-negative finite float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom copies a rectangular [][]float64 into a new Dense.
// Every row must have the same non-zero length and every value must be
// finite and non-negative.
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) != m.c {
			return nil, denseErrorf("From", i, len(row), ErrRagged)
		}
		for j, v := range row {
			if err = checkValue(v); err != nil {
				return nil, denseErrorf("From", i, j, err)
			}
			m.data[i*m.c+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). v must be finite and non-negative.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if err = checkValue(v); err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Row returns row i as a view into the backing storage; callers must not
// modify it. Panics if i is out of range, like slice indexing.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		panic(denseErrorf("Row", i, 0, ErrOutOfRange))
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Sum returns the total of all entries.
func (m *Dense) Sum() float64 {
	var s float64
	for _, v := range m.data {
		s += v
	}

	return s
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

func checkValue(v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return ErrNaNInf
	case v < 0:
		return ErrNegative
	}

	return nil
}
