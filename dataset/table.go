// Package dataset provides the data plumbing around the fitter:
// whitespace-delimited numeric table I/O, min-max scaling to [0,1], and
// random train/test splitting.
package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/daliboussaidi/rshdmr/pkg/errors"
)

// LoadTable reads a whitespace-delimited numeric table. Every non-empty
// line is one row; all rows must have the same number of columns.
func LoadTable(path string) (*mat.Dense, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open %s", path)
	}
	defer file.Close()

	var (
		data []float64
		cols int
		rows int
	)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, errors.NewDimensionError("dataset.LoadTable", cols, len(fields), 1)
		}
		for _, field := range fields {
			v, parseErr := strconv.ParseFloat(field, 64)
			if parseErr != nil {
				return nil, errors.Wrapf(parseErr, "dataset: row %d of %s", rows+1, path)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "dataset: read %s", path)
	}
	if rows == 0 {
		return nil, errors.NewModelError("dataset.LoadTable", "empty table", errors.ErrEmptyData)
	}

	return mat.NewDense(rows, cols, data), nil
}

// SplitXY separates a table into a feature matrix (all columns but the
// last) and a target vector (the last column).
func SplitXY(table *mat.Dense) (*mat.Dense, *mat.VecDense, error) {
	n, c := table.Dims()
	if c < 2 {
		return nil, nil, errors.NewDimensionError("dataset.SplitXY", 2, c, 1)
	}

	x := mat.NewDense(n, c-1, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < c-1; j++ {
			x.Set(i, j, table.At(i, j))
		}
		y.SetVec(i, table.At(i, c-1))
	}
	return x, y, nil
}

// SaveTable writes columns side by side as a tab-delimited fixed-width
// numeric table, one row per sample. All columns must have equal length.
func SaveTable(path string, columns ...*mat.VecDense) (err error) {
	if len(columns) == 0 {
		return errors.NewValueError("dataset.SaveTable", "no columns given")
	}
	n := columns[0].Len()
	for _, col := range columns[1:] {
		if col.Len() != n {
			return errors.NewDimensionError("dataset.SaveTable", n, col.Len(), 0)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "dataset: create %s", path)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "dataset: close %s", path)
		}
	}()

	w := bufio.NewWriter(file)
	for i := 0; i < n; i++ {
		for j, col := range columns {
			if j > 0 {
				if _, err := w.WriteString("\t"); err != nil {
					return errors.Wrapf(err, "dataset: write %s", path)
				}
			}
			if _, err := fmt.Fprintf(w, "%13.4f", col.AtVec(i)); err != nil {
				return errors.Wrapf(err, "dataset: write %s", path)
			}
		}
		if _, err := w.WriteString("\n"); err != nil {
			return errors.Wrapf(err, "dataset: write %s", path)
		}
	}
	return errors.WithStack(w.Flush())
}

// SaveTableMatrix writes a feature matrix followed by extra columns, in
// the same tab-delimited fixed-width format as SaveTable. Typical layout:
// test inputs, scaled target, scaled prediction.
func SaveTableMatrix(path string, X mat.Matrix, columns ...*mat.VecDense) error {
	n, d := X.Dims()
	cols := make([]*mat.VecDense, 0, d+len(columns))
	buf := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(buf, j, X)
		v := mat.NewVecDense(n, nil)
		for i := 0; i < n; i++ {
			v.SetVec(i, buf[i])
		}
		cols = append(cols, v)
	}
	cols = append(cols, columns...)
	return SaveTable(path, cols...)
}
