// SPDX-License-Identifier: MIT

package basis

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadTable parses a whitespace-separated numeric table. Blank lines and
// text after '#' are ignored. Every row must have the same number of columns.
//
// Errors: ErrEmptyTable, ErrRaggedTable, strconv errors with line numbers.
func ReadTable(r io.Reader) ([][]float64, error) {
	const op = "ReadTable"
	var rows [][]float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, basisErrorf(op, fmt.Errorf("line %d: %w", line, err))
			}
			row[j] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, basisErrorf(op, fmt.Errorf("line %d: %w", line, ErrRaggedTable))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, basisErrorf(op, err)
	}
	if len(rows) == 0 {
		return nil, basisErrorf(op, ErrEmptyTable)
	}

	return rows, nil
}

// flatten joins a table into one vector, so a time axis may be stored either
// as one column or as one row.
func flatten(rows [][]float64) []float64 {
	var out []float64
	for _, r := range rows {
		out = append(out, r...)
	}

	return out
}
