package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

const redshiftColumn = "redshift"

// paramTable is a parsed parameter CSV.
type paramTable struct {
	vectors   [][]float64
	redshifts []float64
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}

func createOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}

// readParams parses a CSV whose header must be names followed by "redshift".
// Lines starting with '#' are skipped.
func readParams(r io.Reader, names []string) (paramTable, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return paramTable{}, fmt.Errorf("read header: %w", err)
	}
	want := append(slices.Clone(names), redshiftColumn)
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if !slices.Equal(header, want) {
		return paramTable{}, fmt.Errorf("header %v, want %v", header, want)
	}

	var tbl paramTable
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return paramTable{}, err
		}
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return paramTable{}, fmt.Errorf("record %d column %q: %w", line, header[j], err)
			}
			row[j] = v
		}
		tbl.vectors = append(tbl.vectors, row[:len(names)])
		tbl.redshifts = append(tbl.redshifts, row[len(names)])
	}
	if len(tbl.vectors) == 0 {
		return paramTable{}, fmt.Errorf("no parameter rows")
	}

	return tbl, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeRows writes a header and rows through encoding/csv.
func writeRows(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}

	return cw.Error()
}
