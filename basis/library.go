// SPDX-License-Identifier: MIT

package basis

import (
	"os"
	"path/filepath"
)

// Packaged Tojeiro NMF table names.
const (
	DefaultSFHFile  = "NMF_2basis_SFH_components_nowgt_lin_Nc4.txt"
	DefaultZHFile   = "NMF_2basis_Z_components_nowgt_lin_Nc2.txt"
	DefaultTimeFile = "sfh_t_int.txt"
)

// sfhOrder restores the physical order of the 4 packaged SFH components.
var sfhOrder = []int{2, 0, 1, 3}

// Library is the pair of bases the synthesizer draws on.
// ZH is nil for models with a single constant metallicity.
type Library struct {
	SFH *Basis
	ZH  *Basis
}

// NewLibrary bundles in-memory bases. zh may be nil.
func NewLibrary(sfh, zh *Basis) (*Library, error) {
	if sfh == nil {
		return nil, basisErrorf("NewLibrary", ErrMissingSFH)
	}

	return &Library{SFH: sfh, ZH: zh}, nil
}

// LoadDir reads the packaged tables from dir. Each component table holds one
// component per row and one lookback time per column; the time file lists
// the times in the same column order.
//
// Implementation:
//   - Stage 1: read time axis and SFH table (and ZH table when withZH).
//   - Stage 2: reorder a 4-component SFH table as [2, 0, 1, 3].
//   - Stage 3: New flips the decreasing time axis of the packaged files.
func LoadDir(dir string, withZH bool) (*Library, error) {
	const op = "LoadDir"

	t, err := readFile(filepath.Join(dir, DefaultTimeFile))
	if err != nil {
		return nil, basisErrorf(op, err)
	}
	sfhRows, err := readFile(filepath.Join(dir, DefaultSFHFile))
	if err != nil {
		return nil, basisErrorf(op, err)
	}
	if len(sfhRows) == len(sfhOrder) {
		ordered := make([][]float64, len(sfhRows))
		for i, k := range sfhOrder {
			ordered[i] = sfhRows[k]
		}
		sfhRows = ordered
	}

	sfh, err := New(flatten(t), sfhRows)
	if err != nil {
		return nil, basisErrorf(op, err)
	}

	var zh *Basis
	if withZH {
		zhRows, err := readFile(filepath.Join(dir, DefaultZHFile))
		if err != nil {
			return nil, basisErrorf(op, err)
		}
		if zh, err = New(flatten(t), zhRows); err != nil {
			return nil, basisErrorf(op, err)
		}
	}

	return NewLibrary(sfh, zh)
}

func readFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadTable(f)
}
