// SPDX-License-Identifier: MIT

package fixture

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/popsed/basis"
)

// UniverseAge is the age of the universe the fixtures assume, in Gyr.
const UniverseAge = 13.8

// Times returns the lookback-time axis of the synthetic bases.
func Times() []float64 {
	t := make([]float64, 141)
	for i := range t {
		t[i] = 14 * float64(i) / 140
	}

	return t
}

// Library returns a 4-component SFH basis and a 2-component ZH basis.
//
// SFH components: constant, exponentially declining with lookback time,
// linearly rising with lookback time and a Gaussian at 5 Gyr. Component 0 is
// exactly constant so tests can predict its binned history.
// ZH components: constant 1 and t/14, so Z(t) = γ1 + γ2·t/14.
func Library() *basis.Library {
	t := Times()
	sfh := make([][]float64, 4)
	for k := range sfh {
		sfh[k] = make([]float64, len(t))
	}
	zh := [][]float64{make([]float64, len(t)), make([]float64, len(t))}
	for i, x := range t {
		sfh[0][i] = 1
		sfh[1][i] = math.Exp(-x / 2)
		sfh[2][i] = x / 14
		sfh[3][i] = math.Exp(-0.5 * (x - 5) * (x - 5))
		zh[0][i] = 1
		zh[1][i] = x / 14
	}

	sb, err := basis.New(t, sfh)
	if err != nil {
		panic(err)
	}
	zb, err := basis.New(t, zh)
	if err != nil {
		panic(err)
	}
	lib, err := basis.NewLibrary(sb, zb)
	if err != nil {
		panic(err)
	}

	return lib
}

// WriteLibraryDir stores Library in the on-disk layout basis.LoadDir reads,
// including the packaged component order.
func WriteLibraryDir(dir string) error {
	lib := Library()
	t := Times()
	sfh := lib.SFH.Sample(t)
	packed := make([][]float64, len(sfh))
	for i, k := range []int{2, 0, 1, 3} {
		packed[k] = sfh[i]
	}

	files := map[string][][]float64{
		basis.DefaultTimeFile: {t},
		basis.DefaultSFHFile:  packed,
		basis.DefaultZHFile:   lib.ZH.Sample(t),
	}
	for name, rows := range files {
		var sb strings.Builder
		for _, row := range rows {
			for j, v := range row {
				if j > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			}
			sb.WriteByte('\n')
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(sb.String()), 0o600); err != nil {
			return err
		}
	}

	return nil
}
