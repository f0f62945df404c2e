// SPDX-License-Identifier: MIT

package fixture

import (
	"math"
	"os"

	"github.com/katalvlaran/popsed/emulator"
	"gonum.org/v1/gonum/mat"
)

// FlatBundle returns a two-segment emulator with the given input length whose
// spectrum is FlatLuminosity on Wave() for every input. The hidden layers
// carry non-zero weights so the full forward pass runs; the output layer is
// zero, which makes the result input independent.
func FlatBundle(inputs int) *emulator.Bundle {
	wave := Wave()
	half := len(wave) / 2
	b, err := emulator.NewBundle(
		flatSegment("blue", inputs, wave[:half]),
		flatSegment("red", inputs, wave[half:]),
	)
	if err != nil {
		panic(err)
	}

	return b
}

func flatSegment(name string, inputs int, wave []float64) *emulator.Segment {
	const hidden, npca = 3, 2

	fill := func(r, c int) *mat.Dense {
		m := mat.NewDense(r, c, nil)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				m.Set(i, j, 0.1*float64(i+j+1))
			}
		}
		return m
	}
	constant := func(n int, v float64) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = v
		}
		return out
	}

	basis := mat.NewDense(npca, len(wave), nil)
	for k := range wave {
		basis.Set(0, k, 1)
		basis.Set(1, k, float64(k))
	}

	return &emulator.Segment{
		Name:          name,
		Wave:          append([]float64(nil), wave...),
		Weights:       []*mat.Dense{fill(inputs, hidden), fill(hidden, hidden), mat.NewDense(hidden, npca, nil)},
		Biases:        [][]float64{constant(hidden, 0.1), constant(hidden, -0.1), constant(npca, 0)},
		Alphas:        [][]float64{constant(hidden, 1), constant(hidden, 0.5)},
		Betas:         [][]float64{constant(hidden, 0.2), constant(hidden, 0)},
		ParamShift:    constant(inputs, 0),
		ParamScale:    constant(inputs, 1),
		PCAShift:      []float64{1, 0},
		PCAScale:      []float64{1, 1},
		SpectrumShift: constant(len(wave), math.Log(FlatLuminosity)-1),
		SpectrumScale: constant(len(wave), 1),
		PCABasis:      basis,
	}
}

// WriteFlatBundle encodes FlatBundle(inputs) to path.
func WriteFlatBundle(path string, inputs int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := FlatBundle(inputs).Encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
