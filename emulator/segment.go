// SPDX-License-Identifier: MIT

package emulator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Segment is one PCA emulator covering a contiguous wavelength range.
//
// Weights[l] has shape (in_l × out_l); the last layer is linear and every
// other layer is followed by the parametric activation with per-neuron
// Alphas[l] and Betas[l]. PCABasis has shape (nPCA × len(Wave)).
type Segment struct {
	Name string
	Wave []float64

	Weights []*mat.Dense
	Biases  [][]float64
	Alphas  [][]float64
	Betas   [][]float64

	ParamShift, ParamScale       []float64
	PCAShift, PCAScale           []float64
	SpectrumShift, SpectrumScale []float64
	PCABasis                     *mat.Dense
}

// NumInputs returns the expected input length.
func (s *Segment) NumInputs() int { return len(s.ParamShift) }

// Validate checks every dimension against its neighbours.
func (s *Segment) Validate() error {
	nl := len(s.Weights)
	if nl < 1 || len(s.Biases) != nl || len(s.Alphas) != nl-1 || len(s.Betas) != nl-1 || s.PCABasis == nil {
		return fmt.Errorf("segment %q: layer counts: %w", s.Name, ErrShape)
	}
	in := len(s.ParamShift)
	if in == 0 || len(s.ParamScale) != in {
		return fmt.Errorf("segment %q: parameter scaling: %w", s.Name, ErrShape)
	}
	for l, w := range s.Weights {
		if w == nil {
			return fmt.Errorf("segment %q: layer %d: nil weights: %w", s.Name, l, ErrShape)
		}
		r, c := w.Dims()
		if r != in || len(s.Biases[l]) != c {
			return fmt.Errorf("segment %q: layer %d: %w", s.Name, l, ErrShape)
		}
		if l < nl-1 && (len(s.Alphas[l]) != c || len(s.Betas[l]) != c) {
			return fmt.Errorf("segment %q: activation %d: %w", s.Name, l, ErrShape)
		}
		in = c
	}
	npca, nwave := s.PCABasis.Dims()
	if npca != in || len(s.PCAShift) != npca || len(s.PCAScale) != npca {
		return fmt.Errorf("segment %q: PCA coefficients: %w", s.Name, ErrShape)
	}
	if nwave != len(s.Wave) || len(s.SpectrumShift) != nwave || len(s.SpectrumScale) != nwave {
		return fmt.Errorf("segment %q: spectrum scaling: %w", s.Name, ErrShape)
	}

	return nil
}

// Activation is the parametric activation (β + (1−β)·σ(α·u))·u.
func Activation(u, alpha, beta float64) float64 {
	return (beta + (1-beta)*sigmoid(alpha*u)) * u
}

// ActivationDerivative is d/du of Activation.
func ActivationDerivative(u, alpha, beta float64) float64 {
	s := sigmoid(alpha * u)
	return beta + (1-beta)*s + (1-beta)*u*alpha*s*(1-s)
}

func sigmoid(u float64) float64 { return 1 / (1 + math.Exp(-u)) }

// forward runs the network and returns the normalised PCA coefficients c
// plus, when keep is set, every hidden pre-activation for the Jacobian.
func (s *Segment) forward(x []float64, keep bool) (*mat.VecDense, []*mat.VecDense) {
	h := mat.NewVecDense(len(x), nil)
	for i, v := range x {
		h.SetVec(i, (v-s.ParamShift[i])/s.ParamScale[i])
	}

	var pre []*mat.VecDense
	last := len(s.Weights) - 1
	for l, w := range s.Weights {
		_, out := w.Dims()
		act := mat.NewVecDense(out, nil)
		act.MulVec(w.T(), h)
		act.AddVec(act, mat.NewVecDense(out, s.Biases[l]))
		if l == last {
			return act, pre
		}
		if keep {
			pre = append(pre, mat.VecDenseCopyOf(act))
		}
		for j := 0; j < out; j++ {
			act.SetVec(j, Activation(act.AtVec(j), s.Alphas[l][j], s.Betas[l][j]))
		}
		h = act
	}

	return h, pre
}

// LogSpectrum returns ln L on s.Wave for input x.
//
// Complexity: O(Σ in_l·out_l + nPCA·nWave).
func (s *Segment) LogSpectrum(x []float64) ([]float64, error) {
	if len(x) != s.NumInputs() {
		return nil, emulatorErrorf("LogSpectrum", ErrInputSize)
	}

	c, _ := s.forward(x, false)
	for i := 0; i < c.Len(); i++ {
		c.SetVec(i, c.AtVec(i)*s.PCAScale[i]+s.PCAShift[i])
	}

	_, nwave := s.PCABasis.Dims()
	logSpec := mat.NewVecDense(nwave, nil)
	logSpec.MulVec(s.PCABasis.T(), c)

	out := make([]float64, nwave)
	for k := range out {
		out[k] = logSpec.AtVec(k)*s.SpectrumScale[k] + s.SpectrumShift[k]
	}

	return out, nil
}

// Jacobian returns ∂ln L_k/∂x_i as an (nWave × nInputs) matrix.
//
// Implementation:
//   - Stage 1: J = diag(1/paramScale).
//   - Stage 2: for every hidden layer J ← diag(a'(u))·Wᵀ·J.
//   - Stage 3: J ← diag(spectrumScale)·PCABasisᵀ·diag(pcaScale)·W_Lᵀ·J.
func (s *Segment) Jacobian(x []float64) (*mat.Dense, error) {
	n := s.NumInputs()
	if len(x) != n {
		return nil, emulatorErrorf("Jacobian", ErrInputSize)
	}

	_, pre := s.forward(x, true)

	j := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		j.Set(i, i, 1/s.ParamScale[i])
	}

	for l, w := range s.Weights {
		_, out := w.Dims()
		next := mat.NewDense(out, n, nil)
		next.Mul(w.T(), j)
		if l < len(pre) {
			for r := 0; r < out; r++ {
				d := ActivationDerivative(pre[l].AtVec(r), s.Alphas[l][r], s.Betas[l][r])
				for c := 0; c < n; c++ {
					next.Set(r, c, d*next.At(r, c))
				}
			}
		}
		j = next
	}

	npca, nwave := s.PCABasis.Dims()
	for r := 0; r < npca; r++ {
		for c := 0; c < n; c++ {
			j.Set(r, c, s.PCAScale[r]*j.At(r, c))
		}
	}

	out := mat.NewDense(nwave, n, nil)
	out.Mul(s.PCABasis.T(), j)
	for r := 0; r < nwave; r++ {
		for c := 0; c < n; c++ {
			out.Set(r, c, s.SpectrumScale[r]*out.At(r, c))
		}
	}

	return out, nil
}
