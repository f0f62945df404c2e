// SPDX-License-Identifier: MIT

package params

import (
	"fmt"
	"math"
)

// NumSFHCoefficients is the number of NMF SFH coefficients.
const NumSFHCoefficients = 4

// NumZHCoefficients is the number of NMF metallicity-history coefficients.
const NumZHCoefficients = 2

// SumTolerance is the accepted |Σβ - 1|, with rtol 1e-5 and atol 1e-8.
const SumTolerance = 1e-5 + 1e-8

// Variant selects the optional parameter groups.
type Variant struct {
	Burst              bool // fburst, tburst present
	MetallicityHistory bool // gamma1_zh, gamma2_zh instead of logzsol
}

// Names returns the positional parameter names for v.
func (v Variant) Names() []string {
	names := []string{"logmstar", "beta1_sfh", "beta2_sfh", "beta3_sfh", "beta4_sfh"}
	if v.Burst {
		names = append(names, "fburst", "tburst")
	}
	if v.MetallicityHistory {
		names = append(names, "gamma1_zh", "gamma2_zh")
	} else {
		names = append(names, "logzsol")
	}

	return append(names, "dust1", "dust2", "dust_index")
}

// Len returns the vector length expected for v.
func (v Variant) Len() int {
	n := 1 + NumSFHCoefficients + 3
	if v.Burst {
		n += 2
	}
	if v.MetallicityHistory {
		n += NumZHCoefficients
	} else {
		n++
	}

	return n
}

// String renders the variant in the short form used in logs and run records.
func (v Variant) String() string {
	s := "nmf"
	if v.MetallicityHistory {
		s += "+zh"
	}
	if v.Burst {
		s += "+burst"
	}

	return s
}

// Params is a parsed parameter vector.
type Params struct {
	Variant   Variant
	LogMStar  float64
	Beta      [NumSFHCoefficients]float64
	FBurst    float64 // zero unless Variant.Burst
	TBurst    float64 // Gyr lookback; zero unless Variant.Burst
	LogZSol   float64 // single-metallicity variant
	Gamma     [NumZHCoefficients]float64
	Dust1     float64
	Dust2     float64
	DustIndex float64
}

// Parse maps vec onto the fields of v.
//
// Errors:
//   - ErrParamCount when len(vec) != v.Len().
//   - ErrCoefficientSum when |Σβ - 1| > SumTolerance.
//   - ErrBurstFraction, ErrBurstTime for invalid burst fields.
func Parse(v Variant, vec []float64) (Params, error) {
	if len(vec) != v.Len() {
		return Params{}, fmt.Errorf("Parse: got %d, want %d: %w", len(vec), v.Len(), ErrParamCount)
	}

	p := Params{Variant: v, LogMStar: vec[0]}
	i := 1
	var sum float64
	for k := 0; k < NumSFHCoefficients; k++ {
		p.Beta[k] = vec[i]
		sum += vec[i]
		i++
	}
	if !(math.Abs(sum-1) <= SumTolerance) {
		return Params{}, fmt.Errorf("Parse: Σβ = %g: %w", sum, ErrCoefficientSum)
	}

	if v.Burst {
		p.FBurst, p.TBurst = vec[i], vec[i+1]
		i += 2
		if !(p.FBurst >= 0 && p.FBurst <= 1) {
			return Params{}, fmt.Errorf("Parse: fburst = %g: %w", p.FBurst, ErrBurstFraction)
		}
		if !(p.TBurst >= 0) || math.IsInf(p.TBurst, 0) {
			return Params{}, fmt.Errorf("Parse: tburst = %g: %w", p.TBurst, ErrBurstTime)
		}
	}

	if v.MetallicityHistory {
		p.Gamma[0], p.Gamma[1] = vec[i], vec[i+1]
		i += 2
	} else {
		p.LogZSol = vec[i]
		i++
	}

	p.Dust1, p.Dust2, p.DustIndex = vec[i], vec[i+1], vec[i+2]

	return p, nil
}

// Vector returns the positional form of p; Parse(p.Variant, p.Vector()) == p.
func (p Params) Vector() []float64 {
	out := make([]float64, 0, p.Variant.Len())
	out = append(out, p.LogMStar)
	out = append(out, p.Beta[:]...)
	if p.Variant.Burst {
		out = append(out, p.FBurst, p.TBurst)
	}
	if p.Variant.MetallicityHistory {
		out = append(out, p.Gamma[:]...)
	} else {
		out = append(out, p.LogZSol)
	}

	return append(out, p.Dust1, p.Dust2, p.DustIndex)
}

// Unit returns a copy of p with LogMStar = 0 (one solar mass formed).
func (p Params) Unit() Params {
	p.LogMStar = 0
	return p
}

// Mass returns 10^LogMStar.
func (p Params) Mass() float64 { return math.Pow(10, p.LogMStar) }

// WithoutBurst returns a copy of p with FBurst = 0.
func (p Params) WithoutBurst() Params {
	p.FBurst = 0
	return p
}
