package units

import "math"

// SurvivalParams parameterises the surviving stellar mass fitting function
// of Hearin et al. (DSPS). Fields follow the published names.
type SurvivalParams struct {
	A, B, LgK1, D, E, F, LgK2, H float64
}

// Calibrated parameter sets for common IMFs. ChabrierSurvival is the default.
var (
	ChabrierSurvival  = SurvivalParams{A: 0.225, B: 8.0, LgK1: -0.5, D: 0.145, E: 0.08, F: 6.5, LgK2: 0.7, H: 0.005}
	SalpeterSurvival  = SurvivalParams{A: 0.13, B: 8.0, LgK1: -0.5, D: 0.055, E: 0.08, F: 6.5, LgK2: 0.7, H: 0.005}
	KroupaSurvival    = SurvivalParams{A: 0.211, B: 8.0, LgK1: -0.5, D: 0.13, E: 0.08, F: 6.5, LgK2: 0.7, H: 0.005}
	VanDokkumSurvival = SurvivalParams{A: 0.238, B: 8.0, LgK1: -0.5, D: 0.156, E: 0.08, F: 6.5, LgK2: 0.7, H: 0.005}
)

// SurvivingFraction returns the fraction of formed stellar mass that
// survives after lgAgeYr = log10(age / yr), for a Chabrier IMF.
func SurvivingFraction(lgAgeYr float64) float64 {
	return ChabrierSurvival.SurvivingFraction(lgAgeYr)
}

// SurvivingFraction evaluates 1 - returned mass fraction for the receiver's calibration.
func (sp SurvivalParams) SurvivingFraction(lgAgeYr float64) float64 {
	return 1 - sp.returnedMass(lgAgeYr)
}

func (sp SurvivalParams) returnedMass(x float64) float64 {
	k1 := math.Pow(10, sp.LgK1)
	slope := sigmoid(x, sp.B, k1, sp.D, sp.E)
	z := sp.A + slope*(x-sp.B)

	k2 := math.Pow(10, sp.LgK2)
	return sigmoid(x, sp.F, k2, sp.H, z)
}

func sigmoid(x, x0, k, ylo, yhi float64) float64 {
	return ylo + (yhi-ylo)/(1+math.Exp(-k*(x-x0)))
}
