// Package params defines the positional parameter vector of the SPS model and
// parses it into named fields.
//
// The layout depends on the model Variant:
//
//	logmstar, beta1_sfh, beta2_sfh, beta3_sfh, beta4_sfh,
//	[fburst, tburst]                     (Burst)
//	logzsol | gamma1_zh, gamma2_zh       (MetallicityHistory)
//	dust1, dust2, dust_index
//
// Parse checks the vector length and that the four SFH coefficients sum to
// one. A parsed Params is a value: copies never alias the caller's slice.
package params
