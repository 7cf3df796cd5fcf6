package spectral

import (
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Helpers for complex-valued frequency response vectors using gonum for
// the statistics

// Magnitudes returns the magnitude of the response at every point
func Magnitudes(resp []complex128) []float64 {
	mags := make([]float64, len(resp))
	for i, v := range resp {
		mags[i] = cmplx.Abs(v)
	}
	return mags
}

// Phases returns the complex argument of the response at every point,
// in (-pi, pi]
func Phases(resp []complex128) []float64 {
	phases := make([]float64, len(resp))
	for i, v := range resp {
		phases[i] = cmplx.Phase(v)
	}
	return phases
}

// TopIndices returns the indices of the n largest-magnitude samples,
// ordered by descending magnitude. If n exceeds the response length all
// indices are returned.
func TopIndices(resp []complex128, n int) []int {
	indices := make([]int, len(resp))
	for i := range indices {
		indices[i] = i
	}

	mags := Magnitudes(resp)
	sort.SliceStable(indices, func(i, j int) bool {
		return mags[indices[i]] > mags[indices[j]]
	})

	if n > len(indices) {
		n = len(indices)
	}
	return indices[:n]
}

// ResidualEnergy returns the sum of squared differences between a modeled
// and a measured response, real and imaginary parts combined. Vectors must
// have equal length.
func ResidualEnergy(model, measured []complex128) float64 {
	sum := 0.0
	for i := range model {
		dr := real(model[i]) - real(measured[i])
		di := imag(model[i]) - imag(measured[i])
		sum += dr*dr + di*di
	}
	return sum
}

// MagnitudeMean returns the mean response magnitude
func MagnitudeMean(resp []complex128) float64 {
	if len(resp) == 0 {
		return 0.0
	}
	return stat.Mean(Magnitudes(resp), nil)
}

// MagnitudeStd returns the sample standard deviation of the response
// magnitude
func MagnitudeStd(resp []complex128) float64 {
	if len(resp) < 2 {
		return 0.0
	}
	return stat.StdDev(Magnitudes(resp), nil)
}
