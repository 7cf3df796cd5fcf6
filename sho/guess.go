package sho

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/bandexc/shofit/spectral"
)

const (
	// DefaultNumPoints is the number of largest-magnitude samples used to
	// build candidate algebraic solutions
	DefaultNumPoints = 5

	// DefaultFallbackQ is the quality factor assumed by the fallback
	// heuristic when the algebraic fit cannot be trusted
	DefaultFallbackQ = 200.0
)

// minVarianceRatio is the smallest acceptable ratio between the spread of
// the measured magnitudes and the spread of the residual magnitudes. Below
// it the weighted fit explains too little of the spectrum over the noise.
const minVarianceRatio = 1.2

// ErrInvalidInput reports structurally invalid input: mismatched vector
// lengths or too few samples for the configured number of ranking points.
var ErrInvalidInput = errors.New("sho: invalid input")

// Estimator derives initial SHO parameter guesses from complex response
// spectra. It holds no per-call state and is safe for concurrent use.
type Estimator struct {
	numPoints int
	fallbackQ float64
}

// NewEstimator creates an estimator using the top numPoints response
// samples for the algebraic fit and fallbackQ for the fallback heuristic.
// Non-positive arguments select the defaults.
func NewEstimator(numPoints int, fallbackQ float64) *Estimator {
	if numPoints <= 0 {
		numPoints = DefaultNumPoints
	}
	if fallbackQ <= 0 {
		fallbackQ = DefaultFallbackQ
	}
	return &Estimator{
		numPoints: numPoints,
		fallbackQ: fallbackQ,
	}
}

var defaultEstimator = NewEstimator(DefaultNumPoints, DefaultFallbackQ)

// Estimate derives an initial SHO guess with the default settings
func Estimate(resp []complex128, freq []float64) (Parameters, error) {
	return defaultEstimator.Estimate(resp, freq)
}

// candidate is one per-pair algebraic solution together with its residual
// energy against the measured spectrum
type candidate struct {
	a, b, c, d float64
	score      float64
}

// Estimate derives an initial SHO guess for the measured response.
//
// The top numPoints samples by magnitude are paired up and each pair is
// solved in closed form for the auxiliary coefficients (a, b, c, d) of the
// SHO transfer relation. Valid solutions are combined in a residual-weighted
// average; if none exist, or the averaged fit is implausible, a crude
// peak-based heuristic supplies the guess instead. The only hard failure is
// structurally invalid input.
func (e *Estimator) Estimate(resp []complex128, freq []float64) (Parameters, error) {
	if err := e.validate(resp, freq); err != nil {
		return Parameters{}, err
	}

	top := spectral.TopIndices(resp, e.numPoints)

	var cands []candidate
	for c1 := 0; c1 < e.numPoints; c1++ {
		for c2 := c1 + 1; c2 < e.numPoints; c2++ {
			cand, ok := solvePair(resp, freq, top[c1], top[c2])
			if !ok {
				continue
			}

			p := coefficientParams(cand.a, cand.b, cand.c, cand.d)
			cand.score = spectral.ResidualEnergy(Response(p, freq), resp)
			if cand.score == 0 {
				// Exact reconstruction, nothing left to average.
				return p, nil
			}
			cands = append(cands, cand)
		}
	}

	if len(cands) == 0 {
		return e.FastGuess(resp, freq), nil
	}

	// Weighted average of the algebraic coefficients, strongly favoring
	// low-residual pairs.
	var aw, bw, cw, dw, wSum float64
	for _, cand := range cands {
		w := math.Pow(1/cand.score, 4)
		if math.IsInf(w, 1) {
			// Residual too small to weight against the others; treat the
			// candidate as exact.
			return coefficientParams(cand.a, cand.b, cand.c, cand.d), nil
		}
		aw += w * cand.a
		bw += w * cand.b
		cw += w * cand.c
		dw += w * cand.d
		wSum += w
	}
	aw /= wSum
	bw /= wSum
	cw /= wSum
	dw /= wSum

	p := coefficientParams(aw, bw, cw, dw)

	model := Response(p, freq)
	resid := make([]complex128, len(resp))
	for i := range resp {
		resid[i] = resp[i] - model[i]
	}

	// Reject the averaged fit if it explains too little of the spectrum's
	// variation, or if the resonance lands outside the measured band.
	ratio := spectral.MagnitudeStd(resp) / spectral.MagnitudeStd(resid)
	if ratio < minVarianceRatio || p.Frequency < floats.Min(freq) || p.Frequency > floats.Max(freq) {
		return e.FastGuess(resp, freq), nil
	}

	return p, nil
}

// FastGuess derives a crude SHO guess from the centre of the measurement
// band. Used for spectra where the algebraic fit produced no valid
// candidate pair or an implausible average.
func (e *Estimator) FastGuess(resp []complex128, freq []float64) Parameters {
	return FastGuess(resp, freq, e.fallbackQ)
}

// FastGuess derives a crude SHO guess assuming the peak sits at the centre
// of the measurement band with the given quality factor
func FastGuess(resp []complex128, freq []float64, q float64) Parameters {
	mid := len(resp) / 2
	return Parameters{
		Amplitude: spectral.MagnitudeMean(resp) / q,
		Frequency: freq[mid],
		Q:         q,
		Phase:     cmplx.Phase(resp[mid]),
	}
}

func (e *Estimator) validate(resp []complex128, freq []float64) error {
	if len(resp) != len(freq) {
		return fmt.Errorf("%w: response length %d does not match frequency length %d",
			ErrInvalidInput, len(resp), len(freq))
	}
	if e.numPoints < 2 {
		return fmt.Errorf("%w: need at least 2 ranking points, got %d", ErrInvalidInput, e.numPoints)
	}
	if len(resp) < e.numPoints {
		return fmt.Errorf("%w: %d samples, need at least %d", ErrInvalidInput, len(resp), e.numPoints)
	}
	return nil
}

// solvePair solves the SHO transfer relation in closed form for the
// auxiliary coefficients (a, b, c, d) using the real and imaginary response
// parts at two sample indices. Pairs with a non-positive denominator or a
// non-positive resonance term d have no valid solution.
func solvePair(resp []complex128, freq []float64, i1, i2 int) (candidate, bool) {
	w1, w2 := freq[i1], freq[i2]
	x1, y1 := real(resp[i1]), imag(resp[i1])
	x2, y2 := real(resp[i2]), imag(resp[i2])

	denom := w1*(x1*x1-x1*x2+y1*(y1-y2)) + w2*(-x1*x2+x2*x2-y1*y2+y2*y2)
	if denom <= 0 {
		return candidate{}, false
	}

	wd := w1*w1 - w2*w2
	m1 := x1*x1 + y1*y1
	m2 := x2*x2 + y2*y2

	d := (w1*w1*w1*m1 - w1*w1*w2*(x1*x2+y1*y2) - w1*w2*w2*(x1*x2+y1*y2) + w2*w2*w2*m2) / denom
	if d <= 0 {
		return candidate{}, false
	}

	return candidate{
		a: wd * (w1*x2*m1 - w2*x1*m2) / denom,
		b: wd * (w1*y2*m1 - w2*y1*m2) / denom,
		c: wd * (x2*y1 - x1*y2) / denom,
		d: d,
	}, true
}

// coefficientParams recovers the physical SHO parameters from the
// auxiliary coefficients
func coefficientParams(a, b, c, d float64) Parameters {
	return Parameters{
		Amplitude: math.Hypot(a, b) / d,
		Frequency: math.Sqrt(d),
		Q:         -math.Sqrt(d) / c,
		Phase:     math.Atan2(-b, -a),
	}
}
