// Package sho models damped simple-harmonic-oscillator resonances and
// derives initial parameter guesses from measured complex frequency
// responses. The guesses seed a subsequent nonlinear fit; they are meant
// to be cheap and robust, not least-squares optimal.
package sho

import "math/cmplx"

// Parameters holds the four SHO model parameters
type Parameters struct {
	Amplitude float64 // peak drive amplitude, same units as the response
	Frequency float64 // resonance frequency, same units as the frequency vector
	Q         float64 // quality factor
	Phase     float64 // phase offset in radians, in (-pi, pi]
}

// Response generates the SHO transfer function over the given frequency
// vector:
//
//	H(f) = A * exp(i*phi) * f0^2 / (f^2 - i*f*f0/Q - f0^2)
func Response(p Parameters, freq []float64) []complex128 {
	num := complex(p.Amplitude*p.Frequency*p.Frequency, 0) * cmplx.Exp(complex(0, p.Phase))

	resp := make([]complex128, len(freq))
	for i, f := range freq {
		resp[i] = num / complex(f*f-p.Frequency*p.Frequency, -f*p.Frequency/p.Q)
	}
	return resp
}
