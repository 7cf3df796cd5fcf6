package spectral

import (
	"fmt"

	"github.com/mjibson/go-dsp/fft"
)

// BandExtractor converts time-domain ring-down records into complex
// frequency responses restricted to a measurement band. Instruments that
// excite a resonator across a frequency band record the deflection in
// time; the response spectrum handed to the fitters is the single-sided
// FFT of that record.
type BandExtractor struct {
	sampleRate float64
}

// NewBandExtractor creates a band extractor for records sampled at the
// given rate in Hz
func NewBandExtractor(sampleRate float64) *BandExtractor {
	return &BandExtractor{sampleRate: sampleRate}
}

// Response computes the single-sided complex spectrum of the record and
// returns the frequency and response vectors restricted to [minHz, maxHz].
// The spectrum is scaled so a unit sinusoid inside the band appears with
// unit magnitude.
func (be *BandExtractor) Response(record []float64, minHz, maxHz float64) ([]float64, []complex128, error) {
	if len(record) == 0 {
		return nil, nil, fmt.Errorf("spectral: empty record")
	}

	nyquist := be.sampleRate / 2
	if minHz < 0 || maxHz <= minHz || maxHz > nyquist {
		return nil, nil, fmt.Errorf("spectral: band [%g, %g] outside [0, %g]", minHz, maxHz, nyquist)
	}

	// mjibson/go-dsp handles all sizes, including non-power-of-2
	spectrum := fft.FFTReal(record)

	n := len(record)
	resolution := be.sampleRate / float64(n)
	scale := complex(2.0/float64(n), 0)

	var freqs []float64
	var resp []complex128
	for k := 0; k <= n/2; k++ {
		f := float64(k) * resolution
		if f < minHz || f > maxHz {
			continue
		}
		freqs = append(freqs, f)
		resp = append(resp, spectrum[k]*scale)
	}

	if len(freqs) == 0 {
		return nil, nil, fmt.Errorf("spectral: band [%g, %g] narrower than resolution %g", minHz, maxHz, resolution)
	}
	return freqs, resp, nil
}
