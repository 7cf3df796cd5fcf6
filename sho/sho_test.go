package sho

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseDeterministic(t *testing.T) {
	freq := bandFreqs()
	p := Parameters{Amplitude: 1.0, Frequency: 325e3, Q: 200, Phase: 0.5}

	first := Response(p, freq)
	second := Response(p, freq)
	require.Equal(t, first, second)
}

func TestResponsePeaksNearResonance(t *testing.T) {
	freq := bandFreqs()
	p := Parameters{Amplitude: 1.0, Frequency: 325e3, Q: 200, Phase: 0.0}
	resp := Response(p, freq)

	peak := 0
	for i := range resp {
		if cmplx.Abs(resp[i]) > cmplx.Abs(resp[peak]) {
			peak = i
		}
	}
	assert.InDelta(t, p.Frequency, freq[peak], 1e3)

	// On resonance the magnitude is amplified by roughly Q
	assert.InEpsilon(t, p.Amplitude*p.Q, cmplx.Abs(resp[peak]), 0.05)
}

func TestResponseFarFromResonance(t *testing.T) {
	p := Parameters{Amplitude: 1.0, Frequency: 325e3, Q: 200, Phase: 0.0}

	// Well below resonance the response approaches -A*exp(i*phi)
	resp := Response(p, []float64{1.0})
	assert.InDelta(t, p.Amplitude, cmplx.Abs(resp[0]), 1e-6)
	assert.InDelta(t, math.Pi, math.Abs(cmplx.Phase(resp[0])), 1e-6)
}
