package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagnitudesAndPhases(t *testing.T) {
	resp := []complex128{1, 1i, -2, complex(3, 4)}

	assert.Equal(t, []float64{1, 1, 2, 5}, Magnitudes(resp))

	phases := Phases(resp)
	assert.InDelta(t, 0, phases[0], 1e-12)
	assert.InDelta(t, math.Pi/2, phases[1], 1e-12)
	assert.InDelta(t, math.Pi, phases[2], 1e-12)
}

func TestTopIndices(t *testing.T) {
	resp := []complex128{1, 5i, -3, complex(0, -4), 2}

	assert.Equal(t, []int{1, 3, 2}, TopIndices(resp, 3))
	assert.Equal(t, []int{1, 3, 2, 4, 0}, TopIndices(resp, 10))
}

// Equal magnitudes must keep their original order so ranking is
// deterministic
func TestTopIndicesStable(t *testing.T) {
	resp := []complex128{1, 1i, -1, 2}
	assert.Equal(t, []int{3, 0, 1, 2}, TopIndices(resp, 4))
}

func TestResidualEnergy(t *testing.T) {
	a := []complex128{1, 2i, complex(1, 1)}

	assert.Equal(t, 0.0, ResidualEnergy(a, a))

	b := []complex128{2, 2i, complex(1, -1)}
	// (1-2)^2 + (1-(-1))^2
	assert.InDelta(t, 5.0, ResidualEnergy(a, b), 1e-12)
}

func TestMagnitudeStats(t *testing.T) {
	resp := []complex128{3, 4i, -5}

	assert.InDelta(t, 4.0, MagnitudeMean(resp), 1e-12)
	assert.InDelta(t, 1.0, MagnitudeStd(resp), 1e-12)

	require.Equal(t, 0.0, MagnitudeMean(nil))
	require.Equal(t, 0.0, MagnitudeStd([]complex128{1}))
}
