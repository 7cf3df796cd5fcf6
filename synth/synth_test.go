package synth

import (
	"golang.org/x/exp/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandexc/shofit/sho"
)

func TestLinspace(t *testing.T) {
	freq := Linspace(300e3, 350e3, 100)
	require.Len(t, freq, 100)
	assert.Equal(t, 300e3, freq[0])
	assert.InDelta(t, 350e3, freq[99], 1e-6)

	// Degenerate lengths must not divide by zero or panic
	assert.Equal(t, []float64{300e3}, Linspace(300e3, 350e3, 1))
	assert.Nil(t, Linspace(300e3, 350e3, 0))
	assert.Nil(t, Linspace(300e3, 350e3, -3))
}

func TestSpectrumNoiseless(t *testing.T) {
	freq := Linspace(300e3, 350e3, 100)
	p := sho.Parameters{Amplitude: 1, Frequency: 325e3, Q: 200, Phase: 0.5}

	got := Spectrum(p, freq, 0, rand.NewSource(1))
	assert.Equal(t, sho.Response(p, freq), got)

	// nil source also disables noise
	got = Spectrum(p, freq, 0.1, nil)
	assert.Equal(t, sho.Response(p, freq), got)
}

func TestSpectrumNoiseDeterministic(t *testing.T) {
	freq := Linspace(300e3, 350e3, 100)
	p := sho.Parameters{Amplitude: 1, Frequency: 325e3, Q: 200, Phase: 0.5}

	a := Spectrum(p, freq, 0.05, rand.NewSource(9))
	b := Spectrum(p, freq, 0.05, rand.NewSource(9))
	assert.Equal(t, a, b)
	assert.NotEqual(t, sho.Response(p, freq), a)
}

func gridConfig() GridConfig {
	return GridConfig{
		Rows:        3,
		Cols:        4,
		FrequencyHz: Linspace(300e3, 350e3, 100),
		Amplitude:   Range{Min: 0.5, Max: 2},
		Frequency:   Range{Min: 310e3, Max: 340e3},
		Q:           Range{Min: 50, Max: 300},
		Phase:       Range{Min: -3, Max: 3},
		NoiseSigma:  0.01,
		Seed:        42,
	}
}

func TestGridShapesAndRanges(t *testing.T) {
	cfg := gridConfig()
	ds, truth, err := Grid(cfg)
	require.NoError(t, err)

	assert.Equal(t, 12, ds.Positions())
	assert.Len(t, truth, 12)
	assert.Equal(t, "synthetic", ds.Attrs["source"])

	for pos, p := range truth {
		require.Len(t, ds.Spectrum(pos), 100)

		assert.GreaterOrEqual(t, p.Amplitude, cfg.Amplitude.Min)
		assert.LessOrEqual(t, p.Amplitude, cfg.Amplitude.Max)
		assert.GreaterOrEqual(t, p.Frequency, cfg.Frequency.Min)
		assert.LessOrEqual(t, p.Frequency, cfg.Frequency.Max)
		assert.GreaterOrEqual(t, p.Q, cfg.Q.Min)
		assert.LessOrEqual(t, p.Q, cfg.Q.Max)
	}
}

func TestGridDeterministic(t *testing.T) {
	cfg := gridConfig()

	dsA, truthA, err := Grid(cfg)
	require.NoError(t, err)
	dsB, truthB, err := Grid(cfg)
	require.NoError(t, err)

	assert.Equal(t, truthA, truthB)
	for pos := 0; pos < dsA.Positions(); pos++ {
		assert.Equal(t, dsA.Spectrum(pos), dsB.Spectrum(pos))
	}
}

func TestGridInvalidShape(t *testing.T) {
	cfg := gridConfig()
	cfg.Rows = 0
	_, _, err := Grid(cfg)
	require.Error(t, err)
}
