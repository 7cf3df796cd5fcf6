// Package dataset holds in-memory models of band-excitation measurements:
// a grid of complex spectra sharing one frequency vector, flattened
// row-major the way instrument files store them, plus the fixed-layout
// records fitted results are packed into.
package dataset

import "fmt"

// Dataset is a rows-by-cols grid of complex response spectra sharing a
// single frequency vector. Spectra are stored position-major with
// row-major position flattening.
type Dataset struct {
	Rows int
	Cols int

	// FrequencyHz is the spectroscopic axis shared by every position
	FrequencyHz []float64

	// Attrs carries free-form measurement metadata
	Attrs map[string]string

	spectra [][]complex128
}

// New creates an empty dataset with the given grid shape and frequency
// vector
func New(rows, cols int, freqHz []float64) (*Dataset, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("dataset: invalid grid %dx%d", rows, cols)
	}
	if len(freqHz) == 0 {
		return nil, fmt.Errorf("dataset: empty frequency vector")
	}

	return &Dataset{
		Rows:        rows,
		Cols:        cols,
		FrequencyHz: freqHz,
		Attrs:       make(map[string]string),
		spectra:     make([][]complex128, rows*cols),
	}, nil
}

// Positions returns the number of measurement positions
func (d *Dataset) Positions() int {
	return d.Rows * d.Cols
}

// Points returns the number of spectral points per position
func (d *Dataset) Points() int {
	return len(d.FrequencyHz)
}

// PositionIndex flattens grid coordinates row-major
func (d *Dataset) PositionIndex(row, col int) int {
	return row*d.Cols + col
}

// SetSpectrum stores the spectrum for a flattened position. The spectrum
// length must match the frequency vector.
func (d *Dataset) SetSpectrum(pos int, resp []complex128) error {
	if pos < 0 || pos >= len(d.spectra) {
		return fmt.Errorf("dataset: position %d outside grid of %d", pos, len(d.spectra))
	}
	if len(resp) != len(d.FrequencyHz) {
		return fmt.Errorf("dataset: spectrum length %d does not match %d frequency points",
			len(resp), len(d.FrequencyHz))
	}
	d.spectra[pos] = resp
	return nil
}

// Spectrum returns the spectrum stored at a flattened position, or nil if
// none was set
func (d *Dataset) Spectrum(pos int) []complex128 {
	if pos < 0 || pos >= len(d.spectra) {
		return nil
	}
	return d.spectra[pos]
}
