package dataset

import "github.com/bandexc/shofit/sho"

// GuessRecord is the fixed-layout result record for one position, matching
// the compound float32 layout instrument files use for SHO fit results
type GuessRecord struct {
	Amplitude float32 // Amplitude [V]
	Frequency float32 // Frequency [Hz]
	Q         float32 // Quality Factor
	Phase     float32 // Phase [rad]
}

// RecordFromParameters packs an estimate into the fixed result layout
func RecordFromParameters(p sho.Parameters) GuessRecord {
	return GuessRecord{
		Amplitude: float32(p.Amplitude),
		Frequency: float32(p.Frequency),
		Q:         float32(p.Q),
		Phase:     float32(p.Phase),
	}
}

// Parameters unpacks a record back into full-precision parameters
func (r GuessRecord) Parameters() sho.Parameters {
	return sho.Parameters{
		Amplitude: float64(r.Amplitude),
		Frequency: float64(r.Frequency),
		Q:         float64(r.Q),
		Phase:     float64(r.Phase),
	}
}

// GuessResult holds per-position guess records alongside the frequency
// vector they were fitted against and provenance attributes
type GuessResult struct {
	Records     []GuessRecord
	FrequencyHz []float64
	Attrs       map[string]string
}

// NewGuessResult allocates a result group sized for the dataset and links
// it back to the source frequency vector
func NewGuessResult(d *Dataset) *GuessResult {
	return &GuessResult{
		Records:     make([]GuessRecord, d.Positions()),
		FrequencyHz: d.FrequencyHz,
		Attrs:       make(map[string]string),
	}
}
