package sho_test

import (
	"fmt"

	"github.com/bandexc/shofit/sho"
)

func ExampleEstimate() {
	// Frequency band of 100 points between 300 and 350 kHz
	freq := make([]float64, 100)
	for i := range freq {
		freq[i] = 300e3 + float64(i)*50e3/99
	}

	// A measured spectrum, here synthesized from known parameters
	truth := sho.Parameters{Amplitude: 1.0, Frequency: 325e3, Q: 200, Phase: 0.5}
	resp := sho.Response(truth, freq)

	guess, err := sho.Estimate(resp, freq)
	if err != nil {
		panic(err)
	}

	fmt.Printf("A=%.2f f0=%.0f Q=%.0f phase=%.2f\n",
		guess.Amplitude, guess.Frequency, guess.Q, guess.Phase)
	// Output:
	// A=1.00 f0=325000 Q=200 phase=0.50
}
