package mhchain

import "math"

// Summary contains per-dimension sample moments and the acceptance rate
// over a window of the chain.
type Summary struct {
	Samples        int       // States in the window
	Mean           []float64 // Per-dimension sample mean
	Stddev         []float64 // Per-dimension sample standard deviation
	AcceptanceRate float64   // Cumulative rate at the end of the chain
}

// Summarize computes sample moments over the entire chain.
func Summarize(c *Chain) Summary {
	return summarizeWindow(c, 0)
}

// SummarizeTail computes sample moments over the final 50% of the chain.
// Useful when the chain starts far from the target's mass: the early
// transient drags the whole-chain moments, while the tail reflects the
// stationary distribution.
func SummarizeTail(c *Chain) Summary {
	return summarizeWindow(c, len(c.States)/2)
}

func summarizeWindow(c *Chain, from int) Summary {
	if c == nil || len(c.States) == 0 || from >= len(c.States) {
		return Summary{}
	}

	window := c.States[from:]
	dim := len(window[0])
	n := float64(len(window))

	mean := make([]float64, dim)
	for _, state := range window {
		for d, x := range state {
			mean[d] += x
		}
	}
	for d := range mean {
		mean[d] /= n
	}

	stddev := make([]float64, dim)
	for _, state := range window {
		for d, x := range state {
			diff := x - mean[d]
			stddev[d] += diff * diff
		}
	}
	for d := range stddev {
		stddev[d] = math.Sqrt(stddev[d] / n)
	}

	var rate float64
	if len(c.Acceptance) > 0 {
		rate = c.Acceptance[len(c.Acceptance)-1]
	}

	return Summary{
		Samples:        len(window),
		Mean:           mean,
		Stddev:         stddev,
		AcceptanceRate: rate,
	}
}
