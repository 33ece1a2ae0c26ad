package mhchain

// OutOfSupportLogProb is the log-posterior reported for states outside the
// target's support. Finite on purpose: exp(OutOfSupportLogProb − logP)
// underflows cleanly to zero and the acceptance test rejects the candidate,
// where a true -Inf (or an error) would push exceptional values through
// the arithmetic.
const OutOfSupportLogProb = -1e6

// GaussianTargetConfig describes the reference 1-D Gaussian target with a
// uniform prior restricting the support to an open interval.
type GaussianTargetConfig struct {
	Mean   float64 // μ
	Stddev float64 // σ
	Min    float64 // Lower support bound (exclusive)
	Max    float64 // Upper support bound (exclusive)
}

// DefaultGaussianTargetConfig returns the standard normal restricted to
// (-10, 10).
func DefaultGaussianTargetConfig() GaussianTargetConfig {
	return GaussianTargetConfig{
		Mean:   0.0,
		Stddev: 1.0,
		Min:    -10.0,
		Max:    10.0,
	}
}

// GaussianTarget builds the reference 1-D evaluator: the unnormalized
// log-density −0.5·(x−μ)²/σ² inside the open interval (Min, Max), and
// OutOfSupportLogProb at or beyond the boundary. The boundary itself is
// excluded - the inequalities are strict - so logpost(Min) and logpost(Max)
// both return the sentinel.
//
// The evaluator reads only the first dimension of the state.
func GaussianTarget(cfg GaussianTargetConfig) LogPosterior {
	return func(state []float64) (float64, error) {
		x := state[0]
		if x <= cfg.Min || x >= cfg.Max {
			return OutOfSupportLogProb, nil
		}
		d := (x - cfg.Mean) / cfg.Stddev
		return -0.5 * d * d, nil
	}
}
