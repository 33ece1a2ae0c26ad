package mhchain

import (
	"fmt"
	"math/rand"
)

// ProposalConfig controls the Gaussian random-walk kernel.
type ProposalConfig struct {
	// Sigma is the perturbation standard deviation per dimension.
	// A single value broadcasts across all dimensions; a vector of
	// length D applies per-dimension step sizes.
	Sigma []float64
}

// DefaultProposalConfig returns sensible defaults.
func DefaultProposalConfig() ProposalConfig {
	return ProposalConfig{
		Sigma: []float64{0.1},
	}
}

// GaussianProposal builds an isotropic Gaussian random-walk kernel: each
// dimension of the candidate is drawn from a normal distribution centered
// at the current value with the configured standard deviation.
//
// The kernel is symmetric - q(x*|x) = q(x|x*) - so the returned density
// ratio is always exactly 1 and the Hastings correction vanishes.
//
// Sigma = 0 is allowed and degenerates to candidate == current, which makes
// the Hastings ratio exactly 1 on every step: every proposal is accepted
// and the chain never moves. Negative sigma is rejected.
func GaussianProposal(cfg ProposalConfig) (Proposal, error) {
	if len(cfg.Sigma) == 0 {
		return nil, fmt.Errorf("sigma is empty")
	}
	for i, s := range cfg.Sigma {
		if s < 0 {
			return nil, fmt.Errorf("sigma[%d] is negative: %g", i, s)
		}
	}
	sigma := make([]float64, len(cfg.Sigma))
	copy(sigma, cfg.Sigma)

	return func(rng *rand.Rand, state []float64) ([]float64, float64) {
		if len(sigma) != 1 && len(sigma) != len(state) {
			panic(fmt.Sprintf("mhchain: sigma has %d dimensions, state has %d", len(sigma), len(state)))
		}
		candidate := make([]float64, len(state))
		for i, x := range state {
			s := sigma[0]
			if len(sigma) > 1 {
				s = sigma[i]
			}
			candidate[i] = x + rng.NormFloat64()*s
		}
		return candidate, 1
	}, nil
}
