package mhchain

import (
	"math/rand"
	"testing"
)

// AssertionConfig contains tolerances for chain properties.
type AssertionConfig struct {
	// Absolute tolerance on the sample mean vs the target mean
	MeanTolerance float64

	// Absolute tolerance on the sample stddev vs the target stddev
	StddevTolerance float64

	// Number of proposal draws for symmetry checks
	SymmetryDraws int
}

// DefaultAssertionConfig returns conservative tolerances.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MeanTolerance:   0.05,
		StddevTolerance: 0.1,
		SymmetryDraws:   100,
	}
}

// AssertTraceAlignment verifies the three traces have the expected length
// and stay index-aligned - the structural invariant every consumer of a
// chain relies on.
func AssertTraceAlignment(t *testing.T, c *Chain, iterations int) {
	t.Helper()

	if len(c.States) != iterations {
		t.Errorf("Chain has %d states (expected %d)", len(c.States), iterations)
	}
	if len(c.LogProb) != len(c.States) {
		t.Errorf("LogProb trace has %d entries, States has %d (must be index-aligned)",
			len(c.LogProb), len(c.States))
	}
	if len(c.Acceptance) != len(c.States) {
		t.Errorf("Acceptance trace has %d entries, States has %d (must be index-aligned)",
			len(c.Acceptance), len(c.States))
	}

	t.Logf("✓ Traces aligned: %d states, %d log-probs, %d acceptance entries",
		len(c.States), len(c.LogProb), len(c.Acceptance))
}

// AssertAcceptanceBounds verifies every acceptance-trace entry lies in
// [0, 1]. The trace itself need not be monotonic - only the accepted count
// underneath it is.
func AssertAcceptanceBounds(t *testing.T, c *Chain) {
	t.Helper()

	for i, rate := range c.Acceptance {
		if rate < 0 || rate > 1 {
			t.Errorf("Acceptance[%d] = %f out of [0, 1]", i, rate)
			return
		}
	}

	if len(c.Acceptance) > 0 {
		t.Logf("✓ Acceptance trace bounded: final rate %.4f", c.Acceptance[len(c.Acceptance)-1])
	}
}

// AssertStationaryMoments verifies the tail of the chain has converged to
// the expected mean and standard deviation in the given dimension.
//
// Only the final 50% of the chain is measured: a chain started far from
// the target's mass spends its early steps in transit, and those transient
// states would bias the whole-chain moments.
func AssertStationaryMoments(t *testing.T, c *Chain, dim int, wantMean, wantStddev float64, cfg AssertionConfig) {
	t.Helper()

	tail := SummarizeTail(c)
	if dim >= len(tail.Mean) {
		t.Fatalf("Dimension %d out of range (chain has %d)", dim, len(tail.Mean))
	}

	meanErr := tail.Mean[dim] - wantMean
	if meanErr < 0 {
		meanErr = -meanErr
	}
	if meanErr > cfg.MeanTolerance {
		t.Errorf("Tail mean = %.4f (expected %.4f ± %.2f)\n"+
			"Chain has not converged. Check sigma tuning or iteration count.",
			tail.Mean[dim], wantMean, cfg.MeanTolerance)
	}

	stddevErr := tail.Stddev[dim] - wantStddev
	if stddevErr < 0 {
		stddevErr = -stddevErr
	}
	if stddevErr > cfg.StddevTolerance {
		t.Errorf("Tail stddev = %.4f (expected %.4f ± %.2f)\n"+
			"Chain is not exploring the target's full width.",
			tail.Stddev[dim], wantStddev, cfg.StddevTolerance)
	}

	t.Logf("✓ Stationary moments: mean = %.4f, stddev = %.4f (%d tail samples)",
		tail.Mean[dim], tail.Stddev[dim], tail.Samples)
}

// AssertSymmetricProposal verifies a kernel reports density ratio 1 on
// every draw, the contract for symmetric proposals.
func AssertSymmetricProposal(t *testing.T, propose Proposal, state []float64, cfg AssertionConfig) {
	t.Helper()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < cfg.SymmetryDraws; i++ {
		_, ratio := propose(rng, state)
		if ratio != 1 {
			t.Errorf("Draw %d: density ratio = %g (symmetric kernels must report exactly 1)", i, ratio)
			return
		}
	}

	t.Logf("✓ Symmetric proposal: ratio = 1 across %d draws", cfg.SymmetryDraws)
}
