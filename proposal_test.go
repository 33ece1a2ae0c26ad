package mhchain

import (
	"math"
	"math/rand"
	"testing"
)

// TestGaussianProposal_SymmetricRatio verifies the kernel reports density
// ratio 1 for every input and every sigma.
func TestGaussianProposal_SymmetricRatio(t *testing.T) {
	cfg := DefaultAssertionConfig()

	for _, sigma := range []float64{0.0, 0.01, 0.1, 0.5, 2.0, 100.0} {
		propose, err := GaussianProposal(ProposalConfig{Sigma: []float64{sigma}})
		if err != nil {
			t.Fatalf("sigma=%v rejected: %v", sigma, err)
		}
		AssertSymmetricProposal(t, propose, []float64{0.0, -3.0, 7.5}, cfg)
	}
}

// TestGaussianProposal_StepMagnitude verifies the perturbation stddev
// matches the configured sigma.
func TestGaussianProposal_StepMagnitude(t *testing.T) {
	sigma := 0.5
	propose, err := GaussianProposal(ProposalConfig{Sigma: []float64{sigma}})
	if err != nil {
		t.Fatalf("Failed to build proposal: %v", err)
	}

	rng := rand.New(rand.NewSource(11))
	state := []float64{3.0}

	n := 50000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		candidate, _ := propose(rng, state)
		step := candidate[0] - state[0]
		sum += step
		sumSq += step * step
	}

	mean := sum / float64(n)
	stddev := math.Sqrt(sumSq/float64(n) - mean*mean)

	if math.Abs(mean) > 0.02 {
		t.Errorf("Step mean = %v (perturbation must be centered at the current value)", mean)
	}
	if math.Abs(stddev-sigma) > 0.02 {
		t.Errorf("Step stddev = %v (expected sigma = %v)", stddev, sigma)
	}

	t.Logf("✓ %d draws: step mean %.4f, stddev %.4f (sigma %.2f)", n, mean, stddev, sigma)
}

// TestGaussianProposal_SigmaBroadcast verifies a scalar sigma applies to
// every dimension and a vector sigma applies per-dimension.
func TestGaussianProposal_SigmaBroadcast(t *testing.T) {
	state := []float64{0.0, 0.0, 0.0}
	n := 50000

	measure := func(propose Proposal, seed int64) []float64 {
		rng := rand.New(rand.NewSource(seed))
		sumSq := make([]float64, len(state))
		for i := 0; i < n; i++ {
			candidate, _ := propose(rng, state)
			for d, x := range candidate {
				sumSq[d] += x * x
			}
		}
		out := make([]float64, len(state))
		for d := range out {
			out[d] = math.Sqrt(sumSq[d] / float64(n))
		}
		return out
	}

	// Scalar broadcast: every dimension steps with sigma 0.3
	propose, err := GaussianProposal(ProposalConfig{Sigma: []float64{0.3}})
	if err != nil {
		t.Fatalf("Failed to build broadcast proposal: %v", err)
	}
	for d, s := range measure(propose, 21) {
		if math.Abs(s-0.3) > 0.02 {
			t.Errorf("Broadcast: dimension %d stddev = %v (expected 0.3)", d, s)
		}
	}

	// Per-dimension vector
	propose, err = GaussianProposal(ProposalConfig{Sigma: []float64{0.1, 0.5, 1.0}})
	if err != nil {
		t.Fatalf("Failed to build per-dimension proposal: %v", err)
	}
	want := []float64{0.1, 0.5, 1.0}
	for d, s := range measure(propose, 22) {
		if math.Abs(s-want[d]) > 0.03 {
			t.Errorf("Per-dim: dimension %d stddev = %v (expected %v)", d, s, want[d])
		}
	}

	t.Logf("✓ Scalar sigma broadcasts, vector sigma applies per-dimension")
}

// TestGaussianProposal_ZeroSigma verifies the degenerate kernel returns the
// current state exactly.
func TestGaussianProposal_ZeroSigma(t *testing.T) {
	propose, err := GaussianProposal(ProposalConfig{Sigma: []float64{0.0}})
	if err != nil {
		t.Fatalf("sigma=0 rejected: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	state := []float64{1.5, -2.5}

	for i := 0; i < 100; i++ {
		candidate, ratio := propose(rng, state)
		if candidate[0] != 1.5 || candidate[1] != -2.5 {
			t.Fatalf("Draw %d: candidate %v differs from state with sigma=0", i, candidate)
		}
		if ratio != 1 {
			t.Fatalf("Draw %d: ratio = %v", i, ratio)
		}
	}

	t.Logf("✓ Zero sigma: candidate == current on every draw")
}

// TestGaussianProposal_InvalidConfig verifies construction-time validation.
func TestGaussianProposal_InvalidConfig(t *testing.T) {
	if _, err := GaussianProposal(ProposalConfig{}); err == nil {
		t.Errorf("Empty sigma accepted")
	}
	if _, err := GaussianProposal(ProposalConfig{Sigma: []float64{0.1, -0.5}}); err == nil {
		t.Errorf("Negative sigma accepted")
	}

	t.Logf("✓ Invalid sigma configurations rejected at construction")
}

// TestGaussianProposal_DoesNotMutateState verifies the kernel returns a
// fresh candidate and leaves the input state untouched.
func TestGaussianProposal_DoesNotMutateState(t *testing.T) {
	propose, err := GaussianProposal(DefaultProposalConfig())
	if err != nil {
		t.Fatalf("Failed to build proposal: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	state := []float64{4.0, -4.0}

	candidate, _ := propose(rng, state)
	if state[0] != 4.0 || state[1] != -4.0 {
		t.Fatalf("Input state mutated: %v", state)
	}

	candidate[0] = 999
	if state[0] == 999 {
		t.Fatalf("Candidate aliases the input state")
	}

	t.Logf("✓ Kernel is side-effect free: input preserved, candidate independent")
}
