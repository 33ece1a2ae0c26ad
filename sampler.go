package mhchain

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// LogPosterior evaluates the unnormalized log-density of the target
// distribution at a state.
//
// Implementations must be deterministic for a given state and side-effect
// free with respect to sampler state. A state outside the target's support
// is NOT an error: return a finite, very negative value (see
// OutOfSupportLogProb) so the acceptance arithmetic stays well-defined.
// A returned error means the evaluator itself broke (arithmetic domain
// failure, malformed state) and aborts the whole run.
type LogPosterior func(state []float64) (float64, error)

// Proposal draws a candidate state conditioned on the current state.
//
// The returned ratio is q(x|x*)/q(x*|x), the reverse-to-forward transition
// density ratio used to correct for asymmetric kernels. Symmetric kernels
// return exactly 1. Implementations must not retain or mutate state; all
// randomness comes from the supplied generator.
type Proposal func(rng *rand.Rand, state []float64) (candidate []float64, ratio float64)

// Chain holds the output of one sampling run. All three traces are
// index-aligned with length equal to the iteration count: States[i] is the
// accepted state after step i, LogProb[i] its log-posterior, and
// Acceptance[i] the cumulative acceptance rate (accepted count / i).
// Acceptance[0] is 0: step 0 is seeded, not proposed, so there is no
// denominator.
type Chain struct {
	States     [][]float64
	LogProb    []float64
	Acceptance []float64
	Accepted   int // Total accepted proposals
}

// Config controls a sampling run.
type Config struct {
	Iterations int        // Chain length including the seeded initial state
	RNG        *rand.Rand // Entropy source; nil = time-seeded
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Iterations: 10000,
		RNG:        nil,
	}
}

// Run executes the Metropolis-Hastings loop and returns the completed chain.
//
// Step 0 is seeded directly from the initial state. Each subsequent step
// proposes a candidate from the current accepted state, draws u uniform in
// [0,1), and accepts iff
//
//	u < exp(logP(candidate) − logP(current)) · ratio
//
// Note the comparison is u < H, not u < min(1, H): since u < 1 always, the
// two are equivalent, and skipping the clamp keeps H = +Inf (a huge
// log-posterior jump) flowing through the comparison untouched.
//
// On rejection the current state carries forward unchanged, so States[i] is
// always either States[i-1] or the step-i candidate. Each step depends only
// on the immediately preceding accepted state - the Markov property.
//
// The context is checked once per iteration; cancellation aborts the run
// with no partial chain, as does an evaluator error. The dimension is fixed
// by the initial state and never changes mid-chain.
func Run(ctx context.Context, initial []float64, logpost LogPosterior, propose Proposal, cfg Config) (*Chain, error) {
	if len(initial) == 0 {
		return nil, fmt.Errorf("initial state is empty")
	}
	if cfg.Iterations < 1 {
		return nil, fmt.Errorf("iterations must be >= 1, got %d", cfg.Iterations)
	}
	if logpost == nil {
		return nil, fmt.Errorf("log-posterior evaluator is nil")
	}
	if propose == nil {
		return nil, fmt.Errorf("proposal generator is nil")
	}

	rng := cfg.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	chain := &Chain{
		States:     make([][]float64, cfg.Iterations),
		LogProb:    make([]float64, cfg.Iterations),
		Acceptance: make([]float64, cfg.Iterations),
	}

	// Seed step 0: the loop owns its own copy of the state
	current := make([]float64, len(initial))
	copy(current, initial)

	currentLP, err := logpost(current)
	if err != nil {
		return nil, fmt.Errorf("evaluating initial state: %w", err)
	}

	chain.States[0] = snapshot(current)
	chain.LogProb[0] = currentLP

	for i := 1; i < cfg.Iterations; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		candidate, ratio := propose(rng, current)
		u := rng.Float64()

		candidateLP, err := logpost(candidate)
		if err != nil {
			return nil, fmt.Errorf("evaluating candidate at step %d: %w", i, err)
		}

		h := math.Exp(candidateLP-currentLP) * ratio
		if u < h {
			current = candidate
			currentLP = candidateLP
			chain.Accepted++
		}

		chain.States[i] = snapshot(current)
		chain.LogProb[i] = currentLP
		chain.Acceptance[i] = float64(chain.Accepted) / float64(i)
	}

	return chain, nil
}

// snapshot copies a state so chain entries never alias the evolving state.
func snapshot(state []float64) []float64 {
	c := make([]float64, len(state))
	copy(c, state)
	return c
}
