package assign

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// DefaultMaxAttempts bounds the construct-and-verify loop.
const DefaultMaxAttempts = 10_000

// Pair is one directed giver -> receiver edge.
type Pair struct {
	Giver    string
	Receiver string
}

// Result carries the generated pairs along with how many construction
// attempts were needed to produce them.
type Result struct {
	Pairs    []Pair
	Start    string
	Attempts int
}

// Generator produces uniformly random single-cycle assignments.
// It is safe for concurrent use.
type Generator struct {
	maxAttempts int

	mu  sync.Mutex
	rng *rand.Rand

	// verify is swapped out in tests to exercise the attempt ceiling.
	verify func(start string, pairs []Pair, n int) bool
}

// NewGenerator returns a Generator driven by a PCG source seeded with seed.
// A maxAttempts of zero or less uses DefaultMaxAttempts.
func NewGenerator(seed uint64, maxAttempts int) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		maxAttempts: maxAttempts,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		verify:      VerifyCycle,
	}
}

// NewRandomGenerator is NewGenerator with a seed taken from crypto/rand.
func NewRandomGenerator(maxAttempts int) (*Generator, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewGenerator(seed, maxAttempts), nil
}

// MaxAttempts reports the configured attempt ceiling.
func (g *Generator) MaxAttempts() int { return g.maxAttempts }

// Generate returns giver -> receiver pairs forming one cycle over participants.
//
// Lock state is checked first: a locked exchange without overrideLock fails
// with ErrExchangeLocked. Duplicate identifiers are collapsed before the
// participant count is checked.
func (g *Generator) Generate(participants []string, locked, overrideLock bool) ([]Pair, error) {
	res, err := g.Run(participants, locked, overrideLock)
	if err != nil {
		return nil, err
	}
	return res.Pairs, nil
}

// Run is Generate, but also reports the start participant and the number of
// attempts taken.
func (g *Generator) Run(participants []string, locked, overrideLock bool) (Result, error) {
	if locked && !overrideLock {
		return Result{}, ErrExchangeLocked
	}

	ids := distinct(participants)
	if len(ids) < 2 {
		return Result{}, ErrInsufficientParticipants
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		pairs, start, ok := g.build(ids)
		if !ok {
			continue
		}
		if g.verify(start, pairs, len(ids)) {
			return Result{Pairs: pairs, Start: start, Attempts: attempt}, nil
		}
	}

	return Result{}, fmt.Errorf("%w after %d attempts", ErrAssignmentGeneration, g.maxAttempts)
}

// build runs one construction attempt. The chain starts at a random
// participant, each step picks a receiver that has not received yet and is
// not the current giver, and the last receiver closes the cycle back to start.
func (g *Generator) build(ids []string) ([]Pair, string, bool) {
	start := ids[g.rng.IntN(len(ids))]

	received := make(map[string]struct{}, len(ids))
	received[start] = struct{}{}

	pairs := make([]Pair, 0, len(ids))
	candidates := make([]string, 0, len(ids))
	giver := start

	for len(pairs) < len(ids)-1 {
		candidates = candidates[:0]
		for _, id := range ids {
			if _, taken := received[id]; taken || id == giver {
				continue
			}
			candidates = append(candidates, id)
		}
		if len(candidates) == 0 {
			return nil, start, false
		}

		receiver := candidates[g.rng.IntN(len(candidates))]
		pairs = append(pairs, Pair{Giver: giver, Receiver: receiver})
		received[receiver] = struct{}{}
		giver = receiver
	}

	pairs = append(pairs, Pair{Giver: giver, Receiver: start})
	return pairs, start, true
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
