package progress

import (
	"math/rand"
	"sync"

	"shorts_studio/internal/domain"
)

var DefaultPhases = []string{
	"Researching trends...",
	"Analyzing competition...",
	"Identifying viral patterns...",
	"Writing scripts...",
	"Refining content...",
	"Finalizing output...",
}

const (
	minStep = 2
	maxStep = 10
	// slowdownAt is where the simulated progress stops growing.
	slowdownAt = 90
	// maxPending keeps the bar below 100 until the result is known.
	maxPending = 99
	complete   = 100
)

// Rand is the randomness the simulator draws steps from.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Simulator produces monotonically non-decreasing progress with a rotating
// phase message. It is safe for concurrent use.
type Simulator struct {
	mu      sync.Mutex
	rng     Rand
	phases  []string
	phase   int
	percent float64
	done    bool
}

func NewSimulator(phases []string, rng Rand) *Simulator {
	if len(phases) == 0 {
		phases = DefaultPhases
	}
	if rng == nil {
		rng = globalRand{}
	}
	return &Simulator{rng: rng, phases: phases}
}

func (s *Simulator) Current() domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Advance moves one tick forward. After Complete it is a no-op.
func (s *Simulator) Advance() domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return s.snapshot()
	}
	if s.percent < slowdownAt {
		s.percent += minStep + s.rng.Float64()*(maxStep-minStep)
		s.percent = min(s.percent, maxPending)
	}
	s.phase = (s.phase + 1) % len(s.phases)
	return s.snapshot()
}

// Complete jumps to 100 once the result is known.
func (s *Simulator) Complete() domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.percent = complete
	s.done = true
	return s.snapshot()
}

func (s *Simulator) snapshot() domain.Progress {
	return domain.Progress{
		Percent: s.percent,
		Message: s.phases[s.phase],
		Done:    s.done,
	}
}
