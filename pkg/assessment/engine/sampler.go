package engine

import (
	"math/rand"
	"sync"
	"time"
)

const MAX_DISTRACTORS_PER_ITEM = 3

// Sampler bundles all randomness used during quiz and session
// generation, so tests can inject a seeded instance. One instance is
// shared by concurrent requests, the mutex guards the underlying
// rand.Rand which is not safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSampler() *Sampler {
	return NewSeededSampler(time.Now().UnixNano())
}

func NewSeededSampler(seed int64) *Sampler {
	return &Sampler{rnd: rand.New(rand.NewSource(seed))}
}

// ShuffleStrings permutes the slice in place with a fair uniform shuffle.
func (s *Sampler) ShuffleStrings(values []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shuffleStrings(values)
}

func (s *Sampler) shuffleStrings(values []string) {
	s.rnd.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
}

// PickIndices returns n distinct indices of a collection of the given
// size, uniformly sampled without replacement. If n exceeds size, all
// indices are returned (in random order).
func (s *Sampler) PickIndices(size int, n int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	perm := s.rnd.Perm(size)
	if n < size {
		perm = perm[:n]
	}
	return perm
}

// SampleOptions builds the option set for a multiple-choice item: the
// candidate pool without the correct value is shuffled, up to
// MAX_DISTRACTORS_PER_ITEM entries are taken and the correct value is
// added back, deduplicated by exact string equality. The caller is
// expected to shuffle the result again before computing the displayed
// correct index, so that the correct value's position carries no bias.
func (s *Sampler) SampleOptions(correct string, pool []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidates := make([]string, 0, len(pool))
	for _, value := range pool {
		if value != correct {
			candidates = append(candidates, value)
		}
	}
	s.shuffleStrings(candidates)

	if len(candidates) > MAX_DISTRACTORS_PER_ITEM {
		candidates = candidates[:MAX_DISTRACTORS_PER_ITEM]
	}

	options := []string{correct}
	seen := map[string]bool{correct: true}
	for _, value := range candidates {
		if seen[value] {
			continue
		}
		seen[value] = true
		options = append(options, value)
	}
	return options
}
