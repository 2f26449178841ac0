package engine

import (
	"sync"
	"testing"
)

func TestSampleOptions(t *testing.T) {
	sampler := NewSeededSampler(1)

	t.Run("contains correct value exactly once", func(t *testing.T) {
		options := sampler.SampleOptions("Ana", []string{"Luis", "Marcos", "Ana", "Elena", "Pedro"})
		count := 0
		for _, value := range options {
			if value == "Ana" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("correct value appears %d times", count)
		}
	})

	t.Run("bounded by max distractors", func(t *testing.T) {
		options := sampler.SampleOptions("a", []string{"b", "c", "d", "e", "f", "g"})
		if len(options) > MAX_DISTRACTORS_PER_ITEM+1 {
			t.Errorf("too many options: %d", len(options))
		}
	})

	t.Run("deduplicated", func(t *testing.T) {
		options := sampler.SampleOptions("Ana", []string{"Luis", "Luis", "Luis", "Ana"})
		seen := map[string]bool{}
		for _, value := range options {
			if seen[value] {
				t.Errorf("duplicate option: %q", value)
			}
			seen[value] = true
		}
	})

	t.Run("small pool keeps all distinct values", func(t *testing.T) {
		options := sampler.SampleOptions("Ana", []string{"Luis"})
		if len(options) != 2 {
			t.Errorf("unexpected option count: %d", len(options))
		}
	})

	t.Run("pool with only the correct value", func(t *testing.T) {
		options := sampler.SampleOptions("Ana", []string{"Ana", "Ana"})
		if len(options) != 1 {
			t.Errorf("unexpected option count: %d", len(options))
		}
	})
}

func TestPickIndices(t *testing.T) {
	sampler := NewSeededSampler(42)

	t.Run("samples without replacement", func(t *testing.T) {
		indices := sampler.PickIndices(10, 6)
		if len(indices) != 6 {
			t.Errorf("unexpected count: %d", len(indices))
		}
		seen := map[int]bool{}
		for _, idx := range indices {
			if idx < 0 || idx >= 10 {
				t.Errorf("index out of range: %d", idx)
			}
			if seen[idx] {
				t.Errorf("duplicate index: %d", idx)
			}
			seen[idx] = true
		}
	})

	t.Run("n larger than size returns all", func(t *testing.T) {
		indices := sampler.PickIndices(3, 10)
		if len(indices) != 3 {
			t.Errorf("unexpected count: %d", len(indices))
		}
	})
}

// One sampler instance is shared by all concurrent requests; this test
// fails under the race detector if the internal rand source is used
// without locking.
func TestSamplerConcurrentUse(t *testing.T) {
	sampler := NewSeededSampler(7)
	pool := []string{"Ana", "Luis", "Marcos", "Elena", "Pedro", "Carmen"}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				options := sampler.SampleOptions("Ana", pool)
				if len(options) < 1 || options[0] != "Ana" {
					t.Errorf("unexpected options: %v", options)
					return
				}
				indices := sampler.PickIndices(len(pool), 3)
				for _, idx := range indices {
					if idx < 0 || idx >= len(pool) {
						t.Errorf("index out of range: %d", idx)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
