package grid

import "math/rand"

// Source provides the random draws used for spawning tiles.
type Source interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// ScriptedSource replays queued Intn results. It is used to pin spawn
// positions and ranks in tests and examples.
type ScriptedSource struct {
	results []int
	next    int
}

// Ensure ScriptedSource implements Source
var _ Source = (*ScriptedSource)(nil)

// NewScriptedSource creates a source that returns values in order.
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{results: values}
}

// Queue appends values to the result queue.
func (s *ScriptedSource) Queue(values ...int) {
	s.results = append(s.results, values...)
}

// Intn returns the next queued result clamped to [0, n), or 0 once the queue
// is exhausted.
func (s *ScriptedSource) Intn(n int) int {
	if s.next >= len(s.results) || n <= 0 {
		return 0
	}
	v := s.results[s.next]
	s.next++
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Remaining returns how many queued results have not been consumed.
func (s *ScriptedSource) Remaining() int {
	return len(s.results) - s.next
}
