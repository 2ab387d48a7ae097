package stats

import (
	"iter"
	"sort"
	"sync"
)

// Aggregator maintains a frequency table of keywords that triggered matches.
// Only the pipeline goroutine records; readers take ranked snapshots. The
// table grows for the life of the run, which is fine because keyword
// cardinality is bounded by the configuration.
type Aggregator struct {
	mu     sync.RWMutex
	counts map[string]int64
	seen   []string // first-seen order, for deterministic tie-breaking
	total  int64
}

// New creates an empty Aggregator
func New() *Aggregator {
	return &Aggregator{
		counts: make(map[string]int64),
	}
}

// Record increments the count for a keyword, creating it on first sight.
// An empty keyword (regex- or IP-only match) still counts toward the total.
func (a *Aggregator) Record(keyword string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.total++

	if keyword == "" {
		return
	}

	if _, ok := a.counts[keyword]; !ok {
		a.seen = append(a.seen, keyword)
	}

	a.counts[keyword]++
}

// Total returns the number of recorded matches
func (a *Aggregator) Total() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.total
}

// Count returns the count for a single keyword
func (a *Aggregator) Count(keyword string) int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.counts[keyword]
}

// TopN returns the n highest-count keywords as a restartable ranked
// sequence, ordered by count descending with ties broken by first-seen
// order. The ranking is computed from a point-in-time snapshot, so
// iterating twice without intervening Record calls yields identical
// results.
func (a *Aggregator) TopN(n int) iter.Seq2[string, int64] {
	a.mu.RLock()

	ranked := make([]string, len(a.seen))
	copy(ranked, a.seen)

	counts := make(map[string]int64, len(a.counts))
	for k, v := range a.counts {
		counts[k] = v
	}

	a.mu.RUnlock()

	// seen order is the secondary key; stable sort preserves it on ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}

	return func(yield func(string, int64) bool) {
		for _, kw := range ranked {
			if !yield(kw, counts[kw]) {
				return
			}
		}
	}
}
