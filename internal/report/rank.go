package report

import (
	"math"
	"sync"

	"github.com/udisondev/ttkbench/internal/model"
)

// Change is how one weapon moved against the previous ranking.
type Change struct {
	// Rank is previousRank - newRank; positive means the weapon moved up.
	Rank int `json:"rank"`
	// DelayMs is the time-to-kill difference in whole milliseconds,
	// new minus previous.
	DelayMs int `json:"delayMs"`
}

type placement struct {
	rank int
	ttk  float64
}

// RankTracker remembers the last ranking and reports how weapons moved.
//
// Thread-safe: guarded by a mutex.
type RankTracker struct {
	mu   sync.Mutex
	prev map[string]placement
}

// NewRankTracker creates a tracker with no history.
func NewRankTracker() *RankTracker {
	return &RankTracker{prev: make(map[string]placement)}
}

// Update records stats as the current ranking and returns one Change per
// position. Weapons not in the previous ranking get a zero Change.
func (t *RankTracker) Update(stats []model.AggregateStat) []Change {
	t.mu.Lock()
	defer t.mu.Unlock()

	changes := make([]Change, len(stats))
	next := make(map[string]placement, len(stats))
	for i, s := range stats {
		if old, ok := t.prev[s.WeaponName]; ok {
			changes[i] = Change{
				Rank:    old.rank - i,
				DelayMs: int(math.Round((s.AverageTimeToKill - old.ttk) * 1000)),
			}
		}
		next[s.WeaponName] = placement{rank: i, ttk: s.AverageTimeToKill}
	}
	t.prev = next
	return changes
}

// Reset forgets the previous ranking.
func (t *RankTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prev = make(map[string]placement)
}
