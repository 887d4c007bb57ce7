package animico

import (
	"fmt"
	"os"
	"time"
)

// TickStats holds the counters for one Tick. Elapsed is only measured in
// debug mode.
type TickStats struct {
	DT        float64
	Active    int // tweens still in flight after the tick
	Advanced  int
	Completed int
	Cancelled int // cancellations since the previous tick, including this one
	Expired   int
	Elapsed   time.Duration
}

// debugLog prints the tick stats to stderr.
func (s *Scheduler) debugLog(stats TickStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[animico] tick: dt %.4f | active: %d | advanced: %d | completed: %d | cancelled: %d | expired: %d | took: %v\n",
		stats.DT, stats.Active, stats.Advanced, stats.Completed, stats.Cancelled, stats.Expired, stats.Elapsed)
	debugCheckActiveCount(stats.Active)
}

// debugWarnDelta warns about a frame delta that Tick had to discard.
func debugWarnDelta(dt float64) {
	_, _ = fmt.Fprintf(os.Stderr, "[animico] warning: invalid frame delta %v treated as 0\n", dt)
}

// debugCheckActiveCount warns on stderr if the active set grows past the
// threshold, which usually means tweens are scheduled every frame and never
// retired.
const debugMaxActive = 10000

func debugCheckActiveCount(n int) {
	if n > debugMaxActive {
		_, _ = fmt.Fprintf(os.Stderr, "[animico] warning: %d active tweens (threshold %d)\n", n, debugMaxActive)
	}
}
