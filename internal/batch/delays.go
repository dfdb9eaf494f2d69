package batch

import "time"

// DefaultBaseDelay is the stagger between consecutive batch starts.
const DefaultBaseDelay = 500 * time.Millisecond

// CreateBatchDelays returns the start delay of each of n concurrently
// dispatched batches: 0, base, 2*base, ...
func CreateBatchDelays(n int, base time.Duration) []time.Duration {
	if n <= 0 {
		return []time.Duration{}
	}
	base = max(0, base)
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = time.Duration(i) * base
	}
	return delays
}
