package mdsite

import "runtime"

// Bounds for the number of pages compiled in parallel.
const (
	// MinWorkers ensures at least one page is compiled at a time.
	MinWorkers = 1

	// MaxWorkers caps automatic sizing on large machines.
	MaxWorkers = 8
)

// ResolveWorkers determines how many pages are compiled in parallel.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS reflects container CPU quotas once automaxprocs has run.
	n := runtime.GOMAXPROCS(0)
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
