package main

import (
	"fmt"
	"runtime"
)

// MaxWorkers caps parallel render workers.
const MaxWorkers = 32

// resolvePoolSize determines the worker count.
// Priority: explicit flag > environment > GOMAXPROCS-based calculation.
func resolvePoolSize(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 {
		return min(envWorkers, MaxWorkers)
	}

	// Rendering is CPU-bound; GOMAXPROCS is adjusted by automaxprocs for containers.
	n := runtime.GOMAXPROCS(0)
	return max(1, min(n, 8))
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}
