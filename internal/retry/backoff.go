package retry

import (
	"math"
	"math/rand"
	"time"
)

// ExponentialBackoff implements flowrec.BackoffStrategy with exponential
// delays and jitter.
type ExponentialBackoff struct {
	initialDelay time.Duration
	maxDelay     time.Duration
	maxAttempts  int

	// jitterFunc provides random values in [0, 1). Tests set a
	// deterministic function; production uses rand.Float64.
	jitterFunc func() float64
}

// NewExponentialBackoff creates a backoff strategy that doubles the delay
// each attempt, starting at initialDelay and capped at maxDelay, with
// +/-10% jitter. maxAttempts of 0 disables retries; -1 retries without
// limit.
func NewExponentialBackoff(maxAttempts int, initialDelay, maxDelay time.Duration) *ExponentialBackoff {
	return &ExponentialBackoff{
		initialDelay: initialDelay,
		maxDelay:     maxDelay,
		maxAttempts:  maxAttempts,
	}
}

// WithJitterFunc returns a copy using the given random source for jitter.
func (b *ExponentialBackoff) WithJitterFunc(f func() float64) *ExponentialBackoff {
	clone := *b
	clone.jitterFunc = f
	return &clone
}

// NextDelay calculates the delay for the given zero-indexed attempt.
func (b *ExponentialBackoff) NextDelay(attempt int) time.Duration {
	delay := float64(b.initialDelay) * math.Pow(2, float64(attempt))
	if delay > float64(b.maxDelay) {
		delay = float64(b.maxDelay)
	}

	jitterFunc := b.jitterFunc
	if jitterFunc == nil {
		jitterFunc = rand.Float64
	}
	// Map [0,1) onto [-1,1) and scale to +/-10%.
	delay *= 1.0 + 0.1*(jitterFunc()-0.5)*2.0

	return time.Duration(delay)
}

// MaxAttempts returns the maximum number of retry attempts.
func (b *ExponentialBackoff) MaxAttempts() int {
	return b.maxAttempts
}
