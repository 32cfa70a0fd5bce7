// Package retry provides automatic retry with exponential backoff for
// transient failures of the external CLI subprocess.
//
// The package supports pluggable error classification and backoff
// strategies via the flowrec.ErrorClassifier and flowrec.BackoffStrategy
// interfaces.
//
// # Example Usage
//
//	executor := retry.NewExecutor(
//	    retry.NewSubprocessErrorClassifier(),
//	    retry.NewExponentialBackoff(2, 500*time.Millisecond, 30*time.Second),
//	)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return queryOrg(ctx)
//	})
//
// # Error Classification
//
// SubprocessErrorClassifier recognizes network-level trouble in CLI
// output (ECONNRESET, ETIMEDOUT, server unavailable, ...) as transient.
// Context cancellation and a missing executable are fatal.
package retry
