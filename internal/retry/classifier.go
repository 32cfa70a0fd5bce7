package retry

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// transientFragments are error-text markers of temporary network or
// platform trouble as surfaced by the sf CLI and the OS. The CLI reports
// Node.js error codes in its stderr output.
var transientFragments = []string{
	"econnreset",
	"econnrefused",
	"etimedout",
	"enotfound",
	"eai_again",
	"socket hang up",
	"getaddrinfo",
	"network error",
	"connection reset",
	"timed out",
	"temporarily unavailable",
	"request_limit_exceeded",
	"server_unavailable",
	"503",
}

// SubprocessErrorClassifier implements flowrec.ErrorClassifier for
// failures of the external CLI subprocess.
type SubprocessErrorClassifier struct{}

// NewSubprocessErrorClassifier creates a new subprocess error classifier.
func NewSubprocessErrorClassifier() *SubprocessErrorClassifier {
	return &SubprocessErrorClassifier{}
}

// IsTransient determines if an error is temporary and retryable.
// Context cancellation, a missing executable and plain command failures
// are fatal; only recognizable network-level trouble is retried.
func (c *SubprocessErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Executable not installed: retrying cannot help.
	if errors.Is(err, exec.ErrNotFound) {
		return false
	}

	text := strings.ToLower(err.Error())
	for _, fragment := range transientFragments {
		if strings.Contains(text, fragment) {
			return true
		}
	}

	return false
}
