package flowrec

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := reconciler.Reconcile(ctx, config)
//	if errors.Is(err, flowrec.ErrResolution) {
//	    // Handle remote version query failure
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMalformedManifest indicates a manifest document lacks the
	// expected Package root or is otherwise unparsable.
	ErrMalformedManifest = errors.New("malformed manifest")

	// ErrResolution indicates the remote version query failed or
	// returned no usable records.
	ErrResolution = errors.New("version resolution failed")

	// ErrApprovalDenied indicates the user denied approval for the
	// manifest rewrite.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrMaterializeFailed indicates the descriptor retrieval collaborator
	// failed. Callers may treat this as non-fatal and fall back to
	// constructing a minimal descriptor.
	ErrMaterializeFailed = errors.New("descriptor retrieval failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMalformedManifest):
		return ExitManifestError
	case errors.Is(err, ErrResolution):
		return ExitResolutionError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	}

	// Argument and flag errors surface from the CLI layer as plain
	// strings, not sentinels.
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "missing required argument") ||
		strings.Contains(errStr, "accepts 2 arg(s)") {
		return ExitUsageError
	}

	return ExitGeneralError
}
