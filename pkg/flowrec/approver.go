package flowrec

import "context"

// Approver handles user interaction for approval workflows, particularly
// before the destructive manifest rewrite is committed to disk.
//
// Implementations:
//   - ForcedApprover: logs the plan and approves without interaction
//   - InteractiveApprover: prompts the user to confirm on the terminal
type Approver interface {
	// RequestApproval asks for confirmation before rewriting the manifests
	// for the given flow names.
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, flowNames []string) (bool, error)
}
