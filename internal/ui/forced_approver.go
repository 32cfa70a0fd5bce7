package ui

import (
	"context"

	"github.com/sfops/flowrec/pkg/flowrec"
)

// ForcedApprover implements the Approver interface for non-interactive
// runs. It logs what is about to happen and approves immediately, used
// when the --force flag is provided or stdin is not a terminal.
type ForcedApprover struct {
	logger flowrec.Logger
}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover(logger flowrec.Logger) *ForcedApprover {
	return &ForcedApprover{logger: logger}
}

// RequestApproval approves without interaction.
func (a *ForcedApprover) RequestApproval(ctx context.Context, flowNames []string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	a.logger.Info("Deactivating %d flow(s) and rewriting both manifests (--force)", len(flowNames))
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ flowrec.Approver = (*ForcedApprover)(nil)
