package salesforce

import (
	"context"
	"fmt"
	"strings"

	"github.com/sfops/flowrec/pkg/flowrec"
)

// RetrieveService implements flowrec.ArtifactMaterializer by asking the
// CLI to retrieve flow definition descriptors from the org into the local
// project. Callers treat its failure as non-fatal and fall back to
// constructing minimal descriptors.
type RetrieveService struct {
	runner    CommandRunner
	logger    flowrec.Logger
	targetOrg string
}

// NewRetrieveService creates a RetrieveService.
// Panics on nil dependencies.
func NewRetrieveService(runner CommandRunner, logger flowrec.Logger) *RetrieveService {
	if runner == nil {
		panic("runner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &RetrieveService{runner: runner, logger: logger}
}

// WithTargetOrg returns a copy retrieving from the given org alias or
// username instead of the CLI's default org.
func (s *RetrieveService) WithTargetOrg(org string) *RetrieveService {
	clone := *s
	clone.targetOrg = org
	return &clone
}

// Materialize retrieves the flow definition descriptors for the given
// names into the local project.
func (s *RetrieveService) Materialize(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	args := []string{"project", "retrieve", "start", "--json"}
	for _, name := range names {
		args = append(args, "--metadata", flowrec.FlowDefinitionType+":"+name)
	}
	if s.targetOrg != "" {
		args = append(args, "--target-org", s.targetOrg)
	}

	s.logger.Verbose("Retrieving %d flow definition descriptor(s)", len(names))

	_, stderr, err := s.runner.Run(ctx, CLIBinary, args...)
	if err != nil {
		return fmt.Errorf("%s project retrieve failed (%v: %s): %w",
			CLIBinary, err, strings.TrimSpace(string(stderr)), flowrec.ErrMaterializeFailed)
	}
	return nil
}

// Verify RetrieveService implements the ArtifactMaterializer interface at compile time
var _ flowrec.ArtifactMaterializer = (*RetrieveService)(nil)
