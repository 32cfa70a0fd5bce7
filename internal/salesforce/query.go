package salesforce

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sfops/flowrec/internal/retry"
	"github.com/sfops/flowrec/pkg/flowrec"
)

// QueryService implements flowrec.VersionQueryService by invoking the
// Salesforce CLI's tooling-API query command. All names are looked up in
// a single batched query; the CLI call is the dominant cost of a run, so
// one request per name would be ruinous.
type QueryService struct {
	runner    CommandRunner
	logger    flowrec.Logger
	executor  *retry.Executor
	targetOrg string
}

// NewQueryService creates a QueryService with the default retry policy.
// Panics on nil dependencies.
func NewQueryService(runner CommandRunner, logger flowrec.Logger) *QueryService {
	if runner == nil {
		panic("runner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	s := &QueryService{
		runner: runner,
		logger: logger,
	}
	s.executor = retry.NewExecutor(
		retry.NewSubprocessErrorClassifier(),
		retry.NewExponentialBackoff(
			flowrec.DefaultRetryMaxAttempts,
			flowrec.DefaultRetryInitialDelay,
			flowrec.DefaultRetryMaxDelay,
		),
	).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		logger.Warn("Flow version query attempt %d failed (%v), retrying in %s", attempt+1, err, delay)
	})
	return s
}

// WithTargetOrg returns a copy directing queries at the given org alias
// or username instead of the CLI's default org.
func (s *QueryService) WithTargetOrg(org string) *QueryService {
	clone := *s
	clone.targetOrg = org
	return &clone
}

// WithRetryExecutor returns a copy using the given retry executor.
func (s *QueryService) WithRetryExecutor(e *retry.Executor) *QueryService {
	clone := *s
	clone.executor = e
	return &clone
}

// QueryFlowVersions returns every remote flow version record matching any
// of the given bare names. A name with no remote versions produces no
// records, which is not an error.
func (s *QueryService) QueryFlowVersions(ctx context.Context, names []string) ([]flowrec.FlowVersionRecord, error) {
	if len(names) == 0 {
		return nil, nil
	}

	soql := buildFlowVersionQuery(names)
	args := []string{"data", "query", "--query", soql, "--use-tooling-api", "--json"}
	if s.targetOrg != "" {
		args = append(args, "--target-org", s.targetOrg)
	}

	s.logger.Verbose("Querying flow versions: %s", soql)

	var stdout []byte
	run := func(ctx context.Context) error {
		out, errOut, err := s.runner.Run(ctx, CLIBinary, args...)
		if err != nil {
			return fmt.Errorf("%s data query failed: %w: %s", CLIBinary, err, strings.TrimSpace(string(errOut)))
		}
		stdout = out
		return nil
	}

	if err := s.executor.Execute(ctx, run); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("flow version query failed (%v): %w", err, flowrec.ErrResolution)
	}

	records, err := parseQueryOutput(stdout, s.logger)
	if err != nil {
		return nil, fmt.Errorf("flow version query returned no usable response (%v): %w", err, flowrec.ErrResolution)
	}

	return records, nil
}

// buildFlowVersionQuery composes the batched SOQL lookup for the given
// flow names.
func buildFlowVersionQuery(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + escapeSOQLString(n) + "'"
	}
	return fmt.Sprintf(
		"SELECT Definition.DeveloperName, VersionNumber, Status FROM Flow WHERE Definition.DeveloperName IN (%s)",
		strings.Join(quoted, ", "),
	)
}

// escapeSOQLString escapes the characters with meaning inside a SOQL
// string literal.
func escapeSOQLString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return s
}

// Verify QueryService implements the VersionQueryService interface at compile time
var _ flowrec.VersionQueryService = (*QueryService)(nil)
