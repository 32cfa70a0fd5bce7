package salesforce

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfops/flowrec/internal/logging"
	"github.com/sfops/flowrec/internal/retry"
	"github.com/sfops/flowrec/pkg/flowrec"
)

// fakeRunner returns canned results per invocation, recording each call.
type fakeRunner struct {
	calls   [][]string
	results []fakeResult
}

type fakeResult struct {
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if len(f.results) == 0 {
		return nil, nil, nil
	}
	r := f.results[0]
	if len(f.results) > 1 {
		f.results = f.results[1:]
	}
	return []byte(r.stdout), []byte(r.stderr), r.err
}

const queryOK = `{
  "status": 0,
  "result": {
    "records": [
      {"VersionNumber": 2, "Status": "Active", "Definition": {"DeveloperName": "Order_Fulfillment"}},
      {"VersionNumber": 1, "Status": "Obsolete", "Definition": {"DeveloperName": "Case_Escalation"}},
      {"VersionNumber": 2, "Status": "Active", "Definition": {"DeveloperName": "Case_Escalation"}}
    ],
    "totalSize": 3,
    "done": true
  }
}`

func noRetry() *retry.Executor {
	return retry.NewExecutor(
		retry.NewSubprocessErrorClassifier(),
		retry.NewExponentialBackoff(0, time.Millisecond, time.Millisecond),
	)
}

func newService(runner *fakeRunner) *QueryService {
	return NewQueryService(runner, logging.NewNullLogger()).WithRetryExecutor(noRetry())
}

func TestQueryFlowVersions_SingleBatchedRequest(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{stdout: queryOK}}}
	svc := newService(runner)

	records, err := svc.QueryFlowVersions(context.Background(), []string{"Order_Fulfillment", "Case_Escalation"})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	call := strings.Join(runner.calls[0], " ")
	assert.Contains(t, call, "sf data query")
	assert.Contains(t, call, "--use-tooling-api")
	assert.Contains(t, call, "IN ('Order_Fulfillment', 'Case_Escalation')")

	require.Len(t, records, 3)
	assert.Equal(t, "Order_Fulfillment-2", records[0].DeletableID())
	assert.Equal(t, "Case_Escalation-1", records[1].DeletableID())
	assert.Equal(t, "Case_Escalation-2", records[2].DeletableID())
}

func TestQueryFlowVersions_EmptyInputMakesNoCall(t *testing.T) {
	runner := &fakeRunner{}
	svc := newService(runner)

	records, err := svc.QueryFlowVersions(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, runner.calls)
}

func TestQueryFlowVersions_TargetOrgFlag(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{stdout: queryOK}}}
	svc := newService(runner).WithTargetOrg("ci-org")

	_, err := svc.QueryFlowVersions(context.Background(), []string{"Order_Fulfillment"})
	require.NoError(t, err)

	call := strings.Join(runner.calls[0], " ")
	assert.Contains(t, call, "--target-org ci-org")
}

func TestQueryFlowVersions_MergesMultipleChunks(t *testing.T) {
	chunk2 := `{
  "status": 0,
  "result": {
    "records": [{"VersionNumber": 5, "Status": "Draft", "Definition": {"DeveloperName": "Late_Chunk"}}],
    "totalSize": 1,
    "done": true
  }
}`
	runner := &fakeRunner{results: []fakeResult{{stdout: queryOK + "\n" + chunk2}}}
	svc := newService(runner)

	records, err := svc.QueryFlowVersions(context.Background(), []string{"Order_Fulfillment"})
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "Late_Chunk-5", records[3].DeletableID())
}

func TestQueryFlowVersions_GarbledTrailingChunkIsSkipped(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{stdout: queryOK + "\n{garbage"}}}
	svc := newService(runner)

	records, err := svc.QueryFlowVersions(context.Background(), []string{"Order_Fulfillment"})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestQueryFlowVersions_UnusableRecordsAreSkipped(t *testing.T) {
	out := `{
  "status": 0,
  "result": {
    "records": [
      {"VersionNumber": 0, "Status": "Active", "Definition": {"DeveloperName": "No_Version"}},
      {"VersionNumber": 3, "Status": "Active", "Definition": {"DeveloperName": ""}},
      {"VersionNumber": 1, "Status": "Active", "Definition": {"DeveloperName": "Good_Flow"}}
    ],
    "totalSize": 3,
    "done": true
  }
}`
	runner := &fakeRunner{results: []fakeResult{{stdout: out}}}
	svc := newService(runner)

	records, err := svc.QueryFlowVersions(context.Background(), []string{"Good_Flow"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Good_Flow-1", records[0].DeletableID())
}

func TestQueryFlowVersions_NoValidResponseIsResolutionError(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{stdout: "not json at all"}}}
	svc := newService(runner)

	_, err := svc.QueryFlowVersions(context.Background(), []string{"Order_Fulfillment"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, flowrec.ErrResolution))
}

func TestQueryFlowVersions_FailedEnvelopeIsResolutionError(t *testing.T) {
	out := `{"status": 1, "message": "INVALID_TYPE: sObject type 'Flw' is not supported", "name": "Error"}`
	runner := &fakeRunner{results: []fakeResult{{stdout: out}}}
	svc := newService(runner)

	_, err := svc.QueryFlowVersions(context.Background(), []string{"Order_Fulfillment"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, flowrec.ErrResolution))
	assert.Contains(t, err.Error(), "INVALID_TYPE")
}

func TestQueryFlowVersions_CommandFailureIsResolutionError(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{stderr: "some org error", err: errors.New("exit status 1")}}}
	svc := newService(runner)

	_, err := svc.QueryFlowVersions(context.Background(), []string{"Order_Fulfillment"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, flowrec.ErrResolution))
	assert.Contains(t, err.Error(), "some org error")
}

func TestQueryFlowVersions_RetriesTransientFailure(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{
		{stderr: "read ECONNRESET", err: errors.New("exit status 1")},
		{stdout: queryOK},
	}}
	svc := NewQueryService(runner, logging.NewNullLogger()).WithRetryExecutor(
		retry.NewExecutor(
			retry.NewSubprocessErrorClassifier(),
			retry.NewExponentialBackoff(2, time.Millisecond, time.Millisecond),
		),
	)

	records, err := svc.QueryFlowVersions(context.Background(), []string{"Order_Fulfillment"})
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Len(t, runner.calls, 2)
}

func TestQueryFlowVersions_CancelledContextPropagates(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{err: context.Canceled}}}
	svc := newService(runner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.QueryFlowVersions(ctx, []string{"Order_Fulfillment"})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, flowrec.ErrResolution))
}

func TestBuildFlowVersionQuery_EscapesLiterals(t *testing.T) {
	soql := buildFlowVersionQuery([]string{`O'Brien_Flow`, `Back\slash`})
	assert.Contains(t, soql, `'O\'Brien_Flow'`)
	assert.Contains(t, soql, `'Back\\slash'`)
}
