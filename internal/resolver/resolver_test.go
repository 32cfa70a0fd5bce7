package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfops/flowrec/internal/logging"
	"github.com/sfops/flowrec/pkg/flowrec"
)

type mockQueryService struct {
	queried [][]string
	records []flowrec.FlowVersionRecord
	err     error
}

func (m *mockQueryService) QueryFlowVersions(_ context.Context, names []string) ([]flowrec.FlowVersionRecord, error) {
	m.queried = append(m.queried, names)
	return m.records, m.err
}

func TestStripVersionSuffix(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"My_Flow-3", "My_Flow"},
		{"My_Flow-12", "My_Flow"},
		{"My_Flow", "My_Flow"},
		{"My-Fancy-Flow", "My-Fancy-Flow"},
		{"My-Fancy-Flow-2", "My-Fancy-Flow"},
		{"Flow-", "Flow-"},
		{"-3", "-3"},
		{"Flow-3a", "Flow-3a"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, StripVersionSuffix(c.in), "input %q", c.in)
	}
}

func TestResolve_EmptyInputSkipsQuery(t *testing.T) {
	q := &mockQueryService{}
	r := NewResolver(q, logging.NewNullLogger())

	ids, err := r.ResolveDeletableVersions(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Empty(t, q.queried)
}

func TestResolve_StripsSuffixesBeforeQuerying(t *testing.T) {
	q := &mockQueryService{}
	r := NewResolver(q, logging.NewNullLogger())

	_, err := r.ResolveDeletableVersions(context.Background(), []string{"My_Flow-3", "My_Flow-2", "Other_Flow"})
	require.NoError(t, err)

	require.Len(t, q.queried, 1)
	assert.Equal(t, []string{"My_Flow", "Other_Flow"}, q.queried[0])
}

func TestResolve_AllVersionsSurface(t *testing.T) {
	q := &mockQueryService{records: []flowrec.FlowVersionRecord{
		{DeveloperName: "FlowB", VersionNumber: 2, Status: "Active"},
		{DeveloperName: "FlowA", VersionNumber: 2, Status: "Active"},
		{DeveloperName: "FlowB", VersionNumber: 1, Status: "Obsolete"},
	}}
	r := NewResolver(q, logging.NewNullLogger())

	ids, err := r.ResolveDeletableVersions(context.Background(), []string{"FlowA", "FlowB"})
	require.NoError(t, err)
	assert.Equal(t, []string{"FlowA-2", "FlowB-1", "FlowB-2"}, ids)
}

func TestResolve_NamesWithoutRemoteVersions(t *testing.T) {
	q := &mockQueryService{records: nil}
	r := NewResolver(q, logging.NewNullLogger())

	ids, err := r.ResolveDeletableVersions(context.Background(), []string{"Never_Deployed"})
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Len(t, q.queried, 1)
}

func TestResolve_QueryErrorPropagates(t *testing.T) {
	q := &mockQueryService{err: flowrec.ErrResolution}
	r := NewResolver(q, logging.NewNullLogger())

	_, err := r.ResolveDeletableVersions(context.Background(), []string{"FlowA"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, flowrec.ErrResolution))
}

func TestNewResolver_NilDependenciesPanic(t *testing.T) {
	assert.Panics(t, func() { NewResolver(nil, logging.NewNullLogger()) })
	assert.Panics(t, func() { NewResolver(&mockQueryService{}, nil) })
}
