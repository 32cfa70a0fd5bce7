package services

import (
	"context"
)

type mockDeactivator struct {
	calls [][]string
	err   error
}

func (m *mockDeactivator) Deactivate(_ context.Context, names []string) error {
	m.calls = append(m.calls, names)
	return m.err
}

type mockResolver struct {
	calls  [][]string
	result []string
	err    error
}

func (m *mockResolver) ResolveDeletableVersions(_ context.Context, names []string) ([]string, error) {
	m.calls = append(m.calls, names)
	return m.result, m.err
}

type mockApprover struct {
	calls    int
	approved bool
	err      error
}

func (m *mockApprover) RequestApproval(_ context.Context, _ []string) (bool, error) {
	m.calls++
	return m.approved, m.err
}
