package salesforce

import (
	"bytes"
	"context"
	"os/exec"
)

// CLIBinary is the Salesforce CLI executable invoked for org operations.
const CLIBinary = "sf"

// CommandRunner abstracts subprocess execution so services can be tested
// without invoking the real CLI.
type CommandRunner interface {
	// Run executes the command and returns captured stdout and stderr.
	// A non-zero exit is returned as an error alongside whatever output
	// was produced.
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner executes commands on the local host.
type ExecRunner struct{}

// NewExecRunner creates a new local command runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		// The kill signal surfaces as an opaque exec error; report the
		// cancellation or timeout instead.
		err = ctxErr
	}

	return stdout.Bytes(), stderr.Bytes(), err
}

// Verify ExecRunner implements the CommandRunner interface at compile time
var _ CommandRunner = (*ExecRunner)(nil)
