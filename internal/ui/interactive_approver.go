package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sfops/flowrec/pkg/flowrec"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It prompts the user to type "yes" before the
// manifests are rewritten.
type InteractiveApprover struct {
	in  io.Reader
	out io.Writer
}

// NewInteractiveApprover creates an InteractiveApprover reading from
// stdin and prompting on stderr.
func NewInteractiveApprover() *InteractiveApprover {
	return &InteractiveApprover{in: os.Stdin, out: os.Stderr}
}

// NewInteractiveApproverWithStreams creates an approver bound to the
// given streams, for tests.
func NewInteractiveApproverWithStreams(in io.Reader, out io.Writer) *InteractiveApprover {
	return &InteractiveApprover{in: in, out: out}
}

// RequestApproval prompts the user to confirm the rewrite.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, flowNames []string) (bool, error) {
	fmt.Fprintf(a.out, "\nAbout to deactivate %d flow(s) and rewrite both manifests:\n", len(flowNames))
	for _, name := range flowNames {
		fmt.Fprintf(a.out, "  - %s\n", name)
	}
	fmt.Fprint(a.out, "\nType 'yes' to continue: ")

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.in)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if strings.EqualFold(input, "yes") {
			fmt.Fprintln(a.out, "✓ Confirmed. Proceeding with reconciliation...")
			return true, nil
		}
		fmt.Fprintln(a.out, "✗ Operation cancelled.")
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ flowrec.Approver = (*InteractiveApprover)(nil)
