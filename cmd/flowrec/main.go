package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/sfops/flowrec/internal/cli"
	"github.com/sfops/flowrec/pkg/flowrec"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(flowrec.ExitPanic)
		}
	}()

	if os.Getenv("FLOWREC_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(flowrec.ExitCodeForError(err))
	}
}
