package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flowrec",
	Short: "Manifest reconciliation for flow deletions",
	Long: `flowrec reconciles a package manifest (package.xml) with a destructive
manifest (destructiveChanges.xml) when flows are named for deletion.

A flow cannot be deleted while active, and a bare flow name cannot be
deleted at all - only a concrete version can. flowrec closes both gaps:
it writes a deactivation descriptor per flow, merges those descriptors
into the package manifest so they deploy with the release, and rewrites
the destructive delete list with the version-qualified identifiers that
actually exist in the org.

Exit Codes:
  0  - Success (including "nothing to reconcile")
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Manifest lacks the expected root or shape
  12 - Remote version query failed
  13 - User denied the manifest rewrite`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
