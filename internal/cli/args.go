package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireManifestPaths validates that exactly two manifest path arguments
// are provided. Returns a helpful error message with usage if missing or
// too many.
func RequireManifestPaths(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf(`missing required arguments: <package_manifest> <destructive_manifest>

Usage: %s

Example:
  %s manifest/package.xml manifest/destructiveChanges.xml`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts 2 arg(s), received %d", len(args))
	}
	return nil
}
