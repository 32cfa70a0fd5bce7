package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRequireManifestPaths(t *testing.T) {
	cmd := &cobra.Command{
		Use: "reconcile <package_manifest> <destructive_manifest>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireManifestPaths(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required arguments: <package_manifest> <destructive_manifest>") {
			t.Errorf("expected error to name the missing arguments, got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "Example:") {
			t.Errorf("expected error to contain 'Example:', got: %s", err.Error())
		}
	})

	t.Run("returns error when only one arg", func(t *testing.T) {
		err := RequireManifestPaths(cmd, []string{"manifest/package.xml"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required arguments") {
			t.Errorf("expected error to contain 'missing required arguments', got: %s", err.Error())
		}
	})

	t.Run("returns nil when both args provided", func(t *testing.T) {
		err := RequireManifestPaths(cmd, []string{"manifest/package.xml", "manifest/destructiveChanges.xml"})
		if err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequireManifestPaths(cmd, []string{"a", "b", "c"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "accepts 2 arg(s), received 3") {
			t.Errorf("expected error to contain 'accepts 2 arg(s), received 3', got: %s", err.Error())
		}
	})
}
