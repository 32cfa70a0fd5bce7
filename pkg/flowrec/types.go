package flowrec

import (
	"errors"
	"fmt"
	"time"
)

// ReconcileConfig contains all parameters needed for a reconciliation run.
type ReconcileConfig struct {
	// PackageManifestPath is the path to the package manifest (package.xml)
	PackageManifestPath string

	// DestructiveManifestPath is the path to the destructive manifest
	// (destructiveChanges.xml)
	DestructiveManifestPath string

	// DescriptorDir is the directory holding flow definition descriptors.
	// Created if absent.
	DescriptorDir string

	// TargetOrg is the org alias or username passed to the sf CLI.
	// Empty means the CLI's default org.
	TargetOrg string

	// APIVersion is the metadata API version stamped into newly created
	// documents.
	APIVersion string

	// QueryTimeout bounds the remote version query subprocess.
	QueryTimeout time.Duration

	// Materialize enables the retrieve-before-edit step for descriptors.
	Materialize bool

	// DryRun computes and logs the full reconciliation without writing
	// any file.
	DryRun bool

	// Force bypasses interactive approval of the manifest rewrite.
	Force bool

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the ReconcileConfig has all required fields and valid
// values. It returns a multi-error if multiple validation failures occur.
func (c *ReconcileConfig) Validate() error {
	var errs []error

	if c.PackageManifestPath == "" {
		errs = append(errs, fmt.Errorf("PackageManifestPath is required: %w", ErrInvalidConfig))
	}

	if c.DestructiveManifestPath == "" {
		errs = append(errs, fmt.Errorf("DestructiveManifestPath is required: %w", ErrInvalidConfig))
	}

	if c.DescriptorDir == "" {
		errs = append(errs, fmt.Errorf("DescriptorDir is required: %w", ErrInvalidConfig))
	}

	if c.QueryTimeout < 0 {
		errs = append(errs, fmt.Errorf("query timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// FlowVersionRecord is one remote fact about a flow version's existence,
// as reported by the version query collaborator.
type FlowVersionRecord struct {
	// DeveloperName is the bare flow name, without any version suffix.
	DeveloperName string

	// VersionNumber is the concrete version that exists remotely.
	VersionNumber int

	// Status is the remote lifecycle state (Active, Obsolete, Draft, ...).
	// Informational only: every version is deletable regardless of status.
	Status string
}

// DeletableID formats the record as the version-qualified identifier
// required by destructive deployments, e.g. "MyFlow-3".
func (r FlowVersionRecord) DeletableID() string {
	return fmt.Sprintf("%s-%d", r.DeveloperName, r.VersionNumber)
}
