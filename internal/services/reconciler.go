package services

import (
	"context"
	"fmt"

	"github.com/sfops/flowrec/internal/files/filesystem"
	"github.com/sfops/flowrec/internal/manifest"
	"github.com/sfops/flowrec/internal/resolver"
	"github.com/sfops/flowrec/pkg/flowrec"
)

// ReconcileService implements the Reconciler interface.
// Thread-Safety: NOT safe for concurrent Reconcile() calls on the same
// instance. Create separate instances for concurrent runs.
type ReconcileService struct {
	fs          filesystem.FileSystem
	deactivator flowrec.FlowDeactivator
	resolver    flowrec.VersionResolver
	approver    flowrec.Approver
	logger      flowrec.Logger
}

// NewReconcileService creates a ReconcileService with all dependencies
// injected.
//
// Panics on nil dependencies: those are programmer errors that should
// fail loudly at application startup. Runtime conditions (bad paths,
// malformed documents, query failures) are returned as errors instead.
func NewReconcileService(
	fs filesystem.FileSystem,
	deactivator flowrec.FlowDeactivator,
	versionResolver flowrec.VersionResolver,
	approver flowrec.Approver,
	logger flowrec.Logger,
) *ReconcileService {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if deactivator == nil {
		panic("deactivator cannot be nil")
	}
	if versionResolver == nil {
		panic("versionResolver cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ReconcileService{
		fs:          fs,
		deactivator: deactivator,
		resolver:    versionResolver,
		approver:    approver,
		logger:      logger,
	}
}

// Reconcile executes the reconciliation workflow in a fixed order:
// parse both manifests, extract the destructive flow list, deactivate,
// merge descriptor names into the package manifest, resolve deletable
// versions, rewrite the destructive flow list, then commit both files.
//
// The two manifests are treated asymmetrically on purpose: the package
// manifest's FlowDefinition entry is merged with whatever it already
// held, while the destructive Flow entry is replaced outright so it
// holds exactly the versions that exist remotely and never a stale bare
// name.
//
// All reads and computation happen before the first manifest write, so a
// failure never leaves one manifest updated and the other not.
func (s *ReconcileService) Reconcile(ctx context.Context, config flowrec.ReconcileConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	pkg, err := s.loadManifest(config.PackageManifestPath)
	if err != nil {
		return err
	}
	destructive, err := s.loadManifest(config.DestructiveManifestPath)
	if err != nil {
		return err
	}

	flowNames := resolver.StripVersionSuffixes(destructive.FindType(flowrec.FlowType).Members)
	if len(flowNames) == 0 {
		s.logger.Info("No flows named for deletion in %s; nothing to reconcile", config.DestructiveManifestPath)
		return nil
	}
	s.logger.Verbose("Flows named for deletion: %v", flowNames)

	if !config.DryRun {
		approved, err := s.approver.RequestApproval(ctx, flowNames)
		if err != nil {
			return fmt.Errorf("approval failed: %w", err)
		}
		if !approved {
			return fmt.Errorf("manifest rewrite not approved: %w", flowrec.ErrApprovalDenied)
		}

		if err := s.deactivator.Deactivate(ctx, flowNames); err != nil {
			return fmt.Errorf("deactivation failed: %w", err)
		}
	}

	pkg.MergeMembers(flowrec.FlowDefinitionType, flowNames)

	queryCtx := ctx
	if config.QueryTimeout > 0 {
		var cancel context.CancelFunc
		queryCtx, cancel = context.WithTimeout(ctx, config.QueryTimeout)
		defer cancel()
	}
	deletable, err := s.resolver.ResolveDeletableVersions(queryCtx, flowNames)
	if err != nil {
		return err
	}

	destructive.ReplaceMembers(flowrec.FlowType, deletable)

	pkg.EnsureVersion(config.APIVersion)
	destructive.EnsureVersion(config.APIVersion)

	pkgData, err := pkg.Serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", config.PackageManifestPath, err)
	}
	destructiveData, err := destructive.Serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", config.DestructiveManifestPath, err)
	}

	if config.DryRun {
		s.logger.Info("[dry-run] %s would gain %s: %v",
			config.PackageManifestPath, flowrec.FlowDefinitionType, flowNames)
		s.logger.Info("[dry-run] %s %s members would become: %v",
			config.DestructiveManifestPath, flowrec.FlowType, deletable)
		return nil
	}

	if err := filesystem.WriteAtomic(s.fs, config.PackageManifestPath, pkgData, 0644); err != nil {
		return err
	}
	if err := filesystem.WriteAtomic(s.fs, config.DestructiveManifestPath, destructiveData, 0644); err != nil {
		return err
	}

	s.logger.Info("✓ Reconciled %d flow(s): %d deletable version(s) written to %s",
		len(flowNames), len(deletable), config.DestructiveManifestPath)
	return nil
}

func (s *ReconcileService) loadManifest(path string) (*manifest.Manifest, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	m, err := manifest.Parse(data, path)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Verify ReconcileService implements the Reconciler interface at compile time
var _ flowrec.Reconciler = (*ReconcileService)(nil)
