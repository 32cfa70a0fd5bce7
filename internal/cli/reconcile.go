package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sfops/flowrec/internal/config"
	"github.com/sfops/flowrec/internal/descriptor"
	"github.com/sfops/flowrec/internal/files/filesystem"
	"github.com/sfops/flowrec/internal/logging"
	"github.com/sfops/flowrec/internal/resolver"
	"github.com/sfops/flowrec/internal/salesforce"
	"github.com/sfops/flowrec/internal/services"
	"github.com/sfops/flowrec/internal/ui"
	"github.com/sfops/flowrec/pkg/flowrec"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile <package_manifest> <destructive_manifest>",
	Short: "Reconcile manifests for flow deletions",
	Long: `Reconcile prepares a release that deletes flows.

For every flow named in the destructive manifest's Flow list, reconcile:
1. Writes (or updates) a deactivation descriptor with activeVersionNumber 0
2. Merges the flow names into the package manifest's FlowDefinition list
   so the descriptors deploy with the release
3. Queries the org for every existing version of those flows
4. Rewrites the destructive Flow list with version-qualified identifiers
   (e.g. My_Flow-3), which are the only form the org will delete

Both manifests are rewritten atomically, and only after every read and
the org query have succeeded. A destructive manifest without a Flow list
is a successful no-op.

Configuration precedence: flags > environment > flowrec.yaml > defaults.
The target org can also come from $FLOWREC_TARGET_ORG or $SF_TARGET_ORG
(a .env file in the working directory is honored).

Examples:
  # Reconcile with the default org
  flowrec reconcile manifest/package.xml manifest/destructiveChanges.xml

  # Non-interactive CI run against a named org
  flowrec reconcile manifest/package.xml manifest/destructiveChanges.xml \
    --target-org ci-org --force

  # Show the plan without touching any file
  flowrec reconcile manifest/package.xml manifest/destructiveChanges.xml --dry-run`,
	Args: RequireManifestPaths,
	RunE: runReconcile,
}

type reconcileFlagValues struct {
	targetOrg     string
	descriptorDir string
	apiVersion    string
	timeout       time.Duration
	materialize   bool
	dryRun        bool
	force         bool
}

var reconcileFlags reconcileFlagValues

func init() {
	rootCmd.AddCommand(reconcileCmd)

	reconcileCmd.Flags().StringVarP(&reconcileFlags.targetOrg, "target-org", "o", "",
		"Org alias or username for the sf CLI (default: the CLI's default org)")
	reconcileCmd.Flags().StringVar(&reconcileFlags.descriptorDir, "descriptor-dir", "",
		"Directory holding flow definition descriptors\n"+
			"(default: "+flowrec.DefaultDescriptorDir+")")
	reconcileCmd.Flags().StringVar(&reconcileFlags.apiVersion, "api-version", "",
		"Metadata API version for newly created documents (default: "+flowrec.DefaultAPIVersion+")")
	reconcileCmd.Flags().DurationVar(&reconcileFlags.timeout, "timeout", flowrec.DefaultQueryTimeout,
		"Timeout for the remote version query")
	reconcileCmd.Flags().BoolVar(&reconcileFlags.materialize, "materialize", false,
		"Retrieve existing descriptors from the org before editing them")
	reconcileCmd.Flags().BoolVar(&reconcileFlags.dryRun, "dry-run", false,
		"Compute and print the reconciliation without writing any file")
	reconcileCmd.Flags().BoolVar(&reconcileFlags.force, "force", false,
		"Skip interactive approval of the manifest rewrite")
}

// buildReconcileConfig resolves flags, environment and flowrec.yaml into
// a ReconcileConfig. Precedence: flag > environment > file > default.
func buildReconcileConfig(cmd *cobra.Command, args []string, verbose bool) (flowrec.ReconcileConfig, error) {
	// A .env in the working directory may carry the org alias; absence
	// is fine.
	_ = godotenv.Load()

	projectCfg, err := config.Load(".")
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return flowrec.ReconcileConfig{}, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
		projectCfg = nil
	}

	targetOrg := reconcileFlags.targetOrg
	if targetOrg == "" {
		targetOrg = os.Getenv("FLOWREC_TARGET_ORG")
	}
	if targetOrg == "" {
		targetOrg = os.Getenv("SF_TARGET_ORG")
	}
	if targetOrg == "" && projectCfg != nil {
		targetOrg = projectCfg.TargetOrg
	}

	descriptorDir := reconcileFlags.descriptorDir
	if descriptorDir == "" && projectCfg != nil {
		descriptorDir = projectCfg.DescriptorDir
	}
	if descriptorDir == "" {
		descriptorDir = flowrec.DefaultDescriptorDir
	}

	apiVersion := reconcileFlags.apiVersion
	if apiVersion == "" && projectCfg != nil {
		apiVersion = projectCfg.APIVersion
	}
	if apiVersion == "" {
		apiVersion = flowrec.DefaultAPIVersion
	}

	timeout := reconcileFlags.timeout
	if projectCfg != nil && projectCfg.QueryTimeout != "" && !cmd.Flags().Changed("timeout") {
		parsed, parseErr := time.ParseDuration(projectCfg.QueryTimeout)
		if parseErr != nil {
			return flowrec.ReconcileConfig{}, fmt.Errorf("invalid query_timeout in %s: %w: %v",
				config.ConfigFileName, flowrec.ErrInvalidConfig, parseErr)
		}
		timeout = parsed
	}

	materialize := reconcileFlags.materialize
	if !materialize && projectCfg != nil {
		materialize = projectCfg.Materialize
	}

	return flowrec.ReconcileConfig{
		PackageManifestPath:     args[0],
		DestructiveManifestPath: args[1],
		DescriptorDir:           descriptorDir,
		TargetOrg:               targetOrg,
		APIVersion:              apiVersion,
		QueryTimeout:            timeout,
		Materialize:             materialize,
		DryRun:                  reconcileFlags.dryRun,
		Force:                   reconcileFlags.force,
		Verbose:                 verbose,
	}, nil
}

func runReconcile(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := buildReconcileConfig(cmd, args, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)

	// Select approver implementation based on --force flag. A
	// non-interactive stdin cannot answer a prompt, so require --force
	// there instead of hanging a pipeline.
	var approver flowrec.Approver
	switch {
	case cfg.Force || cfg.DryRun:
		approver = ui.NewForcedApprover(logger)
	case !term.IsTerminal(int(os.Stdin.Fd())):
		return fmt.Errorf("stdin is not a terminal; rerun with --force: %w", flowrec.ErrInvalidConfig)
	default:
		approver = ui.NewInteractiveApprover()
	}

	fsProvider := filesystem.NewOSFileSystem()
	runner := salesforce.NewExecRunner()

	queryService := salesforce.NewQueryService(runner, logger)
	if cfg.TargetOrg != "" {
		queryService = queryService.WithTargetOrg(cfg.TargetOrg)
	}

	deactivator := descriptor.NewDeactivator(fsProvider, logger, cfg.DescriptorDir)
	if cfg.Materialize {
		retrieve := salesforce.NewRetrieveService(runner, logger)
		if cfg.TargetOrg != "" {
			retrieve = retrieve.WithTargetOrg(cfg.TargetOrg)
		}
		deactivator = deactivator.WithMaterializer(retrieve)
	}

	service := services.NewReconcileService(
		fsProvider,
		deactivator,
		resolver.NewResolver(queryService, logger),
		approver,
		logger,
	)

	// Handle interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling reconciliation...")
		cancel()
	}()

	if err := service.Reconcile(ctx, cfg); err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	return nil
}
