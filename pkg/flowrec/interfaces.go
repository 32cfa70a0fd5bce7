package flowrec

import "context"

// Reconciler is the main interface for executing a manifest reconciliation.
// Implementations handle the full workflow: parsing both manifests,
// deactivating flows named for deletion, merging descriptor names into the
// package manifest, resolving deletable versions and rewriting the
// destructive manifest.
type Reconciler interface {
	// Reconcile executes a reconciliation using the provided configuration.
	// It returns an error if the run fails at any stage. A destructive
	// manifest that names no flows is a successful no-op, not an error.
	Reconcile(ctx context.Context, config ReconcileConfig) error
}

// FlowDeactivator ensures every named flow has a local deactivation
// descriptor carrying the inactive sentinel.
type FlowDeactivator interface {
	// Deactivate writes one descriptor per flow name. Idempotent.
	Deactivate(ctx context.Context, names []string) error
}

// VersionResolver maps bare flow names to version-qualified deletable
// identifiers ("name-version") using a single batched remote lookup.
type VersionResolver interface {
	// ResolveDeletableVersions returns one identifier per remote version
	// of each named flow, sorted. Empty input returns an empty result
	// without a remote call.
	ResolveDeletableVersions(ctx context.Context, names []string) ([]string, error)
}

// VersionQueryService answers batched remote lookups for flow versions.
// One flow name may map to zero, one or many records; implementations must
// issue a single request for the whole batch.
type VersionQueryService interface {
	// QueryFlowVersions returns every remote version record matching any
	// of the given bare flow names. Names without remote versions simply
	// produce no records.
	QueryFlowVersions(ctx context.Context, names []string) ([]FlowVersionRecord, error)
}

// ArtifactMaterializer retrieves descriptor files from the remote org so
// they can be edited locally. Callers must tolerate its failure by
// constructing a minimal descriptor themselves.
type ArtifactMaterializer interface {
	// Materialize attempts to retrieve the flow definition descriptors for
	// the given names into the local project.
	Materialize(ctx context.Context, names []string) error
}
