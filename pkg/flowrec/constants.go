package flowrec

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Reconciliation completed (including the clean no-op path)
	ExitGeneralError    = 1  // Unknown or unclassified error (includes file I/O failures)
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitManifestError   = 11 // Manifest lacks the expected root or shape
	ExitResolutionError = 12 // Remote version query failed or returned nothing usable
	ExitApprovalDenied  = 13 // User denied the manifest rewrite
)

const (
	// MetadataNamespace is the XML namespace shared by package manifests,
	// destructive manifests and flow definition descriptors.
	MetadataNamespace = "http://soap.sforce.com/2006/04/metadata"

	// FlowType is the manifest type holding flow version members.
	FlowType = "Flow"

	// FlowDefinitionType is the manifest type holding flow definition
	// descriptors, deployed to flip the active version.
	FlowDefinitionType = "FlowDefinition"

	// InactiveVersionNumber is the activeVersionNumber sentinel understood
	// by the deployment system as "no active version".
	InactiveVersionNumber = 0

	// DescriptorFileSuffix is appended to a flow name to form its
	// deactivation descriptor file name.
	DescriptorFileSuffix = ".flowDefinition-meta.xml"

	// DefaultDescriptorDir is the conventional source-format location of
	// flow definition descriptors, relative to the project root.
	DefaultDescriptorDir = "force-app/main/default/flowDefinitions"

	// DefaultAPIVersion is the metadata API version written into newly
	// created manifest documents when none is configured.
	DefaultAPIVersion = "61.0"

	// DefaultQueryTimeout bounds a single remote version query, which is
	// the dominant latency of a run.
	DefaultQueryTimeout = 2 * time.Minute

	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 500 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 30 * time.Second

	// DefaultRetryMaxAttempts is the default maximum number of retry attempts
	// for the remote version query.
	DefaultRetryMaxAttempts = 2
)
