// Package resolver maps bare flow names to the version-qualified
// identifiers a destructive deployment requires. A bare name cannot be
// deleted remotely; only a concrete "name-version" can.
package resolver

import (
	"context"
	"sort"
	"strings"

	"github.com/sfops/flowrec/pkg/flowrec"
)

// Resolver turns flow names into deletable identifiers using a batched
// remote version lookup.
type Resolver struct {
	query  flowrec.VersionQueryService
	logger flowrec.Logger
}

// NewResolver creates a Resolver.
// Panics on nil dependencies.
func NewResolver(query flowrec.VersionQueryService, logger flowrec.Logger) *Resolver {
	if query == nil {
		panic("query cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Resolver{query: query, logger: logger}
}

// ResolveDeletableVersions returns one "name-version" identifier for
// every remote version of every given flow, deduplicated and sorted. All
// versions are surfaced, not just the active one: any version number may
// linger remotely and must be removable.
//
// Input names are stripped of any existing version suffix first, so a
// destructive manifest that was already rewritten does not get
// double-qualified on the next run. Names without remote versions
// contribute nothing, which is not an error. An empty input returns
// immediately without a remote call.
func (r *Resolver) ResolveDeletableVersions(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return []string{}, nil
	}

	bare := StripVersionSuffixes(names)

	records, err := r.query.QueryFlowVersions(ctx, bare)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.DeletableID())
	}
	r.logger.Verbose("Resolved %d flow name(s) to %d deletable version(s)", len(bare), len(ids))

	return dedupeSorted(ids), nil
}

// StripVersionSuffix removes a trailing "-<digits>" qualifier from a flow
// name, returning the bare name. Names whose final hyphenated component
// is not numeric are returned unchanged; hyphens are legal inside flow
// names.
func StripVersionSuffix(name string) string {
	i := strings.LastIndex(name, "-")
	if i <= 0 || i == len(name)-1 {
		return name
	}
	suffix := name[i+1:]
	for _, c := range suffix {
		if c < '0' || c > '9' {
			return name
		}
	}
	return name[:i]
}

// StripVersionSuffixes strips every name and deduplicates the result,
// preserving sorted order.
func StripVersionSuffixes(names []string) []string {
	stripped := make([]string, len(names))
	for i, n := range names {
		stripped[i] = StripVersionSuffix(n)
	}
	return dedupeSorted(stripped)
}

func dedupeSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
