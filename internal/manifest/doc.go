// Package manifest models deployment manifests (package.xml and
// destructiveChanges.xml) and implements the type-merge operations used
// during reconciliation.
//
// A manifest is a <Package> root holding typed member lists. The package
// enforces one canonical shape at the parse boundary: members are always
// a list, and at most one entry per type name survives a merge. Merge
// results are sorted so repeated runs serialize identically.
package manifest
