package manifest

import (
	"encoding/xml"
	"sort"
)

// Manifest represents a parsed deployment manifest (package.xml or
// destructiveChanges.xml). Both documents share the same schema: a
// <Package> root with zero or more <types> entries.
//
// XML Structure:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<Package xmlns="http://soap.sforce.com/2006/04/metadata">
//	  <types>
//	    <members>Order_Fulfillment</members>
//	    <members>Case_Escalation</members>
//	    <name>Flow</name>
//	  </types>
//	  <version>61.0</version>
//	</Package>
//
// The serialization format collapses a singleton member list to a single
// <members> element; encoding/xml decodes repeated elements into a slice
// either way, so downstream code only ever sees the canonical list shape.
//
// Only <types> and <version> are interpreted; any other element (such as
// <fullName>) is carried through untouched so a rewrite never loses
// fields the manifest already had.
type Manifest struct {
	XMLName xml.Name     `xml:"Package"`
	Xmlns   string       `xml:"xmlns,attr"`
	Types   []TypeEntry  `xml:"types"`
	Extra   []RawElement `xml:",any"`
	Version string       `xml:"version,omitempty"`
}

// RawElement carries an uninterpreted manifest element verbatim,
// including any nested content.
type RawElement struct {
	XMLName xml.Name
	Content string `xml:",innerxml"`
}

// TypeEntry groups the named members of one metadata type.
// Member order is insignificant but kept sorted after any merge so that
// serialization is deterministic.
type TypeEntry struct {
	Members []string `xml:"members"`
	Name    string   `xml:"name"`
}

// FindType returns the entry for the given type name, or an empty entry
// with that name when the manifest has no matching <types> element.
// The returned entry is a copy; mutating it does not affect the manifest.
func (m *Manifest) FindType(name string) TypeEntry {
	for _, t := range m.Types {
		if t.Name == name {
			members := make([]string, len(t.Members))
			copy(members, t.Members)
			return TypeEntry{Name: name, Members: members}
		}
	}
	return TypeEntry{Name: name, Members: []string{}}
}

// EnsureVersion stamps the API version onto a manifest that lacks one.
// A manifest that already declares a version keeps it.
func (m *Manifest) EnsureVersion(apiVersion string) {
	if m.Version == "" && apiVersion != "" {
		m.Version = apiVersion
	}
}

// HasType reports whether the manifest contains an entry for the type.
func (m *Manifest) HasType(name string) bool {
	for _, t := range m.Types {
		if t.Name == name {
			return true
		}
	}
	return false
}

// dedupeSorted returns the given members deduplicated by exact string
// equality and sorted, leaving the input untouched.
func dedupeSorted(members []string) []string {
	seen := make(map[string]struct{}, len(members))
	out := make([]string, 0, len(members))
	for _, m := range members {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
