package manifest

// MergeMembers unions newMembers into the entry for typeName,
// deduplicating by exact string equality and sorting the result. When no
// entry exists, one is appended. Duplicate <types> entries for the same
// name in the parsed input are coalesced into the first one.
//
// The operation is idempotent: merging a subset of the existing members
// leaves the entry unchanged.
func (m *Manifest) MergeMembers(typeName string, newMembers []string) {
	union := make([]string, 0, len(newMembers))

	kept := m.Types[:0]
	var target *TypeEntry
	for i := range m.Types {
		if m.Types[i].Name != typeName {
			kept = append(kept, m.Types[i])
			continue
		}
		union = append(union, m.Types[i].Members...)
		if target == nil {
			kept = append(kept, m.Types[i])
			target = &kept[len(kept)-1]
		}
	}
	m.Types = kept

	union = append(union, newMembers...)

	if target == nil {
		m.Types = append(m.Types, TypeEntry{Name: typeName, Members: dedupeSorted(union)})
		return
	}
	target.Members = dedupeSorted(union)
}

// ReplaceMembers overwrites the entry for typeName with exactly the given
// members, deduplicated and sorted. Used for the destructive manifest,
// whose delete list must hold current version-qualified identifiers and
// nothing else. An empty replacement list removes the entry entirely:
// deployment tooling rejects a <types> element without <members>.
func (m *Manifest) ReplaceMembers(typeName string, members []string) {
	replaced := dedupeSorted(members)

	kept := m.Types[:0]
	var target *TypeEntry
	for i := range m.Types {
		if m.Types[i].Name != typeName {
			kept = append(kept, m.Types[i])
			continue
		}
		if target == nil && len(replaced) > 0 {
			kept = append(kept, m.Types[i])
			target = &kept[len(kept)-1]
		}
	}
	m.Types = kept

	if len(replaced) == 0 {
		return
	}
	if target == nil {
		m.Types = append(m.Types, TypeEntry{Name: typeName, Members: replaced})
		return
	}
	target.Members = replaced
}
