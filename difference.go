package dircmp

// ChangeType represents the classification of a single path in the diff
type ChangeType string

const (
	ChangeAdded     ChangeType = "added"
	ChangeRemoved   ChangeType = "removed"
	ChangeModified  ChangeType = "modified"
	ChangeUnchanged ChangeType = "unchanged"
)

// DiffEntry represents the classification of one relative path present in
// either snapshot. Exactly one DiffEntry exists per union path.
type DiffEntry struct {
	Path     string
	Type     ChangeType
	Original *Entry // nil for added paths
	Latest   *Entry // nil for removed paths

	// Degraded marks entries whose content could not be verified; the
	// classification falls back to modified and Reason carries the cause.
	Degraded bool
	Reason   error
}

// Result is the ordered outcome of comparing two snapshots. Entries are
// sorted by relative path so output is deterministic regardless of
// filesystem enumeration order.
type Result struct {
	Entries  []DiffEntry
	Warnings []Warning
}

// Changed returns only the entries that represent an actual difference
func (r *Result) Changed() []DiffEntry {
	changed := make([]DiffEntry, 0, len(r.Entries))
	for _, entry := range r.Entries {
		if entry.Type != ChangeUnchanged {
			changed = append(changed, entry)
		}
	}

	return changed
}

// HasChanges reports whether any path was added, removed or modified
func (r *Result) HasChanges() bool {
	for _, entry := range r.Entries {
		if entry.Type != ChangeUnchanged {
			return true
		}
	}

	return false
}
