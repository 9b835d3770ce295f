package dircmp

import "sync"

// EntryKind represents the kind of a filesystem entry
type EntryKind string

const (
	KindFile      EntryKind = "file"
	KindDirectory EntryKind = "directory"
	KindSymlink   EntryKind = "symlink"
)

// Entry represents a single file, directory or symlink inside a snapshot
type Entry struct {
	Path       string // absolute filesystem path
	Kind       EntryKind
	Size       int64  // file size in bytes, zero for directories and symlinks
	LinkTarget string // symlink target, empty for other kinds

	digestOnce  sync.Once
	digestValue string
	digestErr   error
}

// Warning records a subtree that could not be read during a scan.
// Warnings are informational; the rest of the tree is still scanned.
type Warning struct {
	Path  string
	Error error
}

// Snapshot is an immutable view of a directory tree, keyed by relative
// path with forward slashes. The root itself is not an entry.
type Snapshot struct {
	Root     string
	Entries  map[string]*Entry
	Warnings []Warning
}

// Len returns the number of entries in the snapshot
func (s *Snapshot) Len() int {
	return len(s.Entries)
}

// Partial reports whether any subtree was skipped during scanning
func (s *Snapshot) Partial() bool {
	return len(s.Warnings) > 0
}
