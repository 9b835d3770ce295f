package dircmp

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Scan builds an immutable snapshot of the directory tree rooted at root.
// Symbolic links are recorded as entries but never followed, so traversal
// terminates even on cyclic links. Unreadable subtrees are recorded as
// warnings on the snapshot instead of aborting the scan; only a bad root
// is fatal.
func Scan(ctx context.Context, root string, options ...ScanOption) (*Snapshot, error) {
	opts := defaultScanOptions()
	for _, opt := range options {
		opt(opts)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, newStatRootError(root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newRootNotExistError(absRoot)
		}
		return nil, newStatRootError(absRoot, err)
	}

	if !info.IsDir() {
		return nil, newRootNotDirectoryError(absRoot)
	}

	scanner := &treeScanner{
		ctx:     ctx,
		root:    absRoot,
		entries: make(map[string]*Entry),
	}
	scanner.group = &errgroup.Group{}
	scanner.group.SetLimit(opts.workers)

	scanner.descend(absRoot, "")
	if err := scanner.group.Wait(); err != nil {
		return nil, err
	}

	// Deterministic warning order; enumeration order is not guaranteed
	sort.Slice(scanner.warnings, func(i, j int) bool {
		return scanner.warnings[i].Path < scanner.warnings[j].Path
	})

	return &Snapshot{
		Root:     absRoot,
		Entries:  scanner.entries,
		Warnings: scanner.warnings,
	}, nil
}

// ScanPair scans two roots concurrently. The walks share no mutable state,
// and both snapshots are complete before ScanPair returns.
func ScanPair(ctx context.Context, originalRoot, latestRoot string, options ...ScanOption) (*Snapshot, *Snapshot, error) {
	var original, latest *Snapshot

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		original, err = Scan(groupCtx, originalRoot, options...)
		return err
	})
	group.Go(func() (err error) {
		latest, err = Scan(groupCtx, latestRoot, options...)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	return original, latest, nil
}

// treeScanner accumulates entries during a single walk. The snapshot map is
// guarded by mu only while workers run; it is frozen once Scan returns.
type treeScanner struct {
	ctx   context.Context
	root  string
	group *errgroup.Group

	mu       sync.Mutex
	entries  map[string]*Entry
	warnings []Warning
}

// descend reads one directory and schedules its subdirectories. When the
// worker pool is saturated it recurses on the current goroutine instead of
// blocking, so saturated workers can never deadlock each other.
func (s *treeScanner) descend(absDir, relDir string) {
	if !s.group.TryGo(func() error { return s.readDir(absDir, relDir) }) {
		_ = s.readDir(absDir, relDir)
	}
}

func (s *treeScanner) readDir(absDir, relDir string) error {
	select {
	case <-s.ctx.Done():
		return ErrScanCanceled.SetError(s.ctx.Err())
	default:
	}

	dirEntries, err := os.ReadDir(absDir)
	if err != nil {
		// Only errors on the root itself are fatal; a failed subtree
		// is recorded and scanning continues into its siblings
		if relDir == "" {
			return newReadRootError(absDir, err)
		}
		s.warn(relDir, err)
		return nil
	}

	for _, dirEntry := range dirEntries {
		absPath := filepath.Join(absDir, dirEntry.Name())
		relPath := path.Join(relDir, dirEntry.Name())

		// Info does not follow symlinks, matching Lstat semantics
		info, err := dirEntry.Info()
		if err != nil {
			s.warn(relPath, err)
			continue
		}

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			// A failed readlink still records the entry so the path
			// stays comparable; only the target is unknown
			target, err := os.Readlink(absPath)
			if err != nil {
				s.warn(relPath, err)
			}
			s.record(relPath, &Entry{
				Path:       absPath,
				Kind:       KindSymlink,
				LinkTarget: target,
			})
		case info.IsDir():
			s.record(relPath, &Entry{
				Path: absPath,
				Kind: KindDirectory,
			})
			s.descend(absPath, relPath)
		default:
			s.record(relPath, &Entry{
				Path: absPath,
				Kind: KindFile,
				Size: info.Size(),
			})
		}
	}

	return nil
}

func (s *treeScanner) record(relPath string, entry *Entry) {
	s.mu.Lock()
	s.entries[relPath] = entry
	s.mu.Unlock()
}

func (s *treeScanner) warn(relPath string, err error) {
	wrapped := ErrReadSubtree.
		SetError(err).
		SetData(pathErrorContext{
			Path:  relPath,
			Error: err,
		})

	s.mu.Lock()
	s.warnings = append(s.warnings, Warning{Path: relPath, Error: wrapped})
	s.mu.Unlock()
}
