package dircmp

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Compare classifies every relative path present in either snapshot as
// added, removed, modified or unchanged. Each union path appears in the
// result exactly once; a path whose kind changed between snapshots is a
// single modified entry, never a removed/added pair. The result is sorted
// by relative path.
//
// With content checking enabled (the default), files present on both sides
// are compared by size first and by content digest only when sizes match.
// A file whose digest cannot be computed is conservatively classified as
// modified and marked degraded.
func Compare(ctx context.Context, original, latest *Snapshot, options ...CompareOption) (*Result, error) {
	opts := defaultCompareOptions()
	for _, opt := range options {
		opt(opts)
	}

	if !opts.hashType.Valid() {
		return nil, newUnknownHashTypeError(opts.hashType)
	}

	entries := make([]DiffEntry, 0, len(original.Entries)+len(latest.Entries))

	for relPath, entry := range original.Entries {
		if _, exists := latest.Entries[relPath]; !exists {
			entries = append(entries, DiffEntry{
				Path:     relPath,
				Type:     ChangeRemoved,
				Original: entry,
			})
		}
	}

	for relPath, entry := range latest.Entries {
		if _, exists := original.Entries[relPath]; !exists {
			entries = append(entries, DiffEntry{
				Path:   relPath,
				Type:   ChangeAdded,
				Latest: entry,
			})
		}
	}

	// Paths present in both snapshots. File pairs that survive the size
	// precheck are digested concurrently; every other case is decided
	// without touching file content.
	var pending []int

	for relPath, originalEntry := range original.Entries {
		latestEntry, exists := latest.Entries[relPath]
		if !exists {
			continue
		}

		entry := DiffEntry{
			Path:     relPath,
			Original: originalEntry,
			Latest:   latestEntry,
		}

		switch {
		case originalEntry.Kind != latestEntry.Kind:
			// Kind change always counts as a change
			entry.Type = ChangeModified
		case !opts.contentCheck:
			entry.Type = ChangeUnchanged
		case originalEntry.Kind == KindDirectory:
			entry.Type = ChangeUnchanged
		case originalEntry.Kind == KindSymlink:
			if originalEntry.LinkTarget == latestEntry.LinkTarget {
				entry.Type = ChangeUnchanged
			} else {
				entry.Type = ChangeModified
			}
		case originalEntry.Size != latestEntry.Size:
			// Differing sizes prove differing content; skip hashing
			entry.Type = ChangeModified
		default:
			entries = append(entries, entry)
			pending = append(pending, len(entries)-1)
			continue
		}

		entries = append(entries, entry)
	}

	if err := digestPending(ctx, entries, pending, opts); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return pathLess(entries[i].Path, entries[j].Path)
	})

	warnings := make([]Warning, 0, len(original.Warnings)+len(latest.Warnings))
	warnings = append(warnings, original.Warnings...)
	warnings = append(warnings, latest.Warnings...)

	return &Result{
		Entries:  entries,
		Warnings: warnings,
	}, nil
}

// pathLess orders relative paths component by component, so entries inside
// a directory always sort directly after it. Plain byte comparison would
// misplace names containing bytes below '/', e.g. "a-b" before "a/x".
func pathLess(a, b string) bool {
	aParts := strings.Split(a, "/")
	bParts := strings.Split(b, "/")

	for i := 0; i < len(aParts) && i < len(bParts); i++ {
		if aParts[i] != bParts[i] {
			return aParts[i] < bParts[i]
		}
	}

	return len(aParts) < len(bParts)
}

// digestPending resolves the entries that need a content comparison.
// Workers write to disjoint indices of entries, so no lock is needed.
func digestPending(ctx context.Context, entries []DiffEntry, pending []int, opts *compareOptions) error {
	group := &errgroup.Group{}
	group.SetLimit(opts.workers)

	for _, index := range pending {
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ErrCompareCanceled.SetError(ctx.Err())
			default:
			}

			entry := &entries[index]

			originalDigest, err := entry.Original.Digest(opts.hashType)
			if err != nil {
				entry.Type = ChangeModified
				entry.Degraded = true
				entry.Reason = err
				return nil
			}

			latestDigest, err := entry.Latest.Digest(opts.hashType)
			if err != nil {
				entry.Type = ChangeModified
				entry.Degraded = true
				entry.Reason = err
				return nil
			}

			if originalDigest == latestDigest {
				entry.Type = ChangeUnchanged
			} else {
				entry.Type = ChangeModified
			}

			return nil
		})
	}

	return group.Wait()
}
