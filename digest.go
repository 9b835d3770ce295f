package dircmp

import (
	"encoding/hex"
	"io"
	"os"
)

// Digest returns the content fingerprint of the entry, computing it on
// first use and caching it for the lifetime of the snapshot. Files are
// streamed through the hasher so large files are never held in memory.
// Symlinks digest to their link target string; directories have no
// content and digest to the empty string.
func (e *Entry) Digest(hashType HashType) (string, error) {
	e.digestOnce.Do(func() {
		e.digestValue, e.digestErr = e.computeDigest(hashType)
	})

	return e.digestValue, e.digestErr
}

func (e *Entry) computeDigest(hashType HashType) (string, error) {
	switch e.Kind {
	case KindDirectory:
		return "", nil
	case KindSymlink:
		return e.LinkTarget, nil
	}

	hasher, err := newHasher(hashType)
	if err != nil {
		return "", err
	}

	// The file may have disappeared or become unreadable since the scan;
	// that race is reported per-file, never as a fatal comparison error.
	file, err := os.Open(e.Path)
	if err != nil {
		return "", newDigestFileError(e.Path, err)
	}
	defer file.Close()

	if _, err := io.Copy(hasher, file); err != nil {
		return "", newDigestFileError(e.Path, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
