package dircmp

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
)

func TestDigest(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "dircmp_digest_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("FileDigest", func(t *testing.T) {
		path := filepath.Join(tmpDir, "file.txt")
		content := []byte("some file content")
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		entry := &Entry{Path: path, Kind: KindFile, Size: int64(len(content))}

		digest, err := entry.Digest(HashSHA256)
		if err != nil {
			t.Fatalf("Failed to digest: %v", err)
		}

		sum := sha256.Sum256(content)
		if want := hex.EncodeToString(sum[:]); digest != want {
			t.Errorf("Digest mismatch: got %s, want %s", digest, want)
		}
	})

	t.Run("ComputedOnce", func(t *testing.T) {
		path := filepath.Join(tmpDir, "cached.txt")
		if err := os.WriteFile(path, []byte("before"), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		entry := &Entry{Path: path, Kind: KindFile}

		first, err := entry.Digest(HashSHA256)
		if err != nil {
			t.Fatalf("Failed to digest: %v", err)
		}

		// Rewriting the file must not change the cached value
		if err := os.WriteFile(path, []byte("after"), 0644); err != nil {
			t.Fatalf("Failed to rewrite file: %v", err)
		}

		second, err := entry.Digest(HashSHA256)
		if err != nil {
			t.Fatalf("Failed to digest again: %v", err)
		}

		if first != second {
			t.Errorf("Digest should be cached: got %s, then %s", first, second)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		entry := &Entry{Path: filepath.Join(tmpDir, "gone.txt"), Kind: KindFile}

		if _, err := entry.Digest(HashSHA256); err == nil {
			t.Error("Digesting a missing file should fail")
		}
	})

	t.Run("SymlinkDigestsTarget", func(t *testing.T) {
		entry := &Entry{Kind: KindSymlink, LinkTarget: "../target"}

		digest, err := entry.Digest(HashSHA256)
		if err != nil {
			t.Fatalf("Failed to digest symlink: %v", err)
		}
		if digest != "../target" {
			t.Errorf("Symlink digest mismatch: got %s, want ../target", digest)
		}
	})

	t.Run("UnknownHashType", func(t *testing.T) {
		path := filepath.Join(tmpDir, "file.txt")
		entry := &Entry{Path: path, Kind: KindFile}

		if _, err := entry.Digest(HashType("crc32")); err == nil {
			t.Error("Unknown hash type should fail")
		}
	})

	t.Run("HashTypes", func(t *testing.T) {
		path := filepath.Join(tmpDir, "algos.txt")
		if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		wantLengths := map[HashType]int{
			HashMD5:    32,
			HashSHA1:   40,
			HashSHA256: 64,
		}
		for hashType, wantLength := range wantLengths {
			entry := &Entry{Path: path, Kind: KindFile}
			digest, err := entry.Digest(hashType)
			if err != nil {
				t.Fatalf("Failed to digest with %s: %v", hashType, err)
			}
			if len(digest) != wantLength {
				t.Errorf("Digest length mismatch for %s: got %d, want %d", hashType, len(digest), wantLength)
			}
		}
	})
}
