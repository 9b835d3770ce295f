package dircmp

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"hash"
)

// HashType represents the type of hash algorithm
type HashType string

const (
	HashMD5    HashType = "md5"
	HashSHA1   HashType = "sha1"
	HashSHA256 HashType = "sha256"
)

// Valid reports whether the hash type names a supported algorithm
func (h HashType) Valid() bool {
	switch h {
	case HashMD5, HashSHA1, HashSHA256:
		return true
	}

	return false
}

func newHasher(hashType HashType) (hash.Hash, error) {
	switch hashType {
	case HashMD5:
		return md5.New(), nil
	case HashSHA1:
		return sha1.New(), nil
	case HashSHA256:
		return sha256.New(), nil
	default:
		return nil, newUnknownHashTypeError(hashType)
	}
}
