package dircmp

import "github.com/boostgo/errorx"

var (
	ErrRootNotExist     = errorx.New("dircmp.root.not_exist")
	ErrRootNotDirectory = errorx.New("dircmp.root.not_directory")
	ErrStatRoot         = errorx.New("dircmp.root.stat")
	ErrReadRoot         = errorx.New("dircmp.root.read")
	ErrReadSubtree      = errorx.New("dircmp.scan.read_subtree")
	ErrScanCanceled     = errorx.New("dircmp.scan.canceled")
	ErrDigestFile       = errorx.New("dircmp.digest.read")
	ErrUnknownHashType  = errorx.New("dircmp.digest.unknown_hash_type")
	ErrCompareCanceled  = errorx.New("dircmp.compare.canceled")
)

type pathErrorContext struct {
	Path  string `json:"path"`
	Error error  `json:"error"`
}

func newRootNotExistError(path string) error {
	return ErrRootNotExist.
		SetData(pathErrorContext{
			Path: path,
		})
}

func newRootNotDirectoryError(path string) error {
	return ErrRootNotDirectory.
		SetData(pathErrorContext{
			Path: path,
		})
}

func newStatRootError(path string, err error) error {
	return ErrStatRoot.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newReadRootError(path string, err error) error {
	return ErrReadRoot.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newDigestFileError(path string, err error) error {
	return ErrDigestFile.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

type hashTypeErrorContext struct {
	HashType string `json:"hash_type"`
}

func newUnknownHashTypeError(hashType HashType) error {
	return ErrUnknownHashType.
		SetData(hashTypeErrorContext{
			HashType: string(hashType),
		})
}
