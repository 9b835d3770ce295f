package dircmp

// DefaultWorkers is the worker pool size used when none is configured
const DefaultWorkers = 8

// ScanOption represents optional parameters for snapshot scanning
type ScanOption func(*scanOptions)

type scanOptions struct {
	workers int
}

// defaultScanOptions returns default options for scanning
func defaultScanOptions() *scanOptions {
	return &scanOptions{
		workers: DefaultWorkers,
	}
}

// WithScanWorkers sets the number of concurrent directory readers
func WithScanWorkers(workers int) ScanOption {
	return func(opts *scanOptions) {
		if workers > 0 {
			opts.workers = workers
		}
	}
}

// CompareOption represents optional parameters for snapshot comparison
type CompareOption func(*compareOptions)

type compareOptions struct {
	contentCheck bool
	hashType     HashType
	workers      int
}

// defaultCompareOptions returns default options for comparison
func defaultCompareOptions() *compareOptions {
	return &compareOptions{
		contentCheck: true,
		hashType:     HashSHA256,
		workers:      DefaultWorkers,
	}
}

// WithoutContentCheck disables content comparison; paths present in both
// snapshots with the same kind are reported unchanged without reading
// file content. Content drift is silently missed in exchange for speed.
func WithoutContentCheck() CompareOption {
	return func(opts *compareOptions) {
		opts.contentCheck = false
	}
}

// WithHashType sets the hash algorithm used for content comparison
func WithHashType(hashType HashType) CompareOption {
	return func(opts *compareOptions) {
		opts.hashType = hashType
	}
}

// WithCompareWorkers sets the number of concurrent digest computations
func WithCompareWorkers(workers int) CompareOption {
	return func(opts *compareOptions) {
		if workers > 0 {
			opts.workers = workers
		}
	}
}
