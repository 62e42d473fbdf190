package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrDirectoryNotFound indicates the scan directory does not exist
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrNotADirectory indicates the scan path exists but is not a directory
	ErrNotADirectory = errors.New("path is not a directory")

	// ErrEmptyExtension indicates an empty file extension was provided
	ErrEmptyExtension = errors.New("file extension cannot be empty")

	// ErrUnknownStrategy indicates an unrecognized grouping strategy
	ErrUnknownStrategy = errors.New("unknown grouping strategy")

	// ErrOutputExists indicates the output file already exists and
	// overwriting was not requested
	ErrOutputExists = errors.New("output file already exists")

	// ErrWriteFailed indicates the manifest could not be written
	ErrWriteFailed = errors.New("write failed")

	// ErrInvalidManifest indicates a manifest file has the wrong structure
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrUnsupportedExt indicates an unsupported manifest file extension
	ErrUnsupportedExt = errors.New("unsupported manifest extension (use .yaml or .yml)")
)

// ScanError represents an error during directory traversal
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error for %s: %v", e.Dir, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewScanError creates a new ScanError
func NewScanError(dir string, err error) *ScanError {
	return &ScanError{Dir: dir, Err: err}
}

// ManifestError represents an error in a specific manifest file
type ManifestError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ManifestError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("manifest %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// NewManifestError creates a new ManifestError wrapping ErrInvalidManifest
func NewManifestError(path, reason string) *ManifestError {
	return &ManifestError{Path: path, Reason: reason, Err: ErrInvalidManifest}
}
