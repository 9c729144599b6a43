package cleaner

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// ErrorReason categorizes why a deletion failed.
type ErrorReason int

const (
	ErrorPermissionDenied ErrorReason = iota
	ErrorFileInUse
	ErrorFileNotFound
	ErrorUnknown
)

// String returns a human-readable error reason.
func (e ErrorReason) String() string {
	switch e {
	case ErrorPermissionDenied:
		return "Permission denied"
	case ErrorFileInUse:
		return "File is in use"
	case ErrorFileNotFound:
		return "File not found"
	case ErrorUnknown:
		return "Unknown error"
	default:
		return "Unspecified error"
	}
}

// DeletionError represents a categorized deletion failure.
type DeletionError struct {
	Path     string
	Reason   ErrorReason
	Original error
}

// Error implements the error interface.
func (e *DeletionError) Error() string {
	return fmt.Sprintf("%s: %s (%v)", e.Path, e.Reason, e.Original)
}

// Unwrap exposes the underlying OS error.
func (e *DeletionError) Unwrap() error {
	return e.Original
}

// UserMessage returns a user-friendly failure line.
func (e *DeletionError) UserMessage() string {
	switch e.Reason {
	case ErrorPermissionDenied:
		return fmt.Sprintf("✗ Permission denied: %s", e.Path)
	case ErrorFileInUse:
		return fmt.Sprintf("✗ File is in use: %s", e.Path)
	case ErrorFileNotFound:
		return fmt.Sprintf("✗ Already removed: %s", e.Path)
	default:
		return fmt.Sprintf("✗ Failed to delete %s: %v", e.Path, e.Original)
	}
}

// CategorizeError analyzes an error and returns a categorized DeletionError.
func CategorizeError(path string, err error) *DeletionError {
	if err == nil {
		return nil
	}

	delErr := &DeletionError{
		Path:     path,
		Original: err,
		Reason:   ErrorUnknown,
	}

	if os.IsNotExist(err) {
		delErr.Reason = ErrorFileNotFound
		return delErr
	}
	if os.IsPermission(err) {
		delErr.Reason = ErrorPermissionDenied
		return delErr
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EACCES, syscall.EPERM:
			delErr.Reason = ErrorPermissionDenied
		case syscall.EBUSY, syscall.ETXTBSY:
			delErr.Reason = ErrorFileInUse
		case syscall.ENOENT:
			delErr.Reason = ErrorFileNotFound
		}
	}

	return delErr
}
