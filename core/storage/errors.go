package storage

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/minio/minio-go/v7"
)

// Kind classifies a storage failure.
type Kind int

const (
	KindWrite Kind = iota + 1
	KindRead
	KindNotFound
	KindDelete
)

var (
	// ErrWrite matches failures of Save and Update.
	ErrWrite = errors.New("failed to save object to storage")
	// ErrRead matches Load failures other than a missing object.
	ErrRead = errors.New("failed to load object from storage")
	// ErrNotFound matches Load of a key the store does not have.
	ErrNotFound = errors.New("object not found in storage")
	// ErrDelete matches Delete failures.
	ErrDelete = errors.New("failed to delete object from storage")
	// ErrDisabled is returned by New when storage.enabled is false.
	ErrDisabled = errors.New("storage is disabled")
)

func (k Kind) String() string {
	switch k {
	case KindWrite:
		return "write failure"
	case KindRead:
		return "read failure"
	case KindNotFound:
		return "not found"
	case KindDelete:
		return "delete failure"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindWrite:
		return ErrWrite
	case KindRead:
		return ErrRead
	case KindNotFound:
		return ErrNotFound
	case KindDelete:
		return ErrDelete
	default:
		return nil
	}
}

// Error is the single failure type returned by Service.
type Error struct {
	Kind   Kind
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *Error) Error() string {
	what := "storage error"
	if s := e.Kind.sentinel(); s != nil {
		what = s.Error()
	}
	msg := fmt.Sprintf("%s: bucket=%s key=%s", what, e.Bucket, e.Key)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind, so errors.Is(err, ErrNotFound) works.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// IsNotFound reports whether err is a not found storage error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// KindOf returns the kind of a storage error, or 0 if err is not one.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

// isNoSuchKey checks the S3 error response for a missing object.
func isNoSuchKey(err error) bool {
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return false
	}
	if resp.Code == "NoSuchKey" {
		return true
	}
	return resp.StatusCode == http.StatusNotFound && resp.Code != "NoSuchBucket"
}
