package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrRemoteCall          = errors.New("remote call failed")
	ErrNoEditTarget        = errors.New("no task is loaded into the form")
	ErrNoFieldsToUpdate    = errors.New("no fields to update")
	ErrEmptyID             = errors.New("task id cannot be empty")
	ErrConfigExists        = errors.New("config file already exists")
	ErrInvalidDeleteTarget = errors.New("invalid delete target")
	ErrInvalidStore        = errors.New("invalid store backend")
)

// RemoteError describes a failed call to the remote task service.
// All instances match ErrRemoteCall with errors.Is; the extra fields are
// for diagnostics only.
type RemoteError struct {
	Err        error  // Underlying transport or decode error (nil for bad status)
	Op         string // list, create, update, delete
	Method     string
	URL        string
	Body       string // Truncated response body for non-2xx responses
	StatusCode int    // 0 when no response was received
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		msg := fmt.Sprintf("%s: %s %s: unexpected status %d", e.Op, e.Method, e.URL, e.StatusCode)
		if e.Body != "" {
			msg += ": " + e.Body
		}
		return msg
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

// Unwrap exposes the underlying error.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Is makes every RemoteError match ErrRemoteCall.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteCall
}
