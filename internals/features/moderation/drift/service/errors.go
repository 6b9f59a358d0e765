// file: internals/features/moderation/drift/service/errors.go
package service

import (
	"errors"
	"fmt"
)

var ErrUnknownSubject = errors.New("unknown drift subject")

// TransientObservationError wraps any failure of a scheduled observation.
// The tracker logs it and leaves the subject's state as it was.
type TransientObservationError struct {
	Subject string
	Err     error
}

func (e *TransientObservationError) Error() string {
	return fmt.Sprintf("observe %q: %v", e.Subject, e.Err)
}

func (e *TransientObservationError) Unwrap() error { return e.Err }
