// file: internals/features/scheduling/assignments/model/errors.go
package model

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ConflictError: the child already has a booking on that date.
// ExistingID is uuid.Nil when the store rejected the write without telling us which row won.
type ConflictError struct {
	ChildID    uuid.UUID
	Date       time.Time
	ExistingID uuid.UUID
}

func (e *ConflictError) Error() string {
	if e.ExistingID != uuid.Nil {
		return fmt.Sprintf("child %s already has assignment %s on %s",
			e.ChildID, e.ExistingID, e.Date.Format("2006-01-02"))
	}
	return fmt.Sprintf("child %s already has an assignment on %s", e.ChildID, e.Date.Format("2006-01-02"))
}

// NotFoundError: the targeted assignment does not exist.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("assignment %s not found", e.ID)
}

// ValidationError collects caller contract violations, keyed by json field.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		keys = append(keys, f)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, f := range keys {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], ", "))
	}
	return "invalid assignment: " + strings.Join(parts, "; ")
}
