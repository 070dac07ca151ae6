package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrResourceConflict  = errors.New("resource conflict")
	ErrResourceLockBusy  = errors.New("resource lock busy")
)

// sanitize flattens line breaks so error messages stay single-line in logs.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value lies outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s (cause: %s)",
			ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max), e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ResourceConflictError indicates that a driver or transit mixer is already
// allocated to another order whose dispatch window overlaps the requested one.
// ConflictingOrderNumber identifies the order holding the resource.
type ResourceConflictError struct {
	Resource               string
	ConflictingOrderNumber string
	Cause                  error
}

func NewResourceConflictError(resource, conflictingOrderNumber string) *ResourceConflictError {
	return &ResourceConflictError{Resource: resource, ConflictingOrderNumber: conflictingOrderNumber}
}

func NewResourceConflictErrorWithCause(resource, conflictingOrderNumber string, cause error) *ResourceConflictError {
	return &ResourceConflictError{Resource: resource, ConflictingOrderNumber: conflictingOrderNumber, Cause: cause}
}

func (e *ResourceConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is already allocated to order %s (cause: %s)",
			ErrResourceConflict, e.Resource, e.ConflictingOrderNumber, e.Cause)
	}
	return fmt.Sprintf("%s: %s is already allocated to order %s",
		ErrResourceConflict, e.Resource, e.ConflictingOrderNumber)
}

func (e *ResourceConflictError) Unwrap() error {
	return ErrResourceConflict
}

// ResourceLockBusyError indicates that the lock for a resource key could not be
// acquired within the bounded wait. The operation may be retried.
type ResourceLockBusyError struct {
	Key   string
	Cause error
}

func NewResourceLockBusyError(key string) *ResourceLockBusyError {
	return &ResourceLockBusyError{Key: key}
}

func NewResourceLockBusyErrorWithCause(key string, cause error) *ResourceLockBusyError {
	return &ResourceLockBusyError{Key: key, Cause: cause}
}

func (e *ResourceLockBusyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrResourceLockBusy, e.Key, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrResourceLockBusy, e.Key)
}

func (e *ResourceLockBusyError) Unwrap() error {
	return ErrResourceLockBusy
}
