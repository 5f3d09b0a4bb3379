package apperrors

import "fmt"

// ErrNotFound represents an error when a requested resource is not found upstream.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewShowNotFoundError creates a specific error for when a show id is unknown upstream.
func NewShowNotFoundError(showID int) *ErrNotFound {
	return &ErrNotFound{
		Resource: "show",
		ID:       showID,
	}
}

// ErrUpstreamStatus is returned when the upstream API answers with a non-2xx status.
type ErrUpstreamStatus struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *ErrUpstreamStatus) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrUpstreamStatus) Is(target error) bool {
	_, ok := target.(*ErrUpstreamStatus)
	return ok
}

// ErrInvalidPayload is returned when an upstream body cannot be interpreted,
// either because it is not JSON or because it does not have the expected shape.
type ErrInvalidPayload struct {
	Source string
	Reason string
}

// Error implements the error interface.
func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid %s payload: %s", e.Source, e.Reason)
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidPayload) Is(target error) bool {
	_, ok := target.(*ErrInvalidPayload)
	return ok
}

// NewInvalidPayloadError creates a new ErrInvalidPayload.
func NewInvalidPayloadError(source, reason string) *ErrInvalidPayload {
	return &ErrInvalidPayload{Source: source, Reason: reason}
}

// ErrMissingArgument is returned when a GraphQL field is called without a required argument.
type ErrMissingArgument struct {
	Field string
	Name  string
}

// Error implements the error interface.
func (e *ErrMissingArgument) Error() string {
	return fmt.Sprintf("argument %q is required for field %q", e.Name, e.Field)
}

// Is allows for error checking with errors.Is().
func (e *ErrMissingArgument) Is(target error) bool {
	_, ok := target.(*ErrMissingArgument)
	return ok
}
