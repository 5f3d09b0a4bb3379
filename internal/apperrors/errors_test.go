// Package apperrors tests verify the custom error types, their Error()
// messages and Is() matching semantics, including through fmt.Errorf wrapping.
package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

// ---------------------------------------------------------------------------
// ErrNotFound
// ---------------------------------------------------------------------------

func TestErrNotFound_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *ErrNotFound
		expected string
	}{
		{
			name:     "with int ID",
			err:      &ErrNotFound{Resource: "show", ID: 42},
			expected: "show with ID 42 not found",
		},
		{
			name:     "with string ID",
			err:      &ErrNotFound{Resource: "schedule", ID: "2023-01-01"},
			expected: "schedule with ID 2023-01-01 not found",
		},
		{
			name:     "with nil ID",
			err:      &ErrNotFound{Resource: "show", ID: nil},
			expected: "show not found",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrNotFound_Is(t *testing.T) {
	t.Parallel()
	err := NewShowNotFoundError(1)

	if !errors.Is(err, &ErrNotFound{}) {
		t.Error("expected errors.Is to match *ErrNotFound")
	}
	if errors.Is(err, &ErrUpstreamStatus{}) {
		t.Error("expected errors.Is not to match *ErrUpstreamStatus")
	}

	wrapped := fmt.Errorf("fetch show: %w", err)
	if !errors.Is(wrapped, &ErrNotFound{}) {
		t.Error("expected wrapped error to match *ErrNotFound")
	}

	var target *ErrNotFound
	if !errors.As(wrapped, &target) {
		t.Fatal("expected errors.As to extract *ErrNotFound")
	}
	if target.ID != 1 || target.Resource != "show" {
		t.Errorf("unexpected extracted error: %+v", target)
	}
}

// ---------------------------------------------------------------------------
// ErrUpstreamStatus
// ---------------------------------------------------------------------------

func TestErrUpstreamStatus(t *testing.T) {
	t.Parallel()
	err := &ErrUpstreamStatus{URL: "https://api.tvmaze.com/shows/1", StatusCode: 503}

	want := "upstream returned status 503 for https://api.tvmaze.com/shows/1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(fmt.Errorf("wrap: %w", err), &ErrUpstreamStatus{}) {
		t.Error("expected wrapped error to match *ErrUpstreamStatus")
	}
	if errors.Is(err, &ErrInvalidPayload{}) {
		t.Error("expected errors.Is not to match *ErrInvalidPayload")
	}
}

// ---------------------------------------------------------------------------
// ErrInvalidPayload
// ---------------------------------------------------------------------------

func TestErrInvalidPayload(t *testing.T) {
	t.Parallel()
	err := NewInvalidPayloadError("show", "expected a JSON object")

	want := "invalid show payload: expected a JSON object"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, &ErrInvalidPayload{Source: "other"}) {
		t.Error("expected errors.Is to match regardless of field values")
	}
}

// ---------------------------------------------------------------------------
// ErrMissingArgument
// ---------------------------------------------------------------------------

func TestErrMissingArgument(t *testing.T) {
	t.Parallel()
	err := &ErrMissingArgument{Field: "show", Name: "id"}

	want := `argument "id" is required for field "show"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, &ErrMissingArgument{}) {
		t.Error("expected errors.Is to match *ErrMissingArgument")
	}
	if errors.Is(err, &ErrNotFound{}) {
		t.Error("expected errors.Is not to match *ErrNotFound")
	}
}
