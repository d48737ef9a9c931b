// Package errors defines the typed errors shared across the module. All
// types wrap an underlying cause and expose it through Unwrap.
package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StoryError indicates a problem registering or running a catalog story.
type StoryError struct {
	StoryID string
	Message string
	Err     error
}

// NewStoryError constructs a StoryError for the given story.
func NewStoryError(storyID string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &StoryError{StoryID: storyID, Message: message, Err: err}
}

func (e *StoryError) Error() string {
	if e == nil {
		return ""
	}
	if e.StoryID != "" {
		return fmt.Sprintf("story error: %s: %s", e.StoryID, e.Message)
	}
	return fmt.Sprintf("story error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *StoryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
