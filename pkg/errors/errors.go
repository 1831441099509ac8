// Package errors defines the typed errors shared across the stagehand
// pipeline. Matching on concrete types lets callers tell bad input
// files from bad configuration, and the CLI uses the distinction to
// pick recovery hints.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text. It aliases the
// standard library errors.New so callers need only this package.
var New = errors.New

// Sentinel errors for errors.Is checks.
var (
	// ErrInvalidInput marks options and values that fail validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingColumn marks an input table without a required column.
	ErrMissingColumn = errors.New("missing column")
)

// IsValidationError reports whether err is a validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMissingColumn reports whether err means a required column is absent.
func IsMissingColumn(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}

// SourceError is a failure loading one of the customer exports. Source
// names which export, so a three-file run can say which input broke.
type SourceError struct {
	Source string
	Path   string
	Err    error
}

func (e *SourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("source %s (%s): %v", e.Source, e.Path, e.Err)
	}
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

// Unwrap returns the loading error behind the source failure.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// WrapSource annotates err with the export it came from. A nil err
// stays nil, so loader results can be wrapped unconditionally.
func WrapSource(source, path string, err error) error {
	if err == nil {
		return nil
	}
	return &SourceError{Source: source, Path: path, Err: err}
}

// ColumnError is an input table missing a column the pipeline needs.
type ColumnError struct {
	Table  string
	Column string
}

func (e *ColumnError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("table %s is missing required column %q", e.Table, e.Column)
	}
	return fmt.Sprintf("missing required column %q", e.Column)
}

// Is matches ErrMissingColumn.
func (e *ColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// NewColumnError creates a new ColumnError.
func NewColumnError(table, column string) *ColumnError {
	return &ColumnError{Table: table, Column: column}
}

// ParseError is a failure decoding a data format. Error renders the
// file position compiler-style when line information is known.
type ParseError struct {
	Format  string // "csv", "json", "yaml"
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d:%d: %s parse error: %s", e.File, e.Line, e.Column, e.Format, e.Message)
	case e.File != "":
		return fmt.Sprintf("%s: %s parse error: %s", e.File, e.Format, e.Message)
	default:
		return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
	}
}

// Unwrap returns the decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a ParseError with an explicit message. Use
// WrapParse when the decoder's own text is good enough.
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// WrapParse annotates a decoder error with its format and file. A nil
// err stays nil.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
}

// IOError is a failed file or download operation.
type IOError struct {
	Operation string // "read", "write", "create", "download"
	Path      string
	Message   string
	Err       error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cannot %s %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("cannot %s: %s", e.Operation, e.Message)
}

// Unwrap returns the underlying I/O error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO annotates err with the operation and path that failed. A nil
// err stays nil.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Message: err.Error(), Err: err}
}

// APIError is a failure talking to the tag mapping endpoint.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Endpoint, e.Message)
}

// Unwrap returns the transport error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates an APIError for the given endpoint and status.
func NewAPIError(endpoint string, statusCode int, message string) *APIError {
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    message,
	}
}

// ConfigError is a bad or incomplete run configuration. Component names
// the operation or config section that rejected it.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("invalid %s configuration: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

// Unwrap returns the cause, if any.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a ConfigError scoped to a component.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ValidationError is a single value that failed validation, such as an
// empty required option.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid value for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// Is matches ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
