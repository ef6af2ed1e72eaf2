// Package docerrs provides centralized error types for docscribe.
//
// All custom error types in this package:
//   - Use pointer receivers for the Error() method
//   - Include structured fields for contextual information
//   - Implement Unwrap() when wrapping underlying errors
package docerrs

import "fmt"

// ParseError indicates a source file failed to parse.
type ParseError struct {
	Path string // File path if known, empty otherwise
	Line int    // Line number if known, 0 otherwise
	Col  int    // Column number if known, 0 otherwise
	Err  error  // Underlying error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf(
			"failed to parse %s at %d:%d: %v",
			e.Path,
			e.Line,
			e.Col,
			e.Err,
		)
	}

	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("failed to parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a DAST binary stream failed strict decoding.
type DecodeError struct {
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("dast decode failed at offset %d: %s", e.Offset, e.Reason)
}

// UnknownExtensionError indicates a file's extension does not map to any
// supported DocumentType.
type UnknownExtensionError struct {
	Path string
}

func (e *UnknownExtensionError) Error() string {
	return fmt.Sprintf("unknown extension for file %q", e.Path)
}

// EmptyContentError indicates empty or whitespace-only content was provided.
type EmptyContentError struct {
	Path string
}

func (e *EmptyContentError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("file is empty: %s", e.Path)
	}

	return "content is empty"
}

// BinaryContentError indicates binary (non-text) content was provided
// where source text was expected.
type BinaryContentError struct {
	Path string
}

func (e *BinaryContentError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("file appears to be binary, not text: %s", e.Path)
	}

	return "content appears to be binary, not text"
}

// ValidationFailedError indicates a document failed structural
// validation (broken reference, empty link URL, etc.) hard enough to
// abort the operation rather than merely warn.
type ValidationFailedError struct {
	Path       string
	ErrorCount int
}

func (e *ValidationFailedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("validation failed for %s (%d error(s))", e.Path, e.ErrorCount)
	}

	return fmt.Sprintf("validation failed (%d error(s))", e.ErrorCount)
}

// ConfigError indicates docscribe.yaml failed to load or validate.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration in %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// BatchCompletedWithErrorsError indicates a batch extraction run
// completed but one or more files failed.
type BatchCompletedWithErrorsError struct {
	ErrorCount int
	Errors     []error
}

func (e *BatchCompletedWithErrorsError) Error() string {
	if e.ErrorCount == 1 {
		return "extraction completed with 1 error"
	}

	return fmt.Sprintf("extraction completed with %d errors", e.ErrorCount)
}

func (e *BatchCompletedWithErrorsError) Unwrap() []error {
	return e.Errors
}
