package docerrs

import (
	"errors"
	"testing"
)

func TestParseErrorMessages(t *testing.T) {
	base := errors.New("unexpected token")

	withLine := &ParseError{Path: "doc.md", Line: 3, Col: 5, Err: base}
	if withLine.Error() != "failed to parse doc.md at 3:5: unexpected token" {
		t.Errorf("got %q", withLine.Error())
	}
	if !errors.Is(withLine, base) {
		t.Errorf("expected Unwrap to expose base error")
	}

	pathOnly := &ParseError{Path: "doc.md", Err: base}
	if pathOnly.Error() != "failed to parse doc.md: unexpected token" {
		t.Errorf("got %q", pathOnly.Error())
	}

	bare := &ParseError{Err: base}
	if bare.Error() != "failed to parse: unexpected token" {
		t.Errorf("got %q", bare.Error())
	}
}

func TestDecodeError(t *testing.T) {
	err := &DecodeError{Offset: 42, Reason: "bad magic"}
	if err.Error() != "dast decode failed at offset 42: bad magic" {
		t.Errorf("got %q", err.Error())
	}
}

func TestUnknownExtensionError(t *testing.T) {
	err := &UnknownExtensionError{Path: "notes.xyz"}
	if err.Error() != `unknown extension for file "notes.xyz"` {
		t.Errorf("got %q", err.Error())
	}
}

func TestEmptyContentError(t *testing.T) {
	withPath := &EmptyContentError{Path: "doc.md"}
	if withPath.Error() != "file is empty: doc.md" {
		t.Errorf("got %q", withPath.Error())
	}

	bare := &EmptyContentError{}
	if bare.Error() != "content is empty" {
		t.Errorf("got %q", bare.Error())
	}
}

func TestBinaryContentError(t *testing.T) {
	err := &BinaryContentError{Path: "image.png"}
	if err.Error() != "file appears to be binary, not text: image.png" {
		t.Errorf("got %q", err.Error())
	}
}

func TestValidationFailedError(t *testing.T) {
	err := &ValidationFailedError{Path: "doc.md", ErrorCount: 2}
	if err.Error() != "validation failed for doc.md (2 error(s))" {
		t.Errorf("got %q", err.Error())
	}
}

func TestConfigError(t *testing.T) {
	base := errors.New("bad format")
	err := &ConfigError{Path: "docscribe.yaml", Err: base}
	if err.Error() != "invalid configuration in docscribe.yaml: bad format" {
		t.Errorf("got %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Errorf("expected Unwrap to expose base error")
	}
}

func TestBatchCompletedWithErrorsError(t *testing.T) {
	e1 := errors.New("one")
	e2 := errors.New("two")

	single := &BatchCompletedWithErrorsError{ErrorCount: 1, Errors: []error{e1}}
	if single.Error() != "extraction completed with 1 error" {
		t.Errorf("got %q", single.Error())
	}

	multi := &BatchCompletedWithErrorsError{ErrorCount: 2, Errors: []error{e1, e2}}
	if multi.Error() != "extraction completed with 2 errors" {
		t.Errorf("got %q", multi.Error())
	}
	if !errors.Is(multi, e1) || !errors.Is(multi, e2) {
		t.Errorf("expected Unwrap() []error to expose both underlying errors")
	}
}
