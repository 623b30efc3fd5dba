package stencil

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for the stencil package.
var (
	// ErrTemplate is the generic template-error kind. Every error type
	// defined by this package matches it with errors.Is, so callers can
	// treat the whole family uniformly when the specific kind does not
	// matter.
	ErrTemplate = errors.New("stencil: template error")
)

// SecurityError is returned when a template attempts an operation the
// sandbox forbids, such as reaching an underscored attribute.
type SecurityError struct {
	Op string
}

func (e *SecurityError) Error() string {
	return "stencil: security violation: " + e.Op
}

func (e *SecurityError) Unwrap() error { return ErrTemplate }

// FilterNotFoundError is returned when a template applies a filter that
// is not registered.
type FilterNotFoundError struct {
	Name string
}

func (e *FilterNotFoundError) Error() string {
	return "stencil: filter not found: " + e.Name
}

func (e *FilterNotFoundError) Unwrap() error { return ErrTemplate }

// TestNotFoundError is returned when a template uses a test that is not
// registered.
type TestNotFoundError struct {
	Name string
}

func (e *TestNotFoundError) Error() string {
	return "stencil: test not found: " + e.Name
}

func (e *TestNotFoundError) Unwrap() error { return ErrTemplate }

// TemplateNotFoundError is returned when a template name cannot be
// resolved to a source. It also matches fs.ErrNotExist, so callers
// probing with errors.Is see an ordinary missing-file condition.
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return "stencil: template not found: " + e.Name
}

func (e *TemplateNotFoundError) Unwrap() error { return ErrTemplate }

func (e *TemplateNotFoundError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// SyntaxError is returned when template source cannot be parsed. Line
// is 1-based and points at the construct the parser rejected.
type SyntaxError struct {
	Msg  string
	Line int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("stencil: syntax error on line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrTemplate }

// RuntimeError is returned when evaluating a template fails after it
// parsed cleanly. Err optionally carries the underlying cause.
type RuntimeError struct {
	Msg string
	Err error
}

func (e *RuntimeError) Error() string {
	if e.Err != nil {
		return "stencil: runtime error: " + e.Msg + ": " + e.Err.Error()
	}
	return "stencil: runtime error: " + e.Msg
}

func (e *RuntimeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrTemplate, e.Err}
	}
	return []error{ErrTemplate}
}
