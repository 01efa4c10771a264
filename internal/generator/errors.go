package generator

import (
	"errors"
	"fmt"

	"github.com/agentx-labs/new-component/internal/templates"
)

// UsageError reports a request the user has to correct: a missing name, a
// missing parent directory or an already existing component.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// IsUsage reports whether err is or wraps a *UsageError.
func IsUsage(err error) bool {
	var u *UsageError
	return errors.As(err, &u)
}

// TemplateReadError means a bundled or configured template could not be read.
type TemplateReadError struct {
	Asset templates.Kind
	Path  string
	Err   error
}

func (e *TemplateReadError) Error() string {
	return fmt.Sprintf("reading %s template %s: %v", e.Asset, e.Path, e.Err)
}

func (e *TemplateReadError) Unwrap() error { return e.Err }

// FormatError means the formatter rejected the substituted template.
type FormatError struct {
	Asset templates.Kind
	Path  string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formatting %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// WriteError means the component directory or an output file could not be
// created.
type WriteError struct {
	Asset templates.Kind // empty for the component directory
	Path  string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
