// Package errext wraps errors with two pieces of optional structured
// context a CLI wants at the point it reports failure: a human-readable
// hint, and a process exit code. It is adapted from the wrapping style
// used throughout this module's teacher, trimmed to the two concerns
// cmd/textdump actually needs (the teacher's JS-exception/abort-reason
// machinery has no equivalent here; see DESIGN.md).
package errext

import (
	"errors"
	"fmt"

	"github.com/grafana/textview/internal/errext/exitcodes"
)

// HasHint is implemented by an error carrying a human-readable
// suggestion for resolving it.
type HasHint interface {
	error
	Hint() string
}

// HasExitCode is implemented by an error that should cause the process
// to exit with a specific code rather than the generic failure code.
type HasExitCode interface {
	error
	ExitCode() exitcodes.ExitCode
}

type hintError struct {
	error
	hint string
}

func (e hintError) Hint() string { return e.hint }
func (e hintError) Unwrap() error { return e.error }

// WithHint wraps err with hint. If err already carries a hint, the new
// hint is prepended and the old one parenthesized after it, the way
// nested context accumulates: "better hint (original hint)". Returns nil
// if err is nil.
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	var existing HasHint
	if errors.As(err, &existing) {
		hint = fmt.Sprintf("%s (%s)", hint, existing.Hint())
	}
	return hintError{error: err, hint: hint}
}

type exitCodeError struct {
	error
	code exitcodes.ExitCode
}

func (e exitCodeError) ExitCode() exitcodes.ExitCode { return e.code }
func (e exitCodeError) Unwrap() error { return e.error }

// WithExitCodeIfNone wraps err with code unless it (or something it
// wraps) already carries an exit code, in which case err is returned
// unchanged. Returns nil if err is nil.
func WithExitCodeIfNone(err error, code exitcodes.ExitCode) error {
	if err == nil {
		return nil
	}
	var existing HasExitCode
	if errors.As(err, &existing) {
		return err
	}
	return exitCodeError{error: err, code: code}
}
