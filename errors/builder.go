package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder provides a fluent API for constructing enriched errors.
type ErrorBuilder struct {
	err       error
	hints     []string
	context   map[string]any
	exitCode  *int
	sentinels []error
}

// Build creates a new ErrorBuilder from a base error.
// A leaf error (no wrapped cause) is treated as a sentinel so errors.Is keeps matching it
// after hints and details are layered on top.
func Build(err error) *ErrorBuilder {
	builder := &ErrorBuilder{err: err}

	if err != nil && errors.UnwrapOnce(err) == nil {
		builder.sentinels = append(builder.sentinels, err)
	}

	return builder
}

// WithHint adds a user-facing hint to the error, such as a remediation command.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hints = append(b.hints, hint)
	return b
}

// WithHintf adds a formatted user-facing hint to the error.
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.hints = append(b.hints, fmt.Sprintf(format, args...))
	return b
}

// WithCause wraps the builder's error around cause, keeping the original message first.
func (b *ErrorBuilder) WithCause(cause error) *ErrorBuilder {
	if cause != nil {
		b.err = fmt.Errorf(ErrWrapFormat, b.err, cause)
	}
	return b
}

// WithContext adds structured context that is logged at debug level.
func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	if b.context == nil {
		b.context = make(map[string]any)
	}
	b.context[key] = value
	return b
}

// WithExitCode attaches an exit code to the error.
func (b *ErrorBuilder) WithExitCode(code int) *ErrorBuilder {
	b.exitCode = &code
	return b
}

// WithSentinel marks the error with a sentinel for errors.Is checks.
func (b *ErrorBuilder) WithSentinel(sentinel error) *ErrorBuilder {
	b.sentinels = append(b.sentinels, sentinel)
	return b
}

// Err finalizes and returns the enriched error.
func (b *ErrorBuilder) Err() error {
	if b.err == nil {
		return nil
	}

	err := b.err

	for _, hint := range b.hints {
		err = errors.WithHint(err, hint)
	}

	if len(b.context) > 0 {
		keys := make([]string, 0, len(b.context))
		for k := range b.context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		formatParts := make([]string, 0, len(keys))
		safeValues := make([]any, 0, len(keys))
		for _, key := range keys {
			formatParts = append(formatParts, key+"=%s")
			safeValues = append(safeValues, errors.Safe(b.context[key]))
		}

		err = errors.WithSafeDetails(err, strings.Join(formatParts, " "), safeValues...)
	}

	// Sentinels go on last so they sit at the top of the chain.
	if len(b.sentinels) > 0 {
		for _, sentinel := range b.sentinels {
			err = errors.Mark(err, sentinel)
		}
		err = &markedError{cause: err, marks: b.sentinels}
	}

	if b.exitCode != nil {
		err = WithExitCode(err, *b.exitCode)
	}

	return err
}

// Hints returns every hint attached anywhere in the error chain, outermost last.
func Hints(err error) []string {
	if err == nil {
		return nil
	}
	return errors.GetAllHints(err)
}

// markedError exposes the builder's sentinels to the standard library's errors.Is.
// errors.Mark alone is only visible to cockroachdb/errors.
type markedError struct {
	cause error
	marks []error
}

func (e *markedError) Error() string {
	return e.cause.Error()
}

func (e *markedError) Cause() error {
	return e.cause
}

func (e *markedError) Unwrap() error {
	return e.cause
}

// Is reports whether target is one of the marked sentinels.
func (e *markedError) Is(target error) bool {
	for _, mark := range e.marks {
		if mark == target {
			return true
		}
	}
	return false
}
