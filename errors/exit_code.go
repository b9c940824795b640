package errors

import (
	"github.com/cockroachdb/errors"
)

// exitCoder is satisfied by codedError and by *exec.ExitError.
type exitCoder interface {
	ExitCode() int
}

// codedError carries the process exit code for err.
type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Cause() error  { return e.err }
func (e *codedError) Unwrap() error { return e.err }
func (e *codedError) ExitCode() int { return e.code }

// WithExitCode makes main exit with code when err reaches it.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &codedError{err: err, code: code}
}

// GetExitCode returns the outermost exit code in err's chain: one set with WithExitCode or a
// child process's status. Errors without one exit 1, and nil exits 0.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder exitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}
