package command

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	errUtils "github.com/mlstack/gcpdoctor/errors"
	log "github.com/mlstack/gcpdoctor/pkg/logger"
)

// waitDelay bounds how long Run waits for output pipes after the context kills the child.
const waitDelay = 2 * time.Second

// Result is the captured outcome of a command that started.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status 0.
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}

// Runner runs external commands.
//
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE
type Runner interface {
	// Run executes name with args and captures its output. A non-zero exit status is reported
	// in Result.ExitCode, not as an error. Errors are ErrCommandStart when the command could not
	// be started and ErrCommandTimeout when ctx expired first.
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// ExecRunner runs commands with os/exec. The child inherits the current environment.
type ExecRunner struct {
	// Dir is the working directory; empty means the current one.
	Dir string
}

// NewExecRunner creates an ExecRunner in dir.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{Dir: dir}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // binaries come from configuration, not user input
	cmd.Dir = r.Dir
	cmd.Env = os.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	commandLine := strings.Join(append([]string{name}, args...), " ")
	log.Debug("Running command", "command", commandLine, "dir", r.Dir)

	err := cmd.Run()

	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		log.Debug("Command timed out", "command", commandLine)
		return nil, errUtils.Build(errUtils.ErrCommandTimeout).
			WithCause(ctxErr).
			WithContext("command", commandLine).
			Err()
	}

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, errUtils.Build(errUtils.ErrCommandStart).
				WithCause(err).
				WithContext("command", commandLine).
				Err()
		}
		result.ExitCode = exitErr.ExitCode()
	}

	log.Trace("Command finished", "command", commandLine, "exit_code", result.ExitCode)
	return result, nil
}
