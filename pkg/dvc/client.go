package dvc

import (
	"context"
	"strings"

	errUtils "github.com/mlstack/gcpdoctor/errors"
	"github.com/mlstack/gcpdoctor/pkg/command"
	log "github.com/mlstack/gcpdoctor/pkg/logger"
)

// DefaultBinary is the DVC executable looked up on PATH.
const DefaultBinary = "dvc"

// Client shells out to the dvc CLI.
type Client struct {
	runner command.Runner
	binary string
}

// NewClient creates a Client. An empty binary means DefaultBinary.
func NewClient(runner command.Runner, binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{runner: runner, binary: binary}
}

// ListRemotes runs `dvc remote list`. The exit status is left to the caller.
func (c *Client) ListRemotes(ctx context.Context) (*command.Result, error) {
	return c.runner.Run(ctx, c.binary, "remote", "list")
}

// Status runs `dvc status`.
func (c *Client) Status(ctx context.Context) (*command.Result, error) {
	return c.runner.Run(ctx, c.binary, "status")
}

// AddRemote runs `dvc remote add [-d] -f name url`. -f lets it overwrite a remote with the
// same name but a different URL.
func (c *Client) AddRemote(ctx context.Context, name, url string, makeDefault bool) error {
	args := []string{"remote", "add"}
	if makeDefault {
		args = append(args, "-d")
	}
	args = append(args, "-f", name, url)

	res, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		return err
	}
	if !res.Success() {
		return errUtils.Build(errUtils.ErrCommandFailed).
			WithCause(commandError(res)).
			WithContext("remote", name).
			Err()
	}

	log.Debug("Added DVC remote", "name", name, "url", url, "default", makeDefault)
	return nil
}

// HasRemote reports whether the `dvc remote list` output mentions name. The match is a plain
// substring test.
func HasRemote(output, name string) bool {
	return name != "" && strings.Contains(output, name)
}

type stderrError string

func (e stderrError) Error() string { return string(e) }

func commandError(res *command.Result) error {
	msg := strings.TrimSpace(res.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(res.Stdout)
	}
	return stderrError(msg)
}
