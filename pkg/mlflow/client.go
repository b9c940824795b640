package mlflow

import (
	"context"
	"net/url"
	"strings"

	"github.com/mlstack/gcpdoctor/pkg/command"
	log "github.com/mlstack/gcpdoctor/pkg/logger"
)

const (
	// DefaultPython is the interpreter used to import mlflow.
	DefaultPython = "python3"

	// TrackingURIEnvVar is read by the mlflow client library.
	TrackingURIEnvVar = "MLFLOW_TRACKING_URI"

	// setTrackingURIScript takes the URI as argv[1] so it is never spliced into Python source.
	setTrackingURIScript = "import sys, mlflow; " +
		"mlflow.set_tracking_uri(sys.argv[1]); " +
		"print('MLflow tracking URI set to ' + mlflow.get_tracking_uri())"
)

// Client drives the mlflow Python library through a short inline script.
type Client struct {
	runner command.Runner
	python string
}

// NewClient creates a Client. An empty python means DefaultPython.
func NewClient(runner command.Runner, python string) *Client {
	if python == "" {
		python = DefaultPython
	}
	return &Client{runner: runner, python: python}
}

// SetTrackingURI imports mlflow and points it at uri. The exit status is left to the caller.
func (c *Client) SetTrackingURI(ctx context.Context, uri string) (*command.Result, error) {
	log.Debug("Setting MLflow tracking URI", "uri", uri, "python", c.python)
	return c.runner.Run(ctx, c.python, "-c", setTrackingURIScript, uri)
}

// TrackingScheme returns the lower-cased scheme of a tracking URI. Plain paths are "file".
func TrackingScheme(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" {
		return "file"
	}
	// A Windows drive letter parses as a one-letter scheme.
	if len(u.Scheme) == 1 {
		return "file"
	}
	return strings.ToLower(u.Scheme)
}

// IsGCS reports whether uri points at Google Cloud Storage.
func IsGCS(uri string) bool {
	return TrackingScheme(uri) == "gs"
}
