package doctor

import (
	"context"
	"strings"

	errUtils "github.com/mlstack/gcpdoctor/errors"
	"github.com/mlstack/gcpdoctor/pkg/command"
	"github.com/mlstack/gcpdoctor/pkg/mlflow"
)

// CheckMLflow verifies that the mlflow library can be imported and pointed at the tracking URI.
func (d *Doctor) CheckMLflow(ctx context.Context) bool {
	d.out.Blank()
	d.out.Heading("Testing MLflow GCP Integration...")

	uri := d.cfg.MLflowTrackingURI
	if !mlflow.IsGCS(uri) {
		d.out.Warningf("MLflow tracking URI %s is not a gs:// location", uri)
	}

	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeouts.MLflow)
	defer cancel()

	res, err := d.mlflow.SetTrackingURI(ctx, uri)
	switch {
	case err != nil && isTimeout(err):
		d.out.Warning("MLflow GCP test timed out")
		return true
	case err != nil:
		d.fail("MLflow test error: "+err.Error(), err)
		return false
	case !res.Success():
		d.fail("MLflow test failed: "+strings.TrimSpace(res.Stderr), trackingError(uri, res))
		return false
	default:
		d.out.Success("MLflow GCP integration working")
		return true
	}
}

func trackingError(uri string, res *command.Result) error {
	return errUtils.Build(errUtils.ErrMLflowTrackingURI).
		WithContext("uri", uri).
		WithContext("exit_code", res.ExitCode).
		Err()
}
