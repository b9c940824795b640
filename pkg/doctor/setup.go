package doctor

import (
	"context"
	"errors"
	"strings"

	errUtils "github.com/mlstack/gcpdoctor/errors"
	"github.com/mlstack/gcpdoctor/pkg/gcp"
)

// SetupOptions controls Setup.
type SetupOptions struct {
	// Configure adds the DVC remote when it is missing instead of failing.
	Configure bool
}

// Setup checks that credentials exist, wires the DVC remote and sets the MLflow tracking URI.
// It stops at the first step that fails.
func (d *Doctor) Setup(ctx context.Context, opts SetupOptions) bool {
	d.out.Println("Setting up MLflow + DVC + GCP integration...")

	path := d.cfg.CredentialsPath
	if !gcp.FileExists(path) {
		d.out.Error("GCP credentials not found. Run: gcloud auth application-default login")
		return false
	}
	if err := d.setenv(path); err != nil {
		d.fail(sentence(err), err)
		return false
	}

	if !d.setupDVC(ctx, opts) || !d.setupMLflow(ctx) {
		return false
	}

	d.out.Celebrate("Setup complete! MLflow and DVC are now integrated with GCP.")
	return true
}

func (d *Doctor) setupDVC(ctx context.Context, opts SetupOptions) bool {
	err := d.verifyRemote(ctx)
	if errors.Is(err, errUtils.ErrRemoteNotFound) && opts.Configure {
		d.out.Indented("Adding DVC remote " + d.cfg.DVCRemoteName + " -> " + d.cfg.DVCRemoteURL)
		if addErr := d.dvc.AddRemote(ctx, d.cfg.DVCRemoteName, d.cfg.DVCRemoteURL, true); addErr != nil {
			d.fail("DVC remote setup failed: "+addErr.Error(), addErr)
			return false
		}
		err = d.verifyRemote(ctx)
	}
	if err != nil {
		d.failRemote("DVC check failed", err)
		return false
	}

	d.out.Success("DVC GCP remote configured")
	return true
}

func (d *Doctor) setupMLflow(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeouts.MLflow)
	defer cancel()

	res, err := d.mlflow.SetTrackingURI(ctx, d.cfg.MLflowTrackingURI)
	switch {
	case err != nil && isTimeout(err):
		d.out.Warning("MLflow tracking setup timed out")
		return true
	case err != nil:
		d.fail("MLflow setup failed: "+err.Error(), err)
		return false
	case !res.Success():
		d.fail("MLflow setup failed: "+strings.TrimSpace(res.Stderr), trackingError(d.cfg.MLflowTrackingURI, res))
		return false
	}

	d.out.Success("MLflow GCP tracking configured")
	return true
}
