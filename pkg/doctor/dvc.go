package doctor

import (
	"context"
	"errors"

	errUtils "github.com/mlstack/gcpdoctor/errors"
	"github.com/mlstack/gcpdoctor/pkg/dvc"
	log "github.com/mlstack/gcpdoctor/pkg/logger"
)

// CheckDVC verifies that the GCP remote is registered with DVC and that `dvc status` runs.
// The remote match is a substring test on `dvc remote list` output, independent of its exit
// status. A `dvc status` timeout is a warning.
func (d *Doctor) CheckDVC(ctx context.Context) bool {
	d.out.Blank()
	d.out.Heading("Testing DVC GCP Integration...")

	if err := d.verifyRemote(ctx); err != nil {
		d.failRemote("DVC test failed", err)
		return false
	}
	d.out.Success("DVC GCP remote configured")
	d.inspectRemoteConfig()

	return d.dvcStatus(ctx)
}

func (d *Doctor) verifyRemote(ctx context.Context) error {
	res, err := d.dvc.ListRemotes(ctx)
	if err != nil {
		return err
	}
	log.Debug("Listed DVC remotes", "exit_code", res.ExitCode, "output", res.Stdout)

	if !dvc.HasRemote(res.Stdout, d.cfg.DVCRemoteName) {
		return errUtils.Build(errUtils.ErrRemoteNotFound).
			WithHintf("Run: dvc remote add -d %s %s", d.cfg.DVCRemoteName, d.cfg.DVCRemoteURL).
			Err()
	}
	return nil
}

// failRemote prints the "remote not found" diagnostic, or label plus the error for anything
// else that stopped the remote listing.
func (d *Doctor) failRemote(label string, err error) {
	if errors.Is(err, errUtils.ErrRemoteNotFound) {
		d.fail("DVC GCP remote not found", err)
		return
	}
	d.fail(label+": "+err.Error(), err)
}

// inspectRemoteConfig compares .dvc/config with the configured remote. It only warns.
func (d *Doctor) inspectRemoteConfig() {
	cfg, err := dvc.ReadConfig(d.repoDir)
	if err != nil {
		log.Debug("Skipping DVC config inspection", "error", err)
		return
	}

	name := d.cfg.DVCRemoteName
	if url, ok := cfg.RemoteURL(name); ok && url != "" && url != d.cfg.DVCRemoteURL {
		d.out.Warningf("DVC remote %s points to %s, expected %s", name, url, d.cfg.DVCRemoteURL)
	}
	if cfg.DefaultRemote != "" && cfg.DefaultRemote != name {
		d.out.Warningf("DVC default remote is %s, not %s", cfg.DefaultRemote, name)
	}
}

func (d *Doctor) dvcStatus(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeouts.DVCStatus)
	defer cancel()

	res, err := d.dvc.Status(ctx)
	switch {
	case err == nil:
		log.Debug("DVC status finished", "exit_code", res.ExitCode)
		d.out.Success("DVC status check completed")
		return true
	case isTimeout(err):
		d.out.Warning("DVC status check timed out")
		return true
	default:
		d.fail("DVC test failed: "+err.Error(), err)
		return false
	}
}
