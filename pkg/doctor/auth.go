package doctor

import (
	"context"
	"errors"

	errUtils "github.com/mlstack/gcpdoctor/errors"
	"github.com/mlstack/gcpdoctor/pkg/gcp"
	log "github.com/mlstack/gcpdoctor/pkg/logger"
)

const impersonationPlaceholder = "<service-account-email>"

// CheckAuth verifies that Application Default Credentials exist, use service-account
// impersonation, and can reach the Cloud Storage API. On success the credentials path is
// exported as GOOGLE_APPLICATION_CREDENTIALS.
func (d *Doctor) CheckAuth(ctx context.Context) bool {
	d.out.Heading("Checking GCP Authentication Setup...")

	creds, err := d.impersonatedCredentials()
	if err != nil {
		d.fail(authFailureMessage(err), err)
		return false
	}
	d.out.Successf("Service Account Impersonation configured: %s", creds.ServiceAccount())

	if err := d.setenv(creds.Path); err != nil {
		d.fail(sentence(err), err)
		return false
	}
	d.out.Successf("%s set to: %s", gcp.CredentialsEnvVar, creds.Path)

	return d.probeAPI(ctx, creds)
}

func (d *Doctor) impersonatedCredentials() (*gcp.Credentials, error) {
	creds, err := gcp.ReadCredentials(d.cfg.CredentialsPath)
	switch {
	case errors.Is(err, errUtils.ErrCredentialsNotFound):
		return nil, errUtils.Build(err).WithHint(d.loginHint()).Err()
	case err != nil:
		return nil, err
	case !creds.IsImpersonated():
		return nil, errUtils.Build(errUtils.ErrImpersonationNotConfigured).
			WithContext("type", creds.Type).
			WithHint(d.loginHint()).
			Err()
	}
	return creds, nil
}

func (d *Doctor) loginHint() string {
	account := d.cfg.ImpersonateServiceAccount
	if account == "" {
		account = impersonationPlaceholder
	}
	return "Run: gcloud auth application-default login --impersonate-service-account=" + account
}

func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, errUtils.ErrCredentialsNotFound):
		return "Application Default Credentials not found"
	case errors.Is(err, errUtils.ErrImpersonationNotConfigured):
		return "Service account impersonation not configured"
	default:
		return sentence(err)
	}
}

func (d *Doctor) probeAPI(ctx context.Context, creds *gcp.Credentials) bool {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeouts.API)
	defer cancel()

	err := d.prober.Probe(ctx, creds)
	switch {
	case err == nil:
		d.out.Success("GCP API access verified")
		return true
	case isTimeout(err):
		d.out.Warning("GCP API test timed out, but credentials are configured")
		return true
	case errors.Is(err, errUtils.ErrAPIUnreachable):
		d.out.Warning("GCP API could not be reached, but credentials are configured")
		log.Debug("GCP API unreachable", "error", err)
		return true
	default:
		d.fail("GCP API test failed: "+detail(err, errUtils.ErrAPIProbe), err)
		return false
	}
}
