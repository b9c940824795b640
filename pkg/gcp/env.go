package gcp

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	errUtils "github.com/mlstack/gcpdoctor/errors"
	log "github.com/mlstack/gcpdoctor/pkg/logger"
)

const (
	// CredentialsEnvVar points Google client libraries at an ADC file.
	CredentialsEnvVar = "GOOGLE_APPLICATION_CREDENTIALS"
	// CloudSDKConfigEnvVar overrides the gcloud configuration directory.
	CloudSDKConfigEnvVar = "CLOUDSDK_CONFIG"

	adcFileName = "application_default_credentials.json"
)

// DefaultCredentialsPath returns where gcloud writes Application Default Credentials:
// $CLOUDSDK_CONFIG when set, otherwise ~/.config/gcloud.
func DefaultCredentialsPath() string {
	if dir := os.Getenv(CloudSDKConfigEnvVar); dir != "" {
		return filepath.Join(dir, adcFileName)
	}

	home, err := homedir.Dir()
	if err != nil {
		log.Debug("Could not resolve home directory", "error", err)
		return filepath.Join("~", ".config", "gcloud", adcFileName)
	}
	return filepath.Join(home, ".config", "gcloud", adcFileName)
}

// SetCredentialsEnv exports GOOGLE_APPLICATION_CREDENTIALS so child processes and client
// libraries pick up the same file.
func SetCredentialsEnv(path string) error {
	if err := os.Setenv(CredentialsEnvVar, path); err != nil {
		return errUtils.Build(errUtils.ErrSetCredentialsEnv).WithCause(err).Err()
	}
	log.Debug("Exported credentials path", "key", CredentialsEnvVar, "path", path)
	return nil
}
