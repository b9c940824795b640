package errors

import (
	"errors"
)

const (
	ErrWrapFormat           = "%w: %w"
	ErrStringWrappingFormat = "%w: %s"
)

var (
	ErrLoadConfig      = errors.New("failed to load gcpdoctor configuration")
	ErrInvalidConfig   = errors.New("invalid gcpdoctor configuration")
	ErrInvalidLogLevel = errors.New("invalid log level")

	// Credentials.
	ErrCredentialsNotFound        = errors.New("application default credentials not found")
	ErrReadCredentials            = errors.New("error reading credentials")
	ErrImpersonationNotConfigured = errors.New("service account impersonation not configured")
	ErrSetCredentialsEnv          = errors.New("failed to set GOOGLE_APPLICATION_CREDENTIALS")
	ErrAPIProbe                   = errors.New("GCP API test failed")
	ErrAPIUnreachable             = errors.New("GCP API unreachable")
	ErrCreateGCSClient            = errors.New("failed to create GCS client")

	// Subprocesses.
	ErrCommandStart   = errors.New("failed to start command")
	ErrCommandTimeout = errors.New("command timed out")
	ErrCommandFailed  = errors.New("command exited with a non-zero status")

	// DVC.
	ErrRemoteNotFound    = errors.New("DVC GCP remote not found")
	ErrDVCConfigNotFound = errors.New("DVC config not found")
	ErrParseDVCConfig    = errors.New("failed to parse DVC config")

	// MLflow.
	ErrMLflowTrackingURI = errors.New("failed to set MLflow tracking URI")

	ErrChecksFailed = errors.New("one or more checks failed")
)
