package config

import "time"

const (
	// ConfigFileName is the base name of the optional config file (gcpdoctor.yaml).
	ConfigFileName = "gcpdoctor"
	// ConfigDirName is the directory under ~/.config searched for the config file.
	ConfigDirName = "gcpdoctor"
	// configFileType is assumed for an explicit config file without an extension.
	configFileType = "yaml"
	// DotEnvFileName is loaded from the working directory before anything else.
	DotEnvFileName = ".env"

	DefaultBucket        = "your-bucket-name"
	DefaultDVCRemoteName = "gcp-storage"
	DefaultDVCBinary     = "dvc"
	DefaultPythonBinary  = "python3"
	DefaultLogsLevel     = "Info"

	DefaultAPITimeout       = 10 * time.Second
	DefaultDVCStatusTimeout = 5 * time.Second
	DefaultMLflowTimeout    = 10 * time.Second

	mlflowTrackingPathFormat = "gs://%s/mlflow-tracking"
	dvcStoragePathFormat     = "gs://%s/dvc-storage"
)

// Config keys, also used for flag binding.
const (
	KeyCredentialsPath           = "credentials_path"
	KeyBucket                    = "bucket"
	KeyMLflowTrackingURI         = "mlflow_tracking_uri"
	KeyDVCRemoteURL              = "dvc_remote_url"
	KeyDVCRemoteName             = "dvc_remote_name"
	KeyImpersonateServiceAccount = "impersonate_service_account"
	KeyDVCBinary                 = "dvc_binary"
	KeyPythonBinary              = "python_binary"
	KeyVerifyBucket              = "verify_bucket"
	KeyAPITimeout                = "timeouts.api"
	KeyDVCStatusTimeout          = "timeouts.dvc_status"
	KeyMLflowTimeout             = "timeouts.mlflow"
	KeyLogsLevel                 = "logs.level"
)

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string][]string{
	KeyCredentialsPath:           {"GOOGLE_APPLICATION_CREDENTIALS"},
	KeyBucket:                    {"GCP_BUCKET"},
	KeyMLflowTrackingURI:         {"MLFLOW_TRACKING_URI"},
	KeyDVCRemoteURL:              {"DVC_REMOTE_URL"},
	KeyDVCRemoteName:             {"DVC_REMOTE_NAME"},
	KeyImpersonateServiceAccount: {"GCP_IMPERSONATE_SERVICE_ACCOUNT"},
	KeyDVCBinary:                 {"GCPDOCTOR_DVC"},
	KeyPythonBinary:              {"GCPDOCTOR_PYTHON"},
	KeyVerifyBucket:              {"GCPDOCTOR_VERIFY_BUCKET"},
	KeyAPITimeout:                {"GCPDOCTOR_API_TIMEOUT"},
	KeyDVCStatusTimeout:          {"GCPDOCTOR_DVC_STATUS_TIMEOUT"},
	KeyMLflowTimeout:             {"GCPDOCTOR_MLFLOW_TIMEOUT"},
	KeyLogsLevel:                 {"GCPDOCTOR_LOGS_LEVEL"},
}
