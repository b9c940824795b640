package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	errUtils "github.com/mlstack/gcpdoctor/errors"
	"github.com/mlstack/gcpdoctor/pkg/gcp"
	log "github.com/mlstack/gcpdoctor/pkg/logger"
)

// Timeouts bounds each external call.
type Timeouts struct {
	API       time.Duration `mapstructure:"api" yaml:"api"`
	DVCStatus time.Duration `mapstructure:"dvc_status" yaml:"dvc_status"`
	MLflow    time.Duration `mapstructure:"mlflow" yaml:"mlflow"`
}

// Logs configures diagnostic logging.
type Logs struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Config is resolved once at startup and not modified afterwards.
type Config struct {
	CredentialsPath           string   `mapstructure:"credentials_path" yaml:"credentials_path"`
	Bucket                    string   `mapstructure:"bucket" yaml:"bucket"`
	MLflowTrackingURI         string   `mapstructure:"mlflow_tracking_uri" yaml:"mlflow_tracking_uri"`
	DVCRemoteURL              string   `mapstructure:"dvc_remote_url" yaml:"dvc_remote_url"`
	DVCRemoteName             string   `mapstructure:"dvc_remote_name" yaml:"dvc_remote_name"`
	ImpersonateServiceAccount string   `mapstructure:"impersonate_service_account" yaml:"impersonate_service_account"`
	DVCBinary                 string   `mapstructure:"dvc_binary" yaml:"dvc_binary"`
	PythonBinary              string   `mapstructure:"python_binary" yaml:"python_binary"`
	VerifyBucket              bool     `mapstructure:"verify_bucket" yaml:"verify_bucket"`
	Timeouts                  Timeouts `mapstructure:"timeouts" yaml:"timeouts"`
	Logs                      Logs     `mapstructure:"logs" yaml:"logs"`

	// ConfigFile is the config file that was read, if any.
	ConfigFile string `mapstructure:"-" yaml:"-"`
}

// NewViper returns a viper instance with gcpdoctor's defaults and environment bindings.
// Flags are bound on top of it by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}
	return v
}

func setDefaults(v *viper.Viper) {
	// Path and URI defaults depend on other values and are filled in by resolve.
	v.SetDefault(KeyCredentialsPath, "")
	v.SetDefault(KeyBucket, DefaultBucket)
	v.SetDefault(KeyMLflowTrackingURI, "")
	v.SetDefault(KeyDVCRemoteURL, "")
	v.SetDefault(KeyDVCRemoteName, DefaultDVCRemoteName)
	v.SetDefault(KeyImpersonateServiceAccount, "")
	v.SetDefault(KeyDVCBinary, DefaultDVCBinary)
	v.SetDefault(KeyPythonBinary, DefaultPythonBinary)
	v.SetDefault(KeyVerifyBucket, false)
	v.SetDefault(KeyAPITimeout, DefaultAPITimeout)
	v.SetDefault(KeyDVCStatusTimeout, DefaultDVCStatusTimeout)
	v.SetDefault(KeyMLflowTimeout, DefaultMLflowTimeout)
	v.SetDefault(KeyLogsLevel, DefaultLogsLevel)
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment. Variables that are already
// set win, and a missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Trace("No dotenv file", "path", path)
			return nil
		}
		return errUtils.Build(errUtils.ErrLoadConfig).WithCause(err).Err()
	}
	log.Debug("Loaded dotenv file", "path", path)
	return nil
}

// Load reads the optional config file into v and resolves the final Config.
// configFile overrides the search for gcpdoctor.yaml in the working directory and
// ~/.config/gcpdoctor; unlike the searched file, an explicit one must exist.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		path := expandPath(configFile)
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType(configFileType)
		}
	} else {
		// No config type here: viper would otherwise also read an extensionless
		// "gcpdoctor" file, such as the binary itself.
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", ConfigDirName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errUtils.Build(errUtils.ErrLoadConfig).WithCause(err).Err()
		}
		log.Debug("No config file found, using defaults and environment")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errUtils.Build(errUtils.ErrLoadConfig).WithCause(err).Err()
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	cfg.resolve()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug("Resolved configuration",
		"credentials_path", cfg.CredentialsPath,
		"bucket", cfg.Bucket,
		"mlflow_tracking_uri", cfg.MLflowTrackingURI,
		"dvc_remote_url", cfg.DVCRemoteURL,
		"config_file", cfg.ConfigFile,
	)
	return &cfg, nil
}

// resolve fills in values derived from other values.
func (c *Config) resolve() {
	if c.CredentialsPath == "" {
		c.CredentialsPath = gcp.DefaultCredentialsPath()
	}
	c.CredentialsPath = expandPath(c.CredentialsPath)

	if c.MLflowTrackingURI == "" {
		c.MLflowTrackingURI = fmt.Sprintf(mlflowTrackingPathFormat, c.Bucket)
	}
	if c.DVCRemoteURL == "" {
		c.DVCRemoteURL = fmt.Sprintf(dvcStoragePathFormat, c.Bucket)
	}
}

// Validate checks the values a check cannot run without.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.DVCRemoteName) == "":
		return fmt.Errorf(errUtils.ErrStringWrappingFormat, errUtils.ErrInvalidConfig, "dvc_remote_name must not be empty")
	case c.Timeouts.API <= 0, c.Timeouts.DVCStatus <= 0, c.Timeouts.MLflow <= 0:
		return fmt.Errorf(errUtils.ErrStringWrappingFormat, errUtils.ErrInvalidConfig, "timeouts must be positive")
	}
	return nil
}

// ProbeBucket is the bucket the API probe should read, or "" when bucket verification is off
// or the bucket is still the placeholder.
func (c *Config) ProbeBucket() string {
	if !c.VerifyBucket || c.Bucket == DefaultBucket {
		return ""
	}
	return c.Bucket
}

func expandPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
