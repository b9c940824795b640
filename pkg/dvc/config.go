package dvc

import (
	"path/filepath"
	"regexp"

	"gopkg.in/ini.v1"

	errUtils "github.com/mlstack/gcpdoctor/errors"
	"github.com/mlstack/gcpdoctor/pkg/gcp"
)

const (
	// ConfigDir is the directory DVC keeps its configuration in, relative to the repo root.
	ConfigDir = ".dvc"

	configFile      = "config"
	localConfigFile = "config.local"
)

// DVC writes remote sections as ['remote "name"'].
var remoteSection = regexp.MustCompile(`^'?remote\s+"([^"]+)"'?$`)

// Config is the part of a DVC repository's configuration gcpdoctor cares about.
type Config struct {
	// DefaultRemote is core.remote.
	DefaultRemote string
	// Remotes maps remote names to URLs.
	Remotes map[string]string
}

// RemoteURL returns the URL of the named remote.
func (c *Config) RemoteURL(name string) (string, bool) {
	url, ok := c.Remotes[name]
	return url, ok
}

// ReadConfig reads .dvc/config and then .dvc/config.local from repoDir; local values win.
func ReadConfig(repoDir string) (*Config, error) {
	dir := filepath.Join(repoDir, ConfigDir)
	if !gcp.FileExists(dir) {
		return nil, errUtils.Build(errUtils.ErrDVCConfigNotFound).
			WithContext("dir", dir).
			Err()
	}

	file, err := ini.LooseLoad(filepath.Join(dir, configFile), filepath.Join(dir, localConfigFile))
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrParseDVCConfig).WithCause(err).Err()
	}

	cfg := &Config{Remotes: map[string]string{}}
	for _, section := range file.Sections() {
		name := section.Name()
		if name == "core" {
			cfg.DefaultRemote = section.Key("remote").String()
			continue
		}
		if m := remoteSection.FindStringSubmatch(name); m != nil {
			cfg.Remotes[m[1]] = section.Key("url").String()
		}
	}

	return cfg, nil
}
