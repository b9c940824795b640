package gcp

import (
	"encoding/json"
	"os"
	"strings"

	errUtils "github.com/mlstack/gcpdoctor/errors"
	log "github.com/mlstack/gcpdoctor/pkg/logger"
)

// TypeImpersonatedServiceAccount is the ADC "type" written for service-account impersonation.
const TypeImpersonatedServiceAccount = "impersonated_service_account"

// Credentials holds the fields of an ADC file that gcpdoctor inspects.
type Credentials struct {
	Type                           string          `json:"type"`
	ServiceAccountImpersonationURL string          `json:"service_account_impersonation_url,omitempty"`
	Delegates                      []string        `json:"delegates,omitempty"`
	QuotaProjectID                 string          `json:"quota_project_id,omitempty"`
	SourceCredentials              json.RawMessage `json:"source_credentials,omitempty"`

	// Path is the file the credentials were read from.
	Path string `json:"-"`
	// Raw is the file content, kept for the API probe.
	Raw []byte `json:"-"`
}

// ReadCredentials reads and decodes the ADC file at path.
// A missing file returns ErrCredentialsNotFound; anything else that goes wrong returns
// ErrReadCredentials with the cause attached.
func ReadCredentials(path string) (*Credentials, error) {
	if !FileExists(path) {
		return nil, errUtils.Build(errUtils.ErrCredentialsNotFound).
			WithContext("path", path).
			Err()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrReadCredentials).WithCause(err).Err()
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, errUtils.Build(errUtils.ErrReadCredentials).WithCause(err).Err()
	}
	creds.Path = path
	creds.Raw = data

	log.Debug("Read application default credentials", "path", path, "type", creds.Type)
	return &creds, nil
}

// IsImpersonated reports whether the credentials use service-account impersonation.
func (c *Credentials) IsImpersonated() bool {
	return c != nil && c.Type == TypeImpersonatedServiceAccount
}

// ServiceAccount returns the impersonated account identifier, or "" if there is none.
func (c *Credentials) ServiceAccount() string {
	if c == nil {
		return ""
	}
	return ServiceAccountFromURL(c.ServiceAccountImpersonationURL)
}

// ServiceAccountFromURL extracts the account identifier from an impersonation URL: the last
// '/'-separated segment, cut at the first ':'.
func ServiceAccountFromURL(impersonationURL string) string {
	segment := impersonationURL
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	account, _, _ := strings.Cut(segment, ":")
	return account
}

// FileExists reports whether path names an existing file or directory.
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
