package gcp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/mlstack/gcpdoctor/errors"
)

const impersonatedADC = `{
  "type": "impersonated_service_account",
  "service_account_impersonation_url": "https://iamcredentials.googleapis.com/v1/projects/-/serviceAccounts/service-account@project.iam.gserviceaccount.com:generateAccessToken",
  "delegates": [],
  "source_credentials": {"type": "authorized_user", "client_id": "id", "client_secret": "secret", "refresh_token": "token"}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadCredentials_Missing(t *testing.T) {
	creds, err := ReadCredentials(filepath.Join(t.TempDir(), "missing.json"))
	assert.Nil(t, creds)
	assert.ErrorIs(t, err, errUtils.ErrCredentialsNotFound)
}

func TestReadCredentials_Malformed(t *testing.T) {
	path := writeFile(t, "adc.json", "{not json")

	creds, err := ReadCredentials(path)
	assert.Nil(t, creds)
	assert.ErrorIs(t, err, errUtils.ErrReadCredentials)
	assert.Contains(t, err.Error(), "error reading credentials")
}

func TestReadCredentials_Impersonated(t *testing.T) {
	path := writeFile(t, "adc.json", impersonatedADC)

	creds, err := ReadCredentials(path)
	require.NoError(t, err)
	assert.True(t, creds.IsImpersonated())
	assert.Equal(t, "service-account@project.iam.gserviceaccount.com", creds.ServiceAccount())
	assert.Equal(t, path, creds.Path)
	assert.NotEmpty(t, creds.Raw)
	assert.NotEmpty(t, creds.SourceCredentials)
}

func TestReadCredentials_AuthorizedUser(t *testing.T) {
	path := writeFile(t, "adc.json", `{"type": "authorized_user", "client_id": "x"}`)

	creds, err := ReadCredentials(path)
	require.NoError(t, err)
	assert.False(t, creds.IsImpersonated())
	assert.Empty(t, creds.ServiceAccount())
}

func TestServiceAccountFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "iam generateAccessToken",
			url:  "https://iam.googleapis.com/v1/projects/-/serviceAccounts/service-account@project.iam.gserviceaccount.com:generateAccessToken",
			want: "service-account@project.iam.gserviceaccount.com",
		},
		{
			name: "no method suffix",
			url:  "https://iamcredentials.googleapis.com/v1/projects/-/serviceAccounts/sa@p.iam.gserviceaccount.com",
			want: "sa@p.iam.gserviceaccount.com",
		},
		{
			name: "no slashes",
			url:  "sa@p.iam.gserviceaccount.com:generateAccessToken",
			want: "sa@p.iam.gserviceaccount.com",
		},
		{name: "empty", url: "", want: ""},
		{name: "trailing slash", url: "https://example.com/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ServiceAccountFromURL(tt.url))
		})
	}
}

func TestCredentials_NilReceiver(t *testing.T) {
	var c *Credentials
	assert.False(t, c.IsImpersonated())
	assert.Empty(t, c.ServiceAccount())
}

func TestFileExists(t *testing.T) {
	path := writeFile(t, "f", "x")
	assert.True(t, FileExists(path))
	assert.False(t, FileExists(path+".nope"))
	assert.False(t, FileExists(""))
}
