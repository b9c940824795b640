package gcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errUtils "github.com/mlstack/gcpdoctor/errors"
)

func TestAwaitContext_ReturnsResult(t *testing.T) {
	want := errors.New("probe failed")
	err := awaitContext(context.Background(), func() error { return want })
	assert.Equal(t, want, err)
}

func TestAwaitContext_Deadline(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := awaitContext(ctx, func() error {
		<-release
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStorageProber_InvalidCredentials(t *testing.T) {
	p := NewStorageProber("")
	err := p.Probe(context.Background(), &Credentials{
		Type: TypeImpersonatedServiceAccount,
		Raw:  []byte("{not json"),
	})
	assert.ErrorIs(t, err, errUtils.ErrAPIProbe)
}

func TestStorageProber_TypeMismatch(t *testing.T) {
	p := NewStorageProber("")
	err := p.Probe(context.Background(), &Credentials{
		Type: TypeImpersonatedServiceAccount,
		Raw:  []byte(`{"type": "authorized_user", "client_id": "x", "client_secret": "y", "refresh_token": "z"}`),
	})
	assert.ErrorIs(t, err, errUtils.ErrAPIProbe)
}

func TestIsNetworkError(t *testing.T) {
	dnsErr := &net.DNSError{Err: "no such host", Name: "oauth2.googleapis.com", IsNotFound: true}
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"dns", dnsErr, true},
		{"url wrapped", &url.Error{Op: "Post", URL: "https://oauth2.googleapis.com/token", Err: dnsErr}, true},
		{"fmt wrapped", fmt.Errorf("oauth2: cannot fetch token: %w", dnsErr), true},
		{"rejected", errors.New("oauth2: invalid_grant"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNetworkError(tt.err))
		})
	}
}
