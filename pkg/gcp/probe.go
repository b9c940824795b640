package gcp

import (
	"context"
	"errors"
	"net"

	"cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"

	errUtils "github.com/mlstack/gcpdoctor/errors"
	log "github.com/mlstack/gcpdoctor/pkg/logger"
)

// Prober verifies that credentials can actually be used against a Google API.
type Prober interface {
	Probe(ctx context.Context, creds *Credentials) error
}

// StorageProber builds a Cloud Storage client from the credentials and fetches an access
// token. When Bucket is set it also reads the bucket's attributes.
type StorageProber struct {
	Bucket string
}

// NewStorageProber creates a StorageProber. An empty bucket skips the bucket read.
func NewStorageProber(bucket string) *StorageProber {
	return &StorageProber{Bucket: bucket}
}

// Probe returns nil when the credentials work, ctx.Err() when the context ends first, and an
// ErrAPIProbe-marked error otherwise.
func (p *StorageProber) Probe(ctx context.Context, creds *Credentials) error {
	return awaitContext(ctx, func() error {
		return p.probe(ctx, creds)
	})
}

func (p *StorageProber) probe(ctx context.Context, creds *Credentials) error {
	gcreds, err := google.CredentialsFromJSONWithType(ctx, creds.Raw, google.CredentialsType(creds.Type), storage.ScopeReadOnly)
	if err != nil {
		return errUtils.Build(errUtils.ErrAPIProbe).WithCause(err).Err()
	}

	client, err := storage.NewClient(ctx, option.WithCredentials(gcreds))
	if err != nil {
		return errUtils.Build(errUtils.ErrCreateGCSClient).
			WithCause(err).
			WithSentinel(errUtils.ErrAPIProbe).
			Err()
	}
	defer client.Close()
	log.Debug("Created Cloud Storage client", "credentials", creds.Path)

	if _, err := gcreds.TokenSource.Token(); err != nil {
		b := errUtils.Build(errUtils.ErrAPIProbe).WithCause(err)
		if isNetworkError(err) {
			b = b.WithSentinel(errUtils.ErrAPIUnreachable)
		}
		return b.Err()
	}
	log.Debug("Fetched access token", "project", gcreds.ProjectID)

	if p.Bucket == "" {
		return nil
	}

	attrs, err := client.Bucket(p.Bucket).Attrs(ctx)
	if err != nil {
		return errUtils.Build(errUtils.ErrAPIProbe).
			WithCause(err).
			WithHintf("Check that the impersonated account can read gs://%s", p.Bucket).
			Err()
	}
	log.Debug("Read bucket attributes", "bucket", attrs.Name, "location", attrs.Location)
	return nil
}

// awaitContext runs fn and returns its error, or ctx.Err() if the context ends first.
// The goroutine running fn is abandoned on timeout; the process exits shortly after.
func awaitContext(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// isNetworkError reports whether err came from the transport (DNS, dial, TLS) rather than
// from Google rejecting the credentials.
func isNetworkError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}
