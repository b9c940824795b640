package errors

import (
	stderrors "errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_KeepsSentinel(t *testing.T) {
	err := Build(ErrCredentialsNotFound).
		WithHint("Run: gcloud auth application-default login").
		Err()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
	assert.Equal(t, []string{"Run: gcloud auth application-default login"}, Hints(err))
}

func TestBuild_MultipleHints(t *testing.T) {
	err := Build(ErrRemoteNotFound).
		WithHint("first").
		WithHintf("Run: dvc remote add -d %s %s", "gcp-storage", "gs://bucket/dvc-storage").
		Err()

	hints := Hints(err)
	require.Len(t, hints, 2)
	assert.Equal(t, "first", hints[0])
	assert.Equal(t, "Run: dvc remote add -d gcp-storage gs://bucket/dvc-storage", hints[1])
}

func TestBuild_WithCause(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := Build(ErrReadCredentials).WithCause(cause).Err()

	assert.ErrorIs(t, err, ErrReadCredentials)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "error reading credentials: unexpected end of JSON input", err.Error())
}

func TestBuild_WithContextAndSentinel(t *testing.T) {
	base := fmt.Errorf("%w: boom", ErrAPIProbe)
	err := Build(base).
		WithContext("path", "/tmp/creds.json").
		WithSentinel(ErrCreateGCSClient).
		Err()

	assert.ErrorIs(t, err, ErrAPIProbe)
	assert.ErrorIs(t, err, ErrCreateGCSClient)
	assert.Contains(t, err.Error(), "boom")
}

func TestBuild_WithSentinelVisibleToStdlib(t *testing.T) {
	err := Build(ErrCreateGCSClient).
		WithCause(stderrors.New("dial tcp: no such host")).
		WithSentinel(ErrAPIProbe).
		WithHint("check network access").
		Err()

	assert.True(t, stderrors.Is(err, ErrAPIProbe))
	assert.True(t, stderrors.Is(err, ErrCreateGCSClient))
	assert.True(t, errors.Is(err, ErrAPIProbe))
	assert.False(t, stderrors.Is(err, ErrChecksFailed))
	assert.Equal(t, []string{"check network access"}, Hints(err))
	assert.Equal(t, "failed to create GCS client: dial tcp: no such host", err.Error())
}

func TestBuild_WithSentinelAndExitCode(t *testing.T) {
	err := Build(ErrRemoteNotFound).WithSentinel(ErrChecksFailed).WithExitCode(3).Err()

	assert.ErrorIs(t, err, ErrChecksFailed)
	assert.Equal(t, 3, GetExitCode(err))
}

func TestBuild_Nil(t *testing.T) {
	assert.NoError(t, Build(nil).WithHint("ignored").Err())
	assert.Nil(t, Hints(nil))
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain", err: errors.New("x"), want: 1},
		{name: "with exit code", err: WithExitCode(ErrChecksFailed, 3), want: 3},
		{name: "builder exit code", err: Build(ErrChecksFailed).WithExitCode(2).Err(), want: 2},
		{name: "exec exit error", err: fmt.Errorf("wrapped: %w", &exec.ExitError{}), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Empty(t, Format(nil))

	err := Build(ErrChecksFailed).WithHint("Run: gcpdoctor doctor").Err()
	assert.Equal(t, "Error: one or more checks failed\n  Run: gcpdoctor doctor", Format(err))
}

func TestExit(t *testing.T) {
	original := OsExit
	defer func() { OsExit = original }()

	var code int
	OsExit = func(c int) { code = c }
	Exit(4)
	assert.Equal(t, 4, code)
}
