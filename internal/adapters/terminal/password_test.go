package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamilwords/internal/domain"
)

var _ domain.PasswordReader = (*Adapter)(nil)

func TestReadPassword_FromEnvironment(t *testing.T) {
	// Arrange
	adapter := NewAdapter(strings.NewReader(""), &bytes.Buffer{})
	adapter.getenv = func(key string) string {
		if key == PasswordEnvVar {
			return "s3cret"
		}
		return ""
	}

	// Act
	password, err := adapter.ReadPassword(context.Background(), "Password: ")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "s3cret", password)
}

func TestReadPassword_NonInteractive(t *testing.T) {
	// Arrange
	stderr := &bytes.Buffer{}
	adapter := NewAdapter(strings.NewReader("typed"), stderr)
	adapter.getenv = func(string) string { return "" }

	// Act
	_, err := adapter.ReadPassword(context.Background(), "Password: ")

	// Assert
	require.ErrorIs(t, err, ErrNonInteractive)
	assert.Empty(t, stderr.String(), "prompt must not be printed without a terminal")
}

func TestReadPassword_CancelledContext(t *testing.T) {
	adapter := NewAdapter(strings.NewReader(""), &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.ReadPassword(ctx, "Password: ")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsInteractive_NonFileReader(t *testing.T) {
	adapter := NewAdapter(strings.NewReader(""), &bytes.Buffer{})

	assert.False(t, adapter.IsInteractive())
}
