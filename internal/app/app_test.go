package app

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v4"

	"github.com/abhishek622/moviereviews/internal/config"
)

func TestSetup(t *testing.T) {
	fs := afero.NewMemMapFs()
	sessionPath := filepath.Join(t.TempDir(), "session.db")
	content := fmt.Sprintf("api:\n  baseUrl: http://localhost:9999\nsession:\n  path: %s\nlog:\n  level: error\n", sessionPath)
	require.NoError(t, afero.WriteFile(fs, config.DefaultPath, []byte(content), 0o644))

	a, err := Setup(context.Background(), fs, config.DefaultPath, "test")
	require.NoError(t, err)
	require.NotNil(t, a.Client)
	assert.False(t, a.Session.IsAuthenticated())
	assert.Equal(t, tally.NoopScope, a.MetricsScope())

	a.Session.SetCredential("token")
	a.Close()

	again, err := Setup(context.Background(), fs, config.DefaultPath, "test")
	require.NoError(t, err)
	defer again.Close()
	assert.True(t, again.Session.IsAuthenticated())
}

func TestSetupMissingConfig(t *testing.T) {
	_, err := Setup(context.Background(), afero.NewMemMapFs(), config.DefaultPath, "test")
	assert.Error(t, err)
}
