package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhishek622/moviereviews/auth/internal/repository/memory"
)

func TestLifecycle(t *testing.T) {
	repo := memory.New("")
	s := New(context.Background(), repo, nil)

	assert.False(t, s.IsAuthenticated())
	_, ok := s.Credential()
	assert.False(t, ok)

	s.SetCredential("token-1")
	assert.True(t, s.IsAuthenticated())
	got, ok := s.Credential()
	assert.True(t, ok)
	assert.Equal(t, "token-1", got)
	stored, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", stored)

	s.ClearCredential()
	assert.False(t, s.IsAuthenticated())
	_, err = repo.Get(context.Background())
	assert.Error(t, err)
}

func TestNewReadsPersistedCredential(t *testing.T) {
	s := New(context.Background(), memory.New("persisted"), nil)
	got, ok := s.Credential()
	assert.True(t, ok)
	assert.Equal(t, "persisted", got)
}

func TestBlankCredentialClears(t *testing.T) {
	s := NewInMemory("token")
	s.SetCredential("   ")
	assert.False(t, s.IsAuthenticated())
}

type failingRepository struct{}

func (failingRepository) Get(context.Context) (string, error) { return "", errors.New("disk gone") }
func (failingRepository) Put(context.Context, string) error    { return errors.New("disk gone") }
func (failingRepository) Delete(context.Context) error         { return errors.New("disk gone") }

func TestPersistenceFailuresDoNotFailTheGate(t *testing.T) {
	s := New(context.Background(), failingRepository{}, nil)
	assert.False(t, s.IsAuthenticated())

	s.SetCredential("token")
	assert.True(t, s.IsAuthenticated())

	s.ClearCredential()
	assert.False(t, s.IsAuthenticated())
}

func TestOpenPersistsAcrossSessions(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	s, closer, err := Open(ctx, path, nil)
	require.NoError(t, err)
	s.SetCredential("token-2")
	require.NoError(t, closer.Close())

	s, closer, err = Open(ctx, path, nil)
	require.NoError(t, err)
	defer closer.Close()
	got, ok := s.Credential()
	assert.True(t, ok)
	assert.Equal(t, "token-2", got)
}

func TestUsername(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "viewer@example.com",
	}).SignedString([]byte("test-secrets"))
	require.NoError(t, err)

	assert.Equal(t, "viewer@example.com", NewInMemory(signed).Username())
	assert.Equal(t, "", NewInMemory("opaque-token").Username())
	assert.Equal(t, "", NewInMemory("").Username())
}
