// Package session holds the bearer credential of the current user.
//
// A Session is created once at startup from persisted storage and is then
// mutated only by login and logout. Every other component reads it. The
// credential is never refreshed and its expiry is never checked.
package session

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/abhishek622/moviereviews/auth/internal/repository"
	"github.com/abhishek622/moviereviews/auth/internal/repository/bolt"
	"github.com/abhishek622/moviereviews/auth/internal/repository/memory"
)

type tokenRepository interface {
	Get(ctx context.Context) (string, error)
	Put(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// Session is the credential gate. It is safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	token  string
	repo   tokenRepository
	logger *zap.Logger
}

// New creates a session initialised from repo.
func New(ctx context.Context, repo tokenRepository, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{repo: repo, logger: logger}
	token, err := repo.Get(ctx)
	switch {
	case err == nil:
		s.token = token
	case errors.Is(err, repository.ErrNotFound):
	default:
		logger.Warn("Failed to read stored credential", zap.Error(err))
	}
	return s
}

// Open creates a session persisted in the BoltDB file at path. The returned
// closer releases the file.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Session, io.Closer, error) {
	repo, err := bolt.New(path)
	if err != nil {
		return nil, nil, err
	}
	return New(ctx, repo, logger), repo, nil
}

// NewInMemory creates a session that is not persisted, seeded with token.
func NewInMemory(token string) *Session {
	return New(context.Background(), memory.New(token), nil)
}

// IsAuthenticated reports whether a credential is present.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.Credential()
	return ok
}

// Credential returns the current bearer token.
func (s *Session) Credential() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// SetCredential stores a new token. Persistence failures are logged; the
// in-memory credential is updated regardless.
func (s *Session) SetCredential(token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		s.ClearCredential()
		return
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.repo.Put(context.Background(), token); err != nil {
		s.logger.Warn("Failed to persist credential", zap.Error(err))
	}
}

// ClearCredential removes the token.
func (s *Session) ClearCredential() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := s.repo.Delete(context.Background()); err != nil {
		s.logger.Warn("Failed to delete stored credential", zap.Error(err))
	}
}

// Username returns the display identity carried by a JWT credential, or ""
// when there is none. The token signature is not verified.
func (s *Session) Username() string {
	token, ok := s.Credential()
	if !ok {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	for _, key := range []string{"username", "email", "sub"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
