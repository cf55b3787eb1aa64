package memory

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"

	"github.com/abhishek622/moviereviews/auth/internal/repository"
)

const tracerID = "session-repository-memory"

// Repository defines an in-memory credential repository.
type Repository struct {
	sync.RWMutex
	token string
}

// New creates a new memory repository, optionally seeded with a token.
func New(token string) *Repository {
	return &Repository{token: token}
}

// Get returns the stored token.
func (r *Repository) Get(ctx context.Context) (string, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()

	if r.token == "" {
		return "", repository.ErrNotFound
	}
	return r.token, nil
}

// Put stores a token.
func (r *Repository) Put(ctx context.Context, token string) error {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Put")
	defer span.End()

	r.token = token
	return nil
}

// Delete removes the stored token.
func (r *Repository) Delete(ctx context.Context) error {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Delete")
	defer span.End()

	r.token = ""
	return nil
}
