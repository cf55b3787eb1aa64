// Package bolt persists the session credential in a BoltDB file.
package bolt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel"

	"github.com/abhishek622/moviereviews/auth/internal/repository"
)

const (
	tracerID = "session-repository-bolt"

	dbFileMode = 0600
	dbDirMode  = 0755
	openWait   = time.Second
)

var (
	sessionBucket = []byte("session")
	tokenKey      = []byte("access_token")
)

// Repository defines a BoltDB credential repository.
type Repository struct {
	db *bolt.DB
}

// New opens (creating if needed) the database file at path.
func New(path string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	db, err := bolt.Open(path, dbFileMode, &bolt.Options{Timeout: openWait})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create session bucket: %w", err)
	}
	return &Repository{db: db}, nil
}

// Close closes the database file.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Get returns the stored token or repository.ErrNotFound.
func (r *Repository) Get(ctx context.Context) (string, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()

	var token string
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(sessionBucket).Get(tokenKey)
		if len(v) == 0 {
			return repository.ErrNotFound
		}
		token = string(v)
		return nil
	})
	return token, err
}

// Put stores a token, replacing any previous one.
func (r *Repository) Put(ctx context.Context, token string) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Put")
	defer span.End()

	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Put(tokenKey, []byte(token))
	})
}

// Delete removes the stored token. Deleting an absent token is not an error.
func (r *Repository) Delete(ctx context.Context) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Delete")
	defer span.End()

	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Delete(tokenKey)
	})
}
