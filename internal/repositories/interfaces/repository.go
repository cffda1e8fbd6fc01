package interfaces

import (
	"context"
	"errors"
	"time"

	"varsha-travels/internal/models"
)

// ErrNotFound is returned when an id is malformed or matches no document.
var ErrNotFound = errors.New("document not found")

// Repository is the persistence contract shared by every resource type.
type Repository[D models.Document] interface {
	// Create assigns the id and timestamps, then inserts.
	Create(ctx context.Context, doc D) error
	GetByID(ctx context.Context, id string) (D, error)
	// List returns every document, newest first.
	List(ctx context.Context) ([]D, error)
	// First returns the oldest document, for singleton collections.
	First(ctx context.Context) (D, error)
	// Replace overwrites the stored document and refreshes UpdatedAt.
	Replace(ctx context.Context, doc D) error
	// Delete removes the document and returns what was stored.
	Delete(ctx context.Context, id string) (D, error)
	Collection() string
}

// CacheService is the subset of the cache the repositories rely on.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Key(parts ...string) string
}
