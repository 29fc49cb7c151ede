// Package api defines the narrow contract between the console and the
// schema-less REST store, plus its HTTP implementation. Bodies are raw
// payloads on purpose: repairing them is the normalizer's job, not the
// transport's.
package api

import (
	"context"
	"errors"

	"traveldesk/internal/console/models"
)

var (
	// ErrNotFound means the store has no record under the requested id.
	ErrNotFound = errors.New("not found")

	// ErrTimeout means the call exceeded the console's own time budget,
	// as opposed to an error reported by the store.
	ErrTimeout = errors.New("request timed out")

	// ErrUnavailable means the store could not be reached at all.
	ErrUnavailable = errors.New("store unavailable")
)

// Store is the REST collaborator. Every call is bounded by the configured
// request timeout regardless of any transport-level deadline.
type Store interface {
	// List returns the full raw collection for an entity.
	List(ctx context.Context, entity string) ([]models.Payload, error)

	// Query returns the records whose top-level field equals value.
	Query(ctx context.Context, entity, field, value string) ([]models.Payload, error)

	// Get returns one raw record or ErrNotFound.
	Get(ctx context.Context, entity, id string) (models.Payload, error)

	// Create submits a new record and returns the stored echo.
	Create(ctx context.Context, entity string, doc models.Payload) (models.Payload, error)

	// Update replaces the record under id and returns the stored echo.
	Update(ctx context.Context, entity, id string, doc models.Payload) (models.Payload, error)

	// Delete removes the record under id.
	Delete(ctx context.Context, entity, id string) error
}
