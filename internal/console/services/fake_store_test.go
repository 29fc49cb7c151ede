package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"traveldesk/internal/console/api"
	"traveldesk/internal/console/models"
	"traveldesk/internal/console/normalize"
	"traveldesk/internal/logging"
)

// fakeStore is an in-memory api.Store. Unless frozen is set, creates and
// updates are reflected in subsequent reads.
type fakeStore struct {
	collections map[string][]models.Payload

	// frozen keeps List returning the initial snapshot even after writes,
	// which is how two racing creates observe the same max id.
	frozen bool

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	created []models.Payload
	deleted []string
}

var _ api.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{collections: map[string][]models.Payload{}}
}

func rawID(p models.Payload) string {
	switch v := p["id"].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case int:
		return fmt.Sprintf("%d", v)
	}
	return ""
}

func (f *fakeStore) List(ctx context.Context, entity string) ([]models.Payload, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Payload(nil), f.collections[entity]...), nil
}

func (f *fakeStore) Query(ctx context.Context, entity, field, value string) ([]models.Payload, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Payload
	for _, p := range f.collections[entity] {
		if p.Str(field) == value {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, entity, id string) (models.Payload, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, p := range f.collections[entity] {
		if rawID(p) == id {
			return p, nil
		}
	}
	return nil, api.ErrNotFound
}

func (f *fakeStore) Create(ctx context.Context, entity string, doc models.Payload) (models.Payload, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, doc)
	if !f.frozen {
		f.collections[entity] = append(f.collections[entity], doc)
	}
	return doc, nil
}

func (f *fakeStore) Update(ctx context.Context, entity, id string, doc models.Payload) (models.Payload, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i, p := range f.collections[entity] {
		if rawID(p) == id {
			f.collections[entity][i] = doc
			return doc, nil
		}
	}
	return nil, api.ErrNotFound
}

func (f *fakeStore) Delete(ctx context.Context, entity, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, entity+"/"+id)
	kept := f.collections[entity][:0]
	for _, p := range f.collections[entity] {
		if rawID(p) != id {
			kept = append(kept, p)
		}
	}
	f.collections[entity] = kept
	return nil
}

func testDeps(t *testing.T) (*normalize.Normalizer, logging.Logger) {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	return normalize.New(log), log
}
