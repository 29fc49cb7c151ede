package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traveldesk/internal/console/models"
	"traveldesk/internal/logging"
)

func newStore(t *testing.T, handler http.Handler, timeout time.Duration) *HTTPStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPStore(srv.URL, timeout, logging.NewSlogLogger(slog.New(slog.DiscardHandler)))
}

func TestHTTPStore_List(t *testing.T) {
	s := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/accounts", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "1"}, {"id": "2"}})
	}), time.Second)

	got, err := s.List(context.Background(), "accounts")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Str("id"))
}

func TestHTTPStore_Query_EncodesParams(t *testing.T) {
	s := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "jane@example.com", r.URL.Query().Get("email"))
		_ = json.NewEncoder(w).Encode([]map[string]any{{"email": "jane@example.com"}})
	}), time.Second)

	got, err := s.Query(context.Background(), "users", "email", "jane@example.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestHTTPStore_Get_NotFound(t *testing.T) {
	s := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}), time.Second)

	_, err := s.Get(context.Background(), "accounts", "99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPStore_Create_EchoesBody(t *testing.T) {
	s := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var doc map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		assert.Equal(t, "6", doc["id"])
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(doc)
	}), time.Second)

	got, err := s.Create(context.Background(), "accounts", models.Payload{"id": "6", "fullName": "X"})
	require.NoError(t, err)
	assert.Equal(t, "6", got.Str("id"))
}

func TestHTTPStore_Delete(t *testing.T) {
	deleted := ""
	s := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		deleted = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}), time.Second)

	require.NoError(t, s.Delete(context.Background(), "bookings", "3"))
	assert.Equal(t, "/bookings/3", deleted)
}

func TestHTTPStore_TimeoutBudget(t *testing.T) {
	s := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}), 50*time.Millisecond)

	_, err := s.List(context.Background(), "accounts")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestHTTPStore_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	s := NewHTTPStore(srv.URL, time.Second, logging.NewSlogLogger(slog.New(slog.DiscardHandler)))
	_, err := s.List(context.Background(), "accounts")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPStore_ServerError(t *testing.T) {
	s := newStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}), time.Second)

	_, err := s.List(context.Background(), "accounts")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.NotErrorIs(t, err, ErrNotFound)
}
