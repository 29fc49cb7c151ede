package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"traveldesk/internal/console/models"
	"traveldesk/internal/logging"
)

// HTTPStore talks to the backend over plain JSON/HTTP.
type HTTPStore struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	log     logging.Logger
}

// NewHTTPStore returns a store rooted at baseURL (e.g. "http://localhost:3000").
// timeout bounds every individual call.
func NewHTTPStore(baseURL string, timeout time.Duration, log logging.Logger) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  &http.Client{},
		log:     log,
	}
}

func (s *HTTPStore) List(ctx context.Context, entity string) ([]models.Payload, error) {
	var out []models.Payload
	if err := s.do(ctx, http.MethodGet, "/"+entity, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HTTPStore) Query(ctx context.Context, entity, field, value string) ([]models.Payload, error) {
	path := "/" + entity + "?" + url.Values{field: {value}}.Encode()
	var out []models.Payload
	if err := s.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HTTPStore) Get(ctx context.Context, entity, id string) (models.Payload, error) {
	var out models.Payload
	if err := s.do(ctx, http.MethodGet, "/"+entity+"/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HTTPStore) Create(ctx context.Context, entity string, doc models.Payload) (models.Payload, error) {
	var out models.Payload
	if err := s.do(ctx, http.MethodPost, "/"+entity, doc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HTTPStore) Update(ctx context.Context, entity, id string, doc models.Payload) (models.Payload, error) {
	var out models.Payload
	if err := s.do(ctx, http.MethodPut, "/"+entity+"/"+url.PathEscape(id), doc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HTTPStore) Delete(ctx context.Context, entity, id string) error {
	return s.do(ctx, http.MethodDelete, "/"+entity+"/"+url.PathEscape(id), nil, nil)
}

// do performs one bounded HTTP exchange. The timeout applied here is the
// console's own budget; exceeding it surfaces as ErrTimeout so callers can
// tell it apart from a store-reported failure.
func (s *HTTPStore) do(ctx context.Context, method, path string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.log.Warn(ctx, "store call exceeded time budget", "method", method, "path", path)
			return ErrTimeout
		}
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("store returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
