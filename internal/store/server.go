package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"traveldesk/internal/logging"
)

// Server exposes the store over the flat REST surface the console
// expects: GET/POST /{entity}, GET/PUT/DELETE /{entity}/{id}, with
// query parameters on collection GETs matched against top-level fields.
type Server struct {
	store *Store
	log   logging.Logger
}

func NewServer(store *Store, log logging.Logger) *Server {
	return &Server{store: store, log: log}
}

// Handler builds the route table wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("GET /{entity}", s.list)
	mux.HandleFunc("POST /{entity}", s.create)
	mux.HandleFunc("GET /{entity}/{id}", s.get)
	mux.HandleFunc("PUT /{entity}/{id}", s.replace)
	mux.HandleFunc("DELETE /{entity}/{id}", s.delete)
	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info(r.Context(), "request",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start).String())
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	entity := r.PathValue("entity")
	docs, err := s.store.List(r.Context(), entity)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	query := r.URL.Query()
	if len(query) > 0 {
		filtered := make([]Document, 0, len(docs))
		for _, doc := range docs {
			if matchesQuery(doc, query) {
				filtered = append(filtered, doc)
			}
		}
		docs = filtered
	}

	if docs == nil {
		docs = []Document{}
	}
	s.writeJSON(w, r, http.StatusOK, docs)
}

// matchesQuery compares each query parameter against the document's
// top-level field of the same name, string-for-string after rendering.
func matchesQuery(doc Document, query map[string][]string) bool {
	for field, wanted := range query {
		if len(wanted) == 0 {
			continue
		}
		value, ok := doc[field]
		if !ok {
			return false
		}
		if renderValue(value) != wanted[0] {
			return false
		}
	}
	return true
}

func renderValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), r.PathValue("entity"), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, doc)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.readDoc(w, r)
	if !ok {
		return
	}
	created, err := s.store.Insert(r.Context(), r.PathValue("entity"), doc)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) replace(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.readDoc(w, r)
	if !ok {
		return
	}
	updated, err := s.store.Replace(r.Context(), r.PathValue("entity"), r.PathValue("id"), doc)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), r.PathValue("entity"), r.PathValue("id")); err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, Document{})
}

func (s *Server) readDoc(w http.ResponseWriter, r *http.Request) (Document, bool) {
	var doc Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return nil, false
	}
	return doc, true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	s.log.Error(r.Context(), "store error", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error(r.Context(), "encoding response", "error", err)
	}
}
