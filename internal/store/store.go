// Package store is the development stand-in for the schema-less REST
// backend: JSON documents in a single sqlite table, no shape validation,
// and ids kept as plain text exactly as clients submit them.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"traveldesk/internal/store/migrations"

	_ "modernc.org/sqlite"
)

// ErrNotFound means no record matched the entity/id pair.
var ErrNotFound = errors.New("record not found")

// Document is one raw stored record.
type Document map[string]any

// Store persists documents per entity collection.
type Store struct {
	db *sql.DB
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the sqlite database at dsn and applies
// migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating store db: %w", err)
	}
	return &Store{db: db}, nil
}

// NewWithDB wraps an already-opened database. Used by tests.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DocID extracts the id of a document as stored text. Numeric ids are
// rendered without an exponent so "6" and 6 address the same record.
func DocID(doc Document) (string, bool) {
	switch v := doc["id"].(type) {
	case string:
		return v, v != ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int:
		return strconv.Itoa(v), true
	}
	return "", false
}

// List returns every document in the entity collection, insertion order.
func (s *Store) List(ctx context.Context, entity string) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT doc FROM records WHERE entity = ? ORDER BY rowid`, entity)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", entity, err)
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var doc Document
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("decoding stored %s document: %w", entity, err)
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// Get returns the first document under id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, entity, id string) (Document, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM records WHERE entity = ? AND id = ? ORDER BY rowid LIMIT 1`,
		entity, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s/%s: %w", entity, id, err)
	}
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decoding stored document: %w", err)
	}
	return doc, nil
}

// Insert appends a document. A missing or empty id gets a generated one.
// Duplicate ids are appended as-is; uniqueness is the clients' problem,
// just like the backend this store mimics.
func (s *Store) Insert(ctx context.Context, entity string, doc Document) (Document, error) {
	id, ok := DocID(doc)
	if !ok {
		id = uuid.NewString()
		doc["id"] = id
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (entity, id, doc) VALUES (?, ?, ?)`, entity, id, string(raw))
	if err != nil {
		return nil, fmt.Errorf("inserting %s/%s: %w", entity, id, err)
	}
	return doc, nil
}

// Replace swaps the document stored under id, returning ErrNotFound when
// there is nothing to replace. The id in the body is forced to the path id.
func (s *Store) Replace(ctx context.Context, entity, id string, doc Document) (Document, error) {
	if _, ok := DocID(doc); !ok {
		doc["id"] = id
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE records SET doc = ? WHERE entity = ? AND id = ?`, string(raw), entity, id)
	if err != nil {
		return nil, fmt.Errorf("replacing %s/%s: %w", entity, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return doc, nil
}

// Delete removes all documents under id (normally one), returning
// ErrNotFound when none existed.
func (s *Store) Delete(ctx context.Context, entity, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE entity = ? AND id = ?`, entity, id)
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", entity, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Seed loads a db.json-style seed file: a top-level object mapping
// collection names to arrays of documents. Existing collections named in
// the file are replaced wholesale.
func (s *Store) Seed(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}
	var collections map[string][]Document
	if err := json.Unmarshal(data, &collections); err != nil {
		return fmt.Errorf("decoding seed file: %w", err)
	}

	for entity, docs := range collections {
		if _, err := s.db.ExecContext(ctx,
			`DELETE FROM records WHERE entity = ?`, entity); err != nil {
			return fmt.Errorf("clearing %s: %w", entity, err)
		}
		for _, doc := range docs {
			if _, err := s.Insert(ctx, entity, doc); err != nil {
				return err
			}
		}
	}
	return nil
}
