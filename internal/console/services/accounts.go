// Package services holds the mutation coordinators for the two record
// types and the session service. A coordinator fetches raw collections,
// runs them through the normalizer, allocates ids for creates, and keeps
// createdAt stable across updates. After a successful mutation the owning
// screen refetches the whole collection; nothing here patches a cache in
// place.
package services

import (
	"context"
	"fmt"
	"strconv"

	"traveldesk/internal/console/api"
	"traveldesk/internal/console/models"
	"traveldesk/internal/console/normalize"
	"traveldesk/internal/logging"
)

// The store keeps accounts under the legacy "users" collection name.
const accountsEntity = "users"

// AccountService is the account mutation coordinator.
type AccountService interface {
	List(ctx context.Context) ([]models.Account, error)
	Get(ctx context.Context, id int64) (models.Account, error)
	Create(ctx context.Context, in models.AccountInput) (models.Account, error)
	Update(ctx context.Context, id int64, in models.AccountInput) (models.Account, error)
	Delete(ctx context.Context, id int64) error
}

type accountService struct {
	store api.Store
	norm  *normalize.Normalizer
	log   logging.Logger
}

func NewAccountService(store api.Store, norm *normalize.Normalizer, log logging.Logger) AccountService {
	return &accountService{store: store, norm: norm, log: log}
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	payloads, err := s.store.List(ctx, accountsEntity)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	out := make([]models.Account, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, s.norm.Account(ctx, p))
	}
	return out, nil
}

func (s *accountService) Get(ctx context.Context, id int64) (models.Account, error) {
	if id <= 0 {
		return models.Account{}, ErrInvalidID
	}
	p, err := s.store.Get(ctx, accountsEntity, strconv.FormatInt(id, 10))
	if err != nil {
		return models.Account{}, fmt.Errorf("loading account %d: %w", id, err)
	}
	return s.norm.Account(ctx, p), nil
}

// Create allocates the next numeric id by scanning the current collection
// and submits the record with the id pre-assigned (as a string, matching
// what the store keeps). The read-scan-submit sequence is not atomic: two
// concurrent creates over the same snapshot will propose the same id.
// Best effort only; the store does not allocate ids itself.
func (s *accountService) Create(ctx context.Context, in models.AccountInput) (models.Account, error) {
	if ve := ValidateAccountInput(in); len(ve) > 0 {
		return models.Account{}, ve
	}

	existing, err := s.List(ctx)
	if err != nil {
		return models.Account{}, err
	}
	next := int64(0)
	for _, a := range existing {
		if a.ID > next {
			next = a.ID
		}
	}
	next++

	now := models.NowISO()
	doc := models.Payload{
		"id":        strconv.FormatInt(next, 10),
		"fullName":  in.FullName,
		"email":     in.Email,
		"phone":     in.Phone,
		"role":      string(in.Role),
		"status":    string(in.Status),
		"createdAt": now,
		"updatedAt": now,
	}

	echo, err := s.store.Create(ctx, accountsEntity, doc)
	if err != nil {
		s.log.Error(ctx, "account create failed", "err", err)
		return models.Account{}, fmt.Errorf("creating account: %w", err)
	}
	return s.norm.Account(ctx, echo), nil
}

// Update merges the validated fields over the stored record, preserving
// createdAt and rewriting updatedAt.
func (s *accountService) Update(ctx context.Context, id int64, in models.AccountInput) (models.Account, error) {
	if id <= 0 {
		return models.Account{}, ErrInvalidID
	}
	if ve := ValidateAccountInput(in); len(ve) > 0 {
		return models.Account{}, ve
	}

	key := strconv.FormatInt(id, 10)
	existing, err := s.store.Get(ctx, accountsEntity, key)
	if err != nil {
		return models.Account{}, fmt.Errorf("loading account %d: %w", id, err)
	}

	doc := models.Payload{}
	for k, v := range existing {
		doc[k] = v
	}
	doc["fullName"] = in.FullName
	doc["email"] = in.Email
	doc["phone"] = in.Phone
	doc["role"] = string(in.Role)
	doc["status"] = string(in.Status)
	doc["updatedAt"] = models.NowISO()

	echo, err := s.store.Update(ctx, accountsEntity, key, doc)
	if err != nil {
		s.log.Error(ctx, "account update failed", "id", id, "err", err)
		return models.Account{}, fmt.Errorf("updating account %d: %w", id, err)
	}
	return s.norm.Account(ctx, echo), nil
}

func (s *accountService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.store.Delete(ctx, accountsEntity, strconv.FormatInt(id, 10)); err != nil {
		s.log.Error(ctx, "account delete failed", "id", id, "err", err)
		return fmt.Errorf("deleting account %d: %w", id, err)
	}
	return nil
}
