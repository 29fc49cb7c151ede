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

const bookingsEntity = "bookings"

// BookingService is the booking mutation coordinator. Same contract as
// AccountService: ids are allocated client-side on create (best effort,
// see AccountService.Create), createdAt survives updates, deletes are hard.
type BookingService interface {
	List(ctx context.Context) ([]models.Booking, error)
	Get(ctx context.Context, id int64) (models.Booking, error)
	Create(ctx context.Context, in models.BookingInput) (models.Booking, error)
	Update(ctx context.Context, id int64, in models.BookingInput) (models.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type bookingService struct {
	store api.Store
	norm  *normalize.Normalizer
	log   logging.Logger
}

func NewBookingService(store api.Store, norm *normalize.Normalizer, log logging.Logger) BookingService {
	return &bookingService{store: store, norm: norm, log: log}
}

func (s *bookingService) List(ctx context.Context) ([]models.Booking, error) {
	payloads, err := s.store.List(ctx, bookingsEntity)
	if err != nil {
		return nil, fmt.Errorf("loading bookings: %w", err)
	}
	out := make([]models.Booking, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, s.norm.Booking(ctx, p))
	}
	return out, nil
}

func (s *bookingService) Get(ctx context.Context, id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, ErrInvalidID
	}
	p, err := s.store.Get(ctx, bookingsEntity, strconv.FormatInt(id, 10))
	if err != nil {
		return models.Booking{}, fmt.Errorf("loading booking %d: %w", id, err)
	}
	return s.norm.Booking(ctx, p), nil
}

func (s *bookingService) Create(ctx context.Context, in models.BookingInput) (models.Booking, error) {
	if ve := ValidateBookingInput(in); len(ve) > 0 {
		return models.Booking{}, ve
	}

	existing, err := s.List(ctx)
	if err != nil {
		return models.Booking{}, err
	}
	next := int64(0)
	for _, b := range existing {
		if b.ID > next {
			next = b.ID
		}
	}
	next++

	now := models.NowISO()
	doc := models.Payload{
		"id":            strconv.FormatInt(next, 10),
		"bookingCode":   in.Code,
		"customerName":  in.CustomerName,
		"source":        in.Source,
		"destination":   in.Destination,
		"travelDate":    in.TravelDate,
		"bookingStatus": string(in.Status),
		"createdAt":     now,
		"updatedAt":     now,
	}

	echo, err := s.store.Create(ctx, bookingsEntity, doc)
	if err != nil {
		s.log.Error(ctx, "booking create failed", "err", err)
		return models.Booking{}, fmt.Errorf("creating booking: %w", err)
	}
	return s.norm.Booking(ctx, echo), nil
}

func (s *bookingService) Update(ctx context.Context, id int64, in models.BookingInput) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, ErrInvalidID
	}
	if ve := ValidateBookingInput(in); len(ve) > 0 {
		return models.Booking{}, ve
	}

	key := strconv.FormatInt(id, 10)
	existing, err := s.store.Get(ctx, bookingsEntity, key)
	if err != nil {
		return models.Booking{}, fmt.Errorf("loading booking %d: %w", id, err)
	}

	doc := models.Payload{}
	for k, v := range existing {
		doc[k] = v
	}
	doc["bookingCode"] = in.Code
	doc["customerName"] = in.CustomerName
	doc["source"] = in.Source
	doc["destination"] = in.Destination
	doc["travelDate"] = in.TravelDate
	doc["bookingStatus"] = string(in.Status)
	doc["updatedAt"] = models.NowISO()

	echo, err := s.store.Update(ctx, bookingsEntity, key, doc)
	if err != nil {
		s.log.Error(ctx, "booking update failed", "id", id, "err", err)
		return models.Booking{}, fmt.Errorf("updating booking %d: %w", id, err)
	}
	return s.norm.Booking(ctx, echo), nil
}

func (s *bookingService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.store.Delete(ctx, bookingsEntity, strconv.FormatInt(id, 10)); err != nil {
		s.log.Error(ctx, "booking delete failed", "id", id, "err", err)
		return fmt.Errorf("deleting booking %d: %w", id, err)
	}
	return nil
}
