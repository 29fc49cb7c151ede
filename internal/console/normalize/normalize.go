// Package normalize repairs raw records coming from the schema-less store
// into well-formed models. The store offers no guarantees about field
// presence or types, and historical writes left behind ids that are
// numbers, numeric strings, or arbitrary text. Normalization is total:
// any payload produces a usable record with a positive integer id.
package normalize

import (
	"context"
	"math"
	"strconv"
	"unicode/utf16"

	"traveldesk/internal/console/models"
	"traveldesk/internal/logging"
)

// Normalizer turns payloads into records. It is stateless apart from the
// logger used at the fallback observation points.
type Normalizer struct {
	log logging.Logger
}

func New(log logging.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// Account normalizes a raw payload into an Account. Unknown enum values
// fall back to Viewer/Active, missing text fields to "", and timestamps
// to createdAt -> updatedAt -> now.
func (n *Normalizer) Account(ctx context.Context, p models.Payload) models.Account {
	id, fallback := n.id(p["id"], p.Str("email"))
	if fallback {
		n.log.Debug(ctx, "id fallback taken", "entity", "accounts", "raw_id", p["id"], "id", id)
	}

	role := models.Role(p.Str("role"))
	if !models.ValidRole(role) {
		role = models.RoleViewer
	}
	status := models.Status(p.Str("status"))
	if !models.ValidStatus(status) {
		status = models.StatusActive
	}

	createdAt, updatedAt := timestamps(p)

	return models.Account{
		ID:        id,
		FullName:  p.Str("fullName"),
		Email:     p.Str("email"),
		Phone:     p.Str("phone"),
		Role:      role,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Booking normalizes a raw payload into a Booking. The id fallback hashes
// the booking code when the id itself is unusable.
func (n *Normalizer) Booking(ctx context.Context, p models.Payload) models.Booking {
	id, fallback := n.id(p["id"], p.Str("bookingCode"))
	if fallback {
		n.log.Debug(ctx, "id fallback taken", "entity", "bookings", "raw_id", p["id"], "id", id)
	}

	status := models.BookingStatus(p.Str("bookingStatus"))
	if !models.ValidBookingStatus(status) {
		status = models.BookingCreated
	}

	createdAt, updatedAt := timestamps(p)

	travelDate := p.Str("travelDate")
	if travelDate == "" {
		travelDate = models.NowISO()
	}

	return models.Booking{
		ID:           id,
		Code:         p.Str("bookingCode"),
		CustomerName: p.Str("customerName"),
		Source:       p.Str("source"),
		Destination:  p.Str("destination"),
		TravelDate:   travelDate,
		Status:       status,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// ID normalizes an arbitrary raw id. businessKey is hashed when the id is
// absent or not string-shaped at all. The second return value reports
// whether the hash fallback was taken.
func (n *Normalizer) ID(raw any, businessKey string) (int64, bool) {
	return n.id(raw, businessKey)
}

func (n *Normalizer) id(raw any, businessKey string) (int64, bool) {
	switch v := raw.(type) {
	case float64:
		// JSON numbers decode as float64. Only finite positive integral
		// values may pass through unchanged; anything else is hashed.
		if v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v) && v == math.Trunc(v) && v <= math.MaxInt64 {
			return int64(v), false
		}
	case int64:
		if v > 0 {
			return v, false
		}
	case int:
		if v > 0 {
			return int64(v), false
		}
	case string:
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			return parsed, false
		}
		return HashID(v), true
	}
	// Absent or hopeless id: derive from the business key instead.
	key := businessKey
	if key == "" {
		key = "unknown"
	}
	return HashID(key), true
}

// HashID derives a deterministic id in [1, 1000000] from a string using
// the 31-based rolling hash over UTF-16 code units, wrapped to signed
// 32 bits. The same input always yields the same id, so repeated
// normalization of the same malformed record is idempotent.
func HashID(s string) int64 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v%1_000_000 + 1
}

// timestamps resolves createdAt and updatedAt with the fallback chain
// createdAt -> updatedAt -> now; updatedAt falls back to now directly.
func timestamps(p models.Payload) (createdAt, updatedAt string) {
	now := models.NowISO()
	updatedAt = p.Str("updatedAt")
	if updatedAt == "" {
		updatedAt = now
	}
	createdAt = p.Str("createdAt")
	if createdAt == "" {
		createdAt = p.Str("updatedAt")
	}
	if createdAt == "" {
		createdAt = now
	}
	return createdAt, updatedAt
}
