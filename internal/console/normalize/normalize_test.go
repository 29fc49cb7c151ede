package normalize

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traveldesk/internal/console/models"
	"traveldesk/internal/logging"
)

func newNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	return New(logging.NewSlogLogger(slog.New(slog.DiscardHandler)))
}

func TestID_Precedence(t *testing.T) {
	n := newNormalizer(t)

	tests := []struct {
		name         string
		raw          any
		businessKey  string
		wantID       int64
		wantFallback bool
	}{
		{"valid number", float64(7), "k", 7, false},
		{"valid int", 42, "k", 42, false},
		{"numeric string", "7", "k", 7, false},
		{"numeric string large", "123456", "k", 123456, false},
		{"non-numeric string is hashed", "ABC", "k", 64579, true},
		{"negative number uses business key", float64(-3), "X", 89, true},
		{"fractional number uses business key", 7.5, "X", 89, true},
		{"absent id uses business key", nil, "X", 89, true},
		{"absent id and key", nil, "", HashID("unknown"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, fallback := n.ID(tc.raw, tc.businessKey)
			assert.Equal(t, tc.wantID, id)
			assert.Equal(t, tc.wantFallback, fallback)
		})
	}
}

func TestID_AlwaysPositive(t *testing.T) {
	n := newNormalizer(t)

	inputs := []any{nil, "", "abc", "-5", "0", float64(0), float64(-1), true, []any{1}, map[string]any{}}
	for _, raw := range inputs {
		id, _ := n.ID(raw, "")
		assert.Positivef(t, id, "raw=%v", raw)
		assert.LessOrEqual(t, id, int64(1_000_000))
	}
}

func TestHashID_Deterministic(t *testing.T) {
	first := HashID("not-a-number")
	second := HashID("not-a-number")
	assert.Equal(t, first, second)
	assert.Positive(t, first)
	assert.LessOrEqual(t, first, int64(1_000_000))
}

func TestAccount_DefaultsAndTotality(t *testing.T) {
	n := newNormalizer(t)
	ctx := context.Background()

	t.Run("well-formed payload passes through", func(t *testing.T) {
		a := n.Account(ctx, models.Payload{
			"id":        "12",
			"fullName":  "Jane Smith",
			"email":     "jane@example.com",
			"phone":     "5550001111",
			"role":      "Admin",
			"status":    "Inactive",
			"createdAt": "2025-01-01T00:00:00.000Z",
			"updatedAt": "2025-02-01T00:00:00.000Z",
		})
		assert.Equal(t, int64(12), a.ID)
		assert.Equal(t, "Jane Smith", a.FullName)
		assert.Equal(t, models.RoleAdmin, a.Role)
		assert.Equal(t, models.StatusInactive, a.Status)
		assert.Equal(t, "2025-01-01T00:00:00.000Z", a.CreatedAt)
	})

	t.Run("unknown enums fall back", func(t *testing.T) {
		a := n.Account(ctx, models.Payload{"id": float64(1), "role": "Superuser", "status": 42})
		assert.Equal(t, models.RoleViewer, a.Role)
		assert.Equal(t, models.StatusActive, a.Status)
	})

	t.Run("createdAt falls back to updatedAt", func(t *testing.T) {
		a := n.Account(ctx, models.Payload{"id": float64(1), "updatedAt": "2025-03-01T00:00:00.000Z"})
		assert.Equal(t, "2025-03-01T00:00:00.000Z", a.CreatedAt)
		assert.Equal(t, "2025-03-01T00:00:00.000Z", a.UpdatedAt)
	})

	t.Run("empty payload still yields a valid record", func(t *testing.T) {
		a := n.Account(ctx, models.Payload{})
		assert.Positive(t, a.ID)
		assert.Equal(t, "", a.FullName)
		assert.NotEmpty(t, a.CreatedAt)
		assert.NotEmpty(t, a.UpdatedAt)
	})

	t.Run("same malformed payload normalizes identically", func(t *testing.T) {
		p := models.Payload{"id": "legacy-record", "email": "x@y.z"}
		first := n.Account(ctx, p)
		second := n.Account(ctx, p)
		assert.Equal(t, first.ID, second.ID)
	})
}

func TestBooking_DefaultsAndTotality(t *testing.T) {
	n := newNormalizer(t)
	ctx := context.Background()

	t.Run("id hashed from booking code when absent", func(t *testing.T) {
		b := n.Booking(ctx, models.Payload{"bookingCode": "X"})
		assert.Equal(t, int64(89), b.ID)
	})

	t.Run("unknown status falls back to Created", func(t *testing.T) {
		b := n.Booking(ctx, models.Payload{"id": float64(3), "bookingStatus": "Pending"})
		assert.Equal(t, models.BookingCreated, b.Status)
	})

	t.Run("travel date defaults to now", func(t *testing.T) {
		b := n.Booking(ctx, models.Payload{"id": float64(3)})
		require.NotEmpty(t, b.TravelDate)
	})

	t.Run("well-formed payload passes through", func(t *testing.T) {
		b := n.Booking(ctx, models.Payload{
			"id":            float64(5),
			"bookingCode":   "BK-1001",
			"customerName":  "John Doe",
			"source":        "Boston",
			"destination":   "Chicago",
			"travelDate":    "2026-04-01",
			"bookingStatus": "Confirmed",
		})
		assert.Equal(t, int64(5), b.ID)
		assert.Equal(t, "BK-1001", b.Code)
		assert.Equal(t, models.BookingConfirmed, b.Status)
	})
}
