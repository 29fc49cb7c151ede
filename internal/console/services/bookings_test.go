package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traveldesk/internal/console/models"
)

func validBookingInput() models.BookingInput {
	return models.BookingInput{
		Code:         "BK-1001",
		CustomerName: "John Doe",
		Source:       "Boston",
		Destination:  "Chicago",
		TravelDate:   "2026-04-01",
		Status:       models.BookingConfirmed,
	}
}

func TestBookingCreate_AssignsNextID(t *testing.T) {
	store := newFakeStore()
	store.collections[bookingsEntity] = []models.Payload{
		{"id": "9", "bookingCode": "BK-9"},
		{"id": "BAD-ID", "bookingCode": "BK-X"}, // normalizes via hash, may exceed 9
	}
	norm, log := testDeps(t)
	svc := NewBookingService(store, norm, log)

	created, err := svc.Create(context.Background(), validBookingInput())
	require.NoError(t, err)

	// Max is taken over normalized ids, hashed ones included.
	hashed, _ := norm.ID("BAD-ID", "BK-X")
	want := hashed + 1
	if want < 10 {
		want = 10
	}
	assert.Equal(t, want, created.ID)
	require.Len(t, store.created, 1)
}

func TestBookingCreate_RejectsInvalidInput(t *testing.T) {
	store := newFakeStore()
	norm, log := testDeps(t)
	svc := NewBookingService(store, norm, log)

	in := validBookingInput()
	in.Code = ""
	in.Status = "Pending"

	_, err := svc.Create(context.Background(), in)

	var ve ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve, 2)
}

func TestBookingUpdate_PreservesCreatedAt(t *testing.T) {
	store := newFakeStore()
	store.collections[bookingsEntity] = []models.Payload{{
		"id":            "2",
		"bookingCode":   "BK-2",
		"customerName":  "Old Name",
		"source":        "A",
		"destination":   "B",
		"travelDate":    "2026-01-01",
		"bookingStatus": "Created",
		"createdAt":     "2021-03-01T00:00:00.000Z",
		"updatedAt":     "2021-03-02T00:00:00.000Z",
	}}
	norm, log := testDeps(t)
	svc := NewBookingService(store, norm, log)

	updated, err := svc.Update(context.Background(), 2, validBookingInput())
	require.NoError(t, err)

	assert.Equal(t, "John Doe", updated.CustomerName)
	assert.Equal(t, "2021-03-01T00:00:00.000Z", updated.CreatedAt)
	assert.Greater(t, updated.UpdatedAt, "2021-03-02T00:00:00.000Z")
}

func TestBookingList_NormalizesStatuses(t *testing.T) {
	store := newFakeStore()
	store.collections[bookingsEntity] = []models.Payload{
		{"id": "1", "bookingStatus": "Confirmed"},
		{"id": "2", "bookingStatus": "Nonsense"},
	}
	norm, log := testDeps(t)
	svc := NewBookingService(store, norm, log)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.BookingConfirmed, got[0].Status)
	assert.Equal(t, models.BookingCreated, got[1].Status)
}

func TestBookingDelete(t *testing.T) {
	store := newFakeStore()
	store.collections[bookingsEntity] = []models.Payload{{"id": "3"}}
	norm, log := testDeps(t)
	svc := NewBookingService(store, norm, log)

	require.NoError(t, svc.Delete(context.Background(), 3))
	assert.Equal(t, []string{"bookings/3"}, store.deleted)
}
