package models

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingCreated   BookingStatus = "Created"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingCompleted BookingStatus = "Completed"
)

// Booking is one travel booking record as seen by the console.
type Booking struct {
	ID           int64         `json:"id"`
	Code         string        `json:"bookingCode"`
	CustomerName string        `json:"customerName"`
	Source       string        `json:"source"`
	Destination  string        `json:"destination"`
	TravelDate   string        `json:"travelDate"`
	Status       BookingStatus `json:"bookingStatus"`
	CreatedAt    string        `json:"createdAt"`
	UpdatedAt    string        `json:"updatedAt"`
}

// BookingInput carries the editable fields of a booking.
type BookingInput struct {
	Code         string
	CustomerName string
	Source       string
	Destination  string
	TravelDate   string
	Status       BookingStatus
}

// ValidBookingStatus reports whether s is one of the known booking statuses.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingCreated, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}
