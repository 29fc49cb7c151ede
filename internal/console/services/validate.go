package services

import (
	"regexp"
	"strings"

	"traveldesk/internal/console/models"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

// ValidateAccountInput applies the account form rules: name at least three
// characters, a plausible email, a ten-digit phone, known enum values.
func ValidateAccountInput(in models.AccountInput) ValidationErrors {
	var ve ValidationErrors
	if len(strings.TrimSpace(in.FullName)) < 3 {
		ve = append(ve, FieldError{"fullName", "must be at least 3 characters"})
	}
	if !emailRe.MatchString(in.Email) {
		ve = append(ve, FieldError{"email", "must be a valid email address"})
	}
	if !phoneRe.MatchString(in.Phone) {
		ve = append(ve, FieldError{"phone", "must be exactly 10 digits"})
	}
	if !models.ValidRole(in.Role) {
		ve = append(ve, FieldError{"role", "must be Admin or Viewer"})
	}
	if !models.ValidStatus(in.Status) {
		ve = append(ve, FieldError{"status", "must be Active or Inactive"})
	}
	return ve
}

// ValidateBookingInput applies the booking form rules.
func ValidateBookingInput(in models.BookingInput) ValidationErrors {
	var ve ValidationErrors
	if strings.TrimSpace(in.Code) == "" {
		ve = append(ve, FieldError{"bookingCode", "is required"})
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		ve = append(ve, FieldError{"customerName", "is required"})
	}
	if strings.TrimSpace(in.Source) == "" {
		ve = append(ve, FieldError{"source", "is required"})
	}
	if strings.TrimSpace(in.Destination) == "" {
		ve = append(ve, FieldError{"destination", "is required"})
	}
	if strings.TrimSpace(in.TravelDate) == "" {
		ve = append(ve, FieldError{"travelDate", "is required"})
	}
	if !models.ValidBookingStatus(in.Status) {
		ve = append(ve, FieldError{"bookingStatus", "must be a known status"})
	}
	return ve
}
