package listview

import "traveldesk/internal/console/models"

// AccountSchema wires accounts into the pipeline: search over name, email
// and phone; role/status filters; name sort by default.
func AccountSchema() Schema[models.Account] {
	return Schema[models.Account]{
		DefaultSort: "fullName",
		Search: func(a models.Account) []string {
			return []string{a.FullName, a.Email, a.Phone}
		},
		Filter: func(a models.Account, field string) string {
			switch field {
			case "role":
				return string(a.Role)
			case "status":
				return string(a.Status)
			}
			return ""
		},
		Sort: func(a models.Account, field string) Key {
			switch field {
			case "id":
				return NumberKey(a.ID)
			case "fullName":
				return StringKey(a.FullName)
			case "email":
				return StringKey(a.Email)
			case "phone":
				return StringKey(a.Phone)
			case "role":
				return StringKey(string(a.Role))
			case "status":
				return StringKey(string(a.Status))
			case "createdAt":
				return StringKey(a.CreatedAt)
			case "updatedAt":
				return StringKey(a.UpdatedAt)
			}
			return Key{}
		},
	}
}

// BookingSchema wires bookings in: search over code and customer name;
// status filter; travel date sort by default.
func BookingSchema() Schema[models.Booking] {
	return Schema[models.Booking]{
		DefaultSort: "travelDate",
		Search: func(b models.Booking) []string {
			return []string{b.Code, b.CustomerName}
		},
		Filter: func(b models.Booking, field string) string {
			if field == "bookingStatus" {
				return string(b.Status)
			}
			return ""
		},
		Sort: func(b models.Booking, field string) Key {
			switch field {
			case "id":
				return NumberKey(b.ID)
			case "bookingCode":
				return StringKey(b.Code)
			case "customerName":
				return StringKey(b.CustomerName)
			case "source":
				return StringKey(b.Source)
			case "destination":
				return StringKey(b.Destination)
			case "travelDate":
				return StringKey(b.TravelDate)
			case "bookingStatus":
				return StringKey(string(b.Status))
			case "createdAt":
				return StringKey(b.CreatedAt)
			case "updatedAt":
				return StringKey(b.UpdatedAt)
			}
			return Key{}
		},
	}
}
