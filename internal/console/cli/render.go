package cli

import (
	"fmt"
	"io"

	"traveldesk/internal/console/listview"
	"traveldesk/internal/console/models"
)

func renderAccountsPage(w io.Writer, d listview.Derived[models.Account], c listview.Criteria) {
	fmt.Fprintf(w, "\nAccounts: %d matching, page %d/%d (sort %s %s)\n",
		len(d.Filtered), d.PageNum, d.TotalPages, c.SortField, c.SortDir)
	if c.Search != "" {
		fmt.Fprintf(w, "search: %q\n", c.Search)
	}
	for field, value := range c.Filters {
		fmt.Fprintf(w, "filter: %s=%s\n", field, value)
	}
	fmt.Fprintf(w, "%-6s %-24s %-28s %-12s %-8s %-8s\n",
		"ID", "NAME", "EMAIL", "PHONE", "ROLE", "STATUS")
	for _, a := range d.Page {
		fmt.Fprintf(w, "%-6d %-24s %-28s %-12s %-8s %-8s\n",
			a.ID, a.FullName, a.Email, a.Phone, a.Role, a.Status)
	}
	if len(d.Page) == 0 {
		fmt.Fprintln(w, "(no records on this page)")
	}
}

func renderAccountDetail(w io.Writer, a models.Account) {
	fmt.Fprintf(w, "\nAccount #%d\n", a.ID)
	fmt.Fprintf(w, "  Name:    %s\n", a.FullName)
	fmt.Fprintf(w, "  Email:   %s\n", a.Email)
	fmt.Fprintf(w, "  Phone:   %s\n", a.Phone)
	fmt.Fprintf(w, "  Role:    %s\n", a.Role)
	fmt.Fprintf(w, "  Status:  %s\n", a.Status)
	fmt.Fprintf(w, "  Created: %s\n", a.CreatedAt)
	fmt.Fprintf(w, "  Updated: %s\n", a.UpdatedAt)
}

func renderBookingsPage(w io.Writer, d listview.Derived[models.Booking], c listview.Criteria) {
	fmt.Fprintf(w, "\nBookings: %d matching, page %d/%d (sort %s %s)\n",
		len(d.Filtered), d.PageNum, d.TotalPages, c.SortField, c.SortDir)
	if c.Search != "" {
		fmt.Fprintf(w, "search: %q\n", c.Search)
	}
	for field, value := range c.Filters {
		fmt.Fprintf(w, "filter: %s=%s\n", field, value)
	}
	fmt.Fprintf(w, "%-6s %-10s %-22s %-14s %-14s %-12s %-10s\n",
		"ID", "CODE", "CUSTOMER", "FROM", "TO", "DATE", "STATUS")
	for _, b := range d.Page {
		fmt.Fprintf(w, "%-6d %-10s %-22s %-14s %-14s %-12s %-10s\n",
			b.ID, b.Code, b.CustomerName, b.Source, b.Destination, b.TravelDate, b.Status)
	}
	if len(d.Page) == 0 {
		fmt.Fprintln(w, "(no records on this page)")
	}
}

func renderBookingDetail(w io.Writer, b models.Booking) {
	fmt.Fprintf(w, "\nBooking #%d\n", b.ID)
	fmt.Fprintf(w, "  Code:        %s\n", b.Code)
	fmt.Fprintf(w, "  Customer:    %s\n", b.CustomerName)
	fmt.Fprintf(w, "  From:        %s\n", b.Source)
	fmt.Fprintf(w, "  To:          %s\n", b.Destination)
	fmt.Fprintf(w, "  Travel date: %s\n", b.TravelDate)
	fmt.Fprintf(w, "  Status:      %s\n", b.Status)
	fmt.Fprintf(w, "  Created:     %s\n", b.CreatedAt)
	fmt.Fprintf(w, "  Updated:     %s\n", b.UpdatedAt)
}
