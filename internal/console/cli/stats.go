package cli

import (
	"context"
	"fmt"

	"traveldesk/internal/console/models"
)

// Stats prints the dashboard counts: accounts by status and role, bookings
// by lifecycle state.
func (a *App) Stats(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.toasts.Error("Please log in first")
		return nil
	}

	accounts, err := a.accounts.List(ctx)
	if err != nil {
		a.toasts.Error("Could not load accounts: " + err.Error())
		return nil
	}
	bookings, err := a.bookings.List(ctx)
	if err != nil {
		a.toasts.Error("Could not load bookings: " + err.Error())
		return nil
	}

	active, admins := 0, 0
	for _, acct := range accounts {
		if acct.Status == models.StatusActive {
			active++
		}
		if acct.Role == models.RoleAdmin {
			admins++
		}
	}

	byStatus := map[models.BookingStatus]int{}
	for _, bk := range bookings {
		byStatus[bk.Status]++
	}

	fmt.Fprintf(a.out, "\nAccounts: %d total, %d active, %d admins\n",
		len(accounts), active, admins)
	fmt.Fprintf(a.out, "Bookings: %d total\n", len(bookings))
	for _, status := range []models.BookingStatus{
		models.BookingCreated, models.BookingConfirmed,
		models.BookingCancelled, models.BookingCompleted,
	} {
		fmt.Fprintf(a.out, "  %-10s %d\n", status, byStatus[status])
	}
	return nil
}
