package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"traveldesk/internal/console/api"
	"traveldesk/internal/console/confirm"
	"traveldesk/internal/console/listview"
	"traveldesk/internal/console/models"
	"traveldesk/internal/console/services"
)

// Bookings runs the booking list screen. Same loop shape as Accounts with
// the booking schema and field set.
func (a *App) Bookings(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.toasts.Error("Please log in first")
		return nil
	}

	view := listview.New(listview.BookingSchema())
	defer view.Close()

	if !a.reloadBookings(ctx, view) {
		return nil
	}

	for {
		renderBookingsPage(a.out, view.Derive(), view.Criteria())

		line, err := GetSimpleText(a.reader, "bookings (help for commands)", a.out)
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "search <text> | status <v> | sort <field> | page <n> | next | prev")
			fmt.Fprintln(a.out, "view <id> | add | edit <id> | del <id> | reload | back")

		case "search":
			view.SetSearch(strings.Join(args, " "))

		case "status":
			value := ""
			if len(args) > 0 {
				value = args[0]
			}
			view.SetFilter("bookingStatus", value)

		case "sort":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: sort <field>")
				continue
			}
			view.SortBy(args[0])

		case "page":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintln(a.out, "Usage: page <n>")
				continue
			}
			view.SetPage(n)

		case "next":
			view.SetPage(view.Criteria().Page + 1)

		case "prev":
			view.SetPage(view.Criteria().Page - 1)

		case "view":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: view <id>")
				continue
			}
			a.showBooking(ctx, args[0])

		case "add":
			if a.requireAdmin() && a.addBooking(ctx) {
				a.reloadBookings(ctx, view)
			}

		case "edit":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: edit <id>")
				continue
			}
			if a.requireAdmin() && a.editBooking(ctx, args[0]) {
				a.reloadBookings(ctx, view)
			}

		case "del":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: del <id>")
				continue
			}
			if a.requireAdmin() && a.deleteBooking(ctx, args[0]) {
				a.reloadBookings(ctx, view)
			}

		case "reload":
			a.reloadBookings(ctx, view)

		case "back", "b":
			return nil

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) reloadBookings(ctx context.Context, view *listview.View[models.Booking]) bool {
	token := view.BeginLoad()
	records, err := a.bookings.List(ctx)
	if err != nil {
		a.toasts.Error("Could not load bookings: " + err.Error())
		return false
	}
	return view.ApplyLoad(token, records)
}

func (a *App) showBooking(ctx context.Context, raw string) {
	id, ok := parseID(raw)
	if !ok {
		a.toasts.Error("Invalid booking id")
		sleepFn(navDelay)
		return
	}

	bk, err := a.bookings.Get(ctx, id)
	if errors.Is(err, api.ErrNotFound) {
		a.toasts.Error(fmt.Sprintf("Booking %d not found", id))
		sleepFn(navDelay)
		return
	}
	if err != nil {
		a.toasts.Error("Could not load booking: " + err.Error())
		return
	}
	renderBookingDetail(a.out, bk)
}

func (a *App) promptBookingInput(current *models.Booking) (models.BookingInput, error) {
	var in models.BookingInput
	var err error

	if current == nil {
		in.Code, err = GetSimpleText(a.reader, "Booking code", a.out)
		if err != nil {
			return in, err
		}
		in.CustomerName, err = GetSimpleText(a.reader, "Customer name", a.out)
		if err != nil {
			return in, err
		}
		in.Source, err = GetSimpleText(a.reader, "From", a.out)
		if err != nil {
			return in, err
		}
		in.Destination, err = GetSimpleText(a.reader, "To", a.out)
		if err != nil {
			return in, err
		}
		in.TravelDate, err = GetSimpleText(a.reader, "Travel date (YYYY-MM-DD)", a.out)
		if err != nil {
			return in, err
		}
		status, err := GetTextDefault(a.reader,
			"Status (Created/Confirmed/Cancelled/Completed)", string(models.BookingCreated), a.out)
		if err != nil {
			return in, err
		}
		in.Status = models.BookingStatus(status)
		return in, nil
	}

	in.Code, err = GetTextDefault(a.reader, "Booking code", current.Code, a.out)
	if err != nil {
		return in, err
	}
	in.CustomerName, err = GetTextDefault(a.reader, "Customer name", current.CustomerName, a.out)
	if err != nil {
		return in, err
	}
	in.Source, err = GetTextDefault(a.reader, "From", current.Source, a.out)
	if err != nil {
		return in, err
	}
	in.Destination, err = GetTextDefault(a.reader, "To", current.Destination, a.out)
	if err != nil {
		return in, err
	}
	in.TravelDate, err = GetTextDefault(a.reader, "Travel date (YYYY-MM-DD)", current.TravelDate, a.out)
	if err != nil {
		return in, err
	}
	status, err := GetTextDefault(a.reader,
		"Status (Created/Confirmed/Cancelled/Completed)", string(current.Status), a.out)
	if err != nil {
		return in, err
	}
	in.Status = models.BookingStatus(status)
	return in, nil
}

func (a *App) addBooking(ctx context.Context) bool {
	in, err := a.promptBookingInput(nil)
	if err != nil {
		return false
	}

	bk, err := a.bookings.Create(ctx, in)
	var ve services.ValidationErrors
	if errors.As(err, &ve) {
		a.notifyValidation(ve)
		return false
	}
	if err != nil {
		a.toasts.Error("Could not create booking: " + err.Error())
		return false
	}

	a.toasts.Success(fmt.Sprintf("Booking %d created", bk.ID))
	sleepFn(navDelay)
	return true
}

func (a *App) editBooking(ctx context.Context, raw string) bool {
	id, ok := parseID(raw)
	if !ok {
		a.toasts.Error("Invalid booking id")
		sleepFn(navDelay)
		return false
	}

	current, err := a.bookings.Get(ctx, id)
	if errors.Is(err, api.ErrNotFound) {
		a.toasts.Error(fmt.Sprintf("Booking %d not found", id))
		sleepFn(navDelay)
		return false
	}
	if err != nil {
		a.toasts.Error("Could not load booking: " + err.Error())
		return false
	}

	in, err := a.promptBookingInput(&current)
	if err != nil {
		return false
	}

	if _, err := a.bookings.Update(ctx, id, in); err != nil {
		var ve services.ValidationErrors
		if errors.As(err, &ve) {
			a.notifyValidation(ve)
			return false
		}
		a.toasts.Error("Could not update booking: " + err.Error())
		return false
	}

	a.toasts.Success(fmt.Sprintf("Booking %d updated", id))
	sleepFn(navDelay)
	return true
}

func (a *App) deleteBooking(ctx context.Context, raw string) bool {
	id, ok := parseID(raw)
	if !ok {
		a.toasts.Error("Invalid booking id")
		sleepFn(navDelay)
		return false
	}

	confirmed := a.askConfirm(ctx, confirm.Options{
		Title:   "Delete booking",
		Message: fmt.Sprintf("Delete booking %d? This cannot be undone.", id),
	})
	if !confirmed {
		a.toasts.Info("Deletion cancelled")
		return false
	}

	if err := a.bookings.Delete(ctx, id); err != nil {
		a.toasts.Error("Could not delete booking: " + err.Error())
		return false
	}
	a.toasts.Success(fmt.Sprintf("Booking %d deleted", id))
	return true
}
