// Package cli is the interactive console surface: a REPL over the account
// and booking services, with list screens driven by the derivation
// pipeline, a prompt-mounted confirmation surface for destructive actions,
// and toasts printed as they are shown.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"traveldesk/internal/console/api"
	"traveldesk/internal/console/config"
	"traveldesk/internal/console/confirm"
	"traveldesk/internal/console/normalize"
	"traveldesk/internal/console/notify"
	"traveldesk/internal/console/services"
	"traveldesk/internal/logging"
)

// navDelay is how long a success or dead-end message stays on screen
// before the console navigates away.
const navDelay = 2 * time.Second

// sleepFn is a test seam so navigation delays do not slow tests down.
var sleepFn = time.Sleep

type App struct {
	config   *config.Config
	auth     services.AuthService
	accounts services.AccountService
	bookings services.BookingService
	confirm  *confirm.Service
	toasts   *notify.Center
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config, log logging.Logger) *App {
	store := api.NewHTTPStore(c.StoreEndpointAddr, c.RequestTimeout, log)
	norm := normalize.New(log)

	a := &App{
		config:   c,
		auth:     services.NewAuthService(store, norm, log, c.StateFile, []byte(c.SessionSecret)),
		accounts: services.NewAccountService(store, norm, log),
		bookings: services.NewBookingService(store, norm, log),
		confirm:  confirm.New(),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	a.toasts = notify.New(ToastPrinter(a.out))
	return a
}

// ToastPrinter is the console's notification sink: every toast is printed
// the moment it is shown.
func ToastPrinter(w io.Writer) notify.Sink {
	return func(e notify.Entry) {
		fmt.Fprintf(w, "[%s] %s\n", e.Severity, e.Message)
	}
}

// Run restores any persisted session and drives the REPL until exit.
func (a *App) Run(ctx context.Context) {
	defer a.toasts.Close()

	a.auth.Restore(ctx)
	if s, ok := a.auth.Session(); ok {
		fmt.Fprintf(a.out, "Welcome back, %s (%s)\n", s.FullName, s.Role)
	} else {
		fmt.Fprintln(a.out, "Welcome to TravelDesk (type 'help' for commands)")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.auth.Session()
	return ok
}

func (a *App) isAdmin() bool {
	s, ok := a.auth.Session()
	return ok && s.IsAdmin()
}

func (a *App) getStatus() string {
	s, ok := a.auth.Session()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s %s)", s.Email, s.Role)
}
