package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Accounts(ctx context.Context) error
	Bookings(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL is the top-level read-eval-print loop of the console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help           show available commands
//	  - login          authenticate against the account directory
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help           show available commands
//	  - accounts | a   open the accounts screen
//	  - bookings | b   open the bookings screen
//	  - stats          show dashboard counts
//	  - logout         log out and clear the stored session
//	  - exit | quit    leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures through the notification channel. This keeps the loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tdesk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (a)ccounts, (b)ookings, stats, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "a", "accounts":
			_ = a.Accounts(ctx)

		case "b", "bookings":
			_ = a.Bookings(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
