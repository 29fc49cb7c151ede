package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"traveldesk/internal/console/confirm"
)

type confirmOutcome struct {
	ok  bool
	err error
}

// askConfirm routes a destructive action through the confirmation slot and
// mounts the prompt on the console. The request runs in its own goroutine
// so the prompt surface observes it the same way any other surface would:
// via the published pending options.
func (a *App) askConfirm(ctx context.Context, opts confirm.Options) bool {
	result := make(chan confirmOutcome, 1)
	go func() {
		ok, err := a.confirm.Request(ctx, opts)
		result <- confirmOutcome{ok: ok, err: err}
	}()

	// Wait for the request to publish its prompt. If it already failed
	// (slot busy, ctx done) the outcome arrives instead.
	var shown confirm.Options
	for {
		select {
		case r := <-result:
			return r.err == nil && r.ok
		default:
		}
		if o, ok := a.confirm.Pending(); ok {
			shown = o
			break
		}
		time.Sleep(time.Millisecond)
	}

	fmt.Fprintf(a.out, "%s\n%s [%s/%s]\n> ",
		shown.Title, shown.Message, shown.ConfirmLabel, shown.CancelLabel)

	line, err := a.reader.ReadString('\n')
	answer := strings.TrimSpace(line)
	if err == nil && strings.EqualFold(answer, "y") {
		a.confirm.Confirm()
	} else {
		a.confirm.Cancel()
	}

	r := <-result
	return r.err == nil && r.ok
}
