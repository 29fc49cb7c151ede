// Package notify is the fire-and-forget user-feedback channel: a multiset
// of toast entries that expire on their own. Entries coexist and time out
// independently; removal is idempotent.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
)

const (
	// DefaultDuration is how long a toast lives unless dismissed.
	DefaultDuration = 3 * time.Second
	// ErrorDuration gives error toasts a little longer on screen.
	ErrorDuration = 4 * time.Second
)

// Entry is one visible toast.
type Entry struct {
	ID       string
	Message  string
	Severity Severity
}

// Sink receives each entry as it is shown; the console uses it to print
// the toast immediately.
type Sink func(Entry)

// Center owns the active toasts and their expiry timers.
type Center struct {
	mu      sync.Mutex
	entries []Entry
	timers  map[string]*time.Timer
	sink    Sink
}

// New returns a Center. sink may be nil.
func New(sink Sink) *Center {
	return &Center{timers: map[string]*time.Timer{}, sink: sink}
}

// Show appends an entry with a fresh unique id and schedules its removal
// after d. A non-positive d selects the severity default.
func (c *Center) Show(message string, severity Severity, d time.Duration) string {
	if d <= 0 {
		d = DefaultDuration
		if severity == Error {
			d = ErrorDuration
		}
	}

	entry := Entry{ID: uuid.NewString(), Message: message, Severity: severity}

	c.mu.Lock()
	c.entries = append(c.entries, entry)
	c.timers[entry.ID] = time.AfterFunc(d, func() { c.Remove(entry.ID) })
	c.mu.Unlock()

	if c.sink != nil {
		c.sink(entry)
	}
	return entry.ID
}

func (c *Center) Success(message string) string {
	return c.Show(message, Success, 0)
}

func (c *Center) Error(message string) string {
	return c.Show(message, Error, 0)
}

func (c *Center) Info(message string) string {
	return c.Show(message, Info, 0)
}

// Remove dismisses an entry. Removing an unknown or already-expired id is
// a no-op.
func (c *Center) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
	for i, e := range c.entries {
		if e.ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			break
		}
	}
}

// Entries returns a snapshot of the currently visible toasts.
func (c *Center) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Entry(nil), c.entries...)
}

// Close stops all expiry timers. Entries already shown stay in place;
// only the self-removal is cancelled.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
	}
}
