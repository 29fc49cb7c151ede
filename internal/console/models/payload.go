package models

import "time"

// Payload is a raw, loosely-typed record as stored by the schema-less
// backend. Field types are whatever the last writer put there, so all
// access goes through forgiving helpers.
type Payload map[string]any

// Str returns the value under key if it is a string, "" otherwise.
func (p Payload) Str(key string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return ""
}

// Session is the read-only identity of the logged-in operator.
type Session struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	LoginTime string `json:"loginTime"`
}

// IsAdmin reports whether the session may perform destructive actions.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// nowFn is a test seam for the clock.
var nowFn = time.Now

// NowISO returns the current UTC time in the ISO-8601 form used for the
// createdAt/updatedAt fields, e.g. "2026-01-02T15:04:05.000Z".
func NowISO() string {
	return nowFn().UTC().Format("2006-01-02T15:04:05.000Z")
}
