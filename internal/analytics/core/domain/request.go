package domain

import "time"

const (
	UnknownUserAgent = "Unknown"
	DirectReferrer   = "Direct"
	UnknownPhotoID   = "unknown"
	UnknownTitle     = "Unknown"
)

// RequestEvent is one inbound HTTP hit as seen by the request counter.
type RequestEvent struct {
	Timestamp time.Time
	ClientID  string
	UserAgent string
	Referrer  string
}

// Normalize replaces absent labels with their defaults.
func (e RequestEvent) Normalize() RequestEvent {
	if e.UserAgent == "" {
		e.UserAgent = UnknownUserAgent
	}
	if e.Referrer == "" {
		e.Referrer = DirectReferrer
	}
	return e
}

// DayKey is the UTC calendar day a request belongs to, e.g. "2024-06-18".
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
