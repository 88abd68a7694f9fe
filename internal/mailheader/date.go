package mailheader

import (
	"net/mail"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses a Date header value. RFC 5322 is tried first, then the
// looser formats real mailers emit. It returns the zero time if nothing
// fits.
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := mail.ParseDate(s); err == nil {
		return t
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t
	}
	return time.Time{}
}
