package render

import (
	"fmt"
	"io"
	"time"

	"github.com/kallumq/Data-Display-site/internal/view"
)

// Status prints one-line status messages. Auto-hidden messages stop being
// current once AutoHide has elapsed; persistent ones stay until replaced.
type Status struct {
	w        io.Writer
	AutoHide time.Duration
	now      func() time.Time

	msg     string
	sev     view.Severity
	expires time.Time
}

// NewStatus returns a Status writing to w.
func NewStatus(w io.Writer, autoHide time.Duration) *Status {
	return &Status{w: w, AutoHide: autoHide, now: time.Now}
}

// Show prints msg and makes it the current status.
func (s *Status) Show(msg string, sev view.Severity, autoHide bool) {
	s.msg, s.sev = msg, sev
	s.expires = time.Time{}
	if autoHide {
		s.expires = s.now().Add(s.AutoHide)
	}
	fmt.Fprintf(s.w, "%s %s\n", marker(sev), msg)
}

// Current returns the visible message, if any.
func (s *Status) Current() (string, view.Severity, bool) {
	if s.msg == "" {
		return "", "", false
	}
	if !s.expires.IsZero() && !s.now().Before(s.expires) {
		return "", "", false
	}
	return s.msg, s.sev, true
}

func marker(sev view.Severity) string {
	switch sev {
	case view.SeverityDanger:
		return "✗"
	case view.SeverityWarning:
		return "⚠"
	default:
		return "✓"
	}
}
