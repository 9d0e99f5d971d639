package ledger

import (
	"strings"
	"time"
)

// Sanitize neutralizes spreadsheet formulas by quoting a leading =, +, - or @.
func Sanitize(s string) string {
	if s != "" && strings.ContainsRune("=+-@", rune(s[0])) {
		return "'" + s
	}
	return s
}

// ErrorLog is the side-channel ledger recording every failed invocation.
type ErrorLog struct {
	ledger *Ledger
	now    func() time.Time
}

// NewErrorLog writes to path, stamping rows with now (time.Now when nil).
func NewErrorLog(path string, now func() time.Time) *ErrorLog {
	if now == nil {
		now = time.Now
	}
	return &ErrorLog{ledger: New(path, ErrorHeader), now: now}
}

// Path returns the error ledger location shown to operators.
func (e *ErrorLog) Path() string { return e.ledger.Path }

// Log ensures the header and appends a timestamped, sanitized message.
func (e *ErrorLog) Log(msg string) error {
	if err := e.ledger.Ensure(); err != nil {
		return err
	}
	return e.ledger.Append([]string{Timestamp(e.now()), Sanitize(msg)})
}
