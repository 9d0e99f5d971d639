// Package ledger appends event rows to CSV files whose header is written once, on creation.
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Header rows for the three ledgers the bots maintain.
var (
	BalanceHeader  = []string{"wallet", "timestamp", "balance"}
	TransferHeader = []string{"from_wallet", "to_wallet", "amount", "signature", "timestamp"}
	ErrorHeader    = []string{"timestamp", "error"}
)

// TimestampLayout renders UTC instants with microseconds and an explicit +00:00 offset.
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// Timestamp formats t in UTC using TimestampLayout.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Ensure creates path with a single header row when it does not exist yet.
// Existing files are left untouched; their header is not checked.
func Ensure(path string, headers []string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat ledger: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create ledger: %w", err)
	}
	if err := writeRecord(file, headers); err != nil {
		file.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close ledger: %w", err)
	}
	return nil
}

// Append writes row as one CSV record at the end of path. Parent directories are never created.
func Append(path string, row []string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	if err := writeRecord(file, row); err != nil {
		file.Close()
		return fmt.Errorf("append row: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close ledger: %w", err)
	}
	return nil
}

func writeRecord(file *os.File, record []string) error {
	w := csv.NewWriter(file)
	if err := w.Write(record); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Ledger binds a path to its header so callers only deal with rows.
type Ledger struct {
	Path   string
	Header []string
}

// New returns a Ledger for path; nothing touches the disk until Ensure or Append.
func New(path string, header []string) *Ledger {
	return &Ledger{Path: path, Header: header}
}

// Ensure creates the file with its header if needed.
func (l *Ledger) Ensure() error { return Ensure(l.Path, l.Header) }

// Append adds a row after checking its width against the header.
func (l *Ledger) Append(row []string) error {
	if len(l.Header) > 0 && len(row) != len(l.Header) {
		return fmt.Errorf("row has %d fields, %s expects %d", len(row), l.Path, len(l.Header))
	}
	return Append(l.Path, row)
}
