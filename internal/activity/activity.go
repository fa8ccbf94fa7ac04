// Package activity records the mutations applied to a session, including
// the ones that were rejected, so silent rejections stay observable.
package activity

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Outcome says whether a mutation changed state.
type Outcome string

const (
	OutcomeApplied  Outcome = "applied"
	OutcomeRejected Outcome = "rejected"
	OutcomeNoop     Outcome = "noop"
)

// Entry is one recorded mutation.
type Entry struct {
	Timestamp time.Time
	Action    string
	Outcome   Outcome
	RecordID  int64 // 0 when the action has no record
	Details   string
}

// Header is the CSV header for exported logs.
const Header = "timestamp,action,outcome,record_id,details"

const (
	numFields   = 5
	colTime     = 0
	colAction   = 1
	colOutcome  = 2
	colRecordID = 3
	colDetails  = 4
)

// Log is an append-only in-memory list of entries.
type Log struct {
	entries []Entry
	now     func() time.Time
}

// NewLog creates an empty Log. nil now means time.Now.
func NewLog(now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}
	return &Log{now: now}
}

// Record appends an entry stamped with the current time.
func (l *Log) Record(action string, outcome Outcome, recordID int64, details string) Entry {
	e := Entry{
		Timestamp: l.now(),
		Action:    action,
		Outcome:   outcome,
		RecordID:  recordID,
		Details:   details,
	}
	l.entries = append(l.entries, e)
	return e
}

// Entries returns a copy of all entries in order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Rejections returns only the rejected entries.
func (l *Log) Rejections() []Entry {
	var out []Entry
	for _, e := range l.entries {
		if e.Outcome == OutcomeRejected {
			out = append(out, e)
		}
	}
	return out
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTime] = e.Timestamp.Format(time.RFC3339)
	row[colAction] = e.Action
	row[colOutcome] = string(e.Outcome)
	if e.RecordID != 0 {
		row[colRecordID] = strconv.FormatInt(e.RecordID, 10)
	}
	row[colDetails] = e.Details
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTime])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTime], err)
	}

	var recordID int64
	if record[colRecordID] != "" {
		recordID, err = strconv.ParseInt(record[colRecordID], 10, 64)
		if err != nil {
			return Entry{}, fmt.Errorf("parsing record_id %q: %w", record[colRecordID], err)
		}
	}

	return Entry{
		Timestamp: ts,
		Action:    record[colAction],
		Outcome:   Outcome(record[colOutcome]),
		RecordID:  recordID,
		Details:   record[colDetails],
	}, nil
}

// Write writes entries as CSV, including the header.
func Write(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read parses entries written by Write.
func Read(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
