// Package id hands out record ids for expenses and fixed budgets.
package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Sequence hands out increasing ids starting at 1. The zero value is ready
// to use. It is not safe for concurrent use.
type Sequence struct {
	last int64
}

// Next returns a fresh id, never repeating one already handed out.
func (s *Sequence) Next() int64 {
	s.last++
	return s.last
}

// Observe advances the sequence past id so later calls to Next cannot
// collide with it.
func (s *Sequence) Observe(id int64) {
	if id > s.last {
		s.last = id
	}
}

// Format returns an id as shown to users, e.g. "#12".
func Format(id int64) string {
	return "#" + strconv.FormatInt(id, 10)
}

// Parse reads an id as typed by a user: "12" or "#12".
func Parse(s string) (int64, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be positive", s)
	}
	return n, nil
}
