// Package importer turns expense files from different sources into
// expense rows ready to be added to a session.
package importer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/manudejuan/home-finance/internal/expenses"
)

// Parser converts a CSV export into expense rows. Rows are not validated;
// that happens when they are added.
type Parser interface {
	Parse(r io.Reader) ([]expenses.Row, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(strings.TrimSpace(format))]
}

// Lookup is Get with an error naming the known formats.
func (r *Registry) Lookup(format string) (Parser, error) {
	if p := r.Get(format); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("unknown import format %q (known: %s)", format, strings.Join(r.Formats(), ", "))
}

// Formats lists the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultFormat is the native name,amount,date layout.
const DefaultFormat = "finance"

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&NativeParser{})
	r.Register(&ChaseParser{})
	return r
}

// NativeParser reads the name,amount,date CSV written by the report command.
type NativeParser struct{}

// Format returns the parser name.
func (p *NativeParser) Format() string { return DefaultFormat }

// Parse reads a native expense CSV.
func (p *NativeParser) Parse(r io.Reader) ([]expenses.Row, error) {
	return expenses.ReadRows(r)
}
