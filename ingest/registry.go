// Package ingest reshapes non-CASE inputs (delimited text, multi-sheet
// spreadsheets) into the three-part CASE document structure.
//
// Reshaping is heuristic best-effort by column-name matching, not a
// guaranteed bijection: inputs that cannot be interpreted as a valid
// three-part structure are rejected with a descriptive error, never
// partially translated.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/c360studio/casebridge/caseschema"
)

// Format identifies a supported input encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
)

// Reshaper converts one input encoding into a CASE document.
type Reshaper interface {
	// Reshape parses content and returns the reshaped document.
	Reshape(filename string, content []byte) (*caseschema.Document, error)

	// Format returns the input encoding this reshaper handles.
	Format() Format
}

// Registry manages reshapers by input format.
type Registry struct {
	mu        sync.RWMutex
	reshapers map[Format]Reshaper
}

// DefaultRegistry is the global registry with default reshapers.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a registry with the default reshapers
// registered.
func NewRegistry() *Registry {
	r := &Registry{reshapers: make(map[Format]Reshaper)}

	r.Register(&jsonReshaper{})
	r.Register(&csvReshaper{})
	r.Register(&excelReshaper{})

	return r
}

// Register adds a reshaper to the registry.
func (r *Registry) Register(rs Reshaper) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reshapers[rs.Format()] = rs
}

// Get returns the reshaper for a format.
func (r *Registry) Get(format Format) (Reshaper, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rs, ok := r.reshapers[format]
	return rs, ok
}

// Parse detects the input format from the filename (unless override
// is non-empty) and reshapes content into a CASE document.
func (r *Registry) Parse(filename string, content []byte, override Format) (*caseschema.Document, error) {
	format := override
	if format == "" {
		detected, err := DetectFormat(filename)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	rs, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
	return rs.Reshape(filename, content)
}

// DetectFormat maps a filename extension to an input format.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json", ".jsonld":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xls":
		return FormatExcel, nil
	default:
		return "", fmt.Errorf("unsupported file format %q (supported: .json, .jsonld, .csv, .xlsx, .xls)", filepath.Ext(filename))
	}
}
