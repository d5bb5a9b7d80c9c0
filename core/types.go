// Package core defines the shared types, schema registry, and batch
// operations for the XMP tool.
package core

import "errors"

// ValueForm describes how an XMP property stores its value.
type ValueForm int

const (
	// Simple is a plain text value.
	Simple ValueForm = iota
	// Ordered is an rdf:Seq array.
	Ordered
	// Unordered is an rdf:Bag array.
	Unordered
	// Alternative is an rdf:Alt language array; the tool reads and writes
	// the x-default item.
	Alternative
)

// IsArray reports whether the form carries a list of values rather than a
// single text value.
func (f ValueForm) IsArray() bool { return f == Ordered || f == Unordered }

func (f ValueForm) String() string {
	switch f {
	case Simple:
		return "simple"
	case Ordered:
		return "ordered"
	case Unordered:
		return "unordered"
	case Alternative:
		return "alternative"
	}
	return "unknown"
}

// Property identifies one namespace-qualified XMP property.
type Property struct {
	NS     string // namespace URI
	Prefix string // registered prefix, e.g. "dc"
	Name   string // local property name, e.g. "subject"
	Form   ValueForm
}

// Path returns the "prefix:Name" form understood by the XMP toolkit. It is
// also the tabular column name for schema fields.
func (p Property) Path() string { return p.Prefix + ":" + p.Name }

// Engine opens image files for XMP metadata access. Implementations must
// not touch the file on Close unless it was opened for update.
type Engine interface {
	Open(path string, forUpdate bool) (Handle, error)
}

// Handle is one open file's XMP packet.
type Handle interface {
	// Get returns the values stored at p, or nil if the property is absent.
	// Scalar properties yield a single-element slice.
	Get(p Property) ([]string, error)
	// Set replaces the values stored at p.
	Set(p Property, values []string) error
	// Close releases the handle, persisting modifications only when the
	// file was opened for update.
	Close() error
}

// ImageRecord is the flattened per-file view of the schema fields. Array
// values are joined with ListSeparator; missing properties are empty
// strings. Records are transient: built during one pass, consumed by the
// tabular writer or the importer, then discarded.
type ImageRecord struct {
	FilePath string
	Fields   map[string]string
}

// ListSeparator joins and splits array values in tabular cells. A value
// that itself contains the separator cannot round-trip; the extractor
// flags it as a data-quality warning instead of corrupting it silently.
const ListSeparator = ";"

var (
	// ErrInvalidPath means the input path does not exist or is neither a
	// regular file nor a directory. Fatal.
	ErrInvalidPath = errors.New("path is not a file or directory")

	// ErrSchemaMismatch means a tabular header references a column the
	// schema does not define. Fatal for the import unless lenient.
	ErrSchemaMismatch = errors.New("column not defined in schema")

	// ErrUnsupportedFormat means the file's contents are not one of the
	// recognized image formats, or the format cannot be written back.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

func equalValues(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func copyValues(v []string) []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v...)
}
