package core

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// OutputName is the file the extractor writes next to the input.
const OutputName = "xmp_metadata.csv"

// pathColumn is the first header cell; it holds the image's path or base
// filename.
const pathColumn = "file_path"

// JoinValues flattens an array value into one tabular cell. ok is false
// when an item already contains the separator, in which case the joined
// string cannot round-trip through SplitValues.
func JoinValues(values []string) (joined string, ok bool) {
	ok = true
	for _, v := range values {
		if strings.Contains(v, ListSeparator) {
			ok = false
		}
	}
	return strings.Join(values, ListSeparator), ok
}

// SplitValues undoes JoinValues, trimming surrounding whitespace and
// dropping empty items.
func SplitValues(s string) []string {
	var values []string
	for _, v := range strings.Split(s, ListSeparator) {
		v = strings.TrimSpace(v)
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

// WriteRecords serializes records as CSV: a header row of file_path plus
// every schema column in registry order, then one row per record with
// missing values as empty cells.
func WriteRecords(w io.Writer, records []ImageRecord) error {
	cw := csv.NewWriter(w)

	header := append([]string{pathColumn}, FieldNames()...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(header))
	for _, rec := range records {
		row[0] = rec.FilePath
		for i, name := range header[1:] {
			row[i+1] = rec.Fields[name]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", rec.FilePath, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadRecords parses a CSV produced by WriteRecords (or edited by hand)
// back into records. The header must start with file_path; every other
// column must resolve in the schema, or the whole read fails with
// ErrSchemaMismatch. With lenient set, unrecognized columns are ignored
// instead.
func ReadRecords(r io.Reader, lenient bool) ([]ImageRecord, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) == 0 || strings.TrimSpace(header[0]) != pathColumn {
		return nil, fmt.Errorf("%w: first column must be %q", ErrSchemaMismatch, pathColumn)
	}

	// Map column index to schema field; -1 marks an ignored column.
	columns := make([]string, len(header))
	for i, name := range header[1:] {
		name = strings.TrimSpace(name)
		if _, ok := ResolveField(name); !ok {
			if !lenient {
				return nil, fmt.Errorf("%w: %q", ErrSchemaMismatch, name)
			}
			name = ""
		}
		columns[i+1] = name
	}

	var records []ImageRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rec := ImageRecord{FilePath: row[0], Fields: make(map[string]string)}
		for i, cell := range row[1:] {
			if name := columns[i+1]; name != "" {
				rec.Fields[name] = cell
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
