package core

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Import parses the CSV at csvPath and writes its field values into the
// resolved files. Records are matched to files by base filename, so a CSV
// produced on another machine still applies. With write false the run is a
// dry run: handles are opened read-only, nothing on disk changes, and the
// report notes what each file would get.
//
// A header column outside the schema fails the whole import with
// ErrSchemaMismatch; a record naming a file that is not in the batch is
// reported and skipped.
func Import(logger *zap.Logger, eng Engine, csvPath string, files []string, write bool, rep *Report) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	records, err := ReadRecords(f, false)
	if err != nil {
		return err
	}

	byName := make(map[string]string, len(files))
	for _, p := range files {
		name := filepath.Base(p)
		if prev, ok := byName[name]; ok {
			rep.Warnf("%s: filename also matches %s; keeping the first", p, prev)
			continue
		}
		byName[name] = p
	}

	for _, rec := range records {
		rep.Processed++

		target, ok := byName[filepath.Base(rec.FilePath)]
		if !ok {
			rep.Skipped++
			rep.Warnf("%s: not found under the input path", rec.FilePath)
			continue
		}

		changed, err := importRecord(eng, target, rec, write, rep)
		if err != nil {
			rep.Failed++
			rep.Warnf("%s: %v", target, err)
			logger.Warn("importing record", zap.String("filepath", target), zap.Error(err))
			continue
		}

		switch {
		case changed == 0:
			// nothing differed; leave the file alone
		case write:
			rep.Updated++
		default:
			rep.Notef("dry run: %s: %d field(s) would change", target, changed)
		}
	}

	return nil
}

// importRecord applies one record to one file. The returned count is the
// number of fields whose value differs from what the file already holds.
// A field the engine cannot read or write is reported and skipped so one
// bad cell never abandons the rest of the record; the returned error is
// reserved for open and close failures.
func importRecord(eng Engine, path string, rec ImageRecord, write bool, rep *Report) (int, error) {
	h, err := eng.Open(path, write)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, p := range Schema {
		cell, ok := rec.Fields[p.Path()]
		if !ok || cell == "" {
			// absent or empty cells never blank an existing value
			continue
		}

		var want []string
		if p.Form.IsArray() {
			want = SplitValues(cell)
		} else {
			want = []string{cell}
		}
		if len(want) == 0 {
			continue
		}

		cur, err := h.Get(p)
		if err == nil && equalValues(cur, want) {
			continue
		}
		if err := h.Set(p, want); err != nil {
			rep.Warnf("%s: setting %s: %v", path, p.Path(), err)
			continue
		}
		changed++
	}

	if err := h.Close(); err != nil {
		return changed, err
	}
	return changed, nil
}
