package core

import (
	"go.uber.org/zap"
)

// Extract reads every schema field of every file and returns one flat
// record per file. Reads are strictly non-mutating: handles are opened
// read-only and closed even when individual properties fail. A file whose
// XMP lacks the camera fields gets them filled from its EXIF block, since
// cameras write Make/Model/dimensions natively to EXIF.
func Extract(logger *zap.Logger, eng Engine, files []string, rep *Report) []ImageRecord {
	records := make([]ImageRecord, 0, len(files))

	for _, path := range files {
		rep.Processed++

		h, err := eng.Open(path, false)
		if err != nil {
			rep.Failed++
			rep.Warnf("%s: %v", path, err)
			logger.Warn("opening file", zap.String("filepath", path), zap.Error(err))
			continue
		}

		rec := ImageRecord{FilePath: path, Fields: make(map[string]string, len(Schema))}
		var exifFields map[string]string // decoded lazily, at most once per file

		for _, p := range Schema {
			column := p.Path()

			vals, err := h.Get(p)
			if err != nil {
				// Missing or unreadable properties become empty cells, never
				// a failed file.
				logger.Warn("reading property",
					zap.String("filepath", path),
					zap.String("property", column),
					zap.Error(err))
			}

			if len(vals) == 0 {
				if _, ok := exifFallbacks[column]; ok {
					if exifFields == nil {
						exifFields = readEXIFFields(path)
					}
					rec.Fields[column] = exifFields[column]
				} else {
					rec.Fields[column] = ""
				}
				continue
			}

			if p.Form.IsArray() {
				joined, ok := JoinValues(vals)
				if !ok {
					rep.Warnf("%s: %s contains the list separator %q; value will not round-trip",
						path, column, ListSeparator)
				}
				rec.Fields[column] = joined
			} else {
				rec.Fields[column] = vals[0]
			}
		}

		if err := h.Close(); err != nil {
			logger.Warn("closing file", zap.String("filepath", path), zap.Error(err))
		}
		records = append(records, rec)
	}

	return records
}
