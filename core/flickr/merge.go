package flickr

import (
	"go.uber.org/zap"

	"github.com/pixelarchive/xmptool/core"
)

// Merge applies sidecar annotations from dir to every file in the batch.
// The sidecar is authoritative: a present, non-empty JSON value overwrites
// the corresponding XMP property, while absent or empty values leave the
// file's metadata exactly as it was. Array properties are unioned so a
// re-run never duplicates tags. With write false nothing is persisted and
// the report notes what would change.
func Merge(logger *zap.Logger, eng core.Engine, files []string, dir string, write bool, rep *core.Report) {
	for _, path := range files {
		rep.Processed++

		photo, err := LoadSidecar(dir, path)
		if err != nil {
			rep.Skipped++
			rep.Warnf("%s: %v", path, err)
			logger.Warn("loading sidecar", zap.String("filepath", path), zap.Error(err))
			continue
		}

		changed, err := mergePhoto(eng, path, photo, write, rep)
		if err != nil {
			rep.Failed++
			rep.Warnf("%s: %v", path, err)
			logger.Warn("merging sidecar", zap.String("filepath", path), zap.Error(err))
			continue
		}

		switch {
		case changed == 0:
			// sidecar agrees with the file
		case write:
			rep.Updated++
		default:
			rep.Notef("dry run: %s: %d field(s) would change", path, changed)
		}
	}
}

// mergePhoto writes one sidecar into one file and reports how many
// properties actually differed. A property the engine cannot read or
// write is reported and skipped so the rest of the sidecar still lands;
// the returned error is reserved for open and close failures.
func mergePhoto(eng core.Engine, path string, photo *Photo, write bool, rep *core.Report) (int, error) {
	h, err := eng.Open(path, write)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, e := range Schema {
		vals := e.Extract(photo)
		if len(vals) == 0 {
			continue
		}

		cur, err := h.Get(e.Prop)
		if err != nil {
			rep.Warnf("%s: reading %s: %v", path, e.Prop.Path(), err)
			continue
		}

		want := vals[:1]
		if e.Prop.Form.IsArray() {
			merged, grew := union(cur, vals)
			if !grew {
				continue
			}
			want = merged
		} else if len(cur) > 0 && cur[0] == vals[0] {
			continue
		}

		if err := h.Set(e.Prop, want); err != nil {
			rep.Warnf("%s: setting %s: %v", path, e.Prop.Path(), err)
			continue
		}
		changed++
	}

	if err := h.Close(); err != nil {
		return changed, err
	}
	return changed, nil
}

// union appends the items of add that existing lacks, preserving order.
func union(existing, add []string) (merged []string, grew bool) {
	seen := make(map[string]bool, len(existing))
	merged = append(merged, existing...)
	for _, v := range existing {
		seen[v] = true
	}
	for _, v := range add {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		merged = append(merged, v)
		grew = true
	}
	return merged, grew
}
