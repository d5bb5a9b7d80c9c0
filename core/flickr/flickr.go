// Package flickr merges annotations from a Flickr account export into the
// XMP metadata of the exported images. Each photo in the export has a
// sidecar file named photo_<id>.json; the id also appears in the image
// filename, which is how the two are correlated.
package flickr

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Tag is one entry of the sidecar's tag list.
type Tag struct {
	Tag        string `json:"tag"`
	MachineTag bool   `json:"machine_tag"`
}

// Album is one entry of the sidecar's album list.
type Album struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Photo models the subset of a sidecar the merger consumes. Fields absent
// from the JSON unmarshal to their zero values and are never written.
type Photo struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	DateTaken    string  `json:"date_taken"`
	DateImported string  `json:"date_imported"`
	Tags         []Tag   `json:"tags"`
	Albums       []Album `json:"albums"`
}

// PhotoID extracts the numeric photo id from an exported image filename.
// Export names look like "beach-sunset_53112345678_o.jpg"; the id is the
// last underscore-separated token made up entirely of digits.
func PhotoID(filename string) (string, bool) {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.Split(base, "_")
	for i := len(parts) - 1; i >= 0; i-- {
		if isDigits(parts[i]) {
			return parts[i], true
		}
	}
	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SidecarPath returns the sidecar file the export convention assigns to a
// photo id.
func SidecarPath(dir, id string) string {
	return filepath.Join(dir, "photo_"+id+".json")
}

// LoadSidecar locates and parses the sidecar for the given image file.
// A missing sidecar or unparseable id is reported via os.IsNotExist-style
// errors so callers can warn and skip.
func LoadSidecar(dir, imagePath string) (*Photo, error) {
	id, ok := PhotoID(imagePath)
	if !ok {
		return nil, fmt.Errorf("no photo id in filename %q", filepath.Base(imagePath))
	}

	data, err := os.ReadFile(SidecarPath(dir, id))
	if err != nil {
		return nil, err
	}

	var p Photo
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse sidecar for photo %s: %w", id, err)
	}
	return &p, nil
}

// flickrDateLayout is how the export renders timestamps.
const flickrDateLayout = "2006-01-02 15:04:05"

// xmpDate coerces a Flickr timestamp into the ISO 8601 form XMP dates use.
// Values that do not parse pass through unchanged rather than being lost.
func xmpDate(s string) string {
	t, err := time.Parse(flickrDateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("2006-01-02T15:04:05")
}
