package core

import (
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

// exifFallbacks maps schema columns to the EXIF fields carrying the same
// information. Cameras record these in the EXIF IFDs, not in XMP, so the
// extractor falls back here when the XMP packet has no value.
var exifFallbacks = map[string]exif.FieldName{
	"tiff:ImageWidth":  exif.ImageWidth,
	"tiff:ImageLength": exif.ImageLength,
	"tiff:Make":        exif.Make,
	"tiff:Model":       exif.Model,
	"exifEX:LensModel": exif.LensModel,
}

// readEXIFFields decodes the file's EXIF block and returns the fallback
// columns it could fill. Any failure yields an empty map; EXIF is a best
// effort supplement, never an error.
func readEXIFFields(path string) map[string]string {
	fields := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		return fields
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return fields
	}

	for column, name := range exifFallbacks {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		val := tag.String()
		// goexif renders ASCII tags with surrounding quotes
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		if val != "" {
			fields[column] = val
		}
	}
	return fields
}
