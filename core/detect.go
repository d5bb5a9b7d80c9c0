package core

import (
	"bytes"
	"strings"
)

// FormatID enumerates every recognised image format.
type FormatID string

const (
	FmtJPEG FormatID = "jpeg"
	FmtPNG  FormatID = "png"
	FmtGIF  FormatID = "gif"
	FmtTIFF FormatID = "tiff"
	FmtPSD  FormatID = "psd"

	FmtUnknown FormatID = "unknown"
)

// extMap maps lowercase extensions to format IDs. It doubles as the batch
// walker's allow-list: only files with these extensions are picked up from
// a directory scan.
var extMap = map[string]FormatID{
	".jpg":  FmtJPEG,
	".jpeg": FmtJPEG,
	".png":  FmtPNG,
	".gif":  FmtGIF,
	".tiff": FmtTIFF,
	".tif":  FmtTIFF,
	".psd":  FmtPSD,
}

// SniffFormat identifies the format of a file from its leading bytes,
// falling back to the path extension when the magic is inconclusive.
func SniffFormat(head []byte, path string) FormatID {
	if id := detectMagic(head); id != FmtUnknown {
		return id
	}
	ext := strings.ToLower(path)
	if dot := strings.LastIndex(ext, "."); dot >= 0 {
		if id, ok := extMap[ext[dot:]]; ok {
			return id
		}
	}
	return FmtUnknown
}

func detectMagic(b []byte) FormatID {
	if len(b) < 4 {
		return FmtUnknown
	}
	switch {
	// JPEG: FF D8 FF
	case b[0] == 0xFF && b[1] == 0xD8 && b[2] == 0xFF:
		return FmtJPEG
	// PNG: 89 50 4E 47 0D 0A 1A 0A
	case bytes.HasPrefix(b, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}):
		return FmtPNG
	// GIF: GIF87a or GIF89a
	case bytes.HasPrefix(b, []byte("GIF87a")) || bytes.HasPrefix(b, []byte("GIF89a")):
		return FmtGIF
	// TIFF: 49 49 2A 00 (little-endian) or 4D 4D 00 2A (big-endian)
	case bytes.HasPrefix(b, []byte{0x49, 0x49, 0x2A, 0x00}) ||
		bytes.HasPrefix(b, []byte{0x4D, 0x4D, 0x00, 0x2A}):
		return FmtTIFF
	// PSD: 8BPS
	case bytes.HasPrefix(b, []byte("8BPS")):
		return FmtPSD
	}
	return FmtUnknown
}

// RecognizedExt reports whether the filename carries one of the image
// extensions the walker accepts.
func RecognizedExt(name string) bool {
	ext := strings.ToLower(name)
	if dot := strings.LastIndex(ext, "."); dot >= 0 {
		_, ok := extMap[ext[dot:]]
		return ok
	}
	return false
}
