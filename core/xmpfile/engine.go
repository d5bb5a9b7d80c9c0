// Package xmpfile implements core.Engine on top of the go-xmp document
// model. XMP parsing and serialization are entirely go-xmp's job; this
// package locates the packet inside the image, exposes schema properties
// by path, and splices the regenerated packet back into the JPEG header on
// write.
package xmpfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/trimmer-io/go-xmp/xmp"
	"go.uber.org/zap"

	"github.com/pixelarchive/xmptool/core"

	// register the dc, photoshop, tiff, exif and related namespace models
	_ "github.com/trimmer-io/go-xmp/models"
)

// Engine opens image files through go-xmp.
type Engine struct {
	log *zap.Logger
}

// New returns a file-backed engine.
func New(logger *zap.Logger) *Engine {
	return &Engine{log: logger}
}

// Open reads the file's XMP packet into a document. Any recognized image
// format can be read; writing is limited to JPEG, where the APP1 segment
// can be rewritten in place, so forUpdate on another format fails with
// core.ErrUnsupportedFormat.
func (e *Engine) Open(path string, forUpdate bool) (core.Handle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	format := core.SniffFormat(data, path)
	if format == core.FmtUnknown {
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, path)
	}
	if forUpdate && format != core.FmtJPEG {
		return nil, fmt.Errorf("%w: writing %s files is not supported", core.ErrUnsupportedFormat, format)
	}

	doc := xmp.NewDocument()
	packets, err := xmp.ScanPackets(bytes.NewReader(data))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scanning XMP packet: %w", err)
	}
	if len(packets) > 0 {
		if err := xmp.Unmarshal(packets[0], doc); err != nil {
			return nil, fmt.Errorf("unmarshaling XMP document: %w", err)
		}
	}

	return &handle{
		path:      path,
		data:      data,
		doc:       doc,
		forUpdate: forUpdate,
		log:       e.log.With(zap.String("filepath", path)),
	}, nil
}

type handle struct {
	path      string
	data      []byte // original file contents
	doc       *xmp.Document
	forUpdate bool
	changes   int
	log       *zap.Logger
}

func (h *handle) Get(p core.Property) ([]string, error) {
	path := p.Path()

	if p.Form.IsArray() {
		paths, err := h.doc.ListPaths()
		if err != nil {
			return nil, err
		}
		var vals []string
		for _, pv := range paths {
			s := string(pv.Path)
			if s == path || strings.HasPrefix(s, path+"[") || strings.HasPrefix(s, path+"/") {
				if pv.Value != "" {
					vals = append(vals, pv.Value)
				}
			}
		}
		return vals, nil
	}

	val, err := h.doc.GetPath(xmp.Path(path))
	if err != nil || val == "" {
		// an absent property is an empty value, not an error
		return nil, nil
	}
	return []string{val}, nil
}

func (h *handle) Set(p core.Property, values []string) error {
	path := p.Path()

	if p.Form.IsArray() {
		// drop the existing array so stale items don't linger behind the
		// new value
		_ = h.doc.SetPath(xmp.PathValue{
			Path:  xmp.Path(path),
			Flags: xmp.DELETE,
		})
		for i, v := range values {
			if v == "" {
				continue
			}
			err := h.doc.SetPath(xmp.PathValue{
				Path:  xmp.Path(fmt.Sprintf("%s[%d]", path, i)),
				Value: v,
				Flags: xmp.CREATE | xmp.REPLACE | xmp.APPEND,
			})
			if err != nil {
				return fmt.Errorf("setting %s: %w", path, err)
			}
		}
		h.changes++
		return nil
	}

	if len(values) == 0 {
		return nil
	}
	err := h.doc.SetPath(xmp.PathValue{
		Path:  xmp.Path(path),
		Value: values[0],
		Flags: xmp.CREATE | xmp.REPLACE,
	})
	if err != nil {
		return fmt.Errorf("setting %s: %w", path, err)
	}
	h.changes++
	return nil
}

// Close persists the document when the handle was opened for update and at
// least one property changed. Read-only handles and clean documents leave
// the file byte-identical.
func (h *handle) Close() error {
	if !h.forUpdate || h.changes == 0 {
		return nil
	}

	raw, err := xmp.Marshal(h.doc)
	if err != nil {
		return fmt.Errorf("marshaling XMP document: %w", err)
	}

	out, err := spliceJPEGPacket(h.data, wrapPacket(raw))
	if err != nil {
		return err
	}

	if err := os.WriteFile(h.path, out, 0o644); err != nil {
		return fmt.Errorf("rewriting %s: %w", h.path, err)
	}
	h.log.Debug("replaced XMP packet", zap.Int("changes", h.changes))
	return nil
}
