package core

// MemoryEngine is an Engine that keeps XMP values in process memory. The
// tests run every batch operation against it, and it honors the same
// contract as the file-backed engine: values set through a read-only
// handle are discarded on Close.
type MemoryEngine struct {
	files map[string]map[string][]string // path -> property path -> values
}

// NewMemoryEngine returns an empty in-memory engine.
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{files: make(map[string]map[string][]string)}
}

// Seed stores values for a property of path, bypassing the handle
// lifecycle.
func (e *MemoryEngine) Seed(path string, p Property, values ...string) {
	m := e.files[path]
	if m == nil {
		m = make(map[string][]string)
		e.files[path] = m
	}
	m[p.Path()] = copyValues(values)
}

// Values returns the currently persisted values for a property of path.
func (e *MemoryEngine) Values(path string, p Property) []string {
	return copyValues(e.files[path][p.Path()])
}

// Open implements Engine. Unknown paths open as empty packets, mirroring
// an image file without an XMP header.
func (e *MemoryEngine) Open(path string, forUpdate bool) (Handle, error) {
	props := make(map[string][]string)
	for k, v := range e.files[path] {
		props[k] = copyValues(v)
	}
	return &memHandle{eng: e, path: path, props: props, forUpdate: forUpdate}, nil
}

type memHandle struct {
	eng       *MemoryEngine
	path      string
	props     map[string][]string
	forUpdate bool
	changes   int
}

func (h *memHandle) Get(p Property) ([]string, error) {
	vals := h.props[p.Path()]
	if len(vals) == 0 {
		return nil, nil
	}
	return copyValues(vals), nil
}

func (h *memHandle) Set(p Property, values []string) error {
	h.props[p.Path()] = copyValues(values)
	h.changes++
	return nil
}

func (h *memHandle) Close() error {
	if h.forUpdate && h.changes > 0 {
		h.eng.files[h.path] = h.props
	}
	return nil
}
