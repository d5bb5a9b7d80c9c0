package flickr

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"go.uber.org/zap"

	"github.com/pixelarchive/xmptool/core"
)

type failSetEngine struct {
	*core.MemoryEngine
	failOn string
}

func (e *failSetEngine) Open(path string, forUpdate bool) (core.Handle, error) {
	h, err := e.MemoryEngine.Open(path, forUpdate)
	if err != nil {
		return nil, err
	}
	return &failSetHandle{Handle: h, failOn: e.failOn}, nil
}

type failSetHandle struct {
	core.Handle
	failOn string
}

func (h *failSetHandle) Set(p core.Property, values []string) error {
	if p.Path() == h.failOn {
		return fmt.Errorf("cannot write %s", p.Path())
	}
	return h.Handle.Set(p, values)
}

func TestPhotoID(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		filename string
		id       string
		ok       bool
	}{
		{"beach-sunset_53112345678_o.jpg", "53112345678", true},
		{"53112345678_abcdef_o.jpg", "53112345678", true},
		{"photos/export/dog_9876543210.jpg", "9876543210", true},
		{"no-id-here.jpg", "", false},
		{"trailing_word.jpg", "", false},
	}
	for _, tt := range tests {
		id, ok := PhotoID(tt.filename)
		c.Assert(ok, qt.Equals, tt.ok, qt.Commentf("filename=%s", tt.filename))
		c.Assert(id, qt.Equals, tt.id, qt.Commentf("filename=%s", tt.filename))
	}
}

func TestXMPDate(t *testing.T) {
	c := qt.New(t)

	c.Assert(xmpDate("2023-11-18 14:30:05"), qt.Equals, "2023-11-18T14:30:05")
	// unparseable values pass through untouched
	c.Assert(xmpDate("whenever"), qt.Equals, "whenever")
}

func TestSidecarPath(t *testing.T) {
	c := qt.New(t)
	c.Assert(SidecarPath("export", "123"), qt.Equals, filepath.Join("export", "photo_123.json"))
}

func writeSidecar(c *qt.C, dir, id, content string) {
	c.Assert(os.WriteFile(SidecarPath(dir, id), []byte(content), 0o644), qt.IsNil)
}

func TestMergeAuthoritative(t *testing.T) {
	c := qt.New(t)

	dir := c.TempDir()
	writeSidecar(c, dir, "123", `{
		"id": "123",
		"name": "New Title",
		"description": "new desc",
		"date_taken": "2023-11-18 14:30:05",
		"tags": [{"tag": "boat"}, {"tag": "sea"}, {"tag": "osm:way=1", "machine_tag": true}]
	}`)

	img := "shore_123_o.jpg"
	eng := core.NewMemoryEngine()
	title, _ := core.ResolveField("dc:title")
	desc, _ := core.ResolveField("dc:description")
	subject, _ := core.ResolveField("dc:subject")
	creator, _ := core.ResolveField("dc:creator")
	eng.Seed(img, desc, "old desc")
	eng.Seed(img, subject, "sea", "summer")
	eng.Seed(img, creator, "Ann Author")

	rep := core.NewReport()
	Merge(zap.NewNop(), eng, []string{img}, dir, true, rep)

	c.Assert(rep.Updated, qt.Equals, 1)
	c.Assert(rep.Failed, qt.Equals, 0)

	// sidecar values overwrite, even when the XMP already had a value
	c.Assert(eng.Values(img, desc), qt.DeepEquals, []string{"new desc"})
	c.Assert(eng.Values(img, title), qt.DeepEquals, []string{"New Title"})

	// arrays are unioned without duplicates; machine tags are dropped
	c.Assert(eng.Values(img, subject), qt.DeepEquals, []string{"sea", "summer", "boat"})

	// fields outside the flickr schema stay untouched
	c.Assert(eng.Values(img, creator), qt.DeepEquals, []string{"Ann Author"})
}

func TestMergeAbsentKeysAreNonDestructive(t *testing.T) {
	c := qt.New(t)

	dir := c.TempDir()
	writeSidecar(c, dir, "77", `{"id": "77", "description": ""}`)

	img := "x_77.jpg"
	eng := core.NewMemoryEngine()
	title, _ := core.ResolveField("dc:title")
	desc, _ := core.ResolveField("dc:description")
	eng.Seed(img, title, "keep title")
	eng.Seed(img, desc, "keep desc")

	rep := core.NewReport()
	Merge(zap.NewNop(), eng, []string{img}, dir, true, rep)

	c.Assert(eng.Values(img, title), qt.DeepEquals, []string{"keep title"})
	c.Assert(eng.Values(img, desc), qt.DeepEquals, []string{"keep desc"})
}

func TestMergeDryRun(t *testing.T) {
	c := qt.New(t)

	dir := c.TempDir()
	writeSidecar(c, dir, "5", `{"id": "5", "name": "T"}`)

	img := "a_5.jpg"
	eng := core.NewMemoryEngine()

	rep := core.NewReport()
	Merge(zap.NewNop(), eng, []string{img}, dir, false, rep)

	title, _ := core.ResolveField("dc:title")
	c.Assert(eng.Values(img, title), qt.IsNil)
	c.Assert(rep.Updated, qt.Equals, 0)
	c.Assert(len(rep.Notes), qt.Equals, 1)
}

func TestMergeMissingSidecar(t *testing.T) {
	c := qt.New(t)

	dir := c.TempDir()

	eng := core.NewMemoryEngine()
	rep := core.NewReport()
	Merge(zap.NewNop(), eng, []string{"a_123.jpg", "no-id.jpg"}, dir, true, rep)

	c.Assert(rep.Processed, qt.Equals, 2)
	c.Assert(rep.Skipped, qt.Equals, 2)
	c.Assert(len(rep.Warnings), qt.Equals, 2)
}

// TestMergeContinuesPastFieldFailure pins down the per-property
// isolation: one rejected property is reported and the rest of the
// sidecar still lands.
func TestMergeContinuesPastFieldFailure(t *testing.T) {
	c := qt.New(t)

	dir := c.TempDir()
	writeSidecar(c, dir, "44", `{"id": "44", "name": "New Title"}`)

	img := "c_44.jpg"
	eng := &failSetEngine{MemoryEngine: core.NewMemoryEngine(), failOn: "photoshop:Instructions"}

	rep := core.NewReport()
	Merge(zap.NewNop(), eng, []string{img}, dir, true, rep)

	title, _ := core.ResolveField("dc:title")
	c.Assert(eng.Values(img, title), qt.DeepEquals, []string{"New Title"})
	c.Assert(rep.Failed, qt.Equals, 0)
	c.Assert(rep.Updated, qt.Equals, 1)
	c.Assert(len(rep.Warnings), qt.Equals, 1)
}

func TestMergeDateFallback(t *testing.T) {
	c := qt.New(t)

	dir := c.TempDir()
	writeSidecar(c, dir, "9", `{"id": "9", "date_imported": "2020-01-02 03:04:05"}`)

	img := "b_9.jpg"
	eng := core.NewMemoryEngine()
	rep := core.NewReport()
	Merge(zap.NewNop(), eng, []string{img}, dir, true, rep)

	created, _ := core.ResolveField("xmp:CreateDate")
	c.Assert(eng.Values(img, created), qt.DeepEquals, []string{"2020-01-02T03:04:05"})
}
