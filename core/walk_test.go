package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestResolveFiles(t *testing.T) {
	c := qt.New(t)

	dir := c.TempDir()
	for _, name := range []string{"a.jpg", "b.png", "c.txt"} {
		c.Assert(os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644), qt.IsNil)
	}
	c.Assert(os.Mkdir(filepath.Join(dir, "sub"), 0o755), qt.IsNil)
	c.Assert(os.WriteFile(filepath.Join(dir, "sub", "d.tiff"), []byte("x"), 0o644), qt.IsNil)

	c.Run("directory", func(c *qt.C) {
		files, err := ResolveFiles(dir)
		c.Assert(err, qt.IsNil)
		c.Assert(files, qt.DeepEquals, []string{
			filepath.Join(dir, "a.jpg"),
			filepath.Join(dir, "b.png"),
			filepath.Join(dir, "sub", "d.tiff"),
		})
	})

	c.Run("single file", func(c *qt.C) {
		files, err := ResolveFiles(filepath.Join(dir, "a.jpg"))
		c.Assert(err, qt.IsNil)
		c.Assert(files, qt.DeepEquals, []string{filepath.Join(dir, "a.jpg")})
	})

	c.Run("missing path", func(c *qt.C) {
		_, err := ResolveFiles(filepath.Join(dir, "nope"))
		c.Assert(errors.Is(err, ErrInvalidPath), qt.IsTrue)
	})
}

func TestRecognizedExt(t *testing.T) {
	c := qt.New(t)

	for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "d.gif", "e.tif", "f.tiff", "g.psd"} {
		c.Assert(RecognizedExt(name), qt.IsTrue, qt.Commentf("name=%s", name))
	}
	for _, name := range []string{"a.txt", "b.mp3", "noext", "c.json"} {
		c.Assert(RecognizedExt(name), qt.IsFalse, qt.Commentf("name=%s", name))
	}
}

func TestSniffFormat(t *testing.T) {
	c := qt.New(t)

	c.Assert(SniffFormat([]byte{0xFF, 0xD8, 0xFF, 0xE0}, "x.bin"), qt.Equals, FmtJPEG)
	c.Assert(SniffFormat([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, "x.bin"), qt.Equals, FmtPNG)
	c.Assert(SniffFormat([]byte("GIF89a.."), "x.bin"), qt.Equals, FmtGIF)
	c.Assert(SniffFormat([]byte("8BPS...."), "x.bin"), qt.Equals, FmtPSD)
	// inconclusive magic falls back to the extension
	c.Assert(SniffFormat([]byte("????????"), "x.tif"), qt.Equals, FmtTIFF)
	c.Assert(SniffFormat([]byte("????????"), "x.bin"), qt.Equals, FmtUnknown)
}
