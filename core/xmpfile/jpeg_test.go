package xmpfile

import (
	"bytes"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestWrapPacket(t *testing.T) {
	c := qt.New(t)

	doc := []byte(`<x:xmpmeta xmlns:x="adobe:ns:meta/"></x:xmpmeta>`)
	packet := wrapPacket(doc)

	s := string(packet)
	c.Assert(strings.HasPrefix(s, "<?xpacket begin="), qt.IsTrue)
	c.Assert(strings.HasSuffix(s, `<?xpacket end="w"?>`), qt.IsTrue)
	c.Assert(bytes.Contains(packet, doc), qt.IsTrue)
}

func TestUnwrapSegment(t *testing.T) {
	c := qt.New(t)

	payload := []byte("<?xpacket ...")
	seg := append([]byte(xmpSignature), payload...)
	c.Assert(unwrapSegment(seg), qt.DeepEquals, payload)

	// an EXIF APP1 segment is not an XMP segment
	c.Assert(unwrapSegment([]byte("Exif\x00\x00MM")), qt.IsNil)
}
