package xmpfile

import (
	"bytes"
	"fmt"

	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
)

// xmpSignature prefixes the XMP APP1 segment payload, distinguishing it
// from the EXIF APP1 segment.
const xmpSignature = "http://ns.adobe.com/xap/1.0/\x00"

const markerAPP1 = 0xE1

// wrapPacket frames a serialized XMP document in the xpacket wrapper
// readers expect inside image headers.
func wrapPacket(doc []byte) []byte {
	var b bytes.Buffer
	b.WriteString("<?xpacket begin=\"\xef\xbb\xbf\" id=\"W5M0MpCehiHzreSzNTczkc9d\"?>\n")
	b.Write(doc)
	b.WriteString("\n<?xpacket end=\"w\"?>")
	return b.Bytes()
}

// unwrapSegment strips the APP1 signature from a segment payload,
// returning nil when the segment is not an XMP segment.
func unwrapSegment(data []byte) []byte {
	if !bytes.HasPrefix(data, []byte(xmpSignature)) {
		return nil
	}
	return data[len(xmpSignature):]
}

// spliceJPEGPacket returns the JPEG rebuilt with packet as its XMP APP1
// segment, replacing the existing one or inserting a new segment after the
// leading APPn block (so an EXIF segment stays first, as the spec for
// JPEG/XMP placement requires).
func spliceJPEGPacket(original, packet []byte) ([]byte, error) {
	jmp := jpegstructure.NewJpegMediaParser()
	intfc, err := jmp.ParseBytes(original)
	if err != nil {
		return nil, fmt.Errorf("parsing jpeg: %w", err)
	}
	sl := intfc.(*jpegstructure.SegmentList)

	segData := append([]byte(xmpSignature), packet...)

	segments := sl.Segments()
	replaced := false
	for _, s := range segments {
		if s.MarkerId == markerAPP1 && bytes.HasPrefix(s.Data, []byte(xmpSignature)) {
			s.Data = segData
			replaced = true
			break
		}
	}

	if !replaced {
		insert := 1 // right after SOI
		for i := 1; i < len(segments); i++ {
			if segments[i].MarkerId >= 0xE0 && segments[i].MarkerId <= 0xEF {
				insert = i + 1
				continue
			}
			break
		}
		seg := &jpegstructure.Segment{MarkerId: markerAPP1, Data: segData}
		rebuilt := make([]*jpegstructure.Segment, 0, len(segments)+1)
		rebuilt = append(rebuilt, segments[:insert]...)
		rebuilt = append(rebuilt, seg)
		rebuilt = append(rebuilt, segments[insert:]...)
		sl = jpegstructure.NewSegmentList(rebuilt)
	}

	var out bytes.Buffer
	if err := sl.Write(&out); err != nil {
		return nil, fmt.Errorf("writing jpeg: %w", err)
	}
	return out.Bytes(), nil
}
