package xmpfile

import (
	"github.com/trimmer-io/go-xmp/xmp"

	"github.com/pixelarchive/xmptool/core"
)

// go-xmp bundles no model for the IPTC Extension namespace, and its
// document rejects paths in namespaces it has no model for. Register a
// minimal one covering the properties the schema maps, the same way the
// bundled models register theirs.
var nsIptc4xmpExt = xmp.NewNamespace("Iptc4xmpExt", core.NSIptc4xmpExt, newIptc4xmpExt)

func init() {
	xmp.Register(nsIptc4xmpExt, xmp.XmpMetadata)
}

func newIptc4xmpExt(name string) xmp.Model {
	return &iptc4xmpExt{}
}

type iptc4xmpExt struct {
	PersonInImage xmp.StringArray `xmp:"Iptc4xmpExt:PersonInImage"`
}

func (m *iptc4xmpExt) Can(nsName string) bool {
	return nsName == nsIptc4xmpExt.GetName()
}

func (m *iptc4xmpExt) Namespaces() xmp.NamespaceList {
	return xmp.NamespaceList{nsIptc4xmpExt}
}

func (m *iptc4xmpExt) SyncModel(d *xmp.Document) error {
	return nil
}

func (m *iptc4xmpExt) SyncFromXMP(d *xmp.Document) error {
	return nil
}

func (m *iptc4xmpExt) SyncToXMP(d *xmp.Document) error {
	return nil
}

func (m *iptc4xmpExt) CanTag(tag string) bool {
	_, err := xmp.GetNativeField(m, tag)
	return err == nil
}

func (m *iptc4xmpExt) GetTag(tag string) (string, error) {
	return xmp.GetNativeField(m, tag)
}

func (m *iptc4xmpExt) SetTag(tag, value string) error {
	return xmp.SetNativeField(m, tag, value)
}
