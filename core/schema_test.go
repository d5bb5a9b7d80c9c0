package core

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestResolveField(t *testing.T) {
	c := qt.New(t)

	p, ok := ResolveField("dc:subject")
	c.Assert(ok, qt.IsTrue)
	c.Assert(p.NS, qt.Equals, NSDC)
	c.Assert(p.Form, qt.Equals, Unordered)
	c.Assert(p.Form.IsArray(), qt.IsTrue)

	p, ok = ResolveField("dc:title")
	c.Assert(ok, qt.IsTrue)
	c.Assert(p.Form, qt.Equals, Alternative)
	c.Assert(p.Form.IsArray(), qt.IsFalse)

	_, ok = ResolveField("dc:nope")
	c.Assert(ok, qt.IsFalse)
}

func TestFieldNamesOrder(t *testing.T) {
	c := qt.New(t)

	names := FieldNames()
	c.Assert(len(names), qt.Equals, len(Schema))
	c.Assert(names[0], qt.Equals, "xmp:CreateDate")
	c.Assert(names[len(names)-1], qt.Equals, "exifEX:LensModel")

	// every name resolves back to its own entry
	for i, name := range names {
		p, ok := ResolveField(name)
		c.Assert(ok, qt.IsTrue)
		c.Assert(p, qt.Equals, Schema[i])
	}
}
