package flickr

import (
	"github.com/pixelarchive/xmptool/core"
)

// Entry maps one or more sidecar keys onto an XMP property. Extract pulls
// the raw value(s) out of the parsed sidecar and applies the entry's
// transform; a nil result means the sidecar has nothing for this field and
// the existing XMP value must be left untouched.
type Entry struct {
	Keys    []string
	Prop    core.Property
	Extract func(*Photo) []string
}

// Schema is the fixed mapping from Flickr annotations to XMP properties.
// Fields not listed here are never modified by a merge.
var Schema = []Entry{
	{
		Keys: []string{"id"},
		Prop: core.Property{NS: core.NSPhotoshop, Prefix: "photoshop", Name: "Instructions", Form: core.Simple},
		Extract: func(p *Photo) []string {
			return scalar(p.ID)
		},
	},
	{
		Keys: []string{"name"},
		Prop: core.Property{NS: core.NSDC, Prefix: "dc", Name: "title", Form: core.Alternative},
		Extract: func(p *Photo) []string {
			return scalar(p.Name)
		},
	},
	{
		Keys: []string{"description"},
		Prop: core.Property{NS: core.NSDC, Prefix: "dc", Name: "description", Form: core.Alternative},
		Extract: func(p *Photo) []string {
			return scalar(p.Description)
		},
	},
	{
		// Two sidecar keys feed one property: the import date stands in
		// when the photo has no taken date.
		Keys: []string{"date_taken", "date_imported"},
		Prop: core.Property{NS: core.NSXmp, Prefix: "xmp", Name: "CreateDate", Form: core.Simple},
		Extract: func(p *Photo) []string {
			if p.DateTaken != "" {
				return scalar(xmpDate(p.DateTaken))
			}
			return scalar(xmpDate(p.DateImported))
		},
	},
	{
		Keys: []string{"tags"},
		Prop: core.Property{NS: core.NSDC, Prefix: "dc", Name: "subject", Form: core.Unordered},
		Extract: func(p *Photo) []string {
			var tags []string
			for _, t := range p.Tags {
				if t.MachineTag || t.Tag == "" {
					continue
				}
				tags = append(tags, t.Tag)
			}
			return tags
		},
	},
	{
		Keys: []string{"albums"},
		Prop: core.Property{NS: core.NSPhotoshop, Prefix: "photoshop", Name: "SupplementalCategories", Form: core.Unordered},
		Extract: func(p *Photo) []string {
			var titles []string
			for _, a := range p.Albums {
				if a.Title != "" {
					titles = append(titles, a.Title)
				}
			}
			return titles
		},
	},
}

func scalar(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
