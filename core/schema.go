package core

// Namespace URIs for every schema the tool maps.
const (
	NSXmp         = "http://ns.adobe.com/xap/1.0/"
	NSPhotoshop   = "http://ns.adobe.com/photoshop/1.0/"
	NSDC          = "http://purl.org/dc/elements/1.1/"
	NSIptc4xmpExt = "http://iptc.org/std/Iptc4xmpExt/2008-02-29/"
	NSTiff        = "http://ns.adobe.com/tiff/1.0/"
	NSExifEX      = "http://cipa.jp/exif/1.0/"
)

// Schema is the fixed mapping between tabular columns and XMP properties.
// The slice order is the registry order: it decides the CSV column order
// and the iteration order of every batch operation. The mapping is defined
// once here and never mutated at runtime.
var Schema = []Property{
	{NS: NSXmp, Prefix: "xmp", Name: "CreateDate", Form: Simple},
	{NS: NSXmp, Prefix: "xmp", Name: "CreatorTool", Form: Simple},
	{NS: NSXmp, Prefix: "xmp", Name: "Label", Form: Simple},
	{NS: NSXmp, Prefix: "xmp", Name: "Rating", Form: Simple},
	{NS: NSPhotoshop, Prefix: "photoshop", Name: "AuthorsPosition", Form: Simple},
	{NS: NSPhotoshop, Prefix: "photoshop", Name: "Instructions", Form: Simple},
	{NS: NSDC, Prefix: "dc", Name: "creator", Form: Ordered},
	{NS: NSDC, Prefix: "dc", Name: "subject", Form: Unordered},
	{NS: NSDC, Prefix: "dc", Name: "description", Form: Alternative},
	{NS: NSDC, Prefix: "dc", Name: "title", Form: Alternative},
	{NS: NSIptc4xmpExt, Prefix: "Iptc4xmpExt", Name: "PersonInImage", Form: Unordered},
	{NS: NSTiff, Prefix: "tiff", Name: "ImageWidth", Form: Simple},
	{NS: NSTiff, Prefix: "tiff", Name: "ImageLength", Form: Simple},
	{NS: NSTiff, Prefix: "tiff", Name: "Make", Form: Simple},
	{NS: NSTiff, Prefix: "tiff", Name: "Model", Form: Simple},
	{NS: NSExifEX, Prefix: "exifEX", Name: "LensModel", Form: Simple},
}

var schemaByColumn = func() map[string]Property {
	m := make(map[string]Property, len(Schema))
	for _, p := range Schema {
		m[p.Path()] = p
	}
	return m
}()

// ResolveField looks up a schema property by its column name
// ("prefix:Property"). Unknown names report ok=false; callers decide
// whether that is a warning or a schema mismatch.
func ResolveField(column string) (Property, bool) {
	p, ok := schemaByColumn[column]
	return p, ok
}

// FieldNames returns the registry-ordered column names.
func FieldNames() []string {
	names := make([]string, len(Schema))
	for i, p := range Schema {
		names[i] = p.Path()
	}
	return names
}
