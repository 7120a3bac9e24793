package ptero

import "github.com/tidwall/gjson"

// Document is a partially-known JSON value returned by the panel API.
// The panel's response shapes vary by resource and panel version, so
// fields are read defensively: every accessor returns a zero value when
// the path is absent rather than failing.
type Document struct {
	res gjson.Result
}

// ParseDocument wraps a raw JSON body in a Document.
func ParseDocument(raw []byte) Document {
	return Document{res: gjson.ParseBytes(raw)}
}

// emptyDocument is returned for no-content responses.
func emptyDocument() Document {
	return Document{res: gjson.Parse("{}")}
}

// Get returns the value at a gjson path.
func (d Document) Get(path string) gjson.Result {
	return d.res.Get(path)
}

// Exists reports whether a path is present.
func (d Document) Exists(path string) bool {
	return d.res.Get(path).Exists()
}

// Str returns the string at path, or "" if absent.
func (d Document) Str(path string) string {
	return d.res.Get(path).String()
}

// Int returns the integer at path, or 0 if absent.
func (d Document) Int(path string) int64 {
	return d.res.Get(path).Int()
}

// Float returns the float at path, or 0 if absent.
func (d Document) Float(path string) float64 {
	return d.res.Get(path).Float()
}

// Bool returns the boolean at path, or false if absent.
func (d Document) Bool(path string) bool {
	return d.res.Get(path).Bool()
}

// Attr reads a field under the envelope's "attributes" object.
func (d Document) Attr(name string) gjson.Result {
	return d.res.Get("attributes." + name)
}

// AttrStr returns attributes.<name> as a string, or "" if absent.
func (d Document) AttrStr(name string) string {
	return d.res.Get("attributes." + name).String()
}

// AttrInt returns attributes.<name> as an integer, or 0 if absent.
func (d Document) AttrInt(name string) int64 {
	return d.res.Get("attributes." + name).Int()
}

// Array returns the elements at path as Documents. An absent or
// non-array value yields an empty slice.
func (d Document) Array(path string) []Document {
	elems := d.res.Get(path).Array()
	out := make([]Document, 0, len(elems))
	for _, e := range elems {
		out = append(out, Document{res: e})
	}
	return out
}

// StrMap returns the object at path as a string-to-string map. Absent
// or non-object values yield an empty map; non-string members are
// stringified.
func (d Document) StrMap(path string) map[string]string {
	out := make(map[string]string)
	d.res.Get(path).ForEach(func(key, value gjson.Result) bool {
		out[key.String()] = value.String()
		return true
	})
	return out
}

// Raw returns the underlying JSON text of the document.
func (d Document) Raw() string {
	return d.res.Raw
}
