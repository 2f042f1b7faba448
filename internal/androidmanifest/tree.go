package androidmanifest

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Manifest field names and attribute keys used by the injector.
const (
	FieldUsesPermission = "uses-permission"
	FieldUsesFeature    = "uses-feature"

	AttrName     = "android:name"
	AttrRequired = "android:required"
)

// Attr is a single namespaced attribute, e.g. {"android:name", "..."}.
type Attr struct {
	Key   string
	Value string
}

// Record holds one element's attributes in document order.
type Record struct {
	attrs *orderedmap.OrderedMap[string, string]
}

// NewRecord returns a record holding attrs in the given order.
func NewRecord(attrs ...Attr) *Record {
	r := &Record{attrs: orderedmap.New[string, string]()}
	for _, a := range attrs {
		r.attrs.Set(a.Key, a.Value)
	}
	return r
}

// Get returns the value of key and whether the record carries it.
func (r *Record) Get(key string) (string, bool) {
	if r == nil || r.attrs == nil {
		return "", false
	}
	return r.attrs.Get(key)
}

// Set adds or replaces an attribute. New keys go last.
func (r *Record) Set(key, value string) {
	if r.attrs == nil {
		r.attrs = orderedmap.New[string, string]()
	}
	r.attrs.Set(key, value)
}

// Attrs returns the attributes in order.
func (r *Record) Attrs() []Attr {
	if r == nil || r.attrs == nil {
		return nil
	}
	out := make([]Attr, 0, r.attrs.Len())
	for pair := r.attrs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Attr{Key: pair.Key, Value: pair.Value})
	}
	return out
}

// Name returns the android:name attribute, if present.
func (r *Record) Name() (string, bool) {
	return r.Get(AttrName)
}

// Equal reports whether both records hold the same attributes in the same order.
func (r *Record) Equal(o *Record) bool {
	a, b := r.Attrs(), o.Attrs()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Tree maps manifest field names to their records, both in document order.
type Tree struct {
	fields *orderedmap.OrderedMap[string, []*Record]
}

// NewTree returns an empty manifest view.
func NewTree() *Tree {
	return &Tree{fields: orderedmap.New[string, []*Record]()}
}

// Field returns the records of a field and whether the field exists.
// A present field may hold zero records.
func (t *Tree) Field(name string) ([]*Record, bool) {
	return t.fields.Get(name)
}

// SetField replaces the records of a field, adding the field last if new.
func (t *Tree) SetField(name string, records []*Record) {
	t.fields.Set(name, records)
}

// Fields returns the field names in order.
func (t *Tree) Fields() []string {
	names := make([]string, 0, t.fields.Len())
	for pair := t.fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Equal reports structural equality: same fields, same records, same order.
func (t *Tree) Equal(o *Tree) bool {
	if t.fields.Len() != o.fields.Len() {
		return false
	}
	a, b := t.fields.Oldest(), o.fields.Oldest()
	for ; a != nil && b != nil; a, b = a.Next(), b.Next() {
		if a.Key != b.Key || len(a.Value) != len(b.Value) {
			return false
		}
		for i := range a.Value {
			if !a.Value[i].Equal(b.Value[i]) {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	c := NewTree()
	for pair := t.fields.Oldest(); pair != nil; pair = pair.Next() {
		records := make([]*Record, len(pair.Value))
		for i, r := range pair.Value {
			records[i] = NewRecord(r.Attrs()...)
		}
		c.fields.Set(pair.Key, records)
	}
	return c
}
