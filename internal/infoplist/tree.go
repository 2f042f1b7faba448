package infoplist

import (
	"reflect"

	"github.com/beevik/etree"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Raw is a plist value Tree does not interpret (dict, integer, date, ...).
type Raw struct {
	elem *etree.Element
}

// Tag returns the plist element name of the value, e.g. "dict".
func (r Raw) Tag() string {
	if r.elem == nil {
		return ""
	}
	return r.elem.Tag
}

// Tree is the top-level plist dictionary in key order.
type Tree struct {
	entries *orderedmap.OrderedMap[string, any]
}

// NewTree returns an empty plist view.
func NewTree() *Tree {
	return &Tree{entries: orderedmap.New[string, any]()}
}

// Get returns the value stored under key.
func (t *Tree) Get(key string) (any, bool) {
	return t.entries.Get(key)
}

// Set stores v under key. New keys go last.
func (t *Tree) Set(key string, v any) {
	t.entries.Set(key, v)
}

// String returns the value under key when it is a string.
func (t *Tree) String(key string) (string, bool) {
	v, ok := t.entries.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Keys returns the keys in order.
func (t *Tree) Keys() []string {
	keys := make([]string, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of keys.
func (t *Tree) Len() int {
	return t.entries.Len()
}

// Equal reports structural equality, key order included.
func (t *Tree) Equal(o *Tree) bool {
	if t.entries.Len() != o.entries.Len() {
		return false
	}
	a, b := t.entries.Oldest(), o.entries.Oldest()
	for ; a != nil && b != nil; a, b = a.Next(), b.Next() {
		if a.Key != b.Key || !reflect.DeepEqual(a.Value, b.Value) {
			return false
		}
	}
	return true
}

// Clone returns a copy of the tree. Arrays are copied; Raw values are shared.
func (t *Tree) Clone() *Tree {
	c := NewTree()
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		c.entries.Set(pair.Key, cloneValue(pair.Value))
	}
	return c
}

func cloneValue(v any) any {
	arr, ok := v.([]any)
	if !ok {
		return v
	}
	out := make([]any, len(arr))
	for i, item := range arr {
		out[i] = cloneValue(item)
	}
	return out
}
