package infoplist

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/beevik/etree"
	"github.com/mcuadros/go-defaults"
)

// Options controls how new plist nodes are formatted.
type Options struct {
	// Indent is one nesting level, used when the file's own indentation
	// cannot be inferred.
	Indent string `default:"\t"`
}

// Document is a parsed XML property list whose root is a dictionary.
type Document struct {
	doc  *etree.Document
	dict *etree.Element
	opts Options

	// values and elems describe the dictionary as of the last Parse or Commit.
	values map[string]any
	elems  map[string]*etree.Element
}

// Parse reads an XML plist. The <plist> root must hold a <dict>.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing plist XML: %w", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "plist" {
		return nil, fmt.Errorf("plist has no <plist> root element")
	}
	dict := root.SelectElement("dict")
	if dict == nil {
		return nil, fmt.Errorf("plist root is not a dictionary")
	}

	d := &Document{
		doc:    doc,
		dict:   dict,
		values: make(map[string]any),
		elems:  make(map[string]*etree.Element),
	}
	defaults.SetDefaults(&d.opts)

	children := dict.ChildElements()
	if len(children)%2 != 0 {
		return nil, fmt.Errorf("plist dictionary has a key without a value")
	}
	for i := 0; i < len(children); i += 2 {
		key, val := children[i], children[i+1]
		if key.Tag != "key" {
			return nil, fmt.Errorf("plist dictionary: expected <key>, got <%s>", key.Tag)
		}
		if _, dup := d.values[key.Text()]; dup {
			return nil, fmt.Errorf("plist dictionary: duplicate key %q", key.Text())
		}
		d.values[key.Text()] = decode(val)
		d.elems[key.Text()] = val
	}

	return d, nil
}

// Load reads and parses the plist file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plist %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading plist %s: %w", path, err)
	}
	return d, nil
}

// Tree returns a detached view of the top-level dictionary in file order.
func (d *Document) Tree() *Tree {
	t := NewTree()
	children := d.dict.ChildElements()
	for i := 0; i+1 < len(children); i += 2 {
		key := children[i].Text()
		t.Set(key, cloneValue(d.values[key]))
	}
	return t
}

// Commit writes t back into the document. Keys new since the last Parse or
// Commit are appended to the dictionary. An array that only grew at its end
// gets the new items appended to its existing node; any other changed value
// has its node replaced in place. Keys missing from t are left in the file.
func (d *Document) Commit(t *Tree) error {
	keyIndent, unit := d.indentation()

	for _, key := range t.Keys() {
		v, _ := t.Get(key)
		old, existed := d.values[key]
		if existed && reflect.DeepEqual(old, v) {
			continue
		}
		if added, ok := appended(old, v); existed && ok {
			if err := d.extendArray(d.elems[key], added, keyIndent, unit); err != nil {
				return fmt.Errorf("encoding %s: %w", key, err)
			}
			d.values[key] = cloneValue(v)
			continue
		}

		el, err := encode(v, keyIndent, unit)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", key, err)
		}

		if existed {
			prev := d.elems[key]
			i := indexOf(d.dict, prev)
			d.dict.RemoveChildAt(i)
			d.dict.InsertChildAt(i, el)
		} else {
			keyEl := etree.NewElement("key")
			keyEl.SetText(key)
			d.append(keyEl, el, keyIndent)
		}

		d.values[key] = cloneValue(v)
		d.elems[key] = el
	}
	return nil
}

// Bytes serializes the document.
func (d *Document) Bytes() ([]byte, error) {
	out, err := d.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing plist: %w", err)
	}
	return out, nil
}

func (d *Document) append(key, val *etree.Element, indent string) {
	tokens := []etree.Token{key, val}
	if indent != "" {
		tokens = []etree.Token{etree.NewText(indent), key, etree.NewText(indent), val}
	}

	n := len(d.dict.Child)
	if n > 0 && isSpace(d.dict.Child[n-1]) {
		for i, tok := range tokens {
			d.dict.InsertChildAt(n-1+i, tok)
		}
		return
	}
	for _, tok := range tokens {
		d.dict.AddChild(tok)
	}
}

// appended returns the items v adds to the end of the array old, when old is
// a prefix of v.
func appended(old, v any) ([]any, bool) {
	a, ok := old.([]any)
	if !ok {
		return nil, false
	}
	b, ok := v.([]any)
	if !ok || len(b) <= len(a) || !reflect.DeepEqual(a, b[:len(a)]) {
		return nil, false
	}
	return b[len(a):], true
}

// extendArray inserts items after the last element of arr. Existing children,
// comments included, are kept; new items copy the whitespace in front of the
// last existing item.
func (d *Document) extendArray(arr *etree.Element, items []any, keyIndent, unit string) error {
	pos, ws := len(arr.Child), ""
	closing := ""
	if last := lastElement(arr); last != nil {
		pos = indexOf(arr, last) + 1
		ws = leadingSpace(arr, pos-1)
	} else {
		if pos > 0 && isSpace(arr.Child[pos-1]) {
			pos--
		} else if pos == 0 && keyIndent != "" {
			closing = keyIndent
		}
		if keyIndent != "" {
			ws = keyIndent + unit
		}
	}

	for _, item := range items {
		el, err := encode(item, keyIndent+unit, unit)
		if err != nil {
			return err
		}
		if ws != "" {
			arr.InsertChildAt(pos, etree.NewText(ws))
			pos++
		}
		arr.InsertChildAt(pos, el)
		pos++
	}
	if closing != "" {
		arr.AddChild(etree.NewText(closing))
	}
	return nil
}

func lastElement(parent *etree.Element) *etree.Element {
	children := parent.ChildElements()
	if len(children) == 0 {
		return nil
	}
	return children[len(children)-1]
}

// indentation infers the whitespace before a top-level key and the width of
// one nesting level from the dictionary's own layout.
func (d *Document) indentation() (keyIndent, unit string) {
	dictIndent := leadingSpace(d.dict.Parent(), indexOf(d.dict.Parent(), d.dict))
	unit = d.opts.Indent

	first := d.dict.SelectElement("key")
	if first == nil {
		if len(d.dict.Child) == 0 {
			return "", unit
		}
		return dictIndent + unit, unit
	}

	keyIndent = leadingSpace(d.dict, indexOf(d.dict, first))
	if keyIndent == "" {
		return "", ""
	}
	if dictIndent == "" {
		dictIndent = "\n"
	}
	if strings.HasPrefix(keyIndent, dictIndent) && len(keyIndent) > len(dictIndent) {
		unit = keyIndent[len(dictIndent):]
	}
	return keyIndent, unit
}

func decode(el *etree.Element) any {
	switch el.Tag {
	case "string":
		return el.Text()
	case "true":
		return true
	case "false":
		return false
	case "array":
		items := []any{}
		for _, child := range el.ChildElements() {
			items = append(items, decode(child))
		}
		return items
	default:
		return Raw{elem: el}
	}
}

// encode builds the element for v. indent is the whitespace before the
// element itself; array items are nested one unit deeper.
func encode(v any, indent, unit string) (*etree.Element, error) {
	switch val := v.(type) {
	case string:
		el := etree.NewElement("string")
		el.SetText(val)
		return el, nil
	case bool:
		if val {
			return etree.NewElement("true"), nil
		}
		return etree.NewElement("false"), nil
	case []any:
		el := etree.NewElement("array")
		for _, item := range val {
			child, err := encode(item, indent+unit, unit)
			if err != nil {
				return nil, err
			}
			if indent != "" {
				el.AddChild(etree.NewText(indent + unit))
			}
			el.AddChild(child)
		}
		if indent != "" && len(val) > 0 {
			el.AddChild(etree.NewText(indent))
		}
		return el, nil
	case Raw:
		if val.elem == nil {
			return nil, fmt.Errorf("empty raw value")
		}
		return val.elem.Copy(), nil
	default:
		return nil, fmt.Errorf("unsupported plist value type %T", v)
	}
}

func indexOf(parent *etree.Element, el *etree.Element) int {
	if parent == nil {
		return -1
	}
	for i, tok := range parent.Child {
		if e, ok := tok.(*etree.Element); ok && e == el {
			return i
		}
	}
	return -1
}

func leadingSpace(parent *etree.Element, i int) string {
	if parent == nil || i <= 0 || !isSpace(parent.Child[i-1]) {
		return ""
	}
	return parent.Child[i-1].(*etree.CharData).Data
}

func isSpace(tok etree.Token) bool {
	cd, ok := tok.(*etree.CharData)
	return ok && strings.TrimSpace(cd.Data) == ""
}
