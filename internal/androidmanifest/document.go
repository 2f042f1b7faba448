package androidmanifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
)

const (
	rootTag        = "manifest"
	applicationTag = "application"
)

// Document is a parsed AndroidManifest.xml.
type Document struct {
	doc  *etree.Document
	root *etree.Element
}

// Parse reads manifest XML. The document must have a <manifest> root.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing manifest XML: %w", err)
	}

	root := doc.Root()
	if root == nil || root.FullTag() != rootTag {
		return nil, fmt.Errorf("manifest has no <%s> root element", rootTag)
	}

	return &Document{doc: doc, root: root}, nil
}

// Load reads and parses the manifest file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading manifest %s: %w", path, err)
	}
	return d, nil
}

// Tree returns a fresh view of the <manifest> children, grouped by element
// name. The view is detached: changes reach the document only through Commit.
func (d *Document) Tree() *Tree {
	t := NewTree()
	for _, el := range d.root.ChildElements() {
		name := el.FullTag()
		records, _ := t.Field(name)
		t.SetField(name, append(records, recordOf(el)))
	}
	return t
}

// Commit writes records appended to t since Tree was called into the
// document. Each new element goes after the last sibling of the same name,
// or before <application> when there is none, or at the end of <manifest>.
// Existing elements are left untouched. A field holding fewer records than
// the document has elements is rejected, since Commit never deletes.
func (d *Document) Commit(t *Tree) error {
	for _, name := range t.Fields() {
		records, _ := t.Field(name)
		existing := countChildren(d.root, name)
		if len(records) < existing {
			return fmt.Errorf("field %s has %d records, document has %d elements", name, len(records), existing)
		}
		for _, r := range records[existing:] {
			d.insert(name, r)
		}
	}
	return nil
}

// Bytes serializes the document.
func (d *Document) Bytes() ([]byte, error) {
	out, err := d.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing manifest: %w", err)
	}
	return out, nil
}

func recordOf(el *etree.Element) *Record {
	r := NewRecord()
	for _, a := range el.Attr {
		r.Set(a.FullKey(), a.Value)
	}
	return r
}

func (d *Document) insert(name string, r *Record) {
	el := etree.NewElement(name)
	for _, a := range r.Attrs() {
		el.CreateAttr(a.Key, a.Value)
	}

	parent := d.root
	if last := lastChild(parent, name); last != nil {
		i := indexOf(parent, last)
		ws := leadingSpace(parent, i)
		parent.InsertChildAt(i+1, el)
		if ws != "" {
			parent.InsertChildAt(i+1, etree.NewText(ws))
		}
		return
	}

	if app := parent.SelectElement(applicationTag); app != nil {
		i := indexOf(parent, app)
		ws := leadingSpace(parent, i)
		parent.InsertChildAt(i, el)
		if ws != "" {
			parent.InsertChildAt(i+1, etree.NewText(ws))
		}
		return
	}

	ws := ""
	if first := firstElement(parent); first != nil {
		ws = leadingSpace(parent, indexOf(parent, first))
	}
	n := len(parent.Child)
	if n > 0 && isSpace(parent.Child[n-1]) {
		parent.InsertChildAt(n-1, el)
		if ws != "" {
			parent.InsertChildAt(n-1, etree.NewText(ws))
		}
		return
	}
	if ws != "" {
		parent.AddChild(etree.NewText(ws))
	}
	parent.AddChild(el)
}

func countChildren(parent *etree.Element, name string) int {
	n := 0
	for _, el := range parent.ChildElements() {
		if el.FullTag() == name {
			n++
		}
	}
	return n
}

func lastChild(parent *etree.Element, name string) *etree.Element {
	var last *etree.Element
	for _, el := range parent.ChildElements() {
		if el.FullTag() == name {
			last = el
		}
	}
	return last
}

func firstElement(parent *etree.Element) *etree.Element {
	children := parent.ChildElements()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

func indexOf(parent *etree.Element, el *etree.Element) int {
	for i, tok := range parent.Child {
		if e, ok := tok.(*etree.Element); ok && e == el {
			return i
		}
	}
	return -1
}

// leadingSpace returns the whitespace token right before child i, or "".
func leadingSpace(parent *etree.Element, i int) string {
	if i <= 0 || !isSpace(parent.Child[i-1]) {
		return ""
	}
	return parent.Child[i-1].(*etree.CharData).Data
}

func isSpace(tok etree.Token) bool {
	cd, ok := tok.(*etree.CharData)
	return ok && strings.TrimSpace(cd.Data) == ""
}
