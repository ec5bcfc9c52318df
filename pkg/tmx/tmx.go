// Package tmx provides read/mutate/write access to TMX translation memory
// files. It exposes the document as an ordered collection of translation
// units (tu), each holding ordered language variants (tuv) with a seg
// element; the cleaning engine consumes and mutates this view in place.
package tmx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// Document is a parsed TMX file.
type Document struct {
	doc *etree.Document
}

// Load parses a TMX file from disk.
func Load(path string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("failed to parse TMX file %s: %w", path, err)
	}
	return &Document{doc: doc}, nil
}

// Parse parses TMX content from memory.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse TMX content: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Save serializes the document to path as UTF-8 with an XML declaration,
// creating parent directories as needed. Either the write fully succeeds or
// an error is returned; a partial file is never considered valid.
func (d *Document) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	d.ensureDeclaration()
	if err := d.doc.WriteToFile(path); err != nil {
		return fmt.Errorf("failed to write TMX file %s: %w", path, err)
	}
	return nil
}

// Bytes serializes the document to memory.
func (d *Document) Bytes() ([]byte, error) {
	d.ensureDeclaration()
	return d.doc.WriteToBytes()
}

// ensureDeclaration adds an XML declaration if the source had none.
func (d *Document) ensureDeclaration() {
	for _, tok := range d.doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}
	pi := d.doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	d.doc.Element.RemoveChild(pi)
	d.doc.Element.InsertChildAt(0, pi)
}

// Units returns every tu record in document order.
func (d *Document) Units() []*Unit {
	elements := d.doc.FindElements("//tu")
	units := make([]*Unit, len(elements))
	for i, el := range elements {
		units[i] = &Unit{el: el}
	}
	return units
}

// RemoveUnits detaches the given units from their parents in one batch.
// Units already processed by an iteration over a prior Units() snapshot are
// unaffected.
func (d *Document) RemoveUnits(units []*Unit) {
	for _, u := range units {
		if parent := u.el.Parent(); parent != nil {
			parent.RemoveChild(u.el)
		}
	}
}

// Unit is a single translation unit (tu). Its identity is its position in
// the owning document; it is mutated in place or removed, never copied.
type Unit struct {
	el *etree.Element
}

// Variants returns the unit's tuv children in document order.
func (u *Unit) Variants() []*Variant {
	elements := u.el.SelectElements("tuv")
	variants := make([]*Variant, len(elements))
	for i, el := range elements {
		variants[i] = &Variant{el: el}
	}
	return variants
}

// Variant is one language rendition (tuv) within a unit.
type Variant struct {
	el *etree.Element
}

// Lang returns the variant's language attribute, preferring xml:lang over
// the TMX 1.1 lang form.
func (v *Variant) Lang() string {
	if lang := v.el.SelectAttrValue("xml:lang", ""); lang != "" {
		return lang
	}
	return v.el.SelectAttrValue("lang", "")
}

// Text returns the variant's segment text: the seg element's own leading
// text plus, for every inline child element, that child's text followed by
// its tail. The concatenation order matters because tails carry in-between
// prose. A missing seg element yields "".
func (v *Variant) Text() string {
	seg := v.el.SelectElement("seg")
	if seg == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(seg.Text())
	for _, child := range seg.ChildElements() {
		sb.WriteString(child.Text())
		sb.WriteString(child.Tail())
	}
	return sb.String()
}

// SetText replaces the variant's segment content with plain text, discarding
// any inline markup structure. It is a no-op when the seg element is missing.
func (v *Variant) SetText(text string) {
	seg := v.el.SelectElement("seg")
	if seg == nil {
		return
	}
	seg.Child = nil
	seg.SetText(text)
}
