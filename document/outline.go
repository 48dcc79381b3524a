package document

import (
	"github.com/sonnes/texgen/core"
	"github.com/sonnes/texgen/element"
)

// Heading is one entry of a document outline.
type Heading struct {
	Title string `json:"title"`
	Level int    `json:"level"`
}

// Outline returns every section in the body in document order.
func (d *Document) Outline() []Heading {
	var out []Heading
	if d.Body == nil {
		return out
	}
	element.Walk(d.Body, func(o core.Object, _ int) bool {
		if s, ok := o.(*element.Section); ok {
			out = append(out, Heading{Title: s.Title, Level: s.Level})
		}
		return true
	})
	return out
}
