// Package json renders a document summary and its LaTeX source as JSON.
package json

import (
	"encoding/json"
	"io"

	"github.com/sonnes/texgen/document"
)

// Renderer renders a document to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// New creates a JSON Renderer with indentation enabled.
func New() *Renderer {
	return &Renderer{Indent: true}
}

// Output is the JSON shape written by Render.
type Output struct {
	Class    string             `json:"class"`
	Title    string             `json:"title,omitempty"`
	Author   string             `json:"author,omitempty"`
	Packages []string           `json:"packages"`
	Outline  []document.Heading `json:"outline"`
	Latex    string             `json:"latex"`
}

// Render writes the document summary to w.
func (r *Renderer) Render(w io.Writer, d *document.Document) error {
	src, err := d.Dumps()
	if err != nil {
		return err
	}

	out := Output{
		Class:    d.Class,
		Title:    d.Title,
		Author:   d.Author,
		Packages: []string{},
		Outline:  d.Outline(),
		Latex:    src,
	}
	if out.Class == "" {
		out.Class = document.DefaultClass
	}
	if out.Outline == nil {
		out.Outline = []document.Heading{}
	}
	for _, req := range d.Packages().Items() {
		line, err := req.Dumps()
		if err != nil {
			return err
		}
		out.Packages = append(out.Packages, line)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
