// Package latex renders documents as LaTeX source.
package latex

import (
	"io"

	"github.com/sonnes/texgen/core"
	"github.com/sonnes/texgen/document"
)

// Renderer writes the LaTeX source of a document.
type Renderer struct {
	// PackagesOnly writes just the preamble requirement lines.
	PackagesOnly bool
}

// New creates a LaTeX Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes d to w.
func (r *Renderer) Render(w io.Writer, d *document.Document) error {
	if r.PackagesOnly {
		return core.DumpPackages(w, d)
	}
	return core.Dump(w, d)
}
