// Package render defines the interface for writing documents in various
// output formats.
package render

import (
	"io"

	"github.com/sonnes/texgen/document"
)

// Renderer writes a document to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, d *document.Document) error
}
