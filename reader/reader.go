// Package reader defines the interface for parsing source files into LaTeX
// documents.
package reader

import (
	"io"

	"github.com/sonnes/texgen/document"
)

// Reader parses source text into a document.
type Reader interface {
	// Read parses a document from r.
	Read(r io.Reader) (*document.Document, error)

	// ReadFile parses the file at the given path.
	ReadFile(path string) (*document.Document, error)
}
