// Package markdown reads Markdown files with optional YAML front matter into
// LaTeX documents.
package markdown

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/sonnes/texgen/core"
	"github.com/sonnes/texgen/document"
)

// Reader converts Markdown into documents.
type Reader struct {
	// Highlight renders fenced code with chroma highlighting instead of
	// lstlisting. Front matter can also enable it.
	Highlight bool

	md goldmark.Markdown
}

// New creates a Reader with goldmark configured for GFM.
func New() *Reader {
	return &Reader{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// frontMatter is the YAML block between leading "---" lines.
type frontMatter struct {
	Class     string        `yaml:"class"`
	Options   []string      `yaml:"options"`
	Title     string        `yaml:"title"`
	Author    string        `yaml:"author"`
	Date      string        `yaml:"date"`
	Packages  []packageSpec `yaml:"packages"`
	Preamble  []string      `yaml:"preamble"`
	Highlight bool          `yaml:"highlight"`
}

// packageSpec accepts either a bare name or a {name, options} mapping.
type packageSpec struct {
	Name    string   `yaml:"name"`
	Options []string `yaml:"options"`
}

func (p *packageSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		p.Name = node.Value
		return nil
	}
	type plain packageSpec
	return node.Decode((*plain)(p))
}

// ReadFile parses the Markdown file at path.
func (r *Reader) ReadFile(path string) (*document.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open markdown file: %w", err)
	}
	defer f.Close()

	return r.Read(f)
}

// Read parses Markdown from rd.
func (r *Reader) Read(rd io.Reader) (*document.Document, error) {
	src, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}
	return r.Parse(src)
}

// Parse converts Markdown source into a document.
func (r *Reader) Parse(src []byte) (*document.Document, error) {
	var fm frontMatter
	raw, body, ok := splitFrontMatter(src)
	if ok {
		if err := yaml.Unmarshal(raw, &fm); err != nil {
			return nil, fmt.Errorf("parse front matter: %w", err)
		}
	}

	class := fm.Class
	if class == "" {
		class = document.DefaultClass
	}
	doc := document.New(class)
	doc.ClassOptions = fm.Options
	doc.Title = fm.Title
	doc.Author = fm.Author
	doc.Date = fm.Date

	for _, p := range fm.Packages {
		if p.Name == "" {
			return nil, fmt.Errorf("parse front matter: package without name")
		}
		doc.AddPackages(core.NewPackage(p.Name, p.Options...))
	}
	for _, line := range fm.Preamble {
		doc.AddPackages(core.RawRequirement(line))
	}

	md := r.md
	if md == nil {
		md = goldmark.New(goldmark.WithExtensions(extension.GFM))
	}
	root := md.Parser().Parse(text.NewReader(body))

	c := &converter{src: body, highlight: r.Highlight || fm.Highlight}
	doc.Append(c.document(root)...)
	return doc, nil
}

// splitFrontMatter separates a leading "---" delimited YAML block from the
// Markdown body.
func splitFrontMatter(src []byte) (fm, body []byte, ok bool) {
	src = bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	if !bytes.HasPrefix(src, []byte("---\n")) && !bytes.HasPrefix(src, []byte("---\r\n")) {
		return nil, src, false
	}
	_, rest, _ := bytes.Cut(src, []byte("\n"))

	for off := 0; off < len(rest); {
		line := rest[off:]
		next := len(rest)
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			next = off + i + 1
		}
		if string(bytes.TrimRight(line, "\r \t")) == "---" {
			return rest[:off], rest[next:], true
		}
		off = next
	}
	return nil, src, false
}
