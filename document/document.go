// Package document assembles a complete LaTeX document from a body of
// elements, collecting the packages required anywhere in the tree into the
// preamble.
package document

import (
	"strings"

	"github.com/sonnes/texgen/core"
	"github.com/sonnes/texgen/element"
)

// DefaultClass is used when Class is empty.
const DefaultClass = "article"

// DefaultPackages are required by every document.
func DefaultPackages() []core.Requirement {
	return []core.Requirement{
		core.NewPackage("fontenc", "T1"),
		core.NewPackage("inputenc", "utf8"),
		core.NewPackage("lmodern"),
	}
}

// Document is a full LaTeX document.
type Document struct {
	core.Base
	Class        string
	ClassOptions []string
	Title        string
	Author       string
	Date         string // empty omits \date; "today" emits \today
	Body         *element.Container
}

// New returns an empty document of the given class with the default
// packages.
func New(class string) *Document {
	d := &Document{Class: class, Body: element.NewContainer()}
	d.AddPackages(DefaultPackages()...)
	return d
}

// Append adds elements to the document body.
func (d *Document) Append(children ...core.Object) {
	if d.Body == nil {
		d.Body = element.NewContainer()
	}
	d.Body.Append(children...)
}

// Packages returns the document's own packages followed by every package
// required in the body. Only the document's own packages persist between
// calls.
func (d *Document) Packages() *core.Packages {
	p := d.Base.Packages().Clone()
	if d.Body != nil {
		p.Merge(d.Body.Packages())
	}
	return p
}

// Contents returns the body elements.
func (d *Document) Contents() []core.Object {
	if d.Body == nil {
		return nil
	}
	return d.Body.Contents()
}

// Dumps renders the preamble followed by the body inside the document
// environment.
func (d *Document) Dumps() (string, error) {
	class := d.Class
	if class == "" {
		class = DefaultClass
	}

	var lines []string
	lines = append(lines, `\documentclass`+options(d.ClassOptions)+`{`+class+`}`)

	pkgs, err := core.DumpsPackages(d)
	if err != nil {
		return "", err
	}
	if pkgs != "" {
		lines = append(lines, pkgs)
	}

	if d.Title != "" {
		lines = append(lines, `\title{`+core.EscapeLatex(d.Title)+`}`)
	}
	if d.Author != "" {
		lines = append(lines, `\author{`+core.EscapeLatex(d.Author)+`}`)
	}
	switch d.Date {
	case "":
	case "today":
		lines = append(lines, `\date{\today}`)
	default:
		lines = append(lines, `\date{`+core.EscapeLatex(d.Date)+`}`)
	}

	lines = append(lines, "", `\begin{document}`)
	if d.Title != "" {
		lines = append(lines, `\maketitle`)
	}
	if d.Body != nil {
		body, err := d.Body.Dumps()
		if err != nil {
			return "", err
		}
		if body = strings.TrimRight(body, "\n"); body != "" {
			lines = append(lines, body)
		}
	}
	lines = append(lines, `\end{document}`)

	return strings.Join(lines, "\n") + "\n", nil
}

// GenerateTex writes the document to path with the .tex extension.
func (d *Document) GenerateTex(path string) error {
	return core.GenerateTex(path, d)
}

func options(opts []string) string {
	if len(opts) == 0 {
		return ""
	}
	return "[" + strings.Join(opts, ",") + "]"
}
