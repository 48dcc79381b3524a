package element

import (
	"strings"

	"github.com/sonnes/texgen/core"
)

var (
	urlEscaper  = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `#`, `\#`)
	pathEscaper = strings.NewReplacer(`%`, `\%`, `#`, `\#`, `~`, `\string~`)
)

// Href is a hyperlink. It requires hyperref.
type Href struct {
	core.Base
	URL  string
	Text core.Object // nil renders \url{...}
}

// NewHref returns a link to url labelled by text.
func NewHref(url string, text core.Object) *Href {
	h := &Href{URL: url, Text: text}
	h.AddPackages(core.NewPackage("hyperref"))
	return h
}

// Dumps renders \href, or \url when the link has no text.
func (h *Href) Dumps() (string, error) {
	url := urlEscaper.Replace(h.URL)
	if h.Text == nil {
		return `\url{` + url + `}`, nil
	}
	text, err := h.Text.Dumps()
	if err != nil {
		return "", err
	}
	return `\href{` + url + `}{` + text + `}`, nil
}

// Packages returns hyperref merged with the packages of the link text.
func (h *Href) Packages() *core.Packages {
	p := h.Base.Packages().Clone()
	if h.Text != nil {
		p.Merge(h.Text.Packages())
	}
	return p
}

// Strike strikes out its children with \sout. It requires ulem.
type Strike struct {
	Container
}

// NewStrike returns struck-out content.
func NewStrike(children ...core.Object) *Strike {
	s := &Strike{Container: Container{Children: children}}
	s.AddPackages(core.NewPackage("ulem", "normalem"))
	return s
}

// Dumps renders the children inside \sout.
func (s *Strike) Dumps() (string, error) {
	content, err := s.dumpsJoined("")
	if err != nil {
		return "", err
	}
	return `\sout{` + content + `}`, nil
}

// Image includes a graphics file. It requires graphicx.
type Image struct {
	core.Base
	Path    string
	Options []string // e.g. width=\linewidth
}

// NewImage returns an image scaled to the line width.
func NewImage(path string) *Image {
	i := &Image{Path: path, Options: []string{`width=\linewidth`}}
	i.AddPackages(core.NewPackage("graphicx"))
	return i
}

// Dumps renders \includegraphics. Characters that would end or comment out
// the file argument are escaped in Path.
func (i *Image) Dumps() (string, error) {
	return `\includegraphics` + dumpsOptions(i.Options) + `{` + pathEscaper.Replace(i.Path) + `}`, nil
}
