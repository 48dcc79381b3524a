package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sonnes/texgen/document"
	"github.com/sonnes/texgen/reader"
	"github.com/sonnes/texgen/reader/markdown"
	"github.com/sonnes/texgen/render"
	"github.com/sonnes/texgen/render/json"
	"github.com/sonnes/texgen/render/latex"
	"github.com/sonnes/texgen/render/terminal"
	"github.com/urfave/cli/v3"
)

// app holds reader and renderer registries used by CLI commands.
type app struct {
	readers   map[string]func(highlight bool) reader.Reader
	renderers map[string]func() render.Renderer
}

func newApp() *app {
	newMarkdown := func(highlight bool) reader.Reader {
		r := markdown.New()
		r.Highlight = highlight
		return r
	}
	return &app{
		readers: map[string]func(bool) reader.Reader{
			".md":       newMarkdown,
			".markdown": newMarkdown,
		},
		renderers: map[string]func() render.Renderer{
			"latex":    func() render.Renderer { return latex.New() },
			"terminal": func() render.Renderer { return terminal.New() },
			"json":     func() render.Renderer { return json.New() },
		},
	}
}

func (a *app) reader(path string, highlight bool) (reader.Reader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	fn, ok := a.readers[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported input %q (want .md or .markdown)", path)
	}
	return fn(highlight), nil
}

func (a *app) renderer(name string) (render.Renderer, error) {
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(), nil
}

// readDocument parses the --file input with the reader registered for its
// extension.
func (a *app) readDocument(cmd *cli.Command) (*document.Document, error) {
	path := cmd.String("file")
	r, err := a.reader(path, cmd.Bool("highlight"))
	if err != nil {
		return nil, err
	}
	return r.ReadFile(path)
}

// inputFlags are shared by every command that reads a source file.
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "Path to a Markdown source file",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "highlight",
			Usage: "Highlight code blocks with chroma instead of lstlisting",
		},
	}
}
