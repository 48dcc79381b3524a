package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/sonnes/texgen/core"
	"github.com/sonnes/texgen/element"
)

// maxSectionLevel is the deepest heading that gets its own sectioning
// command; deeper headings become \paragraph.
const maxSectionLevel = 4

// converter maps a goldmark AST onto element trees.
type converter struct {
	src       []byte
	highlight bool
}

// document converts the top-level blocks, nesting content under the
// preceding heading of a lower level.
func (c *converter) document(root ast.Node) []core.Object {
	var out []core.Object
	var stack []*element.Section

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			level := min(h.Level, maxSectionLevel)
			for len(stack) > 0 && stack[len(stack)-1].Level >= level {
				stack = stack[:len(stack)-1]
			}
			s := element.NewSection(c.plainText(h), level)
			if len(stack) > 0 {
				stack[len(stack)-1].Append(s)
			} else {
				out = append(out, s)
			}
			stack = append(stack, s)
			continue
		}

		obj := c.block(n)
		if obj == nil {
			continue
		}
		if len(stack) > 0 {
			stack[len(stack)-1].Append(obj)
		} else {
			out = append(out, obj)
		}
	}
	return out
}

// blocks converts every block child of parent.
func (c *converter) blocks(parent ast.Node) []core.Object {
	var out []core.Object
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if obj := c.block(n); obj != nil {
			out = append(out, obj)
		}
	}
	return out
}

// block converts a single block node. Unsupported nodes yield nil.
func (c *converter) block(n ast.Node) core.Object {
	switch node := n.(type) {
	case *ast.Paragraph:
		return element.NewParagraph(c.inlines(node)...)

	case *ast.TextBlock:
		return span(c.inlines(node))

	case *ast.Heading:
		// Headings nested in lists or quotes have no section to open.
		return element.Bold(element.NewText(c.plainText(node)))

	case *ast.List:
		kind := element.Itemize
		if node.IsOrdered() {
			kind = element.Enumerate
		}
		l := element.NewList(kind)
		for it := node.FirstChild(); it != nil; it = it.NextSibling() {
			l.AddItem(c.blocks(it)...)
		}
		return l

	case *ast.FencedCodeBlock:
		return &element.Listing{
			Code:      c.lines(node),
			Language:  string(node.Language(c.src)),
			Highlight: c.highlight,
		}

	case *ast.CodeBlock:
		return &element.Listing{Code: c.lines(node), Highlight: c.highlight}

	case *ast.Blockquote:
		return element.NewEnvironment("quote", c.blocks(node)...)

	case *ast.ThematicBreak:
		return element.NewRaw(`\noindent\rule{\linewidth}{0.4pt}`)

	case *east.Table:
		return c.table(node)

	default:
		return nil
	}
}

func (c *converter) table(t *east.Table) core.Object {
	var spec strings.Builder
	for _, a := range t.Alignments {
		switch a {
		case east.AlignRight:
			spec.WriteByte('r')
		case east.AlignCenter:
			spec.WriteByte('c')
		default:
			spec.WriteByte('l')
		}
	}

	tbl := element.NewTable(spec.String())
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []core.Object
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, span(c.inlines(cell)))
		}
		if _, ok := row.(*east.TableHeader); ok {
			tbl.Header = cells
			continue
		}
		tbl.AddRow(cells...)
	}
	return tbl
}

// inlines converts the inline children of parent.
func (c *converter) inlines(parent ast.Node) []core.Object {
	var out []core.Object
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, c.inline(n)...)
	}
	return out
}

func (c *converter) inline(n ast.Node) []core.Object {
	switch node := n.(type) {
	case *ast.Text:
		out := []core.Object{element.NewText(string(node.Segment.Value(c.src)))}
		switch {
		case node.HardLineBreak():
			out = append(out, element.NewRaw("\\\\\n"))
		case node.SoftLineBreak():
			out = append(out, element.NewText(" "))
		}
		return out

	case *ast.String:
		return []core.Object{element.NewText(string(node.Value))}

	case *ast.Emphasis:
		inner := span(c.inlines(node))
		if node.Level >= 2 {
			return []core.Object{element.Bold(inner)}
		}
		return []core.Object{element.Italic(inner)}

	case *ast.CodeSpan:
		return []core.Object{element.Mono(element.NewText(c.plainText(node)))}

	case *ast.Link:
		return []core.Object{element.NewHref(string(node.Destination), span(c.inlines(node)))}

	case *ast.AutoLink:
		return []core.Object{element.NewHref(string(node.URL(c.src)), nil)}

	case *ast.Image:
		return []core.Object{element.NewImage(string(node.Destination))}

	case *east.Strikethrough:
		return []core.Object{element.NewStrike(c.inlines(node)...)}

	case *east.TaskCheckBox:
		box := `$\square$ `
		if node.IsChecked {
			box = `$\boxtimes$ `
		}
		t := element.NewRaw(box)
		t.AddPackages(core.NewPackage("amssymb"))
		return []core.Object{t}

	default:
		return nil
	}
}

// lines returns the raw source lines of a code block.
func (c *converter) lines(n ast.Node) string {
	var b strings.Builder
	segs := n.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(c.src))
	}
	return b.String()
}

// plainText concatenates the text beneath n, dropping formatting.
func (c *converter) plainText(n ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(c.src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// span groups inline elements without separators or paragraph spacing.
func span(children []core.Object) core.Object {
	return &element.Paragraph{Container: element.Container{Children: children}}
}
