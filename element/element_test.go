package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/texgen/core"
)

func dumps(t *testing.T, o core.Dumper) string {
	t.Helper()
	s, err := o.Dumps()
	require.NoError(t, err)
	return s
}

func packageLines(t *testing.T, o core.Object) string {
	t.Helper()
	s, err := core.DumpsPackages(o)
	require.NoError(t, err)
	return s
}

func TestText(t *testing.T) {
	assert.Equal(t, `50\% off`, dumps(t, NewText("50% off")))
	assert.Equal(t, `\LaTeX`, dumps(t, NewRaw(`\LaTeX`)))
	assert.Zero(t, NewText("x").Packages().Len())
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  *Command
		want string
	}{
		{name: "no args", cmd: NewCommand("maketitle"), want: `\maketitle`},
		{name: "one arg", cmd: Bold(NewText("a&b")), want: `\textbf{a\&b}`},
		{name: "options", cmd: &Command{Name: "cite", Options: []string{"p. 3"}, Arguments: []core.Object{NewRaw("knuth")}}, want: `\cite[p. 3]{knuth}`},
		{name: "nested", cmd: Italic(Mono(NewText("x"))), want: `\textit{\texttt{x}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dumps(t, tt.cmd))
		})
	}
}

func TestCommandCollectsArgumentPackages(t *testing.T) {
	cmd := Bold(NewHref("https://example.com", NewText("site")))
	assert.Equal(t, `\usepackage{hyperref}`, packageLines(t, cmd))
}

func TestContainerJoinsChildren(t *testing.T) {
	c := NewContainer(NewRaw(`\a`), NewRaw(`\b`))
	assert.Equal(t, "\\a%\n\\b", dumps(t, c))
	assert.Equal(t, "", dumps(t, NewContainer()))
}

func TestContainerAggregatesPackages(t *testing.T) {
	c := NewContainer(
		NewImage("a.png"),
		NewHref("https://example.com", nil),
		NewImage("b.png"),
	)
	c.Append(NewStrike(NewText("old")))

	want := "\\usepackage{graphicx}\n\\usepackage{hyperref}\n\\usepackage[normalem]{ulem}"
	assert.Equal(t, want, packageLines(t, c))

	// Aggregation is idempotent.
	assert.Equal(t, want, packageLines(t, c))
	assert.Equal(t, 3, c.Packages().Len())
	assert.Zero(t, c.Base.Packages().Len())
}

func TestContainerPackagesFollowChildren(t *testing.T) {
	c := NewContainer(NewImage("a.png"), NewText("caption"))
	c.AddPackages(core.NewPackage("amsmath"))
	assert.Equal(t, "\\usepackage{amsmath}\n\\usepackage{graphicx}", packageLines(t, c))

	c.Children = c.Children[1:]
	assert.Equal(t, `\usepackage{amsmath}`, packageLines(t, c))

	cmd := Bold(NewHref("https://x.org", nil))
	assert.Equal(t, `\usepackage{hyperref}`, packageLines(t, cmd))
	cmd.Arguments = []core.Object{NewText("plain")}
	assert.Equal(t, "", packageLines(t, cmd))

	tbl := NewTable("l")
	tbl.AddRow(NewImage("x.png"))
	assert.Equal(t, 2, tbl.Packages().Len())
	tbl.Rows = nil
	assert.Equal(t, `\usepackage{booktabs}`, packageLines(t, tbl))
}

func TestParagraph(t *testing.T) {
	p := NewParagraph(NewText("Hello "), Bold(NewText("world")), NewText("."))
	assert.Equal(t, `Hello \textbf{world}.`, dumps(t, p))

	s, err := core.DumpsAsContent(p)
	require.NoError(t, err)
	assert.Equal(t, "Hello \\textbf{world}.\n\n", s)
}

func TestEnvironment(t *testing.T) {
	env := NewEnvironment("quote", NewText("To be"))
	assert.Equal(t, "\\begin{quote}%\nTo be%\n\\end{quote}", dumps(t, env))

	env = &Environment{Name: "minipage", Arguments: []core.Object{NewRaw(`0.5\linewidth`)}, Options: []string{"t"}}
	assert.Equal(t, "\\begin{minipage}[t]{0.5\\linewidth}%\n\\end{minipage}", dumps(t, env))
}

func TestSection(t *testing.T) {
	tests := []struct {
		name    string
		section *Section
		want    string
	}{
		{
			name:    "section",
			section: NewSection("Intro & Scope", 1, NewText("Body")),
			want:    "\\section{Intro \\& Scope}%\nBody",
		},
		{
			name:    "starred subsection with label",
			section: &Section{Title: "Notes", Level: 2, Starred: true, Label: "sec:notes"},
			want:    "\\subsection*{Notes}\\label{sec:notes}%\n",
		},
		{
			name:    "label with unsafe characters",
			section: &Section{Title: "Odd", Level: 1, Label: "a}b\\c d%"},
			want:    "\\section{Odd}\\label{a-b-c-d-}%\n",
		},
		{
			name:    "paragraph",
			section: NewSection("Aside", 4),
			want:    "\\paragraph{Aside}%\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dumps(t, tt.section))
		})
	}
}

func TestSectionLevelOutOfRange(t *testing.T) {
	for _, level := range []int{0, 5, -1} {
		_, err := NewSection("x", level).Dumps()
		assert.ErrorIs(t, err, ErrSectionLevel)
	}
}

func TestList(t *testing.T) {
	l := NewList(Itemize)
	l.AddItem(NewText("one"))
	l.AddItem(NewText("two"), NewImage("x.png"))
	assert.Equal(t,
		"\\begin{itemize}%\n\\item one%\n\\item two%\n\\includegraphics[width=\\linewidth]{x.png}%\n\\end{itemize}",
		dumps(t, l))
	assert.Equal(t, `\usepackage{graphicx}`, packageLines(t, l))

	d := NewList(Description)
	d.AddItem(NewText("a term")).Label = "Go"
	assert.Equal(t, "\\begin{description}%\n\\item[Go] a term%\n\\end{description}", dumps(t, d))
}

func TestHref(t *testing.T) {
	assert.Equal(t, `\href{https://x.org/a\%20b\#top}{x}`, dumps(t, NewHref("https://x.org/a%20b#top", NewText("x"))))
	assert.Equal(t, `\url{https://x.org}`, dumps(t, NewHref("https://x.org", nil)))
}

func TestImage(t *testing.T) {
	assert.Equal(t, `\includegraphics[width=\linewidth]{figs/a.png}`, dumps(t, NewImage("figs/a.png")))
	assert.Equal(t, `\includegraphics[width=\linewidth]{\string~/50\%\#1.png}`, dumps(t, NewImage("~/50%#1.png")))
	assert.Equal(t, `\usepackage{graphicx}`, packageLines(t, NewImage("a.png")))
}

func TestStrike(t *testing.T) {
	s := NewStrike(NewText("gone"), NewText(" now"))
	assert.Equal(t, `\sout{gone now}`, dumps(t, s))
	assert.Equal(t, `\usepackage[normalem]{ulem}`, packageLines(t, s))
}

func TestTable(t *testing.T) {
	tbl := NewTable("lr")
	tbl.Header = []core.Object{Bold(NewText("Name")), Bold(NewText("Qty"))}
	tbl.AddRow(NewText("apples"), NewText("3"))
	tbl.AddRow(NewHref("https://x.org", NewText("pears")), NewText("5"))

	want := "\\begin{tabular}{lr}%\n" +
		"\\toprule%\n" +
		"\\textbf{Name} & \\textbf{Qty}\\\\%\n" +
		"\\midrule%\n" +
		"apples & 3\\\\%\n" +
		"\\href{https://x.org}{pears} & 5\\\\%\n" +
		"\\bottomrule%\n" +
		"\\end{tabular}"
	assert.Equal(t, want, dumps(t, tbl))
	assert.Equal(t, "\\usepackage{booktabs}\n\\usepackage{hyperref}", packageLines(t, tbl))
}

func TestWalk(t *testing.T) {
	inner := NewSection("Inner", 2, NewText("deep"))
	root := NewContainer(NewSection("Outer", 1, inner), NewText("tail"))

	var sections []string
	var depths []int
	Walk(root, func(o core.Object, depth int) bool {
		if s, ok := o.(*Section); ok {
			sections = append(sections, s.Title)
			depths = append(depths, depth)
		}
		return true
	})
	assert.Equal(t, []string{"Outer", "Inner"}, sections)
	assert.Equal(t, []int{1, 2}, depths)

	var visited int
	Walk(root, func(o core.Object, depth int) bool {
		visited++
		_, isSection := o.(*Section)
		return !isSection
	})
	// root, outer section, tail text
	assert.Equal(t, 3, visited)
}
