package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/texgen/core"
	"github.com/sonnes/texgen/document"
	"github.com/sonnes/texgen/element"
)

func buildTestDocument() *document.Document {
	d := document.New("report")
	d.ClassOptions = []string{"11pt"}
	d.Title = "Field Notes"
	d.Author = "writer"
	d.AddPackages(core.RawRequirement(`\usetikzlibrary{arrows}`))
	d.Append(
		element.NewSection("Methods", 1,
			element.NewSection("Setup", 2, element.NewImage("rig.png")),
		),
		element.NewSection("Results", 1),
	)
	return d
}

func TestRenderHeader(t *testing.T) {
	r := &Renderer{Width: 100}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, buildTestDocument()))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "Field Notes")
	assert.Contains(t, out, "report[11pt]")
	assert.Contains(t, out, "@writer")
	assert.Contains(t, out, "PACKAGES")
	assert.Contains(t, out, "SECTIONS")
	assert.Contains(t, out, "LINES")
	assert.Contains(t, out, "BYTES")
}

func TestRenderPackages(t *testing.T) {
	r := &Renderer{Width: 100}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, buildTestDocument()))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "  fontenc [T1]\n")
	assert.Contains(t, out, "  inputenc [utf8]\n")
	assert.Contains(t, out, "  lmodern\n")
	assert.Contains(t, out, `  \usetikzlibrary{arrows}`)
	assert.Contains(t, out, "  graphicx\n")
	assert.Less(t, strings.Index(out, "lmodern"), strings.Index(out, "graphicx"))
}

func TestRenderOutline(t *testing.T) {
	r := &Renderer{Width: 100}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, buildTestDocument()))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "OUTLINE")
	assert.Contains(t, out, "\n  Methods\n    Setup\n  Results\n")
}

func TestRenderUntitled(t *testing.T) {
	r := &Renderer{Width: 80}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, document.New("")))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "Untitled document")
	assert.Contains(t, out, "article")
	assert.NotContains(t, out, "OUTLINE")
}

func TestRenderPropagatesErrors(t *testing.T) {
	d := document.New("article")
	d.Append(element.NewSection("bad", 7))
	var buf bytes.Buffer
	assert.ErrorIs(t, (&Renderer{Width: 80}).Render(&buf, d), element.ErrSectionLevel)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "a...", truncate("abcdefgh", 1))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1228873, "1,228,873"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatNumber(tt.in))
	}
}
