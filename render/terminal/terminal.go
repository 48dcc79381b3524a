// Package terminal renders an ANSI-colored preview of a document: its title,
// required packages and section outline.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/sonnes/texgen/core"
	"github.com/sonnes/texgen/document"
)

const defaultWidth = 100

// Renderer pretty-prints a document summary to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the document preview to w.
func (r *Renderer) Render(w io.Writer, d *document.Document) error {
	width := r.termWidth()

	src, err := d.Dumps()
	if err != nil {
		return err
	}
	outline := d.Outline()
	reqs := d.Packages().Items()

	writeHeader(w, d)
	fmt.Fprintln(w)
	writeStats(w, len(reqs), len(outline), strings.Count(src, "\n"), len(src))

	writeSeparator(w, width)
	fmt.Fprintln(w)
	fmt.Fprintln(w, " "+styleHeading.Render("PACKAGES"))
	for _, req := range reqs {
		line, err := packageLine(req)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "  "+truncate(line, width-4))
	}

	if len(outline) > 0 {
		writeSeparator(w, width)
		fmt.Fprintln(w)
		fmt.Fprintln(w, " "+styleHeading.Render("OUTLINE"))
		for _, h := range outline {
			indent := strings.Repeat("  ", h.Level)
			fmt.Fprintln(w, indent+styleSection.Render(truncate(h.Title, width-len(indent))))
		}
	}

	fmt.Fprintln(w)
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// writeHeader renders the title row and the class/author row.
func writeHeader(w io.Writer, d *document.Document) {
	title := d.Title
	if title == "" {
		title = "Untitled document"
	}
	fmt.Fprintln(w, styleTitle.Render(title))

	class := d.Class
	if class == "" {
		class = document.DefaultClass
	}
	if len(d.ClassOptions) > 0 {
		class += "[" + strings.Join(d.ClassOptions, ",") + "]"
	}
	parts := []string{styleClass.Render(class)}
	if d.Author != "" {
		parts = append(parts, styleMeta.Render("@"+d.Author))
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}

// writeStats renders counters in two rows: values then labels.
func writeStats(w io.Writer, packages, sections, lines, size int) {
	type stat struct {
		value int
		label string
	}
	stats := []stat{
		{packages, "PACKAGES"},
		{sections, "SECTIONS"},
		{lines, "LINES"},
		{size, "BYTES"},
	}

	var values, labels []string
	for _, s := range stats {
		formatted := formatNumber(s.value)
		colWidth := max(len(formatted), len(s.label))
		values = append(values, fmt.Sprintf("%*s", colWidth, formatted))
		labels = append(labels, fmt.Sprintf("%-*s", colWidth, s.label))
	}

	fmt.Fprintln(w, "  "+styleStat.Render(strings.Join(values, "    ")))
	fmt.Fprintln(w, "  "+styleStatLabel.Render(strings.Join(labels, "    ")))
}

// packageLine styles a \usepackage requirement as "name [options]". Other
// requirements are shown as their LaTeX line.
func packageLine(req core.Requirement) (string, error) {
	if p, ok := req.(core.Package); ok {
		line := stylePackageName.Render(p.Name)
		if len(p.Options) > 0 {
			line += " " + stylePackageOpts.Render("["+strings.Join(p.Options, ", ")+"]")
		}
		return line, nil
	}
	s, err := req.Dumps()
	if err != nil {
		return "", err
	}
	return stylePackageOpts.Render(s), nil
}

// writeSeparator renders a horizontal rule.
func writeSeparator(w io.Writer, width int) {
	n := min(width, 72)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSeparator.Render(strings.Repeat("─", n)))
}

// truncate shortens text to maxWidth, appending "..." if needed.
func truncate(s string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + "," + fmt.Sprintf("%03d", n%1000)
}
