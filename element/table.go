package element

import (
	"strings"

	"github.com/sonnes/texgen/core"
)

// Table is a tabular environment with booktabs rules.
type Table struct {
	core.Base
	Spec   string          // column spec, e.g. "lcr"
	Header []core.Object   // optional header row
	Rows   [][]core.Object // body rows
}

// NewTable returns an empty table with the given column spec.
func NewTable(spec string) *Table {
	t := &Table{Spec: spec}
	t.AddPackages(core.NewPackage("booktabs"))
	return t
}

// AddRow appends a body row.
func (t *Table) AddRow(cells ...core.Object) {
	t.Rows = append(t.Rows, cells)
}

// Dumps renders a tabular with top, middle and bottom rules.
func (t *Table) Dumps() (string, error) {
	var lines []string
	lines = append(lines, `\begin{tabular}{`+t.Spec+`}`, `\toprule`)
	if len(t.Header) > 0 {
		row, err := dumpsRow(t.Header)
		if err != nil {
			return "", err
		}
		lines = append(lines, row, `\midrule`)
	}
	for _, cells := range t.Rows {
		row, err := dumpsRow(cells)
		if err != nil {
			return "", err
		}
		lines = append(lines, row)
	}
	lines = append(lines, `\bottomrule`, `\end{tabular}`)
	return strings.Join(lines, contentSep), nil
}

// Packages returns the table's packages merged with those of every cell.
func (t *Table) Packages() *core.Packages {
	p := t.Base.Packages().Clone()
	for _, c := range t.Header {
		p.Merge(c.Packages())
	}
	for _, row := range t.Rows {
		for _, c := range row {
			p.Merge(c.Packages())
		}
	}
	return p
}

// Contents returns header and body cells in row order.
func (t *Table) Contents() []core.Object {
	out := append([]core.Object{}, t.Header...)
	for _, row := range t.Rows {
		out = append(out, row...)
	}
	return out
}

func dumpsRow(cells []core.Object) (string, error) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		s, err := c.Dumps()
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, " & ") + `\\`, nil
}
