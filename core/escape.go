package core

import "strings"

var latexEscaper = strings.NewReplacer(
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\^{}`,
	`\`, `\textbackslash{}`,
	"\n", "\\newline%\n",
	`-`, `{-}`,
	"\u00a0", `~`,
	`[`, `{[}`,
	`]`, `{]}`,
)

// EscapeLatex escapes characters that have a special meaning in LaTeX.
func EscapeLatex(s string) string {
	return latexEscaper.Replace(s)
}

// NoEscape is LaTeX source that is emitted as-is.
type NoEscape string

// Dumps returns the string unchanged.
func (n NoEscape) Dumps() (string, error) {
	return string(n), nil
}

// DumpsList renders each item with DumpsAsContent and joins the results with
// sep. No separator is added after the last item.
func DumpsList(items []Dumper, sep string) (string, error) {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		s, err := DumpsAsContent(it)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep), nil
}
