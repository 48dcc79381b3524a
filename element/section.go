package element

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sonnes/texgen/core"
)

// ErrSectionLevel is returned when a section level has no LaTeX command.
var ErrSectionLevel = errors.New("section level out of range")

var sectionCommands = []string{"section", "subsection", "subsubsection", "paragraph"}

// Section is a sectioning command followed by its content.
type Section struct {
	Container
	Title   string
	Level   int  // 1 = \section ... 4 = \paragraph
	Starred bool // unnumbered
	Label   string
}

// NewSection returns a numbered section at the given level.
func NewSection(title string, level int, children ...core.Object) *Section {
	return &Section{Container: Container{Children: children}, Title: title, Level: level}
}

// Command returns the sectioning command name for the section's level.
func (s *Section) Command() (string, error) {
	if s.Level < 1 || s.Level > len(sectionCommands) {
		return "", fmt.Errorf("%w: %d", ErrSectionLevel, s.Level)
	}
	name := sectionCommands[s.Level-1]
	if s.Starred {
		name += "*"
	}
	return name, nil
}

// Dumps renders the sectioning command, its optional label and the content.
func (s *Section) Dumps() (string, error) {
	cmd, err := s.Command()
	if err != nil {
		return "", err
	}
	out := `\` + cmd + `{` + core.EscapeLatex(s.Title) + `}`
	if label := labelKey(s.Label); label != "" {
		out += `\label{` + label + `}`
	}
	out += contentSep
	content, err := s.DumpsContent()
	if err != nil {
		return "", err
	}
	return out + content, nil
}

// labelKey maps s onto the characters that are safe in a \label key. Anything
// else becomes '-'.
func labelKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ':' || r == '.' || r == '_' || r == '-':
			return r
		default:
			return '-'
		}
	}, s)
}
