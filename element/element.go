// Package element provides concrete LaTeX elements built on core.Base.
//
// Elements that hold other elements report their own packages combined with
// their children's, so asking the root of a tree for its packages yields the
// requirements of the whole tree. The combined set is built fresh on every
// call and never stored.
package element

import (
	"strings"

	"github.com/sonnes/texgen/core"
)

// Text is a run of text. It is escaped unless NoEscape is set.
type Text struct {
	core.Base
	Value    string
	NoEscape bool
}

// NewText returns escaped text.
func NewText(s string) *Text {
	return &Text{Value: s}
}

// NewRaw returns text emitted verbatim.
func NewRaw(s string) *Text {
	return &Text{Value: s, NoEscape: true}
}

// Dumps renders the text, escaping special characters unless NoEscape is set.
func (t *Text) Dumps() (string, error) {
	if t.NoEscape {
		return t.Value, nil
	}
	return core.EscapeLatex(t.Value), nil
}

// Command is a LaTeX macro call: \name[options]{arg1}{arg2}...
type Command struct {
	core.Base
	Name      string
	Options   []string
	Arguments []core.Object
}

// NewCommand returns a command with the given arguments.
func NewCommand(name string, args ...core.Object) *Command {
	return &Command{Name: name, Arguments: args}
}

// Bold wraps o in \textbf.
func Bold(o core.Object) *Command { return NewCommand("textbf", o) }

// Italic wraps o in \textit.
func Italic(o core.Object) *Command { return NewCommand("textit", o) }

// Mono wraps o in \texttt.
func Mono(o core.Object) *Command { return NewCommand("texttt", o) }

// Dumps renders \name followed by options and braced arguments.
func (c *Command) Dumps() (string, error) {
	var b strings.Builder
	b.WriteString(`\` + c.Name)
	b.WriteString(dumpsOptions(c.Options))
	args, err := dumpsArguments(c.Arguments)
	if err != nil {
		return "", err
	}
	b.WriteString(args)
	return b.String(), nil
}

// Packages returns the command's packages merged with those of its arguments.
func (c *Command) Packages() *core.Packages {
	p := c.Base.Packages().Clone()
	for _, a := range c.Arguments {
		p.Merge(a.Packages())
	}
	return p
}

func dumpsOptions(opts []string) string {
	if len(opts) == 0 {
		return ""
	}
	return "[" + strings.Join(opts, ",") + "]"
}

func dumpsArguments(args []core.Object) (string, error) {
	var b strings.Builder
	for _, a := range args {
		s, err := a.Dumps()
		if err != nil {
			return "", err
		}
		b.WriteString("{" + s + "}")
	}
	return b.String(), nil
}
