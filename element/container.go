package element

import (
	"github.com/sonnes/texgen/core"
)

// contentSep separates children of a container. The trailing % keeps LaTeX
// from inserting a space at the line break.
const contentSep = "%\n"

// Container is an ordered list of child elements.
type Container struct {
	core.Base
	Children []core.Object
}

// NewContainer returns a container holding children.
func NewContainer(children ...core.Object) *Container {
	return &Container{Children: children}
}

// Append adds children to the end of the container.
func (c *Container) Append(children ...core.Object) {
	c.Children = append(c.Children, children...)
}

// Contents returns the container's children.
func (c *Container) Contents() []core.Object {
	return c.Children
}

// Packages returns the container's own packages merged with those of every
// child. The container's set is left untouched.
func (c *Container) Packages() *core.Packages {
	p := c.Base.Packages().Clone()
	for _, ch := range c.Children {
		p.Merge(ch.Packages())
	}
	return p
}

// DumpsContent renders the children joined by "%\n".
func (c *Container) DumpsContent() (string, error) {
	return c.dumpsJoined(contentSep)
}

// Dumps renders the children joined by "%\n".
func (c *Container) Dumps() (string, error) {
	return c.DumpsContent()
}

func (c *Container) dumpsJoined(sep string) (string, error) {
	items := make([]core.Dumper, len(c.Children))
	for i, ch := range c.Children {
		items[i] = ch
	}
	return core.DumpsList(items, sep)
}

// Paragraph is a run of inline elements rendered back to back and followed by
// a blank line.
type Paragraph struct {
	Container
}

// NewParagraph returns a paragraph holding children.
func NewParagraph(children ...core.Object) *Paragraph {
	p := &Paragraph{Container: Container{Children: children}}
	p.Spacing = core.Spacing{End: true}
	return p
}

// Dumps renders the children back to back.
func (p *Paragraph) Dumps() (string, error) {
	return p.dumpsJoined("")
}

// Environment is a \begin{name}...\end{name} block.
type Environment struct {
	Container
	Name      string
	Options   []string
	Arguments []core.Object
}

// NewEnvironment returns an environment holding children.
func NewEnvironment(name string, children ...core.Object) *Environment {
	return &Environment{Container: Container{Children: children}, Name: name}
}

// Dumps renders the children inside \begin{name} and \end{name}.
func (e *Environment) Dumps() (string, error) {
	content, err := e.DumpsContent()
	if err != nil {
		return "", err
	}
	return e.wrap(content)
}

func (e *Environment) wrap(content string) (string, error) {
	args, err := dumpsArguments(e.Arguments)
	if err != nil {
		return "", err
	}
	s := `\begin{` + e.Name + `}` + dumpsOptions(e.Options) + args + contentSep
	if content != "" {
		s += content + contentSep
	}
	return s + `\end{` + e.Name + `}`, nil
}

// Packages returns the environment's packages merged with those of its
// arguments and children.
func (e *Environment) Packages() *core.Packages {
	p := e.Container.Packages()
	for _, a := range e.Arguments {
		p.Merge(a.Packages())
	}
	return p
}
