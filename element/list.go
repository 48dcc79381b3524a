package element

import (
	"github.com/sonnes/texgen/core"
)

// ListKind selects the list environment.
type ListKind string

const (
	Itemize     ListKind = "itemize"
	Enumerate   ListKind = "enumerate"
	Description ListKind = "description"
)

// Item is one \item of a List.
type Item struct {
	Container
	Label string // optional [label], used by description lists
}

// Dumps renders \item, its optional label and the item's content.
func (i *Item) Dumps() (string, error) {
	content, err := i.DumpsContent()
	if err != nil {
		return "", err
	}
	head := `\item`
	if i.Label != "" {
		head += `[` + core.EscapeLatex(i.Label) + `]`
	}
	if content == "" {
		return head, nil
	}
	return head + " " + content, nil
}

// List is an itemize, enumerate or description environment.
type List struct {
	Environment
}

// NewList returns an empty list of the given kind.
func NewList(kind ListKind) *List {
	return &List{Environment: Environment{Name: string(kind)}}
}

// AddItem appends an item holding children and returns it.
func (l *List) AddItem(children ...core.Object) *Item {
	it := &Item{Container: Container{Children: children}}
	l.Append(it)
	return it
}
