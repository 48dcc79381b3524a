package core

import (
	"strings"
)

// Requirement is a preamble declaration an object needs for its output to
// compile. Requirements with equal keys are the same requirement.
type Requirement interface {
	Dumper
	Key() string
}

// Package is a \usepackage declaration.
type Package struct {
	Name    string
	Options []string
}

// NewPackage returns a Package requirement.
func NewPackage(name string, options ...string) Package {
	return Package{Name: name, Options: options}
}

// Key identifies the package by name and options.
func (p Package) Key() string {
	return "usepackage:" + p.line()
}

// Dumps renders the \usepackage line.
func (p Package) Dumps() (string, error) {
	return p.line(), nil
}

func (p Package) line() string {
	var b strings.Builder
	b.WriteString(`\usepackage`)
	if len(p.Options) > 0 {
		b.WriteString("[" + strings.Join(p.Options, ",") + "]")
	}
	b.WriteString("{" + p.Name + "}")
	return b.String()
}

// RawRequirement is a preamble line emitted verbatim, e.g.
// \usetikzlibrary{arrows}.
type RawRequirement string

// Key returns the line itself.
func (r RawRequirement) Key() string { return "raw:" + string(r) }

// Dumps returns the line unchanged.
func (r RawRequirement) Dumps() (string, error) { return string(r), nil }

// Packages is an insertion-ordered set of requirements. Adding a requirement
// whose key is already present is a no-op; the first occurrence is kept.
//
// A Packages value belongs to one object. Use Merge or Clone to copy entries
// between objects. It is not safe for concurrent use.
type Packages struct {
	items []Requirement
	index map[string]struct{}
}

// NewPackages returns a set seeded with reqs in order.
func NewPackages(reqs ...Requirement) *Packages {
	p := &Packages{index: make(map[string]struct{}, len(reqs))}
	for _, r := range reqs {
		p.Add(r)
	}
	return p
}

// Add inserts r if no requirement with the same key is present. It reports
// whether r was inserted.
func (p *Packages) Add(r Requirement) bool {
	if p.index == nil {
		p.index = make(map[string]struct{})
	}
	k := r.Key()
	if _, ok := p.index[k]; ok {
		return false
	}
	p.index[k] = struct{}{}
	p.items = append(p.items, r)
	return true
}

// Has reports whether a requirement with r's key is present.
func (p *Packages) Has(r Requirement) bool {
	_, ok := p.index[r.Key()]
	return ok
}

// Len returns the number of requirements.
func (p *Packages) Len() int {
	return len(p.items)
}

// Items returns the requirements in insertion order. The slice is a copy.
func (p *Packages) Items() []Requirement {
	out := make([]Requirement, len(p.items))
	copy(out, p.items)
	return out
}

// Merge adds every requirement of other, in order.
func (p *Packages) Merge(other *Packages) {
	if other == nil || other == p {
		return
	}
	for _, r := range other.items {
		p.Add(r)
	}
}

// Clone returns an independent copy of the set.
func (p *Packages) Clone() *Packages {
	return NewPackages(p.items...)
}

// Dumps renders one requirement per line in insertion order, without a
// trailing newline. An empty set renders as "".
func (p *Packages) Dumps() (string, error) {
	lines := make([]Dumper, len(p.items))
	for i, r := range p.items {
		lines[i] = r
	}
	return DumpsList(lines, "\n")
}
