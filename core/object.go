// Package core defines the LaTeX object model shared by every element: the
// rendering contract, the set of packages an object requires, and the
// write-to-sink and write-to-file pipeline built on top of rendering.
package core

// Dumper renders itself as a LaTeX string. Dumps must be deterministic: two
// calls with no mutation in between return identical text.
type Dumper interface {
	Dumps() (string, error)
}

// Object is a renderable LaTeX element that tracks the packages it needs.
//
// Concrete elements embed Base, which supplies Packages, and implement Dumps
// themselves. Base has no Dumps method, so it never satisfies Object on its
// own.
//
// Packages returns everything the object needs to render. Elements that hold
// other objects return a fresh set combining their own declarations with
// their children's; declare requirements with Base.AddPackages rather than
// by mutating that result.
type Object interface {
	Dumper
	Packages() *Packages
}

// Spacing controls the blank lines placed around an object when it is
// rendered as part of a larger body.
type Spacing struct {
	Begin bool // start a new paragraph before the object
	End   bool // start a new paragraph after the object
}

// Base holds the state shared by every Object. The zero value is ready to
// use and has no packages.
//
// The package set belongs to one Base. A struct copy of an element detaches
// its set on first use, so the copy and the original never share entries;
// use CopyPackages to carry declarations over explicitly.
type Base struct {
	self     *Base // address the set was created at; differs in copies
	packages *Packages

	// Spacing is honored by DumpsAsContent.
	Spacing Spacing
}

// Packages returns the object's own package set.
func (b *Base) Packages() *Packages {
	switch {
	case b.packages == nil:
		b.packages = NewPackages()
	case b.self != b:
		b.packages = b.packages.Clone()
	}
	b.self = b
	return b.packages
}

// AddPackages declares reqs in order. Duplicates collapse to their first
// occurrence.
func (b *Base) AddPackages(reqs ...Requirement) {
	p := b.Packages()
	for _, r := range reqs {
		p.Add(r)
	}
}

// CopyPackages adds every package declared on src to b.
func (b *Base) CopyPackages(src *Base) {
	if src == b {
		return
	}
	b.Packages().Merge(src.Packages())
}

// ContentSpacing reports the paragraph spacing of the object.
func (b *Base) ContentSpacing() Spacing {
	return b.Spacing
}

// SeparateParagraph sets both Begin and End spacing.
func (b *Base) SeparateParagraph() {
	b.Spacing = Spacing{Begin: true, End: true}
}
