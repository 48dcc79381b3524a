package element

import "github.com/sonnes/texgen/core"

const maxWalkDepth = 32

// Walk calls fn for o and then, depth first, for every descendant reachable
// through Contents. Returning false from fn skips the node's children.
func Walk(o core.Object, fn func(o core.Object, depth int) bool) {
	walkDepth(o, fn, 0)
}

func walkDepth(o core.Object, fn func(core.Object, int) bool, depth int) {
	if depth > maxWalkDepth || !fn(o, depth) {
		return
	}
	parent, ok := o.(interface{ Contents() []core.Object })
	if !ok {
		return
	}
	for _, ch := range parent.Contents() {
		walkDepth(ch, fn, depth+1)
	}
}
