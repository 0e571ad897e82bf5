package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/stylecomp/tree"
	tp "github.com/xlab/treeprint"
)

// ErrInconsistentTree is matched by errors reporting a dangling parent
// reference or a cycle in an element tree.
var ErrInconsistentTree = errors.New("inconsistent element tree")

// TreeError reports the element at which a tree failed validation.
type TreeError struct {
	Element ElementID
	Reason  string
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("inconsistent element tree at element %d: %s", e.Element, e.Reason)
}

// Is lets errors.Is(err, ErrInconsistentTree) succeed.
func (e *TreeError) Is(target error) bool {
	return target == ErrInconsistentTree
}

// Position describes where an element is located among its siblings. Indices
// are 1-based. Root elements are siblings of each other.
type Position struct {
	Index     int // index among all siblings
	Count     int // number of siblings, including the element
	TypeIndex int // index among siblings with the same tag
	TypeCount int // number of siblings with the same tag
}

// Tree is an arena of elements. Create one with NewTree and fill it with Add.
// Once styling has started, a tree must not be changed any more; all
// read-only methods are safe for concurrent use.
type Tree struct {
	elements []ElementContext
	shape    atomic.Pointer[shape]
}

// shape holds the structure derived from the parent links.
type shape struct {
	err      error
	roots    []ElementID
	children [][]ElementID
	pos      []Position
	depth    []int
	levels   [][]ElementID
}

// NewTree creates an empty element tree.
func NewTree() *Tree {
	return &Tree{}
}

// Add appends an element to the tree and returns its ID. The ID field of e is
// ignored. Parent may refer to elements which will be added later; parent
// references are checked by Validate.
func (t *Tree) Add(e ElementContext) ElementID {
	e.ID = ElementID(len(t.elements))
	e.normalize()
	t.elements = append(t.elements, e)
	t.shape.Store(nil)
	return e.ID
}

// Len returns the number of elements in the tree.
func (t *Tree) Len() int {
	return len(t.elements)
}

// Element returns the element for an ID, or nil if id is out of range.
func (t *Tree) Element(id ElementID) *ElementContext {
	if id < 0 || int(id) >= len(t.elements) {
		return nil
	}
	return &t.elements[id]
}

// Parent returns the parent of an element, or NoElement.
func (t *Tree) Parent(id ElementID) ElementID {
	if e := t.Element(id); e != nil {
		return e.Parent
	}
	return NoElement
}

// Validate checks that every parent reference resolves and that there are
// no cycles. It returns an error matching ErrInconsistentTree otherwise.
func (t *Tree) Validate() error {
	return t.linked().err
}

// Roots returns the elements without a parent, in ID order.
func (t *Tree) Roots() []ElementID {
	return t.linked().roots
}

// Children returns the children of an element in ID order.
func (t *Tree) Children(id ElementID) []ElementID {
	s := t.linked()
	if id < 0 || int(id) >= len(s.children) {
		return nil
	}
	return s.children[id]
}

// Position returns the sibling position of an element.
func (t *Tree) Position(id ElementID) Position {
	s := t.linked()
	if id < 0 || int(id) >= len(s.pos) {
		return Position{}
	}
	return s.pos[id]
}

// Depth returns the number of ancestors of an element.
func (t *Tree) Depth(id ElementID) int {
	s := t.linked()
	if id < 0 || int(id) >= len(s.depth) {
		return 0
	}
	return s.depth[id]
}

// Levels returns the breadth-first levels of the tree. Level 0 holds the
// roots. Levels of an invalid tree are empty.
func (t *Tree) Levels() [][]ElementID {
	return t.linked().levels
}

// IsAncestor is a predicate: is a a proper ancestor of e?
func (t *Tree) IsAncestor(a, e ElementID) bool {
	if t.Validate() != nil {
		return false
	}
	for p := t.Parent(e); p != NoElement; p = t.Parent(p) {
		if p == a {
			return true
		}
	}
	return false
}

// linked returns the derived structure, computing it on first use.
// Concurrent first calls may compute it more than once, with identical
// results.
func (t *Tree) linked() *shape {
	if s := t.shape.Load(); s != nil {
		return s
	}
	s := t.link()
	if !t.shape.CompareAndSwap(nil, s) {
		return t.shape.Load()
	}
	return s
}

func (t *Tree) link() *shape {
	n := len(t.elements)
	s := &shape{}
	for i := range t.elements {
		p := t.elements[i].Parent
		if p != NoElement && (p < 0 || int(p) >= n) {
			s.err = &TreeError{Element: ElementID(i), Reason: fmt.Sprintf("parent %d does not exist", p)}
			tracer().Errorf("%v", s.err)
			return s
		}
	}
	// depth of every element, walking up iteratively; detects cycles
	const (
		unvisited = iota
		visiting
		visited
	)
	state := make([]uint8, n)
	s.depth = make([]int, n)
	var chain []ElementID
	for i := 0; i < n; i++ {
		chain = chain[:0]
		id := ElementID(i)
		for id != NoElement && state[id] == unvisited {
			state[id] = visiting
			chain = append(chain, id)
			id = t.elements[id].Parent
		}
		if id != NoElement && state[id] == visiting {
			s.err = &TreeError{Element: id, Reason: "cycle in parent links"}
			tracer().Errorf("%v", s.err)
			return s
		}
		d := -1
		if id != NoElement {
			d = s.depth[id]
		}
		for j := len(chain) - 1; j >= 0; j-- {
			d++
			s.depth[chain[j]] = d
			state[chain[j]] = visited
		}
	}
	s.children = make([][]ElementID, n)
	for i := range t.elements {
		if p := t.elements[i].Parent; p == NoElement {
			s.roots = append(s.roots, ElementID(i))
		} else {
			s.children[p] = append(s.children[p], ElementID(i))
		}
	}
	s.pos = make([]Position, n)
	t.positions(s.roots, s.pos)
	for i := range s.children {
		t.positions(s.children[i], s.pos)
	}
	s.levels = tree.Levels(s.roots, func(id ElementID) []ElementID {
		return s.children[id]
	})
	tracer().Debugf("linked element tree: %d elements, %d roots, %d levels", n, len(s.roots), len(s.levels))
	return s
}

// positions sets the sibling positions for a list of siblings.
func (t *Tree) positions(siblings []ElementID, pos []Position) {
	typeCount := make(map[string]int)
	for i, id := range siblings {
		tag := t.elements[id].Tag
		typeCount[tag]++
		pos[id] = Position{Index: i + 1, Count: len(siblings), TypeIndex: typeCount[tag]}
	}
	for _, id := range siblings {
		pos[id].TypeCount = typeCount[t.elements[id].Tag]
	}
}

// String returns a tree-shaped rendering of the element tree, for debugging.
func (t *Tree) String() string {
	printer := tp.New()
	if err := t.Validate(); err != nil {
		printer.AddNode(err.Error())
		return printer.String()
	}
	var add func(tp.Tree, ElementID)
	add = func(branch tp.Tree, id ElementID) {
		label := fmt.Sprintf("%d %s", id, t.elements[id].String())
		ch := t.Children(id)
		if len(ch) == 0 {
			branch.AddNode(label)
			return
		}
		b := branch.AddBranch(label)
		for _, c := range ch {
			add(b, c)
		}
	}
	for _, r := range t.Roots() {
		add(printer, r)
	}
	return printer.String()
}
