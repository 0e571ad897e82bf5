/*
Package selector parses and matches CSS compound selectors.

Overview

A compound selector is a sequence of simple selectors without combinators,
for example

    li.item:nth-child(2n+1):not(.hidden)::marker

Supported simple selectors are the universal selector, type, class and id
selectors, attribute selectors with all operators of Selectors Level 4
(including the case-folding flag), and a set of pseudo-classes: structural
ones (:root, :empty, :first-child, :nth-child(An+B), …), logical ones
(:not, :is, :where), dynamic and user-interface ones (:hover, :focus,
:checked, …), and :lang() and :dir(). Pseudo-elements are recognized and
contribute to specificity, but never restrict matching.

Selectors are parsed into a tagged-variant AST (type Simple). Matching walks
the AST against an element of a dom.Tree, using the tree's pre-computed
sibling positions and a dom.StateMap for dynamic state. Matching never
mutates its inputs and is safe for concurrent use.

Tag names and attribute names match case-insensitively, ids match ASCII
case-insensitively, class names and attribute values case-sensitively
(unless an attribute selector carries the 'i' flag).

Errors

Parse reports errors matching ErrInvalidSelector, and ErrInvalidAnB for
malformed An+B arguments.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecomp.style'.
func tracer() tracing.Trace {
	return tracing.Select("stylecomp.style")
}

// ErrInvalidSelector is matched by errors reporting a selector syntax error.
var ErrInvalidSelector = errors.New("invalid selector")

// ErrInvalidAnB is matched by errors reporting a malformed An+B expression.
var ErrInvalidAnB = errors.New("invalid An+B expression")

// SyntaxError reports a syntax error in a selector.
type SyntaxError struct {
	Selector string // selector text
	Pos      int    // byte offset of the error
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid selector %q at position %d: %s", e.Selector, e.Pos, e.Msg)
}

// Is lets errors.Is(err, ErrInvalidSelector) succeed.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrInvalidSelector
}

// AnBError reports a malformed An+B expression.
type AnBError struct {
	Text string
}

func (e *AnBError) Error() string {
	return fmt.Sprintf("invalid An+B expression %q", e.Text)
}

// Is lets errors.Is(err, ErrInvalidAnB) succeed. An AnBError is also an
// invalid selector.
func (e *AnBError) Is(target error) bool {
	return target == ErrInvalidAnB || target == ErrInvalidSelector
}
