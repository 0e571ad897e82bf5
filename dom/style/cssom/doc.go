/*
Package cssom provides the style rules of the CSS object model and an index
to look them up.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. For styling,
we need just a small part of it: style rules, each consisting of a compound
selector, its specificity, a list of declarations and the position of the
rule in the cascade (source order).

Styling a document means finding the matching rules for every element.
Testing every rule against every element is quadratic, therefore rules are
indexed into buckets by the most restrictive part of their selectors:
an id, else a class, else a tag name. Rules without any of these go into a
universal bucket. For an element, only rules from the buckets for its id,
its classes, its tag and from the universal bucket are candidates. The
candidate set is a superset of the matching rules; the selector matcher has
the final word.

There is not very much open source Go code around for supporting us
in implementing a styling engine, except the great work of
https://godoc.org/github.com/andybalholm/cascadia.
CSS parsing is de-coupled by introducing appropriate interfaces StyleSheet
and Rule. A concrete implementation may be found in sub-package
douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecomp.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("stylecomp.cssom")
}
