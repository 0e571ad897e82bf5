/*
Package css computes the style of an element from the declarations matching it.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting of (1) the textual nature of CSS properties
and (2) the complicated semantics of computing style attributes for a
given node.

The cascade sorts all declarations matching an element by importance,
specificity and source order. Later declarations in this order win. The
winners form the cascaded values of the element. Inherited properties which
did not receive a declaration take the used value of the parent element.
Used values are then derived from cascaded values by resolving the CSS-wide
keywords "inherit", "initial" and "unset".

The cascade is a pure function of the matched declarations and the parent's
computed style, and therefore safe to run for many elements concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecomp.style'.
func tracer() tracing.Trace {
	return tracing.Select("stylecomp.style")
}
