/*
Package style holds CSS property values and computed styles.

Property values are kept as raw strings, wrapped into type Property, which
offers a few helpers: recognizing the CSS-wide keywords, handling of the
"!important" marker and conversion to colors.

A ComputedStyle holds two maps: the cascaded values, i.e. the winners of the
cascade with importance annotations still attached, and the used values with
CSS-wide keywords resolved against the parent element.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecomp.style'.
func tracer() tracing.Trace {
	return tracing.Select("stylecomp.style")
}
