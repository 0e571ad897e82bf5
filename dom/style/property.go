package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

// ImportantMarker is appended to cascaded values of important declarations.
const ImportantMarker = "!important"

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial".
// CSS-wide keywords are ASCII case-insensitive.
func (p Property) IsInitial() bool {
	return strings.EqualFold(string(p), "initial")
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return strings.EqualFold(string(p), "inherit")
}

// IsUnset denotes if a property is of inheritence-type "unset"
func (p Property) IsUnset() bool {
	return strings.EqualFold(string(p), "unset")
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// MarkImportant returns p annotated with ImportantMarker.
func (p Property) MarkImportant() Property {
	if p.IsImportant() {
		return p
	}
	return p + " " + ImportantMarker
}

// IsImportant checks wether p carries a trailing ImportantMarker.
func (p Property) IsImportant() bool {
	return strings.HasSuffix(strings.TrimRightFunc(string(p), isSpace), ImportantMarker)
}

// StripImportant returns p without a trailing ImportantMarker and without
// surrounding white space.
func (p Property) StripImportant() Property {
	s := strings.TrimSpace(string(p))
	s = strings.TrimSuffix(s, ImportantMarker)
	return Property(strings.TrimSpace(s))
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}
