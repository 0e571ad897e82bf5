package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "sort"

// inherited is the set of properties which inherit by default.
var inherited = map[string]bool{
	"color":               true,
	"font-family":         true,
	"font-size":           true,
	"font-style":          true,
	"font-weight":         true,
	"line-height":         true,
	"letter-spacing":      true,
	"text-align":          true,
	"text-indent":         true,
	"text-transform":      true,
	"white-space":         true,
	"word-spacing":        true,
	"direction":           true,
	"visibility":          true,
	"cursor":              true,
	"list-style":          true,
	"list-style-type":     true,
	"list-style-position": true,
}

// initialValues are the CSS initial values of the properties the engine
// knows about. Every other property has an empty initial value.
var initialValues = map[string]Property{
	"color":               "canvastext",
	"font-family":         "serif",
	"font-size":           "medium",
	"font-style":          "normal",
	"font-weight":         "normal",
	"line-height":         "normal",
	"letter-spacing":      "normal",
	"word-spacing":        "normal",
	"text-align":          "start",
	"text-indent":         "0",
	"text-transform":      "none",
	"white-space":         "normal",
	"direction":           "ltr",
	"visibility":          "visible",
	"cursor":              "auto",
	"list-style":          "outside none disc",
	"list-style-type":     "disc",
	"list-style-position": "outside",
	"display":             "inline",
	"position":            "static",
	"width":               "auto",
	"height":              "auto",
	"margin":              "0",
	"padding":             "0",
	"background-color":    "transparent",
	"opacity":             "1",
	"mix-blend-mode":      "normal",
	"z-index":             "auto",
}

// IsInherited returns wether the standard behaviour for a property is to be
// inherited from the parent element.
func IsInherited(key string) bool {
	return inherited[key]
}

// InheritedProperties returns the keys of all inherited properties, sorted.
func InheritedProperties() []string {
	keys := make([]string, 0, len(inherited))
	for k := range inherited {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// InitialValue returns the CSS initial value of a property, or NullStyle
// for properties without a known initial value.
func InitialValue(key string) Property {
	return initialValues[key]
}
