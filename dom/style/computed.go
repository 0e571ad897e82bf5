package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"
)

// ComputedStyle is the result of styling a single element.
//
// Cascaded holds the winning declared value per property, important values
// still annotated with ImportantMarker, plus inherited or initial values for
// every inherited property. Used holds the values with CSS-wide keywords
// resolved and importance annotations removed. Both maps always contain
// every inherited property.
//
// A ComputedStyle is immutable once published.
type ComputedStyle struct {
	Cascaded map[string]Property
	Used     map[string]Property
}

// NewComputedStyle creates an empty computed style.
func NewComputedStyle() *ComputedStyle {
	return &ComputedStyle{
		Cascaded: make(map[string]Property),
		Used:     make(map[string]Property),
	}
}

// Get returns the used value of a property, if present. Get may be called
// on nil.
func (cs *ComputedStyle) Get(key string) (Property, bool) {
	if cs == nil {
		return NullStyle, false
	}
	p, ok := cs.Used[key]
	return p, ok
}

// Value returns the used value of a property, falling back to the initial
// value of the property.
func (cs *ComputedStyle) Value(key string) Property {
	if p, ok := cs.Get(key); ok {
		return p
	}
	return InitialValue(key)
}

// Keys returns the sorted keys of the used values.
func (cs *ComputedStyle) Keys() []string {
	if cs == nil {
		return nil
	}
	keys := make([]string, 0, len(cs.Used))
	for k := range cs.Used {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Properties returns the used values as key-value pairs, sorted by key.
func (cs *ComputedStyle) Properties() []KeyValue {
	keys := cs.Keys()
	kv := make([]KeyValue, len(keys))
	for i, k := range keys {
		kv[i] = KeyValue{k, cs.Used[k]}
	}
	return kv
}

// Equal is a predicate: do both styles hold identical cascaded and used
// values?
func (cs *ComputedStyle) Equal(other *ComputedStyle) bool {
	if cs == nil || other == nil {
		return cs == other
	}
	return equalMaps(cs.Cascaded, other.Cascaded) && equalMaps(cs.Used, other.Used)
}

func equalMaps(a, b map[string]Property) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

// String renders the used values in a canonical form, sorted by key:
//
//     { color: red; display: block; }
//
func (cs *ComputedStyle) String() string {
	var b strings.Builder
	b.WriteString("{")
	for _, kv := range cs.Properties() {
		b.WriteString(" ")
		b.WriteString(kv.Key)
		b.WriteString(": ")
		b.WriteString(string(kv.Value))
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}
