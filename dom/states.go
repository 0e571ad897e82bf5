package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// StateBits is a set of dynamic element states, as queried by the dynamic
// and user-interface pseudo-classes.
type StateBits uint16

// Element states.
const (
	Hover StateBits = 1 << iota
	Active
	Focus
	FocusVisible
	Visited
	Checked
	Disabled
	Required
	Invalid
	ReadOnly
	PlaceholderShown
	Indeterminate
	Target
)

var stateNames = []string{
	"hover", "active", "focus", "focus-visible", "visited", "checked", "disabled",
	"required", "invalid", "read-only", "placeholder-shown", "indeterminate", "target",
}

// Has is a predicate: are all states of b set?
func (s StateBits) Has(b StateBits) bool {
	return s&b == b
}

func (s StateBits) String() string {
	var names []string
	for i, name := range stateNames {
		if s&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// StateMap maps elements to their dynamic states. Elements without an entry
// have no state set. A StateMap must not be changed while styling is in
// progress.
type StateMap map[ElementID]StateBits

// NewStateMap creates a state map with an empty entry for each id.
func NewStateMap(ids ...ElementID) StateMap {
	m := make(StateMap, len(ids))
	for _, id := range ids {
		m[id] = 0
	}
	return m
}

// Get returns the states of an element. It is safe to call Get on a nil map.
func (m StateMap) Get(id ElementID) StateBits {
	return m[id]
}

// Set adds states to an element.
func (m StateMap) Set(id ElementID, bits StateBits) {
	m[id] |= bits
}

// Clear removes states from an element.
func (m StateMap) Clear(id ElementID, bits StateBits) {
	m[id] &^= bits
}

// With returns the IDs of all elements having all of bits set, in no
// particular order.
func (m StateMap) With(bits StateBits) []ElementID {
	var ids []ElementID
	for id, s := range m {
		if s.Has(bits) {
			ids = append(ids, id)
		}
	}
	return ids
}
