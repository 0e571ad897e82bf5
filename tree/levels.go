package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Levels partitions a forest into breadth-first levels. Level 0 holds the
// roots in the order given; every following level holds the children of the
// previous level, in order of their parents and, for each parent, in the
// order returned by children.
//
// Levels does not guard against cycles; callers have to validate their
// trees beforehand.
func Levels[ID ~int](roots []ID, children func(ID) []ID) [][]ID {
	var levels [][]ID
	current := append([]ID(nil), roots...)
	for len(current) > 0 {
		levels = append(levels, current)
		var next []ID
		for _, id := range current {
			next = append(next, children(id)...)
		}
		current = next
	}
	return levels
}

// WalkLevels calls task for every node of every level, level by level. All
// nodes of a level are processed (possibly concurrently, see ForEachChunk)
// before any node of the next level is started. Processing stops at the
// first level for which a task reported an error.
//
// task must not write to state shared with other nodes of the same level,
// except to slots exclusively owned by the node it has been called for.
func WalkLevels[ID ~int](levels [][]ID, workers int, task func(ID) error) error {
	for depth, level := range levels {
		if Sequential(len(level), workers) {
			tracer().Debugf("level %d: %d nodes, sequential", depth, len(level))
		} else {
			tracer().Debugf("level %d: %d nodes, %d chunks of %d", depth, len(level),
				(len(level)+ChunkSize(len(level), workers)-1)/ChunkSize(len(level), workers),
				ChunkSize(len(level), workers))
		}
		lvl := level
		err := ForEachChunk(len(lvl), workers, func(lo, hi int) error {
			for _, id := range lvl[lo:hi] {
				if err := task(id); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
