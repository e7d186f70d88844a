package morton

import (
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Region addresses the octree node selected by the first Level octant
// triplets of Code. Triplets at or beyond Level are kept zero, so two
// regions covering the same node compare equal bit for bit. The zero value
// is the root region covering the whole unit cube.
//
// Regions are plain values. Navigation returns new regions instead of
// mutating in place.
type Region struct {
	Code  Code
	Level int
}

// RegionAt builds the region of the given level from a code, zeroing the
// triplets beyond the level to restore the canonical form.
func RegionAt(c Code, level int) Region {
	assert(level >= 0 && level <= MaxLevel, "morton: level out of range")

	return Region{Code: c & prefixMask(level), Level: level}
}

// Enter descends into the given child octant.
func (r Region) Enter(octant Octant) Region {
	assert(r.Level < MaxLevel, "morton: region at maximum level")

	r.Code = r.Code.SetOctant(r.Level, octant)
	r.Level++
	return r
}

// Exit ascends to the parent region, returning it together with the octant
// of the child that was left.
func (r Region) Exit() (Region, Octant) {
	assert(r.Level > 0, "morton: region at root level")

	r.Level--
	octant := r.Code.Octant(r.Level)
	r.Code = r.Code.ClearOctant(r.Level)
	return r, octant
}

// Octant returns the deepest populated octant without moving.
func (r Region) Octant() Octant {
	assert(r.Level > 0, "morton: region at root level")

	return r.Code.Octant(r.Level - 1)
}

// Next advances to the next sibling within the current level. It reports
// false at the root and when the region is the last (7th) sibling.
//
// Next deliberately never climbs past an exhausted level to retry the
// parent's sibling. Traversal keeps one region per stack slot and each slot
// re-pushes its own successor, so an exhausted level simply dies with its
// slot and the parent's slot carries the walk on.
func (r Region) Next() (Region, bool) {
	if r.Level == 0 {
		return Region{}, false
	}
	parent, octant := r.Exit()
	if octant == 7 {
		return Region{}, false
	}
	return parent.Enter(octant + 1), true
}

// Center returns the centroid of the cube covered by the region.
func (r Region) Center() r3.Vector {
	return r.Code.PointAtLevel(r.Level)
}

// HashBits returns the canonical form of the region used for hashing: the
// populated triplets aligned to bit 0, preceded by a set marker bit. The
// marker keeps a region distinct from a deeper region whose extra octants
// are all zero.
func (r Region) HashBits() uint64 {
	return uint64(r.Code|reservedBit) >> (3 * uint(MaxLevel-r.Level))
}

// String renders the octant path from the root, e.g. "3/5" for the level-2
// region reached through octants 3 and 5. The root renders as "/".
func (r Region) String() string {
	if r.Level == 0 {
		return "/"
	}

	var b strings.Builder
	for level := range r.Level {
		if level > 0 {
			b.WriteByte('/')
		}
		b.WriteByte('0' + byte(r.Code.Octant(level)))
	}
	return b.String()
}

// ParseRegion is the inverse of Region.String.
func ParseRegion(s string) (Region, error) {
	if s == "/" {
		return Region{}, nil
	}

	var r Region
	for _, part := range strings.Split(s, "/") {
		octant, err := strconv.ParseUint(part, 10, 3)
		if err != nil {
			return Region{}, errors.Errorf("invalid octant %q", part)
		}
		if r.Level == MaxLevel {
			return Region{}, errors.Errorf("region deeper than %d levels", MaxLevel)
		}
		r = r.Enter(Octant(octant))
	}
	return r, nil
}

func prefixMask(level int) Code {
	if level == 0 {
		return 0
	}
	return ^Code(0) << (3 * uint(MaxLevel-level)) &^ reservedBit
}
