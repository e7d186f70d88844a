package sparse

import (
	"github.com/outofforest/voxel/morton"
)

// The walkers share one shape: an explicit stack of frontier regions
// replaces recursion, so depth is bounded by memory rather than the call
// stack. Each iteration pops a region, immediately pushes its sibling
// successor (visited after the popped region's descendants), and looks the
// region up in the map. An absent region contributes nothing and no child
// frontier, which prunes its whole subtree in O(1). Region.Next advances
// one level only; that is enough here because every stack slot re-pushes
// its own successor, so an exhausted level ends with its slot and the walk
// resumes from the slot below.

// Walk returns a pre-order, octant-ascending iterator over the populated
// regions reachable from root, descending while the region level is below
// limit. Every populated region encountered is yielded.
func (m *Map[V]) Walk(root morton.Region, limit int) func(func(morton.Region, V) bool) {
	return m.WalkFunc(root, func(r morton.Region) bool {
		return r.Level < limit
	})
}

// WalkFunc is Walk with the descent governed by a predicate instead of a
// fixed level. The predicate decides only whether children are visited;
// every populated region encountered is yielded regardless.
func (m *Map[V]) WalkFunc(root morton.Region, descend func(morton.Region) bool) func(func(morton.Region, V) bool) {
	return func(yield func(morton.Region, V) bool) {
		stack := []morton.Region{root}

		for len(stack) > 0 {
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if next, ok := r.Next(); ok {
				stack = append(stack, next)
			}

			v, ok := m.Get(r)
			if !ok {
				continue
			}
			if r.Level < morton.MaxLevel && descend(r) {
				stack = append(stack, r.Enter(0))
			}
			if !yield(r, v) {
				return
			}
		}
	}
}

// WalkLeaves traverses like WalkFunc but yields a region only where the
// predicate stops the descent, producing the effective leaves of the pruned
// walk. Regions the predicate descends through are traversed silently.
func (m *Map[V]) WalkLeaves(root morton.Region, descend func(morton.Region) bool) func(func(morton.Region, V) bool) {
	return func(yield func(morton.Region, V) bool) {
		stack := []morton.Region{root}

		for len(stack) > 0 {
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if next, ok := r.Next(); ok {
				stack = append(stack, next)
			}

			v, ok := m.Get(r)
			if !ok {
				continue
			}
			if r.Level < morton.MaxLevel && descend(r) {
				stack = append(stack, r.Enter(0))
				continue
			}
			if !yield(r, v) {
				return
			}
		}
	}
}
