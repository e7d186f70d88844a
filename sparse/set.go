package sparse

import (
	"github.com/outofforest/voxel/morton"
)

// NewSet creates a set with room for initialCapacity regions.
func NewSet(initialCapacity int) *Set {
	return &Set{m: NewMap[struct{}](initialCapacity)}
}

// Set records which octree nodes are populated, without payloads.
type Set struct {
	m *Map[struct{}]
}

// Add marks a region as populated.
func (s *Set) Add(r morton.Region) {
	s.m.Set(r, struct{}{})
}

// Has returns true if the region is populated.
func (s *Set) Has(r morton.Region) bool {
	_, ok := s.m.Get(r)
	return ok
}

// Delete removes a region from the set.
func (s *Set) Delete(r morton.Region) {
	s.m.Delete(r)
}

// Len returns the number of populated regions.
func (s *Set) Len() int {
	return s.m.Len()
}

// All iterates over all populated regions in unspecified order.
func (s *Set) All(yield func(morton.Region) bool) {
	s.m.All(func(r morton.Region, _ struct{}) bool {
		return yield(r)
	})
}

// Walk iterates over populated regions in pre-order down to the given level.
func (s *Set) Walk(root morton.Region, limit int) func(func(morton.Region) bool) {
	return dropPayload(s.m.Walk(root, limit))
}

// WalkFunc iterates over populated regions in pre-order, descending where
// the predicate allows.
func (s *Set) WalkFunc(root morton.Region, descend func(morton.Region) bool) func(func(morton.Region) bool) {
	return dropPayload(s.m.WalkFunc(root, descend))
}

// WalkLeaves iterates over the populated regions where the predicate stops
// the descent.
func (s *Set) WalkLeaves(root morton.Region, descend func(morton.Region) bool) func(func(morton.Region) bool) {
	return dropPayload(s.m.WalkLeaves(root, descend))
}

func dropPayload(walk func(func(morton.Region, struct{}) bool)) func(func(morton.Region) bool) {
	return func(yield func(morton.Region) bool) {
		walk(func(r morton.Region, _ struct{}) bool {
			return yield(r)
		})
	}
}
