// Package sparse stores payloads of non-empty octree nodes keyed by Morton
// region. Absent keys mean empty, unsubdivided subtrees, which is what lets
// the walkers prune whole subtrees in O(1). The package never checks that a
// present child has a present ancestor; the walkers assume it and consumers
// maintaining the map must guarantee it.
package sparse

import (
	"github.com/cockroachdb/swiss"

	"github.com/outofforest/voxel/morton"
)

// NewMap creates a map with room for initialCapacity regions.
func NewMap[V any](initialCapacity int) *Map[V] {
	return &Map[V]{
		m: swiss.New[morton.Region, V](initialCapacity, swiss.WithHash[morton.Region, V](regionHash)),
	}
}

// Map stores one payload per populated octree node.
//
// A Map is not goroutine-safe; concurrent use requires synchronization
// supplied by the consumer.
type Map[V any] struct {
	m *swiss.Map[morton.Region, V]
}

// Set stores the payload of a region, overwriting any previous one.
func (m *Map[V]) Set(r morton.Region, v V) {
	m.m.Put(r, v)
}

// Get returns the payload of a region and whether the region is populated.
func (m *Map[V]) Get(r morton.Region) (V, bool) {
	return m.m.Get(r)
}

// Delete removes a region from the map.
func (m *Map[V]) Delete(r morton.Region) {
	m.m.Delete(r)
}

// Len returns the number of populated regions.
func (m *Map[V]) Len() int {
	return m.m.Len()
}

// All iterates over all populated regions in unspecified order.
func (m *Map[V]) All(yield func(morton.Region, V) bool) {
	m.m.All(yield)
}

// regionHash is the region's canonical bit form used directly as the hash,
// with no mixing. Morton prefixes produced by spatial subdivision are
// already near-uniform bit patterns, so avalanche mixing would only add
// cost; the marker bit inside HashBits separates regions of different
// levels sharing a zero-padded prefix. The seed is deliberately ignored.
func regionHash(r *morton.Region, _ uintptr) uintptr {
	return uintptr(r.HashBits())
}
