package morton_test

import (
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/voxel/morton"
)

func TestMain(m *testing.M) {
	morton.Assertions = true
	os.Exit(m.Run())
}

func TestEncodeOctants(t *testing.T) {
	requireT := require.New(t)

	// The coarsest triplet is the half-cube octant: x contributes bit 0,
	// y bit 1, z bit 2.
	requireT.Equal(morton.Octant(0), morton.Encode(r3.Vector{X: 0.25, Y: 0.25, Z: 0.25}).Octant(0))
	requireT.Equal(morton.Octant(1), morton.Encode(r3.Vector{X: 0.75, Y: 0.25, Z: 0.25}).Octant(0))
	requireT.Equal(morton.Octant(2), morton.Encode(r3.Vector{X: 0.25, Y: 0.75, Z: 0.25}).Octant(0))
	requireT.Equal(morton.Octant(4), morton.Encode(r3.Vector{X: 0.25, Y: 0.25, Z: 0.75}).Octant(0))
	requireT.Equal(morton.Octant(7), morton.Encode(r3.Vector{X: 0.75, Y: 0.75, Z: 0.75}).Octant(0))

	requireT.Equal(morton.Code(1)<<60, morton.Encode(r3.Vector{X: 0.5}))
	requireT.Equal(morton.Code(0x7000000000000000), morton.Encode(r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	requireT := require.New(t)
	rnd := rand.New(rand.NewSource(0))

	const halfCell = 0.5 / (1 << morton.MaxLevel)

	for range 1000 {
		p := r3.Vector{X: rnd.Float64(), Y: rnd.Float64(), Z: rnd.Float64()}
		decoded := morton.Encode(p).Point()

		// Decoding returns the center of the encoded cell, so each axis is
		// off by at most half a cell width.
		requireT.InDelta(p.X, decoded.X, halfCell)
		requireT.InDelta(p.Y, decoded.Y, halfCell)
		requireT.InDelta(p.Z, decoded.Z, halfCell)
	}
}

func TestPointAtLevel(t *testing.T) {
	requireT := require.New(t)

	p := r3.Vector{X: 0.8, Y: 0.1, Z: 0.6}
	c := morton.Encode(p)

	requireT.Equal(r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}, c.PointAtLevel(0))
	requireT.Equal(r3.Vector{X: 0.75, Y: 0.25, Z: 0.75}, c.PointAtLevel(1))

	const halfCell = 0.5 / (1 << 4)
	centroid := c.PointAtLevel(4)
	requireT.InDelta(p.X, centroid.X, halfCell)
	requireT.InDelta(p.Y, centroid.Y, halfCell)
	requireT.InDelta(p.Z, centroid.Z, halfCell)
}

func TestEncodeChecked(t *testing.T) {
	requireT := require.New(t)

	c, err := morton.EncodeChecked(r3.Vector{X: 0.1, Y: 0.2, Z: 0.3})
	requireT.NoError(err)
	requireT.Equal(morton.Encode(r3.Vector{X: 0.1, Y: 0.2, Z: 0.3}), c)

	_, err = morton.EncodeChecked(r3.Vector{X: 1.0})
	requireT.Error(err)
	_, err = morton.EncodeChecked(r3.Vector{Y: -0.1})
	requireT.Error(err)
	_, err = morton.EncodeChecked(r3.Vector{Z: 7.5})
	requireT.Error(err)
}

func TestOctantOps(t *testing.T) {
	requireT := require.New(t)

	var c morton.Code
	c = c.SetOctant(0, 3)
	c = c.SetOctant(1, 5)
	c = c.SetOctant(20, 7)

	requireT.Equal(morton.Octant(3), c.Octant(0))
	requireT.Equal(morton.Octant(5), c.Octant(1))
	requireT.Equal(morton.Octant(0), c.Octant(2))
	requireT.Equal(morton.Octant(7), c.Octant(20))

	// Overwriting one triplet leaves the others untouched.
	c = c.SetOctant(1, 2)
	requireT.Equal(morton.Octant(3), c.Octant(0))
	requireT.Equal(morton.Octant(2), c.Octant(1))
	requireT.Equal(morton.Octant(7), c.Octant(20))

	c = c.ClearOctant(0)
	requireT.Equal(morton.Octant(0), c.Octant(0))
	requireT.Equal(morton.Octant(2), c.Octant(1))
	requireT.Equal(morton.Octant(7), c.Octant(20))

	c = c.ClearOctant(1)
	c = c.ClearOctant(20)
	requireT.Equal(morton.Code(0), c)
}

func TestSignificantBits(t *testing.T) {
	requireT := require.New(t)

	var c morton.Code
	c = c.SetOctant(0, 3)
	c = c.SetOctant(1, 5)

	requireT.Equal(uint64(0), c.SignificantBits(0))
	requireT.Equal(uint64(3), c.SignificantBits(1))
	requireT.Equal(uint64(3<<3|5), c.SignificantBits(2))
	requireT.Equal(uint64(3<<6|5<<3), c.SignificantBits(3))
}

func TestBitAlgebra(t *testing.T) {
	requireT := require.New(t)

	a := morton.Code(0x00f0f0f0f0f0f0f0)
	b := morton.Code(0x0ff00ff00ff00ff0)

	requireT.Equal(morton.Code(0x00f000f000f000f0), a.And(b))
	requireT.Equal(morton.Code(0x0ff0fff0fff0fff0), a.Or(b))
	requireT.Equal(morton.Code(0xff0f0f0f0f0f0f0f), a.Not())
	requireT.Equal(morton.Code(0x0f0f0f0f0f0f0f00), a.ShiftLeft(4))
	requireT.Equal(morton.Code(0x000f0f0f0f0f0f0f), a.ShiftRight(4))
}

func TestCodeString(t *testing.T) {
	requireT := require.New(t)

	var c morton.Code
	c = c.SetOctant(0, 3)
	c = c.SetOctant(1, 5)

	requireT.Equal("3/5"+strings.Repeat("/0", morton.MaxLevel-2), c.String())
}

func TestCodePreconditions(t *testing.T) {
	requireT := require.New(t)

	requireT.Panics(func() {
		morton.Encode(r3.Vector{X: 1.5})
	})
	requireT.Panics(func() {
		morton.Code(0).Octant(morton.MaxLevel)
	})
	requireT.Panics(func() {
		morton.Code(0).SetOctant(0, 8)
	})
	requireT.Panics(func() {
		morton.Code(0).ClearOctant(-1)
	})
}
