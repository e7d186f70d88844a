package morton

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/outofforest/voxel/bitwise"
)

// MaxLevel is the number of octant triplets held by a code. It is a hard
// limit of the 64-bit representation: 21 triplets fill 63 bits and the top
// bit stays reserved.
const MaxLevel = bitwise.AxisBits

const (
	// reservedBit is the unused top bit of a code. It is zero in every valid
	// code and doubles as the occupancy marker when hashing regions.
	reservedBit Code = 1 << 63

	// topTriplet selects the coarsest octant triplet.
	topTriplet Code = 0x7 << (3 * (MaxLevel - 1))
)

// Octant identifies one of the 8 children of an octree node.
type Octant byte

// Code is a Morton (Z-order) key of a point in the unit cube. The 63 low
// bits form 21 octant triplets ordered coarsest first; triplet bits are
// x, y, z from least to most significant.
type Code uint64

// Encode returns the code of a point with coordinates in [0, 1). Coordinates
// outside that range are a precondition violation producing an unspecified
// code.
func Encode(p r3.Vector) Code {
	assert(inUnitCube(p), "morton: point outside unit cube")

	const scale = 1 << MaxLevel
	return Code(bitwise.Encode3D(uint64(p.X*scale), uint64(p.Y*scale), uint64(p.Z*scale))) &^ reservedBit
}

// EncodeChecked is Encode for untrusted input. It reports coordinates
// outside [0, 1) instead of encoding garbage.
func EncodeChecked(p r3.Vector) (Code, error) {
	if !inUnitCube(p) {
		return 0, errors.Errorf("point outside unit cube: %v", p)
	}
	return Encode(p), nil
}

// Point returns the center of the finest cell identified by the code.
func (c Code) Point() r3.Vector {
	return c.PointAtLevel(MaxLevel)
}

// PointAtLevel returns the center of the cell identified by the first
// level triplets of the code.
func (c Code) PointAtLevel(level int) r3.Vector {
	assert(level >= 0 && level <= MaxLevel, "morton: level out of range")

	x, y, z := bitwise.Decode3D(c.SignificantBits(level))
	scale := math.Ldexp(1, -level)
	return r3.Vector{
		X: (float64(x) + 0.5) * scale,
		Y: (float64(y) + 0.5) * scale,
		Z: (float64(z) + 0.5) * scale,
	}
}

// Octant reads the octant triplet at the given level.
func (c Code) Octant(level int) Octant {
	assert(level >= 0 && level < MaxLevel, "morton: level out of range")

	return Octant(c >> tripletShift(level) & 0x7)
}

// SetOctant overwrites the octant triplet at the given level, leaving all
// other bits untouched. An octant above 7 corrupts neighbouring triplets.
func (c Code) SetOctant(level int, octant Octant) Code {
	assert(level >= 0 && level < MaxLevel, "morton: level out of range")
	assert(octant < 8, "morton: octant out of range")

	return c&^(topTriplet>>(3*uint(level))) | Code(octant)<<tripletShift(level)
}

// ClearOctant zeroes the octant triplet at the given level.
func (c Code) ClearOctant(level int) Code {
	assert(level >= 0 && level < MaxLevel, "morton: level out of range")

	return c &^ (topTriplet >> (3 * uint(level)))
}

// SignificantBits discards the triplets beyond the given level, returning
// the populated prefix aligned to bit 0.
func (c Code) SignificantBits(level int) uint64 {
	return uint64(c) >> (3 * uint(MaxLevel-level))
}

// String renders the full octant path of the code, coarsest first.
func (c Code) String() string {
	return RegionAt(c, MaxLevel).String()
}

// And returns the bitwise conjunction of two codes.
func (c Code) And(o Code) Code {
	return c & o
}

// Or returns the bitwise disjunction of two codes.
func (c Code) Or(o Code) Code {
	return c | o
}

// Not returns the bitwise complement of the code.
func (c Code) Not() Code {
	return ^c
}

// ShiftLeft shifts the code left by n bits.
func (c Code) ShiftLeft(n uint) Code {
	return c << n
}

// ShiftRight shifts the code right by n bits.
func (c Code) ShiftRight(n uint) Code {
	return c >> n
}

func tripletShift(level int) uint {
	return 3 * uint(MaxLevel-level-1)
}

func inUnitCube(p r3.Vector) bool {
	return p.X >= 0 && p.X < 1 && p.Y >= 0 && p.Y < 1 && p.Z >= 0 && p.Z < 1
}
