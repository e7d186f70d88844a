package bitwise

// AxisBits is the number of bits each axis contributes to an interleaved code.
// Three axes of 21 bits fill 63 bits of a 64-bit word, leaving the top bit unused.
const AxisBits = 21

// AxisMask selects the AxisBits low bits of a per-axis value.
const AxisMask = 1<<AxisBits - 1

// Encode3D interleaves three 21-bit values into a single 63-bit code.
// Bit i of x lands at bit 3i, bit i of y at bit 3i+1, bit i of z at bit 3i+2.
// Inputs wider than 21 bits are silently truncated.
func Encode3D(x, y, z uint64) uint64 {
	return spread(x) | spread(y)<<1 | spread(z)<<2
}

// Decode3D recovers the three 21-bit values interleaved by Encode3D.
func Decode3D(code uint64) (x, y, z uint64) {
	return compact(code), compact(code >> 1), compact(code >> 2)
}

func spread(v uint64) uint64 {
	v &= AxisMask
	v = (v | v<<32) & 0x001f00000000ffff
	v = (v | v<<16) & 0x001f0000ff0000ff
	v = (v | v<<8) & 0x100f00f00f00f00f
	v = (v | v<<4) & 0x10c30c30c30c30c3
	v = (v | v<<2) & 0x1249249249249249
	return v
}

func compact(v uint64) uint64 {
	v &= 0x1249249249249249
	v = (v ^ v>>2) & 0x10c30c30c30c30c3
	v = (v ^ v>>4) & 0x100f00f00f00f00f
	v = (v ^ v>>8) & 0x001f0000ff0000ff
	v = (v ^ v>>16) & 0x001f00000000ffff
	v = (v ^ v>>32) & AxisMask
	return v
}
