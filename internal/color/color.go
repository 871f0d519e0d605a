// Package color converts between packed 24-bit RGB, the engine's 4096-scale
// channels, and HSL, and builds the brightness lookup tables applied when a
// render is written out.
package color

// Unpack splits a packed 0xRRGGBB colour into 4096-scale channels.
// Each 8-bit channel c maps to c << 4, so 0xFF becomes 4080.
func Unpack(rgb int32) (r, g, b int32) {
	return (rgb >> 12) & 0xff0, (rgb >> 4) & 0xff0, (rgb << 4) & 0xff0
}

// Pack joins three 4096-scale channels into 0xRRGGBB.
func Pack(r, g, b int32) int32 {
	return ToByte(r)<<16 | ToByte(g)<<8 | ToByte(b)
}

// ToByte converts a 4096-scale channel to 0..255 by a 4-bit shift, clamping.
func ToByte(v int32) int32 {
	v >>= 4
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
