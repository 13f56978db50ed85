package qoi

import "encoding/binary"

// magic is the four ASCII bytes "qoif" read as a big-endian u32.
const magic uint32 = 0x716f6966

// Colorspace is metadata only; it never changes encoding or decoding
// behavior.
type Colorspace uint8

const (
	SRGB   Colorspace = 0
	Linear Colorspace = 1
)

// Pixel is an (r, g, b, a) tuple of unsigned bytes. Two pixels are equal
// when all four components match, including alpha.
type Pixel struct {
	R, G, B, A byte
}

// hash addresses the 64-slot index array. All arithmetic wraps at 8 bits,
// matching the format's definition exactly.
func hash(px Pixel) byte {
	return (px.R*3 + px.G*5 + px.B*7 + px.A*11) % 64
}

// readBE32 reads four bytes at b[cursor:] as a big-endian u32 and returns
// the value together with the advanced cursor.
func readBE32(b []byte, cursor int) (uint32, int) {
	return binary.BigEndian.Uint32(b[cursor : cursor+4]), cursor + 4
}

// writeBE32 writes v as big-endian at b[cursor:] and returns the advanced
// cursor.
func writeBE32(b []byte, cursor int, v uint32) int {
	binary.BigEndian.PutUint32(b[cursor:cursor+4], v)
	return cursor + 4
}

// Opcode tags. RGB and RGBA are matched by their full byte value; the
// other four are matched by their top two bits.
const (
	opIndex byte = 0x00
	opDiff  byte = 0x40
	opLuma  byte = 0x80
	opRun   byte = 0xC0
	opRGB   byte = 0xFE
	opRGBA  byte = 0xFF

	tagMask byte = 0xC0
)

var terminator = [8]byte{0, 0, 0, 0, 0, 0, 0, 1}

const headerSize = 14

// maxPixels is the implementation-defined cap on width*height.
const maxPixels = 400_000_000
