package ttree

import "github.com/halstead/ttree/mbits"

// packedMeta is an alternate, diagnostic-only encoding of a node's
// minIdx/maxIdx/bf/side into a single machine word. The live node[T] type
// does not use this layout: bit-packing only pays for itself at node counts
// far larger than this package targets, and plain fields are easier to
// debug. It exists so the packed-metadata design alternative can be
// exercised and measured without committing to it.
type packedMeta uint32

const (
	packedMinIdxBits = 12
	packedMaxIdxBits = 12
	packedBFBits     = 4
	packedSideBits   = 4

	packedBFShift   = packedMinIdxBits + packedMaxIdxBits
	packedSideShift = packedBFShift + packedBFBits
)

// packMeta encodes a node's metadata fields into a packedMeta word. minIdx
// and maxIdx must fit in 12 bits each (i.e. K < 4096, well within the
// documented K ≤ 2048 ceiling), and bf must be in [-8,7].
func packMeta(minIdx, maxIdx int, bf int8, side Side) packedMeta {
	return packedMeta(uint32(minIdx)&0xFFF) |
		packedMeta(uint32(maxIdx)&0xFFF)<<packedMinIdxBits |
		packedMeta(uint32(bf)&0xF)<<packedBFShift |
		packedMeta(uint32(side)&0xF)<<packedSideShift
}

// unpackMeta recovers the fields packed by packMeta.
func unpackMeta(p packedMeta) (minIdx, maxIdx int, bf int8, side Side) {
	minIdx = int(p & 0xFFF)
	maxIdx = int((p >> packedMinIdxBits) & 0xFFF)
	bits := int8((p >> packedBFShift) & 0xF)
	if bits > 7 {
		bits -= 16
	}
	bf = bits
	side = Side((p >> packedSideShift) & 0xF)
	return
}

// packedSize returns the number of bytes a packed-metadata encoding of n
// nodes would occupy, confirming via mbits.Zero that a freshly allocated
// buffer of that size zeroes cleanly. It is used only by TestPackedSize,
// never on the live node path.
func packedSize(n int) int {
	buf := make([]byte, n*4)
	mbits.Zero(buf)
	return len(buf)
}

// packedOccupiedRange scans a packed-metadata byte buffer (as produced by
// packMeta, laid end to end) and reports the byte offset of the first
// nonzero byte and the offset just past the last nonzero byte, using
// mbits.LeadingZeroes/TrailingZeroes. It is a
// diagnostic for the packed-layout benchmark: an all-zero buffer means every
// packed word still encodes an empty node.
func packedOccupiedRange(buf []byte) (first, last int) {
	first = mbits.LeadingZeroes(buf)
	last = len(buf) - mbits.TrailingZeroes(buf)
	return first, last
}
