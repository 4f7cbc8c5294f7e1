package ttree

import "testing"

func TestPackMetaRoundTrip(t *testing.T) {
	cases := []struct {
		minIdx, maxIdx int
		bf             int8
		side           Side
	}{
		{0, 0, 0, Left},
		{3, 7, -2, Right},
		{0, 4095, 7, Root},
		{4095, 4095, -8, Bound},
	}
	for _, c := range cases {
		p := packMeta(c.minIdx, c.maxIdx, c.bf, c.side)
		minIdx, maxIdx, bf, side := unpackMeta(p)
		if minIdx != c.minIdx || maxIdx != c.maxIdx || bf != c.bf || side != c.side {
			t.Errorf("packMeta(%d,%d,%d,%v) round-trip: got (%d,%d,%d,%v)",
				c.minIdx, c.maxIdx, c.bf, c.side, minIdx, maxIdx, bf, side)
		}
	}
}

func TestPackedSize(t *testing.T) {
	if n := packedSize(10); n != 40 {
		t.Errorf("packedSize(10): got %d, want 40", n)
	}
}

func TestPackedOccupiedRange(t *testing.T) {
	buf := make([]byte, 32)
	if first, last := packedOccupiedRange(buf); first != 32 || last != 0 {
		t.Errorf("packedOccupiedRange(all-zero): got (%d,%d), want (32,0)", first, last)
	}

	p := packMeta(1, 2, 1, Left)
	copy(buf[8:12], []byte{byte(p), byte(p >> 8), byte(p >> 16), byte(p >> 24)})
	first, last := packedOccupiedRange(buf)
	if first != 8 {
		t.Errorf("packedOccupiedRange first: got %d, want 8", first)
	}
	if last != 12 {
		t.Errorf("packedOccupiedRange last: got %d, want 12", last)
	}
}
