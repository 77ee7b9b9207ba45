package legacyhash

import "hash"

// RIPEMD128Size is the size of a RIPEMD-128 checksum in bytes.
const RIPEMD128Size = 16

var ripemd128Init = []uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

// NewRIPEMD128 returns a new hash.Hash computing the RIPEMD-128 checksum.
func NewRIPEMD128() hash.Hash {
	d := &ripemd{
		h:     make([]uint32, 4),
		init:  ripemd128Init,
		block: ripemd128Block,
	}
	d.Reset()
	return d
}

func ripemd128Block(h []uint32, x *[16]uint32) {
	left := line{h[0], h[1], h[2], h[3]}
	right := left
	for j := 0; j < 4; j++ {
		round(j, x, &left, &right)
	}
	t := h[1] + left.c + right.d
	h[1] = h[2] + left.d + right.a
	h[2] = h[3] + left.a + right.b
	h[3] = h[0] + left.b + right.c
	h[0] = t
}
