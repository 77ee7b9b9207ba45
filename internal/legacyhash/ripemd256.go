package legacyhash

import "hash"

// RIPEMD256Size is the size of a RIPEMD-256 checksum in bytes.
const RIPEMD256Size = 32

var ripemd256Init = []uint32{
	0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476,
	0x76543210, 0xfedcba98, 0x89abcdef, 0x01234567,
}

// NewRIPEMD256 returns a new hash.Hash computing the RIPEMD-256 checksum.
// RIPEMD-256 runs the RIPEMD-128 lines without merging them and swaps one
// register between the lines after every round.
func NewRIPEMD256() hash.Hash {
	d := &ripemd{
		h:     make([]uint32, 8),
		init:  ripemd256Init,
		block: ripemd256Block,
	}
	d.Reset()
	return d
}

func ripemd256Block(h []uint32, x *[16]uint32) {
	left := line{h[0], h[1], h[2], h[3]}
	right := line{h[4], h[5], h[6], h[7]}

	round(0, x, &left, &right)
	left.a, right.a = right.a, left.a
	round(1, x, &left, &right)
	left.b, right.b = right.b, left.b
	round(2, x, &left, &right)
	left.c, right.c = right.c, left.c
	round(3, x, &left, &right)
	left.d, right.d = right.d, left.d

	h[0] += left.a
	h[1] += left.b
	h[2] += left.c
	h[3] += left.d
	h[4] += right.a
	h[5] += right.b
	h[6] += right.c
	h[7] += right.d
}
