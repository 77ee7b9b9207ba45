package legacyhash

import (
	"encoding/binary"
	"math/bits"
)

// RIPEMDBlockSize is the block size of RIPEMD-128 and RIPEMD-256 in bytes.
const RIPEMDBlockSize = 64

// Message word selection for the left (r) and right (rp) lines, per round.
var (
	r = [4][16]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		{7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8},
		{3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12},
		{1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2},
	}
	rp = [4][16]int{
		{5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12},
		{6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2},
		{15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13},
		{8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14},
	}
)

// Rotation amounts for the left (s) and right (sp) lines, per round.
var (
	s = [4][16]int{
		{11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8},
		{7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12},
		{11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5},
		{11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12},
	}
	sp = [4][16]int{
		{8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6},
		{9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11},
		{9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5},
		{15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8},
	}
)

var (
	k  = [4]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc}
	kp = [4]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x00000000}
)

func f(j int, x, y, z uint32) uint32 {
	switch j {
	case 0:
		return x ^ y ^ z
	case 1:
		return (x & y) | (^x & z)
	case 2:
		return (x | ^y) ^ z
	default:
		return (x & z) | (y &^ z)
	}
}

// line holds the four working registers of one RIPEMD line.
type line struct{ a, b, c, d uint32 }

// round runs the 16 steps of round j on the left and right lines.
func round(j int, x *[16]uint32, left, right *line) {
	for i := 0; i < 16; i++ {
		t := bits.RotateLeft32(left.a+f(j, left.b, left.c, left.d)+x[r[j][i]]+k[j], s[j][i])
		left.a, left.d, left.c, left.b = left.d, left.c, left.b, t

		t = bits.RotateLeft32(right.a+f(3-j, right.b, right.c, right.d)+x[rp[j][i]]+kp[j], sp[j][i])
		right.a, right.d, right.c, right.b = right.d, right.c, right.b, t
	}
}

// ripemd is the Merkle-Damgard buffering shared by RIPEMD-128 and RIPEMD-256.
type ripemd struct {
	h     []uint32
	init  []uint32
	x     [RIPEMDBlockSize]byte
	nx    int
	len   uint64
	block func(h []uint32, x *[16]uint32)
}

func (d *ripemd) Reset() {
	copy(d.h, d.init)
	d.nx = 0
	d.len = 0
}

func (d *ripemd) Size() int { return len(d.h) * 4 }

func (d *ripemd) BlockSize() int { return RIPEMDBlockSize }

func (d *ripemd) Write(p []byte) (int, error) {
	n := len(p)
	d.len += uint64(n)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		p = p[c:]
		if d.nx < RIPEMDBlockSize {
			return n, nil
		}
		d.compress(d.x[:])
		d.nx = 0
	}
	for len(p) >= RIPEMDBlockSize {
		d.compress(p[:RIPEMDBlockSize])
		p = p[RIPEMDBlockSize:]
	}
	d.nx = copy(d.x[:], p)
	return n, nil
}

func (d *ripemd) Sum(in []byte) []byte {
	c := &ripemd{
		h:     append([]uint32(nil), d.h...),
		init:  d.init,
		x:     d.x,
		nx:    d.nx,
		len:   d.len,
		block: d.block,
	}

	bitLen := c.len << 3
	var tmp [RIPEMDBlockSize + 8]byte
	tmp[0] = 0x80
	padLen := 56 - int(c.len%RIPEMDBlockSize)
	if padLen <= 0 {
		padLen += RIPEMDBlockSize
	}
	binary.LittleEndian.PutUint64(tmp[padLen:], bitLen)
	_, _ = c.Write(tmp[:padLen+8])

	for _, v := range c.h {
		in = binary.LittleEndian.AppendUint32(in, v)
	}
	return in
}

func (d *ripemd) compress(p []byte) {
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(p[i*4:])
	}
	d.block(d.h, &x)
}
