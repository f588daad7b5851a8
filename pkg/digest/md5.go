package digest

import (
	"encoding/binary"
	"math/bits"
)

const (
	// MD5Size is the length of an MD5 digest in bytes.
	MD5Size      = 16
	md5BlockSize = 64
)

// Per-step left-rotate amounts, four per round repeated four times.
var md5Shifts = [64]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// md5K[i] = floor(abs(sin(i+1)) * 2^32).
var md5K = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// MD5Sum computes the RFC 1321 digest of data. All word arithmetic is uint32
// and wraps modulo 2^32.
func MD5Sum(data []byte) [MD5Size]byte {
	state := [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

	n := len(data)
	full := n - n%md5BlockSize
	for off := 0; off < full; off += md5BlockSize {
		md5Block(&state, data[off:off+md5BlockSize])
	}

	// Tail: remaining bytes, the 0x80 marker, zero padding and the bit length.
	// When the marker lands past byte 55 the length no longer fits and an
	// extra all-zero block carries it.
	var tail [md5BlockSize]byte
	rem := copy(tail[:], data[full:])
	tail[rem] = 0x80
	if rem > 55 {
		md5Block(&state, tail[:])
		tail = [md5BlockSize]byte{}
	}
	binary.LittleEndian.PutUint64(tail[56:], uint64(n)<<3)
	md5Block(&state, tail[:])

	var out [MD5Size]byte
	for i, w := range state {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// MD5 returns the lowercase hex MD5 digest of data.
func MD5(data []byte) string {
	sum := MD5Sum(data)
	return EncodeHex(sum[:])
}

// md5Block runs the four 16-step rounds over one 64-byte block.
func md5Block(state *[4]uint32, block []byte) {
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, c, d := state[0], state[1], state[2], state[3]
	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch i / 16 {
		case 0:
			f = (b & c) | (^b & d)
			g = i
		case 1:
			f = (b & d) | (c &^ d)
			g = (5*i + 1) % 16
		case 2:
			f = b ^ c ^ d
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d)
			g = (7 * i) % 16
		}
		f += a + md5K[i] + x[g]
		a, d, c = d, c, b
		b += bits.RotateLeft32(f, md5Shifts[i])
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
}
