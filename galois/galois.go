// Package galois implements arithmetic over GF(2^8) as used by AES.
//
// A byte is read as a polynomial of degree at most 7 over GF(2), bit i being
// the coefficient of x^i. Products are reduced modulo x^8 + x^4 + x^3 + x + 1.
package galois

// Poly is the AES reduction polynomial x^8 + x^4 + x^3 + x + 1.
const Poly = 0x11b

// reduce is Poly without the x^8 term, folded back in after a shift overflows.
const reduce = Poly & 0xff

// Add adds two field elements.
func Add(a, b byte) byte {
	return a ^ b
}

// Sub subtracts b from a. In characteristic 2 this is the same as Add.
func Sub(a, b byte) byte {
	return Add(a, b)
}

// Mul multiplies two field elements with the peasant algorithm.
// It always runs exactly 8 iterations.
func Mul(a, b byte) byte {
	var p byte

	for counter := 0; counter < 8; counter++ {
		if (b & 1) != 0 {
			p ^= a
		}

		hiBitSet := (a & 0x80) != 0
		a <<= 1
		if hiBitSet {
			a ^= reduce
		}
		b >>= 1
	}

	return p
}

// Xtime multiplies a by x.
func Xtime(a byte) byte {
	return Mul(a, 0x02)
}
