package aesgo

import (
	"math/bits"

	"github.com/mario-areias/aes-core/key"
)

// roundKey is one 128-bit round key, laid out like state.
type roundKey [nb]uint32

// rounds returns Nr for a key of nk words.
func rounds(nk int) int {
	return nk + 6
}

// expandKey runs the FIPS-197 key expansion and returns Nr+1 round keys.
func expandKey(k key.Key) []roundKey {
	nk := k.Nk()
	nr := rounds(nk)

	words := make([]uint32, nb*(nr+1))
	copy(words, k.Words())

	for i := nk; i < len(words); i++ {
		t := words[i-1]
		switch {
		case i%nk == 0:
			t = subWord(rotWord(t)) ^ rconTable[i/nk-1]
		case nk == 8 && i%nk == 4:
			t = subWord(t)
		}
		words[i] = words[i-nk] ^ t
	}

	roundKeys := make([]roundKey, nr+1)
	for r := range roundKeys {
		copy(roundKeys[r][:], words[r*nb:(r+1)*nb])
	}

	return roundKeys
}

// rotWord turns [a0, a1, a2, a3] into [a1, a2, a3, a0].
func rotWord(w uint32) uint32 {
	return bits.RotateLeft32(w, 8)
}

func subWord(w uint32) uint32 {
	return uint32(subByte(byte(w>>24)))<<24 |
		uint32(subByte(byte(w>>16)))<<16 |
		uint32(subByte(byte(w>>8)))<<8 |
		uint32(subByte(byte(w)))
}
