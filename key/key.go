// Package key holds AES cipher keys.
//
// A key is one of three fixed sizes. The size is part of the type, so once a
// Key exists it is always valid for the key schedule.
package key

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
)

const wordSize = 4 // 4 bytes or 32 bits

// SizeError is returned when raw key material is not 16, 24 or 32 bytes long.
type SizeError int

func (k SizeError) Error() string {
	return "key: invalid key size " + strconv.Itoa(int(k))
}

// Key is an AES cipher key. The set of implementations is closed:
// Key128, Key192 and Key256.
type Key interface {
	// Bytes returns the raw key material.
	Bytes() []byte
	// Words returns the key as big-endian 32-bit words.
	Words() []uint32
	// Nk is the number of 32-bit words in the key.
	Nk() int
	// Len is the key length in bytes.
	Len() int

	sealed()
}

type Key128 struct {
	words [4]uint32
}

type Key192 struct {
	words [6]uint32
}

type Key256 struct {
	words [8]uint32
}

func New128(material [16]byte) Key128 {
	var k Key128
	pack(k.words[:], material[:])
	return k
}

func New192(material [24]byte) Key192 {
	var k Key192
	pack(k.words[:], material[:])
	return k
}

func New256(material [32]byte) Key256 {
	var k Key256
	pack(k.words[:], material[:])
	return k
}

// New builds a key from raw material whose length picks the key size.
func New(material []byte) (Key, error) {
	switch l := len(material); l {
	case 128 / 8:
		return New128([16]byte(material)), nil
	case 192 / 8:
		return New192([24]byte(material)), nil
	case 256 / 8:
		return New256([32]byte(material)), nil
	default:
		return nil, SizeError(l)
	}
}

// Random128 returns a key built from crypto/rand material.
func Random128() Key128 {
	return New128([16]byte(generateRandomBytes(16)))
}

func Random192() Key192 {
	return New192([24]byte(generateRandomBytes(24)))
}

func Random256() Key256 {
	return New256([32]byte(generateRandomBytes(32)))
}

// Random returns a random key of the given size in bits.
func Random(bits int) (Key, error) {
	switch bits {
	case 128:
		return Random128(), nil
	case 192:
		return Random192(), nil
	case 256:
		return Random256(), nil
	default:
		return nil, SizeError(bits / 8)
	}
}

func (k Key128) Bytes() []byte   { return unpack(k.words[:]) }
func (k Key128) Words() []uint32 { return append([]uint32(nil), k.words[:]...) }
func (k Key128) Nk() int         { return len(k.words) }
func (k Key128) Len() int        { return len(k.words) * wordSize }
func (Key128) sealed()           {}

func (k Key192) Bytes() []byte   { return unpack(k.words[:]) }
func (k Key192) Words() []uint32 { return append([]uint32(nil), k.words[:]...) }
func (k Key192) Nk() int         { return len(k.words) }
func (k Key192) Len() int        { return len(k.words) * wordSize }
func (Key192) sealed()           {}

func (k Key256) Bytes() []byte   { return unpack(k.words[:]) }
func (k Key256) Words() []uint32 { return append([]uint32(nil), k.words[:]...) }
func (k Key256) Nk() int         { return len(k.words) }
func (k Key256) Len() int        { return len(k.words) * wordSize }
func (Key256) sealed()           {}

func pack(words []uint32, material []byte) {
	for i := range words {
		words[i] = binary.BigEndian.Uint32(material[i*wordSize:])
	}
}

func unpack(words []uint32) []byte {
	b := make([]byte, len(words)*wordSize)
	for i, w := range words {
		binary.BigEndian.PutUint32(b[i*wordSize:], w)
	}
	return b
}

func generateRandomBytes(n int) []byte {
	randBytes := make([]byte, n)

	i, err := rand.Read(randBytes)
	if i != n || err != nil {
		panic("Could not generate random bytes")
	}

	return randBytes
}
