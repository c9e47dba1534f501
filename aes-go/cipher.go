package aesgo

import (
	"crypto/cipher"

	"github.com/mario-areias/aes-core/key"
)

type blockCipher struct {
	aes *AES
}

// NewCipher creates and returns a new cipher.Block.
// The key argument should be the AES key,
// either 16, 24, or 32 bytes to select
// AES-128, AES-192, or AES-256.
// Only encryption is available.
func NewCipher(material []byte) (cipher.Block, error) {
	k, err := key.New(material)
	if err != nil {
		return nil, err
	}
	return &blockCipher{NewAES(k)}, nil
}

func (c *blockCipher) BlockSize() int { return BlockSize }

func (c *blockCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aesgo: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aesgo: output not full block")
	}
	out := c.aes.EncryptBlock([BlockSize]byte(src[:BlockSize]))
	copy(dst, out[:])
}

func (c *blockCipher) Decrypt(dst, src []byte) {
	panic("aesgo: decryption not implemented")
}
