package aesgo

import (
	"encoding/binary"

	"github.com/mario-areias/aes-core/galois"
)

// mixMatrix is the fixed MixColumns matrix.
var mixMatrix = [4][4]byte{
	{0x02, 0x03, 0x01, 0x01},
	{0x01, 0x02, 0x03, 0x01},
	{0x01, 0x01, 0x02, 0x03},
	{0x03, 0x01, 0x01, 0x02},
}

// mixColumn multiplies one column by mixMatrix over GF(2^8).
func mixColumn(col uint32) uint32 {
	var in, out [4]byte
	binary.BigEndian.PutUint32(in[:], col)

	for r := 0; r < 4; r++ {
		var acc byte
		for c := 0; c < 4; c++ {
			acc = galois.Add(acc, galois.Mul(mixMatrix[r][c], in[c]))
		}
		out[r] = acc
	}

	return binary.BigEndian.Uint32(out[:])
}
