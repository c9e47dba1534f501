package aesgo

import "encoding/binary"

const (
	BlockSize = 16

	nb       = 4 // columns in the state
	keyBlock = 4 // 4 bytes or 32 bits
)

// state is the 4x4 AES state. Each word is one column, row 0 in the most
// significant byte.
type state [nb]uint32

func loadState(b [BlockSize]byte) state {
	var s state
	for c := 0; c < nb; c++ {
		s[c] = binary.BigEndian.Uint32(b[c*keyBlock:])
	}
	return s
}

func (s *state) bytes() [BlockSize]byte {
	var b [BlockSize]byte
	for c := 0; c < nb; c++ {
		binary.BigEndian.PutUint32(b[c*keyBlock:], s[c])
	}
	return b
}

func (s *state) row(r int) [4]byte {
	var row [4]byte
	shift := 24 - 8*r
	for c := 0; c < nb; c++ {
		row[c] = byte(s[c] >> shift)
	}
	return row
}

func (s *state) setRow(r int, row [4]byte) {
	shift := 24 - 8*r
	mask := ^(uint32(0xff) << shift)
	for c := 0; c < nb; c++ {
		s[c] = s[c]&mask | uint32(row[c])<<shift
	}
}

func (s *state) subBytes() {
	for c := 0; c < nb; c++ {
		s[c] = subWord(s[c])
	}
}

// shiftRows rotates row r left by r positions.
func (s *state) shiftRows() {
	for r := 1; r < 4; r++ {
		row := s.row(r)
		s.setRow(r, [4]byte{row[r%4], row[(r+1)%4], row[(r+2)%4], row[(r+3)%4]})
	}
}

func (s *state) mixColumns() {
	for c := 0; c < nb; c++ {
		s[c] = mixColumn(s[c])
	}
}

func (s *state) addRoundKey(k roundKey) {
	for c := 0; c < nb; c++ {
		s[c] ^= k[c]
	}
}
