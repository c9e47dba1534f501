// Package aesgo is a from-scratch implementation of AES block encryption
// (FIPS-197) for 128, 192 and 256 bit keys.
package aesgo

import (
	"github.com/mario-areias/aes-core/key"
)

// AES encrypts single blocks under one key. It only holds the key, so a
// value can be shared between goroutines.
type AES struct {
	key    key.Key
	rounds int
}

func NewAES(k key.Key) *AES {
	return &AES{key: k, rounds: rounds(k.Nk())}
}

// Rounds returns Nr: 10, 12 or 14.
func (a *AES) Rounds() int {
	return a.rounds
}

// Key returns the key the cipher was built with.
func (a *AES) Key() key.Key {
	return a.key
}

// EncryptBlock encrypts one block. Round keys are expanded on every call and
// discarded afterwards.
func (a *AES) EncryptBlock(block [BlockSize]byte) [BlockSize]byte {
	return a.EncryptBlockTrace(block, nil)
}

// EncryptBlockTrace is EncryptBlock reporting every intermediate state to tr.
// A nil tr disables tracing.
func (a *AES) EncryptBlockTrace(block [BlockSize]byte, tr Tracer) [BlockSize]byte {
	s := loadState(block)
	encrypt(&s, expandKey(a.key), tr)
	return s.bytes()
}

// EncryptBlock encrypts one block under k.
func EncryptBlock(k key.Key, block [BlockSize]byte) [BlockSize]byte {
	return NewAES(k).EncryptBlock(block)
}

// encrypt runs the cipher over s. The round count comes from the number of
// round keys.
func encrypt(s *state, roundKeys []roundKey, tr Tracer) {
	nr := len(roundKeys) - 1

	traceState(tr, 0, StepInput, s)
	addRoundKey(s, 0, roundKeys[0], tr)

	for round := 1; round < nr; round++ {
		s.subBytes()
		traceState(tr, round, StepSubBytes, s)

		s.shiftRows()
		traceState(tr, round, StepShiftRows, s)

		s.mixColumns()
		traceState(tr, round, StepMixColumns, s)

		addRoundKey(s, round, roundKeys[round], tr)
	}

	// no MixColumns in the final round
	s.subBytes()
	traceState(tr, nr, StepSubBytes, s)

	s.shiftRows()
	traceState(tr, nr, StepShiftRows, s)

	addRoundKey(s, nr, roundKeys[nr], tr)
	traceState(tr, nr, StepOutput, s)
}

func addRoundKey(s *state, round int, k roundKey, tr Tracer) {
	if tr != nil {
		ks := state(k)
		tr.Step(round, StepRoundKey, ks.bytes())
	}
	s.addRoundKey(k)
	traceState(tr, round, StepAddRoundKey, s)
}
