package aesgo

import "golang.org/x/sys/cpu"

// SupportsHardwareAES reports whether the CPU has AES instructions. This
// package never uses them; crypto/aes does.
func SupportsHardwareAES() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES || cpu.S390X.HasAES
}
