package aesgo

import (
	"bytes"
	"crypto/aes"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/mario-areias/aes-core/key"
)

func mustKey(t testing.TB, s string) key.Key {
	t.Helper()
	material, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("Error decoding key: %s", err)
	}
	k, err := key.New(material)
	if err != nil {
		t.Fatalf("Error creating key: %s", err)
	}
	return k
}

func mustBlock(t testing.TB, s string) [BlockSize]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != BlockSize {
		t.Fatalf("Invalid block %q", s)
	}
	return [BlockSize]byte(b)
}

// FIPS-197 appendix B and appendix C.
var encryptTests = []struct {
	name string

	key       string
	plaintext string
	expected  string
}{
	{
		name:      "AES-128 appendix B",
		key:       "2b7e151628aed2a6abf7158809cf4f3c",
		plaintext: "3243f6a8885a308d313198a2e0370734",
		expected:  "3925841d02dc09fbdc118597196a0b32",
	},
	{
		name:      "AES-128 appendix C.1",
		key:       "000102030405060708090a0b0c0d0e0f",
		plaintext: "00112233445566778899aabbccddeeff",
		expected:  "69c4e0d86a7b0430d8cdb78070b4c55a",
	},
	{
		name:      "AES-192 appendix C.2",
		key:       "000102030405060708090a0b0c0d0e0f1011121314151617",
		plaintext: "00112233445566778899aabbccddeeff",
		expected:  "dda97ca4864cdfe06eaf70a0ec0d7191",
	},
	{
		name:      "AES-256 appendix C.3",
		key:       "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		plaintext: "00112233445566778899aabbccddeeff",
		expected:  "8ea2b7ca516745bfeafc49904b496089",
	},
}

func TestEncryptBlock(t *testing.T) {
	for _, test := range encryptTests {
		t.Run(test.name, func(t *testing.T) {
			a := NewAES(mustKey(t, test.key))

			got := a.EncryptBlock(mustBlock(t, test.plaintext))
			if hex.EncodeToString(got[:]) != test.expected {
				t.Errorf("Got: %x, Expected: %s", got, test.expected)
			}

			// a second call must not depend on the first
			again := a.EncryptBlock(mustBlock(t, test.plaintext))
			if again != got {
				t.Errorf("Second encryption differs. Got: %x, Expected: %x", again, got)
			}

			if fn := EncryptBlock(mustKey(t, test.key), mustBlock(t, test.plaintext)); fn != got {
				t.Errorf("EncryptBlock function differs. Got: %x, Expected: %x", fn, got)
			}
		})
	}
}

func TestRounds(t *testing.T) {
	tests := []struct {
		key    key.Key
		rounds int
	}{
		{key.New128([16]byte{}), 10},
		{key.New192([24]byte{}), 12},
		{key.New256([32]byte{}), 14},
	}

	for _, test := range tests {
		if got := NewAES(test.key).Rounds(); got != test.rounds {
			t.Errorf("Rounds() for %d bit key = %d, expected %d", test.key.Len()*8, got, test.rounds)
		}
	}
}

func TestRoundStructure(t *testing.T) {
	for _, test := range encryptTests {
		t.Run(test.name, func(t *testing.T) {
			a := NewAES(mustKey(t, test.key))
			nr := a.Rounds()

			counts := map[Step]int{}
			a.EncryptBlockTrace(mustBlock(t, test.plaintext), TracerFunc(func(round int, step Step, _ [BlockSize]byte) {
				counts[step]++
				if step == StepMixColumns && (round == 0 || round == nr) {
					t.Errorf("MixColumns applied in round %d", round)
				}
			}))

			if counts[StepAddRoundKey] != nr+1 {
				t.Errorf("AddRoundKey applied %d times, expected %d", counts[StepAddRoundKey], nr+1)
			}
			if counts[StepRoundKey] != nr+1 {
				t.Errorf("%d round keys used, expected %d", counts[StepRoundKey], nr+1)
			}
			if counts[StepMixColumns] != nr-1 {
				t.Errorf("MixColumns applied %d times, expected %d", counts[StepMixColumns], nr-1)
			}
			if counts[StepSubBytes] != nr || counts[StepShiftRows] != nr {
				t.Errorf("SubBytes/ShiftRows applied %d/%d times, expected %d", counts[StepSubBytes], counts[StepShiftRows], nr)
			}
			if counts[StepInput] != 1 || counts[StepOutput] != 1 {
				t.Errorf("Input/Output reported %d/%d times", counts[StepInput], counts[StepOutput])
			}
		})
	}
}

func TestTraceOutputIsCiphertext(t *testing.T) {
	test := encryptTests[2]
	a := NewAES(mustKey(t, test.key))

	var last [BlockSize]byte
	got := a.EncryptBlockTrace(mustBlock(t, test.plaintext), TracerFunc(func(_ int, step Step, b [BlockSize]byte) {
		if step == StepOutput {
			last = b
		}
	}))

	if last != got {
		t.Errorf("Traced output %x differs from ciphertext %x", last, got)
	}
}

// FIPS-197 appendix C.1.
func TestPrintTracer(t *testing.T) {
	test := encryptTests[1]
	a := NewAES(mustKey(t, test.key))

	var buf bytes.Buffer
	a.EncryptBlockTrace(mustBlock(t, test.plaintext), NewPrintTracer(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 52 {
		t.Fatalf("Got %d lines, expected 52:\n%s", len(lines), buf.String())
	}

	expected := map[int]string{
		0:  "round[ 0].input   00112233445566778899aabbccddeeff",
		1:  "round[ 0].k_sch   000102030405060708090a0b0c0d0e0f",
		2:  "round[ 1].start   00102030405060708090a0b0c0d0e0f0",
		3:  "round[ 1].s_box   63cab7040953d051cd60e0e7ba70e18c",
		4:  "round[ 1].s_row   6353e08c0960e104cd70b751bacad0e7",
		5:  "round[ 1].m_col   5f72641557f5bc92f7be3b291db9f91a",
		6:  "round[ 1].k_sch   d6aa74fdd2af72fadaa678f1d6ab76fe",
		7:  "round[ 2].start   89d810e8855ace682d1843d8cb128fe4",
		50: "round[10].k_sch   13111d7fe3944a17f307a78b4d2b30c5",
		51: "round[10].output  69c4e0d86a7b0430d8cdb78070b4c55a",
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("Line %d\nGot     : %s\nExpected: %s", i, lines[i], want)
		}
	}
}

func TestStepString(t *testing.T) {
	if s := Step(42).String(); s != "Step(42)" {
		t.Errorf("Got: %s", s)
	}
	if s := StepMixColumns.String(); s != "m_col" {
		t.Errorf("Got: %s", s)
	}
}

func TestAgainstStd(t *testing.T) {
	for _, k := range []key.Key{key.Random128(), key.Random192(), key.Random256()} {
		std, err := aes.NewCipher(k.Bytes())
		if err != nil {
			t.Fatalf("Error creating std cipher: %s", err)
		}
		a := NewAES(k)

		for i := 0; i < 64; i++ {
			var block [BlockSize]byte
			if _, err := rand.Read(block[:]); err != nil {
				t.Fatal(err)
			}

			expected := make([]byte, BlockSize)
			std.Encrypt(expected, block[:])

			got := a.EncryptBlock(block)
			if !bytes.Equal(got[:], expected) {
				t.Fatalf("%d bit key %x, block %x. Got: %x, Expected: %x", k.Len()*8, k.Bytes(), block, got, expected)
			}
		}
	}
}

func BenchmarkEncrypt(b *testing.B) {
	for _, test := range encryptTests[1:] {
		b.Run(test.name, func(b *testing.B) {
			a := NewAES(mustKey(b, test.key))
			in := mustBlock(b, test.plaintext)
			b.SetBytes(BlockSize)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				in = a.EncryptBlock(in)
			}
		})
	}
}

func BenchmarkExpand(b *testing.B) {
	k := mustKey(b, encryptTests[0].key)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		expandKey(k)
	}
}
