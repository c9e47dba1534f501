// Command aesblock encrypts a single 16-byte block with AES-128, AES-192 or
// AES-256.
//
//	aesblock -key 000102030405060708090a0b0c0d0e0f -in 00112233445566778899aabbccddeeff
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"

	aesgo "github.com/mario-areias/aes-core/aes-go"
	"github.com/mario-areias/aes-core/key"
)

func main() {
	if err := run(afero.NewOsFs(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "aesblock: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	keyHex    string
	keyFile   string
	randomKey int
	inHex     string
	inFile    string
	trace     bool
	verbose   bool
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	o := &options{}

	fs := flag.NewFlagSet("aesblock", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.keyHex, "key", "", "Key as hex (32, 48 or 64 digits)")
	fs.StringVar(&o.keyFile, "key-file", "", "Path to a file holding the raw key bytes")
	fs.IntVar(&o.randomKey, "random-key", 0, "Generate a random key of this many bits (128, 192 or 256)")
	fs.StringVar(&o.inHex, "in", "", "Plaintext block as hex (32 digits)")
	fs.StringVar(&o.inFile, "in-file", "", "Path to a file holding the 16 raw plaintext bytes")
	fs.BoolVar(&o.trace, "trace", false, "Print the state after every step")
	fs.BoolVar(&o.verbose, "v", false, "Print key size, round count and hardware support")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if n := countSet(o.keyHex != "", o.keyFile != "", o.randomKey != 0); n != 1 {
		return nil, errors.New("exactly one of -key, -key-file or -random-key is required")
	}
	if n := countSet(o.inHex != "", o.inFile != ""); n != 1 {
		return nil, errors.New("exactly one of -in or -in-file is required")
	}
	return o, nil
}

func countSet(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func run(fs afero.Fs, args []string, stdout io.Writer) error {
	o, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}

	k, err := loadKey(fs, o)
	if err != nil {
		return err
	}
	if o.randomKey != 0 {
		fmt.Fprintf(stdout, "key: %x\n", k.Bytes())
	}

	block, err := loadBlock(fs, o)
	if err != nil {
		return err
	}

	a := aesgo.NewAES(k)
	if o.verbose {
		fmt.Fprintf(stdout, "AES-%d, %d rounds, hardware AES available: %t\n", k.Len()*8, a.Rounds(), aesgo.SupportsHardwareAES())
	}

	var tr aesgo.Tracer
	if o.trace {
		tr = aesgo.NewPrintTracer(stdout)
	}
	out := a.EncryptBlockTrace(block, tr)

	fmt.Fprintf(stdout, "%x\n", out)
	return nil
}

func loadKey(fs afero.Fs, o *options) (key.Key, error) {
	switch {
	case o.randomKey != 0:
		return key.Random(o.randomKey)
	case o.keyFile != "":
		material, err := afero.ReadFile(fs, o.keyFile)
		if err != nil {
			return nil, fmt.Errorf("cannot read key: %w", err)
		}
		return key.New(material)
	default:
		material, err := hex.DecodeString(o.keyHex)
		if err != nil {
			return nil, fmt.Errorf("cannot decode key: %w", err)
		}
		return key.New(material)
	}
}

func loadBlock(fs afero.Fs, o *options) ([aesgo.BlockSize]byte, error) {
	var (
		b   []byte
		err error
	)
	if o.inFile != "" {
		b, err = afero.ReadFile(fs, o.inFile)
		if err != nil {
			return [aesgo.BlockSize]byte{}, fmt.Errorf("cannot read plaintext: %w", err)
		}
	} else {
		b, err = hex.DecodeString(o.inHex)
		if err != nil {
			return [aesgo.BlockSize]byte{}, fmt.Errorf("cannot decode plaintext: %w", err)
		}
	}

	if len(b) != aesgo.BlockSize {
		return [aesgo.BlockSize]byte{}, fmt.Errorf("plaintext must be exactly %d bytes, got %d", aesgo.BlockSize, len(b))
	}
	return [aesgo.BlockSize]byte(b), nil
}
