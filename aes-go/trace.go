package aesgo

import (
	"fmt"
	"io"
)

// Step identifies one transformation of the cipher.
type Step int

const (
	StepInput Step = iota
	StepSubBytes
	StepShiftRows
	StepMixColumns
	// StepRoundKey reports the round key about to be added, not the state.
	StepRoundKey
	StepAddRoundKey
	StepOutput
)

// String returns the labels used by the FIPS-197 appendix C listings.
func (s Step) String() string {
	switch s {
	case StepInput:
		return "input"
	case StepSubBytes:
		return "s_box"
	case StepShiftRows:
		return "s_row"
	case StepMixColumns:
		return "m_col"
	case StepRoundKey:
		return "k_sch"
	case StepAddRoundKey:
		return "start"
	case StepOutput:
		return "output"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Tracer receives the state after each step of an encryption.
type Tracer interface {
	Step(round int, step Step, block [BlockSize]byte)
}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(round int, step Step, block [BlockSize]byte)

func (f TracerFunc) Step(round int, step Step, block [BlockSize]byte) {
	f(round, step, block)
}

// PrintTracer writes one line per step in the layout of FIPS-197 appendix C:
//
//	round[ 1].start   193de3bea0f4e22b9ac68d2ae9f84808
//	round[ 1].s_box   d42711aee0bf98f1b8b45de51e415230
//
// The state after adding a round key is printed as the start of the next
// round, except after the final round where it is the output.
type PrintTracer struct {
	w io.Writer

	pending    bool
	pendingRnd int
	pendingBlk [BlockSize]byte
}

func NewPrintTracer(w io.Writer) *PrintTracer {
	return &PrintTracer{w: w}
}

func (p *PrintTracer) Step(round int, step Step, block [BlockSize]byte) {
	if p.pending && step != StepOutput {
		p.print(p.pendingRnd+1, StepAddRoundKey, p.pendingBlk)
	}
	p.pending = false

	if step == StepAddRoundKey {
		p.pending, p.pendingRnd, p.pendingBlk = true, round, block
		return
	}
	p.print(round, step, block)
}

func (p *PrintTracer) print(round int, step Step, block [BlockSize]byte) {
	fmt.Fprintf(p.w, "round[%2d].%-7s %x\n", round, step, block)
}

func traceState(tr Tracer, round int, step Step, s *state) {
	if tr == nil {
		return
	}
	tr.Step(round, step, s.bytes())
}
