package xtensa

import (
	"fmt"
	"io"

	"github.com/slowlang/asmregs/compiler/asm"
	"github.com/slowlang/asmregs/compiler/target"
	"golang.org/x/exp/slices"
	"tlog.app/go/tlog/tlwire"
)

// Reg is an xtensa register. It indexes the static catalog.
type Reg uint8

var byName = index()

var (
	A0  = mustLookup("a0")
	SP  = mustLookup("sp")
	A7  = mustLookup("a7")
	A15 = mustLookup("a15")
)

func index() map[string]Reg {
	m := make(map[string]Reg, len(regs)+1)

	for r, info := range regs[:] {
		if len(info.names) == 0 {
			panic(fmt.Sprintf("xtensa: register %d has no name", r))
		}

		if info.pred != nil && info.reserved != "" {
			panic(fmt.Sprintf("xtensa: register %s is both reserved and gated", info.names[0]))
		}

		for _, n := range info.names {
			if prev, ok := m[n]; ok {
				panic(fmt.Sprintf("xtensa: duplicate register name %s (%d and %d)", n, prev, r))
			}

			m[n] = Reg(r)
		}
	}

	return m
}

func mustLookup(name string) Reg {
	r, ok := byName[name]
	if !ok {
		panic(name)
	}

	return r
}

// LookupReg finds a register by any of its names.
// Reserved registers are found too; Validate rejects them.
func LookupReg(name string) (Reg, error) {
	r, ok := byName[name]
	if !ok {
		return 0, &asm.NotFoundError{Kind: "register", Name: name}
	}

	return r, nil
}

// RegsOf lists the non-reserved registers of c in declaration order.
func RegsOf(c Class) []Reg {
	var l []Reg

	for r, info := range regs[:] {
		if info.class == c && info.reserved == "" {
			l = append(l, Reg(r))
		}
	}

	return l
}

// AllRegs lists every catalog entry, reserved ones included.
func AllRegs() []Reg {
	l := make([]Reg, len(regs))

	for r := range regs[:] {
		l[r] = Reg(r)
	}

	return l
}

func (r Reg) Name() string { return regs[r].names[0] }

func (r Reg) Aliases() []string { return slices.Clone(regs[r].names[1:]) }

func (r Reg) Class() asm.Class { return regs[r].class }

func (r Reg) RegClass() Class { return regs[r].class }

func (r Reg) Reserved() bool { return regs[r].reserved != "" }

// Gated reports whether the register has an availability predicate.
func (r Reg) Gated() bool { return regs[r].pred != nil }

// Validate checks in fixed order: reservation, then the predicate.
// A register without a predicate is always available.
func (r Reg) Validate(t *target.Target, isClobber bool) error {
	info := &regs[r]

	if info.reserved != "" {
		return &asm.ReservedError{Reg: info.names[0], Reason: info.reserved}
	}

	if info.pred == nil {
		return nil
	}

	return info.pred(asm.NewQuery(asm.Xtensa, t, isClobber))
}

// Emit writes the canonical name.
// Xtensa has no template modifiers: any modifier other than asm.NoModifier
// is rejected with *asm.UnsupportedModifierError and nothing is written.
func (r Reg) Emit(w io.Writer, m asm.Modifier) error {
	if !m.IsZero() {
		return &asm.UnsupportedModifierError{Class: r.RegClass().Name(), Modifier: m.Char}
	}

	_, err := io.WriteString(w, r.Name())

	return err
}

func (r Reg) AppendName(b []byte) []byte {
	return append(b, r.Name()...)
}

func (r Reg) String() string { return r.Name() }

func (r Reg) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	return e.AppendString(b, r.Name())
}
