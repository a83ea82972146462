package xtensa

import (
	"github.com/slowlang/asmregs/compiler/asm"
)

// Registry exposes the xtensa tables through asm.Registry.
// It has no state; the tables are built once at package init.
type Registry struct{}

var _ asm.Registry = Registry{}

func (Registry) Arch() asm.Arch { return asm.Xtensa }

func (Registry) Classes() []asm.Class {
	l := make([]asm.Class, numClasses)

	for c := range l {
		l[c] = Class(c)
	}

	return l
}

func (Registry) LookupClass(name string) (asm.Class, error) {
	c, err := LookupClass(name)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (Registry) Lookup(name string) (asm.Reg, error) {
	r, err := LookupReg(name)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (Registry) Regs(c asm.Class) []asm.Reg {
	xc, ok := c.(Class)
	if !ok {
		return nil
	}

	rs := RegsOf(xc)
	l := make([]asm.Reg, len(rs))

	for i, r := range rs {
		l[i] = r
	}

	return l
}
