package xtensa

import (
	"github.com/slowlang/asmregs/compiler/asm"
	"github.com/slowlang/asmregs/compiler/sym"
	"golang.org/x/exp/slices"
	"tlog.app/go/tlog/tlwire"
)

type (
	Class uint8

	classInfo struct {
		name  string
		long  string
		types []asm.TypeGate
	}
)

const (
	ClassReg Class = iota
	ClassFReg
	ClassBReg
	ClassQReg

	numClasses
)

var classes = [numClasses]classInfo{
	ClassReg: {
		name: "reg",
		long: "general",
		types: []asm.TypeGate{
			{Type: asm.I8},
			{Type: asm.I16},
			{Type: asm.I32},
		},
	},
	ClassFReg: {
		name: "freg",
		long: "float",
		types: []asm.TypeGate{
			{Type: asm.F32, Feature: sym.Fp},
			{Type: asm.F64, Feature: sym.Dfpaccel},
		},
	},
	ClassBReg: {
		name: "breg",
		long: "bool",
		types: []asm.TypeGate{
			{Type: asm.I1, Feature: sym.Bool},
		},
	},
	ClassQReg: {
		name: "qreg",
		long: "vector-quad",
		types: []asm.TypeGate{
			{Type: asm.VecI8(16), Feature: sym.Esp32s3},
			{Type: asm.VecI16(8), Feature: sym.Esp32s3},
			{Type: asm.VecI32(4), Feature: sym.Esp32s3},
			{Type: asm.VecF32(4), Feature: sym.Esp32s3},
		},
	},
}

// LookupClass finds a class by its short (reg, qreg) or long (general, vector-quad) name.
func LookupClass(name string) (Class, error) {
	for c, info := range classes {
		if info.name == name || info.long == name {
			return Class(c), nil
		}
	}

	return 0, &asm.NotFoundError{Kind: "register class", Name: name}
}

func (c Class) Name() string     { return classes[c].name }
func (c Class) LongName() string { return classes[c].long }

func (c Class) SupportedTypes() []asm.TypeGate { return slices.Clone(classes[c].types) }

// Xtensa classes do not overlap, there is nothing to suggest.
func (c Class) SuggestClass(ty asm.Type) (asm.Class, bool)       { return nil, false }
func (c Class) SuggestModifier(ty asm.Type) (asm.Modifier, bool) { return asm.NoModifier, false }
func (c Class) DefaultModifier() (asm.Modifier, bool)            { return asm.NoModifier, false }
func (c Class) ValidModifiers() []rune                           { return nil }

func (c Class) String() string { return c.Name() }

func (c Class) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	return e.AppendString(b, c.Name())
}
