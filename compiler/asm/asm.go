package asm

import (
	"io"

	"github.com/slowlang/asmregs/compiler/sym"
	"github.com/slowlang/asmregs/compiler/target"
	"tlog.app/go/errors"
)

type (
	Arch int

	// TypeGate is one entry of a class' supported types table.
	// Feature is sym.Empty when the type needs no target feature.
	TypeGate struct {
		Type    Type
		Feature sym.Symbol
	}

	// Modifier is a template modifier like the x in {0:x}.
	// The zero value means no modifier.
	Modifier struct {
		Char rune
		Desc string
	}

	Class interface {
		Name() string

		// SupportedTypes returns a static table in declaration order.
		// Callers must not modify it.
		SupportedTypes() []TypeGate

		SuggestClass(ty Type) (Class, bool)
		SuggestModifier(ty Type) (Modifier, bool)
		DefaultModifier() (Modifier, bool)
		ValidModifiers() []rune
	}

	Reg interface {
		// Name is the canonical alias.
		Name() string
		Class() Class

		// Validate reports whether the register may be named in inline asm
		// for target t. isClobber is set for clobber-only uses.
		Validate(t *target.Target, isClobber bool) error

		Emit(w io.Writer, m Modifier) error
	}

	// Registry is the register model of one architecture.
	Registry interface {
		Arch() Arch

		Classes() []Class
		LookupClass(name string) (Class, error)

		Lookup(name string) (Reg, error)

		// Regs lists the usable-in-principle registers of c
		// in declaration order. Reserved registers are not listed.
		Regs(c Class) []Reg
	}
)

const (
	ArchUnknown Arch = iota
	Xtensa
)

var NoModifier Modifier

var archNames = []string{
	ArchUnknown: "unknown",
	Xtensa:      "xtensa",
}

func ParseArch(s string) (Arch, error) {
	for a, n := range archNames {
		if a != int(ArchUnknown) && n == s {
			return Arch(a), nil
		}
	}

	return ArchUnknown, errors.New("unsupported inline asm arch: %q", s)
}

func (a Arch) String() string {
	if a < 0 || int(a) >= len(archNames) {
		return "unknown"
	}

	return archNames[a]
}

func (m Modifier) IsZero() bool { return m.Char == 0 }

func (m Modifier) String() string {
	if m.IsZero() {
		return ""
	}

	return string(m.Char)
}

// Supports reports whether ty is in the class' type table and returns
// the feature it is gated on.
func Supports(c Class, ty Type) (feature sym.Symbol, ok bool) {
	for _, g := range c.SupportedTypes() {
		if g.Type == ty {
			return g.Feature, true
		}
	}

	return sym.Empty, false
}

// ValidModifier reports whether m may be used with c.
// NoModifier is always valid.
func ValidModifier(c Class, m Modifier) bool {
	if m.IsZero() {
		return true
	}

	for _, v := range c.ValidModifiers() {
		if v == m.Char {
			return true
		}
	}

	return false
}
