package asm

import (
	"fmt"

	"github.com/slowlang/asmregs/compiler/sym"
)

type (
	NotFoundError struct {
		Kind string // "register" or "register class"
		Name string
	}

	UnsupportedByFeatureError struct {
		Feature sym.Symbol
	}

	UnsupportedByCPUError struct {
		Group string
		CPU   string // the cpu the registers exist on
	}

	ReservedError struct {
		Reg    string
		Reason string
	}

	FramePointerError struct {
		Reg string
	}

	UnsupportedTypeError struct {
		Class string
		Type  Type
	}

	TypeFeatureError struct {
		Type    Type
		Feature sym.Symbol
	}

	UnsupportedModifierError struct {
		Class    string
		Modifier rune
	}

	RegConflictError struct {
		Reg  string
		Prev string
	}
)

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("invalid %s `%s`: unknown %[1]s", e.Kind, e.Name)
}

func (e *UnsupportedByFeatureError) Error() string {
	return fmt.Sprintf("target does not support `%v` registers", e.Feature)
}

func (e *UnsupportedByCPUError) Error() string {
	return fmt.Sprintf("target does not support `%s` registers", e.Group)
}

func (e *ReservedError) Error() string { return e.Reason }

func (e *FramePointerError) Error() string {
	return fmt.Sprintf("the frame pointer (%s) cannot be used as an operand for inline asm", e.Reg)
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("type `%v` cannot be used with register class `%s`", e.Type, e.Class)
}

func (e *TypeFeatureError) Error() string {
	return fmt.Sprintf("type `%v` requires the `%v` target feature, which is not enabled", e.Type, e.Feature)
}

func (e *UnsupportedModifierError) Error() string {
	return fmt.Sprintf("invalid asm template modifier `%c` for register class `%s`", e.Modifier, e.Class)
}

func (e *RegConflictError) Error() string {
	return fmt.Sprintf("register `%s` conflicts with register `%s`", e.Reg, e.Prev)
}
