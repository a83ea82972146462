package xtensa

import (
	"github.com/slowlang/asmregs/compiler/asm"
	"github.com/slowlang/asmregs/compiler/sym"
)

var (
	errFramePointerA7  = &asm.FramePointerError{Reg: "a7"}
	errFramePointerA15 = &asm.FramePointerError{Reg: "a15"}
)

// framePointerIsA7 selects which of a7 and a15 is the frame pointer.
// The windowed ABI uses a7, the call0 ABI uses a15.
//
// Both predicates below derive from this one test,
// so exactly one of the two registers is rejected for any target.
//
// TODO: targets built without a frame pointer could allow both registers;
// this always reserves one until the ABI rules for that case are settled.
func framePointerIsA7(q asm.Query) bool {
	return q.Features.Has(sym.Windowed)
}

func framePointerA7(q asm.Query) error {
	if framePointerIsA7(q) {
		return errFramePointerA7
	}

	return nil
}

func framePointerA15(q asm.Query) error {
	if !framePointerIsA7(q) {
		return errFramePointerA15
	}

	return nil
}

// FramePointer returns the register the target uses as the frame pointer.
func FramePointer(q asm.Query) Reg {
	if framePointerIsA7(q) {
		return A7
	}

	return A15
}
