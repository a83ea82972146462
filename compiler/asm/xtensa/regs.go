package xtensa

import (
	"github.com/slowlang/asmregs/compiler/asm"
	"github.com/slowlang/asmregs/compiler/sym"
)

type regInfo struct {
	names    []string // names[0] is emitted
	class    Class
	pred     asm.Predicate
	reserved string
}

var (
	hasFp                = asm.RequireFeature(sym.Fp)
	hasDfpaccel          = asm.RequireFeature(sym.Dfpaccel)
	hasBool              = asm.RequireFeature(sym.Bool)
	hasXloop             = asm.RequireFeature(sym.Xloop)
	hasExtendedl32r      = asm.RequireFeature(sym.Extendedl32r)
	hasS32c1i            = asm.RequireFeature(sym.S32c1i)
	hasMac16             = asm.RequireFeature(sym.Mac16)
	hasWindowed          = asm.RequireFeature(sym.Windowed)
	hasDebug             = asm.RequireFeature(sym.Debug)
	hasMemctl            = asm.RequireFeature(sym.Memctl)
	hasAtomctl           = asm.RequireFeature(sym.Atomctl)
	hasException         = asm.RequireFeature(sym.Exception)
	hasHighpriinterrupts = asm.RequireFeature(sym.Highpriinterrupts)
	hasCoprocessor       = asm.RequireFeature(sym.Coprocessor)
	hasRvector           = asm.RequireFeature(sym.Rvector)
	hasTimerint          = asm.RequireFeature(sym.Timerint)
	hasInterrupt         = asm.RequireFeature(sym.Interrupt)
	hasPrid              = asm.RequireFeature(sym.Prid)
	hasMiscsr            = asm.RequireFeature(sym.Miscsr)
	hasThreadptr         = asm.RequireFeature(sym.Threadptr)
	hasEsp32s3           = asm.RequireFeature(sym.Esp32s3)

	hasExpstate = asm.RequireCPU("esp32", "expstate")
	hasGPIOOut  = asm.RequireCPU("esp32-s2", "gpio_out")
)

// regs is the register catalog in declaration order.
// Reg values index it.
var regs = [...]regInfo{
	def(ClassReg, "a2", nil),
	def(ClassReg, "a3", nil),
	def(ClassReg, "a4", nil),
	def(ClassReg, "a5", nil),
	def(ClassReg, "a6", nil),
	def(ClassReg, "a7", framePointerA7),
	def(ClassReg, "a8", nil),
	def(ClassReg, "a9", nil),
	def(ClassReg, "a10", nil),
	def(ClassReg, "a11", nil),
	def(ClassReg, "a12", nil),
	def(ClassReg, "a13", nil),
	def(ClassReg, "a14", nil),
	def(ClassReg, "a15", framePointerA15),
	def(ClassReg, "sar", nil),
	def(ClassReg, "configid0", nil),
	def(ClassReg, "configid1", nil),
	def(ClassReg, "lbeg", hasXloop),
	def(ClassReg, "lend", hasXloop),
	def(ClassReg, "lcount", hasXloop),
	def(ClassReg, "litbase", hasExtendedl32r),
	def(ClassReg, "scompare1", hasS32c1i),
	def(ClassReg, "acclo", hasMac16),
	def(ClassReg, "acchi", hasMac16),
	def(ClassReg, "m0", hasMac16),
	def(ClassReg, "m1", hasMac16),
	def(ClassReg, "m2", hasMac16),
	def(ClassReg, "m3", hasMac16),
	def(ClassReg, "windowbase", hasWindowed),
	def(ClassReg, "windowstart", hasWindowed),
	def(ClassReg, "ddr", hasDebug),
	def(ClassReg, "ibreakenable", hasDebug),
	def(ClassReg, "ibreaka0", hasDebug),
	def(ClassReg, "ibreaka1", hasDebug),
	def(ClassReg, "dbreaka0", hasDebug),
	def(ClassReg, "dbreaka1", hasDebug),
	def(ClassReg, "dbreakc0", hasDebug),
	def(ClassReg, "dbreakc1", hasDebug),
	def(ClassReg, "icount", hasDebug),
	def(ClassReg, "icountlevel", hasDebug),
	def(ClassReg, "debugcause", hasDebug),
	def(ClassReg, "memctl", hasMemctl),
	def(ClassReg, "atomctl", hasAtomctl),
	def(ClassReg, "ps", hasException),
	def(ClassReg, "epc1", hasException),
	def(ClassReg, "epc2", hasHighpriinterrupts),
	def(ClassReg, "epc3", hasHighpriinterrupts),
	def(ClassReg, "epc4", hasHighpriinterrupts),
	def(ClassReg, "epc5", hasHighpriinterrupts),
	def(ClassReg, "epc6", hasHighpriinterrupts),
	def(ClassReg, "epc7", hasHighpriinterrupts),
	def(ClassReg, "depc", hasException),
	def(ClassReg, "eps2", hasHighpriinterrupts),
	def(ClassReg, "eps3", hasHighpriinterrupts),
	def(ClassReg, "eps4", hasHighpriinterrupts),
	def(ClassReg, "eps5", hasHighpriinterrupts),
	def(ClassReg, "eps6", hasHighpriinterrupts),
	def(ClassReg, "eps7", hasHighpriinterrupts),
	def(ClassReg, "excsave1", hasException),
	def(ClassReg, "excsave2", hasHighpriinterrupts),
	def(ClassReg, "excsave3", hasHighpriinterrupts),
	def(ClassReg, "excsave4", hasHighpriinterrupts),
	def(ClassReg, "excsave5", hasHighpriinterrupts),
	def(ClassReg, "excsave6", hasHighpriinterrupts),
	def(ClassReg, "excsave7", hasHighpriinterrupts),
	def(ClassReg, "exccause", hasException),
	def(ClassReg, "excvaddr", hasException),
	def(ClassReg, "cpenable", hasCoprocessor),
	def(ClassReg, "vecbase", hasRvector),
	def(ClassReg, "interrupt", hasInterrupt),
	def(ClassReg, "intclear", hasInterrupt),
	def(ClassReg, "intenable", hasInterrupt),
	def(ClassReg, "prid", hasPrid),
	def(ClassReg, "ccount", hasTimerint),
	def(ClassReg, "ccompare0", hasTimerint),
	def(ClassReg, "ccompare1", hasTimerint),
	def(ClassReg, "ccompare2", hasTimerint),
	def(ClassReg, "misc0", hasMiscsr),
	def(ClassReg, "misc1", hasMiscsr),
	def(ClassReg, "misc2", hasMiscsr),
	def(ClassReg, "misc3", hasMiscsr),
	def(ClassReg, "threadptr", hasThreadptr),
	def(ClassReg, "fcr", hasDfpaccel),
	def(ClassReg, "fsr", hasDfpaccel),
	def(ClassReg, "f64r_lo", hasDfpaccel),
	def(ClassReg, "f64r_hi", hasDfpaccel),
	def(ClassReg, "f64s", hasDfpaccel),

	def(ClassFReg, "f0", hasFp),
	def(ClassFReg, "f1", hasFp),
	def(ClassFReg, "f2", hasFp),
	def(ClassFReg, "f3", hasFp),
	def(ClassFReg, "f4", hasFp),
	def(ClassFReg, "f5", hasFp),
	def(ClassFReg, "f6", hasFp),
	def(ClassFReg, "f7", hasFp),
	def(ClassFReg, "f8", hasFp),
	def(ClassFReg, "f9", hasFp),
	def(ClassFReg, "f10", hasFp),
	def(ClassFReg, "f11", hasFp),
	def(ClassFReg, "f12", hasFp),
	def(ClassFReg, "f13", hasFp),
	def(ClassFReg, "f14", hasFp),
	def(ClassFReg, "f15", hasFp),

	def(ClassReg, "br", hasBool),
	def(ClassBReg, "b0", hasBool),
	def(ClassBReg, "b1", hasBool),
	def(ClassBReg, "b2", hasBool),
	def(ClassBReg, "b3", hasBool),
	def(ClassBReg, "b4", hasBool),
	def(ClassBReg, "b5", hasBool),
	def(ClassBReg, "b6", hasBool),
	def(ClassBReg, "b7", hasBool),
	def(ClassBReg, "b8", hasBool),
	def(ClassBReg, "b9", hasBool),
	def(ClassBReg, "b10", hasBool),
	def(ClassBReg, "b11", hasBool),
	def(ClassBReg, "b12", hasBool),
	def(ClassBReg, "b13", hasBool),
	def(ClassBReg, "b14", hasBool),
	def(ClassBReg, "b15", hasBool),

	// custom TIE extensions
	def(ClassReg, "gpio_out", hasGPIOOut),
	def(ClassReg, "expstate", hasExpstate),

	// esp32s3 TIE extensions
	def(ClassQReg, "q0", hasEsp32s3),
	def(ClassQReg, "q1", hasEsp32s3),
	def(ClassQReg, "q2", hasEsp32s3),
	def(ClassQReg, "q3", hasEsp32s3),
	def(ClassQReg, "q4", hasEsp32s3),
	def(ClassQReg, "q5", hasEsp32s3),
	def(ClassQReg, "q6", hasEsp32s3),
	def(ClassQReg, "q7", hasEsp32s3),

	def(ClassReg, "accx_0", hasEsp32s3),
	def(ClassReg, "accx_1", hasEsp32s3),
	def(ClassReg, "qacc_h_0", hasEsp32s3),
	def(ClassReg, "qacc_h_1", hasEsp32s3),
	def(ClassReg, "qacc_h_2", hasEsp32s3),
	def(ClassReg, "qacc_h_3", hasEsp32s3),
	def(ClassReg, "qacc_h_4", hasEsp32s3),
	def(ClassReg, "qacc_l_0", hasEsp32s3),
	def(ClassReg, "qacc_l_1", hasEsp32s3),
	def(ClassReg, "qacc_l_2", hasEsp32s3),
	def(ClassReg, "qacc_l_3", hasEsp32s3),
	def(ClassReg, "qacc_l_4", hasEsp32s3),
	def(ClassReg, "fft_bit_width", hasEsp32s3),
	def(ClassReg, "sar_byte", hasEsp32s3),
	def(ClassReg, "ua_state_0", hasEsp32s3),
	def(ClassReg, "ua_state_1", hasEsp32s3),
	def(ClassReg, "ua_state_2", hasEsp32s3),
	def(ClassReg, "ua_state_3", hasEsp32s3),

	reserved("a0 is used internally by LLVM and cannot be used as an operand for inline asm", "a0"),
	reserved("sp is used internally by LLVM and cannot be used as an operand for inline asm", "sp", "a1"),
}

func def(c Class, name string, p asm.Predicate) regInfo {
	return regInfo{names: []string{name}, class: c, pred: p}
}

func reserved(reason string, names ...string) regInfo {
	return regInfo{names: names, class: ClassReg, reserved: reason}
}
