package inlineasm

import (
	"bytes"
	"context"
	"testing"

	"github.com/slowlang/asmregs/compiler/asm"
	"github.com/slowlang/asmregs/compiler/asm/xtensa"
	"github.com/slowlang/asmregs/compiler/sym"
	"github.com/slowlang/asmregs/compiler/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/tlog"
)

func esp32(fs ...sym.Symbol) *target.Target {
	return &target.Target{
		Name: "test",
		Arch: "xtensa",
		Options: target.Options{
			CPU:      "esp32",
			Features: target.NewFeatures(fs...),
		},
	}
}

func parse(t *testing.T, ss ...string) []Operand {
	t.Helper()

	l := make([]Operand, len(ss))

	for i, s := range ss {
		op, err := ParseOperand(s)
		require.NoError(t, err, s)

		l[i] = op
	}

	return l
}

func names(res []Resolved) (l []string) {
	for _, r := range res {
		l = append(l, r.Reg.Name())
	}

	return l
}

func TestParseOperand(t *testing.T) {
	for _, tc := range []struct {
		s  string
		op Operand
	}{
		{`in(reg) i32`, Operand{Kind: In, Class: "reg", Type: asm.I32}},
		{` out("a7") i16 `, Operand{Kind: Out, Reg: "a7", Type: asm.I16}},
		{`lateout(reg) i32`, Operand{Kind: LateOut, Class: "reg", Type: asm.I32}},
		{`inout(vector-quad) i8x16`, Operand{Kind: InOut, Class: "vector-quad", Type: asm.VecI8(16)}},
		{`clobber("a8")`, Operand{Kind: Clobber, Reg: "a8"}},
	} {
		op, err := ParseOperand(tc.s)
		require.NoError(t, err, tc.s)
		assert.Equal(t, tc.op, op, tc.s)

		again, err := ParseOperand(op.String())
		require.NoError(t, err, op.String())
		assert.Equal(t, op, again)
	}

	for _, s := range []string{
		`in reg i32`,
		`in(reg i32`,
		`late(reg) i32`,
		`clobber(reg)`,
		`clobber("a8") i32`,
		`in("") i32`,
		`in(reg) u32`,
	} {
		_, err := ParseOperand(s)
		assert.Error(t, err, s)
	}
}

func TestCheckAllocate(t *testing.T) {
	c := New(xtensa.Registry{}, esp32())

	res, err := c.Check(context.Background(), parse(t,
		`in(reg) i32`,
		`out(reg) i32`,
		`in("a2") i32`,
		`clobber("a3")`,
		`out(reg) i8`,
		`lateout(reg) i32`,
	))
	require.NoError(t, err)

	// a2 is an input, a3 is clobbered.
	// outputs avoid inputs, late outputs may reuse them
	assert.Equal(t, []string{"a3", "a4", "a2", "a3", "a5", "a2"}, names(res))
	assert.Equal(t, xtensa.ClassReg, res[0].Class)
}

func TestCheckOutputAvoidsInputs(t *testing.T) {
	c := New(xtensa.Registry{}, esp32())

	res, err := c.Check(context.Background(), parse(t, `in("a2") i32`, `out(reg) i32`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a3"}, names(res))

	res, err = c.Check(context.Background(), parse(t, `in(reg) i32`, `out(reg) i32`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a3"}, names(res))

	res, err = c.Check(context.Background(), parse(t, `in(reg) i32`, `lateout(reg) i32`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a2"}, names(res))

	res, err = c.Check(context.Background(), parse(t, `inout(reg) i32`, `lateout(reg) i32`, `in(reg) i32`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a3", "a3"}, names(res))
}

func TestCheckFramePointer(t *testing.T) {
	c := New(xtensa.Registry{}, esp32(sym.Windowed))

	_, err := c.Check(context.Background(), parse(t, `in("a7") i32`))

	var fperr *asm.FramePointerError
	require.ErrorAs(t, err, &fperr)
	assert.Equal(t, "a7", fperr.Reg)

	res, err := c.Check(context.Background(), parse(t, `in("a15") i32`, `clobber("a15")`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a15", "a15"}, names(res))

	// allocation skips the frame pointer
	ops := make([]Operand, 0, 16)
	for i := 0; i < 13; i++ {
		ops = append(ops, Operand{Kind: Out, Class: "reg", Type: asm.I32})
	}

	res, err = c.Check(context.Background(), ops)
	require.NoError(t, err)
	assert.NotContains(t, names(res), "a7")
}

func TestCheckReserved(t *testing.T) {
	c := New(xtensa.Registry{}, esp32(sym.Windowed, sym.Fp, sym.Bool))

	for _, s := range []string{`in("a0") i32`, `clobber("a0")`, `out("sp") i32`, `clobber("a1")`} {
		_, err := c.Check(context.Background(), parse(t, s))

		var rerr *asm.ReservedError
		assert.ErrorAs(t, err, &rerr, s)
	}
}

func TestCheckConflict(t *testing.T) {
	c := New(xtensa.Registry{}, esp32())

	_, err := c.Check(context.Background(), parse(t, `in("a2") i32`, `inout("a2") i32`))

	var cerr *asm.RegConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "a2", cerr.Reg)
	assert.Equal(t, "a2", cerr.Prev)

	_, err = c.Check(context.Background(), parse(t, `clobber("b0")`))
	assert.Error(t, err, "b0 needs the bool feature")

	_, err = c.Check(context.Background(), parse(t, `in("a4") i32`, `out("a4") i32`))
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "a4", cerr.Reg)

	_, err = c.Check(context.Background(), parse(t, `out("a4") i32`, `in("a4") i32`))
	assert.ErrorAs(t, err, &cerr)

	_, err = c.Check(context.Background(), parse(t, `in("a4") i32`, `lateout("a4") i32`))
	assert.NoError(t, err, "late output may share a register with an input")
}

func TestCheckNoTarget(t *testing.T) {
	assert.NotPanics(t, func() {
		_, err := New(xtensa.Registry{}, nil).Check(context.Background(), parse(t, `in(reg) i32`))
		assert.EqualError(t, err, "no target")
	})
}

func TestCheckLogsOperands(t *testing.T) {
	var buf bytes.Buffer

	l := tlog.New(tlog.NewConsoleWriter(&buf, 0))
	l.SetVerbosity("asm_operands")

	ctx := tlog.ContextWithSpan(context.Background(), l.Root())

	c := New(xtensa.Registry{}, esp32(sym.Fp, sym.Windowed))

	_, err := c.Check(ctx, parse(t, `in(freg) f32`, `clobber("a8")`))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "reg=f0")
	assert.Contains(t, out, "class=freg")
	assert.Contains(t, out, "type=f32")
	assert.Contains(t, out, "reg=a8")
	assert.Contains(t, out, "fp")
	assert.Contains(t, out, "windowed")
}

func TestCheckTypes(t *testing.T) {
	c := New(xtensa.Registry{}, esp32(sym.Fp))

	_, err := c.Check(context.Background(), parse(t, `in(reg) i64`))

	var terr *asm.UnsupportedTypeError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "reg", terr.Class)

	res, err := c.Check(context.Background(), parse(t, `in(freg) f32`))
	require.NoError(t, err)
	assert.Equal(t, []string{"f0"}, names(res))

	_, err = c.Check(context.Background(), parse(t, `in(freg) f64`))

	var ferr *asm.TypeFeatureError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, sym.Dfpaccel, ferr.Feature)

	_, err = c.Check(context.Background(), parse(t, `in(qreg) f32x4`))
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, sym.Esp32s3, ferr.Feature)

	_, err = c.Check(context.Background(), parse(t, `in(vreg) i32`))

	var nf *asm.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "vreg", nf.Name)
}

func TestCheckExhausted(t *testing.T) {
	c := New(xtensa.Registry{}, esp32(sym.Esp32s3))

	ops := make([]Operand, 9)
	for i := range ops {
		ops[i] = Operand{Kind: In, Class: "qreg", Type: asm.VecI32(4)}
	}

	_, err := c.Check(context.Background(), ops)
	assert.ErrorContains(t, err, "valid registers for this class are: q0, q1, q2, q3, q4, q5, q6, q7")

	res, err := c.Check(context.Background(), ops[:8])
	require.NoError(t, err)
	assert.Equal(t, "q7", res[7].Reg.Name())
}

func TestCheckArch(t *testing.T) {
	tg := esp32()
	tg.Arch = "riscv32"

	_, err := New(xtensa.Registry{}, tg).Check(context.Background(), nil)
	assert.Error(t, err)
}

func TestExpand(t *testing.T) {
	c := New(xtensa.Registry{}, esp32(sym.Windowed))

	res, err := c.Check(context.Background(), parse(t, `out(reg) i32`, `in("a15") i32`, `clobber("a8")`))
	require.NoError(t, err)

	s, err := Expand("mov {0}, {1} {{x}}", res)
	require.NoError(t, err)
	assert.Equal(t, "mov a2, a15 {x}", s)

	_, err = Expand("mov {0:x}, {1}", res)

	var merr *asm.UnsupportedModifierError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 'x', merr.Modifier)

	for _, tmpl := range []string{"{2}", "{3}", "{-1}", "{a}", "{0", "}", "{0:xy}"} {
		_, err = Expand(tmpl, res)
		assert.Error(t, err, tmpl)
	}
}
