package compiler

import (
	"context"
	"testing"

	"github.com/slowlang/asmregs/compiler/asm"
	"github.com/slowlang/asmregs/compiler/sym"
	"github.com/slowlang/asmregs/compiler/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInlineAsm(t *testing.T) {
	tg, err := target.Lookup("xtensa-esp32s3-espidf")
	require.NoError(t, err)

	tg = tg.WithFeatures(target.NewFeatures(sym.Esp32s3, sym.Windowed))

	ctx := context.Background()

	res, err := CheckInlineAsm(ctx, tg, []string{`in(qreg) i16x8`, `out(reg) i32`, `clobber("a15")`})
	require.NoError(t, err)
	require.Len(t, res, 3)

	assert.Equal(t, "q0", res[0].Reg.Name())
	assert.Equal(t, "a2", res[1].Reg.Name())
	assert.Equal(t, "a15", res[2].Reg.Name())

	_, err = CheckInlineAsm(ctx, tg, []string{`in("a7") i32`})

	var fperr *asm.FramePointerError
	assert.ErrorAs(t, err, &fperr)

	_, err = CheckInlineAsm(ctx, tg, []string{`in reg`})
	assert.Error(t, err)

	other := *tg
	other.Arch = "mips"

	_, err = CheckInlineAsm(ctx, &other, nil)
	assert.Error(t, err)
}

func TestCheckInlineAsmNoTarget(t *testing.T) {
	assert.NotPanics(t, func() {
		_, err := CheckInlineAsm(context.Background(), nil, []string{`in(reg) i32`})
		assert.EqualError(t, err, "no target")
	})
}

func TestRegistry(t *testing.T) {
	r, err := Registry(asm.Xtensa)
	require.NoError(t, err)
	assert.Equal(t, asm.Xtensa, r.Arch())

	_, err = Registry(asm.ArchUnknown)
	assert.Error(t, err)
}
