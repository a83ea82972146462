package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/slowlang/asmregs/compiler/asm/xtensa"
	"github.com/slowlang/asmregs/compiler/sym"
	"github.com/slowlang/asmregs/compiler/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTarget(t *testing.T) {
	tg, err := buildTarget("xtensa-esp32s3-espidf", "esp32", "+windowed,+fp", "pic")
	require.NoError(t, err)

	assert.Equal(t, "esp32", tg.CPU)
	assert.True(t, tg.Features.Has(sym.Windowed))
	assert.True(t, tg.Features.Has(sym.Fp))
	assert.Equal(t, target.RelocPIC, tg.RelocModel)

	tg, err = buildTarget("xtensa-esp8266-none-elf", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "esp8266", tg.CPU)

	_, err = buildTarget("nope", "", "", "")
	assert.Error(t, err)

	_, err = buildTarget("xtensa-esp8266-none-elf", "", "+", "")
	assert.Error(t, err)

	_, err = buildTarget("xtensa-esp8266-none-elf", "", "", "weird")
	assert.Error(t, err)
}

func TestCheckRegs(t *testing.T) {
	tg, err := buildTarget("xtensa-esp32s2-espidf", "", "+windowed", "")
	require.NoError(t, err)

	var buf bytes.Buffer

	bad, err := checkRegs(&buf, tg, []string{"a2", "a7", "a15", "a0", "gpio_out", "nope"}, false)
	require.NoError(t, err)
	assert.Equal(t, 3, bad)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)

	assert.True(t, strings.HasSuffix(lines[0], " ok"))
	assert.Contains(t, lines[1], "the frame pointer (a7) cannot be used as an operand for inline asm")
	assert.True(t, strings.HasSuffix(lines[2], " ok"))
	assert.Contains(t, lines[3], "a0 is used internally by LLVM")
	assert.True(t, strings.HasSuffix(lines[4], " ok"))
	assert.Contains(t, lines[5], "unknown register")
}

func TestTrees(t *testing.T) {
	s := classesTree().String()

	assert.Contains(t, s, "qreg (vector-quad)")
	assert.Contains(t, s, "i8x16 (requires esp32s3)")
	assert.Contains(t, s, "f64 (requires dfpaccel)")

	tg, err := buildTarget("xtensa-esp32s2-espidf", "", "", "")
	require.NoError(t, err)

	cls, err := parseClasses([]string{"qreg"})
	require.NoError(t, err)
	assert.Equal(t, []xtensa.Class{xtensa.ClassQReg}, []xtensa.Class{cls[0].(xtensa.Class)})

	s = regsTree(tg, cls).String()

	assert.Contains(t, s, "q7")
	assert.Contains(t, s, "target does not support `esp32s3` registers")

	_, err = parseClasses([]string{"vreg"})
	assert.Error(t, err)

	cls, err = parseClasses(nil)
	require.NoError(t, err)
	assert.Len(t, cls, 4)
}
