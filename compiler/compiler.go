package compiler

import (
	"context"

	"github.com/slowlang/asmregs/compiler/asm"
	"github.com/slowlang/asmregs/compiler/asm/xtensa"
	"github.com/slowlang/asmregs/compiler/inlineasm"
	"github.com/slowlang/asmregs/compiler/target"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

// Registry returns the register model for arch.
func Registry(arch asm.Arch) (asm.Registry, error) {
	switch arch {
	case asm.Xtensa:
		return xtensa.Registry{}, nil
	default:
		return nil, errors.New("no inline asm support for arch %v", arch)
	}
}

// CheckInlineAsm parses operand strings and resolves them for target t.
func CheckInlineAsm(ctx context.Context, t *target.Target, args []string) (res []inlineasm.Resolved, err error) {
	if t == nil {
		return nil, errors.New("no target")
	}

	arch, err := asm.ParseArch(t.Arch)
	if err != nil {
		return nil, errors.Wrap(err, "target %v", t.Name)
	}

	reg, err := Registry(arch)
	if err != nil {
		return nil, err
	}

	ops := make([]inlineasm.Operand, len(args))

	for i, s := range args {
		ops[i], err = inlineasm.ParseOperand(s)
		if err != nil {
			return nil, errors.Wrap(err, "parse operand %d", i)
		}
	}

	tlog.SpanFromContext(ctx).Printw("parsed operands", "n", len(ops), "arch", arch.String())

	res, err = inlineasm.New(reg, t).Check(ctx, ops)
	if err != nil {
		return nil, errors.Wrap(err, "check operands")
	}

	return res, nil
}
