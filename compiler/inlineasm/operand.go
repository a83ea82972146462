package inlineasm

import (
	"fmt"
	"strings"

	"github.com/slowlang/asmregs/compiler/asm"
	"tlog.app/go/errors"
)

type (
	Kind int

	// Operand is one operand of an asm block.
	// Exactly one of Class and Reg is set. Clobbers always name a Reg.
	Operand struct {
		Kind  Kind
		Class string
		Reg   string
		Type  asm.Type
	}
)

const (
	In Kind = iota
	Out
	LateOut
	InOut
	Clobber
)

var kindNames = []string{
	In:      "in",
	Out:     "out",
	LateOut: "lateout",
	InOut:   "inout",
	Clobber: "clobber",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

func (k Kind) reads() bool  { return k == In || k == InOut }
func (k Kind) writes() bool { return k != In }

// early outputs may be written before inputs are read,
// so they can't share a register with any input.
// Late outputs and clobbers are written after all inputs are consumed.
func (k Kind) early() bool { return k == Out }

// ParseOperand parses
//
//	in(reg) i32
//	out("a7") i32
//	lateout(reg) i32
//	inout(freg) f32
//	clobber("a8")
func ParseOperand(s string) (op Operand, err error) {
	s = strings.TrimSpace(s)

	name, rest, ok := strings.Cut(s, "(")
	if !ok {
		return op, errors.New("expected '(' in operand: %q", s)
	}

	arg, ty, ok := strings.Cut(rest, ")")
	if !ok {
		return op, errors.New("expected ')' in operand: %q", s)
	}

	op.Kind = -1

	for k, n := range kindNames {
		if n == strings.TrimSpace(name) {
			op.Kind = Kind(k)
		}
	}

	if op.Kind < 0 {
		return op, errors.New("unknown operand kind: %q", name)
	}

	arg = strings.TrimSpace(arg)

	switch {
	case len(arg) >= 2 && arg[0] == '"' && arg[len(arg)-1] == '"':
		op.Reg = arg[1 : len(arg)-1]
	case op.Kind == Clobber:
		return op, errors.New("clobber must name a register: %q", s)
	default:
		op.Class = arg
	}

	if op.Reg == "" && op.Class == "" {
		return op, errors.New("empty register: %q", s)
	}

	ty = strings.TrimSpace(ty)

	if op.Kind == Clobber {
		if ty != "" {
			return op, errors.New("clobber has no type: %q", s)
		}

		return op, nil
	}

	op.Type, err = asm.ParseType(ty)
	if err != nil {
		return op, errors.Wrap(err, "operand %q", s)
	}

	return op, nil
}

func (op Operand) String() string {
	var b strings.Builder

	b.WriteString(op.Kind.String())
	b.WriteByte('(')

	if op.Reg != "" {
		fmt.Fprintf(&b, "%q", op.Reg)
	} else {
		b.WriteString(op.Class)
	}

	b.WriteByte(')')

	if op.Kind != Clobber {
		b.WriteByte(' ')
		b.WriteString(op.Type.String())
	}

	return b.String()
}
