package inlineasm

import (
	"strconv"
	"strings"

	"github.com/slowlang/asmregs/compiler/asm"
	"tlog.app/go/errors"
)

// Expand substitutes {N} and {N:m} placeholders in tmpl with the
// registers assigned to operands. {{ and }} are literal braces.
func Expand(tmpl string, res []Resolved) (string, error) {
	var b strings.Builder

	for i := 0; i < len(tmpl); {
		c := tmpl[i]

		switch {
		case c == '{' && strings.HasPrefix(tmpl[i:], "{{"):
			b.WriteByte('{')
			i += 2
			continue
		case c == '}' && strings.HasPrefix(tmpl[i:], "}}"):
			b.WriteByte('}')
			i += 2
			continue
		case c == '}':
			return "", errors.New("unmatched '}' at %d", i)
		case c != '{':
			b.WriteByte(c)
			i++
			continue
		}

		end := strings.IndexByte(tmpl[i:], '}')
		if end < 0 {
			return "", errors.New("unterminated placeholder at %d", i)
		}

		err := expandOne(&b, tmpl[i+1:i+end], res)
		if err != nil {
			return "", errors.Wrap(err, "placeholder at %d", i)
		}

		i += end + 1
	}

	return b.String(), nil
}

func expandOne(b *strings.Builder, p string, res []Resolved) error {
	idx, mod, _ := strings.Cut(p, ":")

	n, err := strconv.Atoi(idx)
	if err != nil || n < 0 {
		return errors.New("bad operand index: %q", idx)
	}

	if n >= len(res) {
		return errors.New("operand %d out of range (%d operands)", n, len(res))
	}

	r := res[n]

	if r.Kind == Clobber {
		return errors.New("operand %d is a clobber", n)
	}

	var m asm.Modifier

	switch len([]rune(mod)) {
	case 0:
	case 1:
		m.Char = []rune(mod)[0]
	default:
		return errors.New("bad modifier: %q", mod)
	}

	if !asm.ValidModifier(r.Class, m) {
		return &asm.UnsupportedModifierError{Class: r.Class.Name(), Modifier: m.Char}
	}

	return r.Reg.Emit(b, m)
}
