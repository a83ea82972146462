package asm

import (
	"fmt"
	"strconv"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/tlog/tlwire"
)

type (
	TypeKind int

	// Type is an inline asm operand type.
	// Lanes is zero for scalars.
	Type struct {
		Kind  TypeKind
		Bits  int
		Lanes int
	}
)

const (
	Int TypeKind = iota
	Float
)

var (
	I1  = Type{Kind: Int, Bits: 1}
	I8  = Type{Kind: Int, Bits: 8}
	I16 = Type{Kind: Int, Bits: 16}
	I32 = Type{Kind: Int, Bits: 32}
	I64 = Type{Kind: Int, Bits: 64}

	F32 = Type{Kind: Float, Bits: 32}
	F64 = Type{Kind: Float, Bits: 64}
)

func VecI8(n int) Type  { return Type{Kind: Int, Bits: 8, Lanes: n} }
func VecI16(n int) Type { return Type{Kind: Int, Bits: 16, Lanes: n} }
func VecI32(n int) Type { return Type{Kind: Int, Bits: 32, Lanes: n} }
func VecF32(n int) Type { return Type{Kind: Float, Bits: 32, Lanes: n} }

// ParseType parses names like i32, f64, i8x16, f32x4.
func ParseType(s string) (Type, error) {
	var t Type

	if s == "" {
		return t, errors.New("empty type")
	}

	switch s[0] {
	case 'i':
		t.Kind = Int
	case 'f':
		t.Kind = Float
	default:
		return t, errors.New("unknown type: %q", s)
	}

	elem, lanes, vec := strings.Cut(s[1:], "x")

	bits, err := strconv.Atoi(elem)
	if err != nil || bits <= 0 {
		return Type{}, errors.New("unknown type: %q", s)
	}

	t.Bits = bits

	if vec {
		n, err := strconv.Atoi(lanes)
		if err != nil || n <= 0 {
			return Type{}, errors.New("bad lane count: %q", s)
		}

		t.Lanes = n
	}

	return t, nil
}

func (t Type) IsVector() bool { return t.Lanes != 0 }

// Size is the size in bytes, rounded up.
func (t Type) Size() int {
	n := t.Lanes
	if n == 0 {
		n = 1
	}

	return (t.Bits*n + 7) / 8
}

func (t Type) String() string {
	k := "i"
	if t.Kind == Float {
		k = "f"
	}

	if t.Lanes == 0 {
		return fmt.Sprintf("%s%d", k, t.Bits)
	}

	return fmt.Sprintf("%s%dx%d", k, t.Bits, t.Lanes)
}

func (t Type) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	return e.AppendString(b, t.String())
}
