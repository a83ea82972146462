package target

import (
	"math/bits"
	"strings"

	"github.com/slowlang/asmregs/compiler/sym"
	"golang.org/x/exp/slices"
	"tlog.app/go/errors"
	"tlog.app/go/tlog/tlwire"
)

type (
	// Features is an immutable set of enabled target features.
	// Membership test is a single word lookup.
	Features struct {
		b []uint64
	}
)

func NewFeatures(fs ...sym.Symbol) Features {
	return Features{}.With(fs...)
}

// ParseFeatures parses a target-feature list like "+fp,-windowed,bool".
// Names without a sign are enabled. Later entries override earlier ones.
func ParseFeatures(s string) (Features, error) {
	var f Features

	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		on := true

		switch p[0] {
		case '+':
			p = p[1:]
		case '-':
			on = false
			p = p[1:]
		}

		if p == "" || strings.ContainsAny(p, "+ \t") {
			return Features{}, errors.New("bad feature: %q", p)
		}

		if on {
			f = f.With(sym.Intern(p))
		} else {
			f = f.Without(sym.Intern(p))
		}
	}

	return f, nil
}

func (f Features) Has(s sym.Symbol) bool {
	i, j := ij(s)
	if i < 0 || i >= len(f.b) {
		return false
	}

	return f.b[i]&(1<<j) != 0
}

// With returns a copy of f with fs enabled.
func (f Features) With(fs ...sym.Symbol) Features {
	r := f.copy()

	for _, s := range fs {
		i, j := ij(s)
		if i < 0 {
			continue
		}

		r.grow(i)
		r.b[i] |= 1 << j
	}

	return r
}

// Without returns a copy of f with fs disabled.
func (f Features) Without(fs ...sym.Symbol) Features {
	r := f.copy()

	for _, s := range fs {
		i, j := ij(s)
		if i < 0 || i >= len(r.b) {
			continue
		}

		r.b[i] &^= 1 << j
	}

	r.strip()

	return r
}

func (f Features) Len() (n int) {
	for _, w := range f.b {
		n += bits.OnesCount64(w)
	}

	return n
}

func (f Features) Range(fn func(s sym.Symbol) bool) {
	for i, w := range f.b {
		for w != 0 {
			j := bits.TrailingZeros64(w)
			w &^= 1 << j

			if !fn(sym.Symbol(i*64 + j)) {
				return
			}
		}
	}
}

// Names returns enabled feature names sorted.
func (f Features) Names() []string {
	l := make([]string, 0, f.Len())

	f.Range(func(s sym.Symbol) bool {
		l = append(l, s.String())
		return true
	})

	slices.Sort(l)

	return l
}

func (f Features) Equal(x Features) bool {
	a, b := f.b, x.b
	if len(a) < len(b) {
		a, b = b, a
	}

	for i, w := range a {
		var v uint64
		if i < len(b) {
			v = b[i]
		}

		if w != v {
			return false
		}
	}

	return true
}

func (f Features) String() string {
	l := f.Names()

	for i, n := range l {
		l[i] = "+" + n
	}

	return strings.Join(l, ",")
}

func (f Features) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	l := make([]sym.Symbol, 0, f.Len())

	f.Range(func(s sym.Symbol) bool {
		l = append(l, s)
		return true
	})

	slices.SortFunc(l, func(x, y sym.Symbol) int {
		return strings.Compare(x.String(), y.String())
	})

	b = e.AppendTag(b, tlwire.Array, len(l))

	for _, s := range l {
		b = s.TlogAppend(b)
	}

	return b
}

func (f Features) copy() Features {
	if f.b == nil {
		return f
	}

	return Features{b: slices.Clone(f.b)}
}

func (f *Features) grow(i int) {
	for i >= len(f.b) {
		f.b = append(f.b, 0)
	}
}

func (f *Features) strip() {
	l := len(f.b)

	for l > 0 && f.b[l-1] == 0 {
		l--
	}

	f.b = f.b[:l]
}

func ij(s sym.Symbol) (i, j int) {
	if s < 0 {
		return -1, 0
	}

	return int(s) / 64, int(s) % 64
}
