package inlineasm

import (
	"context"
	"strings"

	"github.com/slowlang/asmregs/compiler/asm"
	"github.com/slowlang/asmregs/compiler/sym"
	"github.com/slowlang/asmregs/compiler/target"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

type (
	// Checker resolves asm block operands for one target.
	Checker struct {
		Registry asm.Registry
		Target   *target.Target
	}

	Resolved struct {
		Operand

		Reg   asm.Reg
		Class asm.Class
	}

	// usage tracks registers taken on each side of the asm block.
	// early holds outputs which are live together with the inputs.
	usage struct {
		ops   []Operand
		in    map[string]int
		out   map[string]int
		early map[string]int
	}
)

func New(reg asm.Registry, t *target.Target) *Checker {
	return &Checker{
		Registry: reg,
		Target:   t,
	}
}

// Check validates ops and assigns a register to every operand.
// Explicit registers and clobbers are checked first so that
// class operands are allocated around them.
func (c *Checker) Check(ctx context.Context, ops []Operand) (res []Resolved, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "inlineasm: check", "operands", len(ops))
	defer tr.Finish("err", &err)

	if c.Target == nil {
		return nil, errors.New("no target")
	}

	if c.Registry == nil {
		return nil, errors.New("no register model")
	}

	arch, err := asm.ParseArch(c.Target.Arch)
	if err != nil {
		return nil, err
	}

	if arch != c.Registry.Arch() {
		return nil, errors.New("target arch %v, register model is for %v", arch, c.Registry.Arch())
	}

	res = make([]Resolved, len(ops))
	u := usage{
		ops:   ops,
		in:    map[string]int{},
		out:   map[string]int{},
		early: map[string]int{},
	}

	for i, op := range ops {
		if op.Reg == "" {
			continue
		}

		res[i], err = c.explicit(&u, i, op)
		if err != nil {
			return nil, errors.Wrap(err, "operand %d: %v", i, op)
		}
	}

	for i, op := range ops {
		if op.Reg != "" {
			continue
		}

		res[i], err = c.allocate(&u, i, op)
		if err != nil {
			return nil, errors.Wrap(err, "operand %d: %v", i, op)
		}
	}

	if tr.If("asm_operands") {
		tr.Printw("target", "target", c.Target)

		for i, r := range res {
			tr.Printw("operand", "i", i, "kind", r.Kind.String(), "reg", r.Reg, "class", r.Class, "type", r.Type)
		}
	}

	return res, nil
}

func (c *Checker) explicit(u *usage, i int, op Operand) (Resolved, error) {
	r, err := c.Registry.Lookup(op.Reg)
	if err != nil {
		return Resolved{}, err
	}

	err = r.Validate(c.Target, op.Kind == Clobber)
	if err != nil {
		return Resolved{}, err
	}

	if op.Kind != Clobber {
		err = c.checkType(r.Class(), op.Type)
		if err != nil {
			return Resolved{}, err
		}
	}

	err = u.take(i, op.Kind, r)
	if err != nil {
		return Resolved{}, err
	}

	return Resolved{Operand: op, Reg: r, Class: r.Class()}, nil
}

func (c *Checker) allocate(u *usage, i int, op Operand) (Resolved, error) {
	if op.Kind == Clobber {
		return Resolved{}, errors.New("clobber without register")
	}

	cl, err := c.Registry.LookupClass(op.Class)
	if err != nil {
		return Resolved{}, err
	}

	err = c.checkType(cl, op.Type)
	if err != nil {
		return Resolved{}, err
	}

	var valid []string

	for _, r := range c.Registry.Regs(cl) {
		if r.Validate(c.Target, false) != nil {
			continue
		}

		valid = append(valid, r.Name())

		if u.busy(op.Kind, r) {
			continue
		}

		_ = u.take(i, op.Kind, r)

		return Resolved{Operand: op, Reg: r, Class: cl}, nil
	}

	if len(valid) == 0 {
		return Resolved{}, errors.New("no register of class %v is available on this target", cl.Name())
	}

	return Resolved{}, errors.New("no free register of class %v, valid registers for this class are: %v", cl.Name(), strings.Join(valid, ", "))
}

func (c *Checker) checkType(cl asm.Class, ty asm.Type) error {
	f, ok := asm.Supports(cl, ty)
	if !ok {
		return &asm.UnsupportedTypeError{Class: cl.Name(), Type: ty}
	}

	if f != sym.Empty && !c.Target.Features.Has(f) {
		return &asm.TypeFeatureError{Type: ty, Feature: f}
	}

	return nil
}

func (u *usage) busy(k Kind, r asm.Reg) bool {
	_, ok := u.clash(k, r.Name())

	return ok
}

// clash returns the operand already holding register n
// in a way operand of kind k can't share.
func (u *usage) clash(k Kind, n string) (int, bool) {
	if k.reads() {
		if j, ok := u.in[n]; ok {
			return j, true
		}

		if j, ok := u.early[n]; ok {
			return j, true
		}
	}

	if k.writes() {
		if j, ok := u.out[n]; ok {
			return j, true
		}
	}

	if k.early() {
		if j, ok := u.in[n]; ok {
			return j, true
		}
	}

	return 0, false
}

// take marks r used by operand i.
func (u *usage) take(i int, k Kind, r asm.Reg) error {
	n := r.Name()

	if j, ok := u.clash(k, n); ok {
		return u.conflict(i, j)
	}

	if k.reads() {
		u.in[n] = i
	}

	if k.writes() {
		u.out[n] = i
	}

	if k.early() {
		u.early[n] = i
	}

	return nil
}

func (u *usage) conflict(i, j int) error {
	return &asm.RegConflictError{Reg: u.ops[i].Reg, Prev: u.ops[j].Reg}
}
