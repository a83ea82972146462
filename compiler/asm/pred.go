package asm

import (
	"github.com/slowlang/asmregs/compiler/sym"
	"github.com/slowlang/asmregs/compiler/target"
)

type (
	// Query is everything an availability predicate may look at.
	Query struct {
		Arch      Arch
		Reloc     target.RelocModel
		Features  target.Features
		Target    *target.Target
		IsClobber bool
	}

	// Predicate decides whether a register is usable for the query.
	// Predicates are pure: the same query always gives the same verdict.
	Predicate func(q Query) error
)

func NewQuery(a Arch, t *target.Target, isClobber bool) Query {
	return Query{
		Arch:      a,
		Reloc:     t.RelocModel,
		Features:  t.Features,
		Target:    t,
		IsClobber: isClobber,
	}
}

// RequireFeature passes iff f is enabled for the target.
func RequireFeature(f sym.Symbol) Predicate {
	err := &UnsupportedByFeatureError{Feature: f}

	return func(q Query) error {
		if q.Features.Has(f) {
			return nil
		}

		return err
	}
}

// RequireCPU passes iff the target cpu is exactly cpu.
// group names the registers in the diagnostic.
func RequireCPU(cpu, group string) Predicate {
	err := &UnsupportedByCPUError{Group: group, CPU: cpu}

	return func(q Query) error {
		if q.Target != nil && q.Target.CPU == cpu {
			return nil
		}

		return err
	}
}
