package main

import (
	"fmt"
	"io"

	"github.com/slowlang/asmregs/compiler/asm"
	"github.com/slowlang/asmregs/compiler/asm/xtensa"
	"github.com/slowlang/asmregs/compiler/sym"
	"github.com/slowlang/asmregs/compiler/target"
	"github.com/xlab/treeprint"
	"tlog.app/go/errors"
)

func buildTarget(name, cpu, features, reloc string) (*target.Target, error) {
	t, err := target.Lookup(name)
	if err != nil {
		return nil, err
	}

	if cpu != "" {
		t = t.WithCPU(cpu)
	}

	if features != "" {
		f, err := target.ParseFeatures(features)
		if err != nil {
			return nil, errors.Wrap(err, "features")
		}

		t = t.WithFeatures(f)
	}

	if reloc != "" {
		m, err := target.ParseRelocModel(reloc)
		if err != nil {
			return nil, err
		}

		t = t.WithRelocModel(m)
	}

	return t, nil
}

func parseClasses(names []string) ([]asm.Class, error) {
	var reg xtensa.Registry

	if len(names) == 0 {
		return reg.Classes(), nil
	}

	l := make([]asm.Class, len(names))

	for i, n := range names {
		c, err := reg.LookupClass(n)
		if err != nil {
			return nil, err
		}

		l[i] = c
	}

	return l, nil
}

func classesTree() treeprint.Tree {
	var reg xtensa.Registry

	tree := treeprint.New()
	tree.SetValue(reg.Arch().String())

	for _, c := range reg.Classes() {
		br := tree.AddBranch(className(c))

		for _, g := range c.SupportedTypes() {
			if g.Feature == sym.Empty {
				br.AddNode(g.Type.String())
				continue
			}

			br.AddNode(fmt.Sprintf("%v (requires %v)", g.Type, g.Feature))
		}
	}

	return tree
}

func regsTree(t *target.Target, cls []asm.Class) treeprint.Tree {
	var reg xtensa.Registry

	tree := treeprint.New()
	tree.SetValue(fmt.Sprintf("%s cpu=%s features=%v", t.Name, t.CPU, t.Features))

	for _, c := range cls {
		br := tree.AddBranch(className(c))

		for _, r := range reg.Regs(c) {
			br.AddNode(verdict(r.Name(), r.Validate(t, false)))
		}
	}

	return tree
}

func checkRegs(w io.Writer, t *target.Target, names []string, clobber bool) (bad int, err error) {
	var reg xtensa.Registry

	for _, n := range names {
		r, err := reg.Lookup(n)
		if err == nil {
			err = r.Validate(t, clobber)
		}

		if err != nil {
			bad++
		}

		_, err = fmt.Fprintf(w, "%s\n", verdict(n, err))
		if err != nil {
			return bad, err
		}
	}

	return bad, nil
}

func className(c asm.Class) string {
	if xc, ok := c.(xtensa.Class); ok && xc.LongName() != xc.Name() {
		return fmt.Sprintf("%s (%s)", xc.Name(), xc.LongName())
	}

	return c.Name()
}

func verdict(name string, err error) string {
	if err != nil {
		return fmt.Sprintf("%-14s %v", name, err)
	}

	return fmt.Sprintf("%-14s ok", name)
}
