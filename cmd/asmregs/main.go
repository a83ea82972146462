package main

import (
	"context"
	"fmt"
	"os"

	"github.com/slowlang/asmregs/compiler"
	"github.com/slowlang/asmregs/compiler/inlineasm"
	"github.com/slowlang/asmregs/compiler/target"
	"github.com/xyproto/env/v2"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

func main() {
	targetsCmd := &cli.Command{
		Name:        "targets",
		Description: "list known targets",
		Action:      targetsAct,
	}

	classesCmd := &cli.Command{
		Name:        "classes",
		Description: "list register classes and their operand types",
		Action:      classesAct,
	}

	regsCmd := &cli.Command{
		Name:        "regs",
		Description: "list registers of classes with their verdict for the target",
		Action:      regsAct,
		Args:        cli.Args{},
	}

	checkCmd := &cli.Command{
		Name:        "check",
		Description: "check registers may be used in inline asm",
		Action:      checkAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("clobber", false, "check as clobbers rather than operands"),
		},
	}

	operandsCmd := &cli.Command{
		Name:        "operands",
		Description: `resolve asm operands like 'in(reg) i32' 'out("a7") i32' 'clobber("a8")'`,
		Action:      operandsAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("template", "", "asm template to expand with the resolved registers"),
		},
	}

	app := &cli.Command{
		Name:        "asmregs",
		Description: "asmregs answers which xtensa registers inline asm may use on a target",
		Flags: []*cli.Flag{
			cli.NewFlag("target", env.Str("ASMREGS_TARGET", "xtensa-esp32s2-espidf"), "target name"),
			cli.NewFlag("cpu", env.Str("ASMREGS_CPU"), "override target cpu"),
			cli.NewFlag("features", env.Str("ASMREGS_FEATURES"), "target features, like +fp,+windowed"),
			cli.NewFlag("reloc", "", "relocation model"),
		},
		Commands: []*cli.Command{
			targetsCmd,
			classesCmd,
			regsCmd,
			checkCmd,
			operandsCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func targetsAct(c *cli.Command) error {
	for _, n := range target.Names() {
		t, err := target.Lookup(n)
		if err != nil {
			return errors.Wrap(err, "target %v", n)
		}

		fmt.Printf("%-28s cpu %-10s llvm %-16s linker %s\n", t.Name, t.CPU, t.LLVMTarget, t.Linker)
	}

	return nil
}

func classesAct(c *cli.Command) error {
	fmt.Print(classesTree().String())

	return nil
}

func regsAct(c *cli.Command) error {
	t, err := loadTarget(c)
	if err != nil {
		return err
	}

	cls, err := parseClasses(c.Args)
	if err != nil {
		return err
	}

	fmt.Print(regsTree(t, cls).String())

	return nil
}

func checkAct(c *cli.Command) (err error) {
	t, err := loadTarget(c)
	if err != nil {
		return err
	}

	bad, err := checkRegs(os.Stdout, t, c.Args, c.Bool("clobber"))
	if err != nil {
		return err
	}

	if bad != 0 {
		return errors.New("%d of %d registers rejected", bad, len(c.Args))
	}

	return nil
}

func operandsAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	t, err := loadTarget(c)
	if err != nil {
		return err
	}

	res, err := compiler.CheckInlineAsm(ctx, t, c.Args)
	if err != nil {
		return err
	}

	for i, r := range res {
		fmt.Printf("%2d  %-28v %v\n", i, r.Operand, r.Reg.Name())
	}

	if tmpl := c.String("template"); tmpl != "" {
		s, err := inlineasm.Expand(tmpl, res)
		if err != nil {
			return errors.Wrap(err, "expand template")
		}

		fmt.Printf("%s\n", s)
	}

	return nil
}

func loadTarget(c *cli.Command) (*target.Target, error) {
	t, err := buildTarget(c.String("target"), c.String("cpu"), c.String("features"), c.String("reloc"))
	if err != nil {
		return nil, err
	}

	tlog.Printw("target", "target", t)

	return t, nil
}
