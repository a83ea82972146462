package target

import (
	"tlog.app/go/errors"
	"tlog.app/go/tlog/tlwire"
)

type (
	RelocModel int
	Endian     int

	PanicStrategy string
	LinkerFlavor  string

	// Options are the codegen knobs of a target the inline-asm layer
	// carries through without interpreting.
	Options struct {
		OS       string
		Env      string
		Vendor   string
		Families []string

		Endian    Endian
		CIntWidth int

		CPU      string
		Features Features

		Linker       string
		LinkerFlavor LinkerFlavor

		Executables         bool
		PanicStrategy       PanicStrategy
		RelocModel          RelocModel
		EmitDebugGDBScripts bool

		MaxAtomicWidth int // 0 means none
		AtomicCAS      bool
	}

	// Target describes one compilation session.
	// It is immutable once handed to the register model.
	Target struct {
		Name         string
		LLVMTarget   string
		PointerWidth int
		DataLayout   string
		Arch         string

		Options
	}
)

const (
	RelocStatic RelocModel = iota
	RelocPIC
	RelocPIE
	RelocDynamicNoPIC
	RelocROPI
	RelocRWPI
	RelocROPIRWPI
)

const (
	Little Endian = iota
	Big
)

const (
	PanicAbort  PanicStrategy = "abort"
	PanicUnwind PanicStrategy = "unwind"

	LinkerGnuCc LinkerFlavor = "gnu-cc"
)

var relocNames = []string{
	RelocStatic:       "static",
	RelocPIC:          "pic",
	RelocPIE:          "pie",
	RelocDynamicNoPIC: "dynamic-no-pic",
	RelocROPI:         "ropi",
	RelocRWPI:         "rwpi",
	RelocROPIRWPI:     "ropi-rwpi",
}

func ParseRelocModel(s string) (RelocModel, error) {
	for m, n := range relocNames {
		if n == s {
			return RelocModel(m), nil
		}
	}

	return 0, errors.New("unknown relocation model: %q", s)
}

func (m RelocModel) String() string {
	if m < 0 || int(m) >= len(relocNames) {
		return "unknown"
	}

	return relocNames[m]
}

func (e Endian) String() string {
	if e == Big {
		return "big"
	}

	return "little"
}

// WithFeatures returns a copy of t with the feature set replaced.
func (t *Target) WithFeatures(f Features) *Target {
	c := *t
	c.Features = f

	return &c
}

// WithCPU returns a copy of t with the cpu replaced.
func (t *Target) WithCPU(cpu string) *Target {
	c := *t
	c.CPU = cpu

	return &c
}

// WithRelocModel returns a copy of t with the relocation model replaced.
func (t *Target) WithRelocModel(m RelocModel) *Target {
	c := *t
	c.RelocModel = m

	return &c
}

func (t *Target) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	if t == nil {
		return e.AppendNil(b)
	}

	b = e.AppendMap(b, 5)
	b = e.AppendKeyValue(b, "name", t.Name)
	b = e.AppendKeyValue(b, "arch", t.Arch)
	b = e.AppendKeyValue(b, "cpu", t.CPU)
	b = e.AppendKeyValue(b, "reloc", t.RelocModel.String())
	b = e.AppendKey(b, "features")
	b = t.Features.TlogAppend(b)

	return b
}
