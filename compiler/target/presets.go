package target

import (
	"golang.org/x/exp/slices"
	"tlog.app/go/errors"
)

const xtensaDataLayout = "e-m:e-p:32:32-i64:64-i128:128-n32"

var presets = map[string]func() *Target{
	"xtensa-esp8266-none-elf": esp8266NoneElf,
	"xtensa-esp32s2-espidf":   esp32s2Espidf,
	"xtensa-esp32s3-espidf":   esp32s3Espidf,
}

// Base returns the options shared by all xtensa targets.
func Base() Options {
	return Options{
		OS:            "none",
		Endian:        Little,
		CIntWidth:     32,
		LinkerFlavor:  LinkerGnuCc,
		Executables:   true,
		PanicStrategy: PanicAbort,
		RelocModel:    RelocStatic,
		AtomicCAS:     false,
	}
}

// Lookup returns a fresh copy of the named preset.
func Lookup(name string) (*Target, error) {
	f, ok := presets[name]
	if !ok {
		return nil, errors.New("unknown target: %q", name)
	}

	return f(), nil
}

// Names lists preset names in sorted order.
func Names() []string {
	l := make([]string, 0, len(presets))

	for n := range presets {
		l = append(l, n)
	}

	slices.Sort(l)

	return l
}

func xtensa(name string, o Options) *Target {
	return &Target{
		Name:         name,
		LLVMTarget:   "xtensa-none-elf",
		PointerWidth: 32,
		DataLayout:   xtensaDataLayout,
		Arch:         "xtensa",
		Options:      o,
	}
}

func esp8266NoneElf() *Target {
	o := Base()
	o.CPU = "esp8266"
	o.Linker = "xtensa-lx106-elf-gcc"
	o.MaxAtomicWidth = 32

	return xtensa("xtensa-esp8266-none-elf", o)
}

func espidf(o Options) Options {
	o.Endian = Little
	o.CIntWidth = 32
	o.Families = []string{"unix"}
	o.OS = "espidf"
	o.Env = "newlib"
	o.Vendor = "espressif"
	o.Executables = true

	return o
}

func esp32s2Espidf() *Target {
	o := espidf(Base())
	o.CPU = "esp32-s2"
	o.Linker = "xtensa-esp32s2-elf-gcc"

	// no native atomics; esp-idf emulates them through libcalls
	o.MaxAtomicWidth = 64
	o.AtomicCAS = true

	return xtensa("xtensa-esp32s2-espidf", o)
}

func esp32s3Espidf() *Target {
	o := espidf(Base())
	o.CPU = "esp32-s3"
	o.Linker = "xtensa-esp32s3-elf-gcc"

	// native 32bit only, esp-idf emulates 64bit
	o.MaxAtomicWidth = 64
	o.AtomicCAS = true

	return xtensa("xtensa-esp32s3-espidf", o)
}
