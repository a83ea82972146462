package sym

import (
	"sync"

	"tlog.app/go/tlog/tlwire"
)

type (
	// Symbol is an interned name. Zero is the empty symbol.
	Symbol int

	table struct {
		mu    sync.RWMutex
		names []string
		ids   map[string]Symbol
	}
)

// Predefined symbols. Their values are fixed at init.
const (
	Empty Symbol = iota

	Fp
	Dfpaccel
	Bool
	Xloop
	Extendedl32r
	S32c1i
	Mac16
	Windowed
	Debug
	Memctl
	Atomctl
	Exception
	Highpriinterrupts
	Coprocessor
	Rvector
	Timerint
	Interrupt
	Prid
	Miscsr
	Threadptr
	Esp32s3

	predefined
)

var tab = table{
	names: []string{
		Empty:             "",
		Fp:                "fp",
		Dfpaccel:          "dfpaccel",
		Bool:              "bool",
		Xloop:             "xloop",
		Extendedl32r:      "extendedl32r",
		S32c1i:            "s32c1i",
		Mac16:             "mac16",
		Windowed:          "windowed",
		Debug:             "debug",
		Memctl:            "memctl",
		Atomctl:           "atomctl",
		Exception:         "exception",
		Highpriinterrupts: "highpriinterrupts",
		Coprocessor:       "coprocessor",
		Rvector:           "rvector",
		Timerint:          "timerint",
		Interrupt:         "interrupt",
		Prid:              "prid",
		Miscsr:            "miscsr",
		Threadptr:         "threadptr",
		Esp32s3:           "esp32s3",
	},
}

func init() {
	if len(tab.names) != int(predefined) {
		panic("sym: predefined table out of sync")
	}

	tab.ids = make(map[string]Symbol, len(tab.names))

	for id, n := range tab.names {
		tab.ids[n] = Symbol(id)
	}
}

// Intern returns the symbol for name, allocating a new one if needed.
func Intern(name string) Symbol {
	if s, ok := Find(name); ok {
		return s
	}

	tab.mu.Lock()
	defer tab.mu.Unlock()

	if s, ok := tab.ids[name]; ok {
		return s
	}

	s := Symbol(len(tab.names))
	tab.names = append(tab.names, name)
	tab.ids[name] = s

	return s
}

// Find returns the symbol for name if it was interned before.
func Find(name string) (Symbol, bool) {
	tab.mu.RLock()
	s, ok := tab.ids[name]
	tab.mu.RUnlock()

	return s, ok
}

// Predefined reports whether s is one of the symbols known at init.
func (s Symbol) Predefined() bool {
	return s >= 0 && s < predefined
}

func (s Symbol) String() string {
	tab.mu.RLock()
	defer tab.mu.RUnlock()

	if s < 0 || int(s) >= len(tab.names) {
		return "<invalid>"
	}

	return tab.names[s]
}

func (s Symbol) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	return e.AppendString(b, s.String())
}
