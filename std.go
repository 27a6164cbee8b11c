package dbg

import (
	"io"
	"os"
)

var std = NewPrinter(os.Stderr, DefaultConfig())

// SetOutput redirects the package-level functions to w. The default is
// os.Stderr.
func SetOutput(w io.Writer) { std.w = w }

// Configure replaces the configuration of the package-level functions.
func Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	std.cfg = cfg
	return nil
}

// Print writes one record naming each value after its argument expression in
// the calling statement:
//
//	dbg.Print(x, len(xs)) // [12] x = 3 | len(xs) = 4
//
// It writes nothing unless built with the dbg tag. Stacks and queues among
// the values are drained.
func Print(values ...any) {
	if !Enabled {
		return
	}
	std.emit(2, sourceFields(2, "Print", values))
}

// Names writes one record pairing the comma-separated expressions in names
// with values:
//
//	dbg.Names("x, y", x, y) // [12] x = 3 | y = hi
//
// It writes nothing unless built with the dbg tag.
func Names(names string, values ...any) {
	if !Enabled {
		return
	}
	std.emit(2, Fields(names, values...))
}

// NL writes an empty line. It writes nothing unless built with the dbg tag.
func NL() {
	if !Enabled {
		return
	}
	std.NL()
}

// Sep writes the configured separator line. It writes nothing unless built
// with the dbg tag.
func Sep() {
	if !Enabled {
		return
	}
	std.Sep()
}

// SepWith writes a line of char spanning width columns. It writes nothing
// unless built with the dbg tag.
func SepWith(width int, char rune) {
	if !Enabled {
		return
	}
	std.SepWith(width, char)
}
