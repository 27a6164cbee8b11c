//go:build !dbg

package dbg

// Enabled reports whether the package-level print functions write anything.
// Build with -tags dbg to turn them on; without the tag every call site
// compiles to an empty function.
const Enabled = false
