//go:build dbg

package dbg

// Enabled reports whether the package-level print functions write anything.
// It is set by building with the dbg tag.
const Enabled = true
