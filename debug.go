package spring

import (
	"fmt"
	"os"
)

// globalDebug enables diagnostics for every spring. Springs are single-threaded
// so this is a plain bool.
var globalDebug bool

// SetDebugMode enables or disables debug diagnostics. When enabled, a spring
// stepped with a dt at or above MaxStableStep prints a warning to stderr once,
// and missing presets are logged.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug diagnostics are enabled.
func DebugMode() bool {
	return globalDebug
}

// debugCheckStep warns on stderr if dt is too large for the spring's dynamics
// and reports whether it did.
func debugCheckStep(s *Spring, dt float64) bool {
	if s.Stiffness < 0 || s.Damping < 0 {
		return false
	}
	limit := MaxStableStep(s.Stiffness, s.Damping)
	if dt < limit {
		return false
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[spring] warning: dt %.4f exceeds stable step %.4f (stiffness %.2f, damping %.2f)\n",
		dt, limit, s.Stiffness, s.Damping)
	return true
}
