package npsimd

import (
	"os"
	"strconv"
)

// This package always executes its portable emulation tier; Native is a
// capability report, not a dispatch switch. Selecting among instruction
// set extensions belongs to the layer above.

// TargetName returns the name of the wide-register target this package
// models.
func TargetName() string {
	return "avx2"
}

// ForceEmulationEnv checks whether the NPSIMD_FORCE_EMULATION
// environment variable is set. When set, Native reports false
// regardless of CPU capabilities. This is useful for testing and
// debugging.
func ForceEmulationEnv() bool {
	val := os.Getenv("NPSIMD_FORCE_EMULATION")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
