//go:build amd64

package npsimd

import "golang.org/x/sys/cpu"

// Native reports whether the host CPU executes 256-bit integer and
// float lanes natively.
func Native() bool {
	if ForceEmulationEnv() {
		return false
	}
	return cpu.X86.HasAVX2
}
