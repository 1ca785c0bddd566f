//go:build !amd64

package npsimd

// Native reports whether the host CPU executes 256-bit integer and
// float lanes natively. Non-amd64 hosts never do for this target.
func Native() bool {
	return false
}
