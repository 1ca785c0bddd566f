package npsimd

// mulU8 multiplies 8-bit lanes with wraparound (mod 256). The target
// has no 8-bit multiply, so the lanes are widened in place inside
// 16-bit containers: even-position bytes are multiplied directly (the
// low byte of each 16-bit product is the even result), odd-position
// bytes are shifted down, multiplied, and shifted back up, and the two
// are blended byte-wise. The result is sign-agnostic, so the signed
// 8-bit multiply mapping resolves to this same composite.
func mulU8(a, b m256) m256 {
	mask := set1Epi32(0xFF00FF00)
	even := mulloEpi16(a, b)
	odd := mulloEpi16(sraiEpi16(a, 8), sraiEpi16(b, 8))
	odd = slliEpi16(odd, 8)
	return blendvEpi8(even, odd, mask)
}
