//go:build arm64 && !hwy_generic

package hwy

// ARM64 (AArch64) always has NEON (ASIMD) available.
// It's part of the ARMv8-A base architecture.

// Best is the most capable tag enabled by this build.
type Best = NEON

const (
	sse2Enabled   = false
	neonEnabled   = true
	avx2Enabled   = false
	avx512Enabled = false
)
