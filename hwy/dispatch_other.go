//go:build hwy_generic || (!amd64 && !arm64)

package hwy

// Other architectures, and any build with the hwy_generic tag, use the
// generic scalar kernels only.

// Best is the most capable tag enabled by this build.
type Best = Generic

const (
	sse2Enabled   = false
	neonEnabled   = false
	avx2Enabled   = false
	avx512Enabled = false
)
