//go:build amd64 && !hwy_generic

package hwy

func init() {
	// cvtps2pd and cvtdq2pd widen the low lanes of a register in one step.
	// Narrowing and int32 -> float32 stay on the scalar path.
	registerFastConversion[float32, float64](ArchSSE2, ArchAVX2, ArchAVX512)
	registerFastConversion[int32, float64](ArchSSE2, ArchAVX2, ArchAVX512)
}
