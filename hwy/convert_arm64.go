//go:build arm64 && !hwy_generic

package hwy

func init() {
	// fcvtl widens the low two float32 lanes.
	registerFastConversion[float32, float64](ArchNEON)
}
