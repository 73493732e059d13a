// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && goexperiment.simd && amd64.v3 && !hwy_generic

package hwy

import "simd/archsimd"

// Widening conversions on AVX2 (VCVTPS2PD, VCVTDQ2PD). Each instruction turns
// four 32-bit lanes into four 64-bit lanes; AVX512 runs it on both halves.

func init() {
	registerNativeConversion[float32, float64](ArchAVX2, widenF32x4)
	registerNativeConversion[int32, float64](ArchAVX2, widenI32x4)
	registerNativeConversion[float32, float64](ArchAVX512, widenHalves(widenF32x4))
	registerNativeConversion[int32, float64](ArchAVX512, widenHalves(widenI32x4))
}

// widenF32x4 converts float32 lanes 0..3 of src to four float64 lanes.
func widenF32x4(src Register) (r Register) {
	v := archsimd.LoadFloat32x4Slice(laneView[float32](&src)[:4])
	v.ConvertToFloat64().StoreSlice(laneView[float64](&r)[:4])
	return r
}

// widenI32x4 converts int32 lanes 0..3 of src to four float64 lanes.
func widenI32x4(src Register) (r Register) {
	v := archsimd.LoadInt32x4Slice(laneView[int32](&src)[:4])
	v.ConvertToFloat64().StoreSlice(laneView[float64](&r)[:4])
	return r
}

// widenHalves applies a four-lane widening to source lanes 0..3 and 4..7,
// filling eight destination lanes.
func widenHalves(f ConvertFunc) ConvertFunc {
	return func(src Register) (r Register) {
		var hi Register
		copy(hi.Bytes()[:16], src.Bytes()[16:32])
		lo := f(src)
		copy(r.Bytes()[:32], lo.Bytes()[:32])
		wide := f(hi)
		copy(r.Bytes()[32:64], wide.Bytes()[:32])
		return r
	}
}
