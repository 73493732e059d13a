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

// Native AVX2 kernels for float32 and float64 lanes. Entries left nil here
// (Ne, Le, Ge, AndNot, Neg, the reductions, ...) are derived or emulated by
// the resolver; AVX512 picks these up through the split bridge.

func init() {
	RegisterKernels(ArchAVX2, &Kernels[float32]{
		Splat: func(v float32) Register { return putF32x8(archsimd.BroadcastFloat32x8(v)) },
		Add:   binaryF32x8(func(a, b archsimd.Float32x8) archsimd.Float32x8 { return a.Add(b) }),
		Sub:   binaryF32x8(func(a, b archsimd.Float32x8) archsimd.Float32x8 { return a.Sub(b) }),
		Mul:   binaryF32x8(func(a, b archsimd.Float32x8) archsimd.Float32x8 { return a.Mul(b) }),
		Div:   binaryF32x8(func(a, b archsimd.Float32x8) archsimd.Float32x8 { return a.Div(b) }),
		Sqrt: func(a Register) Register {
			return putF32x8(getF32x8(&a).Sqrt())
		},
		Eq: compareF32x8(func(a, b archsimd.Float32x8) archsimd.Mask32x8 { return a.Equal(b) }),
		Lt: compareF32x8(func(a, b archsimd.Float32x8) archsimd.Mask32x8 { return a.Less(b) }),
		Gt: compareF32x8(func(a, b archsimd.Float32x8) archsimd.Mask32x8 { return a.Greater(b) }),

		And: bitwiseI32x8(func(a, b archsimd.Int32x8) archsimd.Int32x8 { return a.And(b) }),
		Or:  bitwiseI32x8(func(a, b archsimd.Int32x8) archsimd.Int32x8 { return a.Or(b) }),
		Xor: bitwiseI32x8(func(a, b archsimd.Int32x8) archsimd.Int32x8 { return a.Xor(b) }),
		Select: func(m, yes, no Register) Register {
			zero := archsimd.BroadcastInt32x8(0)
			off := getF32x8(&m).AsInt32x8().Equal(zero)
			return putI32x8(getF32x8(&no).AsInt32x8().Merge(getF32x8(&yes).AsInt32x8(), off))
		},
	})

	RegisterKernels(ArchAVX2, &Kernels[float64]{
		Splat: func(v float64) Register { return putF64x4(archsimd.BroadcastFloat64x4(v)) },
		Add:   binaryF64x4(func(a, b archsimd.Float64x4) archsimd.Float64x4 { return a.Add(b) }),
		Sub:   binaryF64x4(func(a, b archsimd.Float64x4) archsimd.Float64x4 { return a.Sub(b) }),
		Mul:   binaryF64x4(func(a, b archsimd.Float64x4) archsimd.Float64x4 { return a.Mul(b) }),
		Div:   binaryF64x4(func(a, b archsimd.Float64x4) archsimd.Float64x4 { return a.Div(b) }),
		Sqrt: func(a Register) Register {
			return putF64x4(getF64x4(&a).Sqrt())
		},
	})
}

func getF32x8(r *Register) archsimd.Float32x8 {
	return archsimd.LoadFloat32x8Slice(laneView[float32](r)[:8])
}

func putF32x8(v archsimd.Float32x8) (r Register) {
	v.StoreSlice(laneView[float32](&r)[:8])
	return r
}

func putI32x8(v archsimd.Int32x8) (r Register) {
	v.StoreSlice(laneView[int32](&r)[:8])
	return r
}

func getF64x4(r *Register) archsimd.Float64x4 {
	return archsimd.LoadFloat64x4Slice(laneView[float64](r)[:4])
}

func putF64x4(v archsimd.Float64x4) (r Register) {
	v.StoreSlice(laneView[float64](&r)[:4])
	return r
}

func binaryF32x8(op func(a, b archsimd.Float32x8) archsimd.Float32x8) BinaryFunc {
	return func(a, b Register) Register {
		return putF32x8(op(getF32x8(&a), getF32x8(&b)))
	}
}

func binaryF64x4(op func(a, b archsimd.Float64x4) archsimd.Float64x4) BinaryFunc {
	return func(a, b Register) Register {
		return putF64x4(op(getF64x4(&a), getF64x4(&b)))
	}
}

// compareF32x8 widens the comparison mask to all-ones lanes.
func compareF32x8(op func(a, b archsimd.Float32x8) archsimd.Mask32x8) BinaryFunc {
	return func(a, b Register) Register {
		m := op(getF32x8(&a), getF32x8(&b))
		return putI32x8(archsimd.BroadcastInt32x8(-1).Merge(archsimd.BroadcastInt32x8(0), m))
	}
}

func bitwiseI32x8(op func(a, b archsimd.Int32x8) archsimd.Int32x8) BinaryFunc {
	return func(a, b Register) Register {
		x := getF32x8(&a).AsInt32x8()
		y := getF32x8(&b).AsInt32x8()
		return putI32x8(op(x, y))
	}
}
