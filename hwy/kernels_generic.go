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

package hwy

import "math"

// genericKernels returns the scalar emulation of every operation for n lanes
// of T. Each kernel treats its register argument as a stack buffer of T,
// applies the scalar operation lane by lane and returns the buffer as the
// result register. Lanes past n are left zero.
func genericKernels[T Lanes](n int) *Kernels[T] {
	size := sizeOf[T]()
	words := n * size / 8

	k := &Kernels[T]{
		Splat: func(v T) (r Register) {
			l := laneView[T](&r)
			for i := range n {
				l[i] = v
			}
			return r
		},
		Add: lanewise(n, func(x, y T) T { return x + y }),
		Sub: lanewise(n, func(x, y T) T { return x - y }),
		Mul: lanewise(n, func(x, y T) T { return x * y }),
		Div: lanewise(n, func(x, y T) T { return x / y }),
		Min: lanewise(n, scalarMin[T]),
		Max: lanewise(n, scalarMax[T]),
		Neg: unaryLanewise(n, func(x T) T { return -x }),
		Abs: unaryLanewise(n, func(x T) T {
			if x < 0 {
				return -x
			}
			return x
		}),

		And:    wordwise(words, func(x, y uint64) uint64 { return x & y }),
		Or:     wordwise(words, func(x, y uint64) uint64 { return x | y }),
		Xor:    wordwise(words, func(x, y uint64) uint64 { return x ^ y }),
		AndNot: wordwise(words, func(x, y uint64) uint64 { return x &^ y }),
		Not: func(a Register) (r Register) {
			for i := range words {
				r[i] = ^a[i]
			}
			return r
		},

		Eq: compare(n, size, func(x, y T) bool { return x == y }),
		Ne: compare(n, size, func(x, y T) bool { return x != y }),
		Lt: compare(n, size, func(x, y T) bool { return x < y }),
		Le: compare(n, size, func(x, y T) bool { return x <= y }),
		Gt: compare(n, size, func(x, y T) bool { return x > y }),
		Ge: compare(n, size, func(x, y T) bool { return x >= y }),

		// The mask invariant makes the bitwise blend exact per lane.
		Select: func(m, yes, no Register) (r Register) {
			for i := range words {
				r[i] = m[i]&yes[i] | no[i]&^m[i]
			}
			return r
		},

		ReduceAdd: fold(n, func(x, y T) T { return x + y }),
		ReduceMin: fold(n, scalarMin[T]),
		ReduceMax: fold(n, scalarMax[T]),
	}

	switch kk := any(k).(type) {
	case *Kernels[int8]:
		integerKernels(kk, n)
	case *Kernels[int16]:
		integerKernels(kk, n)
	case *Kernels[int32]:
		integerKernels(kk, n)
	case *Kernels[int64]:
		integerKernels(kk, n)
	case *Kernels[uint8]:
		integerKernels(kk, n)
	case *Kernels[uint16]:
		integerKernels(kk, n)
	case *Kernels[uint32]:
		integerKernels(kk, n)
	case *Kernels[uint64]:
		integerKernels(kk, n)
	case *Kernels[float32]:
		floatKernels(kk, n)
	case *Kernels[float64]:
		floatKernels(kk, n)
	}
	return k
}

// integerKernels adds the operations that only integer lanes support.
// Shifting by the lane width or more yields zero, or the sign fill for a
// signed right shift, as in Go. Rem panics on a zero divisor.
func integerKernels[T Integers](k *Kernels[T], n int) {
	k.Rem = func(a, b Register) (r Register) {
		x, y, z := laneView[T](&a), laneView[T](&b), laneView[T](&r)
		for i := range n {
			z[i] = x[i] % y[i]
		}
		return r
	}
	k.Shl = func(a Register, s uint) (r Register) {
		x, z := laneView[T](&a), laneView[T](&r)
		for i := range n {
			z[i] = x[i] << s
		}
		return r
	}
	k.Shr = func(a Register, s uint) (r Register) {
		x, z := laneView[T](&a), laneView[T](&r)
		for i := range n {
			z[i] = x[i] >> s
		}
		return r
	}
	k.ShlV = func(a, b Register) (r Register) {
		x, y, z := laneView[T](&a), laneView[T](&b), laneView[T](&r)
		for i := range n {
			z[i] = x[i] << uint64(y[i])
		}
		return r
	}
	k.ShrV = func(a, b Register) (r Register) {
		x, y, z := laneView[T](&a), laneView[T](&b), laneView[T](&r)
		for i := range n {
			z[i] = x[i] >> uint64(y[i])
		}
		return r
	}
}

// floatKernels adds Sqrt and replaces Abs with the sign-clearing version so
// that Abs(-0) is +0.
func floatKernels[T Floats](k *Kernels[T], n int) {
	k.Sqrt = unaryLanewise(n, func(x T) T { return T(math.Sqrt(float64(x))) })
	k.Abs = unaryLanewise(n, func(x T) T { return T(math.Abs(float64(x))) })
}

func lanewise[T Lanes](n int, op func(x, y T) T) BinaryFunc {
	return func(a, b Register) (r Register) {
		x, y, z := laneView[T](&a), laneView[T](&b), laneView[T](&r)
		for i := range n {
			z[i] = op(x[i], y[i])
		}
		return r
	}
}

func unaryLanewise[T Lanes](n int, op func(x T) T) UnaryFunc {
	return func(a Register) (r Register) {
		x, z := laneView[T](&a), laneView[T](&r)
		for i := range n {
			z[i] = op(x[i])
		}
		return r
	}
}

func wordwise(words int, op func(x, y uint64) uint64) BinaryFunc {
	return func(a, b Register) (r Register) {
		for i := range words {
			r[i] = op(a[i], b[i])
		}
		return r
	}
}

func compare[T Lanes](n, size int, op func(x, y T) bool) BinaryFunc {
	return func(a, b Register) (r Register) {
		x, y := laneView[T](&a), laneView[T](&b)
		for i := range n {
			setMaskLane(&r, i, size, op(x[i], y[i]))
		}
		return r
	}
}

func fold[T Lanes](n int, op func(x, y T) T) ReduceFunc[T] {
	return func(a Register) T {
		x := laneView[T](&a)
		acc := x[0]
		for i := 1; i < n; i++ {
			acc = op(acc, x[i])
		}
		return acc
	}
}

// scalarMin and scalarMax return the first operand when the comparison is
// false, so a NaN in the first operand propagates and one in the second does
// not.
func scalarMin[T Lanes](x, y T) T {
	if x > y {
		return y
	}
	return x
}

func scalarMax[T Lanes](x, y T) T {
	if x < y {
		return y
	}
	return x
}
