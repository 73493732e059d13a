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

package algo

import "github.com/ajroetker/simdbatch/hwy"

// Reduce folds s into init.
//
// Slices shorter than one batch are folded left to right with f. Otherwise:
//
//  1. the scalar head is folded into init with f;
//  2. the first aligned batch seeds a vector accumulator, and every later
//     aligned batch is folded into it with fb;
//  3. the accumulator's lanes are folded into init with f, lowest lane first;
//  4. the scalar tail is folded into init with f.
//
// The aligned elements therefore meet the head only in step 3. For an
// operation that is not associative and commutative (floating-point addition
// included) the result can differ from a left-to-right fold, and it depends on
// the alignment of s.
func Reduce[A hwy.Arch, T hwy.Lanes](s []T, init T, f func(acc, x T) T, fb func(acc, x hwy.Batch[T, A]) hwy.Batch[T, A]) T {
	size := len(s)
	lanes := hwy.NumLanes[T, A]()
	if size < lanes {
		for _, v := range s {
			init = f(init, v)
		}
		return init
	}

	var a A
	begin, end := hwy.Segments(size, hwy.AlignmentOffset(s, a.Width()), lanes)
	for i := range begin {
		init = f(init, s[i])
	}
	if end > begin {
		acc := hwy.LoadAligned[A](s[begin:])
		for i := begin + lanes; i < end; i += lanes {
			acc = fb(acc, hwy.LoadAligned[A](s[i:]))
		}
		for _, v := range acc.Lanes() {
			init = f(init, v)
		}
	}
	for i := end; i < size; i++ {
		init = f(init, s[i])
	}
	return init
}

// Sum returns init plus the sum of s, reduced as described for Reduce.
//
// Usage:
//
//	total := algo.Sum[hwy.Best](data, float32(0))
func Sum[A hwy.Arch, T hwy.Lanes](s []T, init T) T {
	return Reduce(s, init,
		func(acc, x T) T { return acc + x },
		func(acc, x hwy.Batch[T, A]) hwy.Batch[T, A] { return acc.Add(x) })
}

// Dot returns the sum of x[i]*y[i] over the shorter length. The products of
// the aligned middle are accumulated in one batch; lanes are summed at the end.
func Dot[A hwy.Arch, T hwy.Lanes](x, y []T) T {
	n := min(len(x), len(y))
	x, y = x[:n], y[:n]
	begin, end, m := layout[A](x, y, nil)
	lanes := hwy.NumLanes[T, A]()

	var sum T
	for i := range begin {
		sum += x[i] * y[i]
	}
	if end > begin {
		var acc hwy.Batch[T, A]
		for i := begin; i < end; i += lanes {
			acc.AddAssign(hwy.LoadAligned[A](x[i:]).Mul(load[A](y[i:], m.in2)))
		}
		sum += acc.ReduceAdd()
	}
	for i := end; i < n; i++ {
		sum += x[i] * y[i]
	}
	return sum
}
