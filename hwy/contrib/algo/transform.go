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

import (
	"github.com/ajroetker/simdbatch/hwy"
	"github.com/ajroetker/simdbatch/hwy/contrib/workerpool"
)

// Function types accepted by the algorithms.
type (
	// ScalarFunc maps one element.
	ScalarFunc[T hwy.Lanes] func(x T) T

	// BatchFunc maps one batch. It must compute ScalarFunc on every lane.
	BatchFunc[T hwy.Lanes, A hwy.Arch] func(x hwy.Batch[T, A]) hwy.Batch[T, A]

	// ScalarFunc2 combines one element of each input.
	ScalarFunc2[T hwy.Lanes] func(x, y T) T

	// BatchFunc2 combines one batch of each input.
	BatchFunc2[T hwy.Lanes, A hwy.Arch] func(x, y hwy.Batch[T, A]) hwy.Batch[T, A]
)

func load[A hwy.Arch, T hwy.Lanes](s []T, aligned bool) hwy.Batch[T, A] {
	if aligned {
		return hwy.LoadAligned[A](s)
	}
	return hwy.LoadUnaligned[A](s)
}

func store[T hwy.Lanes, A hwy.Arch](b hwy.Batch[T, A], s []T, aligned bool) {
	if aligned {
		b.StoreAligned(s)
		return
	}
	b.StoreUnaligned(s)
}

// accessModes records which of the secondary ranges share the primary input's
// alignment offset. The primary input is always loaded aligned in the body.
type accessModes struct {
	in2, out bool
}

// layout computes the segment bounds of a range of n elements led by primary
// and the access mode of each secondary range. in2 may be nil.
func layout[A hwy.Arch, T hwy.Lanes](primary, in2, out []T) (begin, end int, m accessModes) {
	var a A
	width := a.Width()
	off := hwy.AlignmentOffset(primary, width)
	m.out = hwy.AlignmentOffset(out, width) == off
	if in2 != nil {
		m.in2 = hwy.AlignmentOffset(in2, width) == off
	}
	begin, end = hwy.Segments(len(primary), off, hwy.NumLanes[T, A]())
	return begin, end, m
}

// Transform sets out[i] = f(in[i]) for every i < min(len(in), len(out)). The
// aligned middle of in is processed one batch at a time with fb; out is
// stored aligned there when its alignment offset matches in's.
//
// Example:
//
//	algo.Transform(in, out,
//	    func(x float32) float32 { return x * 2 },
//	    func(b hwy.Batch[float32, hwy.Best]) hwy.Batch[float32, hwy.Best] { return b.Add(b) })
func Transform[A hwy.Arch, T hwy.Lanes](in, out []T, f ScalarFunc[T], fb BatchFunc[T, A]) {
	n := min(len(in), len(out))
	in, out = in[:n], out[:n]
	begin, end, m := layout[A](in, nil, out)
	lanes := hwy.NumLanes[T, A]()

	for i := range begin {
		out[i] = f(in[i])
	}
	for i := begin; i < end; i += lanes {
		store(fb(hwy.LoadAligned[A](in[i:])), out[i:], m.out)
	}
	for i := end; i < n; i++ {
		out[i] = f(in[i])
	}
}

// Transform2 sets out[i] = f(in1[i], in2[i]) for every i below the shortest
// length. The segments follow in1's alignment; in2 and out each use aligned
// access in the middle only when their own offset matches in1's.
func Transform2[A hwy.Arch, T hwy.Lanes](in1, in2, out []T, f ScalarFunc2[T], fb BatchFunc2[T, A]) {
	n := min(len(in1), len(in2), len(out))
	in1, in2, out = in1[:n], in2[:n], out[:n]
	begin, end, m := layout[A](in1, in2, out)
	lanes := hwy.NumLanes[T, A]()

	for i := range begin {
		out[i] = f(in1[i], in2[i])
	}
	for i := begin; i < end; i += lanes {
		x := hwy.LoadAligned[A](in1[i:])
		y := load[A](in2[i:], m.in2)
		store(fb(x, y), out[i:], m.out)
	}
	for i := end; i < n; i++ {
		out[i] = f(in1[i], in2[i])
	}
}

// ParallelTransform is Transform with the range split across pool. Chunk
// boundaries fall on multiples of the lane count, so every chunk keeps the
// alignment of the whole slice and the result equals Transform's.
func ParallelTransform[A hwy.Arch, T hwy.Lanes](pool *workerpool.Pool, in, out []T, f ScalarFunc[T], fb BatchFunc[T, A]) {
	n := min(len(in), len(out))
	pool.ParallelForGrain(n, hwy.NumLanes[T, A](), func(start, end int) {
		Transform(in[start:end], out[start:end], f, fb)
	})
}
