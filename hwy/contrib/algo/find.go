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
	"sync/atomic"

	"github.com/ajroetker/simdbatch/hwy"
	"github.com/ajroetker/simdbatch/hwy/contrib/workerpool"
)

// CountIf returns the number of elements of s for which pred holds. The head
// and tail are tested one element at a time with pred; predBatch returns the
// number of matching lanes of one aligned batch.
//
// Example:
//
//	n := algo.CountIf(data,
//	    func(x float32) bool { return x > 0 },
//	    func(b hwy.Batch[float32, hwy.Best]) int {
//	        return b.Gt(hwy.Zero[float32, hwy.Best]()).CountTrue()
//	    })
func CountIf[A hwy.Arch, T hwy.Lanes](s []T, pred func(x T) bool, predBatch func(x hwy.Batch[T, A]) int) int {
	var a A
	lanes := hwy.NumLanes[T, A]()
	begin, end := hwy.Segments(len(s), hwy.AlignmentOffset(s, a.Width()), lanes)

	count := 0
	for i := range begin {
		if pred(s[i]) {
			count++
		}
	}
	for i := begin; i < end; i += lanes {
		count += predBatch(hwy.LoadAligned[A](s[i:]))
	}
	for i := end; i < len(s); i++ {
		if pred(s[i]) {
			count++
		}
	}
	return count
}

// Count returns the number of elements of s equal to value. Each aligned
// batch contributes the lane sum of its equality mask converted to 1 and 0.
func Count[A hwy.Arch, T hwy.Lanes](s []T, value T) int {
	vb := hwy.Splat[A](value)
	return CountIf(s,
		func(x T) bool { return x == value },
		func(x hwy.Batch[T, A]) int { return int(hwy.FromBool(x.Eq(vb)).ReduceAdd()) })
}

// CountIfP is CountIf driven by a Predicate.
func CountIfP[A hwy.Arch, T hwy.Lanes](s []T, p Predicate[T, A]) int {
	return CountIf(s, p.Test, func(x hwy.Batch[T, A]) int { return p.Apply(x).CountTrue() })
}

// ParallelCountIf is CountIfP with the range spread across pool in batches
// of whole lane groups.
func ParallelCountIf[A hwy.Arch, T hwy.Lanes](pool *workerpool.Pool, s []T, p Predicate[T, A]) int {
	var total atomic.Int64
	pool.ParallelForBatched(len(s), 256*hwy.NumLanes[T, A](), func(start, end int) {
		total.Add(int64(CountIfP(s[start:end], p)))
	})
	return int(total.Load())
}

// FindIf returns the index of the first element of s matching p, or -1.
func FindIf[A hwy.Arch, T hwy.Lanes](s []T, p Predicate[T, A]) int {
	var a A
	lanes := hwy.NumLanes[T, A]()
	begin, end := hwy.Segments(len(s), hwy.AlignmentOffset(s, a.Width()), lanes)

	for i := range begin {
		if p.Test(s[i]) {
			return i
		}
	}
	for i := begin; i < end; i += lanes {
		if j := p.Apply(hwy.LoadAligned[A](s[i:])).FirstTrue(); j >= 0 {
			return i + j
		}
	}
	for i := end; i < len(s); i++ {
		if p.Test(s[i]) {
			return i
		}
	}
	return -1
}

// Find returns the index of the first element of s equal to value, or -1.
func Find[A hwy.Arch, T hwy.Lanes](s []T, value T) int {
	return FindIf(s, Equal[A](value))
}

// Contains reports whether value occurs in s.
func Contains[A hwy.Arch, T hwy.Lanes](s []T, value T) bool {
	return Find[A](s, value) >= 0
}

// AnyOf reports whether p holds for some element of s.
func AnyOf[A hwy.Arch, T hwy.Lanes](s []T, p Predicate[T, A]) bool {
	return FindIf(s, p) >= 0
}

// AllOf reports whether p holds for every element of s. It is true for an
// empty slice.
func AllOf[A hwy.Arch, T hwy.Lanes](s []T, p Predicate[T, A]) bool {
	return FindIf(s, p.Not()) < 0
}

// NoneOf reports whether p holds for no element of s.
func NoneOf[A hwy.Arch, T hwy.Lanes](s []T, p Predicate[T, A]) bool {
	return !AnyOf(s, p)
}
