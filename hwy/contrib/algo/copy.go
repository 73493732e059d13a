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

// Fill sets every element of dst to value, storing whole aligned batches
// where it can.
func Fill[A hwy.Arch, T hwy.Lanes](dst []T, value T) {
	var a A
	lanes := hwy.NumLanes[T, A]()
	begin, end := hwy.Segments(len(dst), hwy.AlignmentOffset(dst, a.Width()), lanes)
	vb := hwy.Splat[A](value)

	for i := range begin {
		dst[i] = value
	}
	for i := begin; i < end; i += lanes {
		vb.StoreAligned(dst[i:])
	}
	for i := end; i < len(dst); i++ {
		dst[i] = value
	}
}

// CopyIf appends the elements of src matching p to dst[:0] in order and
// returns the number written. It stops when dst is full.
//
// Example: keep only positive values
//
//	n := algo.CopyIf(src, dst, algo.Greater[hwy.Best](float32(0)))
//	kept := dst[:n]
func CopyIf[A hwy.Arch, T hwy.Lanes](src, dst []T, p Predicate[T, A]) int {
	var a A
	lanes := hwy.NumLanes[T, A]()
	begin, end := hwy.Segments(len(src), hwy.AlignmentOffset(src, a.Width()), lanes)

	w := 0
	put := func(v T) bool {
		if w == len(dst) {
			return false
		}
		dst[w] = v
		w++
		return true
	}
	for i := range begin {
		if p.Test(src[i]) && !put(src[i]) {
			return w
		}
	}
	for i := begin; i < end; i += lanes {
		b := hwy.LoadAligned[A](src[i:])
		m := p.Apply(b)
		n := hwy.CompressStore(b, m, dst[w:])
		w += n
		if n < m.CountTrue() {
			return w
		}
	}
	for i := end; i < len(src); i++ {
		if p.Test(src[i]) && !put(src[i]) {
			return w
		}
	}
	return w
}
