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

import "fmt"

// Gather and Scatter address memory one lane at a time with scalar semantics.
// The index batch must have the same lane count as the data batch, which
// holds when the index and element types have the same size.

// Gather returns the batch whose lane i is base[idx[i]]. Indices are
// bounds-checked like any slice access.
//
// Usage:
//
//	idx := hwy.New[hwy.SSE2](int32(3), 0, 2, 1)
//	v := hwy.Gather(table, idx)
func Gather[A Arch, T Lanes, I Integers](base []T, idx Batch[I, A]) (b Batch[T, A]) {
	n := checkIndexLanes[T, I, A]("Gather")
	li, lb := laneView[I](&idx.reg), laneView[T](&b.reg)
	for i := range n {
		lb[i] = base[int(li[i])]
	}
	return b
}

// Scatter writes lane i of b to dst[idx[i]]. Lanes are written in order, so
// with duplicate indices the highest lane wins; callers must not rely on it.
func Scatter[A Arch, T Lanes, I Integers](b Batch[T, A], dst []T, idx Batch[I, A]) {
	n := checkIndexLanes[T, I, A]("Scatter")
	li, lb := laneView[I](&idx.reg), laneView[T](&b.reg)
	for i := range n {
		dst[int(li[i])] = lb[i]
	}
}

func checkIndexLanes[T Lanes, I Integers, A Arch](op string) int {
	n, m := NumLanes[T, A](), NumLanes[I, A]()
	if n != m {
		panic(fmt.Sprintf("hwy: %s: %d %s lanes addressed by %d %s indices",
			op, n, KindOf[T](), m, KindOf[I]()))
	}
	return n
}
