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

import (
	"fmt"
	"unsafe"
)

// This file provides the memory transfers of Batch. Aligned entry points
// require the first element to sit on a multiple of the tag's register width;
// the requirement is checked only in builds with the hwydebug tag.

// loadUnchecked copies the first NumLanes elements of src into a batch.
func loadUnchecked[A Arch, T Lanes](src []T) (b Batch[T, A]) {
	n := NumLanes[T, A]()
	copy(laneView[T](&b.reg)[:n], src[:n])
	return b
}

// LoadAligned loads NumLanes[T, A]() elements from src, which must be aligned
// to A's register width.
//
// Usage:
//
//	buf := hwy.MakeAligned[float32](1024, hwy.Best{}.Width())
//	v := hwy.LoadAligned[hwy.Best](buf[16:])
func LoadAligned[A Arch, T Lanes](src []T) Batch[T, A] {
	if debugChecks {
		checkAligned[A]("LoadAligned", src)
	}
	return loadUnchecked[A](src)
}

// LoadUnaligned loads NumLanes[T, A]() elements from src at any address.
func LoadUnaligned[A Arch, T Lanes](src []T) Batch[T, A] {
	return loadUnchecked[A](src)
}

// Load is LoadUnaligned.
func Load[A Arch, T Lanes](src []T) Batch[T, A] {
	return loadUnchecked[A](src)
}

// StoreAligned writes the lanes of b to dst, which must be aligned to A's
// register width.
func (b Batch[T, A]) StoreAligned(dst []T) {
	if debugChecks {
		checkAligned[A]("StoreAligned", dst)
	}
	b.storeUnchecked(dst)
}

// StoreUnaligned writes the lanes of b to dst at any address.
func (b Batch[T, A]) StoreUnaligned(dst []T) {
	b.storeUnchecked(dst)
}

// Store is StoreUnaligned.
func (b Batch[T, A]) Store(dst []T) {
	b.storeUnchecked(dst)
}

func (b *Batch[T, A]) storeUnchecked(dst []T) {
	n := NumLanes[T, A]()
	copy(dst[:n], laneView[T](&b.reg)[:n])
}

// LoadInterleaved2 loads 2*N interleaved elements and splits them into two
// batches. This converts Array-of-Structures (AoS) format to
// Structure-of-Arrays (SoA).
//
// Input memory layout (interleaved pairs):
//
//	[a0, b0, a1, b1, a2, b2, a3, b3, ...]
//
// Output batches:
//
//	a = [a0, a1, a2, a3, ...]
//	b = [b0, b1, b2, b3, ...]
func LoadInterleaved2[A Arch, T Lanes](src []T) (a, b Batch[T, A]) {
	n := NumLanes[T, A]()
	src = src[:2*n]
	la, lb := laneView[T](&a.reg), laneView[T](&b.reg)
	for i := range n {
		la[i] = src[2*i]
		lb[i] = src[2*i+1]
	}
	return a, b
}

// StoreInterleaved2 is the inverse of LoadInterleaved2: it writes
// [a0, b0, a1, b1, ...] to dst[:2*N].
func StoreInterleaved2[T Lanes, A Arch](a, b Batch[T, A], dst []T) {
	n := NumLanes[T, A]()
	ZipLo(a, b).StoreUnaligned(dst[:n])
	ZipHi(a, b).StoreUnaligned(dst[n : 2*n])
}

// checkAligned panics unless s starts on a multiple of A's register width.
func checkAligned[A Arch, T Lanes](op string, s []T) {
	var a A
	if len(s) == 0 {
		panic(fmt.Sprintf("hwy: %s: empty slice", op))
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	if addr%uintptr(a.Width()) != 0 {
		panic(fmt.Sprintf("hwy: %s: address %#x is not %d-byte aligned for %s",
			op, addr, a.Width(), a.Name()))
	}
}

// checkLane panics unless 0 <= i < N, or 0 <= i <= N when inclusive is set.
func checkLane[T Lanes, A Arch](op string, i int, inclusive bool) {
	n := NumLanes[T, A]()
	if i < 0 || i > n || (i == n && !inclusive) {
		panic(fmt.Sprintf("hwy: %s: lane %d out of range [0, %d)", op, i, n))
	}
}
