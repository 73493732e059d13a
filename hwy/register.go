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

import "unsafe"

// RegisterBytes is the size of the widest supported register (AVX-512).
const RegisterBytes = 64

// Register is the storage behind every Batch and BatchBool: the bytes of one
// native vector register. Narrower tags use a prefix of it; the bytes past
// the tag's width are always zero, so two registers holding the same lanes
// compare equal with ==.
type Register [RegisterBytes / 8]uint64

// Bytes returns the register's bytes, aliasing r.
func (r *Register) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(r)), RegisterBytes)
}

// laneView returns the register as lanes of T, aliasing r. The view spans all
// RegisterBytes; callers slice it to the tag's lane count.
func laneView[T Lanes](r *Register) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(r)), RegisterBytes/sizeOf[T]())
}

// RegisterLanes copies the first n lanes of r out as T values.
func RegisterLanes[T Lanes](r Register, n int) []T {
	out := make([]T, n)
	copy(out, laneView[T](&r)[:n])
	return out
}

// chunk returns size bytes of r starting at off, moved to the front of a
// fresh register.
func chunk(r *Register, off, size int) (c Register) {
	copy(c.Bytes()[:size], r.Bytes()[off:off+size])
	return c
}

// putChunk copies the first size bytes of c into r at off.
func putChunk(r *Register, off, size int, c *Register) {
	copy(r.Bytes()[off:off+size], c.Bytes()[:size])
}

// setMaskLane writes the all-ones or all-zeros pattern into lane i.
func setMaskLane(r *Register, i, size int, v bool) {
	var fill byte
	if v {
		fill = 0xFF
	}
	b := r.Bytes()[i*size : (i+1)*size]
	for j := range b {
		b[j] = fill
	}
}

// maskLane reports whether lane i has any bit set.
func maskLane(r *Register, i, size int) bool {
	for _, v := range r.Bytes()[i*size : (i+1)*size] {
		if v != 0 {
			return true
		}
	}
	return false
}

// bytesOf reinterprets s as its underlying bytes.
func bytesOf[T Lanes](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*sizeOf[T]())
}
