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

// AlignmentOffset returns the number of leading elements of s to process one
// at a time before the remaining elements start on a multiple of width bytes.
// The result is at most len(s). If the data pointer is not a multiple of the
// element size, no element can ever be aligned and len(s) is returned.
//
// Example:
//
//	off := hwy.AlignmentOffset(data, hwy.Best{}.Width())
//	// data[off:] is aligned, unless off == len(data)
func AlignmentOffset[T Lanes](s []T, width int) int {
	size := len(s)
	if size == 0 {
		return 0
	}
	elem := uintptr(sizeOf[T]())
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	if addr%elem != 0 {
		return size
	}
	return min(int(((-addr)&uintptr(width-1))/elem), size)
}

// Segments splits the n elements of a range whose first aligned element is
// at alignBegin into an unaligned head [0, alignBegin), an aligned body
// [alignBegin, alignEnd) holding whole batches of lanes elements and a tail
// [alignEnd, n). lanes must be a power of two.
//
// Example:
//
//	lanes := hwy.NumLanes[float32, hwy.Best]()
//	begin, end := hwy.Segments(len(data), hwy.AlignmentOffset(data, hwy.Best{}.Width()), lanes)
//	for i := range begin { /* scalar */ }
//	for i := begin; i < end; i += lanes { /* hwy.LoadAligned */ }
//	for i := end; i < len(data); i++ { /* scalar */ }
func Segments(n, alignBegin, lanes int) (begin, end int) {
	begin = min(alignBegin, n)
	end = begin + (n-begin)&^(lanes-1)
	return begin, end
}

// MakeAligned returns a slice of n zero elements whose first element sits on
// a multiple of width bytes. It over-allocates a byte buffer and returns a
// view into it; the view keeps the buffer alive.
func MakeAligned[T Lanes](n, width int) []T {
	if n <= 0 {
		return []T{}
	}
	raw := make([]byte, n*sizeOf[T]()+width-1)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	off := int((-addr) & uintptr(width-1))
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[off])), n)
}
