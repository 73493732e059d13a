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

// Compress packs the lanes of b where m is true to the front, in order, and
// returns the packed batch and the number of packed lanes. The remaining
// lanes are zero.
//
// For example: b=[1,2,3,4], m=[T,F,T,F] -> [1,3,0,0], 2
func Compress[T Lanes, A Arch](b Batch[T, A], m BatchBool[T, A]) (r Batch[T, A], count int) {
	lb, lr := laneView[T](&b.reg), laneView[T](&r.reg)
	size := sizeOf[T]()
	for i := range NumLanes[T, A]() {
		if maskLane(&m.reg, i, size) {
			lr[count] = lb[i]
			count++
		}
	}
	return r, count
}

// Expand is the inverse of Compress: the leading lanes of b fill the lanes
// where m is true, in order, and the other lanes are zero.
//
// For example: b=[1,2,0,0], m=[T,F,T,F] -> [1,0,2,0]
func Expand[T Lanes, A Arch](b Batch[T, A], m BatchBool[T, A]) (r Batch[T, A]) {
	lb, lr := laneView[T](&b.reg), laneView[T](&r.reg)
	size := sizeOf[T]()
	src := 0
	for i := range NumLanes[T, A]() {
		if maskLane(&m.reg, i, size) {
			lr[i] = lb[src]
			src++
		}
	}
	return r
}

// CompressStore writes the lanes of b where m is true to the front of dst,
// in order, and returns the number written. It writes at most len(dst)
// elements.
func CompressStore[T Lanes, A Arch](b Batch[T, A], m BatchBool[T, A], dst []T) int {
	lb := laneView[T](&b.reg)
	size := sizeOf[T]()
	w := 0
	for i := range NumLanes[T, A]() {
		if w == len(dst) {
			break
		}
		if maskLane(&m.reg, i, size) {
			dst[w] = lb[i]
			w++
		}
	}
	return w
}
