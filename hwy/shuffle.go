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

// Lane permutations. They work on the lane views directly; the kernel table
// has no entries for them.

// Reverse returns the lanes of b in reverse order.
func Reverse[T Lanes, A Arch](b Batch[T, A]) (r Batch[T, A]) {
	n := NumLanes[T, A]()
	lb, lr := laneView[T](&b.reg), laneView[T](&r.reg)
	for i := range n {
		lr[i] = lb[n-1-i]
	}
	return r
}

// Broadcast returns a batch with every lane set to lane i of b.
func Broadcast[T Lanes, A Arch](b Batch[T, A], i int) Batch[T, A] {
	if debugChecks {
		checkLane[T, A]("Broadcast", i, false)
	}
	return Splat[A](laneView[T](&b.reg)[i])
}

// ZipLo interleaves the lower halves of a and b.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func ZipLo[T Lanes, A Arch](a, b Batch[T, A]) Batch[T, A] {
	return zip(a, b, 0)
}

// ZipHi interleaves the upper halves of a and b.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func ZipHi[T Lanes, A Arch](a, b Batch[T, A]) Batch[T, A] {
	return zip(a, b, NumLanes[T, A]()/2)
}

func zip[T Lanes, A Arch](a, b Batch[T, A], from int) (r Batch[T, A]) {
	half := NumLanes[T, A]() / 2
	la, lb, lr := laneView[T](&a.reg), laneView[T](&b.reg), laneView[T](&r.reg)
	for i := range half {
		lr[2*i] = la[from+i]
		lr[2*i+1] = lb[from+i]
	}
	return r
}

// ExtractPair returns the lanes b[i:] followed by o[:i]. ExtractPair(o, 0) is
// b and ExtractPair(o, N) is o. Other values of i are out of range; they
// panic in hwydebug builds and are undefined otherwise.
func (b Batch[T, A]) ExtractPair(o Batch[T, A], i int) (r Batch[T, A]) {
	if debugChecks {
		checkLane[T, A]("ExtractPair", i, true)
	}
	n := NumLanes[T, A]()
	lb, lo, lr := laneView[T](&b.reg), laneView[T](&o.reg), laneView[T](&r.reg)
	copy(lr[:n-i], lb[i:n])
	copy(lr[n-i:n], lo[:i])
	return r
}
