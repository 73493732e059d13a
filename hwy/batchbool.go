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
	"math/bits"
)

// BatchBool is the result of comparing two Batch[T, A] values. It has the
// same lane count as the batch, and each lane is stored as a T-sized field
// of all one bits (true) or all zero bits (false), so masks combine with the
// bitwise kernels and blend with Select.
type BatchBool[T Lanes, A Arch] struct {
	reg Register
}

// SplatBool returns a mask with every lane set to v.
func SplatBool[T Lanes, A Arch](v bool) (m BatchBool[T, A]) {
	size := sizeOf[T]()
	for i := range NumLanes[T, A]() {
		setMaskLane(&m.reg, i, size, v)
	}
	return m
}

// BoolsOf returns a mask holding vals, one per lane. It panics unless exactly
// NumLanes[T, A]() values are given.
func BoolsOf[T Lanes, A Arch](vals ...bool) (m BatchBool[T, A]) {
	if n := NumLanes[T, A](); len(vals) != n {
		var a A
		panic(fmt.Sprintf("hwy: BoolsOf: got %d values, %s holds %d %s lanes",
			len(vals), a.Name(), n, KindOf[T]()))
	}
	size := sizeOf[T]()
	for i, v := range vals {
		setMaskLane(&m.reg, i, size, v)
	}
	return m
}

// FromBitmask returns a mask whose lane i is bit i of mask. Bits at or above
// the lane count are ignored.
func FromBitmask[T Lanes, A Arch](mask uint64) (m BatchBool[T, A]) {
	size := sizeOf[T]()
	for i := range NumLanes[T, A]() {
		setMaskLane(&m.reg, i, size, mask&(1<<uint(i)) != 0)
	}
	return m
}

// Register returns the mask register.
func (m BatchBool[T, A]) Register() Register {
	return m.reg
}

// NumLanes returns the number of lanes in m.
func (m BatchBool[T, A]) NumLanes() int {
	return NumLanes[T, A]()
}

// Bitmask packs the lanes into an integer, lane i in bit i.
func (m BatchBool[T, A]) Bitmask() uint64 {
	size := sizeOf[T]()
	var out uint64
	for i := range NumLanes[T, A]() {
		if maskLane(&m.reg, i, size) {
			out |= 1 << uint(i)
		}
	}
	return out
}

// Get returns lane i.
func (m BatchBool[T, A]) Get(i int) bool {
	if debugChecks {
		checkLane[T, A]("BatchBool.Get", i, false)
	}
	return maskLane(&m.reg, i, sizeOf[T]())
}

// Store writes the lanes to dst[:NumLanes]; any nonzero lane is true.
func (m BatchBool[T, A]) Store(dst []bool) {
	size := sizeOf[T]()
	dst = dst[:NumLanes[T, A]()]
	for i := range dst {
		dst[i] = maskLane(&m.reg, i, size)
	}
}

// Bools copies the lanes into a new slice.
func (m BatchBool[T, A]) Bools() []bool {
	out := make([]bool, NumLanes[T, A]())
	m.Store(out)
	return out
}

func (m BatchBool[T, A]) String() string {
	return fmt.Sprint(m.Bools())
}

func (m BatchBool[T, A]) And(o BatchBool[T, A]) BatchBool[T, A] {
	return BatchBool[T, A]{reg: kernelsOf[T, A]().And(m.reg, o.reg)}
}

func (m BatchBool[T, A]) Or(o BatchBool[T, A]) BatchBool[T, A] {
	return BatchBool[T, A]{reg: kernelsOf[T, A]().Or(m.reg, o.reg)}
}

func (m BatchBool[T, A]) Xor(o BatchBool[T, A]) BatchBool[T, A] {
	return BatchBool[T, A]{reg: kernelsOf[T, A]().Xor(m.reg, o.reg)}
}

// AndNot returns m && !o.
func (m BatchBool[T, A]) AndNot(o BatchBool[T, A]) BatchBool[T, A] {
	return BatchBool[T, A]{reg: kernelsOf[T, A]().AndNot(m.reg, o.reg)}
}

func (m BatchBool[T, A]) Not() BatchBool[T, A] {
	return BatchBool[T, A]{reg: kernelsOf[T, A]().Not(m.reg)}
}

// Eq is true where m and o agree.
func (m BatchBool[T, A]) Eq(o BatchBool[T, A]) BatchBool[T, A] {
	return m.Xor(o).Not()
}

// Ne is true where m and o differ.
func (m BatchBool[T, A]) Ne(o BatchBool[T, A]) BatchBool[T, A] {
	return m.Xor(o)
}

// AllTrue reports whether every lane is true.
func (m BatchBool[T, A]) AllTrue() bool {
	// For 64 lanes the shift yields 0 and the subtraction wraps to all ones.
	return m.Bitmask() == uint64(1)<<uint(NumLanes[T, A]())-1
}

// AnyTrue reports whether at least one lane is true.
func (m BatchBool[T, A]) AnyTrue() bool {
	return m.Bitmask() != 0
}

// NoneTrue reports whether every lane is false.
func (m BatchBool[T, A]) NoneTrue() bool {
	return m.Bitmask() == 0
}

// CountTrue returns the number of true lanes.
func (m BatchBool[T, A]) CountTrue() int {
	return bits.OnesCount64(m.Bitmask())
}

// FirstTrue returns the index of the first true lane, or -1 if there is none.
func (m BatchBool[T, A]) FirstTrue() int {
	b := m.Bitmask()
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros64(b)
}
