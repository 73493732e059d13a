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

// Batch is one register of NumLanes[T, A]() lanes of type T. It is a plain
// value: copying a Batch copies its lanes, and the zero Batch has every lane
// zero.
//
// The compound-assignment methods (AddAssign, MulAssign, ...) are the
// operations; the value-returning forms call them on a copy of the receiver.
type Batch[T Lanes, A Arch] struct {
	reg Register
}

// Splat returns a batch with every lane set to v.
//
// Usage:
//
//	ones := hwy.Splat[hwy.Best](float32(1))
func Splat[A Arch, T Lanes](v T) Batch[T, A] {
	return Batch[T, A]{reg: kernelsOf[T, A]().Splat(v)}
}

// Zero returns a batch with every lane zero.
func Zero[T Lanes, A Arch]() Batch[T, A] {
	return Batch[T, A]{}
}

// New returns a batch holding vals, one per lane. It panics unless exactly
// NumLanes[T, A]() values are given.
func New[A Arch, T Lanes](vals ...T) (b Batch[T, A]) {
	if n := NumLanes[T, A](); len(vals) != n {
		var a A
		panic(fmt.Sprintf("hwy: New: got %d values, %s holds %d %s lanes",
			len(vals), a.Name(), n, KindOf[T]()))
	}
	copy(laneView[T](&b.reg), vals)
	return b
}

// Iota returns a batch whose lane i holds start+i.
func Iota[A Arch, T Lanes](start T) (b Batch[T, A]) {
	l := laneView[T](&b.reg)
	for i := range NumLanes[T, A]() {
		l[i] = start + T(i)
	}
	return b
}

// FromRegister wraps a native register value.
func FromRegister[T Lanes, A Arch](r Register) Batch[T, A] {
	return Batch[T, A]{reg: r}
}

// FromMask reinterprets a mask: true lanes become all ones, false lanes all
// zeros.
func FromMask[T Lanes, A Arch](m BatchBool[T, A]) Batch[T, A] {
	return Batch[T, A]{reg: m.reg}
}

// FromBool returns 1 in the lanes where m is true and 0 elsewhere.
func FromBool[T Lanes, A Arch](m BatchBool[T, A]) Batch[T, A] {
	return Select(m, Splat[A](T(1)), Batch[T, A]{})
}

// Register returns the native register value.
func (b Batch[T, A]) Register() Register {
	return b.reg
}

// NumLanes returns the number of lanes in b.
func (b Batch[T, A]) NumLanes() int {
	return NumLanes[T, A]()
}

// Get returns lane i. It goes through memory and is meant for diagnostics
// and tests, not loops.
func (b Batch[T, A]) Get(i int) T {
	if debugChecks {
		checkLane[T, A]("Get", i, false)
	}
	return laneView[T](&b.reg)[i]
}

// Lanes copies the lanes of b into a new slice.
func (b Batch[T, A]) Lanes() []T {
	return RegisterLanes[T](b.reg, b.NumLanes())
}

// String formats the lanes like a slice.
func (b Batch[T, A]) String() string {
	return fmt.Sprint(b.Lanes())
}

// AddAssign sets b to b + o.
func (b *Batch[T, A]) AddAssign(o Batch[T, A]) { b.reg = kernelsOf[T, A]().Add(b.reg, o.reg) }

// SubAssign sets b to b - o.
func (b *Batch[T, A]) SubAssign(o Batch[T, A]) { b.reg = kernelsOf[T, A]().Sub(b.reg, o.reg) }

// MulAssign sets b to b * o.
func (b *Batch[T, A]) MulAssign(o Batch[T, A]) { b.reg = kernelsOf[T, A]().Mul(b.reg, o.reg) }

// DivAssign sets b to b / o. Integer lanes panic on a zero divisor.
func (b *Batch[T, A]) DivAssign(o Batch[T, A]) { b.reg = kernelsOf[T, A]().Div(b.reg, o.reg) }

// AndAssign sets b to the bitwise b & o.
func (b *Batch[T, A]) AndAssign(o Batch[T, A]) { b.reg = kernelsOf[T, A]().And(b.reg, o.reg) }

// OrAssign sets b to the bitwise b | o.
func (b *Batch[T, A]) OrAssign(o Batch[T, A]) { b.reg = kernelsOf[T, A]().Or(b.reg, o.reg) }

// XorAssign sets b to the bitwise b ^ o.
func (b *Batch[T, A]) XorAssign(o Batch[T, A]) { b.reg = kernelsOf[T, A]().Xor(b.reg, o.reg) }

// Incr adds one to every lane.
func (b *Batch[T, A]) Incr() { b.AddAssign(Splat[A](T(1))) }

// Decr subtracts one from every lane.
func (b *Batch[T, A]) Decr() { b.SubAssign(Splat[A](T(1))) }

func (b Batch[T, A]) Add(o Batch[T, A]) Batch[T, A] { b.AddAssign(o); return b }
func (b Batch[T, A]) Sub(o Batch[T, A]) Batch[T, A] { b.SubAssign(o); return b }
func (b Batch[T, A]) Mul(o Batch[T, A]) Batch[T, A] { b.MulAssign(o); return b }
func (b Batch[T, A]) Div(o Batch[T, A]) Batch[T, A] { b.DivAssign(o); return b }
func (b Batch[T, A]) And(o Batch[T, A]) Batch[T, A] { b.AndAssign(o); return b }
func (b Batch[T, A]) Or(o Batch[T, A]) Batch[T, A]  { b.OrAssign(o); return b }
func (b Batch[T, A]) Xor(o Batch[T, A]) Batch[T, A] { b.XorAssign(o); return b }

// AndNot returns the bitwise b &^ o.
func (b Batch[T, A]) AndNot(o Batch[T, A]) Batch[T, A] {
	return Batch[T, A]{reg: kernelsOf[T, A]().AndNot(b.reg, o.reg)}
}

// Not returns the bitwise complement of b.
func (b Batch[T, A]) Not() Batch[T, A] {
	return Batch[T, A]{reg: kernelsOf[T, A]().Not(b.reg)}
}

// Neg returns -b. Unsigned lanes wrap.
func (b Batch[T, A]) Neg() Batch[T, A] {
	return Batch[T, A]{reg: kernelsOf[T, A]().Neg(b.reg)}
}

// Abs returns the absolute value of each lane. The most negative signed
// integer maps to itself.
func (b Batch[T, A]) Abs() Batch[T, A] {
	return Batch[T, A]{reg: kernelsOf[T, A]().Abs(b.reg)}
}

// Min returns the lane-wise minimum; where b is NaN the result is NaN.
func (b Batch[T, A]) Min(o Batch[T, A]) Batch[T, A] {
	return Batch[T, A]{reg: kernelsOf[T, A]().Min(b.reg, o.reg)}
}

// Max returns the lane-wise maximum; where b is NaN the result is NaN.
func (b Batch[T, A]) Max(o Batch[T, A]) Batch[T, A] {
	return Batch[T, A]{reg: kernelsOf[T, A]().Max(b.reg, o.reg)}
}

func (b Batch[T, A]) Eq(o Batch[T, A]) BatchBool[T, A] {
	return BatchBool[T, A]{reg: kernelsOf[T, A]().Eq(b.reg, o.reg)}
}

func (b Batch[T, A]) Ne(o Batch[T, A]) BatchBool[T, A] {
	return BatchBool[T, A]{reg: kernelsOf[T, A]().Ne(b.reg, o.reg)}
}

func (b Batch[T, A]) Lt(o Batch[T, A]) BatchBool[T, A] {
	return BatchBool[T, A]{reg: kernelsOf[T, A]().Lt(b.reg, o.reg)}
}

func (b Batch[T, A]) Le(o Batch[T, A]) BatchBool[T, A] {
	return BatchBool[T, A]{reg: kernelsOf[T, A]().Le(b.reg, o.reg)}
}

func (b Batch[T, A]) Gt(o Batch[T, A]) BatchBool[T, A] {
	return BatchBool[T, A]{reg: kernelsOf[T, A]().Gt(b.reg, o.reg)}
}

func (b Batch[T, A]) Ge(o Batch[T, A]) BatchBool[T, A] {
	return BatchBool[T, A]{reg: kernelsOf[T, A]().Ge(b.reg, o.reg)}
}

// LogicalNot is true in the lanes that are zero.
func (b Batch[T, A]) LogicalNot() BatchBool[T, A] {
	return b.Eq(Batch[T, A]{})
}

// LogicalAnd is true where both b and o are nonzero.
func (b Batch[T, A]) LogicalAnd(o Batch[T, A]) BatchBool[T, A] {
	return b.LogicalNot().Or(o.LogicalNot()).Not()
}

// LogicalOr is true where b or o is nonzero.
func (b Batch[T, A]) LogicalOr(o Batch[T, A]) BatchBool[T, A] {
	return b.LogicalNot().And(o.LogicalNot()).Not()
}

// ReduceAdd returns the sum of the lanes.
func (b Batch[T, A]) ReduceAdd() T { return kernelsOf[T, A]().ReduceAdd(b.reg) }

// ReduceMin returns the smallest lane.
func (b Batch[T, A]) ReduceMin() T { return kernelsOf[T, A]().ReduceMin(b.reg) }

// ReduceMax returns the largest lane.
func (b Batch[T, A]) ReduceMax() T { return kernelsOf[T, A]().ReduceMax(b.reg) }

// Select returns yes in the lanes where m is true and no elsewhere.
func Select[T Lanes, A Arch](m BatchBool[T, A], yes, no Batch[T, A]) Batch[T, A] {
	return Batch[T, A]{reg: kernelsOf[T, A]().Select(m.reg, yes.reg, no.reg)}
}

// RemAssign sets b to b % o. It panics on a zero divisor.
func RemAssign[T Integers, A Arch](b *Batch[T, A], o Batch[T, A]) {
	b.reg = kernelsOf[T, A]().Rem(b.reg, o.reg)
}

// Rem returns a % o.
func Rem[T Integers, A Arch](a, o Batch[T, A]) Batch[T, A] {
	RemAssign(&a, o)
	return a
}

// ShlAssign shifts every lane of b left by s bits.
func ShlAssign[T Integers, A Arch](b *Batch[T, A], s uint) {
	b.reg = kernelsOf[T, A]().Shl(b.reg, s)
}

// ShrAssign shifts every lane of b right by s bits; signed lanes shift in
// copies of the sign bit.
func ShrAssign[T Integers, A Arch](b *Batch[T, A], s uint) {
	b.reg = kernelsOf[T, A]().Shr(b.reg, s)
}

// Shl returns a shifted left by s bits.
func Shl[T Integers, A Arch](a Batch[T, A], s uint) Batch[T, A] {
	ShlAssign(&a, s)
	return a
}

// Shr returns a shifted right by s bits.
func Shr[T Integers, A Arch](a Batch[T, A], s uint) Batch[T, A] {
	ShrAssign(&a, s)
	return a
}

// ShlV shifts each lane of a left by the matching lane of s.
func ShlV[T Integers, A Arch](a, s Batch[T, A]) Batch[T, A] {
	return Batch[T, A]{reg: kernelsOf[T, A]().ShlV(a.reg, s.reg)}
}

// ShrV shifts each lane of a right by the matching lane of s.
func ShrV[T Integers, A Arch](a, s Batch[T, A]) Batch[T, A] {
	return Batch[T, A]{reg: kernelsOf[T, A]().ShrV(a.reg, s.reg)}
}

// Sqrt returns the square root of each lane.
func Sqrt[T Floats, A Arch](a Batch[T, A]) Batch[T, A] {
	return Batch[T, A]{reg: kernelsOf[T, A]().Sqrt(a.reg)}
}
