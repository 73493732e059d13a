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

package cplx

import "github.com/ajroetker/simdbatch/hwy"

// AddAssign sets c to c + o.
func (c *Batch[T, A]) AddAssign(o Batch[T, A]) {
	c.Real.AddAssign(o.Real)
	c.Imag.AddAssign(o.Imag)
}

// SubAssign sets c to c - o.
func (c *Batch[T, A]) SubAssign(o Batch[T, A]) {
	c.Real.SubAssign(o.Real)
	c.Imag.SubAssign(o.Imag)
}

// MulAssign sets c to c * o: (a+bi)(x+yi) = (ax - by) + (ay + bx)i.
func (c *Batch[T, A]) MulAssign(o Batch[T, A]) {
	re := c.Real.Mul(o.Real).Sub(c.Imag.Mul(o.Imag))
	im := c.Real.Mul(o.Imag).Add(c.Imag.Mul(o.Real))
	c.Real, c.Imag = re, im
}

// DivAssign sets c to c / o using the textbook formula
//
//	e  = x² + y²
//	re = (xa + yb) / e
//	im = (xb - ya) / e
//
// without rescaling, so e can overflow or underflow for extreme divisors.
func (c *Batch[T, A]) DivAssign(o Batch[T, A]) {
	e := o.Real.Mul(o.Real).Add(o.Imag.Mul(o.Imag))
	re := o.Real.Mul(c.Real).Add(o.Imag.Mul(c.Imag)).Div(e)
	im := o.Real.Mul(c.Imag).Sub(o.Imag.Mul(c.Real)).Div(e)
	c.Real, c.Imag = re, im
}

func (c Batch[T, A]) Add(o Batch[T, A]) Batch[T, A] { c.AddAssign(o); return c }
func (c Batch[T, A]) Sub(o Batch[T, A]) Batch[T, A] { c.SubAssign(o); return c }
func (c Batch[T, A]) Mul(o Batch[T, A]) Batch[T, A] { c.MulAssign(o); return c }
func (c Batch[T, A]) Div(o Batch[T, A]) Batch[T, A] { c.DivAssign(o); return c }

// Neg returns -c.
func (c Batch[T, A]) Neg() Batch[T, A] {
	return Batch[T, A]{Real: c.Real.Neg(), Imag: c.Imag.Neg()}
}

// Conj returns the complex conjugate of c.
func (c Batch[T, A]) Conj() Batch[T, A] {
	return Batch[T, A]{Real: c.Real, Imag: c.Imag.Neg()}
}

// Norm returns the squared magnitude re² + im² of each lane.
func (c Batch[T, A]) Norm() hwy.Batch[T, A] {
	return c.Real.Mul(c.Real).Add(c.Imag.Mul(c.Imag))
}

// Abs returns the magnitude of each lane as sqrt(Norm).
func (c Batch[T, A]) Abs() hwy.Batch[T, A] {
	return hwy.Sqrt(c.Norm())
}

// Eq is true in the lanes where both parts are equal.
func (c Batch[T, A]) Eq(o Batch[T, A]) hwy.BatchBool[T, A] {
	return c.Real.Eq(o.Real).And(c.Imag.Eq(o.Imag))
}

// Ne is true in the lanes where either part differs.
func (c Batch[T, A]) Ne(o Batch[T, A]) hwy.BatchBool[T, A] {
	return c.Real.Ne(o.Real).Or(c.Imag.Ne(o.Imag))
}

// ReduceAdd returns the sum of the lanes.
func (c Batch[T, A]) ReduceAdd() (re, im T) {
	return c.Real.ReduceAdd(), c.Imag.ReduceAdd()
}

// Select returns yes in the lanes where m is true and no elsewhere.
func Select[T hwy.Floats, A hwy.Arch](m hwy.BatchBool[T, A], yes, no Batch[T, A]) Batch[T, A] {
	return Batch[T, A]{Real: hwy.Select(m, yes.Real, no.Real), Imag: hwy.Select(m, yes.Imag, no.Imag)}
}
