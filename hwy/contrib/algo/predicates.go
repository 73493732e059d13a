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

// Predicate is a condition expressed twice: Test for single elements in the
// head and tail of a range, Apply for whole batches in the middle. The two
// must agree lane by lane.
type Predicate[T hwy.Lanes, A hwy.Arch] struct {
	Test  func(x T) bool
	Apply func(x hwy.Batch[T, A]) hwy.BatchBool[T, A]
}

// Not returns the negation of p.
func (p Predicate[T, A]) Not() Predicate[T, A] {
	return Predicate[T, A]{
		Test:  func(x T) bool { return !p.Test(x) },
		Apply: func(x hwy.Batch[T, A]) hwy.BatchBool[T, A] { return p.Apply(x).Not() },
	}
}

// And returns the conjunction of p and q.
func (p Predicate[T, A]) And(q Predicate[T, A]) Predicate[T, A] {
	return Predicate[T, A]{
		Test:  func(x T) bool { return p.Test(x) && q.Test(x) },
		Apply: func(x hwy.Batch[T, A]) hwy.BatchBool[T, A] { return p.Apply(x).And(q.Apply(x)) },
	}
}

// Or returns the disjunction of p and q.
func (p Predicate[T, A]) Or(q Predicate[T, A]) Predicate[T, A] {
	return Predicate[T, A]{
		Test:  func(x T) bool { return p.Test(x) || q.Test(x) },
		Apply: func(x hwy.Batch[T, A]) hwy.BatchBool[T, A] { return p.Apply(x).Or(q.Apply(x)) },
	}
}

// Equal matches elements equal to v.
func Equal[A hwy.Arch, T hwy.Lanes](v T) Predicate[T, A] {
	vb := hwy.Splat[A](v)
	return Predicate[T, A]{
		Test:  func(x T) bool { return x == v },
		Apply: func(x hwy.Batch[T, A]) hwy.BatchBool[T, A] { return x.Eq(vb) },
	}
}

// Less matches elements below v.
func Less[A hwy.Arch, T hwy.Lanes](v T) Predicate[T, A] {
	vb := hwy.Splat[A](v)
	return Predicate[T, A]{
		Test:  func(x T) bool { return x < v },
		Apply: func(x hwy.Batch[T, A]) hwy.BatchBool[T, A] { return x.Lt(vb) },
	}
}

// Greater matches elements above v.
func Greater[A hwy.Arch, T hwy.Lanes](v T) Predicate[T, A] {
	vb := hwy.Splat[A](v)
	return Predicate[T, A]{
		Test:  func(x T) bool { return x > v },
		Apply: func(x hwy.Batch[T, A]) hwy.BatchBool[T, A] { return x.Gt(vb) },
	}
}

// InRange matches elements in [lo, hi].
func InRange[A hwy.Arch, T hwy.Lanes](lo, hi T) Predicate[T, A] {
	lb, hb := hwy.Splat[A](lo), hwy.Splat[A](hi)
	return Predicate[T, A]{
		Test:  func(x T) bool { return x >= lo && x <= hi },
		Apply: func(x hwy.Batch[T, A]) hwy.BatchBool[T, A] { return x.Ge(lb).And(x.Le(hb)) },
	}
}
