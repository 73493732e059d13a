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

// Package cplx provides batches of complex numbers built from two real
// batches, one for the real parts and one for the imaginary parts. All
// arithmetic is written with hwy.Batch operations; there are no complex
// kernels of their own.
//
// Memory comes in two layouts:
//
//	planar:       re[0] re[1] ...  and  im[0] im[1] ...   (LoadPlanar, StorePlanar)
//	interleaved:  re[0] im[0] re[1] im[1] ...            (LoadInterleaved, StoreInterleaved)
//
// Go's complex64 and complex128 slices use the interleaved layout.
package cplx

import (
	"fmt"
	"unsafe"

	"github.com/ajroetker/simdbatch/hwy"
)

// Batch holds hwy.NumLanes[T, A]() complex numbers.
type Batch[T hwy.Floats, A hwy.Arch] struct {
	Real, Imag hwy.Batch[T, A]
}

// New pairs a batch of real parts with a batch of imaginary parts.
func New[T hwy.Floats, A hwy.Arch](re, im hwy.Batch[T, A]) Batch[T, A] {
	return Batch[T, A]{Real: re, Imag: im}
}

// Splat returns a batch with every lane set to re + im*i.
func Splat[A hwy.Arch, T hwy.Floats](re, im T) Batch[T, A] {
	return Batch[T, A]{Real: hwy.Splat[A](re), Imag: hwy.Splat[A](im)}
}

// FromReal returns re with zero imaginary parts.
func FromReal[T hwy.Floats, A hwy.Arch](re hwy.Batch[T, A]) Batch[T, A] {
	return Batch[T, A]{Real: re}
}

// NumLanes returns the number of complex lanes.
func (c Batch[T, A]) NumLanes() int {
	return hwy.NumLanes[T, A]()
}

// Get returns lane i. Like hwy.Batch.Get it goes through memory.
func (c Batch[T, A]) Get(i int) (re, im T) {
	return c.Real.Get(i), c.Imag.Get(i)
}

func (c Batch[T, A]) String() string {
	re, im := c.Real.Lanes(), c.Imag.Lanes()
	s := "["
	for i := range re {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("(%v%+vi)", re[i], im[i])
	}
	return s + "]"
}

// LoadPlanar loads N real parts from re and N imaginary parts from im.
func LoadPlanar[A hwy.Arch, T hwy.Floats](re, im []T) Batch[T, A] {
	return Batch[T, A]{Real: hwy.LoadUnaligned[A](re), Imag: hwy.LoadUnaligned[A](im)}
}

// StorePlanar writes the real parts to re and the imaginary parts to im.
func (c Batch[T, A]) StorePlanar(re, im []T) {
	c.Real.StoreUnaligned(re)
	c.Imag.StoreUnaligned(im)
}

// LoadInterleaved loads N complex numbers from src[:2N] laid out as
// [re0, im0, re1, im1, ...].
func LoadInterleaved[A hwy.Arch, T hwy.Floats](src []T) Batch[T, A] {
	re, im := hwy.LoadInterleaved2[A](src)
	return Batch[T, A]{Real: re, Imag: im}
}

// StoreInterleaved writes the lanes to dst[:2N] as [re0, im0, re1, im1, ...].
func (c Batch[T, A]) StoreInterleaved(dst []T) {
	hwy.StoreInterleaved2(c.Real, c.Imag, dst)
}

// LoadComplex64 loads N values from src.
func LoadComplex64[A hwy.Arch](src []complex64) Batch[float32, A] {
	return LoadInterleaved[A](parts[float32](src))
}

// StoreComplex64 writes the lanes of c to dst[:N].
func StoreComplex64[A hwy.Arch](c Batch[float32, A], dst []complex64) {
	c.StoreInterleaved(parts[float32](dst))
}

// LoadComplex128 loads N values from src.
func LoadComplex128[A hwy.Arch](src []complex128) Batch[float64, A] {
	return LoadInterleaved[A](parts[float64](src))
}

// StoreComplex128 writes the lanes of c to dst[:N].
func StoreComplex128[A hwy.Arch](c Batch[float64, A], dst []complex128) {
	c.StoreInterleaved(parts[float64](dst))
}

// parts views a complex slice as its interleaved real and imaginary parts.
func parts[T hwy.Floats, C complex64 | complex128](s []C) []T {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(s))), 2*len(s))
}
