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

// Conversion is the strategy used to load or store lanes of one element
// type from memory holding another.
type Conversion uint8

const (
	// NoConversion applies when the memory and lane types are the same.
	NoConversion Conversion = iota

	// FastConversion loads the source as a register of its own type and
	// converts the whole register at once, with a vector instruction where
	// the build provides one.
	FastConversion

	// SlowConversion converts each element with a scalar cast into a stack
	// buffer of the lane type and loads that buffer.
	SlowConversion
)

func (c Conversion) String() string {
	switch c {
	case NoConversion:
		return "none"
	case FastConversion:
		return "fast"
	case SlowConversion:
		return "slow"
	default:
		return fmt.Sprintf("Conversion(%d)", uint8(c))
	}
}

// ConvertFunc converts the leading lanes of a source register into a full
// register of the destination type.
type ConvertFunc func(src Register) Register

type convKey struct {
	from, to Kind
	arch     ArchID
}

// fastConversion is one registered conversion kernel. How is Direct for a
// vector instruction and Emulated for the lane loop standing in for one.
type fastConversion struct {
	fn  ConvertFunc
	how Resolution
}

// fastConversions is filled by the per-architecture init functions and is
// read-only afterwards.
var fastConversions = map[convKey]fastConversion{}

// registerFastConversion records that tag id converts From lanes to To lanes
// in one instruction. The emulation reads the first NumLanes(To) source lanes.
// Tags the build does not enable, and pairs that already have a native
// kernel, are skipped.
func registerFastConversion[From, To Lanes](ids ...ArchID) {
	for _, id := range ids {
		key := convKey{KindOf[From](), KindOf[To](), id}
		if c, ok := fastConversions[key]; !id.Enabled() || ok && c.how == Direct {
			continue
		}
		n := id.Width() / sizeOf[To]()
		fastConversions[key] = fastConversion{how: Emulated, fn: func(src Register) (r Register) {
			in, out := laneView[From](&src), laneView[To](&r)
			for i := range n {
				out[i] = To(in[i])
			}
			return r
		}}
	}
}

// registerNativeConversion installs a vector conversion kernel for tag id,
// replacing any emulated entry.
func registerNativeConversion[From, To Lanes](id ArchID, fn ConvertFunc) {
	if !id.Enabled() {
		return
	}
	fastConversions[convKey{KindOf[From](), KindOf[To](), id}] = fastConversion{fn: fn, how: Direct}
}

// conversionKernel reports how the fast From to To entry of id is
// implemented, or false when the pair has none.
func conversionKernel[From, To Lanes](id ArchID) (Resolution, bool) {
	c, ok := fastConversions[convKey{KindOf[From](), KindOf[To](), id}]
	return c.how, ok
}

// ConversionOf reports which strategy loads To lanes from From memory on tag
// id. The answer is a property of the build and never changes at run time.
func ConversionOf[From, To Lanes](id ArchID) Conversion {
	if KindOf[From]() == KindOf[To]() {
		return NoConversion
	}
	if _, ok := fastConversions[convKey{KindOf[From](), KindOf[To](), id}]; ok {
		return FastConversion
	}
	return SlowConversion
}

// loadAs fills a batch from the first N elements of src, converting each to T.
func loadAs[T Lanes, A Arch, S Lanes](src []S) (b Batch[T, A]) {
	var a A
	n := a.Width() / sizeOf[T]()
	src = src[:n]
	switch ConversionOf[S, T](a.ID()) {
	case NoConversion:
		copy(b.reg.Bytes(), bytesOf(src))
	case FastConversion:
		var in Register
		copy(laneView[S](&in), src)
		b.reg = fastConversions[convKey{KindOf[S](), KindOf[T](), a.ID()}].fn(in)
	default:
		var scratch Register
		buf := laneView[T](&scratch)
		for i, v := range src {
			buf[i] = T(v)
		}
		b = loadUnchecked[A](buf[:n])
	}
	return b
}

// storeAs writes the lanes of b to dst[:N], converting each to D. No vector
// store changes the element type, so the register is staged and copied with
// scalar casts.
func storeAs[T Lanes, A Arch, D Lanes](b Batch[T, A], dst []D) {
	var a A
	n := a.Width() / sizeOf[T]()
	dst = dst[:n]
	if KindOf[T]() == KindOf[D]() {
		copy(bytesOf(dst), b.reg.Bytes())
		return
	}
	lanes := laneView[T](&b.reg)
	for i := range dst {
		dst[i] = D(lanes[i])
	}
}

// LoadAlignedAs loads NumLanes[T, A]() elements of src, which must be aligned
// to A's register width, converting each to T.
//
// Usage:
//
//	wide := hwy.LoadAlignedAs[float64, hwy.AVX2](float32Data)
func LoadAlignedAs[T Lanes, A Arch, S Lanes](src []S) Batch[T, A] {
	if debugChecks {
		checkAligned[A]("LoadAlignedAs", src)
	}
	return loadAs[T, A](src)
}

// LoadUnalignedAs is LoadAlignedAs without the alignment requirement.
func LoadUnalignedAs[T Lanes, A Arch, S Lanes](src []S) Batch[T, A] {
	return loadAs[T, A](src)
}

// StoreAlignedAs writes b to dst, which must be aligned to A's register
// width, converting each lane to D.
func StoreAlignedAs[T Lanes, A Arch, D Lanes](b Batch[T, A], dst []D) {
	if debugChecks {
		checkAligned[A]("StoreAlignedAs", dst)
	}
	storeAs(b, dst)
}

// StoreUnalignedAs is StoreAlignedAs without the alignment requirement.
func StoreUnalignedAs[T Lanes, A Arch, D Lanes](b Batch[T, A], dst []D) {
	storeAs(b, dst)
}
