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

import (
	"fmt"
	"math"
	"testing"

	"github.com/ajroetker/simdbatch/hwy"
)

func testSum[A hwy.Arch](t *testing.T) {
	var a A
	for _, size := range sizesFor(hwy.NumLanes[int32, A]()) {
		for _, off := range []int{0, 1, 2} {
			s := offsetSlice[int32](size, off, a.Width())
			fillRamp(s, -20)
			want := int32(7)
			for _, v := range s {
				want += v
			}
			if got := Sum[A](s, int32(7)); got != want {
				t.Errorf("%s size %d off %d: Sum = %d, want %d", a.Name(), size, off, got, want)
			}
		}
	}
}

func TestSum(t *testing.T) {
	testSum[hwy.Best](t)
	testSum[hwy.Generic](t)
	testSum[hwy.AVX512](t)
}

func TestSumFloat(t *testing.T) {
	var a hwy.Best
	s := offsetSlice[float64](1003, 1, a.Width())
	want := 0.0
	for i := range s {
		s[i] = 1 / float64(i+1)
		want += s[i]
	}
	got := Sum[hwy.Best](s, 0)
	if math.Abs(got-want) > 1e-12*math.Abs(want) {
		t.Errorf("Sum = %v, want %v (within 1e-12 relative)", got, want)
	}
}

// Below one batch the fold is a plain left-to-right loop, so even an
// operation that is neither associative nor commutative matches it.
func TestReduceShortIsScalar(t *testing.T) {
	lanes := hwy.NumLanes[int64, hwy.Best]()
	f := func(acc, x int64) int64 { return acc*10 - x }
	fb := func(acc, x hwy.Batch[int64, hwy.Best]) hwy.Batch[int64, hwy.Best] {
		t.Fatal("batch function called for a short slice")
		return acc
	}
	for size := range lanes {
		s := make([]int64, size)
		fillRamp(s, 1)
		want := int64(5)
		for _, v := range s {
			want = f(want, v)
		}
		if got := Reduce(s, 5, f, fb); got != want {
			t.Errorf("size %d: Reduce = %d, want %d", size, got, want)
		}
	}
}

// segmentedFold models the documented evaluation order of Reduce.
func segmentedFold(s []int64, init int64, lanes, begin, end int, f func(acc, x int64) int64) int64 {
	for i := range begin {
		init = f(init, s[i])
	}
	if end > begin {
		acc := append([]int64(nil), s[begin:begin+lanes]...)
		for i := begin + lanes; i < end; i += lanes {
			for j := range acc {
				acc[j] = f(acc[j], s[i+j])
			}
		}
		for _, v := range acc {
			init = f(init, v)
		}
	}
	for i := end; i < len(s); i++ {
		init = f(init, s[i])
	}
	return init
}

// The aligned body is folded in its own accumulator and joins the head only
// at the end, so an order-sensitive operation sees a different order than a
// left-to-right loop would.
func TestReduceOrderSensitive(t *testing.T) {
	var a hwy.Best
	lanes := hwy.NumLanes[int64, hwy.Best]()
	f := func(acc, x int64) int64 { return acc*3 + x }
	three := hwy.Splat[hwy.Best](int64(3))
	fb := func(acc, x hwy.Batch[int64, hwy.Best]) hwy.Batch[int64, hwy.Best] {
		return acc.Mul(three).Add(x)
	}

	for _, off := range []int{0, 1} {
		t.Run(fmt.Sprintf("off=%d", off), func(t *testing.T) {
			s := offsetSlice[int64](4*lanes+1, off, a.Width())
			fillRamp(s, 1)
			begin, end := hwy.Segments(len(s), hwy.AlignmentOffset(s, a.Width()), lanes)

			want := segmentedFold(s, 0, lanes, begin, end, f)
			if got := Reduce(s, 0, f, fb); got != want {
				t.Errorf("Reduce = %d, want %d", got, want)
			}

			var scalar int64
			for _, v := range s {
				scalar = f(scalar, v)
			}
			if want == scalar {
				t.Errorf("segmented fold equals the left-to-right fold %d; the ordering caveat is not exercised", scalar)
			}
		})
	}
}

func TestReduceMax(t *testing.T) {
	var a hwy.Best
	s := offsetSlice[float32](77, 3, a.Width())
	fillRamp(s, -40)
	s[50] = 1000
	got := Reduce(s, float32(math.Inf(-1)),
		func(acc, x float32) float32 { return max(acc, x) },
		func(acc, x hwy.Batch[float32, hwy.Best]) hwy.Batch[float32, hwy.Best] { return acc.Max(x) })
	if got != 1000 {
		t.Errorf("max = %v, want 1000", got)
	}
}

func TestDot(t *testing.T) {
	var a hwy.Best
	for _, size := range sizesFor(hwy.NumLanes[int32, hwy.Best]()) {
		x := offsetSlice[int32](size, 0, a.Width())
		y := offsetSlice[int32](size, 1, a.Width())
		fillRamp(x, 1)
		fillRamp(y, -2)
		var want int32
		for i := range x {
			want += x[i] * y[i]
		}
		if got := Dot[hwy.Best](x, y); got != want {
			t.Errorf("size %d: Dot = %d, want %d", size, got, want)
		}
	}
}

func BenchmarkSum(b *testing.B) {
	s := make([]float32, 4096)
	fillRamp(s, 0)
	b.SetBytes(int64(len(s) * 4))
	for b.Loop() {
		_ = Sum[hwy.Best](s, 0)
	}
}
