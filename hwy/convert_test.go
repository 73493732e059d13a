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
	"testing"
)

func TestLoadAsTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		name  string
		input []float32
		want  []int32
	}{
		{
			name:  "positive integers",
			input: []float32{1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0},
			want:  []int32{1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			name:  "negative integers",
			input: []float32{-1.0, -2.0, -3.0, -4.0, -5.0, -6.0, -7.0, -8.0},
			want:  []int32{-1, -2, -3, -4, -5, -6, -7, -8},
		},
		{
			name:  "truncate toward zero positive",
			input: []float32{1.9, 2.5, 3.1, 4.7, 5.5, 6.3, 7.8, 8.2},
			want:  []int32{1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			name:  "truncate toward zero negative",
			input: []float32{-1.9, -2.5, -3.1, -4.7, -5.5, -6.3, -7.8, -8.2},
			want:  []int32{-1, -2, -3, -4, -5, -6, -7, -8},
		},
		{
			name:  "zeros",
			input: []float32{0.0, -0.0, 0.1, -0.1, 0.9, -0.9, 0.5, -0.5},
			want:  []int32{0, 0, 0, 0, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// AVX2 holds exactly the eight test values.
			v := LoadUnalignedAs[int32, AVX2](tt.input)
			for i, want := range tt.want {
				if got := v.Get(i); got != want {
					t.Errorf("lane %d: got %v, want %v", i, got, want)
				}
			}
		})
	}
}

func testLoadInt32AsFloat32[A Arch](t *testing.T) {
	var a A
	n := NumLanes[float32, A]()
	src := MakeAligned[int32](n, a.Width())
	for i := range src {
		src[i] = int32(i*7919 - 3*n)
	}
	if got := ConversionOf[int32, float32](a.ID()); got != SlowConversion {
		t.Errorf("ConversionOf[int32, float32](%s) = %v, want slow", a.Name(), got)
	}
	for _, v := range []Batch[float32, A]{LoadAlignedAs[float32, A](src), LoadUnalignedAs[float32, A](src)} {
		for i := range n {
			if want := float32(src[i]); v.Get(i) != want {
				t.Errorf("%s lane %d: got %v, want %v", a.Name(), i, v.Get(i), want)
			}
		}
	}
}

func testLoadFloat32AsFloat64[A Arch](t *testing.T) {
	var a A
	n := NumLanes[float64, A]()
	src := MakeAligned[float32](2*n, a.Width())
	for i := range src {
		src[i] = float32(i) * 0.1
	}
	v := LoadAlignedAs[float64, A](src)
	for i := range n {
		if want := float64(src[i]); v.Get(i) != want {
			t.Errorf("%s lane %d: got %v, want %v", a.Name(), i, v.Get(i), want)
		}
	}
	switch got := ConversionOf[float32, float64](a.ID()); got {
	case FastConversion, SlowConversion:
	default:
		t.Errorf("ConversionOf[float32, float64](%s) = %v", a.Name(), got)
	}
}

func testLoadInt32AsFloat64[A Arch](t *testing.T) {
	var a A
	n := NumLanes[float64, A]()
	src := MakeAligned[int32](2*n, a.Width())
	for i := range src {
		src[i] = int32(i*1_000_003 - 5_000_000)
	}
	for _, v := range []Batch[float64, A]{LoadAlignedAs[float64, A](src), LoadUnalignedAs[float64, A](src)} {
		for i := range n {
			if want := float64(src[i]); v.Get(i) != want {
				t.Errorf("%s lane %d: got %v, want %v", a.Name(), i, v.Get(i), want)
			}
		}
	}
}

func TestLoadAsConversions(t *testing.T) {
	t.Run("generic", func(t *testing.T) {
		testLoadInt32AsFloat32[Generic](t)
		testLoadFloat32AsFloat64[Generic](t)
		testLoadInt32AsFloat64[Generic](t)
	})
	t.Run("sse2", func(t *testing.T) {
		testLoadInt32AsFloat32[SSE2](t)
		testLoadFloat32AsFloat64[SSE2](t)
		testLoadInt32AsFloat64[SSE2](t)
	})
	t.Run("neon", func(t *testing.T) {
		testLoadInt32AsFloat32[NEON](t)
		testLoadFloat32AsFloat64[NEON](t)
		testLoadInt32AsFloat64[NEON](t)
	})
	t.Run("avx2", func(t *testing.T) {
		testLoadInt32AsFloat32[AVX2](t)
		testLoadFloat32AsFloat64[AVX2](t)
		testLoadInt32AsFloat64[AVX2](t)
	})
	t.Run("avx512", func(t *testing.T) {
		testLoadInt32AsFloat32[AVX512](t)
		testLoadFloat32AsFloat64[AVX512](t)
		testLoadInt32AsFloat64[AVX512](t)
	})
}

func TestConversionOf(t *testing.T) {
	if got := ConversionOf[float32, float32](ArchGeneric); got != NoConversion {
		t.Errorf("same type: got %v, want none", got)
	}
	if got := ConversionOf[float32, float64](ArchGeneric); got != SlowConversion {
		t.Errorf("generic float32->float64: got %v, want slow", got)
	}
	for _, id := range EnabledArchs() {
		got := ConversionOf[float32, float64](id)
		want := SlowConversion
		switch id {
		case ArchSSE2, ArchAVX2, ArchAVX512, ArchNEON:
			want = FastConversion
		}
		if got != want {
			t.Errorf("%s float32->float64: got %v, want %v", id, got, want)
		}
		if _, ok := conversionKernel[float32, float64](id); ok != (want == FastConversion) {
			t.Errorf("%s float32->float64: kernel registered = %v, want %v", id, ok, want == FastConversion)
		}
	}
	if _, ok := conversionKernel[int32, float32](BestID()); ok {
		t.Errorf("%s int32->float32 has a fast kernel", BestID())
	}
}

func TestStoreAs(t *testing.T) {
	b := Iota[Best](float64(-2.5))
	n := b.NumLanes()
	dst := make([]int16, n)
	StoreUnalignedAs(b, dst)
	for i := range n {
		if want := int16(-2.5 + float64(i)); dst[i] != want {
			t.Errorf("lane %d: got %d, want %d", i, dst[i], want)
		}
	}

	same := make([]float64, n)
	StoreUnalignedAs(b, same)
	for i := range n {
		if same[i] != b.Get(i) {
			t.Errorf("lane %d: got %v, want %v", i, same[i], b.Get(i))
		}
	}
}

func ExampleConversionOf() {
	fmt.Println(ConversionOf[int32, int32](ArchGeneric))
	fmt.Println(ConversionOf[int32, float32](ArchGeneric))
	// Output:
	// none
	// slow
}
