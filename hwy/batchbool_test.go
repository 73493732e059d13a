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

import "testing"

func testTruthTables[T Lanes, A Arch](t *testing.T) {
	tr, fa := SplatBool[T, A](true), SplatBool[T, A](false)
	tests := []struct {
		name string
		got  BatchBool[T, A]
		want bool
	}{
		{"T&T", tr.And(tr), true},
		{"T&F", tr.And(fa), false},
		{"F&T", fa.And(tr), false},
		{"F&F", fa.And(fa), false},
		{"T|T", tr.Or(tr), true},
		{"T|F", tr.Or(fa), true},
		{"F|T", fa.Or(tr), true},
		{"F|F", fa.Or(fa), false},
		{"T^T", tr.Xor(tr), false},
		{"T^F", tr.Xor(fa), true},
		{"F^T", fa.Xor(tr), true},
		{"F^F", fa.Xor(fa), false},
		{"~T", tr.Not(), false},
		{"~F", fa.Not(), true},
		{"T&^T", tr.AndNot(tr), false},
		{"T&^F", tr.AndNot(fa), true},
		{"T==F", tr.Eq(fa), false},
		{"T!=F", tr.Ne(fa), true},
	}
	for _, tt := range tests {
		for i := range tt.got.NumLanes() {
			if got := tt.got.Get(i); got != tt.want {
				t.Errorf("%s lane %d: got %v, want %v", tt.name, i, got, tt.want)
			}
		}
		if tt.want && !tt.got.AllTrue() || !tt.want && !tt.got.NoneTrue() {
			t.Errorf("%s: mask %v is not uniform", tt.name, tt.got)
		}
	}
	// The encoding of true is all ones in the lane's width.
	if FromMask(tr).Not() != Zero[T, A]() {
		t.Errorf("true mask %v is not all ones", FromMask(tr))
	}
}

func TestBatchBoolTruthTables(t *testing.T) {
	t.Run("int8/avx512", testTruthTables[int8, AVX512])
	t.Run("uint16/sse2", testTruthTables[uint16, SSE2])
	t.Run("float32/generic", testTruthTables[float32, Generic])
	t.Run("float32/avx2", testTruthTables[float32, AVX2])
	t.Run("float64/neon", testTruthTables[float64, NEON])
	t.Run("int64/best", testTruthTables[int64, Best])
}

func TestBitmask(t *testing.T) {
	tests := []struct {
		name string
		mask uint64
	}{
		{"empty", 0},
		{"first", 1},
		{"alternating", 0x5555_5555_5555_5555},
		{"high", 1 << 63},
		{"full", ^uint64(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FromBitmask[uint8, AVX512](tt.mask)
			if got := m.Bitmask(); got != tt.mask {
				t.Errorf("Bitmask round trip: got %#x, want %#x", got, tt.mask)
			}
			// Four lanes keep only the low four bits.
			if got, want := FromBitmask[int32, SSE2](tt.mask).Bitmask(), tt.mask&0xF; got != want {
				t.Errorf("4-lane Bitmask: got %#x, want %#x", got, want)
			}
		})
	}
}

func TestCountAndFirstTrue(t *testing.T) {
	m := BoolsOf[int32, SSE2](false, true, false, true)
	if got := m.CountTrue(); got != 2 {
		t.Errorf("CountTrue = %d, want 2", got)
	}
	if got := m.FirstTrue(); got != 1 {
		t.Errorf("FirstTrue = %d, want 1", got)
	}
	if !m.AnyTrue() || m.AllTrue() || m.NoneTrue() {
		t.Errorf("AnyTrue/AllTrue/NoneTrue wrong for %v", m)
	}
	if got := SplatBool[int32, SSE2](false).FirstTrue(); got != -1 {
		t.Errorf("FirstTrue of empty mask = %d, want -1", got)
	}
	if !SplatBool[int8, AVX512](true).AllTrue() {
		t.Error("AllTrue false for a full 64-lane mask")
	}

	dst := make([]bool, 4)
	m.Store(dst)
	for i, want := range []bool{false, true, false, true} {
		if dst[i] != want {
			t.Errorf("Store lane %d: got %v, want %v", i, dst[i], want)
		}
	}
	if got := m.String(); got != "[false true false true]" {
		t.Errorf("String = %q", got)
	}
}

func TestBoolsOfWrongCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BoolsOf with 3 values on a 4-lane tag did not panic")
		}
	}()
	_ = BoolsOf[float32, SSE2](true, false, true)
}
