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
	"slices"
	"testing"
)

func TestChain(t *testing.T) {
	tests := []struct {
		id   ArchID
		want []ArchID
	}{
		{ArchGeneric, []ArchID{ArchGeneric}},
		{ArchSSE2, []ArchID{ArchSSE2, ArchGeneric}},
		{ArchNEON, []ArchID{ArchNEON, ArchGeneric}},
		{ArchAVX2, []ArchID{ArchAVX2, ArchSSE2, ArchGeneric}},
		{ArchAVX512, []ArchID{ArchAVX512, ArchAVX2, ArchSSE2, ArchGeneric}},
	}
	for _, tt := range tests {
		if got := Chain(tt.id); !slices.Equal(got, tt.want) {
			t.Errorf("Chain(%s) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestEnabledArchs(t *testing.T) {
	ids := EnabledArchs()
	if len(ids) == 0 || ids[len(ids)-1] != ArchGeneric {
		t.Fatalf("EnabledArchs() = %v, want a list ending in generic", ids)
	}
	if ids[0] != BestID() {
		t.Errorf("EnabledArchs()[0] = %s, want Best (%s)", ids[0], BestID())
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1].Rank() <= ids[i].Rank() {
			t.Errorf("EnabledArchs() not ordered by rank: %v", ids)
		}
	}
	if all := AllArchs(); len(all) != int(numArchs) || all[0] != ArchGeneric {
		t.Errorf("AllArchs() = %v", all)
	}
}

func TestTagMethodsMatchIDs(t *testing.T) {
	check := func(name string, id ArchID, width, rank int, enabled bool) {
		if id.String() != name || id.Width() != width || id.Rank() != rank || id.Enabled() != enabled {
			t.Errorf("%s: id reports (%s, %d, %d, %v), tag reports (%s, %d, %d, %v)",
				name, id, id.Width(), id.Rank(), id.Enabled(), name, width, rank, enabled)
		}
	}
	check(Generic{}.Name(), Generic{}.ID(), Generic{}.Width(), Generic{}.Rank(), Generic{}.Enabled())
	check(SSE2{}.Name(), SSE2{}.ID(), SSE2{}.Width(), SSE2{}.Rank(), SSE2{}.Enabled())
	check(NEON{}.Name(), NEON{}.ID(), NEON{}.Width(), NEON{}.Rank(), NEON{}.Enabled())
	check(AVX2{}.Name(), AVX2{}.ID(), AVX2{}.Width(), AVX2{}.Rank(), AVX2{}.Enabled())
	check(AVX512{}.Name(), AVX512{}.ID(), AVX512{}.Width(), AVX512{}.Rank(), AVX512{}.Enabled())

	if !(Generic{}).Enabled() {
		t.Error("generic must be enabled in every build")
	}
	if ArchID(200).String() != "unknown" {
		t.Errorf("ArchID(200).String() = %q", ArchID(200).String())
	}
}

func TestNumLanes(t *testing.T) {
	if got := NumLanes[float32, AVX2](); got != 8 {
		t.Errorf("NumLanes[float32, AVX2] = %d, want 8", got)
	}
	if got := NumLanes[int8, AVX512](); got != 64 {
		t.Errorf("NumLanes[int8, AVX512] = %d, want 64", got)
	}
	if got := NumLanes[float64, Generic](); got != 2 {
		t.Errorf("NumLanes[float64, Generic] = %d, want 2", got)
	}
}

func TestSizedArch(t *testing.T) {
	id, ok := SizedArch[float64](2)
	if !ok || id.Width() != 16 {
		t.Errorf("SizedArch[float64](2) = %s, %v; want a 16-byte tag", id, ok)
	}
	if _, ok := SizedArch[float64](3); ok {
		t.Error("SizedArch[float64](3) found a tag")
	}
	if id, ok := SizedArch[uint8](16); ok && !id.Enabled() {
		t.Errorf("SizedArch returned disabled tag %s", id)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		KindOf[int8]():    "int8",
		KindOf[uint16]():  "uint16",
		KindOf[float32](): "float32",
		KindOf[float64](): "float64",
		Kind(77):          "Kind(77)",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(k), got, want)
		}
	}
	if !KindOf[float32]().IsFloat() || KindOf[uint64]().IsFloat() {
		t.Error("IsFloat misclassifies float32 or uint64")
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("HWY_NO_SIMD=%q: NoSimdEnv() = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestCheckHost(t *testing.T) {
	if !HostSupports(ArchGeneric) {
		t.Error("HostSupports(generic) = false")
	}
	for _, id := range CheckHost() {
		if !id.Enabled() {
			t.Errorf("CheckHost reported disabled tag %s", id)
		}
		if id == ArchGeneric {
			t.Error("CheckHost reported generic as unsupported")
		}
	}
}
