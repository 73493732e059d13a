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
	"strings"
	"testing"
)

func originOf(k *Kernels[int32], op string) KernelOrigin {
	return k.origins[op]
}

func TestResolveSplitsNarrowKernel(t *testing.T) {
	var own [numArchs]*Kernels[int32]
	calls := 0
	narrowAdd := genericKernels[int32](4).Add
	own[ArchSSE2] = &Kernels[int32]{
		Add: func(a, b Register) Register {
			calls++
			return narrowAdd(a, b)
		},
	}

	k := resolve(&own, ArchAVX512)
	if got, want := originOf(k, "Add"), (KernelOrigin{"Add", ArchSSE2, Split}); got != want {
		t.Errorf("Add origin = %+v, want %+v", got, want)
	}
	if got := originOf(k, "Sub"); got.How != Emulated {
		t.Errorf("Sub origin = %+v, want emulated", got)
	}

	a := Iota[AVX512](int32(0))
	b := Splat[AVX512](int32(100))
	got := FromRegister[int32, AVX512](k.Add(a.Register(), b.Register()))
	if calls != 4 {
		t.Errorf("narrow Add ran %d times, want once per 16-byte chunk (4)", calls)
	}
	if want := Iota[AVX512](int32(100)); got != want {
		t.Errorf("split Add = %v, want %v", got, want)
	}
}

func TestResolveInheritsSameWidth(t *testing.T) {
	var own [numArchs]*Kernels[int32]
	own[ArchGeneric] = &Kernels[int32]{Mul: genericKernels[int32](4).Mul}
	k := resolve(&own, ArchSSE2)
	if got, want := originOf(k, "Mul"), (KernelOrigin{"Mul", ArchGeneric, Inherited}); got != want {
		t.Errorf("Mul origin = %+v, want %+v", got, want)
	}
}

func TestResolveDerivesFromPrimitives(t *testing.T) {
	emu := genericKernels[float32](8)
	var own [numArchs]*Kernels[float32]
	own[ArchAVX2] = &Kernels[float32]{Eq: emu.Eq, Xor: emu.Xor, Lt: emu.Lt}
	k := resolve(&own, ArchAVX2)

	for _, op := range []string{"Not", "Ne", "Gt"} {
		if got, want := k.origins[op], (KernelOrigin{op, ArchAVX2, Derived}); got != want {
			t.Errorf("%s origin = %+v, want %+v", op, got, want)
		}
	}
	// Le needs Or, which arrives only from the emulation.
	if got := k.origins["Le"]; got.How != Emulated {
		t.Errorf("Le origin = %+v, want emulated", got)
	}

	x := New[AVX2](float32(1), 2, 3, 4, 5, 6, 7, 8)
	y := New[AVX2](float32(1), 0, 3, 9, 5, 0, 7, 9)
	ne := FromRegister[uint32, AVX2](k.Ne(x.Register(), y.Register()))
	gt := FromRegister[uint32, AVX2](k.Gt(x.Register(), y.Register()))
	const t1 = ^uint32(0)
	expectLanes(t, "derived Ne", ne, []uint32{0, t1, 0, t1, 0, t1, 0, t1})
	expectLanes(t, "derived Gt", gt, []uint32{0, t1, 0, 0, 0, t1, 0, 0})
}

func TestGenericOriginsAreEmulated(t *testing.T) {
	for _, o := range KernelOrigins[uint16](ArchGeneric) {
		if o.Arch != ArchGeneric || (o.How != Emulated && o.How != Direct) {
			t.Errorf("%s: origin %s/%s, want generic emulation", o.Op, o.Arch, o.How)
		}
	}
	origins := KernelOrigins[float64](ArchGeneric)
	for i := 1; i < len(origins); i++ {
		if origins[i-1].Op >= origins[i].Op {
			t.Errorf("origins not sorted: %q before %q", origins[i-1].Op, origins[i].Op)
		}
	}
	for _, o := range origins {
		if o.Op == "Rem" || o.Op == "Shl" {
			t.Errorf("float64 table has integer-only entry %s", o.Op)
		}
	}
}

func TestResolvedTablesAreComplete(t *testing.T) {
	for _, id := range AllArchs() {
		k := ResolvedKernels[int8](id)
		for _, sl := range slotsOf[int8]() {
			if sl.claimedBy(false) && !sl.isSet(k) {
				t.Errorf("%s: int8 %s is nil", id, sl.name)
			}
		}
	}
}

func TestRegisterKernelsDisabledTag(t *testing.T) {
	for _, id := range AllArchs() {
		if id.Enabled() {
			continue
		}
		if RegisterKernels(id, &Kernels[int64]{Add: genericKernels[int64](2).Add}) {
			t.Errorf("RegisterKernels(%s) = true for a disabled tag", id)
		}
		return
	}
	t.Skip("every tag is enabled in this build")
}

func TestRegisterKernelsAfterUsePanics(t *testing.T) {
	_ = Splat[Generic](int16(1))
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("RegisterKernels after use did not panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "registered after use") {
			t.Errorf("panic = %v, want a registered-after-use message", r)
		}
	}()
	RegisterKernels(ArchGeneric, &Kernels[int16]{Add: genericKernels[int16](8).Add})
}

func TestResolutionString(t *testing.T) {
	for r, want := range map[Resolution]string{
		Direct: "direct", Derived: "derived", Inherited: "inherited",
		Split: "split", Emulated: "emulated", Resolution(99): "unknown",
	} {
		if got := r.String(); got != want {
			t.Errorf("Resolution(%d).String() = %q, want %q", r, got, want)
		}
	}
}
