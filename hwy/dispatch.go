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
	"os"
	"slices"
	"strconv"
)

// ArchID identifies an architecture tag at run time, for tables and
// diagnostics. Kernel selection itself is keyed by the tag type.
type ArchID uint8

const (
	// ArchGeneric is the portable scalar emulation.
	ArchGeneric ArchID = iota

	// ArchSSE2 indicates SSE2 instructions (x86-64 baseline).
	ArchSSE2

	// ArchNEON indicates ARM NEON instructions (128-bit SIMD).
	ArchNEON

	// ArchAVX2 indicates AVX2 instructions (256-bit SIMD).
	ArchAVX2

	// ArchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	ArchAVX512

	numArchs
)

type archInfo struct {
	name    string
	width   int
	rank    int
	parent  ArchID
	enabled bool
}

var archs = [numArchs]archInfo{
	ArchGeneric: {name: "generic", width: Generic{}.Width(), rank: Generic{}.Rank(), parent: ArchGeneric, enabled: true},
	ArchSSE2:    {name: "sse2", width: SSE2{}.Width(), rank: SSE2{}.Rank(), parent: ArchGeneric, enabled: sse2Enabled},
	ArchNEON:    {name: "neon", width: NEON{}.Width(), rank: NEON{}.Rank(), parent: ArchGeneric, enabled: neonEnabled},
	ArchAVX2:    {name: "avx2", width: AVX2{}.Width(), rank: AVX2{}.Rank(), parent: ArchSSE2, enabled: avx2Enabled},
	ArchAVX512:  {name: "avx512", width: AVX512{}.Width(), rank: AVX512{}.Rank(), parent: ArchAVX2, enabled: avx512Enabled},
}

// String returns a human-readable name for the tag.
func (id ArchID) String() string {
	if id < numArchs {
		return archs[id].name
	}
	return "unknown"
}

// Width returns the register width in bytes.
func (id ArchID) Width() int { return archs[id].width }

// Rank orders tags by capability; higher is more capable.
func (id ArchID) Rank() int { return archs[id].rank }

// Parent returns the next tag in the fallback chain. The parent of
// ArchGeneric is ArchGeneric.
func (id ArchID) Parent() ArchID { return archs[id].parent }

// Enabled reports whether the build configuration enables the tag.
func (id ArchID) Enabled() bool { return archs[id].enabled }

// AllArchs returns every known tag, least capable first.
func AllArchs() []ArchID {
	ids := make([]ArchID, 0, numArchs)
	for id := range numArchs {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b ArchID) int { return a.Rank() - b.Rank() })
	return ids
}

// EnabledArchs returns the tags enabled by this build, most capable first.
// The last element is always ArchGeneric.
func EnabledArchs() []ArchID {
	var ids []ArchID
	for _, id := range AllArchs() {
		if id.Enabled() {
			ids = append(ids, id)
		}
	}
	slices.Reverse(ids)
	return ids
}

// Chain returns the fallback walk for id: id itself, then each parent, ending
// at ArchGeneric.
func Chain(id ArchID) []ArchID {
	chain := []ArchID{id}
	for id != ArchGeneric {
		id = id.Parent()
		chain = append(chain, id)
	}
	return chain
}

// BestID returns the identifier of Best.
func BestID() ArchID {
	return Best{}.ID()
}

// SizedArch returns the most capable enabled tag whose register holds exactly
// n lanes of T.
func SizedArch[T Lanes](n int) (ArchID, bool) {
	size := sizeOf[T]()
	for _, id := range EnabledArchs() {
		if id.Width()/size == n {
			return id, true
		}
	}
	return ArchGeneric, false
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// Kernel selection is fixed at build time and never consults it; build with
// the hwy_generic tag to force the generic kernels. Tools report it so that
// scripts written for run-time dispatching libraries get a clear answer.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
