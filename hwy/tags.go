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

// Arch is the constraint satisfied by the architecture tags. A tag is a
// stateless marker; its zero value is the only value.
//
// Usage:
//
//	var b hwy.Batch[float32, hwy.AVX2]
//	n := b.NumLanes() // 8
type Arch interface {
	Generic | SSE2 | NEON | AVX2 | AVX512

	// ID returns the tag's identifier.
	ID() ArchID

	// Name returns a human-readable name for this tag ("sse2", "avx2", etc.)
	Name() string

	// Width returns the register width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Rank orders tags by capability.
	Rank() int

	// Enabled reports whether the build configuration enables this tag.
	Enabled() bool
}

// Generic is the portable baseline. Its kernels are scalar loops over a
// 16-byte register and it is enabled in every build.
type Generic struct{}

// SSE2 is the x86-64 baseline 128-bit instruction set.
type SSE2 struct{}

// NEON is the ARM Advanced SIMD 128-bit instruction set.
type NEON struct{}

// AVX2 is the x86-64 256-bit instruction set (GOAMD64=v3).
type AVX2 struct{}

// AVX512 is the x86-64 512-bit instruction set (GOAMD64=v4).
type AVX512 struct{}

func (Generic) ID() ArchID { return ArchGeneric }
func (SSE2) ID() ArchID    { return ArchSSE2 }
func (NEON) ID() ArchID    { return ArchNEON }
func (AVX2) ID() ArchID    { return ArchAVX2 }
func (AVX512) ID() ArchID  { return ArchAVX512 }

func (Generic) Name() string { return ArchGeneric.String() }
func (SSE2) Name() string    { return ArchSSE2.String() }
func (NEON) Name() string    { return ArchNEON.String() }
func (AVX2) Name() string    { return ArchAVX2.String() }
func (AVX512) Name() string  { return ArchAVX512.String() }

func (Generic) Width() int { return 16 }
func (SSE2) Width() int    { return 16 }
func (NEON) Width() int    { return 16 }
func (AVX2) Width() int    { return 32 }
func (AVX512) Width() int  { return 64 }

func (Generic) Rank() int { return 0 }
func (SSE2) Rank() int    { return 10 }
func (NEON) Rank() int    { return 15 }
func (AVX2) Rank() int    { return 20 }
func (AVX512) Rank() int  { return 30 }

func (Generic) Enabled() bool { return true }
func (SSE2) Enabled() bool    { return sse2Enabled }
func (NEON) Enabled() bool    { return neonEnabled }
func (AVX2) Enabled() bool    { return avx2Enabled }
func (AVX512) Enabled() bool  { return avx512Enabled }

// NumLanes returns the number of T lanes in one register of A.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int8: 32/1 = 32 lanes
func NumLanes[T Lanes, A Arch]() int {
	var a A
	return a.Width() / sizeOf[T]()
}
