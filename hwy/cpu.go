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
	"runtime"

	"golang.org/x/sys/cpu"
)

// HostSupports reports whether the running CPU implements the instructions
// that tag id assumes. It is a diagnostic: kernels are chosen at build time
// and a binary built for a tag the host lacks faults on the first wide
// instruction rather than falling back.
func HostSupports(id ArchID) bool {
	switch id {
	case ArchGeneric:
		return true
	case ArchSSE2:
		return runtime.GOARCH == "amd64" && cpu.X86.HasSSE2
	case ArchAVX2:
		return runtime.GOARCH == "amd64" && cpu.X86.HasAVX2 && cpu.X86.HasFMA && cpu.X86.HasBMI2
	case ArchAVX512:
		return runtime.GOARCH == "amd64" && cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW &&
			cpu.X86.HasAVX512CD && cpu.X86.HasAVX512DQ && cpu.X86.HasAVX512VL
	case ArchNEON:
		return runtime.GOARCH == "arm64" && cpu.ARM64.HasASIMD
	default:
		return false
	}
}

// CheckHost returns the enabled tags the running CPU cannot execute.
func CheckHost() []ArchID {
	var missing []ArchID
	for _, id := range EnabledArchs() {
		if !HostSupports(id) {
			missing = append(missing, id)
		}
	}
	return missing
}
