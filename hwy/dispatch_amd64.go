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

//go:build amd64 && !amd64.v3 && !hwy_generic

package hwy

// GOAMD64=v1 and v2 guarantee SSE2 and nothing wider.

// Best is the most capable tag enabled by this build.
type Best = SSE2

const (
	sse2Enabled   = true
	neonEnabled   = false
	avx2Enabled   = false
	avx512Enabled = false
)
