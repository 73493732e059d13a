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

// Command hwyinfo reports which architecture tags this build enables, how
// their kernels were resolved and what the host CPU supports.
//
// Usage:
//
//	hwyinfo info
//	hwyinfo kernels --type float32 --arch avx512
//	hwyinfo bench --size 1048576 --workers 8
package main

import (
	"os"

	"github.com/ajroetker/simdbatch/cmd/hwyinfo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
