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

package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/simdbatch/hwy"
	"github.com/ajroetker/simdbatch/internal/logging"
)

// simdFeatures are the cpuid feature names worth showing next to the tags.
var simdFeatures = []cpuid.FeatureID{
	cpuid.SSE2, cpuid.SSE4, cpuid.AVX, cpuid.AVX2, cpuid.FMA3, cpuid.BMI2,
	cpuid.AVX512F, cpuid.AVX512BW, cpuid.AVX512DQ, cpuid.AVX512VL,
	cpuid.ASIMD, cpuid.SVE,
}

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show enabled tags, fallback chains and host support",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	best := hwy.BestID()
	fmt.Fprintf(out, "Best: %s (%d bytes)\n", best, best.Width())
	fmt.Fprintf(out, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	heading(cmd, "enabled tags")
	for _, id := range hwy.EnabledArchs() {
		chain := lo.Map(hwy.Chain(id), func(a hwy.ArchID, _ int) string { return a.String() })
		fmt.Fprintf(out, "  %-8s width %-3d rank %-3d host %-5v chain %s\n",
			id, id.Width(), id.Rank(), hwy.HostSupports(id), strings.Join(chain, " -> "))
	}
	disabled := lo.Filter(hwy.AllArchs(), func(id hwy.ArchID, _ int) bool { return !id.Enabled() })
	if len(disabled) > 0 {
		fmt.Fprintf(out, "  emulated only: %s\n",
			strings.Join(lo.Map(disabled, func(id hwy.ArchID, _ int) string { return id.String() }), ", "))
	}

	for _, id := range hwy.CheckHost() {
		logging.WithArch(id.String()).Warn("tag enabled by this build but not supported by the host CPU")
	}
	if hwy.NoSimdEnv() {
		logging.Warnf("HWY_NO_SIMD is set but has no effect; rebuild with -tags hwy_generic")
	}

	heading(cmd, "host cpu")
	fmt.Fprintf(out, "  vendor: %s\n", cpuid.CPU.VendorString)
	fmt.Fprintf(out, "  brand: %s\n", cpuid.CPU.BrandName)
	fmt.Fprintf(out, "  cores: %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	fmt.Fprintf(out, "  cache line: %d bytes\n", cpuid.CPU.CacheLine)
	present := lo.Filter(simdFeatures, func(f cpuid.FeatureID, _ int) bool { return cpuid.CPU.Supports(f) })
	names := lo.Uniq(lo.Map(present, func(f cpuid.FeatureID, _ int) string { return f.String() }))
	fmt.Fprintf(out, "  simd features: %s\n", strings.Join(names, " "))
	return nil
}
