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

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/simdbatch/hwy"
)

// originsByType maps an element type name to KernelOrigins for that type.
var originsByType = map[string]func(hwy.ArchID) []hwy.KernelOrigin{
	"int8":    hwy.KernelOrigins[int8],
	"int16":   hwy.KernelOrigins[int16],
	"int32":   hwy.KernelOrigins[int32],
	"int64":   hwy.KernelOrigins[int64],
	"uint8":   hwy.KernelOrigins[uint8],
	"uint16":  hwy.KernelOrigins[uint16],
	"uint32":  hwy.KernelOrigins[uint32],
	"uint64":  hwy.KernelOrigins[uint64],
	"float32": hwy.KernelOrigins[float32],
	"float64": hwy.KernelOrigins[float64],
}

type conversionPair struct {
	name string
	kind func(hwy.ArchID) hwy.Conversion
}

var conversionPairs = []conversionPair{
	{"float32 -> float64", hwy.ConversionOf[float32, float64]},
	{"int32 -> float64", hwy.ConversionOf[int32, float64]},
	{"int32 -> float32", hwy.ConversionOf[int32, float32]},
	{"float64 -> int32", hwy.ConversionOf[float64, int32]},
}

func newKernelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kernels",
		Short: "Show where each resolved kernel comes from",
		Long: `kernels lists, for one element type, the tag and the resolution
(direct, derived, inherited, split or emulated) of every kernel entry.`,
		Args: cobra.NoArgs,
		RunE: runKernels,
	}
	cmd.Flags().String("type", "", "element type (default from config, float32)")
	cmd.Flags().String("arch", "", "tag name (default: every enabled tag)")
	_ = v.BindPFlag("kernels.type", cmd.Flags().Lookup("type"))
	_ = v.BindPFlag("kernels.arch", cmd.Flags().Lookup("arch"))
	return cmd
}

// parseArch returns the tag named name.
func parseArch(name string) (hwy.ArchID, error) {
	id, ok := lo.Find(hwy.AllArchs(), func(id hwy.ArchID) bool { return id.String() == name })
	if !ok {
		names := lo.Map(hwy.AllArchs(), func(id hwy.ArchID, _ int) string { return id.String() })
		return 0, fmt.Errorf("unknown tag %q, want one of %v", name, names)
	}
	return id, nil
}

func runKernels(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	origins := originsByType[cfg.Kernels.Type]

	ids := hwy.EnabledArchs()
	if cfg.Kernels.Arch != "" {
		id, err := parseArch(cfg.Kernels.Arch)
		if err != nil {
			return err
		}
		ids = []hwy.ArchID{id}
	}

	for _, id := range ids {
		heading(cmd, fmt.Sprintf("%s kernels on %s", cfg.Kernels.Type, id))
		list := origins(id)
		for _, o := range list {
			fmt.Fprintf(out, "  %-10s %-9s from %s\n", o.Op, o.How, o.Arch)
		}
		counts := lo.CountValuesBy(list, func(o hwy.KernelOrigin) hwy.Resolution { return o.How })
		fmt.Fprintf(out, "  %d entries: %d direct, %d derived, %d inherited, %d split, %d emulated\n",
			len(list), counts[hwy.Direct], counts[hwy.Derived], counts[hwy.Inherited],
			counts[hwy.Split], counts[hwy.Emulated])

		for _, p := range conversionPairs {
			fmt.Fprintf(out, "  conversion %-18s %s\n", p.name, p.kind(id))
		}
	}
	return nil
}
