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
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/simdbatch/hwy"
	"github.com/ajroetker/simdbatch/hwy/contrib/algo"
	"github.com/ajroetker/simdbatch/hwy/contrib/workerpool"
	"github.com/ajroetker/simdbatch/internal/logging"
)

func newBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the slice algorithms on Best and on Generic",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	cmd.Flags().Int("size", 0, "number of float32 elements (default from config)")
	cmd.Flags().Int("workers", 0, "workers for the parallel transform, 0 for GOMAXPROCS")
	cmd.Flags().Int("rounds", 0, "repetitions per measurement (default from config)")
	_ = v.BindPFlag("bench.size", cmd.Flags().Lookup("size"))
	_ = v.BindPFlag("bench.workers", cmd.Flags().Lookup("workers"))
	_ = v.BindPFlag("bench.rounds", cmd.Flags().Lookup("rounds"))
	return cmd
}

type measurement struct {
	name string
	run  func()
}

func runBench(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	size, rounds := cfg.Bench.Size, cfg.Bench.Rounds

	pool := workerpool.New(cfg.Bench.Workers)
	defer pool.Close()
	logging.Debugf("bench: %d elements, %d rounds, %d workers", size, rounds, pool.NumWorkers())

	var best hwy.Best
	in := hwy.MakeAligned[float32](size, best.Width())
	out32 := hwy.MakeAligned[float32](size, best.Width())
	for i := range in {
		in[i] = float32(i % 1000)
	}

	if err := crossCheck(in); err != nil {
		return err
	}

	heading(cmd, fmt.Sprintf("%d float32 elements, %d rounds", size, rounds))
	for _, m := range append(measurements[hwy.Best](pool, in, out32), measurements[hwy.Generic](pool, in, out32)...) {
		start := time.Now()
		for range rounds {
			m.run()
		}
		per := time.Since(start) / time.Duration(rounds)
		gbps := float64(size*4) / per.Seconds() / 1e9
		fmt.Fprintf(out, "  %-28s %12v  %7.2f GB/s\n", m.name, per, gbps)
	}
	return nil
}

// crossCheck compares the exact Count results of Best and Generic before any
// timing is reported.
func crossCheck(in []float32) error {
	for _, v := range []float32{0, 17, 999} {
		got, want := algo.Count[hwy.Best](in, v), algo.Count[hwy.Generic](in, v)
		if got != want {
			logging.Errorf("bench: %s count(%v) = %d, generic count = %d", hwy.BestID(), v, got, want)
			return fmt.Errorf("%s and generic disagree on count(%v)", hwy.BestID(), v)
		}
	}
	logging.Infof("bench: %s and generic agree on the cross-check", hwy.BestID())
	return nil
}

func measurements[A hwy.Arch](pool *workerpool.Pool, in, out []float32) []measurement {
	var a A
	two := hwy.Splat[A](float32(2))
	f := func(x float32) float32 { return x * 2 }
	fb := func(x hwy.Batch[float32, A]) hwy.Batch[float32, A] { return x.Mul(two) }
	name := func(op string) string { return fmt.Sprintf("%s/%s", op, a.Name()) }
	return []measurement{
		{name("transform"), func() { algo.Transform(in, out, f, fb) }},
		{name("parallel-transform"), func() { algo.ParallelTransform(pool, in, out, f, fb) }},
		{name("sum"), func() { _ = algo.Sum[A](in, 0) }},
		{name("count"), func() { _ = algo.Count[A](in, 17) }},
	}
}
