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

// Package dot computes many dot products at once, sequentially or spread
// across a worker pool.
package dot

import (
	"github.com/ajroetker/simdbatch/hwy"
	"github.com/ajroetker/simdbatch/hwy/contrib/algo"
	"github.com/ajroetker/simdbatch/hwy/contrib/workerpool"
)

// Batch computes multiple dot products.
// For each i, it computes the dot product of queries[i] and keys[i] over
// their common length.
//
// Returns a slice of results with length min(len(queries), len(keys)).
func Batch[A hwy.Arch, T hwy.Lanes](queries, keys [][]T) []T {
	n := min(len(queries), len(keys))
	results := make([]T, n)
	for i := range n {
		results[i] = algo.Dot[A](queries[i], keys[i])
	}
	return results
}

// ParallelBatch is Batch with the pairs distributed over pool.
func ParallelBatch[A hwy.Arch, T hwy.Lanes](pool *workerpool.Pool, queries, keys [][]T) []T {
	n := min(len(queries), len(keys))
	results := make([]T, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = algo.Dot[A](queries[i], keys[i])
		}
	})
	return results
}
