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

// Package algo runs hwy batches over slices of any length and alignment.
//
// Every algorithm splits its range into three segments using
// hwy.AlignmentOffset and hwy.Segments:
//
//	[0, begin)       scalar head, one element at a time with the scalar function
//	[begin, end)     whole batches, loaded with hwy.LoadAligned
//	[end, len)       scalar tail
//
// The result matches a plain scalar loop over the same elements, except for
// Reduce, whose vector part folds in a different order (see Reduce).
//
// # Transform API
//
//	double := func(x float32) float32 { return x * 2 }
//	doubleB := func(b hwy.Batch[float32, hwy.Best]) hwy.Batch[float32, hwy.Best] {
//	    return b.Add(b)
//	}
//	algo.Transform(in, out, double, doubleB)
//
// Transform2 takes two inputs. ParallelTransform spreads a Transform over a
// workerpool.Pool.
//
// # Reductions and searches
//
//   - Reduce, Sum: fold a slice with a scalar and a batch function
//   - CountIf, Count: count matches
//   - FindIf, Find, Contains, AllOf, AnyOf, NoneOf: searches driven by a Predicate
//
// # Build Requirements
//
// The package has no build requirements of its own: it uses whatever kernels
// hwy resolved for the tag A, native or emulated.
package algo
