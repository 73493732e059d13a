package hwy

// Split bridges run a kernel written for a narrow register over a wider one,
// one narrow chunk at a time, the way AVX code reuses SSE kernels on each
// 128-bit half. Lanes never straddle a chunk because every width is a multiple
// of every lane size.

func splitUnary(f UnaryFunc, wide, narrow int) UnaryFunc {
	return func(a Register) (r Register) {
		for off := 0; off < wide; off += narrow {
			c := f(chunk(&a, off, narrow))
			putChunk(&r, off, narrow, &c)
		}
		return r
	}
}

func splitBinary(f BinaryFunc, wide, narrow int) BinaryFunc {
	return func(a, b Register) (r Register) {
		for off := 0; off < wide; off += narrow {
			c := f(chunk(&a, off, narrow), chunk(&b, off, narrow))
			putChunk(&r, off, narrow, &c)
		}
		return r
	}
}

func splitSelect(f SelectFunc, wide, narrow int) SelectFunc {
	return func(m, yes, no Register) (r Register) {
		for off := 0; off < wide; off += narrow {
			c := f(chunk(&m, off, narrow), chunk(&yes, off, narrow), chunk(&no, off, narrow))
			putChunk(&r, off, narrow, &c)
		}
		return r
	}
}

func splitShift(f ShiftFunc, wide, narrow int) ShiftFunc {
	return func(a Register, s uint) (r Register) {
		for off := 0; off < wide; off += narrow {
			c := f(chunk(&a, off, narrow), s)
			putChunk(&r, off, narrow, &c)
		}
		return r
	}
}

// splitReduce reduces each chunk and folds the partial results left to right
// with combine.
func splitReduce[T Lanes](f ReduceFunc[T], wide, narrow int, combine func(a, b T) T) ReduceFunc[T] {
	return func(a Register) T {
		acc := f(chunk(&a, 0, narrow))
		for off := narrow; off < wide; off += narrow {
			acc = combine(acc, f(chunk(&a, off, narrow)))
		}
		return acc
	}
}

// splitSplat broadcasts into one narrow register and replicates it.
func splitSplat[T Lanes](f SplatFunc[T], wide, narrow int) SplatFunc[T] {
	return func(v T) (r Register) {
		c := f(v)
		for off := 0; off < wide; off += narrow {
			putChunk(&r, off, narrow, &c)
		}
		return r
	}
}
