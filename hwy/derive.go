package hwy

// derive fills entries that can be composed from primitives already present
// in k, attributing them to tag id. The composed kernels read k's fields when
// called, so a primitive that is filled later (from an ancestor or the
// emulation) is picked up automatically.
//
// Comparisons that would be wrong for NaN lanes under negation are built from
// their ordered primitives instead: Le is Lt|Eq and Ge is Gt|Eq.
func (k *Kernels[T]) derive(id ArchID) {
	if k.Not == nil && k.Xor != nil && k.Eq != nil {
		k.Not = func(a Register) Register { return k.Xor(a, k.allOnes()) }
		k.note("Not", id, Derived)
	}
	if k.Ne == nil && k.Eq != nil && k.Not != nil {
		k.Ne = func(a, b Register) Register { return k.Not(k.Eq(a, b)) }
		k.note("Ne", id, Derived)
	}
	if k.Lt == nil && k.Gt != nil {
		k.Lt = func(a, b Register) Register { return k.Gt(b, a) }
		k.note("Lt", id, Derived)
	}
	if k.Gt == nil && k.Lt != nil {
		k.Gt = func(a, b Register) Register { return k.Lt(b, a) }
		k.note("Gt", id, Derived)
	}
	if k.Le == nil && k.Lt != nil && k.Eq != nil && k.Or != nil {
		k.Le = func(a, b Register) Register { return k.Or(k.Lt(a, b), k.Eq(a, b)) }
		k.note("Le", id, Derived)
	}
	if k.Ge == nil && k.Gt != nil && k.Eq != nil && k.Or != nil {
		k.Ge = func(a, b Register) Register { return k.Or(k.Gt(a, b), k.Eq(a, b)) }
		k.note("Ge", id, Derived)
	}
	if k.AndNot == nil && k.And != nil && k.Not != nil {
		k.AndNot = func(a, b Register) Register { return k.And(a, k.Not(b)) }
		k.note("AndNot", id, Derived)
	}
	// 0 - x loses the sign of zero, so float Neg is never derived.
	if k.Neg == nil && k.Sub != nil && !KindOf[T]().IsFloat() {
		k.Neg = func(a Register) Register { return k.Sub(Register{}, a) }
		k.note("Neg", id, Derived)
	}
	if k.Select == nil && k.And != nil && k.Or != nil && k.AndNot != nil {
		k.Select = func(m, yes, no Register) Register {
			return k.Or(k.And(m, yes), k.AndNot(no, m))
		}
		k.note("Select", id, Derived)
	}
}

// allOnes returns a register whose lanes are all ones, built from Eq so that
// the bytes past the tag's width stay zero.
func (k *Kernels[T]) allOnes() Register {
	var zero Register
	return k.Eq(zero, zero)
}
