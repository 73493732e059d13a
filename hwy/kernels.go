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
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
)

// Kernel signatures. Kernels are pure: they read their register arguments
// and return a new register. Comparison kernels return a mask register whose
// lanes are all ones (true) or all zeros (false).
type (
	UnaryFunc           func(a Register) Register
	BinaryFunc          func(a, b Register) Register
	SelectFunc          func(mask, yes, no Register) Register
	ShiftFunc           func(a Register, s uint) Register
	ReduceFunc[T Lanes] func(a Register) T
	SplatFunc[T Lanes]  func(v T) Register
)

// Kernels is the operation table for one element type on one tag. A table
// passed to RegisterKernels may leave any entry nil; resolution fills it by
// derivation, from the tag's ancestors, or from the generic emulation.
type Kernels[T Lanes] struct {
	Splat SplatFunc[T]

	Add, Sub, Mul, Div BinaryFunc
	Min, Max           BinaryFunc
	Neg, Abs           UnaryFunc

	// Rem and the shifts exist for integer lanes only.
	Rem        BinaryFunc
	Shl, Shr   ShiftFunc
	ShlV, ShrV BinaryFunc

	// Sqrt exists for floating-point lanes only.
	Sqrt UnaryFunc

	And, Or, Xor, AndNot BinaryFunc
	Not                  UnaryFunc

	Eq, Ne, Lt, Le, Gt, Ge BinaryFunc
	Select                 SelectFunc

	ReduceAdd, ReduceMin, ReduceMax ReduceFunc[T]

	origins map[string]KernelOrigin
}

// Resolution describes how a resolved kernel entry was obtained.
type Resolution uint8

const (
	// Direct entries were registered for the tag itself.
	Direct Resolution = iota
	// Derived entries are composed from primitives of the same tag.
	Derived
	// Inherited entries come from an ancestor tag of the same width.
	Inherited
	// Split entries run an ancestor's narrower kernel once per chunk.
	Split
	// Emulated entries are the generic scalar loops.
	Emulated
)

func (r Resolution) String() string {
	switch r {
	case Direct:
		return "direct"
	case Derived:
		return "derived"
	case Inherited:
		return "inherited"
	case Split:
		return "split"
	case Emulated:
		return "emulated"
	default:
		return "unknown"
	}
}

// KernelOrigin records where one resolved entry came from.
type KernelOrigin struct {
	Op   string
	Arch ArchID
	How  Resolution
}

func (k *Kernels[T]) note(op string, id ArchID, how Resolution) {
	if k.origins == nil {
		k.origins = make(map[string]KernelOrigin)
	}
	k.origins[op] = KernelOrigin{Op: op, Arch: id, How: how}
}

// tableSet holds the registered and resolved tables of one element type.
type tableSet[T Lanes] struct {
	mu       sync.Mutex
	own      [numArchs]*Kernels[T]
	resolved [numArchs]atomic.Pointer[Kernels[T]]
}

var tables = [numKinds]any{
	KindInt8:    new(tableSet[int8]),
	KindInt16:   new(tableSet[int16]),
	KindInt32:   new(tableSet[int32]),
	KindInt64:   new(tableSet[int64]),
	KindUint8:   new(tableSet[uint8]),
	KindUint16:  new(tableSet[uint16]),
	KindUint32:  new(tableSet[uint32]),
	KindUint64:  new(tableSet[uint64]),
	KindFloat32: new(tableSet[float32]),
	KindFloat64: new(tableSet[float64]),
}

func tablesFor[T Lanes]() *tableSet[T] {
	return tables[KindOf[T]()].(*tableSet[T])
}

// kernelsOf returns the resolved table for (T, A).
func kernelsOf[T Lanes, A Arch]() *Kernels[T] {
	var a A
	return tablesFor[T]().get(a.ID())
}

// RegisterKernels installs k as the direct kernels for element type T on tag
// id, overriding entries registered earlier. Tables for tags the build does
// not enable are ignored and false is returned. Registration belongs in init
// functions; registering a pair that has already been resolved panics.
func RegisterKernels[T Lanes](id ArchID, k *Kernels[T]) bool {
	if id >= numArchs {
		panic(fmt.Sprintf("hwy: RegisterKernels: unknown tag %d", id))
	}
	if !id.Enabled() || k == nil {
		return false
	}
	return tablesFor[T]().register(id, k)
}

// ResolvedKernels returns the complete table used for T on tag id.
func ResolvedKernels[T Lanes](id ArchID) *Kernels[T] {
	return tablesFor[T]().get(id)
}

// KernelOrigins reports, per operation, which tag supplied the resolved entry
// for T on id and how. The result is sorted by operation name.
func KernelOrigins[T Lanes](id ArchID) []KernelOrigin {
	k := tablesFor[T]().get(id)
	out := make([]KernelOrigin, 0, len(k.origins))
	for _, o := range k.origins {
		out = append(out, o)
	}
	slices.SortFunc(out, func(a, b KernelOrigin) int {
		switch {
		case a.Op < b.Op:
			return -1
		case a.Op > b.Op:
			return 1
		}
		return 0
	})
	return out
}

func (s *tableSet[T]) register(id ArchID, k *Kernels[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for a := range numArchs {
		if s.resolved[a].Load() == nil {
			continue
		}
		if slices.Contains(Chain(a), id) {
			panic(fmt.Sprintf("hwy: RegisterKernels: %s kernels on %s registered after use",
				KindOf[T](), id))
		}
	}
	if s.own[id] == nil {
		s.own[id] = new(Kernels[T])
	}
	for _, sl := range slotsOf[T]() {
		if sl.isSet(k) {
			sl.copy(s.own[id], k, 0, 0)
		}
	}
	return true
}

func (s *tableSet[T]) get(id ArchID) *Kernels[T] {
	if k := s.resolved[id].Load(); k != nil {
		return k
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if k := s.resolved[id].Load(); k != nil {
		return k
	}
	k := resolve(&s.own, id)
	s.resolved[id].Store(k)
	return k
}

// resolve builds the complete table for tag id from the registered tables.
// Entries are taken, in order, from id's own table, from derivations over
// what is present so far, from each ancestor (split into chunks when the
// ancestor is narrower) and finally from the generic emulation at id's width.
func resolve[T Lanes](own *[numArchs]*Kernels[T], id ArchID) *Kernels[T] {
	k := new(Kernels[T])
	slots := slotsOf[T]()
	wide := id.Width()
	for _, a := range Chain(id) {
		src := own[a]
		if src == nil {
			continue
		}
		narrow := a.Width()
		how := Direct
		switch {
		case a == id:
		case narrow < wide:
			how = Split
		default:
			how = Inherited
		}
		for _, sl := range slots {
			if !sl.isSet(k) && sl.isSet(src) {
				sl.copy(k, src, wide, narrow)
				k.note(sl.name, a, how)
			}
		}
		k.derive(a)
	}

	emu := genericKernels[T](wide / sizeOf[T]())
	for _, sl := range slots {
		if !sl.isSet(k) && sl.isSet(emu) {
			sl.copy(k, emu, wide, wide)
			k.note(sl.name, ArchGeneric, Emulated)
		}
	}

	isFloat := KindOf[T]().IsFloat()
	for _, sl := range slots {
		if sl.claimedBy(isFloat) && !sl.isSet(k) {
			panic(fmt.Sprintf("hwy: no %s kernel for %s on %s", sl.name, KindOf[T](), id))
		}
	}
	return k
}

type opClass uint8

const (
	anyLanes opClass = iota
	integerLanes
	floatLanes
)

// slot describes one field of Kernels generically so that registration and
// resolution can walk the table.
type slot[T Lanes] struct {
	name  string
	class opClass
	isSet func(k *Kernels[T]) bool
	// copy moves src's entry into dst, splitting it into narrow-byte chunks
	// when narrow < wide.
	copy func(dst, src *Kernels[T], wide, narrow int)
}

func (s slot[T]) claimedBy(isFloat bool) bool {
	switch s.class {
	case integerLanes:
		return !isFloat
	case floatLanes:
		return isFloat
	}
	return true
}

func unarySlot[T Lanes](name string, class opClass, field func(*Kernels[T]) *UnaryFunc) slot[T] {
	return slot[T]{
		name: name, class: class,
		isSet: func(k *Kernels[T]) bool { return *field(k) != nil },
		copy: func(dst, src *Kernels[T], wide, narrow int) {
			f := *field(src)
			if narrow < wide {
				f = splitUnary(f, wide, narrow)
			}
			*field(dst) = f
		},
	}
}

func binarySlot[T Lanes](name string, class opClass, field func(*Kernels[T]) *BinaryFunc) slot[T] {
	return slot[T]{
		name: name, class: class,
		isSet: func(k *Kernels[T]) bool { return *field(k) != nil },
		copy: func(dst, src *Kernels[T], wide, narrow int) {
			f := *field(src)
			if narrow < wide {
				f = splitBinary(f, wide, narrow)
			}
			*field(dst) = f
		},
	}
}

func shiftSlot[T Lanes](name string, field func(*Kernels[T]) *ShiftFunc) slot[T] {
	return slot[T]{
		name: name, class: integerLanes,
		isSet: func(k *Kernels[T]) bool { return *field(k) != nil },
		copy: func(dst, src *Kernels[T], wide, narrow int) {
			f := *field(src)
			if narrow < wide {
				f = splitShift(f, wide, narrow)
			}
			*field(dst) = f
		},
	}
}

func reduceSlot[T Lanes](name string, field func(*Kernels[T]) *ReduceFunc[T], combine func(a, b T) T) slot[T] {
	return slot[T]{
		name: name, class: anyLanes,
		isSet: func(k *Kernels[T]) bool { return *field(k) != nil },
		copy: func(dst, src *Kernels[T], wide, narrow int) {
			f := *field(src)
			if narrow < wide {
				f = splitReduce(f, wide, narrow, combine)
			}
			*field(dst) = f
		},
	}
}

func slotsOf[T Lanes]() []slot[T] {
	return []slot[T]{
		{
			name: "Splat", class: anyLanes,
			isSet: func(k *Kernels[T]) bool { return k.Splat != nil },
			copy: func(dst, src *Kernels[T], wide, narrow int) {
				f := src.Splat
				if narrow < wide {
					f = splitSplat(f, wide, narrow)
				}
				dst.Splat = f
			},
		},
		binarySlot("Add", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Add }),
		binarySlot("Sub", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Sub }),
		binarySlot("Mul", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Mul }),
		binarySlot("Div", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Div }),
		binarySlot("Min", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Min }),
		binarySlot("Max", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Max }),
		unarySlot("Neg", anyLanes, func(k *Kernels[T]) *UnaryFunc { return &k.Neg }),
		unarySlot("Abs", anyLanes, func(k *Kernels[T]) *UnaryFunc { return &k.Abs }),
		binarySlot("Rem", integerLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Rem }),
		shiftSlot("Shl", func(k *Kernels[T]) *ShiftFunc { return &k.Shl }),
		shiftSlot("Shr", func(k *Kernels[T]) *ShiftFunc { return &k.Shr }),
		binarySlot("ShlV", integerLanes, func(k *Kernels[T]) *BinaryFunc { return &k.ShlV }),
		binarySlot("ShrV", integerLanes, func(k *Kernels[T]) *BinaryFunc { return &k.ShrV }),
		unarySlot("Sqrt", floatLanes, func(k *Kernels[T]) *UnaryFunc { return &k.Sqrt }),
		binarySlot("And", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.And }),
		binarySlot("Or", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Or }),
		binarySlot("Xor", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Xor }),
		binarySlot("AndNot", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.AndNot }),
		unarySlot("Not", anyLanes, func(k *Kernels[T]) *UnaryFunc { return &k.Not }),
		binarySlot("Eq", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Eq }),
		binarySlot("Ne", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Ne }),
		binarySlot("Lt", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Lt }),
		binarySlot("Le", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Le }),
		binarySlot("Gt", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Gt }),
		binarySlot("Ge", anyLanes, func(k *Kernels[T]) *BinaryFunc { return &k.Ge }),
		{
			name: "Select", class: anyLanes,
			isSet: func(k *Kernels[T]) bool { return k.Select != nil },
			copy: func(dst, src *Kernels[T], wide, narrow int) {
				f := src.Select
				if narrow < wide {
					f = splitSelect(f, wide, narrow)
				}
				dst.Select = f
			},
		},
		reduceSlot("ReduceAdd", func(k *Kernels[T]) *ReduceFunc[T] { return &k.ReduceAdd }, func(a, b T) T { return a + b }),
		reduceSlot("ReduceMin", func(k *Kernels[T]) *ReduceFunc[T] { return &k.ReduceMin }, scalarMin[T]),
		reduceSlot("ReduceMax", func(k *Kernels[T]) *ReduceFunc[T] { return &k.ReduceMax }, scalarMax[T]),
	}
}
