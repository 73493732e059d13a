// Package hwy provides fixed-width SIMD batches whose kernels are selected at
// build time.
//
// A Batch[T, A] holds one native register of lanes of type T for the
// architecture tag A. Every operation resolves to a kernel registered for the
// pair (T, A); tags without a direct kernel fall back along their capability
// chain to the generic scalar emulation, so every combination of element type
// and tag is usable.
//
// Basic usage:
//
//	import "github.com/ajroetker/simdbatch/hwy"
//
//	a := hwy.Load[hwy.Best](data1)
//	b := hwy.Load[hwy.Best](data2)
//	a.AddAssign(b)
//	a.Store(output)
//
// The architecture is fixed by the build configuration: GOARCH, GOAMD64 and the
// hwy_generic build tag select hwy.Best. Building with the hwydebug tag enables
// alignment and lane index checks.
package hwy

import (
	"fmt"
	"unsafe"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Kind identifies a lane element type.
type Kind uint8

const (
	KindInt8 Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64

	numKinds
)

var kindNames = [numKinds]string{
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

// String returns the Go name of the element type.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// KindOf returns the Kind of T.
func KindOf[T Lanes]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	default:
		return KindFloat64
	}
}

// sizeOf returns the size of T in bytes.
func sizeOf[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}
