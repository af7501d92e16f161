package primitive

import (
	"math"
	"strings"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the integer type a dispatch table switches on.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Kinds lists every valid kind in declaration order.
func Kinds() []KindEnum {
	res := make([]KindEnum, 0, KindTotal-1)
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		res = append(res, k)
	}

	return res
}

// Parse returns the kind for a Go type name such as "int32".
// The zero KindEnum is returned for unknown names.
func Parse(name string) KindEnum {
	for _, k := range Kinds() {
		if k.TypeName() == name {
			return k
		}
	}

	return 0
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint8, KindUint16, KindUint32:
		return true
	}
}

// TypeName is the Go spelling of the kind, e.g. "uint16".
func (k KindEnum) TypeName() string {
	return strings.ToLower(strings.TrimPrefix(k.String(), "Kind"))
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only valid integer kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64:
		return 64
	}
}

// Min is the smallest value representable by the kind.
func (k KindEnum) Min() int64 {
	if k.IsUnsigned() {
		return 0
	}

	return -1 << (k.Bits() - 1)
}

// Max is the largest value representable by the kind.
func (k KindEnum) Max() int64 {
	if k.IsUnsigned() {
		return 1<<k.Bits() - 1
	}

	return 1<<(k.Bits()-1) - 1
}
