package protocol

import (
	"io"
	"math"
)

// OptionalInt is an optional uint32 folded into a single non-negative wire
// value: absent encodes as 0, present v encodes as v+1. math.MaxUint32 is
// reserved as the shifted absent marker and cannot be carried as a payload.
type OptionalInt struct {
	raw uint32
}

// NewOptionalInt wraps v. Constructing from math.MaxUint32 fails with
// ErrUnrepresentableOptionalValue instead of wrapping around.
func NewOptionalInt(v uint32) (OptionalInt, error) {
	if v == math.MaxUint32 {
		return OptionalInt{}, ErrUnrepresentableOptionalValue
	}
	return OptionalInt{raw: v + 1}, nil
}

// NoOptionalInt returns the absent value. The zero OptionalInt is also absent.
func NoOptionalInt() OptionalInt {
	return OptionalInt{}
}

// Get returns the wrapped value and whether one is present.
func (o OptionalInt) Get() (uint32, bool) {
	if o.raw == 0 {
		return 0, false
	}
	return o.raw - 1, true
}

// Write encodes the shifted value as a VarInt.
func (o OptionalInt) Write(w io.Writer) error {
	return WriteVarInt(w, int32(o.raw))
}

// ReadOptionalInt decodes the shifted VarInt form.
func ReadOptionalInt(r io.ByteReader) (OptionalInt, error) {
	v, err := ReadVarInt(r)
	if err != nil {
		return OptionalInt{}, err
	}
	return OptionalInt{raw: uint32(v)}, nil
}
