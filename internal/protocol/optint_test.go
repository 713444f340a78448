package protocol

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestOptionalIntAbsentEncodesZero(t *testing.T) {
	var buf bytes.Buffer
	if err := NoOptionalInt().Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x00}) {
		t.Fatalf("absent encoding: got %#v", buf.Bytes())
	}
	out, err := ReadOptionalInt(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, ok := out.Get(); ok {
		t.Fatalf("decoded absent as present")
	}
}

func TestOptionalIntZeroEncodesOne(t *testing.T) {
	o, err := NewOptionalInt(0)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	var buf bytes.Buffer
	if err := o.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x01}) {
		t.Fatalf("Some(0) encoding: got %#v", buf.Bytes())
	}
	out, err := ReadOptionalInt(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	v, ok := out.Get()
	if !ok || v != 0 {
		t.Fatalf("decoded Some(0) as (%d, %v)", v, ok)
	}
}

func TestOptionalIntRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 41, math.MaxUint32 - 1} {
		o, err := NewOptionalInt(v)
		if err != nil {
			t.Fatalf("new %d: %v", v, err)
		}
		var buf bytes.Buffer
		if err := o.Write(&buf); err != nil {
			t.Fatalf("write %d: %v", v, err)
		}
		out, err := ReadOptionalInt(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("read %d: %v", v, err)
		}
		got, ok := out.Get()
		if !ok || got != v {
			t.Fatalf("round trip %d: got (%d, %v)", v, got, ok)
		}
	}
}

func TestOptionalIntRejectsMaxUint32(t *testing.T) {
	_, err := NewOptionalInt(math.MaxUint32)
	if !errors.Is(err, ErrUnrepresentableOptionalValue) {
		t.Fatalf("expected ErrUnrepresentableOptionalValue, got %v", err)
	}
}
