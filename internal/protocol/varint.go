package protocol

import (
	"io"
)

// VarIntMaxLen is the longest legal VarInt encoding of a 32-bit value.
const VarIntMaxLen = 5

const (
	varIntSegmentBits = 0x7F
	varIntContinueBit = 0x80
)

// Reader is the byte source decode primitives operate on. *bytes.Reader and
// *bufio.Reader both satisfy it.
type Reader interface {
	io.Reader
	io.ByteReader
}

// WriteVarInt writes v as a 1-5 byte VarInt. The encoding is always minimal:
// negative values occupy all five bytes because the two's-complement bit
// pattern is zero-extended, never sign-extended.
func WriteVarInt(w io.Writer, v int32) error {
	var buf [VarIntMaxLen]byte
	n := PutVarInt(buf[:], v)
	_, err := w.Write(buf[:n])
	return err
}

// PutVarInt encodes v into buf and returns the number of bytes written.
// buf must be at least VarIntMaxLen bytes.
func PutVarInt(buf []byte, v int32) int {
	u := uint32(v)
	i := 0
	for {
		b := byte(u & varIntSegmentBits)
		u >>= 7
		if u != 0 {
			b |= varIntContinueBit
		}
		buf[i] = b
		i++
		if u == 0 {
			return i
		}
	}
}

// ReadVarInt decodes a VarInt from r. It fails with ErrMalformedVarInt if no
// terminating byte appears within VarIntMaxLen bytes, and ErrTruncated if the
// input ends mid-sequence.
func ReadVarInt(r io.ByteReader) (int32, error) {
	var u uint32
	for i := 0; i < VarIntMaxLen; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, ErrTruncated
		}
		u |= uint32(b&varIntSegmentBits) << (7 * i)
		if b&varIntContinueBit == 0 {
			return int32(u), nil
		}
	}
	return 0, ErrMalformedVarInt
}

// VarIntLen reports the encoded size of v without encoding it.
func VarIntLen(v int32) int {
	u := uint32(v)
	n := 1
	for u >= varIntContinueBit {
		u >>= 7
		n++
	}
	return n
}
