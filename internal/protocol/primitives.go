package protocol

import (
	"encoding/binary"
	"io"
	"math"
)

// WriteByte writes one raw byte.
func WriteByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

// ReadByte reads one raw byte, mapping EOF to ErrTruncated.
func ReadByte(r io.ByteReader) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, ErrTruncated
	}
	return b, nil
}

// WriteBool writes b as a single 0/1 byte.
func WriteBool(w io.Writer, b bool) error {
	v := byte(0)
	if b {
		v = 1
	}
	return WriteByte(w, v)
}

// ReadBool reads a single byte and rejects anything but 0 or 1.
func ReadBool(r io.ByteReader) (bool, error) {
	b, err := ReadByte(r)
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidBool
	}
}

// WriteFloat32 writes v as 4 big-endian bytes of its IEEE-754 bit pattern.
func WriteFloat32(w io.Writer, v float32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], math.Float32bits(v))
	_, err := w.Write(buf[:])
	return err
}

// ReadFloat32 reads 4 big-endian bytes as an IEEE-754 single.
func ReadFloat32(r io.Reader) (float32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, ErrTruncated
	}
	return math.Float32frombits(binary.BigEndian.Uint32(buf[:])), nil
}

// WriteInt32 writes v as 4 big-endian bytes. Not a VarInt; parser range
// payloads use fixed-width fields.
func WriteInt32(w io.Writer, v int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

// ReadInt32 reads 4 big-endian bytes as a signed 32-bit integer.
func ReadInt32(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, ErrTruncated
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

// WriteInt64 writes v as 8 big-endian bytes.
func WriteInt64(w io.Writer, v int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

// ReadInt64 reads 8 big-endian bytes as a signed 64-bit integer.
func ReadInt64(r io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, ErrTruncated
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}
