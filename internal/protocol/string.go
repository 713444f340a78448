package protocol

import (
	"io"
	"unicode/utf8"
)

// NameMaxChars is the character bound shared by node names and identifiers.
const NameMaxChars = 32767

// WriteString writes s as a VarInt byte-length prefix followed by its UTF-8
// bytes. Bounds are inclusive character counts, not byte counts; a string
// outside them fails with ErrStringLengthOutOfBounds before anything is
// written.
func WriteString(w io.Writer, s string, minChars, maxChars int) error {
	n := utf8.RuneCountInString(s)
	if n < minChars || n > maxChars {
		return ErrStringLengthOutOfBounds
	}
	if err := WriteVarInt(w, int32(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}

// ReadString reads a VarInt byte-length prefix and that many bytes, then
// validates UTF-8 and the inclusive character-count bounds.
func ReadString(r Reader, minChars, maxChars int) (string, error) {
	byteLen, err := ReadVarInt(r)
	if err != nil {
		return "", err
	}
	if byteLen < 0 {
		return "", ErrStringLengthOutOfBounds
	}
	buf := make([]byte, byteLen)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", ErrTruncated
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	n := utf8.RuneCount(buf)
	if n < minChars || n > maxChars {
		return "", ErrStringLengthOutOfBounds
	}
	return string(buf), nil
}
