// Package frame reads and writes uncompressed packet frames: a VarInt length
// prefix covering the packet id and body, then the VarInt packet id, then the
// body bytes. The codec packages never see the frame; they are handed exactly
// one value's bytes.
package frame

import (
	"bytes"
	"errors"
	"io"

	"github.com/danmuck/mcwire/internal/protocol"
)

var (
	ErrPacketTooLarge = errors.New("frame: packet too large")
	ErrNegativeLength = errors.New("frame: negative packet length")
	ErrLengthTooShort = errors.New("frame: length shorter than packet id")
)

// Packet is one framed message: its id and the raw body the codec layer
// decodes.
type Packet struct {
	ID   int32
	Body []byte
}

// Limits constrains frame decode/encode memory use.
type Limits struct {
	MaxPacketBytes int
}

func DefaultLimits() Limits {
	return Limits{MaxPacketBytes: 2 * 1024 * 1024}
}

// ReadPacket reads one length-prefixed packet from r.
func ReadPacket(r protocol.Reader, limits Limits) (Packet, error) {
	length, err := protocol.ReadVarInt(r)
	if err != nil {
		return Packet{}, err
	}
	if length < 0 {
		return Packet{}, ErrNegativeLength
	}
	if int(length) > limits.MaxPacketBytes {
		return Packet{}, ErrPacketTooLarge
	}

	raw := make([]byte, length)
	if _, err := io.ReadFull(r, raw); err != nil {
		return Packet{}, protocol.ErrTruncated
	}

	br := bytes.NewReader(raw)
	id, err := protocol.ReadVarInt(br)
	if err != nil {
		return Packet{}, ErrLengthTooShort
	}
	body := make([]byte, br.Len())
	copy(body, raw[len(raw)-br.Len():])
	return Packet{ID: id, Body: body}, nil
}

// WritePacket writes p as one length-prefixed frame.
func WritePacket(w io.Writer, p Packet, limits Limits) error {
	total := protocol.VarIntLen(p.ID) + len(p.Body)
	if total > limits.MaxPacketBytes {
		return ErrPacketTooLarge
	}
	if err := protocol.WriteVarInt(w, int32(total)); err != nil {
		return err
	}
	if err := protocol.WriteVarInt(w, p.ID); err != nil {
		return err
	}
	if len(p.Body) == 0 {
		return nil
	}
	_, err := w.Write(p.Body)
	return err
}
