package command

import (
	"io"

	"github.com/danmuck/mcwire/internal/protocol"
)

// Parser ids from the dispatch wire contract. The protocol defines many more;
// every undeclared id is a hard decode failure, never a guessed default.
const (
	ParserIDBool    int32 = 0
	ParserIDFloat   int32 = 1
	ParserIDDouble  int32 = 2 // reserved, unimplemented
	ParserIDInteger int32 = 3
	ParserIDLong    int32 = 4
)

// Parser selects the client-side validator for an Argument node. The wire
// form is a VarInt id tag followed by the id's payload.
type Parser interface {
	ParserID() int32
	encodePayload(w io.Writer) error
}

// BoolParser accepts "true"/"false" and carries no payload.
type BoolParser struct{}

func (BoolParser) ParserID() int32                 { return ParserIDBool }
func (BoolParser) encodePayload(w io.Writer) error { return nil }

// BrigadierFloat is a float argument with optional inclusive bounds.
type BrigadierFloat struct {
	Min *float32
	Max *float32
}

// BrigadierInteger is a 32-bit integer argument with optional inclusive bounds.
type BrigadierInteger struct {
	Min *int32
	Max *int32
}

// BrigadierLong is a 64-bit integer argument with optional inclusive bounds.
type BrigadierLong struct {
	Min *int64
	Max *int64
}

func (BrigadierFloat) ParserID() int32   { return ParserIDFloat }
func (BrigadierInteger) ParserID() int32 { return ParserIDInteger }
func (BrigadierLong) ParserID() int32    { return ParserIDLong }

// Range payload flags: bit 0 min present, bit 1 max present. A declared-absent
// bound contributes zero bytes. The codec does not order-check min against
// max; that is the caller's concern.
func rangeFlags(hasMin, hasMax bool) byte {
	var f byte
	if hasMin {
		f |= 0x01
	}
	if hasMax {
		f |= 0x02
	}
	return f
}

func (p BrigadierFloat) encodePayload(w io.Writer) error {
	if err := protocol.WriteByte(w, rangeFlags(p.Min != nil, p.Max != nil)); err != nil {
		return err
	}
	if p.Min != nil {
		if err := protocol.WriteFloat32(w, *p.Min); err != nil {
			return err
		}
	}
	if p.Max != nil {
		if err := protocol.WriteFloat32(w, *p.Max); err != nil {
			return err
		}
	}
	return nil
}

func (p BrigadierInteger) encodePayload(w io.Writer) error {
	if err := protocol.WriteByte(w, rangeFlags(p.Min != nil, p.Max != nil)); err != nil {
		return err
	}
	if p.Min != nil {
		if err := protocol.WriteInt32(w, *p.Min); err != nil {
			return err
		}
	}
	if p.Max != nil {
		if err := protocol.WriteInt32(w, *p.Max); err != nil {
			return err
		}
	}
	return nil
}

func (p BrigadierLong) encodePayload(w io.Writer) error {
	if err := protocol.WriteByte(w, rangeFlags(p.Min != nil, p.Max != nil)); err != nil {
		return err
	}
	if p.Min != nil {
		if err := protocol.WriteInt64(w, *p.Min); err != nil {
			return err
		}
	}
	if p.Max != nil {
		if err := protocol.WriteInt64(w, *p.Max); err != nil {
			return err
		}
	}
	return nil
}

func encodeParser(w io.Writer, p Parser) error {
	if p == nil {
		return protocol.ErrInvalidParserID
	}
	if err := protocol.WriteVarInt(w, p.ParserID()); err != nil {
		return err
	}
	return p.encodePayload(w)
}

func decodeParser(r protocol.Reader) (Parser, error) {
	id, err := protocol.ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	switch id {
	case ParserIDBool:
		return BoolParser{}, nil
	case ParserIDFloat:
		return decodeBrigadierFloat(r)
	case ParserIDInteger:
		return decodeBrigadierInteger(r)
	case ParserIDLong:
		return decodeBrigadierLong(r)
	default:
		return nil, protocol.ErrInvalidParserID
	}
}

func decodeBrigadierFloat(r protocol.Reader) (BrigadierFloat, error) {
	flags, err := protocol.ReadByte(r)
	if err != nil {
		return BrigadierFloat{}, err
	}
	var p BrigadierFloat
	if flags&0x01 != 0 {
		v, err := protocol.ReadFloat32(r)
		if err != nil {
			return BrigadierFloat{}, err
		}
		p.Min = &v
	}
	if flags&0x02 != 0 {
		v, err := protocol.ReadFloat32(r)
		if err != nil {
			return BrigadierFloat{}, err
		}
		p.Max = &v
	}
	return p, nil
}

func decodeBrigadierInteger(r protocol.Reader) (BrigadierInteger, error) {
	flags, err := protocol.ReadByte(r)
	if err != nil {
		return BrigadierInteger{}, err
	}
	var p BrigadierInteger
	if flags&0x01 != 0 {
		v, err := protocol.ReadInt32(r)
		if err != nil {
			return BrigadierInteger{}, err
		}
		p.Min = &v
	}
	if flags&0x02 != 0 {
		v, err := protocol.ReadInt32(r)
		if err != nil {
			return BrigadierInteger{}, err
		}
		p.Max = &v
	}
	return p, nil
}

func decodeBrigadierLong(r protocol.Reader) (BrigadierLong, error) {
	flags, err := protocol.ReadByte(r)
	if err != nil {
		return BrigadierLong{}, err
	}
	var p BrigadierLong
	if flags&0x01 != 0 {
		v, err := protocol.ReadInt64(r)
		if err != nil {
			return BrigadierLong{}, err
		}
		p.Min = &v
	}
	if flags&0x02 != 0 {
		v, err := protocol.ReadInt64(r)
		if err != nil {
			return BrigadierLong{}, err
		}
		p.Max = &v
	}
	return p, nil
}
