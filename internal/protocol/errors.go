package protocol

import "errors"

var (
	ErrTruncated                    = errors.New("protocol: truncated data")
	ErrMalformedVarInt              = errors.New("protocol: malformed varint")
	ErrInvalidUTF8                  = errors.New("protocol: invalid utf-8")
	ErrStringLengthOutOfBounds      = errors.New("protocol: string length out of bounds")
	ErrInvalidEnumOrdinal           = errors.New("protocol: invalid enum ordinal")
	ErrInvalidNodeVariant           = errors.New("protocol: invalid node variant")
	ErrInvalidParserID              = errors.New("protocol: invalid parser id")
	ErrUnrepresentableOptionalValue = errors.New("protocol: unrepresentable optional value")
	ErrInvalidBool                  = errors.New("protocol: invalid bool value")
)
