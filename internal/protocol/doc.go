// Package protocol owns the wire contract and parsing primitives.
//
// Ownership boundary:
// - variable-length integer primitive (VarInt)
// - length-prefixed bounded strings and identifiers
// - sentinel-encoded optional integers
// - fixed-width numeric primitives used by parser payloads
//
// All fixed-width multi-byte values are big-endian. A decode call consumes
// exactly the bytes belonging to one value and never reads past its logical
// end; message framing lives in protocol/frame.
package protocol
