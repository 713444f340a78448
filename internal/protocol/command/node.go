package command

import (
	"io"

	"github.com/danmuck/mcwire/internal/protocol"
)

// Node flags byte layout. Bits 0-1 carry the variant tag; the remaining bits
// gate conditional fields.
const (
	flagVariantMask   byte = 0x03
	flagExecutable    byte = 0x04
	flagHasRedirect   byte = 0x08
	flagHasSuggestion byte = 0x10
)

const (
	variantRoot     byte = 0
	variantLiteral  byte = 1
	variantArgument byte = 2
)

// Node is one vertex of a command-suggestion graph.
type Node struct {
	Children     []int32
	Data         NodeData
	IsExecutable bool
	RedirectNode *int32
}

// NodeData is the closed payload union of a Node. The wire discriminant is
// derived from the concrete type, never stored.
type NodeData interface {
	variant() byte
}

// RootData is the payload of the graph entry node.
type RootData struct{}

// LiteralData names a fixed keyword in the grammar.
type LiteralData struct {
	Name string
}

// ArgumentData names a typed argument slot with its client-side parser.
type ArgumentData struct {
	Name            string
	Parser          Parser
	SuggestionsType *protocol.Identifier
}

func (RootData) variant() byte     { return variantRoot }
func (LiteralData) variant() byte  { return variantLiteral }
func (ArgumentData) variant() byte { return variantArgument }

func (n *Node) flags() byte {
	f := n.Data.variant()
	if n.IsExecutable {
		f |= flagExecutable
	}
	if n.RedirectNode != nil {
		f |= flagHasRedirect
	}
	if arg, ok := n.Data.(ArgumentData); ok && arg.SuggestionsType != nil {
		f |= flagHasSuggestion
	}
	return f
}

// Encode writes the node: flags byte, VarInt-counted child indices, the
// redirect index when present, then the variant payload.
func (n *Node) Encode(w io.Writer) error {
	if n.Data == nil {
		return protocol.ErrInvalidNodeVariant
	}
	if err := protocol.WriteByte(w, n.flags()); err != nil {
		return err
	}
	if err := protocol.WriteVarInt(w, int32(len(n.Children))); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := protocol.WriteVarInt(w, child); err != nil {
			return err
		}
	}
	if n.RedirectNode != nil {
		if err := protocol.WriteVarInt(w, *n.RedirectNode); err != nil {
			return err
		}
	}
	switch data := n.Data.(type) {
	case RootData:
		return nil
	case LiteralData:
		return protocol.WriteString(w, data.Name, 0, protocol.NameMaxChars)
	case ArgumentData:
		if err := protocol.WriteString(w, data.Name, 0, protocol.NameMaxChars); err != nil {
			return err
		}
		if err := encodeParser(w, data.Parser); err != nil {
			return err
		}
		if data.SuggestionsType != nil {
			return data.SuggestionsType.Write(w)
		}
		return nil
	default:
		return protocol.ErrInvalidNodeVariant
	}
}

// DecodeNode reads one node. Field order on decode is flags, redirect,
// children, payload; the redirect sits before the children here even though
// Encode emits it after them. The asymmetry is part of the wire contract and
// intentionally preserved.
func DecodeNode(r protocol.Reader) (Node, error) {
	flags, err := protocol.ReadByte(r)
	if err != nil {
		return Node{}, err
	}

	n := Node{IsExecutable: flags&flagExecutable != 0}

	if flags&flagHasRedirect != 0 {
		redirect, err := protocol.ReadVarInt(r)
		if err != nil {
			return Node{}, err
		}
		n.RedirectNode = &redirect
	}

	count, err := protocol.ReadVarInt(r)
	if err != nil {
		return Node{}, err
	}
	if count < 0 {
		return Node{}, ErrInvalidNodeIndex
	}
	if count > 0 {
		n.Children = make([]int32, count)
		for i := range n.Children {
			child, err := protocol.ReadVarInt(r)
			if err != nil {
				return Node{}, err
			}
			n.Children[i] = child
		}
	}

	switch flags & flagVariantMask {
	case variantRoot:
		n.Data = RootData{}
	case variantLiteral:
		name, err := protocol.ReadString(r, 0, protocol.NameMaxChars)
		if err != nil {
			return Node{}, err
		}
		n.Data = LiteralData{Name: name}
	case variantArgument:
		name, err := protocol.ReadString(r, 0, protocol.NameMaxChars)
		if err != nil {
			return Node{}, err
		}
		parser, err := decodeParser(r)
		if err != nil {
			return Node{}, err
		}
		arg := ArgumentData{Name: name, Parser: parser}
		if flags&flagHasSuggestion != 0 {
			suggestion, err := protocol.ReadIdentifier(r)
			if err != nil {
				return Node{}, err
			}
			arg.SuggestionsType = &suggestion
		}
		n.Data = arg
	default:
		return Node{}, protocol.ErrInvalidNodeVariant
	}

	return n, nil
}
