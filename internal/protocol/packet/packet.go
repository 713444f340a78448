// Package packet defines the typed clientbound packets built on the codec
// layer and the frame format.
package packet

import (
	"bytes"
	"fmt"

	"github.com/danmuck/mcwire/internal/protocol/command"
	"github.com/danmuck/mcwire/internal/protocol/frame"
)

// Clientbound play-state packet ids.
const (
	IDDeclareCommands int32 = 0x0F
)

// DeclareCommands carries the whole command-suggestion graph. The graph is
// sent once at login and resent whole whenever the command set changes.
type DeclareCommands struct {
	Graph command.Graph
}

// Encode frames the packet: VarInt length, packet id, then the graph wire
// form.
func (p DeclareCommands) Encode(limits frame.Limits) ([]byte, error) {
	var body bytes.Buffer
	if err := p.Graph.Encode(&body); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	err := frame.WritePacket(&out, frame.Packet{ID: IDDeclareCommands, Body: body.Bytes()}, limits)
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecodeDeclareCommands decodes the body of a framed DeclareCommands packet.
// The body must contain exactly one graph; trailing bytes are a framing error.
func DecodeDeclareCommands(p frame.Packet) (DeclareCommands, error) {
	if p.ID != IDDeclareCommands {
		return DeclareCommands{}, fmt.Errorf("packet: unexpected id %#x, want %#x", p.ID, IDDeclareCommands)
	}
	r := bytes.NewReader(p.Body)
	g, err := command.DecodeGraph(r)
	if err != nil {
		return DeclareCommands{}, err
	}
	if r.Len() != 0 {
		return DeclareCommands{}, fmt.Errorf("packet: %d trailing bytes after graph", r.Len())
	}
	return DeclareCommands{Graph: g}, nil
}
