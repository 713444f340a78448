package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/mcwire/internal/protocol"
)

var ErrInvalidNodeIndex = errors.New("command: node index out of range")

// Graph is a whole command grammar: a flat arena of nodes plus the index of
// the root. Nodes reference each other only by arena index, so the graph is
// replaced as a unit and individual nodes are never removed.
type Graph struct {
	Nodes     []Node
	RootIndex int32
}

// Encode writes the full graph: VarInt node count, every node in arena order,
// then the root index.
func (g *Graph) Encode(w io.Writer) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := protocol.WriteVarInt(w, int32(len(g.Nodes))); err != nil {
		return err
	}
	for i := range g.Nodes {
		if err := g.Nodes[i].Encode(w); err != nil {
			return fmt.Errorf("command: encode node %d: %w", i, err)
		}
	}
	return protocol.WriteVarInt(w, g.RootIndex)
}

// DecodeGraph reads a full graph and validates every arena reference. One
// malformed node aborts the whole decode; a partially-decoded graph is
// unusable.
func DecodeGraph(r protocol.Reader) (Graph, error) {
	count, err := protocol.ReadVarInt(r)
	if err != nil {
		return Graph{}, err
	}
	if count < 0 {
		return Graph{}, ErrInvalidNodeIndex
	}

	g := Graph{Nodes: make([]Node, 0, count)}
	for i := int32(0); i < count; i++ {
		n, err := DecodeNode(r)
		if err != nil {
			return Graph{}, fmt.Errorf("command: decode node %d: %w", i, err)
		}
		g.Nodes = append(g.Nodes, n)
	}

	g.RootIndex, err = protocol.ReadVarInt(r)
	if err != nil {
		return Graph{}, err
	}
	if err := g.Validate(); err != nil {
		return Graph{}, err
	}
	return g, nil
}

// Validate checks that the root and every child/redirect index land inside
// the arena.
func (g *Graph) Validate() error {
	n := int32(len(g.Nodes))
	if g.RootIndex < 0 || g.RootIndex >= n {
		return fmt.Errorf("%w: root %d of %d nodes", ErrInvalidNodeIndex, g.RootIndex, n)
	}
	for i := range g.Nodes {
		for _, child := range g.Nodes[i].Children {
			if child < 0 || child >= n {
				return fmt.Errorf("%w: node %d child %d of %d nodes", ErrInvalidNodeIndex, i, child, n)
			}
		}
		if redirect := g.Nodes[i].RedirectNode; redirect != nil {
			if *redirect < 0 || *redirect >= n {
				return fmt.Errorf("%w: node %d redirect %d of %d nodes", ErrInvalidNodeIndex, i, *redirect, n)
			}
		}
	}
	return nil
}
