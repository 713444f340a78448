package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danmuck/mcwire/internal/observability"
	"github.com/danmuck/mcwire/internal/protocol/command"
	"github.com/danmuck/mcwire/internal/protocol/frame"
	"github.com/danmuck/mcwire/internal/protocol/packet"
)

func main() {
	hexInput := flag.Bool("hex", false, "input is hex text instead of raw bytes")
	framed := flag.Bool("framed", false, "input is a length-prefixed packet, not a bare graph")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	logger := observability.InitLogger("wiredump", *debug)

	raw, err := readInput(flag.Arg(0), *hexInput)
	if err != nil {
		logger.Error().Err(err).Msg("read input")
		os.Exit(1)
	}
	logger.Debug().Int("bytes", len(raw)).Msg("input read")

	g, err := decodeGraph(raw, *framed)
	if err != nil {
		logger.Error().Err(err).Msg("decode graph")
		os.Exit(1)
	}

	fmt.Printf("graph: %d nodes, root %d\n", len(g.Nodes), g.RootIndex)
	printNode(&g, g.RootIndex, 0, make(map[int32]bool))
}

func readInput(path string, hexInput bool) ([]byte, error) {
	var raw []byte
	var err error
	if path == "" || path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if hexInput {
		return hex.DecodeString(strings.Join(strings.Fields(string(raw)), ""))
	}
	return raw, nil
}

func decodeGraph(raw []byte, framed bool) (command.Graph, error) {
	if framed {
		p, err := frame.ReadPacket(bytes.NewReader(raw), frame.DefaultLimits())
		if err != nil {
			return command.Graph{}, err
		}
		decl, err := packet.DecodeDeclareCommands(p)
		if err != nil {
			return command.Graph{}, err
		}
		return decl.Graph, nil
	}
	return command.DecodeGraph(bytes.NewReader(raw))
}

func printNode(g *command.Graph, idx int32, depth int, seen map[int32]bool) {
	indent := strings.Repeat("  ", depth)
	n := &g.Nodes[idx]

	label := describe(n)
	if n.IsExecutable {
		label += " (executable)"
	}
	if n.RedirectNode != nil {
		label += fmt.Sprintf(" -> redirect %d", *n.RedirectNode)
	}
	fmt.Printf("%s[%d] %s\n", indent, idx, label)

	if seen[idx] {
		fmt.Printf("%s  ...\n", indent)
		return
	}
	seen[idx] = true
	for _, child := range n.Children {
		printNode(g, child, depth+1, seen)
	}
}

func describe(n *command.Node) string {
	switch data := n.Data.(type) {
	case command.RootData:
		return "root"
	case command.LiteralData:
		return fmt.Sprintf("literal %q", data.Name)
	case command.ArgumentData:
		s := fmt.Sprintf("argument %q %s", data.Name, describeParser(data.Parser))
		if data.SuggestionsType != nil {
			s += fmt.Sprintf(" suggests=%s", string(*data.SuggestionsType))
		}
		return s
	default:
		return "unknown"
	}
}

func describeParser(p command.Parser) string {
	switch p := p.(type) {
	case command.BoolParser:
		return "bool"
	case command.BrigadierFloat:
		return "float" + describeRange(p.Min != nil, p.Max != nil, func() string { return fmt.Sprint(*p.Min) }, func() string { return fmt.Sprint(*p.Max) })
	case command.BrigadierInteger:
		return "integer" + describeRange(p.Min != nil, p.Max != nil, func() string { return fmt.Sprint(*p.Min) }, func() string { return fmt.Sprint(*p.Max) })
	case command.BrigadierLong:
		return "long" + describeRange(p.Min != nil, p.Max != nil, func() string { return fmt.Sprint(*p.Min) }, func() string { return fmt.Sprint(*p.Max) })
	default:
		return fmt.Sprintf("parser#%d", p.ParserID())
	}
}

func describeRange(hasMin, hasMax bool, min, max func() string) string {
	if !hasMin && !hasMax {
		return ""
	}
	lo, hi := "..", ".."
	if hasMin {
		lo = min()
	}
	if hasMax {
		hi = max()
	}
	return fmt.Sprintf("[%s,%s]", lo, hi)
}
