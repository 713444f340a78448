package server

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/danmuck/mcwire/internal/protocol"
	"github.com/danmuck/mcwire/internal/protocol/command"
)

// JSON shapes for the inspector endpoints. Numeric parser bounds travel as
// json.Number so long bounds survive without float64 rounding.

type graphJSON struct {
	Nodes []nodeJSON `json:"nodes"`
	Root  int32      `json:"root"`
}

type nodeJSON struct {
	Kind            string      `json:"kind"`
	Name            string      `json:"name,omitempty"`
	Parser          *parserJSON `json:"parser,omitempty"`
	SuggestionsType *string     `json:"suggestions_type,omitempty"`
	Children        []int32     `json:"children,omitempty"`
	Executable      bool        `json:"executable"`
	Redirect        *int32      `json:"redirect,omitempty"`
}

type parserJSON struct {
	Type string       `json:"type"`
	Min  *json.Number `json:"min,omitempty"`
	Max  *json.Number `json:"max,omitempty"`
}

func graphToJSON(g command.Graph) graphJSON {
	out := graphJSON{Nodes: make([]nodeJSON, len(g.Nodes)), Root: g.RootIndex}
	for i, n := range g.Nodes {
		nj := nodeJSON{
			Children:   n.Children,
			Executable: n.IsExecutable,
			Redirect:   n.RedirectNode,
		}
		switch data := n.Data.(type) {
		case command.RootData:
			nj.Kind = "root"
		case command.LiteralData:
			nj.Kind = "literal"
			nj.Name = data.Name
		case command.ArgumentData:
			nj.Kind = "argument"
			nj.Name = data.Name
			nj.Parser = parserToJSON(data.Parser)
			if data.SuggestionsType != nil {
				s := string(*data.SuggestionsType)
				nj.SuggestionsType = &s
			}
		}
		out.Nodes[i] = nj
	}
	return out
}

func parserToJSON(p command.Parser) *parserJSON {
	num := func(s string) *json.Number {
		n := json.Number(s)
		return &n
	}
	switch p := p.(type) {
	case command.BoolParser:
		return &parserJSON{Type: "bool"}
	case command.BrigadierFloat:
		pj := &parserJSON{Type: "float"}
		if p.Min != nil {
			pj.Min = num(strconv.FormatFloat(float64(*p.Min), 'g', -1, 32))
		}
		if p.Max != nil {
			pj.Max = num(strconv.FormatFloat(float64(*p.Max), 'g', -1, 32))
		}
		return pj
	case command.BrigadierInteger:
		pj := &parserJSON{Type: "integer"}
		if p.Min != nil {
			pj.Min = num(strconv.FormatInt(int64(*p.Min), 10))
		}
		if p.Max != nil {
			pj.Max = num(strconv.FormatInt(int64(*p.Max), 10))
		}
		return pj
	case command.BrigadierLong:
		pj := &parserJSON{Type: "long"}
		if p.Min != nil {
			pj.Min = num(strconv.FormatInt(*p.Min, 10))
		}
		if p.Max != nil {
			pj.Max = num(strconv.FormatInt(*p.Max, 10))
		}
		return pj
	default:
		return nil
	}
}

func graphFromJSON(in graphJSON) (command.Graph, error) {
	g := command.Graph{Nodes: make([]command.Node, len(in.Nodes)), RootIndex: in.Root}
	for i, nj := range in.Nodes {
		n := command.Node{
			Children:     nj.Children,
			IsExecutable: nj.Executable,
			RedirectNode: nj.Redirect,
		}
		switch nj.Kind {
		case "root":
			n.Data = command.RootData{}
		case "literal":
			n.Data = command.LiteralData{Name: nj.Name}
		case "argument":
			if nj.Parser == nil {
				return command.Graph{}, fmt.Errorf("node %d: argument without parser", i)
			}
			p, err := parserFromJSON(*nj.Parser)
			if err != nil {
				return command.Graph{}, fmt.Errorf("node %d: %w", i, err)
			}
			arg := command.ArgumentData{Name: nj.Name, Parser: p}
			if nj.SuggestionsType != nil {
				id := protocol.Identifier(*nj.SuggestionsType)
				if err := id.Validate(); err != nil {
					return command.Graph{}, fmt.Errorf("node %d: %w", i, err)
				}
				arg.SuggestionsType = &id
			}
			n.Data = arg
		default:
			return command.Graph{}, fmt.Errorf("node %d: unknown kind %q", i, nj.Kind)
		}
		g.Nodes[i] = n
	}
	return g, nil
}

func parserFromJSON(in parserJSON) (command.Parser, error) {
	switch in.Type {
	case "bool":
		return command.BoolParser{}, nil
	case "float":
		var p command.BrigadierFloat
		if in.Min != nil {
			v, err := strconv.ParseFloat(in.Min.String(), 32)
			if err != nil {
				return nil, fmt.Errorf("float min: %w", err)
			}
			f := float32(v)
			p.Min = &f
		}
		if in.Max != nil {
			v, err := strconv.ParseFloat(in.Max.String(), 32)
			if err != nil {
				return nil, fmt.Errorf("float max: %w", err)
			}
			f := float32(v)
			p.Max = &f
		}
		return p, nil
	case "integer":
		var p command.BrigadierInteger
		if in.Min != nil {
			v, err := strconv.ParseInt(in.Min.String(), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("integer min: %w", err)
			}
			i := int32(v)
			p.Min = &i
		}
		if in.Max != nil {
			v, err := strconv.ParseInt(in.Max.String(), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("integer max: %w", err)
			}
			i := int32(v)
			p.Max = &i
		}
		return p, nil
	case "long":
		var p command.BrigadierLong
		if in.Min != nil {
			v, err := in.Min.Int64()
			if err != nil {
				return nil, fmt.Errorf("long min: %w", err)
			}
			p.Min = &v
		}
		if in.Max != nil {
			v, err := in.Max.Int64()
			if err != nil {
				return nil, fmt.Errorf("long max: %w", err)
			}
			p.Max = &v
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown parser type %q", in.Type)
	}
}
