package server

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/danmuck/mcwire/internal/observability"
	"github.com/danmuck/mcwire/internal/protocol"
	"github.com/danmuck/mcwire/internal/protocol/command"
	"github.com/danmuck/mcwire/internal/protocol/frame"
	"github.com/danmuck/mcwire/internal/protocol/packet"
)

type decodeRequest struct {
	Hex    string `json:"hex"`
	Base64 string `json:"base64"`
	Framed bool   `json:"framed"`
}

// bytes returns the request payload, accepting exactly one of hex or base64.
func (r decodeRequest) bytes() ([]byte, error) {
	switch {
	case r.Hex != "" && r.Base64 != "":
		return nil, errors.New("supply hex or base64, not both")
	case r.Hex != "":
		raw, err := hex.DecodeString(stripSpaces(r.Hex))
		if err != nil {
			return nil, fmt.Errorf("body is not hex: %w", err)
		}
		return raw, nil
	case r.Base64 != "":
		raw, err := base64.StdEncoding.DecodeString(stripSpaces(r.Base64))
		if err != nil {
			return nil, fmt.Errorf("body is not base64: %w", err)
		}
		return raw, nil
	default:
		return nil, errors.New("supply hex or base64")
	}
}

type encodeRequest struct {
	Graph  graphJSON `json:"graph"`
	Framed bool      `json:"framed"`
}

func (s *Inspector) handleDecode(c *gin.Context) {
	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raw, err := req.bytes()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(raw) > s.cfg.MaxPacketBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "packet exceeds configured limit"})
		return
	}

	g, err := s.decodeGraphBytes(raw, req.Framed)
	if err != nil {
		observability.RecordGraphDecode(s.cfg.Name, errorKind(err), 0)
		s.logger.Warn().Err(err).Int("bytes", len(raw)).Msg("graph decode failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": errorKind(err)})
		return
	}
	if len(g.Nodes) > s.cfg.MaxGraphNodes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "graph exceeds configured node limit"})
		return
	}

	observability.RecordGraphDecode(s.cfg.Name, "ok", len(g.Nodes))
	c.JSON(http.StatusOK, gin.H{
		"graph":      graphToJSON(g),
		"node_count": len(g.Nodes),
	})
}

func (s *Inspector) decodeGraphBytes(raw []byte, framed bool) (command.Graph, error) {
	if framed {
		p, err := frame.ReadPacket(bytes.NewReader(raw), s.limits())
		if err != nil {
			return command.Graph{}, err
		}
		decl, err := packet.DecodeDeclareCommands(p)
		if err != nil {
			return command.Graph{}, err
		}
		return decl.Graph, nil
	}
	r := bytes.NewReader(raw)
	g, err := command.DecodeGraph(r)
	if err != nil {
		return command.Graph{}, err
	}
	if r.Len() != 0 {
		return command.Graph{}, errors.New("trailing bytes after graph")
	}
	return g, nil
}

func (s *Inspector) handleEncode(c *gin.Context) {
	var req encodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Graph.Nodes) > s.cfg.MaxGraphNodes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "graph exceeds configured node limit"})
		return
	}

	g, err := graphFromJSON(req.Graph)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var raw []byte
	if req.Framed {
		raw, err = packet.DeclareCommands{Graph: g}.Encode(s.limits())
	} else {
		var buf bytes.Buffer
		if err = g.Encode(&buf); err == nil {
			raw = buf.Bytes()
		}
	}
	if err != nil {
		observability.RecordGraphEncode(s.cfg.Name, errorKind(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": errorKind(err)})
		return
	}

	observability.RecordGraphEncode(s.cfg.Name, "ok")
	c.JSON(http.StatusOK, gin.H{
		"hex":   hex.EncodeToString(raw),
		"bytes": len(raw),
	})
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

// errorKind reduces a codec error chain to a stable metric label.
func errorKind(err error) string {
	switch {
	case errors.Is(err, protocol.ErrTruncated):
		return "truncated"
	case errors.Is(err, protocol.ErrMalformedVarInt):
		return "malformed_varint"
	case errors.Is(err, protocol.ErrInvalidUTF8):
		return "invalid_utf8"
	case errors.Is(err, protocol.ErrStringLengthOutOfBounds):
		return "string_bounds"
	case errors.Is(err, protocol.ErrInvalidEnumOrdinal):
		return "enum_ordinal"
	case errors.Is(err, protocol.ErrInvalidNodeVariant):
		return "node_variant"
	case errors.Is(err, protocol.ErrInvalidParserID):
		return "parser_id"
	case errors.Is(err, command.ErrInvalidNodeIndex):
		return "node_index"
	case errors.Is(err, frame.ErrPacketTooLarge):
		return "packet_too_large"
	default:
		return "other"
	}
}
