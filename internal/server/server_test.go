package server

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/danmuck/mcwire/internal/config"
	"github.com/danmuck/mcwire/internal/protocol/command"
)

func testInspector(t *testing.T) *Inspector {
	t.Helper()
	return New(config.DefaultInspector(), zerolog.Nop())
}

func post(t *testing.T, s *Inspector, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := testInspector(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestDecodeGraphEndpoint(t *testing.T) {
	s := testInspector(t)

	g := command.Graph{
		Nodes: []command.Node{
			{Data: command.RootData{}, Children: []int32{1}},
			{Data: command.LiteralData{Name: "say"}, IsExecutable: true},
		},
		RootIndex: 0,
	}
	var buf bytes.Buffer
	require.NoError(t, g.Encode(&buf))

	w := post(t, s, "/v1/graph/decode", map[string]any{"hex": hex.EncodeToString(buf.Bytes())})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Graph     graphJSON `json:"graph"`
		NodeCount int       `json:"node_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.NodeCount)
	require.Equal(t, "literal", resp.Graph.Nodes[1].Kind)
	require.Equal(t, "say", resp.Graph.Nodes[1].Name)
	require.True(t, resp.Graph.Nodes[1].Executable)
}

func TestDecodeGraphEndpointRejectsMalformed(t *testing.T) {
	s := testInspector(t)
	// two nodes declared, second has the invalid variant tag 3
	w := post(t, s, "/v1/graph/decode", map[string]any{"hex": "020000030000"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Contains(t, w.Body.String(), "node_variant")
}

func TestDecodeGraphEndpointAcceptsBase64(t *testing.T) {
	s := testInspector(t)

	g := command.Graph{
		Nodes: []command.Node{
			{Data: command.RootData{}, Children: []int32{1}},
			{Data: command.LiteralData{Name: "seed"}, IsExecutable: true},
		},
		RootIndex: 0,
	}
	var buf bytes.Buffer
	require.NoError(t, g.Encode(&buf))

	w := post(t, s, "/v1/graph/decode", map[string]any{"base64": base64.StdEncoding.EncodeToString(buf.Bytes())})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"seed"`)
}

func TestDecodeGraphEndpointRejectsAmbiguousEncoding(t *testing.T) {
	s := testInspector(t)
	w := post(t, s, "/v1/graph/decode", map[string]any{"hex": "00", "base64": "AA=="})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "not both")

	w = post(t, s, "/v1/graph/decode", map[string]any{"framed": false})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecodeGraphEndpointRejectsNonHex(t *testing.T) {
	s := testInspector(t)
	w := post(t, s, "/v1/graph/decode", map[string]any{"hex": "zz"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEncodeDecodeEndpointsRoundTrip(t *testing.T) {
	s := testInspector(t)

	in := map[string]any{
		"framed": true,
		"graph": map[string]any{
			"root": 0,
			"nodes": []map[string]any{
				{"kind": "root", "children": []int32{1}},
				{"kind": "argument", "name": "amount", "executable": true,
					"parser": map[string]any{"type": "integer", "min": 0}},
			},
		},
	}
	w := post(t, s, "/v1/graph/encode", in)
	require.Equal(t, http.StatusOK, w.Code)

	var encResp struct {
		Hex string `json:"hex"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &encResp))
	require.NotEmpty(t, encResp.Hex)

	w = post(t, s, "/v1/graph/decode", map[string]any{"hex": encResp.Hex, "framed": true})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"amount"`)
}

func TestEncodeEndpointRejectsUnknownParser(t *testing.T) {
	s := testInspector(t)
	in := map[string]any{
		"graph": map[string]any{
			"root": 0,
			"nodes": []map[string]any{
				{"kind": "argument", "name": "x", "parser": map[string]any{"type": "entity"}},
			},
		},
	}
	w := post(t, s, "/v1/graph/encode", in)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.True(t, strings.Contains(w.Body.String(), "unknown parser type"))
}
