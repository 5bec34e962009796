package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// =============================================================================
// Request Decoding
// =============================================================================

// UnmarshalRequest decodes a request from JSON.
//
// Requests usually come from a language model tool call, so decoding is
// tolerant: strict JSON is tried first, then a JSON document encoded inside a
// JSON string, and finally the input is passed through jsonrepair (trailing
// commas, unquoted keys, single quotes, truncated brackets).
func UnmarshalRequest(data []byte) (Request, error) {
	var req Request
	input := strings.TrimSpace(string(data))

	if err := json.Unmarshal([]byte(input), &req); err == nil {
		return req, nil
	}

	var inner string
	if err := json.Unmarshal([]byte(input), &inner); err == nil {
		inner = strings.TrimSpace(inner)
		if err := json.Unmarshal([]byte(inner), &req); err == nil {
			return req, nil
		}
		input = inner
	}

	repaired, err := jsonrepair.JSONRepair(input)
	if err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}
	req = Request{}
	if err := json.Unmarshal([]byte(repaired), &req); err != nil {
		return Request{}, fmt.Errorf("decode repaired request: %w", err)
	}
	return req, nil
}

// ReadRequest decodes a request from r. See UnmarshalRequest.
func ReadRequest(r io.Reader) (Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Request{}, fmt.Errorf("read request: %w", err)
	}
	return UnmarshalRequest(data)
}

// ReadRequestFile decodes a request from a JSON file.
func ReadRequestFile(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("open %s: %w", path, err)
	}
	return UnmarshalRequest(data)
}

// MarshalRequest encodes a request as compact JSON. The encoding is
// canonical for a given request and is used to derive cache keys.
func MarshalRequest(req Request) ([]byte, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return data, nil
}

// =============================================================================
// Graph Serialization
// =============================================================================

// MarshalGraph converts a graph to indented JSON bytes.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalGraph decodes a graph from JSON bytes.
func UnmarshalGraph(data []byte) (*Graph, error) {
	return ReadGraph(bytes.NewReader(data))
}

// WriteGraph writes a graph as indented JSON to w.
func WriteGraph(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteGraphFile writes a graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// ReadGraph decodes a graph from r.
func ReadGraph(r io.Reader) (*Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &g, nil
}

// ReadGraphFile decodes a graph from a JSON file.
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}
