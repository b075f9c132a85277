package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Tree Serialization API
// =============================================================================

// MarshalTree converts a tree to JSON bytes.
// Child order is preserved, so the output is deterministic.
func MarshalTree(n *Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTreeTo(n, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTreeFile writes a tree to a JSON file.
// The file is created with 0644 permissions.
func WriteTreeFile(n *Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTreeTo(n, f)
}

// WriteTree writes a tree as JSON to an io.Writer.
// Use MarshalTree for in-memory serialization or WriteTreeFile for files.
func WriteTree(n *Node, w io.Writer) error {
	return writeTreeTo(n, w)
}

// ReadTreeFile reads a JSON file and returns the decoded tree.
func ReadTreeFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readTreeFrom(f)
}

// ReadTree decodes a JSON tree from an io.Reader.
// Use ReadTreeFile for files or pass bytes.NewReader for in-memory data.
func ReadTree(r io.Reader) (*Node, error) {
	return readTreeFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTreeTo(n *Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readTreeFrom(r io.Reader) (*Node, error) {
	var n Node
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &n, nil
}
