package tree

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestMarshalTreeRoundTrip(t *testing.T) {
	original := sample()

	data, err := MarshalTree(original)
	if err != nil {
		t.Fatalf("MarshalTree() error = %v", err)
	}

	decoded, err := ReadTree(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadTree() error = %v", err)
	}

	if decoded.Name != original.Name {
		t.Errorf("Name = %q, want %q", decoded.Name, original.Name)
	}
	if decoded.Count() != original.Count() {
		t.Errorf("Count() = %d, want %d", decoded.Count(), original.Count())
	}
	if decoded.Children[0].Name != "PEI" {
		t.Errorf("first child = %q, want PEI", decoded.Children[0].Name)
	}
}

func TestMarshalTreeDeterministic(t *testing.T) {
	n := sample()

	first, err := MarshalTree(n)
	if err != nil {
		t.Fatalf("MarshalTree() error = %v", err)
	}
	second, err := MarshalTree(n)
	if err != nil {
		t.Fatalf("MarshalTree() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("MarshalTree() output differs between calls")
	}
}

func TestLeafOmitsChildren(t *testing.T) {
	data, err := MarshalTree(New("leaf"))
	if err != nil {
		t.Fatalf("MarshalTree() error = %v", err)
	}
	if strings.Contains(string(data), "children") {
		t.Errorf("leaf serialization should omit children, got %s", data)
	}
}

func TestWriteAndReadTreeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")

	if err := WriteTreeFile(sample(), path); err != nil {
		t.Fatalf("WriteTreeFile() error = %v", err)
	}

	n, err := ReadTreeFile(path)
	if err != nil {
		t.Fatalf("ReadTreeFile() error = %v", err)
	}
	if n.Count() != 6 {
		t.Errorf("Count() = %d, want 6", n.Count())
	}
}

func TestReadTreeFileMissing(t *testing.T) {
	if _, err := ReadTreeFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadTreeFile() expected error for missing file")
	}
}

func TestReadTreeInvalidJSON(t *testing.T) {
	if _, err := ReadTree(strings.NewReader("{not json")); err == nil {
		t.Error("ReadTree() expected error for invalid JSON")
	}
}
