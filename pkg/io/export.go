package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/depwalk/depwalk/pkg/digraph"
)

// snapshot flattens a store into the serializable document shape.
// Node order and edge order are the store's insertion orders, so a
// round-trip through export and import preserves traversal and sort order.
func snapshot(g Store) document {
	doc := document{
		Nodes: make([]node, 0, g.NodeCount()),
		Edges: make([]edge, 0, g.EdgeCount()),
	}
	if _, ok := g.(*digraph.Acyclic); ok {
		doc.Acyclic = true
	}
	for _, id := range g.Nodes() {
		v, _ := g.NodeValue(id)
		doc.Nodes = append(doc.Nodes, node{ID: id, Value: v})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edge{From: e.From, To: e.To, Name: e.Name, Weight: e.Weight})
	}
	return doc
}

// WriteJSON encodes the graph as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g Store, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot(g)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteTOML encodes the graph as TOML and writes it to w.
// The output can be re-imported with [ReadTOML].
func WriteTOML(g Store, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(snapshot(g)); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}

// Export writes the graph to a file at path, dispatching on the extension
// exactly as [Import] does.
func Export(g Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return WriteJSON(g, f)
	case ".toml":
		return WriteTOML(g, f)
	default:
		return fmt.Errorf("%s: unsupported graph format %q (want .json or .toml)", path, filepath.Ext(path))
	}
}
