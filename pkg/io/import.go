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

// Store is the read surface shared by [digraph.Graph] and [digraph.Acyclic].
// Import functions return it so callers can traverse, sort, and export a
// loaded graph without caring which variant the file requested.
type Store interface {
	HasNode(id string) bool
	Nodes() []string
	NodeValue(id string) (int, bool)
	EdgeWeight(from, to string) (float64, bool)
	EdgeName(from, to string) (string, bool)
	Edges() []digraph.Edge
	Successors(id string) []string
	Predecessors(id string) []string
	InDegree(id string) int
	OutDegree(id string) int
	NodeCount() int
	EdgeCount() int
	Sources() []string
	Sinks() []string
}

type document struct {
	Acyclic bool   `json:"acyclic,omitempty" toml:"acyclic,omitempty"`
	Nodes   []node `json:"nodes" toml:"nodes"`
	Edges   []edge `json:"edges" toml:"edges"`
}

type node struct {
	ID    string `json:"id" toml:"id"`
	Value int    `json:"value,omitempty" toml:"value,omitempty"`
}

type edge struct {
	From   string  `json:"from" toml:"from"`
	To     string  `json:"to" toml:"to"`
	Name   string  `json:"name,omitempty" toml:"name,omitempty"`
	Weight float64 `json:"weight,omitempty" toml:"weight,omitempty"`
}

// ReadJSON decodes a JSON graph document from r.
//
// Returns an error if the JSON is malformed, a node is missing its id, an
// edge is missing an endpoint, or - when the acyclic flag is set - an edge
// would close a directed cycle. Errors are wrapped with the node or edge
// that caused them. ReadJSON does not close r.
func ReadJSON(r io.Reader) (Store, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return build(doc)
}

// ReadTOML decodes a TOML graph document from r.
// Validation matches [ReadJSON].
func ReadTOML(r io.Reader) (Store, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return build(doc)
}

// Import reads the graph file at path, dispatching on the extension:
// .json for JSON, .toml for TOML. Any other extension is an error.
func Import(path string) (Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON(f)
	case ".toml":
		return ReadTOML(f)
	default:
		return nil, fmt.Errorf("%s: unsupported graph format %q (want .json or .toml)", path, filepath.Ext(path))
	}
}

func build(doc document) (Store, error) {
	for i, n := range doc.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node %d: missing id", i)
		}
	}
	for i, e := range doc.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("edge %d: missing endpoint", i)
		}
	}

	if doc.Acyclic {
		a := digraph.NewAcyclic()
		for _, n := range doc.Nodes {
			a.AddNode(n.ID, n.Value)
		}
		for _, e := range doc.Edges {
			if err := a.AddEdge(digraph.Edge{From: e.From, To: e.To, Name: e.Name, Weight: e.Weight}); err != nil {
				return nil, err
			}
		}
		return a, nil
	}

	g := digraph.New()
	for _, n := range doc.Nodes {
		g.AddNode(n.ID, n.Value)
	}
	for _, e := range doc.Edges {
		g.AddEdge(digraph.Edge{From: e.From, To: e.To, Name: e.Name, Weight: e.Weight})
	}
	return g, nil
}
