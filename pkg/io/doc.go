// Package io provides JSON and TOML import and export for directed graphs.
//
// # Overview
//
// This package serializes [digraph] graphs to and from a small document
// format with two top-level collections and one flag:
//
//	{
//	  "acyclic": true,
//	  "nodes": [
//	    {"id": "shirt"},
//	    {"id": "pants", "value": 2}
//	  ],
//	  "edges": [
//	    {"from": "shirt", "to": "pants", "name": "then", "weight": 1.5}
//	  ]
//	}
//
// The same shape is accepted as TOML:
//
//	acyclic = true
//
//	[[nodes]]
//	id = "shirt"
//
//	[[edges]]
//	from = "shirt"
//	to = "pants"
//	weight = 1.5
//
// # Node and Edge Fields
//
// Nodes require an id; value defaults to 0. Edges require from and to;
// name and weight are optional metadata. Nodes referenced only by edges
// are created implicitly, exactly as [digraph.Graph.AddEdge] does.
//
// # The acyclic Flag
//
// When acyclic is true the graph is materialized as a [digraph.Acyclic]
// and every edge is replayed through its guarded insertion. A file whose
// edges close a directed cycle fails to load with an error wrapping
// [digraph.ErrEdgeCycle] that names the offending edge.
//
// # Import and Export
//
// [Import] and [Export] dispatch on the file extension (.json, .toml);
// [ReadJSON], [ReadTOML], [WriteJSON], and [WriteTOML] work with any
// reader or writer. Exporting a [digraph.Acyclic] sets the acyclic flag,
// so acyclic graphs round-trip as acyclic graphs.
//
// [digraph]: github.com/depwalk/depwalk/pkg/digraph
package io
