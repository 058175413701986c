// Package render converts directed graphs to Graphviz DOT text and renders
// the result to SVG via the embedded Graphviz engine (goccy/go-graphviz).
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/depwalk/depwalk/pkg/digraph"
)

// Source is the read surface rendering needs. [digraph.Graph] and
// [digraph.Acyclic] both satisfy it.
type Source interface {
	Nodes() []string
	NodeValue(id string) (int, bool)
	Edges() []digraph.Edge
}

// Options configures DOT generation.
type Options struct {
	// ShowValues appends each node's value to its label.
	ShowValues bool
	// ShowEdgeLabels labels edges with their name and non-zero weight.
	ShowEdgeLabels bool
}

// ToDOT converts a graph to Graphviz DOT format. Nodes appear in insertion
// order, edges in first-insertion order, so the output is deterministic for
// a given build history.
func ToDOT(g Source, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for _, id := range g.Nodes() {
		label := id
		if opts.ShowValues {
			if v, ok := g.NodeValue(id); ok {
				label = fmt.Sprintf("%s\nvalue: %d", id, v)
			}
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", id, label)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if label := edgeLabel(e, opts); label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, label)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeLabel(e digraph.Edge, opts Options) string {
	if !opts.ShowEdgeLabels {
		return ""
	}
	var parts []string
	if e.Name != "" {
		parts = append(parts, e.Name)
	}
	if e.Weight != 0 {
		parts = append(parts, strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}
	return strings.Join(parts, " ")
}

// SVG renders DOT text to SVG bytes using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the viewBox starts at
// the origin and the width/height match it, which keeps browsers from
// clipping Graphviz output.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
