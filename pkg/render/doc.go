// Package render turns converted graphs into node-link diagrams.
//
// # Overview
//
// Rendering is a two-step pipeline: [ToDOT] serializes a graph to
// Graphviz DOT text, and [RenderSVG] or [RenderPNG] rasterizes that
// text with the embedded Graphviz engine. The DOT step is pure and
// deterministic, which makes diagram output cacheable by graph hash.
//
//	dot := render.ToDOT(g, render.Options{})
//	svg, err := render.RenderSVG(dot)
//
// Node titles become box labels. With Options.Detailed, labels also
// carry per-section item counts ("Props (2)") and edges are labeled
// with their type. Layout is delegated entirely to Graphviz; this
// package only controls direction via Options.Direction.
package render
