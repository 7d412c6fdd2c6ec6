package io

import (
	"io"
	"os"

	"github.com/graphlift/graphlift/pkg/errors"
	"github.com/graphlift/graphlift/pkg/graph"
)

// WriteGraph encodes g as indented JSON and writes it to w.
// The output can be re-read with [ImportGraph] for round-trip
// processing.
func WriteGraph(g *graph.Graph, w io.Writer) error {
	return graph.Write(g, w)
}

// ExportGraph writes g to a JSON file at path, creating or truncating
// the file. An unwritable path fails with INVALID_PATH.
func ExportGraph(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return graph.Write(g, f)
}
