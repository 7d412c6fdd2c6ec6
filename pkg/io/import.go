package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/graphlift/graphlift/pkg/errors"
	"github.com/graphlift/graphlift/pkg/graph"
)

// ReadAnalysis decodes a JSON analysis document from r.
//
// The document is returned in generic decoded form (map[string]any,
// []any, and scalars) so that format detection can inspect its shape
// before a converter projects it onto typed records. Malformed JSON
// fails with INVALID_INPUT. ReadAnalysis does not close r.
func ReadAnalysis(r io.Reader) (any, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode analysis document")
	}
	return v, nil
}

// ImportFile reads a JSON analysis document from the file at path.
//
// ImportFile opens the file, decodes it using [ReadAnalysis], and
// closes the file. A missing file fails with FILE_NOT_FOUND; any other
// open failure fails with INVALID_PATH.
func ImportFile(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadAnalysis(f)
}

// ImportGraph reads a previously exported graph document from the file
// at path. The graph is validated before it is returned, so a document
// that decodes but violates structural rules (duplicate node ids,
// dangling edges) fails with INVALID_GRAPH.
func ImportGraph(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	g, err := graph.Read(f)
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read graph %s", path)
	}
	return g, nil
}
