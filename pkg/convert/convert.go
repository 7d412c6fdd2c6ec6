package convert

import (
	"github.com/graphlift/graphlift/pkg/convert/django"
	"github.com/graphlift/graphlift/pkg/convert/java"
	"github.com/graphlift/graphlift/pkg/convert/react"
	"github.com/graphlift/graphlift/pkg/errors"
	"github.com/graphlift/graphlift/pkg/graph"
)

// Convert detects the format of a decoded analysis document and
// dispatches to the matching converter. It is the single entry point
// used by the CLI and the API server.
//
// Convert holds no state: every call produces a fully independent
// graph, and concurrent calls need no coordination.
func Convert(v any) (*graph.Graph, error) {
	return ConvertAs(Detect(v), v)
}

// ConvertAs converts a document as an explicitly chosen format,
// bypassing detection. Used when the caller already knows the format
// (e.g. a --format flag).
func ConvertAs(f Format, v any) (*graph.Graph, error) {
	switch f {
	case FormatReact:
		return react.Convert(v)
	case FormatReactLegacy:
		return react.ConvertLegacy(v)
	case FormatJava:
		return java.Convert(v)
	case FormatDjango:
		return django.Convert(v)
	case FormatUnknown:
		return nil, errors.New(errors.ErrCodeUnsupportedFormat,
			"unrecognized analysis document: no known ecosystem shape matched")
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no converter for format %q", f)
	}
}
