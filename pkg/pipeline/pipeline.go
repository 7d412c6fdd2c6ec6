// Package pipeline provides the core convert → render pipeline for Graphlift.
//
// This package implements the complete detect → convert → render flow
// shared by the CLI and the API server. By centralizing this logic, we
// ensure consistent caching and identical behavior across all entry
// points.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Convert: Detect the analysis format and convert the document into
//     the common graph model
//  2. Render: Generate DOT text or a Graphviz-rendered SVG/PNG artifact
//
// Each stage can be run independently or chained. Both stages cache
// their results: conversions are keyed by analysis format and document
// hash, renders by graph hash and render options.
//
// # Usage
//
// Create a Runner and run the stages:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Convert(ctx, doc, pipeline.ConvertOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	art, err := runner.Render(ctx, res.Graph, pipeline.RenderOptions{Format: "svg"})
package pipeline

import (
	"github.com/graphlift/graphlift/pkg/cache"
	"github.com/graphlift/graphlift/pkg/convert"
	"github.com/graphlift/graphlift/pkg/errors"
)

// Format constants for render output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// DefaultFormat is the default render output format.
const DefaultFormat = FormatSVG

// DefaultDirection is the default graph layout direction.
const DefaultDirection = "TB"

// ValidFormats is the set of supported render output formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
	FormatPNG: true,
}

// ValidDirections is the set of supported layout directions.
var ValidDirections = map[string]bool{
	"TB": true,
	"LR": true,
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a render format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid render format: %q (must be one of: dot, svg, png)", format)
	}
	return nil
}

// ValidateDirection checks that a layout direction is valid.
func ValidateDirection(direction string) error {
	if !ValidDirections[direction] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid direction: %q (must be one of: TB, LR)", direction)
	}
	return nil
}

// =============================================================================
// Options
// =============================================================================

// ConvertOptions configure a single conversion.
// This struct supports JSON serialization for API requests.
type ConvertOptions struct {
	// Format pins the analysis format, bypassing detection.
	Format convert.Format `json:"format,omitempty"`

	// Refresh bypasses the cache lookup and overwrites the entry.
	Refresh bool `json:"refresh,omitempty"`
}

// RenderOptions configure a single render.
type RenderOptions struct {
	// Format selects the output: "dot", "svg", or "png".
	Format string `json:"format,omitempty"`

	// Direction is the Graphviz rank direction, "TB" or "LR".
	Direction string `json:"direction,omitempty"`

	// Detailed adds section counts to node labels and type labels to
	// edges.
	Detailed bool `json:"detailed,omitempty"`

	// Refresh bypasses the cache lookup and overwrites the entry.
	Refresh bool `json:"refresh,omitempty"`
}

// SetDefaults applies default values for unset render options.
func (o *RenderOptions) SetDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Direction == "" {
		o.Direction = DefaultDirection
	}
}

// Validate applies defaults and checks the render options.
func (o *RenderOptions) Validate() error {
	o.SetDefaults()
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	return ValidateDirection(o.Direction)
}

// keyOpts returns the cache key options for these render options.
func (o *RenderOptions) keyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Format:    o.Format,
		Direction: o.Direction,
		Detailed:  o.Detailed,
	}
}
