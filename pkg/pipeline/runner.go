package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/graphlift/graphlift/pkg/cache"
	"github.com/graphlift/graphlift/pkg/convert"
	"github.com/graphlift/graphlift/pkg/graph"
	graphio "github.com/graphlift/graphlift/pkg/io"
	"github.com/graphlift/graphlift/pkg/observability"
	"github.com/graphlift/graphlift/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the per-kind default entry lifetime when positive.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// ConvertResult contains the outputs of a conversion.
type ConvertResult struct {
	// Graph is the converted graph.
	Graph *graph.Graph

	// Format is the analysis format the document was converted as.
	Format convert.Format

	// GraphHash is the content hash of the serialized graph.
	GraphHash string

	// CacheHit reports whether the graph came from the cache.
	CacheHit bool

	// Duration is the time spent converting (or looking up the cache).
	Duration time.Duration
}

// RenderResult contains the outputs of a render.
type RenderResult struct {
	// Data is the rendered artifact.
	Data []byte

	// Format is the render output format.
	Format string

	// CacheHit reports whether the artifact came from the cache.
	CacheHit bool

	// Duration is the time spent rendering (or looking up the cache).
	Duration time.Duration
}

// Convert decodes raw analysis bytes and converts them into a graph,
// detecting the format unless opts.Format pins one.
//
// Results are cached by format and document hash, so converting the
// same document twice decodes it twice but converts it once.
func (r *Runner) Convert(ctx context.Context, raw []byte, opts ConvertOptions) (*ConvertResult, error) {
	doc, err := graphio.ReadAnalysis(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	start := time.Now()

	format := opts.Format
	if format == "" {
		format = convert.Detect(doc)
		observability.Convert().OnDetect(ctx, string(format))
		r.Logger.Debug("detected analysis format", "format", format)
	}

	cacheKey := r.Keyer.ConversionKey(string(format), cache.Hash(raw))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if g, err := graph.Read(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "conversion")
				return &ConvertResult{
					Graph:     g,
					Format:    format,
					GraphHash: cache.Hash(data),
					CacheHit:  true,
					Duration:  time.Since(start),
				}, nil
			}
			// Corrupt entry: fall through and reconvert
		}
		observability.Cache().OnCacheMiss(ctx, "conversion")
	}

	observability.Convert().OnConvertStart(ctx, string(format))
	g, err := convert.ConvertAs(format, doc)
	duration := time.Since(start)
	if err != nil {
		observability.Convert().OnConvertComplete(ctx, string(format), 0, 0, duration, err)
		return nil, err
	}
	observability.Convert().OnConvertComplete(ctx, string(format), len(g.Nodes), len(g.Edges), duration, nil)

	r.Logger.Info("converted analysis",
		"format", format,
		"nodes", len(g.Nodes),
		"edges", len(g.Edges),
		"duration", duration)

	result := &ConvertResult{
		Graph:    g,
		Format:   format,
		Duration: duration,
	}

	// Cache the result
	if data, err := graph.Marshal(g); err == nil {
		result.GraphHash = cache.Hash(data)
		_ = r.Cache.Set(ctx, cacheKey, data, r.ttl(cache.TTLConversion))
		observability.Cache().OnCacheSet(ctx, "conversion", len(data))
	}

	return result, nil
}

// Render generates an artifact from a graph in the requested format.
//
// Artifacts are cached by graph hash and render options.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, opts RenderOptions) (*RenderResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	graphData, err := graph.Marshal(g)
	if err != nil {
		return nil, err
	}
	cacheKey := r.Keyer.RenderKey(cache.Hash(graphData), opts.keyOpts())
	start := time.Now()

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "render")
			return &RenderResult{
				Data:     data,
				Format:   opts.Format,
				CacheHit: true,
				Duration: time.Since(start),
			}, nil
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	observability.Convert().OnRenderStart(ctx, opts.Format)
	dot := render.ToDOT(g, render.Options{
		Direction: opts.Direction,
		Detailed:  opts.Detailed,
	})

	var data []byte
	switch opts.Format {
	case FormatDOT:
		data = []byte(dot)
	case FormatSVG:
		data, err = render.RenderSVG(dot)
	case FormatPNG:
		data, err = render.RenderPNG(dot)
	}
	duration := time.Since(start)
	observability.Convert().OnRenderComplete(ctx, opts.Format, duration, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("rendered graph",
		"format", opts.Format,
		"bytes", len(data),
		"duration", duration)

	_ = r.Cache.Set(ctx, cacheKey, data, r.ttl(cache.TTLRender))
	observability.Cache().OnCacheSet(ctx, "render", len(data))

	return &RenderResult{
		Data:     data,
		Format:   opts.Format,
		Duration: duration,
	}, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// ttl returns the configured TTL override, or the per-kind default.
func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}
