package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	graphio "github.com/graphlift/graphlift/pkg/io"
	"github.com/graphlift/graphlift/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path (derived from input if empty)
	format    string // output format: "dot", "svg", "png"
	direction string // layout direction: "TB" or "LR"
	detailed  bool   // section counts in node labels, type labels on edges
	refresh   bool   // bypass the cache lookup
	noCache   bool   // disable caching entirely
}

// renderCommand creates the render command for generating diagrams from
// a converted graph.
//
// Default settings:
//   - format: svg
//   - direction: TB (top to bottom)
//   - output: input path with the format's extension
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format:    pipeline.DefaultFormat,
		direction: pipeline.DefaultDirection,
	}

	cmd := &cobra.Command{
		Use:   "render <graph.json>",
		Short: "Render a graph to DOT, SVG, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			if err := pipeline.ValidateDirection(opts.direction); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (derived from input if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, png")
	cmd.Flags().StringVarP(&opts.direction, "direction", "d", opts.direction, "layout direction: TB (default), LR")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label nodes with section counts and edges with types")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender loads the graph from input and renders it to the requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	g, err := graphio.ImportGraph(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", len(g.Nodes), len(g.Edges))

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinner(fmt.Sprintf("Rendering %s...", opts.format))
	spin.Start()
	res, err := runner.Render(ctx, g, pipeline.RenderOptions{
		Format:    opts.format,
		Direction: opts.direction,
		Detailed:  opts.detailed,
		Refresh:   opts.refresh,
	})
	if err != nil {
		spin.StopWithError(fmt.Sprintf("Rendering %s failed", opts.format))
		return err
	}
	spin.Stop()
	logger.Debugf("Generated %s: %d bytes", res.Format, len(res.Data))

	// Determine output path: use provided output or derive from input
	outputPath := opts.output
	if outputPath == "" {
		outputPath = defaultOutputPath(input, res.Format)
	}

	out, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(res.Data); err != nil {
		return err
	}

	printSuccess("Rendered %s", input)
	printFile(outputPath)
	printArtifact(int64(len(res.Data)), res.CacheHit)
	return nil
}

// defaultOutputPath derives the output path from the input file by
// swapping its extension for the render format's.
func defaultOutputPath(input, format string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
