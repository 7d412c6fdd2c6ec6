package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/graphlift/graphlift/pkg/convert"
	"github.com/graphlift/graphlift/pkg/errors"
	"github.com/graphlift/graphlift/pkg/graph"
	graphio "github.com/graphlift/graphlift/pkg/io"
	"github.com/graphlift/graphlift/pkg/pipeline"
)

// formatAuto selects format detection instead of a pinned converter.
const formatAuto = "auto"

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	format  string // analysis format ("auto" for detection)
	output  string // output file path (stdout if empty)
	stats   bool   // print a stats line after conversion
	refresh bool   // bypass the cache lookup
	noCache bool   // disable caching entirely
}

// convertCommand creates the convert command.
// It reads an analysis document exported by an ecosystem analyzer,
// detects its format (unless --format pins one), and writes the unified
// graph as JSON.
//
// Default options:
//   - format: auto (probe react, react-legacy, java, django in order)
//   - output: stdout
func (c *CLI) convertCommand() *cobra.Command {
	opts := convertOpts{format: formatAuto}

	cmd := &cobra.Command{
		Use:   "convert <analysis.json>",
		Short: "Convert an analysis document into a unified graph",
		Long: `Convert an ecosystem-specific dependency analysis into a unified graph.

The input format is detected automatically unless --format pins one.

Examples:
  graphlift convert analysis.json                      # Graph JSON on stdout
  graphlift convert analysis.json -o graph.json        # Write to a file
  graphlift convert analysis.json --format react-legacy
  graphlift convert analysis.json -o graph.json --stats`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "analysis format: auto (default), react, react-legacy, java, django")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print node and edge counts after conversion")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runConvert reads the analysis document, converts it through the
// pipeline, and writes the resulting graph.
func (c *CLI) runConvert(ctx context.Context, input string, opts *convertOpts) error {
	logger := loggerFromContext(ctx)

	raw, err := readInput(input)
	if err != nil {
		return err
	}

	pipeOpts := pipeline.ConvertOptions{Refresh: opts.refresh}
	if opts.format != "" && opts.format != formatAuto {
		format, err := convert.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		pipeOpts.Format = format
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	logger.Infof("Converting %s", input)
	done := startProgress(logger)
	res, err := runner.Convert(ctx, raw, pipeOpts)
	if err != nil {
		return err
	}
	done(fmt.Sprintf("Converted %d nodes and %d edges", len(res.Graph.Nodes), len(res.Graph.Edges)))

	if err := writeGraph(res.Graph, opts.output, logger); err != nil {
		return err
	}

	// Status lines only when stdout is free for them
	if opts.output != "" {
		printSuccess("Converted %s", input)
		printFile(opts.output)
		if opts.stats {
			printStats(len(res.Graph.Nodes), len(res.Graph.Edges), res.Graph.Meta.Ecosystem, res.CacheHit)
		}
		printNextStep("Render it", fmt.Sprintf("graphlift render %s", opts.output))
	}
	return nil
}

// readInput reads the analysis document bytes from path.
func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	return data, nil
}

// writeGraph serializes g as JSON to the specified path (or stdout if empty).
// The logger is notified on success with the output path.
func writeGraph(g *graph.Graph, path string, logger *log.Logger) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := graphio.WriteGraph(g, out); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Wrote graph to %s", path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
