package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/graphlift/graphlift/pkg/convert"
	"github.com/graphlift/graphlift/pkg/errors"
	graphio "github.com/graphlift/graphlift/pkg/io"
)

// detectCommand creates the detect command.
// It prints the ecosystem tag of an analysis document on stdout, which
// makes it usable in shell pipelines; an unrecognized document exits
// non-zero.
func (c *CLI) detectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <analysis.json>",
		Short: "Report which ecosystem an analysis document came from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func runDetect(ctx context.Context, w io.Writer, input string) error {
	logger := loggerFromContext(ctx)

	doc, err := graphio.ImportFile(input)
	if err != nil {
		return err
	}

	format := convert.Detect(doc)
	logger.Debugf("Detected format %s", format)
	if format == convert.FormatUnknown {
		return errors.New(errors.ErrCodeUnsupportedFormat, "unrecognized analysis document: %s", input)
	}

	fmt.Fprintln(w, format.Ecosystem())
	return nil
}
