package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/docgraph/pkg/graph"
	"github.com/matzehuels/docgraph/pkg/pipeline"
)

func (c *CLI) exportCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
		flags    layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "export <request.json|graph.json|->",
		Short: "Render a graph as Graphviz DOT or SVG",
		Long: `Render a graph as Graphviz DOT or SVG.

The input is either a request (documents and relationships), which is laid
out first, or a graph.json written by 'docgraph layout'. Nodes keep the
computed positions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateExportFormat(format); err != nil {
				return err
			}
			lo, err := flags.resolve(cmd.Flags(), c.config().Layout)
			if err != nil {
				return err
			}
			opts := pipeline.Options{
				Options:  lo,
				Refresh:  flags.refresh,
				Detailed: detailed,
			}
			return c.runExport(cmd, args[0], output, format, opts, flags.noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatSVG, "output format: svg, dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show full filenames under node labels")
	flags.register(cmd.Flags())
	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, input, output, format string, opts pipeline.Options, noCache bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	g, err := c.loadGraph(ctx, cmd, runner, input, opts)
	if err != nil {
		return err
	}
	data, hit, err := runner.ExportWithCacheInfo(ctx, g, format, opts)
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	path := outputPath(input, output, "."+format)
	if err := writeOutput(cmd, path, data); err != nil {
		return err
	}
	if path == "-" {
		return nil
	}

	c.out.success("Exported %s", format)
	c.out.file(path)
	c.out.stats(g.Metadata.Caption(), hit)
	return nil
}

// loadGraph accepts a laid-out graph as is and lays out anything else as
// a request.
func (c *CLI) loadGraph(ctx context.Context, cmd *cobra.Command, runner *pipeline.Runner, input string, opts pipeline.Options) (*graph.Graph, error) {
	data, err := readInput(cmd, input)
	if err != nil {
		return nil, err
	}
	if g, err := graph.UnmarshalGraph(data); err == nil && g.Metadata.LayoutAlgorithm != "" {
		c.Logger.Debug("input is a laid-out graph", "nodes", len(g.Nodes))
		return g, nil
	}

	req, err := pipeline.ParseRequest(data)
	if err != nil {
		return nil, err
	}
	res, err := runner.Execute(ctx, req, opts)
	if err != nil {
		return nil, err
	}
	return res.Graph, nil
}
