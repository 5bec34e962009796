package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	docerrors "github.com/matzehuels/docgraph/pkg/errors"
	"github.com/matzehuels/docgraph/pkg/graph"
	"github.com/matzehuels/docgraph/pkg/layout"
	"github.com/matzehuels/docgraph/pkg/pipeline"
)

// layoutFlags are the layout options settable per invocation. Flags the
// user did not pass leave the configured value alone.
type layoutFlags struct {
	opts    layout.Options
	refresh bool
	noCache bool
}

func (f *layoutFlags) register(fs *pflag.FlagSet) {
	d := layout.DefaultOptions()
	fs.Float64Var(&f.opts.LayerSpacing, "layer-spacing", d.LayerSpacing, "horizontal distance between layers")
	fs.Float64Var(&f.opts.NodeSpacing, "node-spacing", d.NodeSpacing, "vertical distance between nodes in a layer")
	fs.Float64Var(&f.opts.GridSpacingX, "grid-spacing-x", d.GridSpacingX, "column width of the grid layout")
	fs.Float64Var(&f.opts.GridSpacingY, "grid-spacing-y", d.GridSpacingY, "row height of the grid layout")
	fs.IntVar(&f.opts.AnimationThreshold, "animation-threshold", d.AnimationThreshold, "largest node count with animated edges (at least 1)")
	fs.BoolVar(&f.refresh, "refresh", false, "recompute even when cached")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// resolve overlays changed flags on the configured options. Explicit
// values must be positive.
func (f *layoutFlags) resolve(fs *pflag.FlagSet, base layout.Options) (layout.Options, error) {
	opts := base
	spacings := []struct {
		flag string
		dst  *float64
		src  float64
	}{
		{"layer-spacing", &opts.LayerSpacing, f.opts.LayerSpacing},
		{"node-spacing", &opts.NodeSpacing, f.opts.NodeSpacing},
		{"grid-spacing-x", &opts.GridSpacingX, f.opts.GridSpacingX},
		{"grid-spacing-y", &opts.GridSpacingY, f.opts.GridSpacingY},
	}
	for _, s := range spacings {
		if !fs.Changed(s.flag) {
			continue
		}
		if s.src <= 0 {
			return opts, docerrors.New(docerrors.ErrCodeInvalidInput, "--%s must be positive, got %v", s.flag, s.src)
		}
		*s.dst = s.src
	}
	if fs.Changed("animation-threshold") {
		if f.opts.AnimationThreshold < 1 {
			return opts, docerrors.New(docerrors.ErrCodeInvalidInput, "--animation-threshold must be at least 1, got %d", f.opts.AnimationThreshold)
		}
		opts.AnimationThreshold = f.opts.AnimationThreshold
	}
	return opts, nil
}

func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		flags  layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout <request.json|->",
		Short: "Compute a positioned graph from documents and relationships",
		Long: `Compute a positioned graph from a request file.

The request is a JSON object with "documents" (ids) and "relationships"
(from/to/type). With relationships the documents are arranged in layers
left to right, otherwise on a grid. The result is written to
<input>.graph.json unless -o is given; "-" reads stdin and writes stdout.

Results are cached; see 'docgraph cache'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := flags.resolve(cmd.Flags(), c.config().Layout)
			if err != nil {
				return err
			}
			opts := pipeline.Options{
				Options: lo,
				Refresh: flags.refresh,
			}
			return c.runLayout(cmd, args[0], output, opts, flags.noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.graph.json)")
	flags.register(cmd.Flags())
	return cmd
}

func (c *CLI) runLayout(cmd *cobra.Command, input, output string, opts pipeline.Options, noCache bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := c.execute(ctx, cmd, input, opts, noCache)
	if err != nil {
		return err
	}

	data, err := graph.MarshalGraph(res.Graph)
	if err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	path := outputPath(input, output, ".graph.json")
	if err := writeOutput(cmd, path, data); err != nil {
		return err
	}
	if path == "-" {
		return nil
	}

	c.out.success("Layout complete")
	c.out.file(path)
	c.out.stats(res.Graph.Metadata.Caption(), res.CacheHit)
	c.out.newline()
	c.out.nextStep("Preview", appName+" export "+path)
	return nil
}

// execute parses the request at input and runs it through a fresh runner.
func (c *CLI) execute(ctx context.Context, cmd *cobra.Command, input string, opts pipeline.Options, noCache bool) (*pipeline.Result, error) {
	data, err := readInput(cmd, input)
	if err != nil {
		return nil, err
	}
	req, err := pipeline.ParseRequest(data)
	if err != nil {
		return nil, err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return nil, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)
	sp := newSpinner(ctx, cmd.ErrOrStderr(), c.out, "Computing layout...")
	sp.Start()

	res, err := runner.Execute(ctx, req, opts)
	if err != nil {
		sp.StopWithError("Layout failed")
		return nil, err
	}
	sp.Stop()
	if sp.Cancelled() {
		return nil, ctx.Err()
	}

	prog.done("layout ready", "algorithm", res.Graph.Metadata.LayoutAlgorithm, "cached", res.CacheHit)
	return res, nil
}
