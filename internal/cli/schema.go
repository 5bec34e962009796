package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/docgraph/pkg/graph"
)

func (c *CLI) schemaCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a layout request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := graph.MarshalRequestSchema()
			if err != nil {
				return err
			}
			if output == "" {
				output = "-"
			}
			return writeOutput(cmd, output, append(data, '\n'))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
