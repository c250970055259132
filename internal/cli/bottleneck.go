package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuits/merge"
)

func (c *CLI) bottleneckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bottleneck [file]",
		Short: "Find the connection that joins all junctions into one circuit",
		Long: `Connects junctions shortest-first until a single circuit remains and prints
the product of the X coordinates of the two junctions in the final connection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			points, err := c.readPoints(cmd, args)
			if err != nil {
				return err
			}

			timer := startQuery(logger, len(points))
			res, err := merge.BottleneckMerge(points)
			if err != nil {
				return fmt.Errorf("bottleneck: %w", err)
			}
			// The query itself is not interruptible; honor a signal that arrived meanwhile.
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.Debug("Bottleneck connection", "a", res.A, "b", res.B, "distance", res.Distance)
			timer.finish("Joined junctions", "merges", res.Merges)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.A.X*res.B.X)
			return err
		},
	}
}
