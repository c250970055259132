package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuits/merge"
)

func (c *CLI) connectCommand() *cobra.Command {
	var connections, top int

	cmd := &cobra.Command{
		Use:   "connect [file]",
		Short: "Report circuit sizes after the shortest N connections",
		Long: `Processes the N shortest junction pairs (pairs already in one circuit still
count) and prints the product of the sizes of the K largest circuits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if !cmd.Flags().Changed("connections") {
				connections = c.cfg.Connections
			}
			if !cmd.Flags().Changed("top") {
				top = c.cfg.Top
			}
			if top < 1 {
				return fmt.Errorf("connect: top must be >= 1, got %d", top)
			}

			points, err := c.readPoints(cmd, args)
			if err != nil {
				return err
			}

			timer := startQuery(logger, len(points))
			circuits, err := merge.Connect(points, connections)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if circuits.Connections < connections {
				logger.Warn("Fewer pairs than requested connections", "requested", connections, "processed", circuits.Connections)
			}
			logger.Debug("Circuits", "count", len(circuits.Sizes), "largest", circuits.Sizes[0])
			timer.finish("Connected junctions", "connections", circuits.Connections, "circuits", len(circuits.Sizes))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), circuits.Product(top))
			return err
		},
	}

	cmd.Flags().IntVarP(&connections, "connections", "n", defaultConnections, "number of shortest pairs to process")
	cmd.Flags().IntVarP(&top, "top", "k", defaultTop, "number of largest circuits to multiply")

	return cmd
}
