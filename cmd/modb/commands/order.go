package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order [applications...]",
		Short: "Print modules in dependency-respecting load order",
		Long: "Print every module of the given applications exactly once, each after " +
			"all of its dependencies. Several applications are loaded independently " +
			"and merged before ordering.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appDir, defaults, err := c.workspace(cmd)
			if err != nil {
				return err
			}

			names, err := applications(args, defaults)
			if err != nil {
				return err
			}

			order, err := c.app.Order(appDir, names)
			if err != nil {
				return err
			}

			for _, module := range order {
				fmt.Fprintln(c.out, module)
			}
			return nil
		},
	}
}
