package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newClosureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "closure <application> <module>",
		Short: "Print a module's transitive dependency closure",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			appDir, _, err := c.workspace(cmd)
			if err != nil {
				return err
			}

			closure, err := c.app.Closure(appDir, args[0], args[1])
			if err != nil {
				return err
			}

			for _, module := range closure {
				fmt.Fprintln(c.out, module)
			}
			return nil
		},
	}
}
