package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources <application> <module>",
		Short: "Print a module's resource paths",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			appDir, _, err := c.workspace(cmd)
			if err != nil {
				return err
			}

			resources, err := c.app.Resources(appDir, args[0], args[1])
			if err != nil {
				return err
			}

			for _, resource := range resources {
				fmt.Fprintln(c.out, resource)
			}
			return nil
		},
	}
}
