package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest [applications...]",
		Short: "Render application manifests",
		Long: "Render each application's own module descriptors as a JSON manifest. " +
			"With --out the manifests are written to <out>/<application>.json, " +
			"unchanged files are left untouched; without it a single manifest is " +
			"printed to stdout.",
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

			outDir, err := cmd.Flags().GetString("out")
			if err != nil {
				return err
			}

			if outDir != "" {
				return c.app.WriteManifests(cmd.Context(), appDir, names, outDir)
			}

			if len(names) != 1 {
				return fmt.Errorf("printing to stdout requires exactly one application, got %d", len(names))
			}
			data, err := c.app.Manifest(appDir, names[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, string(data))
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "", "Directory to write manifests into")
	return cmd
}
