// Package commands implements the CLI commands for the modb resolver.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/modb-dev/modb/internal/app"
	"github.com/modb-dev/modb/internal/core/domain"
	"github.com/modb-dev/modb/internal/core/ports"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for modb.
type CLI struct {
	app     *app.App
	config  ports.ConfigLoader
	rootCmd *cobra.Command
	out     io.Writer
}

// New creates a new CLI instance with the given components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "modb",
		Short:         "Resolve module dependency graphs for modular application builds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("app-dir", "d", "", "Directory containing module and application descriptors")
	rootCmd.PersistentFlags().StringP("config", "c", "modb.yaml", "Path to workspace configuration file")

	c := &CLI{
		app:     components.App,
		config:  components.Config,
		rootCmd: rootCmd,
		out:     os.Stdout,
	}

	rootCmd.AddCommand(c.newOrderCmd())
	rootCmd.AddCommand(c.newManifestCmd())
	rootCmd.AddCommand(c.newClosureCmd())
	rootCmd.AddCommand(c.newResourcesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(out io.Writer) {
	c.out = out
	c.rootCmd.SetOut(out)
}

// workspace resolves the application directory and the default application
// set: the --app-dir flag wins, otherwise the workspace config file (--config,
// default modb.yaml in the working directory) supplies both.
func (c *CLI) workspace(cmd *cobra.Command) (string, []string, error) {
	appDir, err := cmd.Flags().GetString("app-dir")
	if err != nil {
		return "", nil, err
	}
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to determine working directory")
	}

	ws, err := c.config.Load(cwd, configFile)
	if err != nil {
		return "", nil, err
	}

	if appDir == "" {
		appDir = ws.AppDir
	}
	if appDir == "" {
		appDir = cwd
	}
	return appDir, ws.Applications, nil
}

// applications picks the application names: explicit arguments win over the
// workspace defaults.
func applications(args, defaults []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if len(defaults) > 0 {
		return defaults, nil
	}
	return nil, domain.ErrNoApplicationsSpecified
}
