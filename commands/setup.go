package commands

import (
	"fmt"

	"github.com/nmeilick/oabutils/config"
	"github.com/urfave/cli/v2"
)

// SetupCommand returns the setup helpers
func SetupCommand() *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Perform setup tasks",
		Subcommands: []*cli.Command{
			{
				Name:   "sample-config",
				Usage:  "Print a sample configuration file to stdout",
				Action: runSampleConfig,
			},
			{
				Name:   "config-path",
				Usage:  "Print the configuration file that would be used",
				Action: runConfigPath,
			},
		},
	}
}

func runSampleConfig(c *cli.Context) error {
	fmt.Fprint(c.App.Writer, config.GetSampleConfig())
	return nil
}

func runConfigPath(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		path = config.FindConfigFile()
	}
	if path == "" {
		return fmt.Errorf("no configuration file found; built-in defaults are used")
	}
	fmt.Fprintln(c.App.Writer, path)
	return nil
}
