// Package commands wires the identity and platform packages into the
// oab-utils command line.
package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nmeilick/oabutils/audit"
	"github.com/nmeilick/oabutils/common"
	"github.com/nmeilick/oabutils/common/duration"
	"github.com/nmeilick/oabutils/config"
	"github.com/nmeilick/oabutils/identity"
	"github.com/nmeilick/oabutils/platform"
	"github.com/urfave/cli/v2"
)

var errNoCommand = errors.New("no commands specified")

func init() {
	// -v belongs to --verbose.
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

// Runtime holds the collaborators every command works with.
type Runtime struct {
	FS       *platform.FS
	Resolver identity.Resolver

	// Audit is opened from the configuration on first use when nil.
	Audit *audit.Logger

	auditCfg *audit.Config
	ownAudit bool
}

// NewRuntime returns a Runtime backed by the host filesystem and the system
// identity databases.
func NewRuntime() *Runtime {
	return &Runtime{
		FS:       platform.NewOS(),
		Resolver: identity.NewSystem(),
	}
}

// auditor returns the audit logger, opening the configured audit file on
// first use. When the file cannot be opened auditing is disabled with a
// warning and the command carries on.
func (rt *Runtime) auditor(c *cli.Context) *audit.Logger {
	if rt.Audit != nil {
		return rt.Audit
	}
	log := common.NewLogger(c)

	l, err := audit.New(rt.auditCfg)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("Auditing disabled")
		fmt.Fprintf(c.App.ErrWriter, "Warning: auditing disabled: %s\n", err)
		l = audit.Disabled()
	case rt.auditCfg.Enabled():
		log.Debug().
			Str("file", rt.auditCfg.File).
			Str("retention", duration.String(rt.auditCfg.GetMaxAge())).
			Msg("Auditing enabled")
	}

	rt.Audit = l
	rt.ownAudit = true
	return l
}

// NewApp builds the command line application.
func NewApp(rt *Runtime) *cli.App {
	return &cli.App{
		Name:    common.AppName,
		Usage:   "Inspect and change file ownership and permissions",
		Version: common.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				EnvVars: []string{config.EnvConfigPath},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose output",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, path, err := config.LoadConfig(c)
			if err != nil {
				return err
			}
			if cfg.Verbose && !c.IsSet("verbose") {
				if err := c.Set("verbose", "true"); err != nil {
					return err
				}
			}

			log := common.NewLogger(c)
			log.Debug().Str("config", path).Msg("Configuration loaded")

			rt.auditCfg = cfg.Audit
			return nil
		},
		After: func(c *cli.Context) error {
			if !rt.ownAudit {
				return nil
			}
			err := rt.Audit.Close()
			rt.Audit, rt.ownAudit = nil, false
			return err
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				_ = cli.ShowAppHelp(c)
				return fmt.Errorf("unknown command %q", c.Args().First())
			}
			return errNoCommand
		},
		Commands: []*cli.Command{
			OwnerCommand(rt),
			SetPermissionsCommand(rt),
			ChangeOwnerCommand(rt),
			SetupCommand(),
		},
	}
}

// requireArgs checks the positional argument count of a command.
func requireArgs(c *cli.Context, n int) error {
	if c.NArg() == n {
		return nil
	}
	_ = cli.ShowCommandHelp(c, c.Command.Name)
	usage := strings.TrimSpace(strings.Join([]string{common.AppName, c.Command.Name, c.Command.ArgsUsage}, " "))
	if c.NArg() < n {
		return fmt.Errorf("missing arguments; usage: %s", usage)
	}
	return fmt.Errorf("too many arguments; usage: %s", usage)
}
