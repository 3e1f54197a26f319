package commands

import (
	"fmt"
	"strconv"

	"github.com/nmeilick/oabutils/common"
	"github.com/nmeilick/oabutils/platform"
	"github.com/urfave/cli/v2"
)

// SetPermissionsCommand returns the command applying octal permission bits
func SetPermissionsCommand(rt *Runtime) *cli.Command {
	return &cli.Command{
		Name:      "set-permissions",
		Usage:     "Set the permission bits of a file",
		ArgsUsage: "<mode> <input>",
		Description: "MODE is given in octal (e.g. 644). Nothing is changed when the file " +
			"already has the requested bits.",
		Action: func(c *cli.Context) error {
			return runSetPermissions(c, rt)
		},
	}
}

// ParseMode parses an octal mode string. Bits above 0o7777 are dropped.
func ParseMode(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: error parsing input %s: %w", common.ErrInvalidInput, s, err)
	}
	return uint32(n) & platform.ModeMask, nil
}

func runSetPermissions(c *cli.Context, rt *Runtime) error {
	log := common.NewLogger(c)

	if err := requireArgs(c, 2); err != nil {
		return err
	}
	modeStr, path := c.Args().Get(0), c.Args().Get(1)

	mode, err := ParseMode(modeStr)
	if err != nil {
		log.Error().Err(err).Msg("Invalid mode")
		return err
	}

	changed, err := rt.FS.SetMode(path, mode)
	rt.auditor(c).SetMode(path, mode, changed, err)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to set permissions")
		return err
	}

	if changed {
		log.Info().Str("path", path).Str("mode", fmt.Sprintf("%o", mode)).Msg("Permissions changed")
	} else {
		log.Info().Str("path", path).Str("mode", fmt.Sprintf("%o", mode)).Msg("Permissions already set")
	}
	return nil
}
