package commands

import (
	"fmt"

	"github.com/nmeilick/oabutils/common"
	"github.com/nmeilick/oabutils/identity"
	"github.com/nmeilick/oabutils/platform"
	"github.com/urfave/cli/v2"
)

// ChangeOwnerCommand returns the command changing the owner of a path
func ChangeOwnerCommand(rt *Runtime) *cli.Command {
	return &cli.Command{
		Name:      "change-owner",
		Usage:     "Change the owner and optionally the group of a file",
		ArgsUsage: "<id> <path>",
		Description: "ID is a uid or user name, optionally followed by :gid or :group. " +
			"Without a group the file keeps its current group.",
		Action: func(c *cli.Context) error {
			return runChangeOwner(c, rt)
		},
	}
}

func runChangeOwner(c *cli.Context, rt *Runtime) error {
	log := common.NewLogger(c)

	if err := requireArgs(c, 2); err != nil {
		return err
	}
	id, path := c.Args().Get(0), c.Args().Get(1)

	pair, err := identity.ParseInput(rt.Resolver, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to resolve owner")
		return fmt.Errorf("unable to parse input: %w", err)
	}

	gid := pair.GID
	if !pair.HasGID {
		// The group read here may be changed by someone else before the
		// chown below; the old value is applied regardless.
		own, err := rt.FS.Owner(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("Failed to read current group")
			return fmt.Errorf("unable to get group id for %s: %w", path, err)
		}
		gid = own.GID
	}

	log.Debug().Bool("admin", platform.IsAdmin()).Str("path", path).
		Uint32("uid", pair.UID).Uint32("gid", gid).Msg("Changing owner")

	err = rt.FS.SetOwner(path, pair.UID, gid)
	rt.auditor(c).ChangeOwner(path, pair.UID, gid, err)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to change owner")
		return err
	}

	log.Info().Str("path", path).Uint32("uid", pair.UID).Uint32("gid", gid).Msg("Owner changed")
	return nil
}
