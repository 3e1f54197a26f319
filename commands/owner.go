package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/nmeilick/oabutils/common"
	"github.com/nmeilick/oabutils/platform"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

const unknownName = "?"

// OwnerCommand returns the command printing the owner of a path
func OwnerCommand(rt *Runtime) *cli.Command {
	return &cli.Command{
		Name:      "owner",
		Usage:     "Print the owning uid and gid of a file",
		ArgsUsage: "<input>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "names",
				Aliases: []string{"n"},
				Usage:   "Also print the user and group names",
			},
			&cli.BoolFlag{
				Name:    "table",
				Aliases: []string{"t"},
				Usage:   "Print ownership, mode and size as a table",
			},
		},
		Action: func(c *cli.Context) error {
			return runOwner(c, rt)
		},
	}
}

func runOwner(c *cli.Context, rt *Runtime) error {
	log := common.NewLogger(c)

	if err := requireArgs(c, 1); err != nil {
		return err
	}
	path := c.Args().First()

	own, err := rt.FS.Owner(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to read owner")
		return err
	}
	log.Info().Str("path", path).Uint32("uid", own.UID).Uint32("gid", own.GID).Msg("Read owner")

	if c.Bool("table") {
		return renderOwnerTable(c, rt, path, own)
	}

	fmt.Fprintf(c.App.Writer, "uid: %d\ngid: %d\n", own.UID, own.GID)
	if c.Bool("names") {
		user, group := names(rt, own)
		fmt.Fprintf(c.App.Writer, "user: %s\ngroup: %s\n", user, group)
	}
	return nil
}

// names resolves the ids of own, using "?" for ids without a database entry.
func names(rt *Runtime, own platform.Ownership) (user, group string) {
	user, err := rt.Resolver.UserName(own.UID)
	if err != nil {
		user = unknownName
	}
	group, err = rt.Resolver.GroupName(own.GID)
	if err != nil {
		group = unknownName
	}
	return user, group
}

func renderOwnerTable(c *cli.Context, rt *Runtime, path string, own platform.Ownership) error {
	info, err := rt.FS.Stat(path)
	if err != nil {
		return err
	}
	user, group := names(rt, own)

	table := tablewriter.NewWriter(c.App.Writer)
	table.SetHeader([]string{"Path", "UID", "User", "GID", "Group", "Mode", "Size"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(true)
	table.Append([]string{
		path,
		fmt.Sprintf("%d", own.UID),
		user,
		fmt.Sprintf("%d", own.GID),
		group,
		fmt.Sprintf("%04o", platform.ModeBits(info.Mode())),
		humanize.IBytes(uint64(info.Size())),
	})
	table.Render()
	return nil
}
