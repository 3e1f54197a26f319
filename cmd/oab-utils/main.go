package main

import (
	"io"
	"os"

	"github.com/nmeilick/oabutils/commands"
	"github.com/nmeilick/oabutils/common"
)

// run executes the command line in args and returns the process exit code.
func run(args []string, rt *commands.Runtime, stdout, stderr io.Writer) int {
	app := commands.NewApp(rt)
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(args); err != nil {
		common.PrintError(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, commands.NewRuntime(), os.Stdout, os.Stderr))
}
