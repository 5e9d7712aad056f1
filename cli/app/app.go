package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Tommo-L/neo-node/cli/server"
	"github.com/urfave/cli"
)

// Version is the version of the node, set at build time.
var Version string

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "NeoNode\nVersion: %s\nGoVersion: %s\n",
		Version,
		runtime.Version(),
	)
}

// New creates a NeoNode instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "neo-node"
	ctl.Version = Version
	ctl.Usage = "Neo node"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, server.NewCommands()...)
	return ctl
}
