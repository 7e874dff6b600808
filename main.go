package main

import (
	// Stdlib
	"fmt"
	"os"
	"os/signal"

	// Internal
	bumpCmd "github.com/cascii/verflow/commands/bump"
	hookCmd "github.com/cascii/verflow/commands/hook"
	versionCmd "github.com/cascii/verflow/commands/version"
	"github.com/cascii/verflow/metadata"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

func main() {
	// Initialise the application.
	verflow := gocli.NewApp("verflow")
	verflow.UsageLine = "verflow SUBCMD [SUBCMD_OPTION ...]"
	verflow.Short = "version automation for the cascii decorator app"
	verflow.Version = metadata.Version
	verflow.Long = `
  verflow keeps the decorator project version synchronized across the
  backend manifest, the secondary manifest and the application
  descriptor, and bumps it automatically from commit messages when
  installed as a post-commit hook. See the list of subcommands.`

	// Register subcommands.
	verflow.MustRegisterSubcommand(bumpCmd.Command)
	verflow.MustRegisterSubcommand(hookCmd.Command)
	verflow.MustRegisterSubcommand(versionCmd.Command)

	// Start processing signals.
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt)
	go catchSignals(signalCh)

	// Run the application.
	verflow.Run(os.Args[1:])
}

func catchSignals(ch chan os.Signal) {
	<-ch
	fmt.Print(`
+-----------------------------------------------------+
| Signal received, the child processes were notified. |
| Send the signal again to exit immediately.          |
+-----------------------------------------------------+
	`)
	signal.Stop(ch)
}
