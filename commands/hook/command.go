package hookCmd

import (
	// Internal
	"github.com/cascii/verflow/app/appflags"
	installCmd "github.com/cascii/verflow/commands/hook/install"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "hook",
	Short:     "manage the verflow git hooks",
	Long: `
  Manage the verflow git hooks for the current repository.
  See the subcommands.
	`,
	Action: func(cmd *gocli.Command, args []string) {
		cmd.Usage()
	},
}

func init() {
	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)

	// Register subcommands.
	Command.MustRegisterSubcommand(installCmd.Command)
}
