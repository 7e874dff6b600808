package installCmd

import (
	// Stdlib
	"os"

	// Internal
	"github.com/cascii/verflow/app"
	"github.com/cascii/verflow/app/appflags"
	"github.com/cascii/verflow/asciiart"
	"github.com/cascii/verflow/errs"
	"github.com/cascii/verflow/hooks"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "install",
	Short:     "install the verflow post-commit hook",
	Long: `
  Install the verflow post-commit hook into the current repository.
  The hook executable is expected to be located in the same directory
  as verflow itself.

  In case a foreign post-commit hook is already installed, you are
  asked before it is replaced.
	`,
	Action: run,
}

func init() {
	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)
}

func run(cmd *gocli.Command, args []string) {
	if len(args) != 0 {
		cmd.Usage()
		os.Exit(2)
	}

	app.InitOrDie()

	if err := hooks.CheckAndUpsert(hooks.HookTypePostCommit); err != nil {
		errs.Fatal(err)
	}

	asciiart.PrintThumbsUp()
}
