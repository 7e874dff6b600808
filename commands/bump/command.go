package bumpCmd

import (
	// Stdlib
	"os"

	// Internal
	"github.com/cascii/verflow/app"
	"github.com/cascii/verflow/app/appflags"
	"github.com/cascii/verflow/bump"
	"github.com/cascii/verflow/errs"
	"github.com/cascii/verflow/version"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "bump [-base=VERSION] [-message=MSG]",
	Short:     "bump the project version from the commit message",
	Long: `
  Inspect the latest commit message and bump the project version
  accordingly: a message containing "feature" bumps minor, a message
  containing "fix" bumps patch, anything else is a no-op. The rewritten
  files are folded into the commit by amending it.

  In case -message is set, the given message is inspected instead of
  the latest commit message.

  In case -base is set, the given version is bumped instead of the
  version currently stored in the backend manifest.

  This is the same operation the post-commit hook performs. Just like
  the hook, this command never exits with a non-zero status so that it
  can be chained into commit workflows safely.
	`,
	Action: run,
}

var (
	flagBase    version.Version
	flagMessage string
)

func init() {
	// Register flags.
	Command.Flags.Var(&flagBase, "base",
		"bump the given version instead of the current one")
	Command.Flags.StringVar(&flagMessage, "message", flagMessage,
		"inspect the given message instead of the latest commit message")

	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)
}

func run(cmd *gocli.Command, args []string) {
	if len(args) != 0 {
		cmd.Usage()
		os.Exit(2)
	}

	app.InitOrDie()

	opts := &bump.Options{Message: flagMessage}
	if !flagBase.Zero() {
		opts.Base = &flagBase
	}

	// Failures are reported, but the exit status stays zero.
	if err := bump.Run(opts); err != nil {
		errs.Log(err)
	}
}
