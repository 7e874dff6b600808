package versionCmd

import (
	// Stdlib
	"fmt"
	"os"

	// Internal
	"github.com/cascii/verflow/app"
	"github.com/cascii/verflow/app/appflags"
	setCmd "github.com/cascii/verflow/commands/version/set"
	"github.com/cascii/verflow/config"
	"github.com/cascii/verflow/errs"
	"github.com/cascii/verflow/git/gitutil"
	"github.com/cascii/verflow/manifest"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "version",
	Short:     "print the current project version",
	Long: `
  Print the project version string as stored in the backend manifest.

  To check the version of verflow itself, use -version.

  There are also some subcommands available. Check them out.
	`,
	Action: func(cmd *gocli.Command, args []string) {
		if len(args) != 0 {
			cmd.Usage()
			os.Exit(2)
		}

		app.InitOrDie()

		ver, err := currentVersion()
		if err != nil {
			errs.Fatal(err)
		}

		fmt.Println(ver)
	},
}

func init() {
	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)

	// Register subcommands.
	Command.MustRegisterSubcommand(setCmd.Command)
}

func currentVersion() (fmt.Stringer, error) {
	root, err := gitutil.RepositoryRootAbsolutePath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	return manifest.CanonicalVersion(root, cfg.BackendManifest)
}
