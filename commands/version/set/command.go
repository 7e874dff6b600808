package setCmd

import (
	// Stdlib
	"fmt"
	"os"

	// Internal
	"github.com/cascii/verflow/app"
	"github.com/cascii/verflow/app/appflags"
	"github.com/cascii/verflow/config"
	"github.com/cascii/verflow/errs"
	"github.com/cascii/verflow/git"
	"github.com/cascii/verflow/git/gitutil"
	"github.com/cascii/verflow/log"
	"github.com/cascii/verflow/manifest"
	"github.com/cascii/verflow/version"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "set [-commit] VERSION",
	Short:     "set the project version to the specified value",
	Long: `
  Set the version string in all configuration artifacts to the
  specified value. Any valid version is accepted, so this is also
  the way to perform a major bump, which the automated workflow
  never does on its own.

  In case -commit is set, the changes are committed as well.
	`,
	Action: run,
}

var flagCommit bool

func init() {
	// Register flags.
	Command.Flags.BoolVar(&flagCommit, "commit", flagCommit,
		"commit the new version string")

	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)
}

func run(cmd *gocli.Command, args []string) {
	if len(args) != 1 {
		cmd.Usage()
		os.Exit(2)
	}

	app.InitOrDie()

	if err := runMain(args[0]); err != nil {
		errs.Fatal(err)
	}
}

func runMain(versionString string) error {
	// Make sure the version string is correct.
	task := "Parse the command line VERSION argument"
	ver, err := version.Parse(versionString)
	if err != nil {
		hint := `
The version string must be in the form of Major.Minor.Patch
and no part of the version string can be omitted.

`
		return errs.NewErrorWithHint(task, err, hint)
	}

	root, err := gitutil.RepositoryRootAbsolutePath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	current, err := manifest.CanonicalVersion(root, cfg.BackendManifest)
	if err != nil {
		return err
	}
	if ver.EQ(current.Version) {
		log.Log(fmt.Sprintf("The project version is already %v", ver))
		return nil
	}

	var changed []string
	for _, art := range manifest.Artifacts(cfg) {
		ok, err := art.Rewrite(root, current, ver)
		if err != nil {
			return err
		}
		if ok {
			changed = append(changed, art.Path)
		}
	}
	if len(changed) == 0 {
		return fmt.Errorf("no configuration artifact was modified")
	}

	if !flagCommit {
		log.Log(fmt.Sprintf("Version set: %v -> %v", current, ver))
		return nil
	}

	branch, err := gitutil.CurrentBranch()
	if err != nil {
		return err
	}

	task = fmt.Sprintf("Commit the new version string on branch '%v'", branch)
	log.Run(task)
	if err := git.Add(changed...); err != nil {
		return errs.NewError(task, err)
	}
	if err := git.Commit(fmt.Sprintf("Bump version to %v", ver)); err != nil {
		return errs.NewError(task, err)
	}

	log.Log(fmt.Sprintf("Version set: %v -> %v", current, ver))
	return nil
}
