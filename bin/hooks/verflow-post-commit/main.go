package main

import (
	// Stdlib
	"fmt"
	"os"

	// Internal
	"github.com/cascii/verflow/asciiart"
	"github.com/cascii/verflow/bump"
	"github.com/cascii/verflow/config"
	"github.com/cascii/verflow/errs"
	"github.com/cascii/verflow/git/gitutil"
	"github.com/cascii/verflow/hooks"
	"github.com/cascii/verflow/manifest"
)

func main() {
	// Set up the identification command line flag.
	hooks.IdentifyYourself()

	// Tell the user what is happening.
	fmt.Println("---> Running the verflow post-commit hook")

	// Run the main function. Whatever happens, the hook exits with
	// a zero status: a version bump is a convenience layered on top
	// of the commit, it must never get in the way of it.
	if err := bump.Run(nil); err != nil {
		if errs.RootCause(err) == manifest.ErrVersionNotFound {
			printMissingVersionWarning()
		} else {
			asciiart.PrintShrug("VERSION BUMP SKIPPED")
		}
		errs.Log(err)
	}
}

func printMissingVersionWarning() {
	artifactPath := "the backend manifest"
	if root, err := gitutil.RepositoryRootAbsolutePath(); err == nil {
		if cfg, err := config.Load(root); err == nil {
			artifactPath = cfg.BackendManifest
		}
	}
	hooks.PrintMissingVersionWarning(os.Stderr, artifactPath)
}
